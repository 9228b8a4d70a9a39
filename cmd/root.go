// SPDX-License-Identifier: MIT

// Package cmd is for command line interactions with the seqmatch library.
// Sequences are passed as arguments; anything other than A, C, G and T is
// stripped before use.
package cmd

import (
	"fmt"
	"io"
	"log"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/katalvlaran/seqmatch/align"
	"github.com/katalvlaran/seqmatch/config"
	"github.com/katalvlaran/seqmatch/sequence"
)

// app is the state shared by one command tree.
type app struct {
	v       *viper.Viper
	cfg     config.Config
	logger  *log.Logger
	cfgFile string
	verbose bool
}

// NewRootCmd builds the full command tree with its own Viper instance.
func NewRootCmd() *cobra.Command {
	a := &app{v: config.NewViper(), logger: log.New(io.Discard, "", 0)}

	root := &cobra.Command{
		Use:   "seqmatch",
		Short: "Compare nucleotide sequences by global alignment and start-codon search",
		Long: `Compare nucleotide sequences.

Global alignment (Needleman-Wunsch) gives a similarity percentage, a
sliding-window scan localizes conserved regions, and the start-codon search
reports whether a transcript occurs verbatim in a reference.`,
		Version:           "0.1.0",
		SilenceUsage:      true,
		PersistentPreRunE: a.load,
	}

	flags := root.PersistentFlags()
	flags.StringVar(&a.cfgFile, "config", "", "path to a YAML settings file")
	flags.BoolVarP(&a.verbose, "verbose", "v", false, "log the resolved settings to stderr")
	flags.Int("match", align.DefaultScoring.Match, "alignment score for identical bases")
	flags.Int("mismatch", align.DefaultScoring.Mismatch, "alignment score for different bases")
	flags.Int("gap", align.DefaultScoring.Gap, "alignment score for a base against a gap")
	flags.String("normalization", align.MatchCount.String(), "similarity normalization: match-count or score-ratio")
	a.bind("align.match", flags.Lookup("match"))
	a.bind("align.mismatch", flags.Lookup("mismatch"))
	a.bind("align.gap", flags.Lookup("gap"))
	a.bind("align.normalization", flags.Lookup("normalization"))

	root.AddCommand(
		a.alignCmd(),
		a.windowCmd(),
		a.sitesCmd(),
		a.searchCmd(),
		a.compareCmd(),
	)

	return root
}

// Execute runs the command tree. This is called by main.main().
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		log.Fatalf("%v", err)
	}
}

// load reads the optional settings file and decodes the Config.
func (a *app) load(cmd *cobra.Command, _ []string) error {
	if a.verbose {
		a.logger = log.New(cmd.ErrOrStderr(), "seqmatch: ", 0)
	}
	if a.cfgFile != "" {
		a.v.SetConfigFile(a.cfgFile)
		if err := a.v.ReadInConfig(); err != nil {
			return fmt.Errorf("failed to read settings file %s: %w", a.cfgFile, err)
		}
		a.logger.Printf("using settings file %s", a.v.ConfigFileUsed())
	}

	cfg, err := config.New(a.v)
	if err != nil {
		return err
	}
	a.cfg = cfg
	a.logger.Printf("settings: %+v", cfg)

	return nil
}

// bind ties a flag to a Viper key. Lookup never returns nil for flags
// defined just above, so a failure here is a programming error.
func (a *app) bind(key string, f *pflag.Flag) {
	if err := a.v.BindPFlag(key, f); err != nil {
		panic(err)
	}
}

// sequences cleans the positional arguments into Sequences.
func sequences(args []string) ([]sequence.Sequence, error) {
	out := make([]sequence.Sequence, len(args))
	for i, arg := range args {
		s, err := sequence.Clean(arg)
		if err != nil {
			return nil, fmt.Errorf("argument %d: %w", i+1, err)
		}
		out[i] = s
	}

	return out, nil
}
