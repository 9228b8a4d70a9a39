// SPDX-License-Identifier: MIT

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/seqmatch/pattern"
)

func (a *app) searchCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "search [input] [reference]",
		Short: "Find the input transcript in a reference, anchored on ATG",
		Long: `Cut both sequences at their first ATG and search the input tail in the
reference tail. Without an exact hit, list the positions (relative to ATG)
where the two tails differ when laid side by side.`,
		Example: "  seqmatch search CCATGGAGCATCTGAC TTATGGTGCATCTGACAA",
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			seqs, err := sequences(args)
			if err != nil {
				return err
			}
			res, err := pattern.DiagnosticSearch(seqs[0], seqs[1], a.cfg.Search.MaxMismatches)
			if err != nil {
				return err
			}
			a.logger.Printf("input ATG at %d, reference ATG at %d", res.PatternStart, res.ReferenceStart)

			w := cmd.OutOrStdout()
			if res.IsExact() {
				fmt.Fprintln(w, "exact match")
				return nil
			}
			fmt.Fprintf(w, "no exact match, %d mismatches listed\n", len(res.Mismatches))
			for _, mm := range res.Mismatches {
				fmt.Fprintf(w, "pos=%d reference=%s input=%s\n", mm.Pos, mm.Reference, mm.Pattern)
			}
			if res.Truncated {
				fmt.Fprintln(w, "... and more mismatches")
			}

			return nil
		},
	}
	c.Flags().Int("max-mismatches", pattern.DefaultMaxMismatches, "maximum number of mismatches to list (0 = all)")
	a.bind("search.max-mismatches", c.Flags().Lookup("max-mismatches"))

	return c
}
