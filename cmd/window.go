// SPDX-License-Identifier: MIT

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/seqmatch/align"
)

func (a *app) windowCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "window [seq1] [seq2]",
		Short: "Similarity per sliding window along the shared prefix",
		Long: `Slide a fixed-size window along both sequences and align each pair of
windows on its own. One tab-separated line per offset: offset, similarity.`,
		Example: "  seqmatch window --size 4 ACGTACGTAC ACGTTCGTAC",
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			seqs, err := sequences(args)
			if err != nil {
				return err
			}
			opts, err := a.cfg.WindowOptions()
			if err != nil {
				return err
			}

			rep, err := align.SlidingWindowSimilarity(seqs[0], seqs[1], a.cfg.Window.Size, &opts)
			if err != nil {
				return err
			}
			a.logger.Printf("%d windows, %d served from memo", len(rep.Similarities), rep.Reused)

			w := cmd.OutOrStdout()
			if len(rep.Similarities) == 0 {
				fmt.Fprintf(w, "no window: size %d exceeds the shared length\n", rep.WindowSize)
				return nil
			}
			for off, sim := range rep.Similarities {
				fmt.Fprintf(w, "%d\t%.2f\n", off, sim)
			}

			return nil
		},
	}
	c.Flags().Int("size", align.DefaultWindowSize, "window length in bases")
	a.bind("window.size", c.Flags().Lookup("size"))

	return c
}
