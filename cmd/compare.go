// SPDX-License-Identifier: MIT

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/seqmatch/align"
)

// Conservation bands reported by compare.
const (
	highConservation = 90.0
	lowConservation  = 50.0
)

// compareCmd is the one-shot report: overall similarity, positional
// identity, diagnostic sites and a summary of the window scan.
func (a *app) compareCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "compare [reference] [query]",
		Short:   "Full comparison report of a query against a reference",
		Example: "  seqmatch compare --config seqmatch.yaml GTCCTACTATCCATGCAGG GTCCTACTGTCCATGCAGG",
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			seqs, err := sequences(args)
			if err != nil {
				return err
			}
			ref, query := seqs[0], seqs[1]
			w := cmd.OutOrStdout()

			opts, err := a.cfg.WindowOptions()
			if err != nil {
				return err
			}
			overall, err := align.Similarity(ref, query, &opts)
			if err != nil {
				return err
			}
			fmt.Fprintf(w, "Overall similarity (%s): %.2f%%\n", opts.Normalization, overall)
			fmt.Fprintf(w, "Positional similarity: %.2f%%\n", align.PositionalSimilarity(ref, query))

			sites, err := align.FindDiagnosticSites(ref, query, a.cfg.Sites.Max)
			if err != nil {
				return err
			}
			fmt.Fprintln(w, "Diagnostic sites:")
			writeSites(w, sites)

			rep, err := align.SlidingWindowSimilarity(ref, query, a.cfg.Window.Size, &opts)
			if err != nil {
				return err
			}
			if len(rep.Similarities) == 0 {
				fmt.Fprintf(w, "Windows: none (size %d)\n", rep.WindowSize)
				return nil
			}
			lo, hi, sum := rep.Similarities[0], rep.Similarities[0], 0.0
			high, low := 0, 0
			for _, v := range rep.Similarities {
				lo, hi, sum = min(lo, v), max(hi, v), sum+v
				if v >= highConservation {
					high++
				}
				if v < lowConservation {
					low++
				}
			}
			fmt.Fprintf(w, "Windows: %d of %d bp, min=%.2f%% mean=%.2f%% max=%.2f%%\n",
				len(rep.Similarities), rep.WindowSize, lo, sum/float64(len(rep.Similarities)), hi)
			fmt.Fprintf(w, "High conservation (>=%.0f%%): %d, low conservation (<%.0f%%): %d\n",
				highConservation, high, lowConservation, low)

			return nil
		},
	}
}
