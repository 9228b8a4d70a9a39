// SPDX-License-Identifier: MIT

package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/seqmatch/align"
	"github.com/katalvlaran/seqmatch/sequence"
)

// alignCmd globally aligns two sequences and prints the alignment.
func (a *app) alignCmd() *cobra.Command {
	var showMatrix bool

	c := &cobra.Command{
		Use:     "align [seq1] [seq2]",
		Short:   "Globally align two sequences",
		Example: "  seqmatch align ATCG ATGG\n  seqmatch align --gap -2 --normalization score-ratio ACGT AGT",
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			seqs, err := sequences(args)
			if err != nil {
				return err
			}
			opts, err := a.cfg.AlignOptions()
			if err != nil {
				return err
			}
			opts.KeepMatrix = showMatrix

			res, err := align.GlobalAlign(seqs[0], seqs[1], &opts)
			if err != nil {
				return err
			}
			writeAlignment(cmd.OutOrStdout(), res, opts.Normalization)

			return nil
		},
	}
	c.Flags().BoolVar(&showMatrix, "matrix", false, "also print the score matrix")

	return c
}

// writeAlignment prints both rows with a match line between them.
func writeAlignment(w io.Writer, res *align.Result, norm align.Normalization) {
	fmt.Fprintln(w, res.Seq1)
	fmt.Fprintln(w, midline(res.Seq1, res.Seq2))
	fmt.Fprintln(w, res.Seq2)
	fmt.Fprintf(w, "score=%d matches=%d columns=%d similarity=%.2f%% (%s)\n",
		res.Score, res.Matches, res.Len(), res.Similarity, norm)
	if res.Matrix != nil {
		fmt.Fprint(w, res.Matrix)
	}
}

// midline marks identities with '|', substitutions with '.', gaps with ' '.
func midline(row1, row2 sequence.Aligned) string {
	buf := make([]byte, len(row1))
	for i := range row1 {
		switch {
		case row1[i].IsGap() || row2[i].IsGap():
			buf[i] = ' '
		case row1[i] == row2[i]:
			buf[i] = '|'
		default:
			buf[i] = '.'
		}
	}

	return string(buf)
}
