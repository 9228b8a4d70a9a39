// SPDX-License-Identifier: MIT

// Package align computes optimal global alignments between two nucleotide
// sequences and derives similarity percentages from them.
//
// 🚀 What is global alignment?
//
//	A global alignment lines up two sequences end to end, inserting gaps
//	where one of them has extra bases. The optimal alignment maximizes the
//	sum of match rewards, mismatch penalties and gap penalties, found with
//	the classic dynamic-programming table of size (m+1)x(n+1).
//
// ✨ Key features:
//   - GlobalAlign: full score matrix + deterministic traceback
//   - Score: score-only pass in two rolling rows, O(min(m,n)) memory
//   - two similarity normalizations (MatchCount, ScoreRatio), both clamped to [0,100]
//   - SlidingWindowSimilarity: per-offset similarity with a per-call memo
//   - FindDiagnosticSites: quick position-wise difference listing
//
// ⚙️ Usage:
//
//	opts := align.DefaultOptions()     // match=+1 mismatch=-1 gap=-1, MatchCount
//	res, err := align.GlobalAlign(s1, s2, &opts)
//	if err != nil {
//	  // errors.Is(err, align.ErrInvalidParameters)
//	}
//	fmt.Println(res.Seq1, res.Seq2, res.Similarity)
//
// Performance:
//
//   - GlobalAlign: Time O(m·n), Memory O(m·n)
//   - Score:       Time O(m·n), Memory O(min(m,n))
//
// Every function is synchronous and keeps no state between calls, so any
// of them may run concurrently on independent goroutines.
package align
