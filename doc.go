// Package seqmatch compares nucleotide sequences: optimal global alignment
// with similarity scoring, and start-codon anchored pattern search.
//
// 🚀 What is seqmatch?
//
//	A small, dependency-light toolkit for two classic sequence questions:
//		• How similar are these two sequences? (Needleman–Wunsch global alignment)
//		• Does this transcript occur in that reference, and where does it differ?
//		  (Knuth–Morris–Pratt search with a positional mismatch fallback)
//
// ✨ Why choose seqmatch?
//
//   - Deterministic – fixed tie-break order, identical input gives identical alignment
//   - Stateless – no globals, every call owns its matrix and memo
//   - Pure Go – no cgo
//
// Packages:
//
//	sequence/ — Base enum (A,C,G,T + Gap), immutable Sequence, strict/lenient parsing
//	align/    — GlobalAlign, Score, Similarity, SlidingWindowSimilarity, FindDiagnosticSites
//	pattern/  — FailureTable, Index, ExactSearch, LocateStartCodon, DiagnosticSearch
//	config/   — Viper-backed settings for the command line
//	cmd/      — Cobra command tree; binary in cmd/seqmatch
//
// Quick example:
//
//	ACGT
//	| ||
//	A-GT    score=2, similarity 75% (match-count)
//
//	go install github.com/katalvlaran/seqmatch/cmd/seqmatch@latest
package seqmatch
