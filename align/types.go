// SPDX-License-Identifier: MIT

package align

import "github.com/katalvlaran/seqmatch/sequence"

// Scoring holds the additive scores of one alignment column.
//
//   - Match    — reward for two identical bases, must be > 0.
//   - Mismatch — score for two different bases, must be <= 0.
//   - Gap      — score for a base aligned against a gap, must be < 0.
type Scoring struct {
	Match    int
	Mismatch int
	Gap      int
}

// Scoring presets. Both are in use: DefaultScoring for whole-sequence
// comparison, WindowScoring for the windowed scan, which punishes gaps
// harder.
var (
	DefaultScoring = Scoring{Match: 1, Mismatch: -1, Gap: -1}
	WindowScoring  = Scoring{Match: 1, Mismatch: -1, Gap: -2}
)

// Validate reports ErrInvalidParameters for scores that break the
// monotonicity the DP recurrence relies on.
func (s Scoring) Validate() error {
	switch {
	case s.Match <= 0:
		return alignErrorf("Scoring", "match %d must be > 0: %w", s.Match, ErrInvalidParameters)
	case s.Mismatch > 0:
		return alignErrorf("Scoring", "mismatch %d must be <= 0: %w", s.Mismatch, ErrInvalidParameters)
	case s.Gap >= 0:
		return alignErrorf("Scoring", "gap %d must be < 0: %w", s.Gap, ErrInvalidParameters)
	}

	return nil
}

// pair scores one diagonal column.
func (s Scoring) pair(x, y sequence.Base) int {
	if x == y {
		return s.Match
	}

	return s.Mismatch
}

// Normalization selects how a finished alignment becomes a percentage.
//
//   - MatchCount — identical non-gap columns / max(m,n) × 100.
//   - ScoreRatio — raw DP score / (max(m,n) × Match) × 100.
//
// The two are not equivalent: ScoreRatio is pulled down by every mismatch
// and gap, MatchCount only by missing identities.
type Normalization int

const (
	// MatchCount counts identical aligned columns. Requires a traceback.
	MatchCount Normalization = iota

	// ScoreRatio divides the optimal score by the best score achievable for
	// the longer sequence. Needs only the score, not the alignment.
	ScoreRatio
)

// String returns the configuration name of n.
func (n Normalization) String() string {
	switch n {
	case MatchCount:
		return "match-count"
	case ScoreRatio:
		return "score-ratio"
	}

	return "unknown"
}

// ParseNormalization maps a configuration name back to a Normalization.
func ParseNormalization(name string) (Normalization, error) {
	switch name {
	case "match-count":
		return MatchCount, nil
	case "score-ratio":
		return ScoreRatio, nil
	}

	return 0, alignErrorf("ParseNormalization", "unknown normalization %q: %w", name, ErrInvalidParameters)
}

// Options configures one alignment call.
//
// Fields:
//   - Scoring       — column scores, see Scoring.
//   - Normalization — how Similarity is derived.
//   - KeepMatrix    — if true, GlobalAlign returns the filled score matrix
//     in Result.Matrix for inspection.
//
// Example:
//
//	opts := align.DefaultOptions()
//	opts.Normalization = align.ScoreRatio
//	opts.KeepMatrix = true
//	res, err := align.GlobalAlign(a, b, &opts)
type Options struct {
	Scoring       Scoring
	Normalization Normalization
	KeepMatrix    bool
}

// DefaultOptions returns DefaultScoring with MatchCount normalization.
func DefaultOptions() Options {
	return Options{Scoring: DefaultScoring, Normalization: MatchCount}
}

// WindowOptions returns WindowScoring with ScoreRatio normalization,
// the configuration SlidingWindowSimilarity uses when given nil options.
func WindowOptions() Options {
	return Options{Scoring: WindowScoring, Normalization: ScoreRatio}
}

// validate checks scoring and normalization together.
func (o Options) validate() error {
	if err := o.Scoring.Validate(); err != nil {
		return err
	}
	if o.Normalization != MatchCount && o.Normalization != ScoreRatio {
		return alignErrorf("Options", "normalization %d: %w", int(o.Normalization), ErrInvalidParameters)
	}

	return nil
}

// resolve returns *opts, or def when opts is nil.
func resolve(opts *Options, def Options) Options {
	if opts == nil {
		return def
	}

	return *opts
}

// Result is the outcome of GlobalAlign.
type Result struct {
	// Seq1 and Seq2 are the aligned rows, always of equal length.
	Seq1, Seq2 sequence.Aligned

	// Similarity is the percentage in [0,100] under the chosen Normalization.
	Similarity float64

	// Score is the optimal alignment score, the bottom-right matrix cell.
	Score int

	// Matches counts columns where both rows hold the same base.
	Matches int

	// Matrix is the filled score table, nil unless Options.KeepMatrix.
	Matrix *Matrix
}

// Len returns the number of alignment columns.
func (r *Result) Len() int { return len(r.Seq1) }

// WindowReport lists one similarity per sliding-window offset.
type WindowReport struct {
	WindowSize   int
	Similarities []float64

	// Reused counts offsets whose value came from the per-call memo
	// instead of a fresh alignment.
	Reused int
}

// Site is one position where two unaligned sequences differ.
type Site struct {
	Pos  int
	Seq1 sequence.Base
	Seq2 sequence.Base
}

// SiteReport is the capped list returned by FindDiagnosticSites.
// Truncated is set when further differences exist past the cap.
type SiteReport struct {
	Sites     []Site
	Truncated bool
}
