// SPDX-License-Identifier: MIT

package align

import "github.com/katalvlaran/seqmatch/sequence"

// DefaultWindowSize is the window length used when callers have no
// better choice.
const DefaultWindowSize = 50

// windowKey identifies a pair of window contents in the per-call memo.
type windowKey struct {
	a, b string
}

// SlidingWindowSimilarity slides a window of the given size along the
// shared prefix of a and b and aligns each pair of windows on its own.
//
// Offsets run from 0 to min(m,n)-window inclusive, so the report holds
// exactly min(m,n)-window+1 values, or none when window > min(m,n).
// Repeated window pairs (tandem repeats, low-complexity regions) are looked
// up in a memo that lives only for this call.
//
// A nil opts means WindowOptions(). window <= 0 yields ErrInvalidParameters.
//
// Complexity: O(k·w²) time for k distinct window pairs, O(w²) peak memory
// under MatchCount, O(w) under ScoreRatio.
func SlidingWindowSimilarity(a, b sequence.Sequence, window int, opts *Options) (*WindowReport, error) {
	if window <= 0 {
		return nil, alignErrorf("SlidingWindowSimilarity", "window %d must be > 0: %w", window, ErrInvalidParameters)
	}
	o := resolve(opts, WindowOptions())
	if err := o.validate(); err != nil {
		return nil, alignErrorf("SlidingWindowSimilarity", "%w", err)
	}

	rep := &WindowReport{WindowSize: window, Similarities: []float64{}}
	shared := min(a.Len(), b.Len())
	if window > shared {
		return rep, nil
	}

	count := shared - window + 1
	rep.Similarities = make([]float64, 0, count)
	memo := make(map[windowKey]float64)

	for off := 0; off < count; off++ {
		wa := a.Slice(off, off+window)
		wb := b.Slice(off, off+window)
		key := windowKey{a: wa.String(), b: wb.String()}

		sim, ok := memo[key]
		if ok {
			rep.Reused++
		} else {
			var err error
			if sim, err = similarity(wa, wb, o); err != nil {
				return nil, alignErrorf("SlidingWindowSimilarity", "offset %d: %w", off, err)
			}
			memo[key] = sim
		}
		rep.Similarities = append(rep.Similarities, sim)
	}

	return rep, nil
}
