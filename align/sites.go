// SPDX-License-Identifier: MIT

package align

import "github.com/katalvlaran/seqmatch/sequence"

// DefaultMaxSites caps FindDiagnosticSites when callers have no preference.
const DefaultMaxSites = 10

// FindDiagnosticSites lists positions within the shared prefix where a and b
// hold different bases, compared position by position with no alignment.
// An insertion early in one sequence therefore shifts every later site;
// use GlobalAlign when indels matter.
//
// At most maxSites are returned (0 means no cap). Truncated is set only
// when at least one further difference exists past the cap.
// A negative maxSites yields ErrInvalidParameters.
func FindDiagnosticSites(a, b sequence.Sequence, maxSites int) (*SiteReport, error) {
	if maxSites < 0 {
		return nil, alignErrorf("FindDiagnosticSites", "maxSites %d must be >= 0: %w", maxSites, ErrInvalidParameters)
	}

	rep := &SiteReport{Sites: []Site{}}
	shared := min(a.Len(), b.Len())
	for pos := 0; pos < shared; pos++ {
		x, y := a.At(pos), b.At(pos)
		if x == y {
			continue
		}
		if maxSites > 0 && len(rep.Sites) == maxSites {
			rep.Truncated = true
			break
		}
		rep.Sites = append(rep.Sites, Site{Pos: pos, Seq1: x, Seq2: y})
	}

	return rep, nil
}
