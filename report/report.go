// Package report computes and prints both answers for a claim set
package report

import (
	"fmt"
	"io"

	"github.com/lixenwraith/claimgrid/claim"
	"github.com/lixenwraith/claimgrid/core"
	"github.com/lixenwraith/claimgrid/grid"
)

// Summary holds the figures printed for one run
type Summary struct {
	Bounds core.Rect
	Claims int
	Dupes  int // Cells covered by two or more claims

	Intact    claim.Claim
	HasIntact bool
}

// Build indexes the claims and computes the summary
// Returns the index so callers can reuse it for display
func Build(claims []claim.Claim) (Summary, *grid.Index) {
	idx := grid.Build(claims)
	return FromIndex(idx), idx
}

// FromIndex computes the summary of an already populated index
func FromIndex(idx *grid.Index) Summary {
	s := Summary{
		Bounds: idx.Bounds(),
		Claims: idx.Len(),
		Dupes:  idx.OverlapCount(),
	}
	s.Intact, s.HasIntact = idx.FirstIntact()
	return s
}

// PartTwo formats the intact claim or "none"
func (s Summary) PartTwo() string {
	if !s.HasIntact {
		return "none"
	}
	return s.Intact.String()
}

// WriteTo prints the three report lines
func (s Summary) WriteTo(w io.Writer) (int64, error) {
	n, err := fmt.Fprintf(w,
		"bounding box: %s\npart one: claims %d, dupes %d\npart two: %s\n",
		s.Bounds, s.Claims, s.Dupes, s.PartTwo())
	return int64(n), err
}
