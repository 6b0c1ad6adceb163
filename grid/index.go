// Package grid maps grid cells to the claims covering them
package grid

import (
	"github.com/lixenwraith/claimgrid/claim"
	"github.com/lixenwraith/claimgrid/core"
	"github.com/lixenwraith/claimgrid/vmath"
)

// Index is a sparse, append-only cell index over a claim sequence
// Cells hold positions into the claim sequence, never pointers
type Index struct {
	claims []claim.Claim
	cells  map[core.Point][]int
}

// New creates an empty index
func New() *Index {
	return &Index{
		cells: make(map[core.Point][]int),
	}
}

// Build creates an index holding all claims in order
func Build(claims []claim.Claim) *Index {
	idx := New()
	for _, c := range claims {
		idx.Add(c)
	}
	return idx
}

// Add appends a claim and marks every cell it covers
// O(w*h), returns the claim's position in the sequence
func (idx *Index) Add(c claim.Claim) int {
	i := len(idx.claims)
	idx.claims = append(idx.claims, c)
	vmath.RectCells(c.Rect, func(p core.Point) {
		idx.cells[p] = append(idx.cells[p], i)
	})
	return i
}

// Len returns the number of claims
func (idx *Index) Len() int {
	return len(idx.claims)
}

// Claims returns the claim sequence in insertion order
// Callers must not modify the returned slice
func (idx *Index) Claims() []claim.Claim {
	return idx.claims
}

// Claim returns the claim at position i
func (idx *Index) Claim(i int) claim.Claim {
	return idx.claims[i]
}

// At returns positions of the claims covering p, in insertion order
// Returns nil for an unclaimed cell
func (idx *Index) At(p core.Point) []int {
	return idx.cells[p]
}

// Count returns the number of claims covering p
func (idx *Index) Count(p core.Point) int {
	return len(idx.cells[p])
}

// Cells returns the number of cells covered by at least one claim
func (idx *Index) Cells() int {
	return len(idx.cells)
}

// OverlapCount returns the number of cells covered by two or more claims
func (idx *Index) OverlapCount() int {
	n := 0
	for _, list := range idx.cells {
		if len(list) > 1 {
			n++
		}
	}
	return n
}

// Conflicted returns the ids of all claims sharing at least one cell with another claim
func (idx *Index) Conflicted() map[uint32]struct{} {
	ids := make(map[uint32]struct{})
	for _, list := range idx.cells {
		if len(list) < 2 {
			continue
		}
		for _, i := range list {
			ids[idx.claims[i].ID] = struct{}{}
		}
	}
	return ids
}

// FirstIntact returns the first claim, in insertion order, whose id is not conflicted
func (idx *Index) FirstIntact() (claim.Claim, bool) {
	conflicted := idx.Conflicted()
	for _, c := range idx.claims {
		if _, ok := conflicted[c.ID]; !ok {
			return c, true
		}
	}
	return claim.Claim{}, false
}

// Bounds folds the bounding rectangle of all claims, starting from a zero-sized rect at the origin
func (idx *Index) Bounds() core.Rect {
	bb := core.RectFromXYWH(0, 0, 0, 0)
	for _, c := range idx.claims {
		bb = vmath.Bounding(bb, c.Rect)
	}
	return bb
}
