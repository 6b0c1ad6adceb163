// Package claim defines a numbered rectangular claim on the grid and its text format
package claim

import (
	"fmt"

	"github.com/lixenwraith/claimgrid/core"
)

// Claim is a numbered region requested on the grid
// Treated as immutable once parsed
type Claim struct {
	ID   uint32
	Rect core.Rect
}

// New builds a claim from its id, top-left corner and dimensions
func New(id uint32, x, y, w, h int) Claim {
	return Claim{ID: id, Rect: core.RectFromXYWH(x, y, w, h)}
}

// String formats as "#<id> @ <x>,<y>: <w>x<h>", the same shape Parse accepts
func (c Claim) String() string {
	return fmt.Sprintf("#%d @ %s", c.ID, c.Rect)
}
