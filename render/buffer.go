package render

import "github.com/gdamore/tcell/v2"

// Cell represents a single styled terminal cell
type Cell struct {
	Rune  rune
	Style tcell.Style
}

// Buffer is a fixed-size 2D grid of cells composed off-screen, then flushed in one pass
type Buffer struct {
	width  int
	height int
	cells  []Cell // 1D array: index = y*width + x
}

// NewBuffer creates a blank buffer with the given dimensions
func NewBuffer(width, height int) *Buffer {
	b := &Buffer{}
	b.Resize(width, height)
	return b
}

// Width returns the buffer width
func (b *Buffer) Width() int {
	return b.width
}

// Height returns the buffer height
func (b *Buffer) Height() int {
	return b.height
}

// Resize changes dimensions and clears all content
func (b *Buffer) Resize(width, height int) {
	width = max(width, 0)
	height = max(height, 0)
	size := width * height
	if cap(b.cells) < size {
		b.cells = make([]Cell, size)
	} else {
		b.cells = b.cells[:size]
	}
	b.width = width
	b.height = height
	b.Clear(tcell.StyleDefault)
}

// Clear resets every cell to a space with the given style
func (b *Buffer) Clear(style tcell.Style) {
	for i := range b.cells {
		b.cells[i] = Cell{Rune: ' ', Style: style}
	}
}

func (b *Buffer) inBounds(x, y int) bool {
	return x >= 0 && x < b.width && y >= 0 && y < b.height
}

// GetCell returns the cell at the given position
func (b *Buffer) GetCell(x, y int) (Cell, bool) {
	if !b.inBounds(x, y) {
		return Cell{}, false
	}
	return b.cells[y*b.width+x], true
}

// SetContent sets the cell at the given position, false if out of bounds
func (b *Buffer) SetContent(x, y int, r rune, style tcell.Style) bool {
	if !b.inBounds(x, y) {
		return false
	}
	b.cells[y*b.width+x] = Cell{Rune: r, Style: style}
	return true
}

// SetString writes s left to right from (x, y), clipped at the right edge
// Returns the number of cells written
func (b *Buffer) SetString(x, y int, s string, style tcell.Style) int {
	n := 0
	for _, r := range s {
		if !b.SetContent(x+n, y, r, style) {
			break
		}
		n++
	}
	return n
}

// Flush copies the buffer onto the screen and shows it
func (b *Buffer) Flush(screen tcell.Screen) {
	for y := 0; y < b.height; y++ {
		for x := 0; x < b.width; x++ {
			c := b.cells[y*b.width+x]
			screen.SetContent(x, y, c.Rune, nil, c.Style)
		}
	}
	screen.Show()
}
