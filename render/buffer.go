package render

import (
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// RenderBuffer is a cell compositor with touched tracking
// Untouched cells take the frame background on Flush
type RenderBuffer struct {
	cells   []Cell
	touched []bool
	width   int
	height  int
}

// NewRenderBuffer creates a buffer with the specified dimensions
func NewRenderBuffer(width, height int) *RenderBuffer {
	b := &RenderBuffer{}
	b.Resize(width, height)
	return b
}

// Resize adjusts buffer dimensions, reallocates only if capacity insufficient
func (b *RenderBuffer) Resize(width, height int) {
	width, height = max(width, 0), max(height, 0)
	size := width * height
	if cap(b.cells) < size {
		b.cells = make([]Cell, size)
		b.touched = make([]bool, size)
	} else {
		b.cells = b.cells[:size]
		b.touched = b.touched[:size]
	}
	b.width = width
	b.height = height
	b.Clear()
}

// Clear resets all cells to empty using exponential copy
func (b *RenderBuffer) Clear() {
	if len(b.cells) == 0 {
		return
	}
	b.cells[0] = Cell{}
	b.touched[0] = false
	for filled := 1; filled < len(b.cells); filled *= 2 {
		copy(b.cells[filled:], b.cells[:filled])
	}
	for filled := 1; filled < len(b.touched); filled *= 2 {
		copy(b.touched[filled:], b.touched[:filled])
	}
}

// Bounds returns buffer dimensions
func (b *RenderBuffer) Bounds() (int, int) {
	return b.width, b.height
}

// inBounds returns true if in screen bounds
func (b *RenderBuffer) inBounds(x, y int) bool {
	return x >= 0 && x < b.width && y >= 0 && y < b.height
}

// Get returns the cell at x, y; out of bounds yields the zero cell
func (b *RenderBuffer) Get(x, y int) Cell {
	if !b.inBounds(x, y) {
		return Cell{}
	}
	return b.cells[y*b.width+x]
}

// SetFgOnly writes rune and foreground while preserving existing background
func (b *RenderBuffer) SetFgOnly(x, y int, r rune, fg RGB) {
	if !b.inBounds(x, y) {
		return
	}
	dst := &b.cells[y*b.width+x]
	dst.Rune = r
	dst.Fg = fg
	dst.Bold = false
	dst.Wide = false
}

// SetBgOnly updates the background color while preserving existing rune/foreground
func (b *RenderBuffer) SetBgOnly(x, y int, bg RGB) {
	if !b.inBounds(x, y) {
		return
	}
	idx := y*b.width + x
	b.cells[idx].Bg = bg
	b.touched[idx] = true
}

// SetWithBg writes a cell with explicit fg and bg colors (opaque replace)
func (b *RenderBuffer) SetWithBg(x, y int, r rune, fg, bg RGB) {
	if !b.inBounds(x, y) {
		return
	}
	idx := y*b.width + x
	b.cells[idx] = Cell{Rune: r, Fg: fg, Bg: bg}
	b.touched[idx] = true
}

// Text writes s starting at x, y keeping the underlying background
// Double-width runes occupy two cells; returns the column after the last rune
func (b *RenderBuffer) Text(x, y int, s string, fg RGB, bold bool) int {
	for _, r := range s {
		w := runewidth.RuneWidth(r)
		if w == 0 {
			continue
		}
		if b.inBounds(x, y) && (w == 1 || x+1 < b.width) {
			dst := &b.cells[y*b.width+x]
			dst.Rune, dst.Fg, dst.Bold, dst.Wide = r, fg, bold, false
			if w == 2 {
				next := &b.cells[y*b.width+x+1]
				next.Rune, next.Fg, next.Bold, next.Wide = 0, fg, bold, true
			}
		}
		x += w
	}
	return x
}

// TextCentered writes s centered on row y and returns its starting column
func (b *RenderBuffer) TextCentered(y int, s string, fg RGB, bold bool) int {
	x := (b.width - runewidth.StringWidth(s)) / 2
	b.Text(x, y, s, fg, bold)
	return x
}

// Fill paints the background of a rectangle, clipped to the buffer
func (b *RenderBuffer) Fill(x, y, w, h int, bg RGB) {
	for row := y; row < y+h; row++ {
		for col := x; col < x+w; col++ {
			b.SetBgOnly(col, row, bg)
		}
	}
}

// Row returns the visible text of row y, wide runes counted once
func (b *RenderBuffer) Row(y int) string {
	if y < 0 || y >= b.height {
		return ""
	}
	out := make([]rune, 0, b.width)
	for x := 0; x < b.width; x++ {
		c := b.cells[y*b.width+x]
		if c.Wide {
			continue
		}
		if c.Rune == 0 {
			out = append(out, ' ')
			continue
		}
		out = append(out, c.Rune)
	}
	return string(out)
}

// Flush writes the buffer to screen; untouched cells take bg
func (b *RenderBuffer) Flush(screen tcell.Screen, bg RGB) {
	for y := 0; y < b.height; y++ {
		for x := 0; x < b.width; x++ {
			idx := y*b.width + x
			c := b.cells[idx]
			if c.Wide {
				continue
			}
			cellBg := bg
			if b.touched[idx] {
				cellBg = c.Bg
			}
			r := c.Rune
			if r == 0 {
				r = ' '
			}
			style := tcell.StyleDefault.Foreground(c.Fg.Color()).Background(cellBg.Color()).Bold(c.Bold)
			screen.SetContent(x, y, r, nil, style)
		}
	}
}
