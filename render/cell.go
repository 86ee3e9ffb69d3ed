package render

// Cell is one composed terminal cell
// Wide marks the trailing half of a double-width rune; Flush skips it
type Cell struct {
	Rune rune
	Fg   RGB
	Bg   RGB
	Bold bool
	Wide bool
}
