package badge

import (
	"math"
	"unicode/utf8"
)

// Layout selects how items are placed on the canvas.
type Layout string

// Known layouts.
const (
	LayoutHorizontal Layout = "horizontal"
	LayoutGrid       Layout = "grid"
)

// AutoGridThreshold is the item count above which callers must render
// a horizontal badge as a grid to bound the canvas width.
const AutoGridThreshold = 20

// ValidLayout tells if l is a known layout name.
func ValidLayout(l Layout) bool {
	return l == LayoutHorizontal || l == LayoutGrid
}

// Escalate returns the effective layout for n items: horizontal
// switches to grid above AutoGridThreshold, anything else is kept.
func Escalate(l Layout, n int) Layout {
	if l == LayoutHorizontal && n > AutoGridThreshold {
		return LayoutGrid
	}

	return l
}

// Fixed canvas geometry. Canvas dimensions are exact linear functions
// of these and the row/column counts.
const (
	cellWidth    = 64
	cellHeight   = 80
	canvasPad    = 8
	avatarRadius = 24
	avatarTopPad = 4
	labelBase    = 70
	headerHeight = 48

	maxLabelChars = 10
	labelEllipsis = "…"
)

// gridColumns returns ceil(sqrt(n)).
func gridColumns(n int) int {
	if n <= 0 {
		return 0
	}

	return int(math.Ceil(math.Sqrt(float64(n))))
}

// gridRows returns ceil(n / cols).
func gridRows(n, cols int) int {
	if n <= 0 || cols <= 0 {
		return 0
	}

	return (n + cols - 1) / cols
}

// dimensions computes the canvas size for n items.
func dimensions(n int, layout Layout, withHeader bool) (width, height int) {
	cols := n
	rows := 1
	if layout == LayoutGrid {
		cols = gridColumns(n)
		rows = gridRows(n, cols)
	}
	if n == 0 {
		cols, rows = 0, 0
	}

	width = 2*canvasPad + cols*cellWidth
	height = 2*canvasPad + rows*cellHeight
	if withHeader {
		height += headerHeight
	}

	return width, height
}

// cellOrigin returns the top-left corner of the i-th cell.
func cellOrigin(i int, layout Layout, n int, withHeader bool) (x, y int) {
	col, row := i, 0
	if layout == LayoutGrid {
		cols := gridColumns(n)
		col, row = i%cols, i/cols
	}

	x = canvasPad + col*cellWidth
	y = canvasPad + row*cellHeight
	if withHeader {
		y += headerHeight
	}

	return x, y
}

// truncateLabel shortens a label to maxLabelChars visible characters
// plus the ellipsis marker. Labels at or under the limit are unchanged.
func truncateLabel(s string) string {
	if utf8.RuneCountInString(s) <= maxLabelChars {
		return s
	}

	runes := []rune(s)
	return string(runes[:maxLabelChars]) + labelEllipsis
}
