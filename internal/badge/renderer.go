// Package badge renders contributor badges as self-contained SVG
// documents. Rendering is pure: identical input produces identical
// bytes, and no I/O happens here.
package badge

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"strings"

	svg "github.com/ajstarks/svgo"
)

// Item is one element to draw: a label and an optional inlined image.
// An Item with no image bytes renders as a deterministic placeholder,
// a palette-colored circle with the label's first character.
type Item struct {
	Label     string
	Image     []byte
	MediaType string
}

// Header is the optional title block of a badge.
type Header struct {
	Title    string
	Subtitle string
}

// Options control layout and colors of one rendered badge.
type Options struct {
	Layout Layout
	Theme  Theme
	Header *Header
}

const fontFamily = "Helvetica,Arial,sans-serif"

// Render draws items as a badge document.
func Render(items []Item, opts Options) []byte {
	layout := opts.Layout
	if layout != LayoutGrid {
		layout = LayoutHorizontal
	}
	pal := paletteFor(opts.Theme)
	withHeader := opts.Header != nil

	width, height := dimensions(len(items), layout, withHeader)

	var buf bytes.Buffer
	canvas := svg.New(&buf)
	canvas.Start(width, height)
	canvas.Title("contributors")
	canvas.Roundrect(0, 0, width, height, 6, 6, fill(pal.background))

	if withHeader {
		renderHeader(canvas, opts.Header, pal)
	}

	for i, item := range items {
		x, y := cellOrigin(i, layout, len(items), withHeader)
		renderItem(canvas, i, x, y, item, pal)
	}

	canvas.End()

	return buf.Bytes()
}

func renderHeader(canvas *svg.SVG, h *Header, pal palette) {
	canvas.Text(canvasPad+4, canvasPad+18, h.Title,
		fmt.Sprintf(`font-family=%q`, fontFamily),
		`font-size="16"`,
		`font-weight="bold"`,
		fill(pal.text),
	)
	if h.Subtitle != "" {
		canvas.Text(canvasPad+4, canvasPad+36, h.Subtitle,
			fmt.Sprintf(`font-family=%q`, fontFamily),
			`font-size="12"`,
			fill(pal.text),
		)
	}
}

func renderItem(canvas *svg.SVG, position, x, y int, item Item, pal palette) {
	cx := x + cellWidth/2
	cy := y + avatarTopPad + avatarRadius

	if len(item.Image) > 0 {
		clipID := fmt.Sprintf("clip%d", position)
		canvas.ClipPath(fmt.Sprintf(`id=%q`, clipID))
		canvas.Circle(cx, cy, avatarRadius)
		canvas.ClipEnd()
		canvas.Image(
			cx-avatarRadius, cy-avatarRadius,
			2*avatarRadius, 2*avatarRadius,
			imageDataURI(item),
			fmt.Sprintf(`clip-path="url(#%s)"`, clipID),
		)
	} else {
		canvas.Circle(cx, cy, avatarRadius, fill(placeholderColor(position)))
		canvas.Text(cx, cy+7, glyph(item.Label),
			fmt.Sprintf(`font-family=%q`, fontFamily),
			`font-size="20"`,
			`text-anchor="middle"`,
			`fill="#ffffff"`,
		)
	}

	canvas.Circle(cx, cy, avatarRadius,
		`fill="none"`,
		fmt.Sprintf(`stroke="%s"`, pal.border),
		`stroke-width="2"`,
	)

	canvas.Text(cx, y+labelBase, truncateLabel(item.Label),
		fmt.Sprintf(`font-family=%q`, fontFamily),
		`font-size="11"`,
		`text-anchor="middle"`,
		fill(pal.text),
	)
}

// imageDataURI encodes image bytes as a self-contained data url.
func imageDataURI(item Item) string {
	mediaType := item.MediaType
	if mediaType == "" {
		mediaType = "image/png"
	}

	return "data:" + mediaType + ";base64," + base64.StdEncoding.EncodeToString(item.Image)
}

// glyph picks the placeholder character for a label.
func glyph(label string) string {
	for _, r := range label {
		return strings.ToUpper(string(r))
	}

	return "?"
}

func fill(color string) string {
	return fmt.Sprintf(`fill="%s"`, color)
}
