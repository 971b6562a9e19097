package badge

// Theme selects one of the fixed color palettes.
type Theme string

// Known themes.
const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

// ValidTheme tells if t is a known theme name.
func ValidTheme(t Theme) bool {
	_, ok := palettes[t]
	return ok
}

type palette struct {
	background string
	border     string
	text       string
}

var palettes = map[Theme]palette{
	ThemeLight: {
		background: "#ffffff",
		border:     "#d0d7de",
		text:       "#1f2328",
	},
	ThemeDark: {
		background: "#0d1117",
		border:     "#30363d",
		text:       "#e6edf3",
	},
}

// paletteFor returns the palette for t, falling back to the light one
// for unknown themes instead of failing.
func paletteFor(t Theme) palette {
	if p, ok := palettes[t]; ok {
		return p
	}

	return palettes[ThemeLight]
}

// placeholderColors is the fixed palette for generated placeholder
// avatars, indexed by item position.
var placeholderColors = []string{
	"#e06c75",
	"#d19a66",
	"#e5c07b",
	"#98c379",
	"#56b6c2",
	"#61afef",
	"#c678dd",
	"#be5046",
	"#7f848e",
	"#2bbac5",
}

func placeholderColor(position int) string {
	if position < 0 {
		position = -position
	}

	return placeholderColors[position%len(placeholderColors)]
}
