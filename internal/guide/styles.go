package guide

// RGB is a 0-255 text color.
type RGB struct{ R, G, B int }

// Style describes one typographic role. Sizes are points, spacing is mm.
type Style struct {
	Size       float64
	LineHeight float64
	Font       string // fpdf style string: "B", "I" or ""
	Color      RGB
	Align      string // "C", "L" or "J"
	SpaceAfter float64
	Indent     float64
}

// StyleSheet is built once per Generator and passed immutably through
// rendering. No global style state.
type StyleSheet struct {
	Title      Style
	Subtitle   Style
	Section    Style
	Subsection Style
	ItemHeader Style
	Body       Style
	Bullet     Style
	Footer     Style
}

func DefaultStyles() StyleSheet {
	return StyleSheet{
		Title:      Style{Size: 24, LineHeight: 11, Font: "B", Color: RGB{0, 0, 139}, Align: "C", SpaceAfter: 11},
		Subtitle:   Style{Size: 14, LineHeight: 7, Font: "B", Color: RGB{0, 0, 0}, Align: "L", SpaceAfter: 4},
		Section:    Style{Size: 16, LineHeight: 8, Font: "B", Color: RGB{0, 100, 0}, Align: "L", SpaceAfter: 4},
		Subsection: Style{Size: 14, LineHeight: 7, Font: "B", Color: RGB{139, 0, 0}, Align: "L", SpaceAfter: 3},
		ItemHeader: Style{Size: 11, LineHeight: 5.5, Font: "B", Color: RGB{0, 0, 0}, Align: "L", SpaceAfter: 1},
		Body:       Style{Size: 11, LineHeight: 5.5, Font: "", Color: RGB{0, 0, 0}, Align: "J", SpaceAfter: 2},
		Bullet:     Style{Size: 10, LineHeight: 5, Font: "", Color: RGB{0, 0, 0}, Align: "L", SpaceAfter: 1.5, Indent: 7},
		Footer:     Style{Size: 11, LineHeight: 5.5, Font: "I", Color: RGB{0, 0, 0}, Align: "L", SpaceAfter: 2},
	}
}
