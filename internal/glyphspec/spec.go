package glyphspec

// Settings carries the global defaults of a specification document.
type Settings struct {
	// Name becomes the top-level output directory.
	Name string `json:"name"`
	// DefaultFont is used when a rendition does not name its own font.
	DefaultFont string `json:"defaultFont"`
	// Pango is the markup render template. Slot {0} (or {text}) receives the
	// content, slot {1} (or {font}) the font name.
	Pango string `json:"pango"`
	// Xelatex is the typesetting render template with the same slots.
	Xelatex string `json:"xelatex"`
}

// Rendition is one concrete way to render a character entry.
type Rendition struct {
	// UTF8 is literal text, escaped for the active engine before templating.
	UTF8 string `json:"utf8"`
	// Font overrides Settings.DefaultFont when present.
	Font string `json:"font"`
	// Pango is an explicit markup override used verbatim in markup mode.
	Pango string `json:"pango"`
	// Xelatex is an explicit typesetting override used verbatim in
	// typesetting mode.
	Xelatex string `json:"xelatex"`
	// PangoFlip mirrors the markup-mode output vertically.
	PangoFlip bool `json:"pango-flip"`
	// PangoFlop mirrors the markup-mode output horizontally.
	PangoFlop bool `json:"pango-flop"`
}

// Entry is a named character with its renditions. Alts lists alternate
// readings; it is recorded for reference and never consulted by rendering.
type Entry struct {
	Name       string      `json:"name"`
	Alts       []string    `json:"alts"`
	Renditions []Rendition `json:"renditions"`
}

// Subset is a named, ordered group of entries mapped to an output subfolder.
type Subset struct {
	Name    string
	Entries []Entry
}

// Document is a fully parsed glyph specification.
type Document struct {
	Settings Settings
	// Subsets preserve the order they appear in the source document.
	Subsets []Subset
}
