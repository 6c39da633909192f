package resolve

import "strings"

// Template slots: {0}/{text} receive the content, {1}/{font} the font name.
// Positional slots are what existing specification documents use; the named
// forms are the preferred spelling. Substitution happens in a single pass, so
// slot-like sequences inside the substituted content are never re-expanded.

const (
	slotContent      = "{0}"
	slotFont         = "{1}"
	slotContentNamed = "{text}"
	slotFontNamed    = "{font}"
)

func expandTemplate(template, content, font string) string {
	return strings.NewReplacer(
		slotContent, content,
		slotContentNamed, content,
		slotFont, font,
		slotFontNamed, font,
	).Replace(template)
}

// templateNeedsFont reports whether the template has a font slot, in which
// case resolution requires a font to be available.
func templateNeedsFont(template string) bool {
	return strings.Contains(template, slotFont) || strings.Contains(template, slotFontNamed)
}
