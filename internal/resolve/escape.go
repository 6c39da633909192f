package resolve

import "strings"

// pangoReplacer neutralizes characters that are markup or argument
// metacharacters inside an ImageMagick pango: coder string. The escaped
// semicolons keep ImageMagick from terminating the entity early.
var pangoReplacer = strings.NewReplacer(
	"&", `&amp\;`,
	"<", `&lt\;`,
	">", `&gt\;`,
	`"`, `&quot\;`,
	"'", `&apos\;`,
	`\`, `&#x5c\;`,
	"%", `&#x25\;`,
)

// xelatexReplacer escapes TeX special characters in literal text.
var xelatexReplacer = strings.NewReplacer(
	"#", `\#`,
	"&", `\&`,
	"%", `\%`,
	"$", `\$`,
	"_", `\_`,
	"{", `\{`,
	"}", `\}`,
	"~", `\textasciitilde{}`,
	"^", `\textasciicircum{}`,
	`\`, `\textbackslash{}`,
	`"`, `\char"22`,
)

// EscapeContent prepares literal utf8 text for insertion into the template of
// the given mode. Explicit per-mode overrides bypass this entirely.
func EscapeContent(mode Mode, text string) string {
	switch mode {
	case ModeXelatex:
		return xelatexReplacer.Replace(text)
	default:
		return pangoReplacer.Replace(text)
	}
}
