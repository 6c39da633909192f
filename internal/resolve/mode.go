package resolve

import (
	"fmt"
	"strings"
)

// Mode selects which rendering engine the resolver targets.
type Mode string

const (
	// ModePango renders styled-text markup directly to an image.
	ModePango Mode = "pango"
	// ModeXelatex typesets an intermediate PDF that is rasterized afterwards.
	ModeXelatex Mode = "xelatex"
)

// ParseMode validates an engine selector from the command line.
func ParseMode(value string) (Mode, error) {
	switch Mode(strings.ToLower(strings.TrimSpace(value))) {
	case ModePango:
		return ModePango, nil
	case ModeXelatex:
		return ModeXelatex, nil
	default:
		return "", fmt.Errorf("engine must be %q or %q, got %q", ModePango, ModeXelatex, value)
	}
}
