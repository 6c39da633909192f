// Package deps reports the availability of the external rendering binaries.
package deps

import (
	"fmt"
	"os/exec"
	"strings"

	"glyphgen/internal/config"
	"glyphgen/internal/resolve"
)

// Requirement defines an external dependency glyphgen relies on.
type Requirement struct {
	Name        string
	Command     string
	Description string
	Optional    bool
}

// Status reports the availability of a dependency.
type Status struct {
	Name        string
	Command     string
	Description string
	Optional    bool
	Available   bool
	Detail      string
}

// Requirements builds the dependency list for the configured tools. xelatex is
// optional unless the xelatex engine is selected.
func Requirements(cfg *config.Config, mode resolve.Mode) []Requirement {
	return []Requirement{
		{
			Name:        "ImageMagick",
			Command:     cfg.Tools.Magick,
			Description: "renders pango markup and rasterizes PDFs",
		},
		{
			Name:        "XeLaTeX",
			Command:     cfg.Tools.Xelatex,
			Description: "typesets glyphs to an intermediate PDF",
			Optional:    mode != resolve.ModeXelatex,
		},
	}
}

// CheckBinaries evaluates the provided requirements and reports availability.
func CheckBinaries(requirements []Requirement) []Status {
	results := make([]Status, 0, len(requirements))
	for _, req := range requirements {
		cmd := strings.TrimSpace(req.Command)
		status := Status{
			Name:        req.Name,
			Command:     cmd,
			Description: strings.TrimSpace(req.Description),
			Optional:    req.Optional,
		}
		if cmd == "" {
			status.Available = false
			status.Detail = "command not configured"
			results = append(results, status)
			continue
		}
		if _, err := exec.LookPath(cmd); err != nil {
			status.Available = false
			status.Detail = fmt.Sprintf("binary %q not found", cmd)
			results = append(results, status)
			continue
		}
		status.Available = true
		results = append(results, status)
	}
	return results
}

// MissingRequired returns the statuses that block the given run.
func MissingRequired(statuses []Status) []Status {
	var missing []Status
	for _, status := range statuses {
		if !status.Available && !status.Optional {
			missing = append(missing, status)
		}
	}
	return missing
}
