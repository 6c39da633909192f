package resolve

import (
	"fmt"
	"path/filepath"
	"strings"

	"golang.org/x/text/unicode/norm"

	"glyphgen/internal/glyphspec"
	"glyphgen/internal/services"
	"glyphgen/internal/textutil"
)

// Job is one fully resolved external render invocation.
type Job struct {
	// OutputPath is relative to the output root:
	// <settings.name>/<subset>/<entry>[-<rendition>].png
	OutputPath string
	// RenderString is the template with content and font substituted, handed
	// verbatim to the external engine.
	RenderString string
	// Flip and Flop mirror the image vertically/horizontally (pango mode only).
	Flip bool
	Flop bool

	// Provenance for diagnostics and the manifest.
	Subset    string
	Entry     string
	Rendition int
}

// Skip records a rendition that could not be resolved for the selected mode.
type Skip struct {
	Subset    string
	Entry     string
	Rendition int
	Reason    string
}

// Resolve walks the document and emits one job per renderable rendition.
// Renditions without usable content or a required font are returned as skips.
// Structural problems (no template for the mode, names that escape to
// nothing, two renditions resolving to the same output path) are fatal.
func Resolve(doc *glyphspec.Document, mode Mode) ([]Job, []Skip, error) {
	template := templateFor(doc, mode)
	if strings.TrimSpace(template) == "" {
		return nil, nil, services.Wrap(services.ErrConfiguration, "resolver", "template",
			fmt.Sprintf("settings has no %s template", mode), nil)
	}
	needsFont := templateNeedsFont(template)

	rootName, err := textutil.EscapeName(doc.Settings.Name)
	if err != nil {
		return nil, nil, services.Wrap(services.ErrConfiguration, "resolver", "output root", "", err)
	}

	var jobs []Job
	var skips []Skip
	seenPaths := make(map[string]Job)

	for _, subset := range doc.Subsets {
		subsetName, err := textutil.EscapeName(subset.Name)
		if err != nil {
			return nil, nil, services.Wrap(services.ErrConfiguration, "resolver",
				fmt.Sprintf("subset %q", subset.Name), "", err)
		}

		for _, entry := range subset.Entries {
			entryName, err := textutil.EscapeName(entry.Name)
			if err != nil {
				skips = append(skips, Skip{
					Subset:    subset.Name,
					Entry:     entry.Name,
					Rendition: -1,
					Reason:    fmt.Sprintf("entry name unusable: %v", err),
				})
				continue
			}
			multi := len(entry.Renditions) > 1

			for i, rendition := range entry.Renditions {
				content, ok := contentFor(mode, rendition)
				if !ok {
					skips = append(skips, Skip{
						Subset:    subset.Name,
						Entry:     entry.Name,
						Rendition: i,
						Reason:    fmt.Sprintf("no usable content for %s mode", mode),
					})
					continue
				}

				font := rendition.Font
				if font == "" {
					font = doc.Settings.DefaultFont
				}
				if needsFont && font == "" {
					skips = append(skips, Skip{
						Subset:    subset.Name,
						Entry:     entry.Name,
						Rendition: i,
						Reason:    "template requires a font and none is configured",
					})
					continue
				}

				fileName := entryName
				if multi {
					fileName = fmt.Sprintf("%s-%d", entryName, i)
				}

				job := Job{
					OutputPath:   filepath.Join(rootName, subsetName, fileName+".png"),
					RenderString: expandTemplate(template, content, font),
					Subset:       subset.Name,
					Entry:        entry.Name,
					Rendition:    i,
				}
				if mode == ModePango {
					job.Flip = rendition.PangoFlip
					job.Flop = rendition.PangoFlop
				}
				if prior, dup := seenPaths[job.OutputPath]; dup {
					return nil, nil, services.Wrap(services.ErrValidation, "resolver", "output path",
						fmt.Sprintf("entries %q and %q both resolve to %s", prior.Entry, entry.Name, job.OutputPath), nil)
				}
				seenPaths[job.OutputPath] = job
				jobs = append(jobs, job)
			}
		}
	}

	return jobs, skips, nil
}

func templateFor(doc *glyphspec.Document, mode Mode) string {
	if mode == ModeXelatex {
		return doc.Settings.Xelatex
	}
	return doc.Settings.Pango
}

// contentFor applies the content precedence: the mode-specific override wins
// and passes through verbatim; literal utf8 text is NFC-normalized and
// escaped for the engine.
func contentFor(mode Mode, r glyphspec.Rendition) (string, bool) {
	switch mode {
	case ModeXelatex:
		if r.Xelatex != "" {
			return r.Xelatex, true
		}
	default:
		if r.Pango != "" {
			return r.Pango, true
		}
	}
	if r.UTF8 != "" {
		return EscapeContent(mode, norm.NFC.String(r.UTF8)), true
	}
	return "", false
}
