package glyphspec

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"glyphgen/internal/services"
)

// Load reads and parses a specification file.
func Load(path string) (*Document, error) {
	file, err := os.Open(path)
	if err != nil {
		marker := services.ErrConfiguration
		if errors.Is(err, fs.ErrNotExist) {
			marker = services.ErrNotFound
		}
		return nil, services.Wrap(marker, "glyphspec", "open", path, err)
	}
	defer file.Close()
	return Parse(file)
}

// Parse decodes a specification document from r and validates its schema.
func Parse(r io.Reader) (*Document, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, services.Wrap(services.ErrConfiguration, "glyphspec", "read", "", err)
	}

	var raw struct {
		Settings *Settings       `json:"settings"`
		Subsets  json.RawMessage `json:"subsets"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, services.Wrap(services.ErrConfiguration, "glyphspec", "parse", "invalid JSON", err)
	}
	if raw.Settings == nil {
		return nil, services.Wrap(services.ErrConfiguration, "glyphspec", "validate", "missing required field \"settings\"", nil)
	}
	if len(raw.Subsets) == 0 || bytes.Equal(raw.Subsets, []byte("null")) {
		return nil, services.Wrap(services.ErrConfiguration, "glyphspec", "validate", "missing required field \"subsets\"", nil)
	}

	doc := &Document{Settings: *raw.Settings}
	if err := decodeSubsets(raw.Subsets, doc); err != nil {
		return nil, err
	}
	if err := doc.validate(); err != nil {
		return nil, err
	}
	return doc, nil
}

// decodeSubsets walks the subsets object token by token so subset order
// matches the source document. encoding/json map decoding would randomize it.
func decodeSubsets(raw json.RawMessage, doc *Document) error {
	dec := json.NewDecoder(bytes.NewReader(raw))

	tok, err := dec.Token()
	if err != nil {
		return services.Wrap(services.ErrConfiguration, "glyphspec", "parse", "read subsets", err)
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return services.Wrap(services.ErrConfiguration, "glyphspec", "validate", "\"subsets\" must be an object", nil)
	}

	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return services.Wrap(services.ErrConfiguration, "glyphspec", "parse", "read subset name", err)
		}
		name, ok := tok.(string)
		if !ok {
			return services.Wrap(services.ErrConfiguration, "glyphspec", "parse", "unexpected subset key", nil)
		}
		var entries []Entry
		if err := dec.Decode(&entries); err != nil {
			return services.Wrap(services.ErrConfiguration, "glyphspec", "parse", fmt.Sprintf("subset %q", name), err)
		}
		doc.Subsets = append(doc.Subsets, Subset{Name: name, Entries: entries})
	}
	return nil
}

func (d *Document) validate() error {
	if d.Settings.Name == "" {
		return services.Wrap(services.ErrConfiguration, "glyphspec", "validate", "settings.name must be set", nil)
	}
	for _, subset := range d.Subsets {
		if subset.Name == "" {
			return services.Wrap(services.ErrConfiguration, "glyphspec", "validate", "subset with empty name", nil)
		}
		for i, entry := range subset.Entries {
			if entry.Name == "" {
				return services.Wrap(services.ErrConfiguration, "glyphspec", "validate",
					fmt.Sprintf("subset %q entry %d has no name", subset.Name, i), nil)
			}
			if len(entry.Renditions) == 0 {
				return services.Wrap(services.ErrConfiguration, "glyphspec", "validate",
					fmt.Sprintf("subset %q entry %q has no renditions", subset.Name, entry.Name), nil)
			}
		}
	}
	return nil
}

// EntryCount returns the total number of entries across all subsets.
func (d *Document) EntryCount() int {
	count := 0
	for _, subset := range d.Subsets {
		count += len(subset.Entries)
	}
	return count
}
