package table

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"gitlab.com/tozd/go/errors"
	"gopkg.in/yaml.v3"
)

//go:embed default.yaml
var defaultTable []byte

// Default returns the built-in table
func Default() *Table {
	t, err := ParseYAML(defaultTable)
	if err != nil {
		panic("parsing embedded default table: " + err.Error())
	}
	return t
}

// Load reads a table file. The format is determined by the file extension:
// - .yaml or .yml for a YAML mapping
// - .json for a JSON object
// Entries keep the order they appear in the file.
func Load(path string) (*Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Errorf("reading table file: %w", err)
	}

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		return ParseYAML(data)
	case ".json":
		return ParseJSON(data)
	default:
		return nil, errors.Errorf("unsupported table file extension %q", ext)
	}
}

// ParseYAML parses a YAML mapping of source text to replacement text.
// Decoding goes through yaml.Node since a Go map would lose the key order.
func ParseYAML(data []byte) (*Table, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, errors.Errorf("parsing YAML: %w", err)
	}

	t := New()
	if len(doc.Content) == 0 {
		return t, nil
	}

	root := doc.Content[0]
	if root.Kind != yaml.MappingNode {
		return nil, errors.Errorf("line %d: table must be a mapping", root.Line)
	}

	for i := 0; i+1 < len(root.Content); i += 2 {
		key, value := root.Content[i], root.Content[i+1]
		if key.Kind != yaml.ScalarNode || value.Kind != yaml.ScalarNode {
			return nil, errors.Errorf("line %d: table entries must be plain strings", key.Line)
		}
		t.Set(key.Value, value.Value)
	}

	return t, nil
}

// ParseJSON parses a JSON object of source text to replacement text,
// reading it token by token to keep the key order.
func ParseJSON(data []byte) (*Table, error) {
	dec := json.NewDecoder(bytes.NewReader(data))

	tok, err := dec.Token()
	if err != nil {
		return nil, errors.Errorf("parsing JSON: %w", err)
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return nil, errors.New("parsing JSON: table must be an object")
	}

	t := New()
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return nil, errors.Errorf("parsing JSON: %w", err)
		}
		key, ok := keyTok.(string)
		if !ok {
			return nil, errors.Errorf("parsing JSON: unexpected key %v", keyTok)
		}

		var value string
		if err := dec.Decode(&value); err != nil {
			return nil, errors.Errorf("parsing JSON value for %q: %w", key, err)
		}
		t.Set(key, value)
	}

	if _, err := dec.Token(); err != nil {
		return nil, errors.Errorf("parsing JSON: %w", err)
	}

	return t, nil
}
