package campus

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// LoadFile reads a map file (YAML or JSON) and returns the validated Map.
// Format is detected by extension (.yaml/.yml → YAML, .json → JSON) or by content.
func LoadFile(path string) (*Map, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read map: %w", err)
	}

	return Load(data, filepath.Ext(path))
}

// Load parses a map from bytes and validates it. ext is the file extension
// used as a format hint; empty means detect from content (JSON if it starts
// with '{', YAML otherwise).
func Load(data []byte, ext string) (*Map, error) {
	ext = strings.ToLower(ext)
	if ext == ".yml" {
		ext = ".yaml"
	}
	if ext == "" {
		if strings.HasPrefix(strings.TrimSpace(string(data)), "{") {
			ext = ".json"
		} else {
			ext = ".yaml"
		}
	}

	var m Map
	switch ext {
	case ".json":
		if err := json.Unmarshal(data, &m); err != nil {
			return nil, fmt.Errorf("parse map json: %w", err)
		}
	case ".yaml":
		if err := yaml.Unmarshal(data, &m); err != nil {
			return nil, fmt.Errorf("parse map yaml: %w", err)
		}
	default:
		return nil, fmt.Errorf("%w: unsupported map format %q", ErrInvalidMap, ext)
	}

	if err := m.Validate(); err != nil {
		return nil, err
	}

	return &m, nil
}
