package records

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/oklog/ulid/v2"
	"gopkg.in/yaml.v3"
)

// LoadFile reads a list of activity records from a JSON or YAML file,
// selected by extension (.json, .yaml, .yml). Records without an ID
// are assigned a fresh ULID so downstream output stays addressable.
func LoadFile(path string) ([]ActivityRecord, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading records file: %w", err)
	}

	var recs []ActivityRecord
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".json":
		if err := json.Unmarshal(data, &recs); err != nil {
			return nil, fmt.Errorf("parsing %s: %w", path, err)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &recs); err != nil {
			return nil, fmt.Errorf("parsing %s: %w", path, err)
		}
	default:
		return nil, fmt.Errorf("unsupported records file extension %q (want .json, .yaml or .yml)", ext)
	}

	for i := range recs {
		if recs[i].ID == "" {
			recs[i].ID = ulid.Make().String()
		}
	}
	return recs, nil
}

// Activities returns the set of activity identifiers present in recs.
func Activities(recs []ActivityRecord) map[string]struct{} {
	set := make(map[string]struct{}, len(recs))
	for _, r := range recs {
		if r.Activity != "" {
			set[r.Activity] = struct{}{}
		}
	}
	return set
}
