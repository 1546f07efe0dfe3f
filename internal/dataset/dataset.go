// Package dataset provides the structured data embedded into comparison prompts.
package dataset

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/rotisserie/eris"
	"gopkg.in/yaml.v3"
)

// Dataset is a nested mapping of string keys to scalars, sequences, and
// nested mappings. It is constructed once per comparison run and read by
// both encoding paths; nothing mutates it after construction.
type Dataset = map[string]any

// Sample returns the built-in demo dataset: a buyer profile and four condo
// listings for that buyer.
func Sample() Dataset {
	return Dataset{
		"buyer_profile": map[string]any{
			"budget_min":   600000,
			"budget_max":   900000,
			"target_areas": []any{"Coral Gables", "Coconut Grove"},
			"must_haves":   []any{"2+ bedrooms", "walkable", "low hoa", "safe neighborhood"},
		},
		"listings": []any{
			map[string]any{
				"mls_id":       "A11861233",
				"price":        439900,
				"beds":         2,
				"baths":        2,
				"sqft":         1180,
				"neighborhood": "Aventura",
				"hoa_monthly":  780,
				"walk_score":   82,
				"safety_score": 7.8,
			},
			map[string]any{
				"mls_id":       "A11543210",
				"price":        795000,
				"beds":         3,
				"baths":        3,
				"sqft":         1650,
				"neighborhood": "Coral Gables",
				"hoa_monthly":  350,
				"walk_score":   89,
				"safety_score": 9.1,
			},
			map[string]any{
				"mls_id":       "A11498765",
				"price":        720000,
				"beds":         2,
				"baths":        2,
				"sqft":         1420,
				"neighborhood": "Coconut Grove",
				"hoa_monthly":  420,
				"walk_score":   92,
				"safety_score": 8.7,
			},
			map[string]any{
				"mls_id":       "A11800001",
				"price":        910000,
				"beds":         3,
				"baths":        2.5,
				"sqft":         1750,
				"neighborhood": "Coral Gables",
				"hoa_monthly":  510,
				"walk_score":   86,
				"safety_score": 9.3,
			},
		},
	}
}

// Load reads a dataset from a JSON or YAML file. The format is chosen by
// file extension: .json, .yaml, or .yml.
func Load(path string) (Dataset, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, eris.Wrap(err, "dataset: read file")
	}

	var ds Dataset
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		if err := json.Unmarshal(raw, &ds); err != nil {
			return nil, eris.Wrap(err, "dataset: parse json")
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(raw, &ds); err != nil {
			return nil, eris.Wrap(err, "dataset: parse yaml")
		}
	default:
		return nil, eris.Errorf("dataset: unsupported file extension %q (want .json, .yaml, or .yml)", filepath.Ext(path))
	}

	return ds, nil
}
