// Package reference serves the static read-only lookup data the platform
// exposes next to its mutable collections.
package reference

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"
)

//go:embed faculties.yaml
var facultiesYAML []byte

type Faculty struct {
	Title string `yaml:"title" json:"title"`
	Label string `yaml:"label" json:"label"`
}

type Data struct {
	Faculties []Faculty `yaml:"faculties" json:"faculties"`
}

func Load() (*Data, error) {
	var d Data
	if err := yaml.Unmarshal(facultiesYAML, &d); err != nil {
		return nil, fmt.Errorf("parse faculties reference data: %w", err)
	}
	return &d, nil
}
