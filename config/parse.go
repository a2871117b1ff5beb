package config

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// Parse decodes YAML bytes into a Run, starting from DefaultRun so any
// field the document omits keeps its default, then validates the result.
func Parse(data []byte) (Run, error) {
	r := DefaultRun()
	if err := yaml.Unmarshal(data, &r); err != nil {
		return Run{}, fmt.Errorf("config: parsing: %w", err)
	}
	if err := r.Validate(); err != nil {
		return Run{}, err
	}
	return r, nil
}
