package grid

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// MapFile is the YAML schema for grid maps: a name and rectangular cost rows,
// with -1 marking walls.
type MapFile struct {
	Name string  `yaml:"name"`
	Rows [][]int `yaml:"rows"`
}

// Load reads a YAML map file and builds a grid from it.
func Load(path string) (*Grid, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading map file: %w", err)
	}
	var mf MapFile
	if err := yaml.Unmarshal(data, &mf); err != nil {
		return nil, fmt.Errorf("parsing map file: %w", err)
	}
	g, err := New(mf.Rows)
	if err != nil {
		return nil, fmt.Errorf("map %q: %w", mf.Name, err)
	}
	return g, nil
}
