package gridgraph

import (
	"fmt"
	"io"

	"github.com/ungerik/go3d/vec3"
	"gopkg.in/yaml.v3"
)

// Layout is the YAML form of a grid:
//
//	cell_size: 0.5
//	origin: [-2, -1]
//	connectivity: 8
//	rows:
//	  - "..#.."
//	  - "....."
//
// Row 0 is y = 0. '.' marks a walkable cell, '#' a blocked one.
// Missing cell_size defaults to 1, missing connectivity to 8.
type Layout struct {
	CellSize     float32   `yaml:"cell_size"`
	Origin       []float32 `yaml:"origin"`
	Connectivity int       `yaml:"connectivity"`
	Rows         []string  `yaml:"rows"`
}

// ParseLayout decodes a YAML layout and builds its grid.
func ParseLayout(data []byte) (*GridGraph, error) {
	var l Layout
	if err := yaml.Unmarshal(data, &l); err != nil {
		return nil, fmt.Errorf("gridgraph: decode layout: %w", err)
	}
	return l.Build()
}

// LoadLayout reads a YAML layout from r and builds its grid.
func LoadLayout(r io.Reader) (*GridGraph, error) {
	var l Layout
	if err := yaml.NewDecoder(r).Decode(&l); err != nil {
		return nil, fmt.Errorf("gridgraph: decode layout: %w", err)
	}
	return l.Build()
}

// Build converts the layout into a GridGraph.
func (l Layout) Build() (*GridGraph, error) {
	opts := DefaultGridOptions()
	if l.CellSize != 0 {
		opts.CellSize = l.CellSize
	}
	switch l.Connectivity {
	case 0, 8:
		opts.Conn = Conn8
	case 4:
		opts.Conn = Conn4
	default:
		return nil, fmt.Errorf("%w: got %d", ErrBadConnectivity, l.Connectivity)
	}
	if len(l.Origin) > 3 {
		return nil, fmt.Errorf("%w: got %d", ErrBadOrigin, len(l.Origin))
	}
	var origin vec3.T
	copy(origin[:], l.Origin)
	opts.Origin = origin

	values := make([][]int, len(l.Rows))
	for y, row := range l.Rows {
		values[y] = make([]int, 0, len(row))
		for x, r := range row {
			switch r {
			case '.':
				values[y] = append(values[y], 1)
			case '#':
				values[y] = append(values[y], 0)
			default:
				return nil, fmt.Errorf("%w: %q at (%d,%d)", ErrBadLayoutRune, r, x, y)
			}
		}
	}

	return NewGridGraph(values, opts)
}
