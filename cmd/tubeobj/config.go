package main

import (
	"fmt"
	"math"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"honnef.co/go/tube"
)

// config is the content of a knot file.
type config struct {
	Radius           float64     `toml:"radius" yaml:"radius"`
	Rows             int         `toml:"rows" yaml:"rows"`
	Columns          int         `toml:"columns" yaml:"columns"`
	Closed           bool        `toml:"closed" yaml:"closed"`
	Smooth           bool        `toml:"smooth" yaml:"smooth"`
	CornerCorrection bool        `toml:"corner_correction" yaml:"corner_correction"`
	Tension          float64     `toml:"tension" yaml:"tension"`
	Knots            []knotEntry `toml:"knots" yaml:"knots"`
}

type knotEntry struct {
	Position   []float64 `toml:"position" yaml:"position"`
	TangentIn  []float64 `toml:"tangent_in" yaml:"tangent_in"`
	TangentOut []float64 `toml:"tangent_out" yaml:"tangent_out"`
	// Twist is in degrees around the curve's direction.
	Twist float64 `toml:"twist" yaml:"twist"`
	Mode  string  `toml:"mode" yaml:"mode"`
}

func defaultConfig() config {
	p := tube.DefaultParams()
	return config{
		Radius:           p.Radius,
		Rows:             p.Rows,
		Columns:          p.Columns,
		Closed:           p.Closed,
		Smooth:           p.Smooth,
		CornerCorrection: p.CornerCorrection,
		Tension:          1,
	}
}

// loadConfig reads a knot file, choosing the decoder by extension. Settings
// absent from the file keep their defaults.
func loadConfig(path string) (config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return config{}, err
	}
	return parseConfig(data, filepath.Ext(path))
}

func parseConfig(data []byte, ext string) (config, error) {
	cfg := defaultConfig()
	var err error
	switch ext {
	case ".toml":
		err = toml.Unmarshal(data, &cfg)
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &cfg)
	default:
		return config{}, fmt.Errorf("unsupported knot file extension %q", ext)
	}
	if err != nil {
		return config{}, fmt.Errorf("decoding knot file: %w", err)
	}
	return cfg, nil
}

func (c config) params() tube.Params {
	return tube.Params{
		Radius:           c.Radius,
		Columns:          c.Columns,
		Rows:             c.Rows,
		Closed:           c.Closed,
		Smooth:           c.Smooth,
		CornerCorrection: c.CornerCorrection,
	}
}

func point(v []float64) (tube.Point, error) {
	if len(v) != 3 {
		return tube.Point{}, fmt.Errorf("got %d coordinates, want 3", len(v))
	}
	return tube.Pt(v[0], v[1], v[2]), nil
}

// knots converts the knot entries. Knots without tangents get Catmull-Rom
// tangents. An explicit out tangent is the master for the knot's mode;
// otherwise an explicit in tangent is.
func (c config) knots() ([]tube.Knot, error) {
	ks := make([]tube.Knot, len(c.Knots))
	for i, e := range c.Knots {
		pos, err := point(e.Position)
		if err != nil {
			return nil, fmt.Errorf("knot %d: position: %w", i, err)
		}
		ks[i] = tube.K(pos)
	}
	ks = tube.AutoTangents(ks, c.Closed, c.Tension)

	for i, e := range c.Knots {
		k := &ks[i]
		mode, err := tube.ParseTangentMode(e.Mode)
		if err != nil {
			return nil, fmt.Errorf("knot %d: %w", i, err)
		}
		if e.TangentIn != nil {
			in, err := point(e.TangentIn)
			if err != nil {
				return nil, fmt.Errorf("knot %d: tangent_in: %w", i, err)
			}
			k.SetTangentIn(in, mode)
		}
		if e.TangentOut != nil {
			out, err := point(e.TangentOut)
			if err != nil {
				return nil, fmt.Errorf("knot %d: tangent_out: %w", i, err)
			}
			k.SetTangentOut(out, mode)
		}
		k.Twist = tube.AxisAngle(tube.Forward, e.Twist*math.Pi/180)
	}
	return ks, nil
}
