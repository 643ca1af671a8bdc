// Command tubeobj extrudes a tube along the knots of a TOML or YAML file and
// writes it as a Wavefront OBJ mesh.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"

	"honnef.co/go/tube"
)

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		log.Fatalf("tubeobj: %v", err)
	}
}

func run(args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("tubeobj", flag.ContinueOnError)
	fs.SetOutput(stderr)
	var (
		in      = fs.String("in", "", "Knot file (.toml, .yaml or .yml)")
		out     = fs.String("out", "", "Output OBJ file (default stdout)")
		radius  = fs.Float64("radius", 0, "Tube radius, overrides the knot file")
		rows    = fs.Int("rows", 0, "Sides of the cross-section, overrides the knot file")
		columns = fs.Int("columns", 0, "Samples per segment, overrides the knot file")
		closed  = fs.Bool("closed", false, "Close the curve, overrides the knot file")
		smooth  = fs.Bool("smooth", false, "Smooth shading, overrides the knot file")
		corners = fs.Bool("corners", false, "Widen rings at sharp corners, overrides the knot file")
		verbose = fs.Bool("v", false, "Enable debug logging")
	)
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *in == "" {
		return fmt.Errorf("missing -in")
	}

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))
	tube.SetLogger(logger)
	defer tube.SetLogger(nil)

	cfg, err := loadConfig(*in)
	if err != nil {
		return err
	}
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "radius":
			cfg.Radius = *radius
		case "rows":
			cfg.Rows = *rows
		case "columns":
			cfg.Columns = *columns
		case "closed":
			cfg.Closed = *closed
		case "smooth":
			cfg.Smooth = *smooth
		case "corners":
			cfg.CornerCorrection = *corners
		}
	})

	knots, err := cfg.knots()
	if err != nil {
		return err
	}
	params := cfg.params()
	spline := tube.Spline{Knots: knots, Closed: params.Closed}
	if logger.Enabled(context.Background(), slog.LevelDebug) {
		for i := range knots {
			frame := spline.KnotFrame(i)
			logger.Debug("knot frame", "knot", i, "forward", frame.Forward(), "up", frame.Up())
		}
	}

	mesh := tube.Extrude(knots, params)
	if err := mesh.Validate(); err != nil {
		return err
	}
	logger.Info("extruded",
		"knots", len(knots),
		"length", spline.Arclen(tube.DefaultAccuracy),
		"vertices", mesh.NumVertices(),
		"faces", mesh.NumFaces())

	if *out == "" {
		return mesh.WriteOBJ(stdout)
	}
	f, err := os.Create(*out)
	if err != nil {
		return err
	}
	if err := mesh.WriteOBJ(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
