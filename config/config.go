// Package config holds everything one filter run needs to know: where the
// inputs are, where the output goes, and how to classify.
package config

import (
	"math"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Config defines the options for a filter run
type Config struct {
	// Relative input and output paths are resolved against DataDir
	DataDir string `yaml:"data_dir"`

	Input struct {
		Points  string `yaml:"points"`  // XYZ file of query points
		Polygon string `yaml:"polygon"` // OBJ or SVG polygon
	} `yaml:"input"`

	Output struct {
		Points  string `yaml:"points"`  // XYZ file of points found inside
		Render  string `yaml:"render"`  // Optional PNG rendering of the run
		Preview bool   `yaml:"preview"` // Print the rendering inline (iTerm)
	} `yaml:"output"`

	Workers   int     `yaml:"workers"`   // Zero means one per CPU
	Tolerance float64 `yaml:"tolerance"` // Zero means exact arithmetic

	Logging struct {
		Level  string `yaml:"level"`
		Format string `yaml:"format"`
		Output string `yaml:"output"`
	} `yaml:"logging"`
}

// Default returns the configuration used when nothing else is given. The file
// names match the usual layout of a data directory.
func Default() *Config {
	c := &Config{DataDir: "."}
	c.Input.Points = "points.xyz"
	c.Input.Polygon = "polygon.obj"
	c.Output.Points = "output.xyz"
	c.Logging.Level = "info"
	c.Logging.Format = "text"
	c.Logging.Output = "stderr"
	return c
}

// Load reads a YAML file over the defaults. Keys missing from the file keep
// their default values.
func Load(path string) (*Config, error) {
	c := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "could not read config file")
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return nil, errors.Wrapf(err, "could not parse config file %q", path)
	}
	return c, nil
}

// Resolve returns a copy of c with relative input and output paths joined onto
// DataDir. Absolute paths and empty paths are left alone.
func (c *Config) Resolve() *Config {
	resolved := *c
	join := func(path string) string {
		if path == "" || filepath.IsAbs(path) || c.DataDir == "" {
			return path
		}
		return filepath.Join(c.DataDir, path)
	}
	resolved.Input.Points = join(c.Input.Points)
	resolved.Input.Polygon = join(c.Input.Polygon)
	resolved.Output.Points = join(c.Output.Points)
	resolved.Output.Render = join(c.Output.Render)
	return &resolved
}

func (c *Config) Validate() error {
	switch {
	case c.Input.Points == "":
		return errors.New("no input points file configured")
	case c.Input.Polygon == "":
		return errors.New("no input polygon file configured")
	case c.Output.Points == "":
		return errors.New("no output file configured")
	case c.Workers < 0:
		return errors.Errorf("workers must not be negative, got %d", c.Workers)
	case c.Tolerance < 0 || math.IsNaN(c.Tolerance):
		return errors.Errorf("tolerance must be a non-negative number, got %g", c.Tolerance)
	case c.Output.Preview && c.Output.Render == "":
		return errors.New("preview needs a render path")
	}
	return nil
}
