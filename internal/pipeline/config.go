package pipeline

import (
	"bytes"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/pipeplan/builder"
	"github.com/katalvlaran/pipeplan/render"
)

// Defaults mirror the neighborhood the tool was written for: 33 houses,
// starting from the first one.
const (
	DefaultVertices = 33
	DefaultStart    = "Casa 1"
	DefaultOutput   = "prim.svg"
	DefaultTitle    = "Minimum Spanning Tree (Prim)"
)

// Config holds one pipeline run's parameters. Seed 0 means "seed from the
// clock"; any other value reproduces the same graph.
type Config struct {
	Vertices int    `yaml:"vertices"`
	Start    string `yaml:"start"`
	Seed     int64  `yaml:"seed"`
	Output   string `yaml:"output"`
	Title    string `yaml:"title"`
	Trace    bool   `yaml:"trace"`
}

// DefaultConfig returns the configuration used when nothing is overridden.
func DefaultConfig() Config {
	return Config{
		Vertices: DefaultVertices,
		Start:    DefaultStart,
		Output:   DefaultOutput,
		Title:    DefaultTitle,
		Trace:    true,
	}
}

// Validate rejects configurations that cannot produce a figure.
func (c Config) Validate() error {
	if c.Vertices <= 0 {
		return errors.Wrapf(builder.ErrTooFewVertices, "vertices must be positive, got %d", c.Vertices)
	}
	if c.Start == "" {
		return errors.New("start vertex must not be empty")
	}
	if c.Output == "" {
		return errors.New("output path must not be empty")
	}
	if _, err := render.FormatFromPath(c.Output); err != nil {
		return errors.Wrap(err, "output")
	}

	return nil
}

// ParseConfig decodes YAML over DefaultConfig. Unknown keys are rejected.
func ParseConfig(data []byte) (Config, error) {
	c := DefaultConfig()
	if len(bytes.TrimSpace(data)) == 0 {
		return c, nil
	}
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&c); err != nil {
		return Config{}, errors.Wrap(err, "parsing configuration")
	}

	return c, nil
}
