package pipeline

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/ctessum/geom"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/terrain/pourpoint"
)

// ErrInvalidConfig is wrapped by every Validate failure.
var ErrInvalidConfig = errors.New("pipeline: invalid config")

// Config describes one run. Zero Workers and CheckInterval select the
// defaults of each stage package; zero SnapRadius disables snapping and
// zero StreamThreshold skips the stream grid.
type Config struct {
	Workers         int               `yaml:"workers"`
	CheckInterval   int               `yaml:"check_interval"`
	SnapRadius      int               `yaml:"snap_radius"`
	StreamThreshold int64             `yaml:"stream_threshold"`
	Accumulation    bool              `yaml:"accumulation"`
	LogLevel        string            `yaml:"log_level"`
	PourPoints      []PourPointConfig `yaml:"pour_points"`
}

// PourPointConfig is one outlet in the grid's coordinate system.
type PourPointConfig struct {
	ID   int32   `yaml:"id"`
	Name string  `yaml:"name,omitempty"`
	X    float64 `yaml:"x"`
	Y    float64 `yaml:"y"`
}

// DefaultConfig enables accumulation at info level and nothing else.
func DefaultConfig() *Config {
	return &Config{
		Accumulation: true,
		LogLevel:     "info",
	}
}

// LoadConfig reads and parses a YAML config file.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading pipeline config: %w", err)
	}
	return ParseConfig(data)
}

// ParseConfig parses YAML over DefaultConfig. Unknown keys are rejected.
// An empty or comment-only document yields DefaultConfig.
func ParseConfig(data []byte) (*Config, error) {
	cfg := DefaultConfig()
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("parsing pipeline config: %w", err)
	}
	return cfg, nil
}

// Validate checks ranges, the log level and pour-point ids.
func (c *Config) Validate() error {
	if c.Workers < 0 {
		return fmt.Errorf("%w: workers must be non-negative, got %d", ErrInvalidConfig, c.Workers)
	}
	if c.CheckInterval < 0 {
		return fmt.Errorf("%w: check_interval must be non-negative, got %d", ErrInvalidConfig, c.CheckInterval)
	}
	if c.SnapRadius < 0 {
		return fmt.Errorf("%w: snap_radius must be non-negative, got %d", ErrInvalidConfig, c.SnapRadius)
	}
	if c.StreamThreshold < 0 {
		return fmt.Errorf("%w: stream_threshold must be non-negative, got %d", ErrInvalidConfig, c.StreamThreshold)
	}
	if c.LogLevel != "" {
		if _, err := logrus.ParseLevel(c.LogLevel); err != nil {
			return fmt.Errorf("%w: log_level: %v", ErrInvalidConfig, err)
		}
	}
	seen := make(map[int32]bool, len(c.PourPoints))
	for i, p := range c.PourPoints {
		if p.ID < 1 {
			return fmt.Errorf("%w: pour_points[%d]: id must be at least 1, got %d", ErrInvalidConfig, i, p.ID)
		}
		if seen[p.ID] {
			return fmt.Errorf("%w: pour_points[%d]: duplicate id %d", ErrInvalidConfig, i, p.ID)
		}
		seen[p.ID] = true
	}
	return nil
}

// needsAccumulation reports whether any stage consumes the accumulation grid.
func (c *Config) needsAccumulation() bool {
	return c.Accumulation || c.SnapRadius > 0 || c.StreamThreshold > 0
}

func (c *Config) pourPoints() []pourpoint.PourPoint {
	out := make([]pourpoint.PourPoint, len(c.PourPoints))
	for i, p := range c.PourPoints {
		out[i] = pourpoint.PourPoint{ID: p.ID, Name: p.Name, Location: geom.Point{X: p.X, Y: p.Y}}
	}
	return out
}
