package config

import (
	"fmt"
	"math"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/orbitplot/internal/dynamo"
)

const (
	DefaultStep    = 10000
	DefaultG       = 1.0
	DefaultM       = 1.0
	DefaultDt      = 0.001
	DefaultBuf     = 100
	DefaultImgSize = 1024
)

type Config struct {
	Step    uint64  `yaml:"step"`
	G       float64 `yaml:"g"`
	M       float64 `yaml:"m"`
	X       float64 `yaml:"x"`
	Y       float64 `yaml:"y"`
	VX      float64 `yaml:"vx"`
	VY      float64 `yaml:"vy"`
	Dt      float64 `yaml:"t"`
	Buf     int     `yaml:"buf"`
	ImgSize uint32  `yaml:"img_size"`
	ScaleGM bool    `yaml:"scale_gm"`
	OutDir  string  `yaml:"out_dir"`
}

// DefaultConfig is a unit circular orbit.
func DefaultConfig() *Config {
	return &Config{
		Step:    DefaultStep,
		G:       DefaultG,
		M:       DefaultM,
		X:       1.0,
		VY:      1.0,
		Dt:      DefaultDt,
		Buf:     DefaultBuf,
		ImgSize: DefaultImgSize,
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config %s: %w", path, err)
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate rejects configurations the integrator or renderer cannot use.
func (c *Config) Validate() error {
	if c.Step == 0 {
		return fmt.Errorf("%w: step must be positive", dynamo.ErrInvalidConfig)
	}
	if c.Buf <= 0 {
		return fmt.Errorf("%w: buf must be positive, got %d", dynamo.ErrInvalidConfig, c.Buf)
	}
	if c.ImgSize == 0 {
		return fmt.Errorf("%w: img_size must be positive", dynamo.ErrInvalidConfig)
	}
	if c.Dt == 0 {
		return fmt.Errorf("%w: t must be non-zero", dynamo.ErrInvalidConfig)
	}

	for name, v := range map[string]float64{
		"g": c.G, "m": c.M, "x": c.X, "y": c.Y, "vx": c.VX, "vy": c.VY, "t": c.Dt,
	} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("%w: %s must be finite, got %v", dynamo.ErrInvalidConfig, name, v)
		}
	}
	return nil
}

func (c *Config) Constants() dynamo.Constants {
	return dynamo.Constants{G: c.G, M: c.M, Dt: c.Dt}
}

func (c *Config) InitState() dynamo.State {
	return dynamo.State{X: c.X, Y: c.Y, VX: c.VX, VY: c.VY}
}
