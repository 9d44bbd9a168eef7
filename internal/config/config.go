// Package config holds the YAML run configuration. Time fields are
// arithmetic expression literals ("60*60*24*365", "1.0/1000.0") resolved by
// Eval, so configs can state cadences in human terms.
package config

import (
	"os"

	"gopkg.in/yaml.v3"

	"github.com/orbit-lab/newtonian/internal/dynamics"
	"github.com/orbit-lab/newtonian/internal/sim"
)

const (
	DefaultOutput         = "newtonian.parquet"
	DefaultTotalTime      = "60*60*24*365"
	DefaultDt             = "0.001"
	DefaultRecordInterval = "1"
)

type Config struct {
	Input          string  `yaml:"input"`
	Output         string  `yaml:"output"`
	TotalTime      string  `yaml:"total_time"`
	Dt             string  `yaml:"dt"`
	RecordInterval string  `yaml:"record_interval"`
	Gravity        float64 `yaml:"gravity"`
}

func DefaultConfig() *Config {
	return &Config{
		Output:         DefaultOutput,
		TotalTime:      DefaultTotalTime,
		Dt:             DefaultDt,
		RecordInterval: DefaultRecordInterval,
		Gravity:        dynamics.G,
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// RunConfig resolves the expression literals into a sim.Config. Validation
// of the resolved values is the driver's job.
func (c *Config) RunConfig() (sim.Config, error) {
	var (
		out sim.Config
		err error
	)
	if out.TotalTime, err = Eval(c.TotalTime); err != nil {
		return sim.Config{}, err
	}
	if out.Dt, err = Eval(c.Dt); err != nil {
		return sim.Config{}, err
	}
	if out.RecordInterval, err = Eval(c.RecordInterval); err != nil {
		return sim.Config{}, err
	}
	out.G = c.Gravity
	return out, nil
}
