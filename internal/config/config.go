// Package config handles configuration for the engine tools.
package config

import "fmt"

// Config holds all dampsim settings.
type Config struct {
	Sim     SimConfig     `yaml:"sim"`
	Logging LoggingConfig `yaml:"logging"`
}

// SimConfig holds chase simulation settings.
type SimConfig struct {
	Frames      int        `yaml:"frames"`
	TimeStep    float32    `yaml:"time_step"`
	SmoothTime  float32    `yaml:"smooth_time"`
	MaxSpeed    float32    `yaml:"max_speed"`
	TurnRateDeg float32    `yaml:"turn_rate_deg"` // heading turn rate, degrees per second
	Start       [3]float32 `yaml:"start"`
	Target      [3]float32 `yaml:"target"`
	TraceEvery  int        `yaml:"trace_every"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level string `yaml:"level"`
	File  string `yaml:"file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Sim: SimConfig{
			Frames:      600,
			TimeStep:    1.0 / 60,
			SmoothTime:  0.3,
			MaxSpeed:    50,
			TurnRateDeg: 180,
			Start:       [3]float32{0, 0, 0},
			Target:      [3]float32{10, 0, 5},
			TraceEvery:  10,
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// Validate reports the first invalid setting.
func (c *Config) Validate() error {
	if c.Sim.Frames <= 0 {
		return fmt.Errorf("sim.frames must be positive, got %d", c.Sim.Frames)
	}
	if c.Sim.TimeStep <= 0 {
		return fmt.Errorf("sim.time_step must be positive, got %v", c.Sim.TimeStep)
	}
	if c.Sim.SmoothTime <= 0 {
		return fmt.Errorf("sim.smooth_time must be positive, got %v", c.Sim.SmoothTime)
	}
	if c.Sim.MaxSpeed <= 0 {
		return fmt.Errorf("sim.max_speed must be positive, got %v", c.Sim.MaxSpeed)
	}
	if c.Sim.TraceEvery <= 0 {
		return fmt.Errorf("sim.trace_every must be positive, got %d", c.Sim.TraceEvery)
	}
	return nil
}
