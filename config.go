package main

import (
	"errors"
	"fmt"
)

// ErrInvalidConfig marks a policy selection that fails validation. The run
// never starts.
var ErrInvalidConfig = errors.New("invalid configuration")

// Method identifies the active trimming policy.
type Method int

const (
	MethodBase Method = iota
	MethodWindow
)

func (m Method) String() string {
	if m == MethodWindow {
		return "window"
	}
	return "base"
}

// Config holds the validated trimming policy for a run. Exactly one policy
// is active; Config is immutable after NewConfig.
type Config struct {
	Method     Method
	Threshold  int
	WindowSize int
	Strict     bool
}

// NewConfig validates the policy selection. A positive threshold selects its
// policy; selecting both or neither fails, as does a non-positive window
// size for the window policy.
func NewConfig(baseThreshold, windowThreshold, windowSize int, strict bool) (*Config, error) {
	if baseThreshold > 0 && windowThreshold > 0 {
		return nil, fmt.Errorf("%w: base and window trimming are mutually exclusive", ErrInvalidConfig)
	}
	if baseThreshold <= 0 && windowThreshold <= 0 {
		return nil, fmt.Errorf("%w: one of base threshold or window threshold is required", ErrInvalidConfig)
	}
	if baseThreshold > 0 {
		return &Config{Method: MethodBase, Threshold: baseThreshold, Strict: strict}, nil
	}
	if windowSize <= 0 {
		return nil, fmt.Errorf("%w: window size must be positive, got %d", ErrInvalidConfig, windowSize)
	}
	return &Config{Method: MethodWindow, Threshold: windowThreshold, WindowSize: windowSize, Strict: strict}, nil
}

func (c *Config) trim(scores []int) Boundary {
	if c.Method == MethodWindow {
		return trimByWindow(scores, c.Threshold, c.WindowSize)
	}
	return trimByBase(scores, c.Threshold)
}
