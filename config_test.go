package main

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewConfig(t *testing.T) {
	tests := []struct {
		name            string
		baseThreshold   int
		windowThreshold int
		windowSize      int
		wantErr         bool
		wantMethod      Method
	}{
		{
			name:          "BasePolicy",
			baseThreshold: 20,
			wantMethod:    MethodBase,
		},
		{
			name:            "WindowPolicy",
			windowThreshold: 20,
			windowSize:      5,
			wantMethod:      MethodWindow,
		},
		{
			name:            "BothPoliciesSelected",
			baseThreshold:   20,
			windowThreshold: 20,
			windowSize:      5,
			wantErr:         true,
		},
		{
			name:    "NeitherPolicySelected",
			wantErr: true,
		},
		{
			name:          "NegativeThresholdIsUnselected",
			baseThreshold: -3,
			wantErr:       true,
		},
		{
			name:            "ZeroWindowSize",
			windowThreshold: 20,
			windowSize:      0,
			wantErr:         true,
		},
		{
			name:            "NegativeWindowSize",
			windowThreshold: 20,
			windowSize:      -1,
			wantErr:         true,
		},
		{
			name:          "BasePolicyIgnoresWindowSize",
			baseThreshold: 20,
			windowSize:    0,
			wantMethod:    MethodBase,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg, err := NewConfig(tc.baseThreshold, tc.windowThreshold, tc.windowSize, false)
			if tc.wantErr {
				assert.Nil(t, cfg)
				if !errors.Is(err, ErrInvalidConfig) {
					t.Fatalf("expected ErrInvalidConfig, got %v", err)
				}
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tc.wantMethod, cfg.Method)
		})
	}
}

func TestNewConfigCarriesFields(t *testing.T) {
	cfg, err := NewConfig(0, 25, 4, true)
	assert.NoError(t, err)
	assert.Equal(t, MethodWindow, cfg.Method)
	assert.Equal(t, 25, cfg.Threshold)
	assert.Equal(t, 4, cfg.WindowSize)
	assert.True(t, cfg.Strict)

	cfg, err = NewConfig(15, 0, 0, false)
	assert.NoError(t, err)
	assert.Equal(t, MethodBase, cfg.Method)
	assert.Equal(t, 15, cfg.Threshold)
	assert.False(t, cfg.Strict)
}

func TestMethodString(t *testing.T) {
	assert.Equal(t, "base", MethodBase.String())
	assert.Equal(t, "window", MethodWindow.String())
}

func TestConfigTrimDispatch(t *testing.T) {
	scores := []int{5, 25, 25, 25, 5}

	baseCfg, _ := NewConfig(20, 0, 0, false)
	assert.Equal(t, Boundary{Left: 1, Right: 3}, baseCfg.trim(scores))

	// Window of 3 over the same scores qualifies only starting at index 1.
	windowCfg, _ := NewConfig(0, 20, 3, false)
	assert.Equal(t, Boundary{Left: 1, Right: 3}, windowCfg.trim(scores))
}
