package config

import (
	"errors"
	"testing"
)

func TestDefaultIsValid(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Fatalf("Default().Validate() = %v, want nil", err)
	}
}

func TestValidateRejects(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero width", func(c *Config) { c.Width = 0 }},
		{"wide surface", func(c *Config) { c.Width = 300 }},
		{"no rows", func(c *Config) { c.Rows = 0 }},
		{"no slots", func(c *Config) { c.Slots = 0 }},
		{"too many slots", func(c *Config) { c.Slots = MaxSlots + 1 }},
		{"zero frame", func(c *Config) { c.FrameInterval = 0 }},
		{"dapple over 100", func(c *Config) { c.Dapple = 101 }},
		{"step without max", func(c *Config) { c.Policy = PolicyStepUndraw; c.MaxIteration = 0 }},
		{"timed without period", func(c *Config) { c.Policy = PolicyTimed; c.Period = 0 }},
		{"unknown policy", func(c *Config) { c.Policy = Policy(42) }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := Default()
			tt.mutate(&c)
			err := c.Validate()
			if !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("Validate() = %v, want ErrInvalidConfig", err)
			}
		})
	}
}

func TestParsePolicy(t *testing.T) {
	for _, p := range []Policy{PolicyTimed, PolicyStepUndraw, PolicyStepClear} {
		got, err := ParsePolicy(" " + p.String() + " ")
		if err != nil {
			t.Fatalf("ParsePolicy(%q) error: %v", p.String(), err)
		}
		if got != p {
			t.Errorf("ParsePolicy(%q) = %v, want %v", p.String(), got, p)
		}
	}
	if _, err := ParsePolicy("bounce"); !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("ParsePolicy(bounce) = %v, want ErrInvalidConfig", err)
	}
	if s := Policy(9).String(); s != "policy(9)" {
		t.Errorf("Policy(9).String() = %q", s)
	}
}
