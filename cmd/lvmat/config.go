package main

import (
	"fmt"
	"math"
	"strings"

	"gopkg.in/gcfg.v1"

	"github.com/katalvlaran/lvmath/matrix"
)

// Supported job operations.
const (
	OpDeterminant = "determinant"
	OpInvert      = "invert"
	OpTranspose   = "transpose"
	OpRotate90    = "rotate90"
	OpRotate180   = "rotate180"
	OpFlipX       = "flipx"
	OpFlipY       = "flipy"
	OpPow         = "pow"
)

var validOps = []string{
	OpDeterminant, OpInvert, OpTranspose, OpRotate90,
	OpRotate180, OpFlipX, OpFlipY, OpPow,
}

// Config is the INI job description read by lvmat.
//
//	[input]
//	path = m.txt
//	size = 3   ; optional, reads the leading size×size block
//
//	[job]
//	op = invert
//
//	[output]
//	path = out.txt
//	precision = 6
//
//	[tolerance]
//	epsilon = 1e-8
//	maxulps = 1
type Config struct {
	Input struct {
		Path string
		Size int
	}
	Job struct {
		Op    string
		Power int
	}
	Output struct {
		Path      string
		Precision int
	}
	Tolerance struct {
		Epsilon float64
		MaxULPs uint64
	}
}

// DefaultConfig returns a Config with every optional field at its default.
func DefaultConfig() Config {
	c := Config{}
	c.Output.Precision = -1
	c.Tolerance.Epsilon = matrix.DefaultEpsilon
	c.Tolerance.MaxULPs = matrix.DefaultMaxULPs
	c.Job.Power = 1

	return c
}

// ReadConfig loads fname on top of DefaultConfig and validates it.
func ReadConfig(fname string) (*Config, error) {
	c := DefaultConfig()
	if err := gcfg.ReadFileInto(&c, fname); err != nil {
		return nil, err
	}
	if err := c.CheckInit(); err != nil {
		return nil, err
	}

	return &c, nil
}

// ParseConfig is ReadConfig over an in-memory INI string.
func ParseConfig(text string) (*Config, error) {
	c := DefaultConfig()
	if err := gcfg.ReadStringInto(&c, text); err != nil {
		return nil, err
	}
	if err := c.CheckInit(); err != nil {
		return nil, err
	}

	return &c, nil
}

// CheckInit normalizes and validates c.
func (c *Config) CheckInit() error {
	if c.Input.Path == "" {
		return fmt.Errorf("the [input] section requires a 'path' variable")
	}
	if c.Input.Size < 0 {
		return fmt.Errorf("[input] size = %d, must be non-negative", c.Input.Size)
	}

	c.Job.Op = strings.ToLower(strings.TrimSpace(c.Job.Op))
	if !isValidOp(c.Job.Op) {
		return fmt.Errorf("[job] op = '%s' is not one of %s", c.Job.Op, strings.Join(validOps, ", "))
	}
	if c.Job.Op == OpPow && c.Job.Power < 0 {
		return fmt.Errorf("[job] power = %d, must be non-negative", c.Job.Power)
	}

	eps := c.Tolerance.Epsilon
	if math.IsNaN(eps) || math.IsInf(eps, 0) || eps < 0 {
		return fmt.Errorf("[tolerance] epsilon = %g, must be finite and non-negative", eps)
	}

	return nil
}

func isValidOp(op string) bool {
	for _, v := range validOps {
		if v == op {
			return true
		}
	}

	return false
}
