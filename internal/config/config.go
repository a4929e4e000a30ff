// Package config loads the catv demo configuration from TOML.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
	"github.com/taigrr/catv/pkg/catv"
)

var (
	// ErrShape is returned for matrices that are not 3x3 or 4x4, and for
	// vectors that are not 3 or 4 long.
	ErrShape = errors.New("config: unsupported shape")

	// ErrName is returned for empty or duplicate entry names.
	ErrName = errors.New("config: invalid name")
)

// Config is the demo configuration.
type Config struct {
	LogLevel string        `toml:"log_level"`
	Matrices []MatrixEntry `toml:"matrix"`
	Vectors  []VectorEntry `toml:"vector"`
}

// MatrixEntry is a named square matrix given as rows.
type MatrixEntry struct {
	Name string      `toml:"name"`
	Rows [][]float32 `toml:"rows"`
}

// VectorEntry is a named 3- or 4-component vector.
type VectorEntry struct {
	Name   string    `toml:"name"`
	Values []float32 `toml:"values"`
}

const defaultConfig = `
log_level = "info"

[[matrix]]
name = "M"
rows = [
  [1, 2, 3, 4],
  [2, 4, 6, 7],
  [9, 11, 11, 12],
  [13, 14, 15, 16],
]
`

// Default returns the built-in sample configuration.
func Default() *Config {
	cfg, err := Parse([]byte(defaultConfig))
	if err != nil {
		panic(fmt.Sprintf("config: built-in sample is invalid: %v", err))
	}
	return cfg
}

// Load reads and parses a TOML file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes TOML and validates every entry. Unknown keys are rejected.
func Parse(data []byte) (*Config, error) {
	var cfg Config
	dec := toml.NewDecoder(bytes.NewReader(data)).DisallowUnknownFields()
	if err := dec.Decode(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks names and shapes.
func (c *Config) Validate() error {
	names := make(map[string]bool)
	checkName := func(kind, name string) error {
		if name == "" {
			return fmt.Errorf("%s without a name: %w", kind, ErrName)
		}
		if names[name] {
			return fmt.Errorf("%s %q defined twice: %w", kind, name, ErrName)
		}
		names[name] = true
		return nil
	}

	for _, m := range c.Matrices {
		if err := checkName("matrix", m.Name); err != nil {
			return err
		}
		if n := m.Size(); n != 3 && n != 4 {
			return fmt.Errorf("matrix %q: %w", m.Name, ErrShape)
		}
	}
	for _, v := range c.Vectors {
		if err := checkName("vector", v.Name); err != nil {
			return err
		}
		if n := len(v.Values); n != 3 && n != 4 {
			return fmt.Errorf("vector %q has %d components: %w", v.Name, n, ErrShape)
		}
	}
	return nil
}

// Size returns the dimension of a square matrix, or 0 when the rows are
// ragged or not square.
func (m MatrixEntry) Size() int {
	n := len(m.Rows)
	for _, r := range m.Rows {
		if len(r) != n {
			return 0
		}
	}
	return n
}

// Matrix3 converts a 3x3 entry. ok is false for any other size.
func (m MatrixEntry) Matrix3() (mat catv.Matrix3, ok bool) {
	if m.Size() != 3 {
		return mat, false
	}
	for i := range 3 {
		copy(mat[i][:], m.Rows[i])
	}
	return mat, true
}

// Matrix4 converts a 4x4 entry. ok is false for any other size.
func (m MatrixEntry) Matrix4() (mat catv.Matrix4, ok bool) {
	if m.Size() != 4 {
		return mat, false
	}
	for i := range 4 {
		copy(mat[i][:], m.Rows[i])
	}
	return mat, true
}

// Vector3 converts a 3-component entry.
func (v VectorEntry) Vector3() (catv.Vector3, bool) {
	if len(v.Values) != 3 {
		return catv.Vector3{}, false
	}
	return catv.V3(v.Values[0], v.Values[1], v.Values[2]), true
}

// Vector4 converts a 4-component entry.
func (v VectorEntry) Vector4() (catv.Vector4, bool) {
	if len(v.Values) != 4 {
		return catv.Vector4{}, false
	}
	return catv.V4(v.Values[0], v.Values[1], v.Values[2], v.Values[3]), true
}
