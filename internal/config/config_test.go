package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/taigrr/catv/pkg/catv"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	if cfg.LogLevel != "info" {
		t.Errorf("LogLevel = %q, want info", cfg.LogLevel)
	}
	if len(cfg.Matrices) != 1 {
		t.Fatalf("got %d matrices, want 1", len(cfg.Matrices))
	}
	m, ok := cfg.Matrices[0].Matrix4()
	if !ok {
		t.Fatal("sample matrix is not 4x4")
	}
	if m.At(2, 1) != 11 || m.At(3, 3) != 16 {
		t.Errorf("sample =\n%v", m)
	}
	if got := m.Determinant(); got != 24 {
		t.Errorf("sample determinant = %v, want 24", got)
	}
}

func TestParse(t *testing.T) {
	data := []byte(`
log_level = "debug"

[[matrix]]
name = "rot"
rows = [[0, -1, 0], [1, 0, 0], [0, 0, 1.5]]

[[vector]]
name = "up"
values = [0, 1, 0]

[[vector]]
name = "p"
values = [1, 2, 3, 1]
`)
	cfg, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("LogLevel = %q", cfg.LogLevel)
	}

	m, ok := cfg.Matrices[0].Matrix3()
	if !ok {
		t.Fatal("rot is not 3x3")
	}
	want := catv.M3FromRows(catv.V3(0, -1, 0), catv.V3(1, 0, 0), catv.V3(0, 0, 1.5))
	if m != want {
		t.Errorf("rot =\n%v\nwant\n%v", m, want)
	}
	if _, ok := cfg.Matrices[0].Matrix4(); ok {
		t.Error("Matrix4 should fail on a 3x3 entry")
	}

	up, ok := cfg.Vectors[0].Vector3()
	if !ok || up != catv.V3(0, 1, 0) {
		t.Errorf("up = %v, %v", up, ok)
	}
	p, ok := cfg.Vectors[1].Vector4()
	if !ok || p != catv.Point4(1, 2, 3) {
		t.Errorf("p = %v, %v", p, ok)
	}
	if _, ok := cfg.Vectors[1].Vector3(); ok {
		t.Error("Vector3 should fail on a 4-component entry")
	}
}

func TestParseDefaultsLogLevel(t *testing.T) {
	cfg, err := Parse([]byte(""))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if cfg.LogLevel != "info" {
		t.Errorf("LogLevel = %q, want info", cfg.LogLevel)
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		data string
		want error
	}{
		{
			name: "non-square",
			data: "[[matrix]]\nname = \"a\"\nrows = [[1, 2, 3], [4, 5, 6]]\n",
			want: ErrShape,
		},
		{
			name: "ragged",
			data: "[[matrix]]\nname = \"a\"\nrows = [[1, 2, 3], [4, 5], [6, 7, 8]]\n",
			want: ErrShape,
		},
		{
			name: "2x2",
			data: "[[matrix]]\nname = \"a\"\nrows = [[1, 2], [3, 4]]\n",
			want: ErrShape,
		},
		{
			name: "short vector",
			data: "[[vector]]\nname = \"v\"\nvalues = [1, 2]\n",
			want: ErrShape,
		},
		{
			name: "missing name",
			data: "[[vector]]\nvalues = [1, 2, 3]\n",
			want: ErrName,
		},
		{
			name: "duplicate name",
			data: "[[vector]]\nname = \"v\"\nvalues = [1, 2, 3]\n[[matrix]]\nname = \"v\"\nrows = [[1, 0, 0], [0, 1, 0], [0, 0, 1]]\n",
			want: ErrName,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Parse([]byte(tc.data))
			if !errors.Is(err, tc.want) {
				t.Errorf("err = %v, want %v", err, tc.want)
			}
		})
	}
}

func TestParseRejectsUnknownKeys(t *testing.T) {
	if _, err := Parse([]byte("colour = \"red\"\n")); err == nil {
		t.Error("expected error for unknown key")
	}
	if _, err := Parse([]byte("log_level = [")); err == nil {
		t.Error("expected error for malformed TOML")
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catv.toml")
	if err := os.WriteFile(path, []byte(defaultConfig), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(cfg.Matrices) != 1 || cfg.Matrices[0].Name != "M" {
		t.Errorf("Load = %+v", cfg)
	}

	if _, err := Load(filepath.Join(t.TempDir(), "missing.toml")); err == nil {
		t.Error("expected error for missing file")
	}
}
