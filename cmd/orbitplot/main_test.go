package main

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/san-kum/orbitplot/internal/config"
	"github.com/san-kum/orbitplot/internal/dynamo"
	"github.com/san-kum/orbitplot/internal/experiment"
)

func execute(t *testing.T, args ...string) error {
	t.Helper()
	cmd := newRootCmd()
	cmd.SetArgs(append(args, "--log-level", "error"))
	return cmd.Execute()
}

func TestRootRequiresAllNumericFlags(t *testing.T) {
	err := execute(t, "--step", "10", "--x", "1")

	if !errors.Is(err, dynamo.ErrMissingParam) {
		t.Fatalf("expected ErrMissingParam, got %v", err)
	}
	for _, name := range []string{"--G", "--M", "--vy", "--img-size"} {
		if !strings.Contains(err.Error(), name) {
			t.Errorf("expected %s in %q", name, err.Error())
		}
	}
}

func TestRootRendersFromFlags(t *testing.T) {
	out := t.TempDir()

	err := execute(t,
		"--step", "500", "--G", "1", "--M", "1",
		"--x", "1", "--y", "0", "--vx", "0", "--vy", "1.1",
		"--t", "0.01", "--buf", "20", "--img-size", "64",
		"--out", out,
	)
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}

	want := filepath.Join(out, "STEP(500)-t(0.01)-x(1,0)-v(0,1.1)-G(1)-M(1)-buf(20)-img(64).png")
	if _, err := os.Stat(want); err != nil {
		t.Errorf("expected %s: %v", want, err)
	}
}

func TestRootPresetWithOverride(t *testing.T) {
	out := t.TempDir()

	if err := execute(t, "--preset", "circular", "--step", "300", "--img-size", "32", "--format", "svg", "--out", out); err != nil {
		t.Fatalf("run failed: %v", err)
	}

	entries, err := os.ReadDir(out)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 || !strings.HasPrefix(entries[0].Name(), "STEP(300)-") || !strings.HasSuffix(entries[0].Name(), ".svg") {
		t.Errorf("unexpected output %v", entries)
	}
}

func TestRootUnknownPreset(t *testing.T) {
	err := execute(t, "--preset", "nope")
	if !errors.Is(err, dynamo.ErrInvalidConfig) {
		t.Errorf("expected ErrInvalidConfig, got %v", err)
	}
}

func TestRootConfigFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "orbit.yaml")
	data := "step: 200\nx: 1\nvy: 1\nt: 0.01\nbuf: 10\nimg_size: 48\nout_dir: " + filepath.Join(dir, "img") + "\n"
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatal(err)
	}

	if err := execute(t, "--config", path); err != nil {
		t.Fatalf("run failed: %v", err)
	}

	entries, err := os.ReadDir(filepath.Join(dir, "img"))
	if err != nil || len(entries) != 1 {
		t.Fatalf("expected one image, got %v (%v)", entries, err)
	}
}

func TestRootRejectsInvalidBuffer(t *testing.T) {
	err := execute(t, "--preset", "circular", "--buf", "0", "--out", t.TempDir())
	if !errors.Is(err, dynamo.ErrInvalidConfig) {
		t.Errorf("expected ErrInvalidConfig, got %v", err)
	}
}

func TestPresetsCommand(t *testing.T) {
	if err := execute(t, "presets"); err != nil {
		t.Errorf("presets failed: %v", err)
	}
}

func TestSummaryMetrics(t *testing.T) {
	res := &experiment.Result{EnergyStart: -0.5, EnergyEnd: -0.49}

	metrics := summaryMetrics(res)
	for _, m := range metrics {
		if m.Warn {
			t.Errorf("unexpected warning %+v for a finite run", m)
		}
	}

	var energy string
	for _, m := range metrics {
		if m.Label == "energy" {
			energy = m.Value
		}
	}
	if energy != "-0.5 -> -0.49" {
		t.Errorf("unexpected energy line %q", energy)
	}

	res.Invalid = 3
	metrics = summaryMetrics(res)
	last := metrics[len(metrics)-1]
	if !last.Warn || last.Value != "3 states" {
		t.Errorf("expected non-finite warning, got %+v", last)
	}
}

func TestIgnoresGM(t *testing.T) {
	tests := []struct {
		g, m    float64
		scaleGM bool
		want    bool
	}{
		{1, 1, false, false},
		{2, 0.5, false, false},
		{2, 1, false, true},
		{2, 1, true, false},
	}

	for _, tt := range tests {
		cfg := &config.Config{G: tt.g, M: tt.m, ScaleGM: tt.scaleGM}
		if got := ignoresGM(cfg); got != tt.want {
			t.Errorf("G=%g M=%g scale=%v: expected %v, got %v", tt.g, tt.m, tt.scaleGM, tt.want, got)
		}
	}
}
