package main

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"strummy/config"
	"strummy/pattern"
)

func TestResolveConfig_FlagsOverrideFile(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "config.json")
	saved := &config.Config{PatternFile: "saved.json", PatternLength: 12, Palette: "a.gpl"}
	if err := saved.SaveFile(cfgPath); err != nil {
		t.Fatal(err)
	}

	opts, err := parseFlags([]string{"-config", cfgPath, "-file", "cli.yaml", "-debug"}, io.Discard)
	if err != nil {
		t.Fatal(err)
	}
	cfg, err := resolveConfig(opts)
	if err != nil {
		t.Fatal(err)
	}

	want := &config.Config{PatternFile: "cli.yaml", PatternLength: 12, Palette: "a.gpl", Debug: true}
	if diff := cmp.Diff(want, cfg); diff != "" {
		t.Fatalf("config mismatch (-want +got):\n%s", diff)
	}
}

func TestResolveConfig_RejectsNegativeLength(t *testing.T) {
	opts, err := parseFlags([]string{"-config", filepath.Join(t.TempDir(), "none.json"), "-length", "-2"}, io.Discard)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := resolveConfig(opts); err == nil || !strings.Contains(err.Error(), "patternLength") {
		t.Fatalf("expected length error, got %v", err)
	}
}

func TestRun_BadFlag(t *testing.T) {
	if code := run([]string{"-nope"}, io.Discard); code != 2 {
		t.Fatalf("exit code %d, want 2", code)
	}
}

func TestInitialPattern(t *testing.T) {
	dir := t.TempDir()
	rng := newRand(5)

	cfg := &config.Config{PatternFile: filepath.Join(dir, "p.json"), PatternLength: 6}
	if got := initialPattern(cfg, rng).Len(); got != 6 {
		t.Fatalf("generated length %d, want 6", got)
	}

	if err := pattern.Save(pattern.New(pattern.Mute, pattern.Miss), cfg.PatternFile); err != nil {
		t.Fatal(err)
	}
	if got := initialPattern(cfg, rng).Shorthand(); got != "x -" {
		t.Fatalf("resumed %q, want %q", got, "x -")
	}

	if err := os.WriteFile(cfg.PatternFile, []byte("not json"), 0644); err != nil {
		t.Fatal(err)
	}
	if got := initialPattern(cfg, rng).Len(); got != 6 {
		t.Fatalf("fallback length %d, want 6", got)
	}
}

func TestNewRand_SeedIsDeterministic(t *testing.T) {
	a := pattern.Generate(newRand(99), 16)
	b := pattern.Generate(newRand(99), 16)
	if !a.Equal(b) {
		t.Fatalf("same seed gave %q and %q", a, b)
	}
}
