package config

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	// A user or local config may shadow the embedded file on a dev machine.
	if _, err := os.Stat("configs/memory.yaml"); err == nil {
		t.Skip("local configs/memory.yaml present")
	}
	if p := userConfigPath("memory.yaml"); p != "" {
		if _, err := os.Stat(p); err == nil {
			t.Skip("user config present")
		}
	}

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if !reflect.DeepEqual(cfg, DefaultConfig()) {
		t.Errorf("embedded config = %+v\nwant %+v", cfg, DefaultConfig())
	}
}

func TestLoadCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "memory.yaml")
	data := []byte(`
board:
  columns: 2
  rows: 3
shuffle:
  iterations: 4
seed:
  word0: 11
  word1: 22
tileset: sky
`)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Board.Columns != 2 || cfg.Board.Rows != 3 {
		t.Errorf("board = %+v, want 2x3", cfg.Board)
	}
	if cfg.Shuffle.Iterations != 4 || cfg.Seed.Word0 != 11 || cfg.Seed.Word1 != 22 {
		t.Errorf("shuffle/seed = %+v %+v", cfg.Shuffle, cfg.Seed)
	}
	if cfg.TileSet != "sky" {
		t.Errorf("tileset = %q, want sky", cfg.TileSet)
	}
}

func TestLoadCustomPathErrors(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("missing file should fail")
	}

	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("board: [oops"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("malformed YAML should fail")
	}
}

func TestLoadTileSetsEmbedded(t *testing.T) {
	var cfg TileSetsConfig
	if err := unmarshalEmbedded(&cfg); err != nil {
		t.Fatal(err)
	}
	if len(cfg.TileSets) < 2 {
		t.Fatalf("embedded tile sets = %d, want at least 2", len(cfg.TileSets))
	}
	for _, set := range cfg.TileSets {
		if set.ID == "" || set.Title == "" || len(set.Symbols) == 0 {
			t.Errorf("incomplete tile set %+v", set)
		}
	}
}

func TestApplyPreset(t *testing.T) {
	tests := []struct {
		preset        Preset
		columns, rows int
		keepsLayout   bool
	}{
		{PresetEasy, 4, 4, true},
		{PresetNormal, 5, 4, false},
		{PresetHard, 6, 6, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.preset), func(t *testing.T) {
			cfg := DefaultConfig()
			ApplyPreset(&cfg, tt.preset)

			if cfg.Board.Columns != tt.columns || cfg.Board.Rows != tt.rows {
				t.Errorf("board = %+v, want %dx%d", cfg.Board, tt.columns, tt.rows)
			}
			if (cfg.Layout != nil) != tt.keepsLayout {
				t.Errorf("layout kept = %v, want %v", cfg.Layout != nil, tt.keepsLayout)
			}
			if (cfg.Board.Columns*cfg.Board.Rows)%2 != 0 {
				t.Error("preset produced an odd board")
			}
		})
	}
}

func TestParsePreset(t *testing.T) {
	if p, ok := ParsePreset(""); !ok || p != PresetEasy {
		t.Errorf("ParsePreset(\"\") = %q, %v", p, ok)
	}
	if p, ok := ParsePreset("hard"); !ok || p != PresetHard {
		t.Errorf("ParsePreset(hard) = %q, %v", p, ok)
	}
	if _, ok := ParsePreset("nightmare"); ok {
		t.Error("ParsePreset(nightmare) should fail")
	}
}

func TestGenerateLayout(t *testing.T) {
	layout, err := GenerateLayout(5, 4, []string{"a", "b", "c"})
	if err != nil {
		t.Fatal(err)
	}
	if err := layout.Validate(5, 4); err != nil {
		t.Fatalf("generated layout invalid: %v", err)
	}
	if !layout.Pairable() {
		t.Errorf("generated layout not pairable: %v", layout.Counts())
	}
	if layout[0][0] != "a" || layout[0][1] != "a" || layout[0][2] != "b" {
		t.Errorf("first row = %v, want pairs in type order", layout[0])
	}

	if _, err := GenerateLayout(3, 3, []string{"a"}); err == nil {
		t.Error("odd board should fail")
	}
	if _, err := GenerateLayout(2, 2, nil); err != ErrNoTypes {
		t.Errorf("no types: err = %v, want ErrNoTypes", err)
	}
}

func TestResolveLayout(t *testing.T) {
	fruit := []string{"Apple", "Orange", "Banana", "Cherry", "Grape", "Lemon", "Pear", "Plum"}

	cfg := DefaultConfig()
	layout, err := cfg.ResolveLayout(fruit)
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual([][]string(layout), cfg.Layout) {
		t.Error("fitting layout should be used as configured")
	}

	// Layout labels unknown to the tile set.
	layout, err = cfg.ResolveLayout([]string{"Star", "Moon"})
	if err != nil {
		t.Fatal(err)
	}
	if layout[0][0] != "Star" {
		t.Errorf("expected generated layout, got %v", layout[0])
	}

	ApplyPreset(&cfg, PresetHard)
	layout, err = cfg.ResolveLayout(fruit)
	if err != nil {
		t.Fatal(err)
	}
	if err := layout.Validate(6, 6); err != nil {
		t.Errorf("resolved layout does not fit: %v", err)
	}
}
