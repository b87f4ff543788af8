package config

import (
	"os"
	"path/filepath"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestEmbeddedDefaultMatchesHardcoded(t *testing.T) {
	var embedded StarfallConfig
	if err := yaml.Unmarshal(defaultStarfallYAML, &embedded); err != nil {
		t.Fatalf("Embedded YAML does not parse: %v", err)
	}

	if embedded != DefaultStarfallConfig() {
		t.Errorf("Embedded defaults diverge from DefaultStarfallConfig():\n%+v\n%+v",
			embedded, DefaultStarfallConfig())
	}
}

func TestFieldGeometry(t *testing.T) {
	f := DefaultStarfallConfig().Field

	if f.Width() != float64(f.Lanes)*f.LaneWidth {
		t.Errorf("Width() = %v", f.Width())
	}
	if f.LaneCenter(0) != f.LaneWidth/2 {
		t.Errorf("LaneCenter(0) = %v, expected half a lane", f.LaneCenter(0))
	}
	if f.LaneCenter(f.Lanes-1) >= f.Width() {
		t.Error("Last lane center must lie inside the field")
	}
}

func TestLoadStarfallCustomPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.yaml")
	content := []byte("field:\n  lanes: 4\n  lane_width: 50\n  height: 400\n")
	if err := os.WriteFile(path, content, 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadStarfall(path)
	if err != nil {
		t.Fatalf("LoadStarfall() failed: %v", err)
	}
	if cfg.Field.Lanes != 4 || cfg.Field.LaneWidth != 50 {
		t.Errorf("Custom config not applied: %+v", cfg.Field)
	}
}

func TestLoadStarfallMissingCustomPath(t *testing.T) {
	_, err := LoadStarfall("/nonexistent/path.yaml")
	if err == nil {
		t.Error("Expected error for explicitly missing config file")
	}
}

func TestApplyStarfallPreset(t *testing.T) {
	easy := DefaultStarfallConfig()
	ApplyStarfallPreset(&easy, DifficultyEasy)
	if easy.Gameplay.MaxHealth != 15 || easy.Asteroids.SpawnInterval != 1.2 {
		t.Errorf("Easy preset not applied: %+v", easy.Gameplay)
	}
	if easy.Difficulty.InitialLevel != 0.0 {
		t.Errorf("Easy initial level = %v", easy.Difficulty.InitialLevel)
	}

	hard := DefaultStarfallConfig()
	ApplyStarfallPreset(&hard, DifficultyHard)
	if hard.Gameplay.MaxHealth != 6 || hard.Asteroids.MaxSpeed != 170 {
		t.Errorf("Hard preset not applied: %+v", hard)
	}
	if hard.Difficulty.InitialLevel != 0.7 {
		t.Errorf("Hard initial level = %v", hard.Difficulty.InitialLevel)
	}

	fixed := DefaultStarfallConfig()
	ApplyStarfallPreset(&fixed, DifficultyFixed)
	if fixed.Difficulty.Enabled {
		t.Error("Fixed preset should disable progression")
	}
}

func TestDifficultyManagerScoreProgression(t *testing.T) {
	cfg := DefaultStarfallConfig().Difficulty
	d := NewDifficultyManager(cfg)

	if lvl := d.Level(0, 0); lvl != 0 {
		t.Errorf("Level at score 0 = %v", lvl)
	}
	if lvl := d.Level(30, 0); lvl != 0.5 {
		t.Errorf("Level at half max score = %v, expected 0.5", lvl)
	}
	if lvl := d.Level(60, 0); lvl != 1.0 {
		t.Errorf("Level at max score = %v, expected 1.0", lvl)
	}
	if lvl := d.Level(600, 0); lvl != 1.0 {
		t.Errorf("Level must clamp at 1.0, got %v", lvl)
	}
}

func TestDifficultyManagerScaling(t *testing.T) {
	cfg := DefaultStarfallConfig().Difficulty
	d := NewDifficultyManager(cfg)

	if s := d.SpeedScale(0, 0); s != 1.0 {
		t.Errorf("SpeedScale at level 0 = %v", s)
	}
	if s := d.SpeedScale(60, 0); s != 1.6 {
		t.Errorf("SpeedScale at level 1 = %v, expected 1.6", s)
	}

	if iv := d.SpawnInterval(0.9, 0, 0); iv != 0.9 {
		t.Errorf("SpawnInterval at level 0 = %v", iv)
	}
	if iv := d.SpawnInterval(0.9, 60, 0); iv != 0.5 {
		t.Errorf("SpawnInterval at level 1 = %v, expected 0.5", iv)
	}
	// The floor protects tiny base intervals
	if iv := d.SpawnInterval(0.4, 60, 0); iv != 0.3 {
		t.Errorf("SpawnInterval must floor at 0.3, got %v", iv)
	}
}

func TestDifficultyManagerDisabled(t *testing.T) {
	cfg := DefaultStarfallConfig().Difficulty
	cfg.Enabled = false
	cfg.InitialLevel = 0.7
	d := NewDifficultyManager(cfg)

	if lvl := d.Level(1000, 1000); lvl != 0.7 {
		t.Errorf("Disabled progression must hold the initial level, got %v", lvl)
	}
}
