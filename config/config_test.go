package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Window.Width != 640 || cfg.Window.Height != 360 {
		t.Errorf("expected 640x360 internal resolution, got %dx%d", cfg.Window.Width, cfg.Window.Height)
	}
	if cfg.Window.Scale != 2 {
		t.Errorf("expected scale 2, got %d", cfg.Window.Scale)
	}
	if cfg.Window.Fullscreen {
		t.Error("expected fullscreen off by default")
	}

	if cfg.Game.Level != "playground" {
		t.Errorf("expected level playground, got %s", cfg.Game.Level)
	}
	if cfg.Game.PlayerWidth != 12 || cfg.Game.PlayerHeight != 24 {
		t.Errorf("expected 12x24 player, got %vx%v", cfg.Game.PlayerWidth, cfg.Game.PlayerHeight)
	}

	if cfg.Movement.MoveSpeed != 192 {
		t.Errorf("expected move speed 192, got %v", cfg.Movement.MoveSpeed)
	}
	if cfg.Movement.MaxJumps != 2 {
		t.Errorf("expected 2 air jumps, got %d", cfg.Movement.MaxJumps)
	}

	if cfg.Logging.Level != "info" {
		t.Errorf("expected log level info, got %s", cfg.Logging.Level)
	}
	if !cfg.Debug.HotReload {
		t.Error("expected hot reload on by default")
	}

	if err := cfg.Validate(); err != nil {
		t.Errorf("default config must validate, got %v", err)
	}
}

func TestLoadFile(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	yamlContent := `
window:
  width: 320
  height: 180
  scale: 4

game:
  level: tower

movement:
  gravity: 900
  max_jumps: 3

input:
  analog_deadzone: 0.4

logging:
  level: debug
`
	if err := os.WriteFile(configPath, []byte(yamlContent), 0o644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	cfg, err := LoadFile(configPath)
	if err != nil {
		t.Fatalf("LoadFile failed: %v", err)
	}

	if cfg.Window.Width != 320 || cfg.Window.Height != 180 {
		t.Errorf("expected 320x180, got %dx%d", cfg.Window.Width, cfg.Window.Height)
	}
	if cfg.Window.Scale != 4 {
		t.Errorf("expected scale 4, got %d", cfg.Window.Scale)
	}
	if cfg.Game.Level != "tower" {
		t.Errorf("expected level tower, got %s", cfg.Game.Level)
	}
	if cfg.Movement.Gravity != 900 {
		t.Errorf("expected gravity 900, got %v", cfg.Movement.Gravity)
	}
	if cfg.Movement.MaxJumps != 3 {
		t.Errorf("expected max_jumps 3, got %d", cfg.Movement.MaxJumps)
	}
	if cfg.Input.AnalogDeadzone != 0.4 {
		t.Errorf("expected deadzone 0.4, got %v", cfg.Input.AnalogDeadzone)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("expected log level debug, got %s", cfg.Logging.Level)
	}

	// Untouched sections keep their defaults.
	if cfg.Movement.MoveSpeed != 192 {
		t.Errorf("expected default move speed to survive, got %v", cfg.Movement.MoveSpeed)
	}
	if cfg.Game.PlayerWidth != 12 {
		t.Errorf("expected default player width to survive, got %v", cfg.Game.PlayerWidth)
	}
}

func TestLoadFileErrors(t *testing.T) {
	if _, err := LoadFile(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Error("expected error for missing file")
	}

	badPath := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(badPath, []byte("window: ["), 0o644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}
	if _, err := LoadFile(badPath); err == nil {
		t.Error("expected error for malformed yaml")
	}

	cfg, err := LoadFile("")
	if err != nil {
		t.Fatalf("empty path should give defaults, got %v", err)
	}
	if cfg.Window.Width != 640 {
		t.Errorf("expected defaults for empty path, got width %d", cfg.Window.Width)
	}
}

func TestValidate(t *testing.T) {
	cfg := Default()
	cfg.Window.Width = 0
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for zero window width")
	}

	cfg = Default()
	cfg.Game.Level = ""
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for empty level")
	}

	cfg = Default()
	cfg.Game.PlayerHeight = -5
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for negative player height")
	}

	cfg = Default()
	cfg.Movement.Gravity = -1
	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected movement validation to propagate")
	}
}

func TestApplyInputSettings(t *testing.T) {
	saved := Input.Bindings[ActionJump]
	savedDeadzone := Input.AnalogDeadzone
	defer func() {
		Input.Bindings[ActionJump] = saved
		Input.AnalogDeadzone = savedDeadzone
	}()

	err := applyInputSettings(InputSettings{
		AnalogDeadzone: 0.5,
		Keys:           map[string][]string{"jump": {"Q"}},
	})
	if err != nil {
		t.Fatalf("applyInputSettings failed: %v", err)
	}
	if Input.AnalogDeadzone != 0.5 {
		t.Errorf("expected deadzone 0.5, got %v", Input.AnalogDeadzone)
	}
	got := Input.Bindings[ActionJump]
	if len(got.Keys) != 1 || got.Keys[0] != ebiten.KeyQ {
		t.Errorf("expected jump rebound to Q, got %v", got.Keys)
	}
	if len(got.StandardGamepadButtons) == 0 {
		t.Error("gamepad binding must survive a keyboard rebind")
	}

	err = applyInputSettings(InputSettings{
		Keys: map[string][]string{"fly": {"F"}},
	})
	if err == nil {
		t.Error("expected error for unknown action name")
	}

	err = applyInputSettings(InputSettings{
		Keys: map[string][]string{"jump": {"NotAKey"}},
	})
	if err == nil {
		t.Error("expected error for unknown key name")
	}
}

func TestWatchFile(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")
	if err := os.WriteFile(configPath, []byte("game:\n  level: playground\n"), 0o644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	w, err := WatchFile(configPath)
	if err != nil {
		t.Fatalf("WatchFile failed: %v", err)
	}
	defer w.Close()

	// An edit to an unrelated file in the directory must not fire.
	if err := os.WriteFile(filepath.Join(tmpDir, "other.yaml"), []byte("x: 1\n"), 0o644); err != nil {
		t.Fatalf("failed to write unrelated file: %v", err)
	}

	if err := os.WriteFile(configPath, []byte("game:\n  level: tower\n"), 0o644); err != nil {
		t.Fatalf("failed to rewrite config: %v", err)
	}

	select {
	case got := <-w.Events:
		if filepath.Base(got) != "config.yaml" {
			t.Errorf("expected event for config.yaml, got %s", got)
		}
	case err := <-w.Errors:
		t.Fatalf("watcher error: %v", err)
	case <-time.After(3 * time.Second):
		t.Fatal("timed out waiting for config change event")
	}

	if err := w.Close(); err != nil {
		t.Errorf("close failed: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Errorf("second close must be a no-op, got %v", err)
	}
}
