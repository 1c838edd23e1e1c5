package config

import (
	"fmt"
	"image/color"

	"github.com/automoto/wallhop/logger"
	"github.com/automoto/wallhop/motion"
)

// WindowConfig holds display settings. Width and Height are the internal
// render resolution; the window opens at Scale times that.
type WindowConfig struct {
	Width      int  `yaml:"width"`
	Height     int  `yaml:"height"`
	Scale      int  `yaml:"scale"`
	Fullscreen bool `yaml:"fullscreen"`
	VSync      bool `yaml:"vsync"`
}

// GameConfig selects the level and shapes the player.
type GameConfig struct {
	// LevelsDir points at a directory of .tmx/.world files on disk. Empty
	// means the embedded levels.
	LevelsDir string `yaml:"levels_dir"`
	// Level is the stem name to load. World indexes in the levels directory
	// are composed into extra levels selectable by their stem as well.
	Level string `yaml:"level"`

	PlayerWidth  float64 `yaml:"player_width"`
	PlayerHeight float64 `yaml:"player_height"`

	// KillPlaneMargin is how far below the map bottom the player may fall
	// before respawning.
	KillPlaneMargin float64 `yaml:"kill_plane_margin"`

	ShowFPS bool `yaml:"show_fps"`
}

// DebugConfig toggles diagnostics at startup. The same switches flip at
// runtime through the bound actions.
type DebugConfig struct {
	DrawCollision bool `yaml:"draw_collision"`
	ShowOverlay   bool `yaml:"show_overlay"`
	// HotReload watches the config file and applies movement tuning changes
	// without a restart.
	HotReload bool `yaml:"hot_reload"`
}

// Config is the root of the config file.
type Config struct {
	Window   WindowConfig  `yaml:"window"`
	Game     GameConfig    `yaml:"game"`
	Movement motion.Config `yaml:"movement"`
	Logging  logger.Config `yaml:"logging"`
	Input    InputSettings `yaml:"input"`
	Debug    DebugConfig   `yaml:"debug"`
}

// C is the active configuration. Load replaces it; code that runs before
// Load sees the defaults.
var C = Default()

// Default returns the playground configuration.
func Default() *Config {
	return &Config{
		Window: WindowConfig{
			Width:  640,
			Height: 360,
			Scale:  2,
			VSync:  true,
		},
		Game: GameConfig{
			Level:           "playground",
			PlayerWidth:     12,
			PlayerHeight:    24,
			KillPlaneMargin: 64,
			ShowFPS:         true,
		},
		Movement: motion.DefaultConfig(),
		Logging:  logger.DefaultConfig(),
		Input: InputSettings{
			AnalogDeadzone: 0.25,
		},
		Debug: DebugConfig{
			DrawCollision: true,
			HotReload:     true,
		},
	}
}

// Validate rejects configurations the game cannot start with.
func (c *Config) Validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("window size must be positive, got %dx%d", c.Window.Width, c.Window.Height)
	}
	if c.Window.Scale < 1 {
		return fmt.Errorf("window scale must be >= 1, got %d", c.Window.Scale)
	}
	if c.Game.Level == "" {
		return fmt.Errorf("game.level must be set")
	}
	if c.Game.PlayerWidth <= 0 || c.Game.PlayerHeight <= 0 {
		return fmt.Errorf("player size must be positive, got %vx%v", c.Game.PlayerWidth, c.Game.PlayerHeight)
	}
	if c.Game.KillPlaneMargin < 0 {
		return fmt.Errorf("kill_plane_margin must be >= 0, got %v", c.Game.KillPlaneMargin)
	}
	if err := c.Movement.Validate(); err != nil {
		return fmt.Errorf("movement: %w", err)
	}
	return nil
}

// Shared RGBA color constants
var (
	White        = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Yellow       = color.RGBA{R: 255, G: 255, B: 0, A: 255}
	Orange       = color.RGBA{R: 255, G: 140, B: 0, A: 255}
	Red          = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	Green        = color.RGBA{R: 0, G: 255, B: 0, A: 255}
	LightGreen   = color.RGBA{R: 100, G: 255, B: 100, A: 255}
	Magenta      = color.RGBA{R: 255, G: 0, B: 255, A: 255}
	BlackOverlay = color.RGBA{R: 0, G: 0, B: 0, A: 180}
	LightBlue    = color.RGBA{R: 100, G: 180, B: 255, A: 255}
	DarkBlue     = color.RGBA{R: 60, G: 100, B: 160, A: 255}
)
