package scenes

import (
	"image/color"
	"sync"

	"github.com/automoto/wallhop/components"
	cfg "github.com/automoto/wallhop/config"
	"github.com/automoto/wallhop/logger"
	"github.com/automoto/wallhop/systems"
	"github.com/automoto/wallhop/systems/factory"
	"github.com/automoto/wallhop/ui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"go.uber.org/zap"
)

// PlatformerScene runs the movement playground: one level at a time, rebuilt
// from scratch when switching, plus the scene-owned tuning panel and config
// watcher.
type PlatformerScene struct {
	ecs    *ecs.ECS
	tuning *ui.TuningUI

	watcher *cfg.Watcher

	levelName string
	names     []string
	index     int

	once sync.Once
}

func NewPlatformerScene() *PlatformerScene {
	return &PlatformerScene{}
}

func (ps *PlatformerScene) Update() {
	ps.once.Do(ps.configure)

	ps.drainConfigEvents()

	ps.ecs.Update()

	// Level cycling and the tuning panel live at the scene level: the first
	// rebuilds the world, the second is scene-owned UI.
	input := systems.GetOrCreateInput(ps.ecs)
	if systems.GetAction(input, cfg.ActionNextLevel).JustPressed {
		ps.nextLevel()
		return
	}
	if systems.GetAction(input, cfg.ActionToggleOverlay).JustPressed {
		ps.tuning.Visible = !ps.tuning.Visible
	}
	if ps.tuning.Visible {
		ps.tuning.Update()
	}
}

func (ps *PlatformerScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if ps.ecs == nil {
		return
	}
	ps.ecs.Draw(screen)

	if ps.tuning != nil && ps.tuning.Visible {
		ps.tuning.UI.Draw(screen)
	}
}

func (ps *PlatformerScene) configure() {
	ps.levelName = cfg.C.Game.Level

	ps.tuning = ui.NewTuningUI()
	ps.tuning.Visible = cfg.C.Debug.ShowOverlay

	if cfg.C.Debug.HotReload && cfg.FilePath() != "" {
		w, err := cfg.WatchFile(cfg.FilePath())
		if err != nil {
			logger.Warn("config watcher unavailable", zap.Error(err))
		} else {
			ps.watcher = w
		}
	}

	ps.buildWorld()
}

// buildWorld creates a fresh ECS for the selected level: the level entity,
// the collision space, one wall object per solid rect and the player at the
// default spawn.
func (ps *PlatformerScene) buildWorld() {
	e := ecs.NewECS(donburi.NewWorld())

	// Systems that always run
	e.AddSystem(systems.UpdateInput)
	e.AddSystem(systems.UpdatePause)
	e.AddSystem(systems.UpdateDebugToggles)

	// Game systems wrapped with the pause check
	e.AddSystem(systems.WithGameplayChecks(systems.UpdateControl))
	e.AddSystem(systems.WithGameplayChecks(systems.UpdateObjects))
	e.AddSystem(systems.WithGameplayChecks(systems.UpdateClock))

	// Add renderers
	e.AddRenderer(cfg.Default, systems.DrawLevel)
	e.AddRenderer(cfg.Default, systems.DrawPlayer)
	e.AddRenderer(cfg.Default, systems.DrawDebug)
	e.AddRenderer(cfg.UI, systems.DrawHUD)
	e.AddRenderer(cfg.UI, systems.DrawPause)

	level := factory.CreateLevel(e, ps.levelName)
	data := components.Level.Get(level)
	ps.levelName = data.Name()
	ps.names = data.Names
	ps.index = data.Index

	cellW := data.Current.TileWidth
	cellH := data.Current.TileHeight
	if cellW <= 0 {
		cellW = 16
	}
	if cellH <= 0 {
		cellH = 16
	}
	factory.CreateSpace(e, data.Current.PixelWidth, data.Current.PixelHeight, cellW, cellH)

	for _, r := range data.Current.SolidRects {
		factory.CreateWall(e, r.X, r.Y, r.W, r.H)
	}

	factory.CreatePlayer(e, data.Spawn.X, data.Spawn.Y)

	ps.ecs = e

	logger.Info("level loaded",
		zap.String("level", ps.levelName),
		zap.Int("solids", len(data.Current.SolidRects)),
		zap.Int("spawns", len(data.Current.SpawnPoints)),
	)
}

// nextLevel advances to the next loaded level and rebuilds the world.
func (ps *PlatformerScene) nextLevel() {
	if len(ps.names) == 0 {
		return
	}
	ps.index = (ps.index + 1) % len(ps.names)
	ps.levelName = ps.names[ps.index]

	held := systems.GetOrCreateInput(ps.ecs).Current
	ps.buildWorld()
	// Carry held keys into the fresh world so a key still down does not
	// retrigger its just-pressed edge every tick.
	systems.GetOrCreateInput(ps.ecs).Current = held
}

// drainConfigEvents applies config file changes picked up by the watcher.
// Runs on the game loop goroutine so nothing races the systems.
func (ps *PlatformerScene) drainConfigEvents() {
	if ps.watcher == nil {
		return
	}
	select {
	case path := <-ps.watcher.Events:
		if _, err := cfg.Reload(); err != nil {
			logger.Warn("config reload rejected", zap.Error(err))
		} else {
			logger.Info("config reloaded", zap.String("path", path))
			ps.tuning.UpdateUI()
		}
	case err := <-ps.watcher.Errors:
		logger.Warn("config watcher error", zap.Error(err))
	default:
	}
}
