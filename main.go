package main

import (
	"image"
	"log"

	"github.com/automoto/wallhop/config"
	"github.com/automoto/wallhop/fonts"
	"github.com/automoto/wallhop/logger"
	"github.com/automoto/wallhop/scenes"
	"github.com/automoto/wallhop/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"
	"golang.org/x/image/font/gofont/goregular"
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

type Game struct {
	bounds image.Rectangle
	scene  Scene
}

func NewGame() *Game {
	fonts.LoadFont(fonts.Main, goregular.TTF)
	fonts.LoadFontWithSize(fonts.Small, goregular.TTF, 9)
	fonts.LoadFontWithSize(fonts.Title, goregular.TTF, 24)

	g := &Game{
		bounds: image.Rectangle{},
	}
	g.scene = scenes.NewPlatformerScene()

	return g
}

func (g *Game) Update() error {
	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	g.bounds = image.Rect(0, 0, config.C.Window.Width, config.C.Window.Height)
	return config.C.Window.Width, config.C.Window.Height
}

func main() {
	config.ParseFlags()

	if _, err := config.Load(); err != nil {
		log.Fatalf("config: %v", err)
	}

	logger.Init(config.C.Logging)
	defer logger.Sync()

	// Saved tuning from the overlay wins over the file at startup; a config
	// hot reload afterwards puts the file back in charge.
	if err := systems.InitPersistence(); err == nil {
		if tuning, err := systems.LoadTuning(); err == nil && tuning != nil {
			config.C.Movement = *tuning
			logger.Info("saved movement tuning applied")
		}
	}

	ebiten.SetWindowSize(
		config.C.Window.Width*config.C.Window.Scale,
		config.C.Window.Height*config.C.Window.Scale,
	)
	ebiten.SetWindowTitle("wallhop")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeOnlyFullscreenEnabled)
	ebiten.SetFullscreen(config.C.Window.Fullscreen)
	ebiten.SetVsyncEnabled(config.C.Window.VSync)

	if err := ebiten.RunGame(NewGame()); err != nil {
		logger.Fatal("game exited", zap.Error(err))
	}
}
