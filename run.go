package coverflow

import "github.com/hajimehoshi/ebiten/v2"

// RunConfig configures the window opened by Run.
type RunConfig struct {
	Title         string
	Width, Height int
	Resizable     bool
	// Update, if set, is called every tick before the carousel updates.
	// Returning an error stops the game loop.
	Update func() error
	// Overlay, if set, is drawn on top of the carousel every frame.
	Overlay func(screen *ebiten.Image)
}

// game adapts a Carousel to ebiten.Game.
type game struct {
	c   *Carousel
	cfg RunConfig
}

func (g *game) Update() error {
	if g.cfg.Update != nil {
		if err := g.cfg.Update(); err != nil {
			return err
		}
	}
	g.c.Update(float32(1.0 / float64(ebiten.TPS())))
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	g.c.Draw(screen)
	if g.cfg.Overlay != nil {
		g.cfg.Overlay(screen)
	}
}

func (g *game) Layout(w, h int) (int, int) {
	return w, h
}

// Run opens a window and drives c until the window closes or Update fails.
// For full control, implement ebiten.Game yourself and call Carousel.Update
// and Carousel.Draw directly.
func Run(c *Carousel, cfg RunConfig) error {
	if cfg.Width > 0 && cfg.Height > 0 {
		ebiten.SetWindowSize(cfg.Width, cfg.Height)
	}
	if cfg.Title != "" {
		ebiten.SetWindowTitle(cfg.Title)
	}
	if cfg.Resizable {
		ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	}
	return ebiten.RunGame(&game{c: c, cfg: cfg})
}
