// Package game hosts the ambient renderer and the dashboard in an ebiten window.
package game

import (
	"context"
	"fmt"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/iburimskiy/ambient-dashboard/internal/ambient"
	"github.com/iburimskiy/ambient-dashboard/internal/config"
	"github.com/iburimskiy/ambient-dashboard/internal/dashboard"
)

type Game struct {
	ctx      context.Context
	renderer *ambient.Renderer
	surface  *Surface
	shell    *dashboard.Shell
	logger   *log.Logger

	width, height int

	lastErr error
}

// New builds the game. Cancelling ctx ends the loop at the next update.
func New(ctx context.Context, renderer *ambient.Renderer, shell *dashboard.Shell, background string, logger *log.Logger) *Game {
	w, h := renderer.Field().Size()
	return &Game{
		ctx:      ctx,
		renderer: renderer,
		surface:  NewSurface(hexToColor(background)),
		shell:    shell,
		logger:   logger,
		width:    int(w),
		height:   int(h),
	}
}

func (g *Game) Update() error {
	if err := g.ctx.Err(); err != nil {
		g.renderer.Stop()
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		g.renderer.Stop()
		return ebiten.Termination
	}

	if err := g.shell.Update(dashboard.ReadInput()); err != nil {
		g.lastErr = err
		g.logger.Printf("dashboard: %v", err)
	}
	return nil
}

// Draw runs once per repaint, so the clouds advance one tick per displayed frame.
func (g *Game) Draw(screen *ebiten.Image) {
	g.surface.Bind(screen)
	if !g.renderer.Frame(g.surface) {
		g.surface.Clear()
	}

	g.shell.Draw(screen)

	status := fmt.Sprintf("%.0f FPS", ebiten.ActualFPS())
	if g.lastErr != nil {
		status += " | Error: " + g.lastErr.Error()
	}
	ebitenutil.DebugPrintAt(screen, status, config.SidebarPadding, g.height-24)
}

// Layout keeps the logical screen equal to the window and tells the
// renderer whenever the window changes size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth != g.width || outsideHeight != g.height {
		g.width, g.height = outsideWidth, outsideHeight
		g.renderer.Resize(float64(outsideWidth), float64(outsideHeight))
	}
	return outsideWidth, outsideHeight
}
