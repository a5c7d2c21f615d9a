//go:build ebiten

package app

import (
	"image/color"
	"time"

	"tomato-ca/internal/automata"
	"tomato-ca/internal/core"
	"tomato-ca/internal/render"
	"tomato-ca/internal/sim"
	"tomato-ca/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// HUDWidth is the width of the parameter panel in screen pixels.
const HUDWidth = 280

var digitKeys = [...]ebiten.Key{
	ebiten.KeyDigit0, ebiten.KeyDigit1, ebiten.KeyDigit2, ebiten.KeyDigit3, ebiten.KeyDigit4,
	ebiten.KeyDigit5, ebiten.KeyDigit6, ebiten.KeyDigit7, ebiten.KeyDigit8, ebiten.KeyDigit9,
}

// Game adapts a Runner to the ebiten.Game interface.
type Game struct {
	runner  *sim.Runner
	painter *render.GridPainter
	hud     *ui.HUD
	clock   *core.FixedStep

	palette    []color.RGBA
	paletteFor *automata.Automaton

	scale    int
	paused   bool
	tickOnce bool
	seed     int64
}

// New constructs a Game for the provided runner.
func New(r *sim.Runner, scale int, seed int64) *Game {
	size := r.Size()
	g := &Game{
		runner:  r,
		painter: render.NewGridPainter(size.W, size.H),
		hud:     ui.NewHUD(r, HUDWidth),
		clock:   core.NewFixedStep(60),
		scale:   max(scale, 1),
		seed:    seed,
	}
	g.clock.SetDelay(r.Delay())
	g.syncAutomaton()
	return g
}

// Reset reseeds the board.
func (g *Game) Reset(seed int64) {
	g.seed = seed
	g.runner.Reset(seed)
	g.tickOnce = false
}

// syncAutomaton refreshes everything derived from the selected automaton.
func (g *Game) syncAutomaton() {
	a := g.runner.Current()
	if a == g.paletteFor {
		return
	}
	g.paletteFor = a
	g.palette = render.RGBA(render.ForAutomaton(a))
	ebiten.SetWindowTitle("tomato-ca: " + a.Name + " (" + string(a.Family()) + ")")
}

// Update handles per-frame input and advances the runner.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	g.handleKeys()
	g.handleMouse()
	g.hud.Update(g.boardWidth())
	g.clock.SetDelay(g.runner.Delay())
	g.syncAutomaton()

	if g.tickOnce {
		g.runner.Resume()
		g.runner.Step()
		g.tickOnce = false
		return nil
	}
	if !g.paused && g.clock.ShouldStep() {
		g.runner.Step()
	}
	return nil
}

func (g *Game) handleKeys() {
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
		if !g.paused {
			g.runner.Resume()
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.tickOnce = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.Reset(g.seed)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.Reset(time.Now().UnixNano())
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyC) {
		g.runner.Clear()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyRight) {
		g.runner.Cycle(1)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyLeft) {
		g.runner.Cycle(-1)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyDown) {
		g.runner.CycleFamily(1)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyUp) {
		g.runner.CycleFamily(-1)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEqual) || inpututil.IsKeyJustPressed(ebiten.KeyKPAdd) {
		g.runner.SetIntParameter("delay", g.runner.DelayIndex()-1)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyMinus) || inpututil.IsKeyJustPressed(ebiten.KeyKPSubtract) {
		g.runner.SetIntParameter("delay", g.runner.DelayIndex()+1)
	}
	for i, k := range digitKeys {
		if inpututil.IsKeyJustPressed(k) {
			g.runner.SetIntParameter("paint_state", i)
		}
	}
}

// handleMouse paints with the left button and erases with the right.
func (g *Game) handleMouse() {
	left := ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	right := ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight)
	if !left && !right {
		return
	}
	x, y := ebiten.CursorPosition()
	size := g.runner.Size()
	col, row := x/g.scale, y/g.scale
	if x < 0 || y < 0 || col >= size.W || row >= size.H {
		return
	}
	state := g.runner.PaintState()
	if right {
		state = 0
	}
	g.runner.Paint(row, col, state)
}

// Draw renders the board and the HUD.
func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.Blit(screen, g.runner.Cells(), g.palette, g.scale)
	g.hud.Draw(screen, g.boardWidth(), g.scale)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.boardWidth() + g.hud.Width(), g.runner.Size().H * g.scale
}

func (g *Game) boardWidth() int { return g.runner.Size().W * g.scale }
