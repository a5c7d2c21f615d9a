// Command ca-term runs the catalog automata in a terminal, two columns per
// cell.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"tomato-ca/internal/app"
	"tomato-ca/internal/render"
	"tomato-ca/internal/sim"

	"github.com/gdamore/tcell/v2"
)

type front struct {
	screen tcell.Screen
	runner *sim.Runner
	styles []tcell.Style
	shown  string
	seed   int64
	paused bool
}

func main() {
	cfg := app.NewConfig()
	cfg.Rows, cfg.Cols = 40, 60
	cfg.LogLevel = "error"
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	// The screen owns stdout, so log lines go to stderr only when asked for.
	logger := app.SetupLogging(cfg, os.Stderr)
	runner, err := app.NewRunner(cfg)
	if err != nil {
		logger.Error("startup failed", "err", err)
		log.Fatalf("ca-term: %v", err)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		log.Fatalf("creating screen: %v", err)
	}
	if err = screen.Init(); err != nil {
		log.Fatalf("initializing screen: %v", err)
	}
	defer screen.Fini()
	screen.Clear()

	f := &front{screen: screen, runner: runner, seed: cfg.Seed}
	f.run(max(cfg.TPS, 1))
}

func (f *front) run(tps int) {
	events := make(chan tcell.Event)
	go func() {
		for {
			ev := f.screen.PollEvent()
			if ev == nil {
				close(events)
				return
			}
			events <- ev
		}
	}()

	frame := time.Second / time.Duration(tps)
	timer := time.NewTimer(frame)
	defer timer.Stop()
	for {
		f.draw()
		select {
		case ev, ok := <-events:
			if !ok || !f.handle(ev) {
				return
			}
		case <-timer.C:
			if !f.paused {
				f.runner.Step()
			}
			timer.Reset(max(f.runner.Delay(), frame))
		}
	}
}

// handle applies one event and reports whether to keep running.
func (f *front) handle(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		f.screen.Sync()
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return false
		case tcell.KeyRight:
			f.runner.Cycle(1)
		case tcell.KeyLeft:
			f.runner.Cycle(-1)
		case tcell.KeyDown:
			f.runner.CycleFamily(1)
		case tcell.KeyUp:
			f.runner.CycleFamily(-1)
		case tcell.KeyRune:
			return f.handleRune(ev.Rune())
		}
	}
	return true
}

func (f *front) handleRune(r rune) bool {
	switch r {
	case 'q':
		return false
	case ' ':
		f.paused = !f.paused
		if !f.paused {
			f.runner.Resume()
		}
	case 'n':
		f.runner.Resume()
		f.runner.Step()
	case 'r':
		f.runner.Reset(f.seed)
	case 's':
		f.seed = time.Now().UnixNano()
		f.runner.Reset(f.seed)
	case 'c':
		f.runner.Clear()
	case '+', '=':
		f.runner.SetIntParameter("delay", f.runner.DelayIndex()-1)
	case '-':
		f.runner.SetIntParameter("delay", f.runner.DelayIndex()+1)
	default:
		if r >= '0' && r <= '9' {
			f.runner.SetIntParameter("paint_state", int(r-'0'))
		}
	}
	return true
}

func (f *front) syncStyles() {
	a := f.runner.Current()
	key := string(a.Family()) + "/" + a.Name
	if key == f.shown {
		return
	}
	f.shown = key
	p := render.ForAutomaton(a)
	f.styles = make([]tcell.Style, len(p))
	for i, c := range p {
		bg := tcell.NewRGBColor(int32(c[0]), int32(c[1]), int32(c[2]))
		f.styles[i] = tcell.StyleDefault.Background(bg)
	}
	f.screen.Clear()
}

func (f *front) draw() {
	f.syncStyles()
	w, h := f.screen.Size()
	b := f.runner.Board()
	rows := min(b.Rows, h-1)
	cols := min(b.Cols, w/2)
	last := len(f.styles) - 1
	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			style := f.styles[min(int(b.At(row, col)), last)]
			f.screen.SetContent(col*2, row, ' ', nil, style)
			f.screen.SetContent(col*2+1, row, ' ', nil, style)
		}
	}

	a := f.runner.Current()
	status := fmt.Sprintf(" %s / %s  %q  gen %d  delay %s  paint %d",
		a.Family(), a.Name, a.Rules, f.runner.Generation(), f.runner.Delay(), f.runner.PaintState())
	switch {
	case f.paused:
		status += "  [paused]"
	case f.runner.Halted():
		status += "  [fixed]"
	}
	if h > 0 {
		f.drawText(0, min(rows, h-1), w, status)
	}
	f.screen.Show()
}

func (f *front) drawText(x, y, width int, s string) {
	style := tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorBlack)
	i := 0
	for _, r := range s {
		if x+i >= width {
			break
		}
		f.screen.SetContent(x+i, y, r, nil, style)
		i++
	}
	for ; x+i < width; i++ {
		f.screen.SetContent(x+i, y, ' ', nil, style)
	}
}
