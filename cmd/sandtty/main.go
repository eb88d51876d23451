// Command sandtty runs the falling-sand universe in a terminal. The grid is
// drawn as colored glyphs; the mouse paints the selected element.
package main

import (
	"bytes"
	"flag"
	"fmt"
	"log"
	"os"
	"sync"
	"time"

	"github.com/jroimartin/gocui"
	"github.com/logrusorgru/aurora"

	"sandfall/internal/app"
	"sandfall/internal/config"
	"sandfall/internal/core"
	"sandfall/internal/scene"
	"sandfall/internal/sim"
)

type keyBinding struct {
	key      interface{}
	name     string
	descr    string
	handler  func(v *gocui.View) error
	viewName string
}

type ttyUI struct {
	g   *gocui.Gui
	cfg *config.Config
	k   []keyBinding

	mu       sync.Mutex
	u        *sim.Universe
	paused   bool
	selected sim.Species
	lastX    int
	lastY    int
	tickTime time.Duration

	quit chan struct{}
}

var speciesNames = map[sim.Species]string{
	sim.Empty: "eraser",
	sim.Sand:  "sand",
	sim.Water: "water",
	sim.Wall:  "wall",
	sim.Fire:  "fire",
	sim.Ghost: "ghost",
	sim.Smoke: "smoke",
}

func main() {
	cfg := config.NewConfig()
	if path := config.PathFromArgs(os.Args[1:]); path != "" {
		if err := cfg.LoadFile(path); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
	}
	flag.String("config", "", "optional YAML config file")
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	u := sim.New(cfg.Width, cfg.Height, cfg.Seed)
	if err := scene.Apply(cfg.Scene, u, cfg.Seed); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	t := newTTYUI(u, cfg)
	t.start()
}

func newTTYUI(u *sim.Universe, cfg *config.Config) *ttyUI {
	t := &ttyUI{
		cfg:      cfg,
		u:        u,
		selected: sim.Sand,
		quit:     make(chan struct{}),
	}

	var err error
	t.g, err = gocui.NewGui(gocui.OutputNormal)
	if err != nil {
		log.Panicln(err)
	}
	t.g.Mouse = true

	t.k = []keyBinding{
		{gocui.KeyCtrlC, "^C", "Exit", t.cmdQuit, ""},
		{gocui.KeySpace, "SPACE", "Pause/resume", t.cmdPause, ""},
		{'n', "N", "Single tick", t.cmdStep, ""},
		{'c', "C", "Clear", t.cmdClear, ""},
		{'g', "G", "Ghost stamp", t.cmdGhost, ""},
		{'e', "E", "Next element", t.cmdNextElement, ""},
		{gocui.MouseLeft, "MOUSE", "Paint", t.cmdPaint, "grid"},
	}
	t.g.SetManagerFunc(t.layout)

	for _, kb := range t.k {
		h := kb.handler
		if err := t.g.SetKeybinding(kb.viewName, kb.key, gocui.ModNone, func(gui *gocui.Gui, view *gocui.View) error { return h(view) }); err != nil {
			log.Panicln(err)
		}
	}
	return t
}

func (t *ttyUI) start() {
	go t.runLoop()
	if err := t.g.MainLoop(); err != nil && err != gocui.ErrQuit {
		t.g.Close()
		log.Panicln(err)
	}
	close(t.quit)
	t.g.Close()
}

// runLoop advances the simulation at the configured tick rate while the
// gocui main loop owns the terminal.
func (t *ttyUI) runLoop() {
	timer := core.NewFixedStep(t.cfg.TPS)
	for {
		select {
		case <-t.quit:
			return
		default:
		}
		if timer.ShouldStep() {
			t.mu.Lock()
			if !t.paused {
				start := time.Now()
				t.u.Tick()
				t.tickTime = time.Since(start)
			}
			t.mu.Unlock()
			t.refresh()
		}
		time.Sleep(time.Millisecond)
	}
}

func (t *ttyUI) refresh() {
	t.renderGrid()
	t.renderStatus()
}

// glyph picks a colored character for one {species, rb} pair.
func glyph(species, rb uint8) string {
	switch sim.Species(species) {
	case sim.Sand:
		return aurora.Yellow("▒").String()
	case sim.Water:
		return aurora.Blue("≈").String()
	case sim.Wall:
		return aurora.White("█").String()
	case sim.Fire:
		if rb > 40 {
			return aurora.BrightRed("▲").String()
		}
		return aurora.Red("▲").String()
	case sim.Ghost:
		if rb == sim.GhostEye {
			return aurora.BrightBlue("●").String()
		}
		return aurora.BrightWhite("▓").String()
	case sim.Smoke:
		return aurora.Gray(12, "░").String()
	}
	return " "
}

func (t *ttyUI) renderGrid() {
	t.g.Update(func(g *gocui.Gui) error {
		v, err := g.View("grid")
		if err != nil {
			return err
		}
		v.Clear()

		t.mu.Lock()
		view := t.u.RenderView()
		w, h := t.u.Width(), t.u.Height()
		maxW, maxH := v.Size()

		var b bytes.Buffer
		for y := 0; y < h && y < maxH; y++ {
			if y != 0 {
				b.WriteByte('\n')
			}
			for x := 0; x < w && x < maxW; x++ {
				i := 2 * (y*w + x)
				b.WriteString(glyph(view[i], view[i+1]))
			}
		}
		t.mu.Unlock()

		_, _ = fmt.Fprint(v, b.String())
		return nil
	})
}

func (t *ttyUI) renderStatus() {
	t.g.Update(func(g *gocui.Gui) error {
		v, err := g.View("status")
		if err != nil {
			return err
		}
		v.Clear()

		t.mu.Lock()
		gen := t.u.Generation()
		tickTime := t.tickTime
		selected := t.selected
		paused := t.paused
		t.mu.Unlock()

		mode := aurora.Cyan("running").String()
		if paused {
			mode = aurora.Blue("paused").String()
		}
		_, _ = fmt.Fprintln(v, t.prop("Generation", "%v", gen))
		_, _ = fmt.Fprintln(v, t.prop("Tick time", "%v", tickTime.Round(time.Microsecond)))
		_, _ = fmt.Fprintln(v, t.prop("Element", "%v", speciesNames[selected]))
		_, _ = fmt.Fprintln(v, t.prop("Mode", "%v", mode))
		return nil
	})
}

func (t *ttyUI) prop(name, format string, values ...interface{}) string {
	return fmt.Sprintf(" "+aurora.Green(name).String()+": "+format, values...)
}

func (t *ttyUI) layout(g *gocui.Gui) error {
	maxX, maxY := g.Size()
	leftColumnWidth := 24

	if v, err := g.SetView("status", 0, 0, leftColumnWidth, maxY-4); err != nil {
		if err != gocui.ErrUnknownView || v == nil {
			return err
		}
		v.Title = "Status"
		v.Frame = true
		t.renderStatus()
	}

	if v, err := g.SetView("grid", leftColumnWidth+1, 0, maxX-1, maxY-4); err != nil {
		if err != gocui.ErrUnknownView || v == nil {
			return err
		}
		v.Title = "Sandbox"
		v.Frame = true
	}

	if v, err := g.SetView("help", -1, maxY-4, maxX, maxY-2); err != nil {
		if err != gocui.ErrUnknownView || v == nil {
			return err
		}
		v.Frame = false
		var b bytes.Buffer
		b.WriteString("KEYBINDINGS: ")
		for i, k := range t.k {
			if i != 0 {
				b.WriteString(", ")
			}
			b.WriteString(aurora.Green(k.name).String())
			b.WriteString(": ")
			b.WriteString(k.descr)
		}
		_, _ = fmt.Fprintln(v, b.String())
	}
	return nil
}

func (t *ttyUI) cmdQuit(_ *gocui.View) error {
	return gocui.ErrQuit
}

func (t *ttyUI) cmdPause(_ *gocui.View) error {
	t.mu.Lock()
	t.paused = !t.paused
	t.mu.Unlock()
	return nil
}

func (t *ttyUI) cmdStep(_ *gocui.View) error {
	t.mu.Lock()
	t.u.Tick()
	t.mu.Unlock()
	t.refresh()
	return nil
}

func (t *ttyUI) cmdClear(_ *gocui.View) error {
	t.mu.Lock()
	_ = scene.Apply(t.cfg.Scene, t.u, t.cfg.Seed)
	t.mu.Unlock()
	t.refresh()
	return nil
}

func (t *ttyUI) cmdGhost(_ *gocui.View) error {
	t.mu.Lock()
	app.PaintGhost(t.u, t.lastX, t.lastY)
	t.mu.Unlock()
	t.refresh()
	return nil
}

func (t *ttyUI) cmdNextElement(_ *gocui.View) error {
	t.mu.Lock()
	t.selected = sim.Species((uint8(t.selected) + 1) % 7)
	t.mu.Unlock()
	t.refresh()
	return nil
}

func (t *ttyUI) cmdPaint(v *gocui.View) error {
	cx, cy := v.Cursor()
	t.mu.Lock()
	t.lastX, t.lastY = cx, cy
	t.u.SetCursor(cx, cy)
	size := t.u.Size()
	app.Disc(cx, cy, t.cfg.Brush, func(x, y int) {
		if size.Contains(x, y) {
			t.u.SetCell(x, y, uint8(t.selected))
		}
	})
	t.mu.Unlock()
	t.refresh()
	return nil
}
