//go:build ebiten

package app

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"go.uber.org/zap"

	"sandfall/internal/render"
	"sandfall/internal/scene"
	"sandfall/internal/sim"
)

// frameBudget is the per-tick cost ceiling the simulation must stay within.
const frameBudget = 16 * time.Millisecond

// elementKeys maps number keys to paintable species. 0 is the eraser.
var elementKeys = [...]struct {
	key     ebiten.Key
	species sim.Species
}{
	{ebiten.KeyDigit0, sim.Empty},
	{ebiten.KeyDigit1, sim.Sand},
	{ebiten.KeyDigit2, sim.Water},
	{ebiten.KeyDigit3, sim.Wall},
	{ebiten.KeyDigit4, sim.Fire},
	{ebiten.KeyDigit5, sim.Ghost},
	{ebiten.KeyDigit6, sim.Smoke},
}

// Game adapts a Universe to the ebiten.Game interface: it drains pointer
// paint into the universe, advances one tick per frame, and blits the render
// view. Paint is applied before the tick and the view is read after it, so
// strokes are never a frame late.
type Game struct {
	u       *sim.Universe
	painter *render.GridPainter
	log     *zap.Logger

	sceneName string
	seed      int64
	scale     int

	selected sim.Species
	brush    int

	paused   bool
	tickOnce bool

	prevX, prevY int
	painting     bool

	tickMax   time.Duration
	tickCount int
}

// New constructs a Game for the provided universe.
func New(u *sim.Universe, sceneName string, seed int64, scale, brush int, log *zap.Logger) *Game {
	if log == nil {
		log = zap.NewNop()
	}
	return &Game{
		u:         u,
		painter:   render.NewGridPainter(u.Width(), u.Height()),
		log:       log,
		sceneName: sceneName,
		seed:      seed,
		scale:     scale,
		selected:  sim.Sand,
		brush:     brush,
	}
}

// Reset rebuilds the starting scene with the provided seed.
func (g *Game) Reset(seed int64) {
	g.seed = seed
	if err := scene.Apply(g.sceneName, g.u, seed); err != nil {
		g.u.Reset(seed)
	}
	g.tickOnce = false
}

// Update handles input, drains paint and advances the simulation.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
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
	for _, ek := range elementKeys {
		if inpututil.IsKeyJustPressed(ek.key) {
			g.selected = ek.species
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyBracketLeft) && g.brush > 0 {
		g.brush--
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyBracketRight) && g.brush < 32 {
		g.brush++
	}

	g.drainPointer()

	if !g.paused || g.tickOnce {
		start := time.Now()
		g.u.Tick()
		g.observeTick(time.Since(start))
		g.tickOnce = false
	}
	return nil
}

// drainPointer applies the current pointer state as paint commands. All
// paint lands before the tick so the first tick after a stroke processes it.
func (g *Game) drainPointer() {
	mx, my := ebiten.CursorPosition()
	gx, gy := mx/g.scale, my/g.scale

	if g.u.Size().Contains(gx, gy) {
		g.u.SetCursor(gx, gy)
	} else {
		g.u.ClearCursor()
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyG) {
		PaintGhost(g.u, gx, gy)
	}

	erase := ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight)
	if ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) || erase {
		species := g.selected
		if erase {
			species = sim.Empty
		}
		if species == sim.Ghost {
			if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
				PaintGhost(g.u, gx, gy)
			}
		} else {
			x0, y0 := gx, gy
			if g.painting {
				x0, y0 = g.prevX, g.prevY
			}
			Stroke(x0, y0, gx, gy, g.brush, func(x, y int) {
				if g.u.Size().Contains(x, y) {
					g.u.SetCell(x, y, uint8(species))
				}
			})
		}
		g.painting = true
	} else {
		g.painting = false
	}
	g.prevX, g.prevY = gx, gy
}

func (g *Game) observeTick(d time.Duration) {
	if d > g.tickMax {
		g.tickMax = d
	}
	g.tickCount++
	if g.tickCount%300 == 0 {
		if g.tickMax > frameBudget {
			g.log.Warn("tick over frame budget",
				zap.Duration("max", g.tickMax),
				zap.Uint32("generation", g.u.Generation()))
		} else {
			g.log.Debug("tick timing",
				zap.Duration("max", g.tickMax),
				zap.Uint32("generation", g.u.Generation()))
		}
		g.tickMax = 0
	}
}

// Draw renders the current simulation state.
func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.Blit(screen, g.u.RenderView(), g.scale)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.u.Width() * g.scale, g.u.Height() * g.scale
}
