package sim

import (
	"sandfall/internal/core"
)

// Universe owns the cell store, the chunk index, the render view and the
// random source. All mutation goes through paint endpoints between ticks or,
// during a tick, through the ghost group pass and the neighborhood API; the
// two windows never overlap.
type Universe struct {
	w, h  int
	cells []Cell

	// view is the two-byte-per-cell {species, rb} projection read by the
	// renderers. It is kept coherent on every write so paint is visible on
	// the next frame even while paused.
	view []byte

	chunks *chunkIndex

	// generation increments at the start of every tick; its low byte is
	// what gets stamped into Cell.Clock.
	generation uint32

	rng  *core.RNG
	seed int64

	// groups is the ghost side table, indexed by group id (Cell.Ra).
	// Slot 0 is never used.
	groups     [256]*ghostGroup
	groupsLive bool
	nextGroup  uint8
	ghostScan  [256][]gridPos
	ghosts     int

	cursorX, cursorY int
	hasCursor        bool
}

type gridPos struct {
	x, y int
}

// New allocates a Universe with the given dimensions, all cells Empty.
func New(w, h int, seed int64) *Universe {
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	u := &Universe{
		w:         w,
		h:         h,
		cells:     make([]Cell, w*h),
		view:      make([]byte, 2*w*h),
		chunks:    newChunkIndex(w, h),
		rng:       core.NewRNG(seed),
		seed:      seed,
		nextGroup: 1,
	}
	return u
}

// Size reports the grid dimensions.
func (u *Universe) Size() core.Size { return core.Size{W: u.w, H: u.h} }

// Width reports the grid width in cells.
func (u *Universe) Width() int { return u.w }

// Height reports the grid height in cells.
func (u *Universe) Height() int { return u.h }

// Generation reports the number of ticks run since the last reset.
func (u *Universe) Generation() uint32 { return u.generation }

// Cells exposes the backing cell store for inspection.
func (u *Universe) Cells() []Cell { return u.cells }

// RenderView borrows the two-byte-per-cell {species, rb} buffer, row-major,
// length 2*W*H. Valid until the next mutation; readers must not hold it
// across a Tick or paint call on another goroutine.
func (u *Universe) RenderView() []byte { return u.view }

// Reset clears the grid and reseeds the random source. A zero seed reuses
// the construction seed.
func (u *Universe) Reset(seed int64) {
	if seed == 0 {
		seed = u.seed
	}
	for i := range u.cells {
		u.cells[i] = Cell{}
	}
	for i := range u.view {
		u.view[i] = 0
	}
	u.chunks.clear()
	u.generation = 0
	u.rng = core.NewRNG(seed)
	u.groups = [256]*ghostGroup{}
	u.groupsLive = false
	u.nextGroup = 1
	u.ghosts = 0
}

// Get returns the cell at (x, y). Out-of-bounds coordinates read as Wall.
func (u *Universe) Get(x, y int) Cell {
	return u.get(x, y)
}

func (u *Universe) get(x, y int) Cell {
	if x < 0 || x >= u.w || y < 0 || y >= u.h {
		return wallCell
	}
	return u.cells[y*u.w+x]
}

// write stores a cell, keeps the render view coherent and re-dirties the
// enclosing chunk. Out-of-bounds writes are dropped. This is the single
// mutation path shared by the paint endpoints, the neighborhood API and the
// ghost pass.
func (u *Universe) write(x, y int, c Cell) {
	if x < 0 || x >= u.w || y < 0 || y >= u.h {
		return
	}
	i := y*u.w + x
	old := u.cells[i].Species
	if old == Ghost && c.Species != Ghost {
		u.ghosts--
	} else if old != Ghost && c.Species == Ghost {
		u.ghosts++
	}
	u.cells[i] = c
	u.view[2*i] = byte(c.Species)
	u.view[2*i+1] = c.Rb
	u.chunks.mark(x, y)
}

// Tick advances the simulation by one generation.
//
// Chunks are walked bottom row first with alternating horizontal direction;
// within each dirty chunk the pre-tick dirty rectangle is snapshotted and
// the flag cleared before iterating, so any write during the tick re-dirties
// the chunk for the next one. Bottom-to-top order means a falling grain's
// destination is scanned after the grain itself, and the clock stamp keeps a
// moved cell from being processed again when the scan reaches its new row.
func (u *Universe) Tick() {
	u.generation++
	gen := uint8(u.generation)
	scanRight := u.generation%2 == 0

	if u.ghosts > 0 {
		u.tickGhosts(gen)
	} else if u.groupsLive {
		// The last ghost cell is gone; retire every group.
		u.groups = [256]*ghostGroup{}
		u.groupsLive = false
	}

	for cy := u.chunks.ch - 1; cy >= 0; cy-- {
		if scanRight {
			for cx := 0; cx < u.chunks.cw; cx++ {
				u.tickChunk(cx, cy, gen, scanRight)
			}
		} else {
			for cx := u.chunks.cw - 1; cx >= 0; cx-- {
				u.tickChunk(cx, cy, gen, scanRight)
			}
		}
	}
}

func (u *Universe) tickChunk(cx, cy int, gen uint8, scanRight bool) {
	ch := u.chunks.at(cx, cy)
	if !ch.dirty {
		return
	}
	minX, minY, maxX, maxY := ch.minX, ch.minY, ch.maxX, ch.maxY
	ch.dirty = false

	for y := maxY; y >= minY; y-- {
		if scanRight {
			for x := minX; x <= maxX; x++ {
				u.updateCell(x, y, gen)
			}
		} else {
			for x := maxX; x >= minX; x-- {
				u.updateCell(x, y, gen)
			}
		}
	}
}

func (u *Universe) updateCell(x, y int, gen uint8) {
	c := u.cells[y*u.w+x]
	if c.Species == Empty || c.Species == Wall {
		return
	}
	if c.Clock == gen {
		return
	}
	rule := rules[c.Species]
	if rule == nil {
		return
	}
	api := API{u: u, x: x, y: y, gen: gen}
	rule(c, &api)
}

// SetCell paints a single cell. Coordinates are clamped to the grid; species
// codes outside the known set map to Empty. Non-empty materials only fill
// empty cells, the eraser (Empty) always overwrites. Painted cells keep the
// current generation in their clock so the first tick after paint still
// processes them.
func (u *Universe) SetCell(x, y int, species uint8) {
	sp := Empty
	if species < uint8(numSpecies) {
		sp = Species(species)
	}
	c := Cell{Species: sp}
	switch sp {
	case Sand:
		c.Ra = u.rng.Byte()
		c.Rb = u.rng.Byte()
	case Water:
		c.Ra = u.rng.Byte()
	case Fire:
		c.Ra = u.rng.Byte()
		c.Rb = u.rng.ByteIn(fireLifeMin, fireLifeMax)
	case Smoke:
		c.Ra = u.rng.Byte()
		c.Rb = u.rng.ByteIn(smokeLifeMin, smokeLifeMax)
	}
	u.paint(x, y, c)
}

// PaintCell is the explicit paint path: it writes the given registers
// verbatim instead of randomizing them. Unknown species map to Empty.
func (u *Universe) PaintCell(x, y int, species, ra, rb uint8) {
	sp := Empty
	if species < uint8(numSpecies) {
		sp = Species(species)
	}
	u.paint(x, y, Cell{Species: sp, Ra: ra, Rb: rb})
}

func (u *Universe) paint(x, y int, c Cell) {
	x = clamp(x, 0, u.w-1)
	y = clamp(y, 0, u.h-1)
	if c.Species != Empty && u.cells[y*u.w+x].Species != Empty {
		return
	}
	c.Clock = uint8(u.generation)
	u.write(x, y, c)
}

// AllocGhostGroup reserves a fresh ghost group id. Ids live in 1..255 and
// wrap; 0 is reserved for "no group".
func (u *Universe) AllocGhostGroup() uint32 {
	id := u.nextGroup
	u.nextGroup++
	if u.nextGroup == 0 {
		u.nextGroup = 1
	}
	if u.groups[id] == nil {
		u.groups[id] = newGhostGroup()
	}
	u.groupsLive = true
	return uint32(id)
}

// SetGhost paints one ghost body cell belonging to the given group. The rb
// value encodes the cell's visual role (body, eye zone, active eye).
func (u *Universe) SetGhost(x, y int, group uint32, rb uint8) {
	id := uint8(group)
	if id == 0 {
		return
	}
	if u.groups[id] == nil {
		u.groups[id] = newGhostGroup()
	}
	u.groupsLive = true
	u.paint(x, y, Cell{Species: Ghost, Ra: id, Rb: rb})
}

// SetCursor records the pointer position, in grid coordinates, that ghost
// eyes track.
func (u *Universe) SetCursor(x, y int) {
	u.cursorX = clamp(x, 0, u.w-1)
	u.cursorY = clamp(y, 0, u.h-1)
	u.hasCursor = true
}

// ClearCursor makes ghost gaze follow each group's drift direction again.
func (u *Universe) ClearCursor() {
	u.hasCursor = false
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
