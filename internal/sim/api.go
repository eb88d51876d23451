package sim

// API is the neighborhood handle threaded into every element rule. It bundles
// the universe, the position of the cell being updated, and the current
// generation. Out-of-bounds reads return Wall so the edges act as immovable
// barriers; out-of-bounds writes are no-ops. Every write stamps the cell's
// clock with the current generation and re-dirties the enclosing chunk, so
// rules never touch the store directly.
type API struct {
	u    *Universe
	x, y int
	gen  uint8
}

// Get reads the cell at relative offset (dx, dy).
func (a *API) Get(dx, dy int) Cell {
	return a.u.get(a.x+dx, a.y+dy)
}

// Set writes a cell at relative offset (dx, dy), stamping its clock.
func (a *API) Set(dx, dy int, c Cell) {
	c.Clock = a.gen
	a.u.write(a.x+dx, a.y+dy, c)
}

// Swap exchanges the current cell with the cell at offset (dx, dy). Both
// results are stamped. The source is written first so a moving cell leaves
// its displaced neighbor behind before the destination is overwritten.
func (a *API) Swap(dx, dy int) {
	me := a.u.get(a.x, a.y)
	other := a.u.get(a.x+dx, a.y+dy)
	other.Clock = a.gen
	me.Clock = a.gen
	a.u.write(a.x, a.y, other)
	a.u.write(a.x+dx, a.y+dy, me)
}

// RandDir returns a uniform ternary direction: -1, 0 or +1.
func (a *API) RandDir() int {
	return a.u.rng.Dir()
}

// RandSide returns -1 or +1 with equal probability.
func (a *API) RandSide() int {
	return a.u.rng.Side()
}

// RandByte returns a uniform byte from the universe's random source.
func (a *API) RandByte() uint8 {
	return a.u.rng.Byte()
}
