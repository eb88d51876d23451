// Package scene provides named starting arrangements for a universe. Presets
// register themselves by name so front-ends can offer them by flag.
package scene

import (
	"fmt"
	"sort"

	"sandfall/internal/sim"
)

// Func populates a freshly reset universe with a starting arrangement.
type Func func(u *sim.Universe, seed int64)

var scenes = map[string]Func{}

// Register adds a scene under the provided name.
func Register(name string, f Func) {
	if name == "" || f == nil {
		return
	}
	scenes[name] = f
}

// Names lists the registered scenes in sorted order.
func Names() []string {
	names := make([]string, 0, len(scenes))
	for n := range scenes {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// Apply resets the universe and populates it with the named scene.
func Apply(name string, u *sim.Universe, seed int64) error {
	f, ok := scenes[name]
	if !ok {
		return fmt.Errorf("unknown scene %q", name)
	}
	u.Reset(seed)
	f(u, seed)
	return nil
}

func init() {
	Register("empty", func(u *sim.Universe, seed int64) {})
	Register("basin", basin)
}

// basin builds a walled U with a pool of water dropped in, the classic
// settling demo.
func basin(u *sim.Universe, seed int64) {
	w, h := u.Width(), u.Height()
	floor := h * 7 / 8
	left := w / 8
	right := w - w/8
	top := h / 2

	for x := left; x <= right; x++ {
		u.SetCell(x, floor, uint8(sim.Wall))
	}
	for y := top; y <= floor; y++ {
		u.SetCell(left, y, uint8(sim.Wall))
		u.SetCell(right, y, uint8(sim.Wall))
	}

	cx := w / 2
	for y := top; y < top+(floor-top)/3; y++ {
		for x := cx - w/16; x <= cx+w/16; x++ {
			u.SetCell(x, y, uint8(sim.Water))
		}
	}
}
