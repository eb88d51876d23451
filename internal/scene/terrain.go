package scene

import (
	"github.com/aquilax/go-perlin"

	"sandfall/internal/sim"
)

const (
	noiseAlpha   = 2.0
	noiseBeta    = 2.0
	noiseOctaves = 3
)

func init() {
	Register("dunes", dunes)
	Register("caves", caves)
}

// dunes fills the lower part of the grid with a perlin sand heightfield.
func dunes(u *sim.Universe, seed int64) {
	p := perlin.NewPerlin(noiseAlpha, noiseBeta, noiseOctaves, seed)
	w, h := u.Width(), u.Height()
	for x := 0; x < w; x++ {
		n := p.Noise1D(float64(x) / float64(w) * 4)
		surface := h*2/3 + int(n*float64(h)/6)
		if surface < 0 {
			surface = 0
		}
		for y := surface; y < h; y++ {
			u.SetCell(x, y, uint8(sim.Sand))
		}
	}
}

// caves thresholds 2D perlin noise into wall material, leaving winding open
// pockets to pour elements into.
func caves(u *sim.Universe, seed int64) {
	p := perlin.NewPerlin(noiseAlpha, noiseBeta, noiseOctaves, seed)
	w, h := u.Width(), u.Height()
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			n := p.Noise2D(float64(x)/float64(w)*6, float64(y)/float64(h)*6)
			if n > 0.12 {
				u.SetCell(x, y, uint8(sim.Wall))
			}
		}
	}
}
