package render

import "sandfall/internal/sim"

// The palette is a protocol with the simulation's render view: species picks
// the base color and rb modulates it (sand grain shade, fire lifetime ramp,
// smoke fade, ghost eye role).

type rgb struct {
	r, g, b uint8
}

var (
	backgroundColor = rgb{12, 12, 18}
	sandBase        = rgb{199, 168, 102}
	waterColor      = rgb{44, 96, 212}
	wallColor       = rgb{104, 104, 114}
	ghostBody       = rgb{232, 236, 252}
	ghostEyeColor   = rgb{30, 30, 64}

	fireYoung = rgb{255, 222, 88}
	fireOld   = rgb{158, 26, 8}

	smokeThick = rgb{152, 152, 164}
	smokeThin  = rgb{34, 34, 42}
)

// CellColor maps one {species, rb} pair to an opaque RGB color.
func CellColor(species, rb uint8) (r, g, b uint8) {
	switch sim.Species(species) {
	case sim.Sand:
		c := shade(sandBase, int(rb>>3)-16)
		return c.r, c.g, c.b
	case sim.Water:
		return waterColor.r, waterColor.g, waterColor.b
	case sim.Wall:
		return wallColor.r, wallColor.g, wallColor.b
	case sim.Fire:
		c := lerp(fireOld, fireYoung, int(rb), 80)
		return c.r, c.g, c.b
	case sim.Ghost:
		if rb == sim.GhostEye {
			return ghostEyeColor.r, ghostEyeColor.g, ghostEyeColor.b
		}
		return ghostBody.r, ghostBody.g, ghostBody.b
	case sim.Smoke:
		c := lerp(smokeThin, smokeThick, int(rb), 120)
		return c.r, c.g, c.b
	}
	return backgroundColor.r, backgroundColor.g, backgroundColor.b
}

// shade brightens or darkens a color by delta, clamping each channel.
func shade(c rgb, delta int) rgb {
	return rgb{clampByte(int(c.r) + delta), clampByte(int(c.g) + delta), clampByte(int(c.b) + delta)}
}

// lerp blends from lo to hi by t/span, with t clamped into [0, span].
func lerp(lo, hi rgb, t, span int) rgb {
	if t > span {
		t = span
	}
	if t < 0 {
		t = 0
	}
	mix := func(a, b uint8) uint8 {
		return uint8(int(a) + (int(b)-int(a))*t/span)
	}
	return rgb{mix(lo.r, hi.r), mix(lo.g, hi.g), mix(lo.b, hi.b)}
}

func clampByte(v int) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}
