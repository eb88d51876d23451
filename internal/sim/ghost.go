package sim

import "sort"

// ghostGroup is the side-table entry for one ghost instance. Rigid motion
// cuts across the per-cell rule model, so ghosts are handled as a group pass
// at the start of each tick and the per-cell dispatch ignores them.
type ghostGroup struct {
	cx, cy int // cluster center, recomputed every ghost pass
	vx, vy int // drift velocity, unit step components
	// life counts ticks until the group re-rolls its drift velocity, so a
	// ghost holds a heading for a while instead of jittering.
	life int
}

const (
	// ghostMoveEvery translates groups only every Nth generation — ghosts
	// drift lazily rather than racing the falling elements.
	ghostMoveEvery = 4
	ghostHoldMin   = 8
	ghostHoldSpan  = 8
	// ghostGazeEvery re-assigns active eyes even when the group is idle.
	ghostGazeEvery = 16
	// ghostBlinkChance is the per-gaze-pass probability (out of 256) that a
	// group closes its eyes for one period.
	ghostBlinkChance = 24
)

func newGhostGroup() *ghostGroup {
	return &ghostGroup{}
}

// tickGhosts runs the group pass: one scan collects every ghost cell by
// group id, then each live group drifts, translates as a rigid shape and
// updates its gaze. Groups whose last cell was destroyed are retired.
func (u *Universe) tickGhosts(gen uint8) {
	for id := range u.ghostScan {
		u.ghostScan[id] = u.ghostScan[id][:0]
	}
	for y := 0; y < u.h; y++ {
		row := y * u.w
		for x := 0; x < u.w; x++ {
			c := u.cells[row+x]
			if c.Species == Ghost {
				u.ghostScan[c.Ra] = append(u.ghostScan[c.Ra], gridPos{x, y})
			}
		}
	}

	move := u.generation%ghostMoveEvery == 0
	gaze := u.generation%ghostGazeEvery == 0

	for id := 1; id < 256; id++ {
		members := u.ghostScan[id]
		if len(members) == 0 {
			u.groups[id] = nil
			continue
		}
		g := u.groups[id]
		if g == nil {
			// Painted through the raw cell path without an allocated group.
			g = newGhostGroup()
			u.groups[id] = g
		}

		sx, sy := 0, 0
		for _, p := range members {
			sx += p.x
			sy += p.y
		}
		g.cx, g.cy = sx/len(members), sy/len(members)

		g.life--
		if g.life <= 0 {
			g.vx, g.vy = u.rng.Dir(), u.rng.Dir()
			g.life = ghostHoldMin + u.rng.IntN(ghostHoldSpan)
		}

		moved := false
		if move && (g.vx != 0 || g.vy != 0) {
			moved = u.translateGhostGroup(uint8(id), g, members, gen)
			if !moved {
				// Blocked: re-roll the velocity on the next pass.
				g.life = 0
			}
		}
		if moved {
			for i := range members {
				members[i].x += g.vx
				members[i].y += g.vy
			}
			g.cx += g.vx
			g.cy += g.vy
		}

		if moved || gaze {
			blink := gaze && u.rng.Byte() < ghostBlinkChance
			u.updateGhostEyes(g, members, gen, blink)
		}
	}
}

// translateGhostGroup moves every member cell by the group velocity in a
// single pass. The move is all-or-nothing: if any destination is neither
// Empty nor a cell of the same group, nothing moves and the shape stays
// perfectly intact.
func (u *Universe) translateGhostGroup(id uint8, g *ghostGroup, members []gridPos, gen uint8) bool {
	for _, p := range members {
		nx, ny := p.x+g.vx, p.y+g.vy
		if nx < 0 || nx >= u.w || ny < 0 || ny >= u.h {
			return false
		}
		dest := u.cells[ny*u.w+nx]
		if dest.Species != Empty && !(dest.Species == Ghost && dest.Ra == id) {
			return false
		}
	}

	// Cells furthest along the movement direction go first so leading cells
	// vacate their positions before trailing cells arrive.
	sort.Slice(members, func(i, j int) bool {
		si := members[i].x*g.vx + members[i].y*g.vy
		sj := members[j].x*g.vx + members[j].y*g.vy
		if si != sj {
			return si > sj
		}
		if members[i].y != members[j].y {
			return members[i].y < members[j].y
		}
		return members[i].x < members[j].x
	})

	for _, p := range members {
		nx, ny := p.x+g.vx, p.y+g.vy
		me := u.cells[p.y*u.w+p.x]
		me.Clock = gen
		vacated := u.cells[ny*u.w+nx]
		vacated.Clock = gen
		u.write(p.x, p.y, vacated)
		u.write(nx, ny, me)
	}
	return true
}

// updateGhostEyes re-assigns which eye-zone cells render as active eyes.
// Each group has two eye zones split left/right of its center; inside each
// zone a 2×3 block sits shifted toward the cursor (or the drift direction
// when no cursor is set). A blinking group keeps the whole zone passive for
// one period.
func (u *Universe) updateGhostEyes(g *ghostGroup, members []gridPos, gen uint8, blink bool) {
	lookX, lookY := g.vx, g.vy
	if u.hasCursor {
		lookX = sign(u.cursorX - g.cx)
		lookY = sign(u.cursorY - g.cy)
	}

	var left, right []gridPos
	for _, p := range members {
		c := u.cells[p.y*u.w+p.x]
		if c.Rb != GhostEyeZone && c.Rb != GhostEye {
			continue
		}
		if p.x <= g.cx {
			left = append(left, p)
		} else {
			right = append(right, p)
		}
	}

	for _, zone := range [2][]gridPos{left, right} {
		if len(zone) == 0 {
			continue
		}
		minX, maxX := zone[0].x, zone[0].x
		minY, maxY := zone[0].y, zone[0].y
		for _, p := range zone[1:] {
			minX = min(minX, p.x)
			maxX = max(maxX, p.x)
			minY = min(minY, p.y)
			maxY = max(maxY, p.y)
		}

		eyeX := clamp(minX+(maxX-minX-1)/2+lookX, minX, max(minX, maxX-1))
		eyeY := clamp(minY+(maxY-minY-2)/2+lookY, minY, max(minY, maxY-2))

		for _, p := range zone {
			c := u.cells[p.y*u.w+p.x]
			role := GhostEyeZone
			if !blink && p.x >= eyeX && p.x <= eyeX+1 && p.y >= eyeY && p.y <= eyeY+2 {
				role = GhostEye
			}
			if c.Rb == role {
				continue
			}
			c.Rb = role
			c.Clock = gen
			u.write(p.x, p.y, c)
		}
	}
}

func sign(v int) int {
	switch {
	case v < 0:
		return -1
	case v > 0:
		return 1
	}
	return 0
}
