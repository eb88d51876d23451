package app

import "sandfall/internal/sim"

// ghostPattern is the multi-cell stamp painted when the user places a ghost.
// '#' is body, 'e' is an eye zone the simulation animates, '.' is skipped.
var ghostPattern = []string{
	"....#####....",
	"..#########..",
	".###########.",
	".###########.",
	"#############",
	"##eee###eee##",
	"##eee###eee##",
	"##eee###eee##",
	"##eee###eee##",
	"#############",
	"#############",
	"#############",
	"#############",
	"#.##.###.##.#",
}

// PaintGhost stamps one ghost centered at (cx, cy), allocating a fresh group
// so the cluster drifts as a unit.
func PaintGhost(u *sim.Universe, cx, cy int) {
	group := u.AllocGhostGroup()
	left := cx - len(ghostPattern[0])/2
	top := cy - len(ghostPattern)/2
	for row, line := range ghostPattern {
		for col, ch := range line {
			switch ch {
			case '#':
				u.SetGhost(left+col, top+row, group, sim.GhostBody)
			case 'e':
				u.SetGhost(left+col, top+row, group, sim.GhostEyeZone)
			}
		}
	}
}
