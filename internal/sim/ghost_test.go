package sim

import (
	"testing"
)

// paintGhostBlock places a w×h ghost rectangle whose middle rows are eye
// zones, returning the allocated group id.
func paintGhostBlock(u *Universe, x0, y0, w, h int) uint32 {
	group := u.AllocGhostGroup()
	for dy := 0; dy < h; dy++ {
		for dx := 0; dx < w; dx++ {
			rb := GhostBody
			if dy >= 1 && dy <= 3 && dx >= 1 && dx < w-1 {
				rb = GhostEyeZone
			}
			u.SetGhost(x0+dx, y0+dy, group, rb)
		}
	}
	return group
}

func ghostPositions(u *Universe, group uint32) map[[2]int]bool {
	set := map[[2]int]bool{}
	for i, c := range u.Cells() {
		if c.Species == Ghost && c.Ra == uint8(group) {
			set[[2]int{i % u.w, i / u.w}] = true
		}
	}
	return set
}

// shapeOf normalizes a position set to its bounding-box origin.
func shapeOf(set map[[2]int]bool) map[[2]int]bool {
	minX, minY := 1<<30, 1<<30
	for p := range set {
		if p[0] < minX {
			minX = p[0]
		}
		if p[1] < minY {
			minY = p[1]
		}
	}
	out := map[[2]int]bool{}
	for p := range set {
		out[[2]int{p[0] - minX, p[1] - minY}] = true
	}
	return out
}

func TestAllocGhostGroupSkipsZero(t *testing.T) {
	u := New(8, 8, 1)
	if got := u.AllocGhostGroup(); got != 1 {
		t.Fatalf("first group id = %d, want 1", got)
	}
	if got := u.AllocGhostGroup(); got != 2 {
		t.Fatalf("second group id = %d, want 2", got)
	}
	for i := 0; i < 260; i++ {
		if got := u.AllocGhostGroup(); got == 0 {
			t.Fatal("group id 0 must never be handed out")
		}
	}
}

func TestSetGhostFillsEmptyOnly(t *testing.T) {
	u := New(8, 8, 1)
	u.SetCell(3, 3, uint8(Sand))
	g := u.AllocGhostGroup()
	u.SetGhost(3, 3, g, GhostBody)
	if got := u.Get(3, 3).Species; got != Sand {
		t.Fatalf("(3,3) = %v, ghost must not overwrite material", got)
	}
}

func TestGhostClusterStaysRigid(t *testing.T) {
	u := New(48, 48, 21)
	group := paintGhostBlock(u, 20, 20, 8, 6)
	want := shapeOf(ghostPositions(u, group))

	for i := 0; i < 120; i++ {
		u.Tick()
		got := ghostPositions(u, group)
		if len(got) != len(want) {
			t.Fatalf("tick %d: ghost cell count %d, want %d", i+1, len(got), len(want))
		}
		shape := shapeOf(got)
		for p := range want {
			if !shape[p] {
				t.Fatalf("tick %d: ghost shape tore at offset %v", i+1, p)
			}
		}
	}
}

func TestGhostConfinedByWalls(t *testing.T) {
	u := New(16, 16, 3)
	// Box the ghost in completely; the all-or-nothing move must hold it
	// perfectly still.
	for i := 0; i < 16; i++ {
		u.SetCell(i, 4, uint8(Wall))
		u.SetCell(i, 12, uint8(Wall))
		u.SetCell(4, i, uint8(Wall))
		u.SetCell(12, i, uint8(Wall))
	}
	group := paintGhostBlock(u, 5, 5, 7, 7)
	before := ghostPositions(u, group)
	for i := 0; i < 60; i++ {
		u.Tick()
	}
	after := ghostPositions(u, group)
	if len(after) != len(before) {
		t.Fatalf("ghost cell count changed %d -> %d", len(before), len(after))
	}
	for p := range before {
		if !after[p] {
			t.Fatalf("boxed ghost moved: cell %v left its position", p)
		}
	}
}

func TestGhostGroupRetiredWhenErased(t *testing.T) {
	u := New(32, 32, 5)
	group := paintGhostBlock(u, 10, 10, 6, 5)
	u.Tick()
	if u.groups[uint8(group)] == nil {
		t.Fatal("live group retired prematurely")
	}
	for i, c := range u.Cells() {
		if c.Species == Ghost {
			u.SetCell(i%32, i/32, uint8(Empty))
		}
	}
	u.Tick()
	if u.groups[uint8(group)] != nil {
		t.Fatal("group not retired after its last cell was erased")
	}
}

func TestGhostEyesStayInsideEyeZones(t *testing.T) {
	u := New(48, 48, 9)
	group := paintGhostBlock(u, 20, 20, 8, 6)

	zone := map[[2]int]bool{}
	for i, c := range u.Cells() {
		if c.Species == Ghost && c.Rb != GhostBody {
			zone[[2]int{i % u.w, i / u.w}] = true
		}
	}
	for i := 0; i < 64; i++ {
		u.Tick()
	}

	// Translate the zone set along with the cluster, then check roles.
	pos := ghostPositions(u, group)
	minX, minY := 1<<30, 1<<30
	for p := range pos {
		if p[0] < minX {
			minX = p[0]
		}
		if p[1] < minY {
			minY = p[1]
		}
	}
	for i, c := range u.Cells() {
		if c.Species != Ghost || c.Ra != uint8(group) {
			continue
		}
		rel := [2]int{i%u.w - minX + 20, i/u.w - minY + 20}
		inZone := zone[rel]
		switch c.Rb {
		case GhostBody:
			if inZone {
				t.Fatalf("eye-zone cell at offset %v demoted to body", rel)
			}
		case GhostEyeZone, GhostEye:
			if !inZone {
				t.Fatalf("body cell at offset %v became an eye", rel)
			}
		default:
			t.Fatalf("unknown ghost role %d", c.Rb)
		}
	}
}

func TestTwoGhostGroupsKeepTheirCells(t *testing.T) {
	u := New(64, 64, 31)
	a := paintGhostBlock(u, 8, 8, 6, 5)
	b := paintGhostBlock(u, 40, 40, 6, 5)
	if a == b {
		t.Fatal("groups share an id")
	}
	for i := 0; i < 100; i++ {
		u.Tick()
	}
	if got := len(ghostPositions(u, a)); got != 30 {
		t.Fatalf("group a has %d cells, want 30", got)
	}
	if got := len(ghostPositions(u, b)); got != 30 {
		t.Fatalf("group b has %d cells, want 30", got)
	}
}
