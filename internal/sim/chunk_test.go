package sim

import "testing"

func TestPaintDirtiesChunk(t *testing.T) {
	u := New(64, 64, 1)
	u.SetCell(40, 40, uint8(Sand))

	ch := u.chunks.at(1, 1)
	if !ch.dirty {
		t.Fatal("chunk (1,1) not dirty after paint")
	}
	if ch.minX != 40 || ch.maxX != 40 || ch.minY != 40 || ch.maxY != 40 {
		t.Fatalf("dirty rect = (%d,%d)-(%d,%d), want tight around (40,40)",
			ch.minX, ch.minY, ch.maxX, ch.maxY)
	}
}

func TestDirtyRectExpands(t *testing.T) {
	u := New(64, 64, 1)
	u.SetCell(34, 36, uint8(Wall))
	u.SetCell(40, 33, uint8(Wall))

	ch := u.chunks.at(1, 1)
	if ch.minX != 34 || ch.maxX != 40 || ch.minY != 33 || ch.maxY != 36 {
		t.Fatalf("dirty rect = (%d,%d)-(%d,%d), want (34,33)-(40,36)",
			ch.minX, ch.minY, ch.maxX, ch.maxY)
	}
}

func TestCrossBoundaryFallDirtiesBothChunks(t *testing.T) {
	u := New(64, 64, 1)
	// Sand on the last row of chunk row 0 falls into chunk row 1.
	u.SetCell(10, ChunkSize-1, uint8(Sand))
	u.Tick()

	if got := u.Get(10, ChunkSize).Species; got != Sand {
		t.Fatalf("sand did not cross the chunk boundary: %v", got)
	}
	upper := u.chunks.at(0, 0)
	lower := u.chunks.at(0, 1)
	if !upper.dirty {
		t.Fatal("source chunk not re-dirtied by the move")
	}
	if !lower.dirty {
		t.Fatal("destination chunk not dirtied by the move")
	}
	if lower.minY > ChunkSize || lower.maxY < ChunkSize {
		t.Fatalf("destination rect (%d..%d) does not include row %d",
			lower.minY, lower.maxY, ChunkSize)
	}
}

func TestSettledCellsGoClean(t *testing.T) {
	u := New(64, 64, 1)
	// A grain on the floor cannot move and writes nothing, so its chunk
	// must come out of the tick clean.
	u.SetCell(5, 63, uint8(Sand))
	u.Tick()

	if ch := u.chunks.at(0, 1); ch.dirty {
		t.Fatal("chunk still dirty after its only grain settled")
	}

	// The next tick must not disturb it.
	before := u.Get(5, 63)
	u.Tick()
	if u.Get(5, 63) != before {
		t.Fatal("settled grain mutated by a tick over a clean chunk")
	}
}

func TestChangesConfinedToPreTickDirtyRects(t *testing.T) {
	u := New(64, 64, 5)
	u.SetCell(20, 10, uint8(Sand))
	u.SetCell(21, 10, uint8(Water))
	for i := 0; i < 3; i++ {
		u.Tick()
	}

	// Snapshot the pre-tick dirty rects, then verify every changed cell
	// lies within one of them grown by a one-cell margin (rules write at
	// most one cell away from a scanned position).
	type rect struct{ minX, minY, maxX, maxY int }
	var rects []rect
	for i := range u.chunks.chunks {
		ch := &u.chunks.chunks[i]
		if ch.dirty {
			rects = append(rects, rect{ch.minX - 1, ch.minY - 1, ch.maxX + 1, ch.maxY + 1})
		}
	}
	before := append([]Cell(nil), u.cells...)

	u.Tick()

	for i, c := range u.cells {
		if c == before[i] {
			continue
		}
		x, y := i%64, i/64
		inside := false
		for _, r := range rects {
			if x >= r.minX && x <= r.maxX && y >= r.minY && y <= r.maxY {
				inside = true
				break
			}
		}
		if !inside {
			t.Fatalf("cell (%d,%d) changed outside every pre-tick dirty region", x, y)
		}
	}
}

func TestTruncatedEdgeChunks(t *testing.T) {
	// 40 cells wide means the second chunk column covers only 8 columns.
	u := New(40, 40, 1)
	if u.chunks.cw != 2 || u.chunks.ch != 2 {
		t.Fatalf("chunk grid = %dx%d, want 2x2", u.chunks.cw, u.chunks.ch)
	}
	u.SetCell(39, 39, uint8(Sand))
	u.Tick()
	if got := u.Get(39, 39).Species; got != Sand {
		t.Fatalf("grain in truncated corner chunk vanished: %v", got)
	}
}
