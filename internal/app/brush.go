package app

// Brush geometry for paint strokes. The simulation core only sees individual
// cell writes; circular expansion and stroke interpolation happen here.

// Disc visits every cell within radius r of (cx, cy).
func Disc(cx, cy, r int, paint func(x, y int)) {
	if r < 0 {
		return
	}
	r2 := r * r
	for dy := -r; dy <= r; dy++ {
		for dx := -r; dx <= r; dx++ {
			if dx*dx+dy*dy > r2 {
				continue
			}
			paint(cx+dx, cy+dy)
		}
	}
}

// Stroke interpolates a Bresenham line from (x0, y0) to (x1, y1), stamping a
// disc of radius r at every step so fast pointer motion leaves no gaps.
func Stroke(x0, y0, x1, y1, r int, paint func(x, y int)) {
	dx := abs(x1 - x0)
	dy := -abs(y1 - y0)
	sx := 1
	if x0 > x1 {
		sx = -1
	}
	sy := 1
	if y0 > y1 {
		sy = -1
	}
	err := dx + dy

	for {
		Disc(x0, y0, r, paint)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
