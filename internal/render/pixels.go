package render

// FillCellRGBA converts a two-byte-per-cell {species, rb} render view into
// RGBA pixels in buf. buf must hold 4 bytes per cell (2 per view byte).
func FillCellRGBA(buf []byte, view []byte) {
	n := len(view) / 2
	if len(buf) < n*4 {
		return
	}
	for i := 0; i < n; i++ {
		r, g, b := CellColor(view[2*i], view[2*i+1])
		base := i * 4
		buf[base+0] = r
		buf[base+1] = g
		buf[base+2] = b
		buf[base+3] = 0xff
	}
}
