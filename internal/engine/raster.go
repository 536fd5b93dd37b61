package engine

// fillCircle rasterizes a filled disc onto dst: every in-bounds pixel
// (px, py) with (px-cx)^2 + (py-cy)^2 <= r^2 is set to col. The scan
// covers the bounding box [cx-r, cx+r] x [cy-r, cy+r], clipped to the
// canvas before the distance test so no out-of-range index is ever
// formed. Pixels are overwritten outright; there is no blending, so
// stamp order only matters where discs overlap.
func fillCircle(dst *Canvas, cx, cy, r int, col RGB) {
	if r <= 0 {
		// A zero-radius stamp touches nothing, the center pixel included.
		return
	}

	minX := cx - r
	if minX < 0 {
		minX = 0
	}
	maxX := cx + r
	if maxX > dst.width-1 {
		maxX = dst.width - 1
	}
	minY := cy - r
	if minY < 0 {
		minY = 0
	}
	maxY := cy + r
	if maxY > dst.height-1 {
		maxY = dst.height - 1
	}

	rr := r * r
	for py := minY; py <= maxY; py++ {
		dy := py - cy
		row := py * dst.width
		for px := minX; px <= maxX; px++ {
			dx := px - cx
			if dx*dx+dy*dy <= rr {
				i := (row + px) * 3
				dst.pix[i] = col.R
				dst.pix[i+1] = col.G
				dst.pix[i+2] = col.B
			}
		}
	}
}
