package engine

import "image"

// Canvas is a fixed-size raster of 3-byte RGB pixels, row-major.
// len(pix) == width*height*3 always; the dimensions are set at creation
// and never change. Only StampCircle, Fill, and Restore mutate it.
type Canvas struct {
	width  int
	height int
	pix    []byte
}

// NewCanvas allocates a canvas filled with a uniform background color.
func NewCanvas(width, height int, fill RGB) *Canvas {
	c := &Canvas{
		width:  width,
		height: height,
		pix:    make([]byte, width*height*3),
	}
	c.Fill(fill)
	return c
}

// Width returns the canvas width in pixels.
func (c *Canvas) Width() int {
	return c.width
}

// Height returns the canvas height in pixels.
func (c *Canvas) Height() int {
	return c.height
}

// Pix returns the raw pixel buffer (row-major RGB). Callers must treat it
// as read-only; the display boundary consumes this directly.
func (c *Canvas) Pix() []byte {
	return c.pix
}

// At returns the pixel at (x, y), or the zero color for coordinates
// outside the canvas.
func (c *Canvas) At(x, y int) RGB {
	if x < 0 || x >= c.width || y < 0 || y >= c.height {
		return RGB{}
	}
	i := (y*c.width + x) * 3
	return RGB{R: c.pix[i], G: c.pix[i+1], B: c.pix[i+2]}
}

// Fill overwrites every pixel with one color.
func (c *Canvas) Fill(col RGB) {
	for i := 0; i < len(c.pix); i += 3 {
		c.pix[i] = col.R
		c.pix[i+1] = col.G
		c.pix[i+2] = col.B
	}
}

// StampCircle draws a filled disc of the given radius centered at
// (cx, cy). The center may lie anywhere, including outside the canvas;
// off-canvas pixels are clipped silently. A negative radius is clamped to
// zero, and a zero radius touches no pixels.
func (c *Canvas) StampCircle(cx, cy, radius int, col RGB) {
	if radius < 0 {
		radius = 0
	}
	fillCircle(c, cx, cy, radius, col)
}

// Snapshot returns an independent deep copy. History entries are made of
// these; mutating the live canvas never changes a snapshot.
func (c *Canvas) Snapshot() *Canvas {
	pix := make([]byte, len(c.pix))
	copy(pix, c.pix)
	return &Canvas{width: c.width, height: c.height, pix: pix}
}

// Restore replaces the canvas contents with those of a snapshot taken
// from a canvas of the same dimensions.
func (c *Canvas) Restore(snap *Canvas) {
	copy(c.pix, snap.pix)
}

// RGBA converts the canvas to an image.RGBA for the display boundary.
func (c *Canvas) RGBA() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, c.width, c.height))
	si := 0
	di := 0
	for p := 0; p < c.width*c.height; p++ {
		img.Pix[di] = c.pix[si]
		img.Pix[di+1] = c.pix[si+1]
		img.Pix[di+2] = c.pix[si+2]
		img.Pix[di+3] = 0xff
		si += 3
		di += 4
	}
	return img
}
