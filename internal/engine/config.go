package engine

// RGB is one canvas pixel, 8 bits per channel. The canvas stores nothing
// else: no alpha, no blending.
type RGB struct {
	R, G, B uint8
}

// DefaultRadius is the stamp radius used until the toolbar says otherwise.
const DefaultRadius = 15.0

// Config holds the tool settings shared between the toolbar and the
// engine. The engine reads it at the moment a disc is rasterized, never
// earlier, so a config change mid-gesture only affects what is stamped
// after the change.
type Config struct {
	Radius float64
	Color  RGB
}
