package core

import "fmt"

// RGB is a 24-bit color. Games describe colors in RGB and each platform maps
// them to what its output supports (truecolor escapes, image pixels).
type RGB struct {
	R, G, B uint8
}

// Predefined colors for scenery and HUD elements.
var (
	ColorBlack  = RGB{0, 0, 0}
	ColorWhite  = RGB{255, 255, 255}
	ColorBlue   = RGB{0, 0, 255}
	ColorOrange = RGB{255, 200, 0}
	ColorBrown  = RGB{139, 69, 19}
	ColorForest = RGB{34, 139, 34}
	ColorGray   = RGB{150, 150, 150}
	ColorDimmed = RGB{110, 110, 110}
	ColorButton = RGB{0, 100, 0}
)

// Hex returns the color in #rrggbb form.
func (c RGB) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// RGBA returns the color as premultiplied 16-bit channels so RGB satisfies
// image/color.Color and can be handed to drawing libraries directly.
func (c RGB) RGBA() (r, g, b, a uint32) {
	r = uint32(c.R)
	r |= r << 8
	g = uint32(c.G)
	g |= g << 8
	b = uint32(c.B)
	b |= b << 8
	return r, g, b, 0xffff
}
