package core

import "image/color"

// RGB is an opaque display colour.
type RGB [3]uint8

// RGBA converts the colour to an opaque color.RGBA.
func (c RGB) RGBA() color.RGBA {
	return color.RGBA{R: c[0], G: c[1], B: c[2], A: 0xff}
}

// Palette maps cell states to colours by index.
type Palette []RGB
