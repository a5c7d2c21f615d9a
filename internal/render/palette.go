// Package render turns boards into pixels.
package render

import (
	"image/color"

	"tomato-ca/internal/automata"
	"tomato-ca/internal/core"
)

// Default is the ramp state colours are derived from. It runs from the black
// background to white.
var Default = core.Palette{
	{0, 0, 0},
	{30, 40, 120},
	{50, 110, 240},
	{40, 180, 240},
	{40, 200, 170},
	{60, 200, 80},
	{170, 230, 50},
	{255, 220, 40},
	{255, 150, 40},
	{255, 60, 60},
	{230, 60, 180},
	{170, 60, 220},
	{100, 70, 220},
	{150, 150, 150},
	{210, 210, 210},
	{255, 255, 255},
}

// Subset picks n colours from p. When p has at least n entries they are
// evenly spaced and distinct, always including the first and last entry.
// Otherwise neighbouring entries are blended to make up the difference.
func Subset(p core.Palette, n int) core.Palette {
	if n <= 0 || len(p) == 0 {
		return nil
	}
	out := make(core.Palette, n)
	if n == 1 {
		out[0] = p[0]
		return out
	}
	last := len(p) - 1
	if len(p) >= n {
		for i := range out {
			out[i] = p[i*last/(n-1)]
		}
		return out
	}
	for i := range out {
		pos := float64(i*last) / float64(n-1)
		lo := int(pos)
		hi := min(lo+1, last)
		out[i] = lerp(p[lo], p[hi], pos-float64(lo))
	}
	return out
}

func lerp(a, b core.RGB, t float64) core.RGB {
	var c core.RGB
	for i := range c {
		c[i] = uint8(float64(a[i]) + (float64(b[i])-float64(a[i]))*t + 0.5)
	}
	return c
}

// ForAutomaton returns one colour per state of a, honouring its override.
func ForAutomaton(a *automata.Automaton) core.Palette {
	if a.ColorOverride != nil {
		return a.ColorOverride
	}
	return Subset(Default, a.NumStates)
}

// RGBA converts p for pixel filling.
func RGBA(p core.Palette) []color.RGBA {
	out := make([]color.RGBA, len(p))
	for i, c := range p {
		out[i] = c.RGBA()
	}
	return out
}
