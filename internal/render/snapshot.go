package render

import (
	"fmt"
	"io"

	"tomato-ca/internal/core"

	"github.com/gogpu/gg"
)

// Snapshot draws b with one scale×scale square per cell. The caller closes
// the returned context.
func Snapshot(b *core.Board, p core.Palette, scale int) (*gg.Context, error) {
	scale = max(scale, 1)
	dc := gg.NewContext(b.Cols*scale, b.Rows*scale)
	colors := RGBA(p)
	if len(colors) == 0 {
		return dc, nil
	}
	last := len(colors) - 1
	s := float64(scale)
	for row := 0; row < b.Rows; row++ {
		for col := 0; col < b.Cols; col++ {
			dc.SetColor(colors[min(int(b.At(row, col)), last)])
			dc.DrawRectangle(float64(col)*s, float64(row)*s, s, s)
			if err := dc.Fill(); err != nil {
				dc.Close()
				return nil, fmt.Errorf("render: fill cell %d,%d: %w", row, col, err)
			}
		}
	}
	return dc, nil
}

// WritePNG encodes a snapshot of b to w.
func WritePNG(w io.Writer, b *core.Board, p core.Palette, scale int) error {
	dc, err := Snapshot(b, p, scale)
	if err != nil {
		return err
	}
	defer dc.Close()
	if err := dc.EncodePNG(w); err != nil {
		return fmt.Errorf("render: encode png: %w", err)
	}
	return nil
}

// SavePNG writes a snapshot of b to path.
func SavePNG(path string, b *core.Board, p core.Palette, scale int) error {
	dc, err := Snapshot(b, p, scale)
	if err != nil {
		return err
	}
	defer dc.Close()
	if err := dc.SavePNG(path); err != nil {
		return fmt.Errorf("render: save %s: %w", path, err)
	}
	return nil
}
