// pkg/render/color.go
package render

import "image/color"

// ArenaColors holds the colors the arena renderer needs.
type ArenaColors struct {
	BackgroundColor  color.RGBA
	PlayerColor      color.RGBA
	DamageFlashColor color.RGBA
	StrokeColor      color.RGBA
	HealthBarColor   color.RGBA
	HealthBarBack    color.RGBA
	StrokeWidth      float32
}

// DarkenColor reduces the brightness of a color.
func DarkenColor(c color.RGBA) color.RGBA {
	return color.RGBA{
		R: uint8(float64(c.R) * 0.5),
		G: uint8(float64(c.G) * 0.5),
		B: uint8(float64(c.B) * 0.5),
		A: c.A,
	}
}

func fromArray(c [4]uint8) color.RGBA {
	return color.RGBA{R: c[0], G: c[1], B: c[2], A: c[3]}
}
