// component/render.go
package component

import "image/color"

// Renderable — цвет и видимый радиус сущности. У эффектов радиус
// меняется каждый кадр и может не совпадать с Collider.
type Renderable struct {
	Color  color.RGBA
	Radius float32
}
