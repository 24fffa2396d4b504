// component/movement.go
package component

import "go-magic-survivor/pkg/geom"

// Position — компонент позиции
type Position struct {
	X, Y float64
}

// Vec возвращает позицию как вектор.
func (p Position) Vec() geom.Vec2 {
	return geom.V(p.X, p.Y)
}

// Velocity — компонент скорости
type Velocity struct {
	Speed float64
}

// Collider — размер хитбокса сущности (половина стороны квадрата).
type Collider struct {
	Radius float64
}
