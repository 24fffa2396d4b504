// internal/component/visual.go
package component

import "image/color"

// DamageFlash указывает, что сущность должна быть отрисована цветом урона.
type DamageFlash struct {
	Timer    float64 // Сколько времени эффект ещё активен
	Duration float64 // Общая продолжительность эффекта
}

// AoeEffect — расходящийся круг взрыва, живёт отдельной сущностью.
type AoeEffect struct {
	MaxRadius    float64
	Duration     float64
	CurrentTimer float64
	Color        color.RGBA
}
