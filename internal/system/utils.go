// internal/system/utils.go
package system

import (
	"math"

	"go-magic-survivor/internal/component"
	"go-magic-survivor/internal/config"
	"go-magic-survivor/internal/entity"
	"go-magic-survivor/internal/types"
)

// ApplyDamage наносит урон сущности. Урон округляется до целого,
// но положительный урон всегда снимает хотя бы 1 единицу здоровья.
func ApplyDamage(ecs *entity.ECS, entityID types.EntityID, damage float64) int {
	health, hasHealth := ecs.Healths[entityID]
	if !hasHealth || health.Value <= 0 || !(damage > 0) {
		return 0
	}

	finalDamage := int(math.Round(damage))
	if finalDamage < 1 {
		finalDamage = 1
	}

	health.Value -= finalDamage
	if health.Value <= 0 {
		health.Value = 0
	}

	// Добавляем или сбрасываем компонент "вспышки"
	if _, isEnemy := ecs.Enemies[entityID]; isEnemy {
		ecs.DamageFlashes[entityID] = &component.DamageFlash{
			Timer:    config.DamageFlashDuration,
			Duration: config.DamageFlashDuration,
		}
	}
	return finalDamage
}
