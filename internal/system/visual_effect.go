// internal/system/visual_effect.go
package system

import (
	"go-magic-survivor/internal/component"
	"go-magic-survivor/internal/config"
	"go-magic-survivor/internal/entity"
	"go-magic-survivor/internal/event"
)

// VisualEffectSystem управляет визуальными эффектами, такими как вспышки урона.
type VisualEffectSystem struct {
	ecs *entity.ECS
}

// NewVisualEffectSystem создает новую систему визуальных эффектов.
func NewVisualEffectSystem(ecs *entity.ECS, eventDispatcher *event.Dispatcher) *VisualEffectSystem {
	vs := &VisualEffectSystem{ecs: ecs}
	eventDispatcher.Subscribe(event.AoeDetonated, vs)
	return vs
}

// OnEvent создаёт круг взрыва на месте детонации.
func (s *VisualEffectSystem) OnEvent(e event.Event) {
	data, ok := e.Data.(event.AoeDetonatedData)
	if e.Type != event.AoeDetonated || !ok {
		return
	}
	id := s.ecs.NewEntity()
	s.ecs.Positions[id] = &component.Position{X: data.X, Y: data.Y}
	s.ecs.Renderables[id] = &component.Renderable{Color: config.DefaultAoeColor}
	s.ecs.AoeEffects[id] = &component.AoeEffect{
		MaxRadius: data.Radius,
		Duration:  config.AoeEffectDuration,
		Color:     config.DefaultAoeColor,
	}
}

// Update обновляет все активные визуальные эффекты.
func (s *VisualEffectSystem) Update(deltaTime float64) {
	// Обновляем таймеры вспышек урона
	for id, flash := range s.ecs.DamageFlashes {
		flash.Timer -= deltaTime
		if flash.Timer <= 0 {
			delete(s.ecs.DamageFlashes, id)
		}
	}

	// Обновляем эффекты атаки по области
	for id, aoeEffect := range s.ecs.AoeEffects {
		aoeEffect.CurrentTimer += deltaTime

		if aoeEffect.CurrentTimer >= aoeEffect.Duration {
			// Эффект завершился, удаляем его
			s.ecs.RemoveEntity(id)
			continue
		}

		// Обновляем радиус для анимации
		renderable, ok := s.ecs.Renderables[id]
		if ok {
			progress := aoeEffect.CurrentTimer / aoeEffect.Duration
			renderable.Radius = float32(progress * aoeEffect.MaxRadius)
		}
	}
}
