// internal/system/projectile.go
package system

import (
	"go-magic-survivor/internal/entity"
	"go-magic-survivor/internal/event"
	"go-magic-survivor/internal/projectile"
)

// ProjectileSystem двигает снаряды, применяет их попадания
// и убирает убитых врагов.
type ProjectileSystem struct {
	ecs             *entity.ECS
	manager         *projectile.Manager
	eventDispatcher *event.Dispatcher
}

func NewProjectileSystem(ecs *entity.ECS, manager *projectile.Manager, eventDispatcher *event.Dispatcher) *ProjectileSystem {
	return &ProjectileSystem{
		ecs:             ecs,
		manager:         manager,
		eventDispatcher: eventDispatcher,
	}
}

func (s *ProjectileSystem) Update(deltaTime float64) {
	enemies := EnemyActors(s.ecs)
	s.manager.Update(deltaTime, enemies)

	for _, hit := range s.manager.CheckEnemyCollisions(enemies) {
		id := hit.Enemy.ID()
		dealt := ApplyDamage(s.ecs, id, hit.Damage)
		if dealt == 0 {
			continue
		}
		s.eventDispatcher.Dispatch(event.Event{
			Type: event.EnemyHit,
			Data: event.EnemyHitData{EnemyID: id, SpellID: hit.Projectile.SpellID(), Damage: hit.Damage},
		})
	}

	// Взрывы по площади наносят урон прямо в Manager.Update,
	// поэтому мёртвых собираем после обоих этапов.
	s.removeDeadEnemies()
}

func (s *ProjectileSystem) removeDeadEnemies() {
	for _, id := range s.ecs.EnemyIDs() {
		health, ok := s.ecs.Healths[id]
		if ok && health.Value > 0 {
			continue
		}
		enemy := s.ecs.Enemies[id]
		s.ecs.RemoveEntity(id)
		s.eventDispatcher.Dispatch(event.Event{
			Type: event.EnemyDestroyed,
			Data: event.EnemyDestroyedData{EnemyID: id, DefID: enemy.DefID, XP: enemy.XP},
		})
	}
}
