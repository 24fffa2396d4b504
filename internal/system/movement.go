// internal/system/movement.go
package system

import (
	"go-magic-survivor/internal/component"
	"go-magic-survivor/internal/config"
	"go-magic-survivor/internal/entity"
	"go-magic-survivor/internal/event"
	"go-magic-survivor/internal/types"
	"go-magic-survivor/internal/utils"
	"go-magic-survivor/pkg/geom"
)

// MovementSystem двигает игрока по вводу, а врагов к игроку.
// Враг, коснувшийся игрока, бьёт его не чаще раза в EnemyContactCooldown.
type MovementSystem struct {
	ecs             *entity.ECS
	eventDispatcher *event.Dispatcher
}

func NewMovementSystem(ecs *entity.ECS, eventDispatcher *event.Dispatcher) *MovementSystem {
	return &MovementSystem{ecs: ecs, eventDispatcher: eventDispatcher}
}

func (s *MovementSystem) Update(deltaTime float64) {
	if !s.ecs.PlayerAlive() {
		return
	}
	playerID := s.ecs.PlayerID
	ppos, ok := s.ecs.PlayerPosition()
	if !ok {
		return
	}
	s.movePlayer(playerID, ppos, deltaTime)
	playerPos := ppos.Vec()
	playerRadius := s.colliderRadius(playerID)

	for _, id := range s.ecs.EnemyIDs() {
		pos, hasPos := s.ecs.Positions[id]
		vel, hasVel := s.ecs.Velocities[id]
		if !hasPos || !hasVel {
			continue
		}
		enemy := s.ecs.Enemies[id]

		reach := playerRadius + s.colliderRadius(id)
		dir, ok := geom.Direction(pos.Vec(), playerPos)
		dist := pos.Vec().Dist(playerPos)
		if ok && dist > reach {
			// Не заходим внутрь игрока
			step := min(vel.Speed*deltaTime, dist-reach)
			pos.X += dir.X * step
			pos.Y += dir.Y * step
			dist -= step
		}

		if enemy.ContactCooldown > 0 {
			enemy.ContactCooldown -= deltaTime
		}
		if dist <= reach+config.PlayerContactRange && enemy.ContactCooldown <= config.ExpiryEpsilon {
			enemy.ContactCooldown = config.EnemyContactCooldown
			if s.damagePlayer(playerID, id, enemy.ContactDamage) {
				return
			}
		}
	}
}

func (s *MovementSystem) movePlayer(id types.EntityID, pos *component.Position, deltaTime float64) {
	input, ok := s.ecs.Inputs[id]
	if !ok {
		return
	}
	move := geom.V(input.MoveX, input.MoveY).Normalize()
	if move.IsZero() {
		return
	}
	speed := config.PlayerSpeed
	if vel, ok := s.ecs.Velocities[id]; ok {
		speed = vel.Speed
	}
	pos.X = utils.Clamp(pos.X+move.X*speed*deltaTime, 0, config.ScreenWidth)
	pos.Y = utils.Clamp(pos.Y+move.Y*speed*deltaTime, 0, config.ScreenHeight)
}

// damagePlayer возвращает true, если удар оказался смертельным.
func (s *MovementSystem) damagePlayer(playerID, enemyID types.EntityID, damage int) bool {
	health := s.ecs.Healths[playerID]
	if damage <= 0 {
		return false
	}
	health.Value = max(health.Value-damage, 0)
	s.eventDispatcher.Dispatch(event.Event{
		Type: event.PlayerDamaged,
		Data: event.PlayerDamagedData{EnemyID: enemyID, Damage: damage, Remaining: health.Value},
	})
	if health.Value > 0 {
		return false
	}
	s.eventDispatcher.Dispatch(event.Event{Type: event.PlayerDied})
	return true
}

func (s *MovementSystem) colliderRadius(id types.EntityID) float64 {
	if c, ok := s.ecs.Colliders[id]; ok {
		return c.Radius
	}
	return 0
}
