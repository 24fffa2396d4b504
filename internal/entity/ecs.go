// internal/entity/ecs.go
package entity

import (
	"slices"

	"go-magic-survivor/internal/component"
	"go-magic-survivor/internal/types"
)

type ECS struct {
	GameTime      float64
	NextID        types.EntityID
	PlayerID      types.EntityID // 0, пока игрок не создан
	Positions     map[types.EntityID]*component.Position
	Velocities    map[types.EntityID]*component.Velocity
	Colliders     map[types.EntityID]*component.Collider
	Healths       map[types.EntityID]*component.Health
	Renderables   map[types.EntityID]*component.Renderable
	Enemies       map[types.EntityID]*component.Enemy
	Casters       map[types.EntityID]*component.SpellCaster
	Inputs        map[types.EntityID]*component.PlayerInput
	DamageFlashes map[types.EntityID]*component.DamageFlash
	AoeEffects    map[types.EntityID]*component.AoeEffect
	PlayerState   map[types.EntityID]*component.PlayerStateComponent
	Wave          *component.Wave
	GameState     *component.GameState
}

func NewECS() *ECS {
	return &ECS{
		NextID:        1,
		Positions:     make(map[types.EntityID]*component.Position),
		Velocities:    make(map[types.EntityID]*component.Velocity),
		Colliders:     make(map[types.EntityID]*component.Collider),
		Healths:       make(map[types.EntityID]*component.Health),
		Renderables:   make(map[types.EntityID]*component.Renderable),
		Enemies:       make(map[types.EntityID]*component.Enemy),
		Casters:       make(map[types.EntityID]*component.SpellCaster),
		Inputs:        make(map[types.EntityID]*component.PlayerInput),
		DamageFlashes: make(map[types.EntityID]*component.DamageFlash),
		AoeEffects:    make(map[types.EntityID]*component.AoeEffect),
		PlayerState:   make(map[types.EntityID]*component.PlayerStateComponent),
		Wave:          nil,
		GameState: &component.GameState{
			Phase: component.WavePhase,
		},
	}
}

func (ecs *ECS) NewEntity() types.EntityID {
	id := ecs.NextID
	ecs.NextID++
	return id
}

// RemoveEntity удаляет все компоненты сущности.
func (ecs *ECS) RemoveEntity(id types.EntityID) {
	delete(ecs.Positions, id)
	delete(ecs.Velocities, id)
	delete(ecs.Colliders, id)
	delete(ecs.Healths, id)
	delete(ecs.Renderables, id)
	delete(ecs.Enemies, id)
	delete(ecs.Casters, id)
	delete(ecs.Inputs, id)
	delete(ecs.DamageFlashes, id)
	delete(ecs.AoeEffects, id)
	delete(ecs.PlayerState, id)
	if ecs.PlayerID == id {
		ecs.PlayerID = 0
	}
}

// EnemyIDs возвращает id врагов по возрастанию, чтобы обход был детерминированным.
func (ecs *ECS) EnemyIDs() []types.EntityID {
	ids := make([]types.EntityID, 0, len(ecs.Enemies))
	for id := range ecs.Enemies {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}

// PlayerPosition возвращает позицию игрока, если он есть.
func (ecs *ECS) PlayerPosition() (*component.Position, bool) {
	if ecs.PlayerID == 0 {
		return nil, false
	}
	pos, ok := ecs.Positions[ecs.PlayerID]
	return pos, ok
}

// PlayerAlive сообщает, жив ли игрок.
func (ecs *ECS) PlayerAlive() bool {
	if ecs.PlayerID == 0 {
		return false
	}
	h, ok := ecs.Healths[ecs.PlayerID]
	return ok && h.Value > 0
}
