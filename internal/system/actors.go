// internal/system/actors.go
package system

import (
	"go-magic-survivor/internal/entity"
	"go-magic-survivor/internal/projectile"
	"go-magic-survivor/internal/types"
	"go-magic-survivor/pkg/geom"
)

// enemyActor показывает сущность врага снарядам.
type enemyActor struct {
	ecs *entity.ECS
	id  types.EntityID
}

// EnemyActor оборачивает врага из ECS в projectile.Enemy.
func EnemyActor(ecs *entity.ECS, id types.EntityID) projectile.Enemy {
	return enemyActor{ecs: ecs, id: id}
}

func (a enemyActor) ID() types.EntityID { return a.id }

func (a enemyActor) Active() bool {
	if _, ok := a.ecs.Enemies[a.id]; !ok {
		return false
	}
	h, ok := a.ecs.Healths[a.id]
	return ok && h.Value > 0
}

func (a enemyActor) Hitbox() geom.Rect {
	return entityHitbox(a.ecs, a.id)
}

func (a enemyActor) TakeDamage(amount float64) {
	ApplyDamage(a.ecs, a.id, amount)
}

// EnemyActors возвращает всех врагов в порядке id.
func EnemyActors(ecs *entity.ECS) []projectile.Enemy {
	ids := ecs.EnemyIDs()
	out := make([]projectile.Enemy, 0, len(ids))
	for _, id := range ids {
		out = append(out, enemyActor{ecs: ecs, id: id})
	}
	return out
}

// playerOwner — игрок как владелец снарядов.
type playerOwner struct {
	ecs *entity.ECS
	id  types.EntityID
}

// PlayerOwner оборачивает сущность игрока в projectile.Owner.
func PlayerOwner(ecs *entity.ECS, id types.EntityID) projectile.Owner {
	return playerOwner{ecs: ecs, id: id}
}

func (o playerOwner) Position() geom.Vec2 {
	if pos, ok := o.ecs.Positions[o.id]; ok {
		return pos.Vec()
	}
	return geom.Vec2{}
}

func (o playerOwner) Hitbox() geom.Rect {
	return entityHitbox(o.ecs, o.id)
}

func (o playerOwner) Alive() bool {
	if _, ok := o.ecs.Positions[o.id]; !ok {
		return false
	}
	h, ok := o.ecs.Healths[o.id]
	return ok && h.Value > 0
}

func entityHitbox(ecs *entity.ECS, id types.EntityID) geom.Rect {
	pos, ok := ecs.Positions[id]
	if !ok {
		return geom.Rect{}
	}
	radius := 0.0
	if c, ok := ecs.Colliders[id]; ok {
		radius = c.Radius
	}
	return geom.SquareAround(pos.Vec(), radius)
}
