// internal/projectile/actor.go
package projectile

//go:generate go tool mockgen -destination=./mocks/actor_mock.go -package=mocks . Owner,Enemy

import (
	"go-magic-survivor/internal/types"
	"go-magic-survivor/pkg/geom"
)

// Enemy is a hittable target. The collection passed to the manager is
// borrowed for the duration of one call.
type Enemy interface {
	ID() types.EntityID
	Active() bool
	Hitbox() geom.Rect
	TakeDamage(amount float64)
}

// Owner is the caster a projectile belongs to. Projectiles hold it without
// owning it and check Alive before using its position.
type Owner interface {
	Position() geom.Vec2
	Hitbox() geom.Rect
	Alive() bool
}

func ownerGone(o Owner) bool {
	return o == nil || !o.Alive()
}

// nearestEnemy returns the active enemy whose hitbox center is closest to
// from, skipping those rejected by skip. The first enemy at the minimum
// distance wins. Only candidates strictly closer than maxDistSq count.
func nearestEnemy(from geom.Vec2, enemies []Enemy, maxDistSq float64, skip func(Enemy) bool) Enemy {
	var best Enemy
	bestSq := maxDistSq
	for _, e := range enemies {
		if e == nil || !e.Active() {
			continue
		}
		if skip != nil && skip(e) {
			continue
		}
		d := e.Hitbox().Center().DistSq(from)
		if d < bestSq {
			bestSq = d
			best = e
		}
	}
	return best
}

func directionTo(p *Projectile, e Enemy) (geom.Vec2, bool) {
	return geom.Direction(p.pos, e.Hitbox().Center())
}
