// internal/projectile/linear.go
package projectile

import (
	"math"

	"go-magic-survivor/internal/defs"
	"go-magic-survivor/internal/types"
)

// straightMotion flies along the heading until range runs out.
type straightMotion struct{}

func (straightMotion) update(p *Projectile, dt float64, _ []Enemy) []SpawnRequest {
	p.advance(dt)
	p.expireByRange()
	return nil
}

func (straightMotion) onHit(p *Projectile, _ Enemy, _ []Enemy) {
	p.active = false
}

// homingMotion turns toward the nearest enemy before every step.
type homingMotion struct {
	straightMotion
	strength float64
}

func newHoming(cfg defs.TrajectoryConfig) *homingMotion {
	return &homingMotion{strength: cfg.Float("homing_strength", 0.05)}
}

func (m *homingMotion) update(p *Projectile, dt float64, enemies []Enemy) []SpawnRequest {
	if target := nearestEnemy(p.pos, enemies, math.Inf(1), nil); target != nil {
		p.steer(target.Hitbox().Center(), m.strength)
	}
	return m.straightMotion.update(p, dt, enemies)
}

// pierceMotion flies straight through up to limit distinct enemies.
type pierceMotion struct {
	straightMotion
	limit int
	hits  int
	seen  map[types.EntityID]struct{}
}

func newPierce(cfg defs.TrajectoryConfig) *pierceMotion {
	return &pierceMotion{
		limit: cfg.Int("pierce_count", 3),
		seen:  make(map[types.EntityID]struct{}),
	}
}

func (m *pierceMotion) onHit(p *Projectile, hit Enemy, _ []Enemy) {
	if hit == nil {
		return
	}
	id := hit.ID()
	if _, dup := m.seen[id]; dup {
		return
	}
	m.seen[id] = struct{}{}
	m.hits++
	if m.hits >= m.limit {
		p.active = false
	}
}

func (m *pierceMotion) canHit(e Enemy) bool {
	_, dup := m.seen[e.ID()]
	return !dup
}

// growingOrbMotion flies straight while its radius swells.
type growingOrbMotion struct {
	straightMotion
	max            float64
	rate           float64
	growthDuration float64
	timer          float64
}

func newGrowingOrb(p *Projectile, cfg defs.TrajectoryConfig) *growingOrbMotion {
	p.radius = cfg.Float("initial_radius", 5)
	return &growingOrbMotion{
		max:            cfg.Float("max_radius", 30),
		rate:           cfg.Float("growth_rate", 10),
		growthDuration: cfg.Float("growth_duration", math.Inf(1)),
	}
}

func (m *growingOrbMotion) update(p *Projectile, dt float64, _ []Enemy) []SpawnRequest {
	p.advance(dt)

	m.timer += dt
	if p.radius < m.max && m.timer < m.growthDuration {
		p.radius = math.Min(p.radius+m.rate*dt, m.max)
	}

	p.expireByRange()
	return nil
}
