// internal/projectile/chain.go
package projectile

import (
	"math"

	"go-magic-survivor/internal/defs"
	"go-magic-survivor/internal/types"
)

// chainMotion homes on enemies and jumps to the next one after each hit,
// up to max hits.
type chainMotion struct {
	max      int
	radiusSq float64
	strength float64

	count   int
	lastHit types.EntityID
	hasLast bool
}

func newChain(cfg defs.TrajectoryConfig) *chainMotion {
	r := cfg.Float("chain_radius", 150)
	return &chainMotion{
		max:      cfg.Int("max_chains", 3),
		radiusSq: r * r,
		strength: cfg.Float("homing_strength", 0.1),
	}
}

func (m *chainMotion) isLastHit(e Enemy) bool {
	return m.hasLast && e.ID() == m.lastHit
}

func (m *chainMotion) canHit(e Enemy) bool {
	return !m.isLastHit(e)
}

func (m *chainMotion) update(p *Projectile, dt float64, enemies []Enemy) []SpawnRequest {
	if target := nearestEnemy(p.pos, enemies, math.Inf(1), m.isLastHit); target != nil {
		p.steer(target.Hitbox().Center(), m.strength)
	}
	p.advance(dt)
	p.expireByRange()
	return nil
}

func (m *chainMotion) onHit(p *Projectile, hit Enemy, all []Enemy) {
	m.count++
	if hit != nil {
		m.lastHit = hit.ID()
		m.hasLast = true
	}

	if m.count >= m.max {
		p.active = false
		return
	}

	next := nearestEnemy(p.pos, all, m.radiusSq, m.isLastHit)
	if next == nil {
		p.active = false
		return
	}
	if to, ok := directionTo(p, next); ok {
		p.dir = to
	}
	p.distance = 0
}
