// internal/projectile/path.go
package projectile

import (
	"math"

	"go-magic-survivor/internal/defs"
	"go-magic-survivor/pkg/geom"
)

// sineMotion weaves across a straight base path.
type sineMotion struct {
	straightMotion
	amplitude float64
	frequency float64
	phase     float64
	base      geom.Vec2
	heading   geom.Vec2
}

func newSine(p *Projectile, cfg defs.TrajectoryConfig) *sineMotion {
	return &sineMotion{
		amplitude: cfg.Float("amplitude", 30),
		frequency: cfg.Float("frequency", 5),
		base:      p.pos,
		heading:   p.dir,
	}
}

func (m *sineMotion) update(p *Projectile, dt float64, _ []Enemy) []SpawnRequest {
	step := p.speed * dt
	m.base = m.base.Add(m.heading.Scale(step))
	p.distance += step

	// Фаза привязана к пройденному пути, а не ко времени.
	m.phase += m.frequency * step * 0.1
	p.pos = m.base.Add(m.heading.Perp().Scale(m.amplitude * math.Sin(m.phase)))

	p.expireByRange()
	return nil
}

// boomerangMotion flies out to range, turns around and comes back to the owner.
type boomerangMotion struct {
	straightMotion
	returning bool
}

func (m *boomerangMotion) update(p *Projectile, dt float64, _ []Enemy) []SpawnRequest {
	if m.returning && ownerGone(p.owner) {
		p.active = false
		return nil
	}

	p.advance(dt)

	if !m.returning {
		if p.pastRange() {
			m.returning = true
			p.dir = p.dir.Neg()
			p.distance = 0
		}
		return nil
	}

	box := p.Bounds()
	if box.Overlaps(p.owner.Hitbox().Inflate(box.W, box.H)) {
		p.active = false
		return nil
	}
	if reached(p.distance, p.rng*1.5) {
		p.active = false
	}
	return nil
}
