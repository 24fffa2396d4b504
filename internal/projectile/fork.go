// internal/projectile/fork.go
package projectile

import (
	"log/slog"
	"strings"

	"go-magic-survivor/internal/config"
	"go-magic-survivor/internal/defs"
	"go-magic-survivor/internal/utils"
	"go-magic-survivor/pkg/geom"
)

// forkMotion flies straight and splits once into count children fanned
// across spread radians.
type forkMotion struct {
	trigger   ForkTrigger
	threshold float64
	count     int
	spread    float64
	child     string

	forked bool
	timer  float64
	signal bool
}

func newFork(p *Projectile, cfg defs.TrajectoryConfig) *forkMotion {
	m := &forkMotion{
		trigger:   ForkTrigger(strings.ToUpper(cfg.String("fork_condition_type", string(ForkOnDistance)))),
		threshold: cfg.Float("fork_condition_value", 150),
		count:     max(cfg.Int("fork_count", 3), 1),
		spread:    utils.DegToRad(cfg.Float("fork_angle_spread", 45)),
		child:     cfg.String("child_spell_id", ""),
	}
	switch m.trigger {
	case ForkOnDistance, ForkOnTimer, ForkOnFirstHit:
	default:
		slog.Warn("unknown fork condition, projectile will not fork",
			"spell_id", p.spellID, "condition", m.trigger)
	}
	return m
}

func (m *forkMotion) update(p *Projectile, dt float64, _ []Enemy) []SpawnRequest {
	p.advance(dt)

	if !m.forked && m.child != "" && m.shouldFork(p, dt) {
		m.forked = true
		p.active = false
		return m.fan(p)
	}

	p.expireByRange()
	return nil
}

func (m *forkMotion) shouldFork(p *Projectile, dt float64) bool {
	switch m.trigger {
	case ForkOnDistance:
		return reached(p.distance, m.threshold)
	case ForkOnTimer:
		m.timer += dt
		return reached(m.timer, m.threshold)
	case ForkOnFirstHit:
		fire := m.signal
		m.signal = false
		return fire
	}
	return false
}

// fan spreads the children evenly across the spread, centered on the
// current heading. A single child keeps the heading.
func (m *forkMotion) fan(p *Projectile) []SpawnRequest {
	base := p.dir.Angle()
	start, step := 0.0, 0.0
	if m.count > 1 {
		start = -m.spread / 2
		step = m.spread / float64(m.count-1)
	}

	reqs := make([]SpawnRequest, 0, m.count)
	for i := range m.count {
		dir := geom.FromAngle(base+start+float64(i)*step, 1)
		reqs = append(reqs, SpawnRequest{
			Owner:     p.owner,
			SpellID:   m.child,
			Start:     p.pos,
			Target:    p.pos.Add(dir.Scale(config.ForkChildAimDistance)),
			Direction: dir,
		})
	}
	return reqs
}

func (m *forkMotion) onHit(p *Projectile, _ Enemy, _ []Enemy) {
	if m.trigger == ForkOnFirstHit && !m.forked && m.child != "" {
		m.signal = true
		return
	}
	p.active = false
}
