// internal/projectile/ground_aoe.go
package projectile

import (
	"image/color"

	"go-magic-survivor/internal/config"
	"go-magic-survivor/internal/defs"
	"go-magic-survivor/pkg/geom"
)

// arrivedRadius is the footprint of a marker that landed and waits to blow.
const arrivedRadius = 0.5

// groundAOEMotion sends a marker to the cast point, waits, then explodes once.
type groundAOEMotion struct {
	state AoeState

	target      geom.Vec2
	travelSpeed float64
	aoeRadius   float64
	aoeDamage   float64
	aoeDuration float64
	delay       float64
	visualColor color.RGBA

	arrivalTimer   float64
	explosionTimer float64
	damageApplied  bool
}

func newGroundAOE(p *Projectile, cfg defs.TrajectoryConfig) *groundAOEMotion {
	fallback := p.pos.Add(p.dir.Scale(config.AoeDefaultTargetReach))
	m := &groundAOEMotion{
		target: geom.V(
			cfg.Float("raw_target_x", fallback.X),
			cfg.Float("raw_target_y", fallback.Y),
		),
		travelSpeed: cfg.Float("travel_speed", 500),
		aoeRadius:   cfg.Float("aoe_radius", 75),
		aoeDamage:   cfg.Float("aoe_damage", 30),
		aoeDuration: cfg.Float("aoe_duration", 0.2),
		delay:       cfg.Float("delay_after_arrival", 0.3),
		visualColor: cfg.Color("aoe_visual_color", config.DefaultAoeColor),
	}

	p.radius = cfg.Float("marker_radius", 6)
	p.color = cfg.Color("marker_color", config.DefaultMarkerColor)

	if dir, ok := geom.Direction(p.pos, m.target); ok {
		p.dir = dir
	} else {
		m.land(p)
	}
	return m
}

// land puts the marker on the target and starts the arrival delay.
func (m *groundAOEMotion) land(p *Projectile) {
	p.pos = m.target
	p.radius = arrivedRadius
	m.state = AoeArrived
	m.arrivalTimer = 0
}

func (m *groundAOEMotion) update(p *Projectile, dt float64, enemies []Enemy) []SpawnRequest {
	switch m.state {
	case AoeTraveling:
		step := m.travelSpeed * dt
		p.pos = p.pos.Add(p.dir.Scale(step))
		// Прибытие по длине шага кадра: при низком FPS маркер может
		// перелететь цель, после чего прищёлкивается к ней.
		if p.pos.Dist(m.target) < step {
			m.land(p)
		}

	case AoeArrived:
		m.arrivalTimer += dt
		if reached(m.arrivalTimer, m.delay) {
			m.explode(p, enemies)
		}

	case AoeExploding:
		m.explosionTimer += dt
		if reached(m.explosionTimer, m.aoeDuration) {
			p.active = false
		}
	}
	return nil
}

// explode switches to the exploding state and damages every active enemy
// within the radius. It runs at most once per projectile.
func (m *groundAOEMotion) explode(p *Projectile, enemies []Enemy) {
	m.state = AoeExploding
	m.explosionTimer = 0
	p.radius = m.aoeRadius
	p.color = m.visualColor

	if m.damageApplied {
		return
	}
	m.damageApplied = true

	rSq := m.aoeRadius * m.aoeRadius
	for _, e := range enemies {
		if e == nil || !e.Active() {
			continue
		}
		if e.Hitbox().Center().DistSq(p.pos) <= rSq {
			e.TakeDamage(m.aoeDamage)
		}
	}
	p.detonation = &Detonation{Center: p.pos, Radius: m.aoeRadius, Damage: m.aoeDamage}
}

func (m *groundAOEMotion) onHit(*Projectile, Enemy, []Enemy) {}

func (m *groundAOEMotion) canHit(Enemy) bool {
	return false
}

// AoeState returns the phase of a GROUND_AOE projectile; ok is false for other kinds.
func (p *Projectile) AoeState() (state AoeState, ok bool) {
	m, ok := p.motion.(*groundAOEMotion)
	if !ok {
		return 0, false
	}
	return m.state, true
}
