// internal/projectile/orbital.go
package projectile

import (
	"go-magic-survivor/internal/defs"
	"go-magic-survivor/internal/utils"
	"go-magic-survivor/pkg/geom"
)

// orbitMotion circles the owner for a fixed lifetime. Speed, range and
// the initial heading play no part.
type orbitMotion struct {
	straightMotion
	radius       float64
	angularSpeed float64 // рад/с
	duration     float64
	angle        float64
	lifetime     float64
}

func newOrbit(cfg defs.TrajectoryConfig) *orbitMotion {
	return &orbitMotion{
		radius:       cfg.Float("orbit_radius", 75),
		angularSpeed: cfg.Float("angular_speed", 2),
		duration:     cfg.Float("duration", 10),
		angle:        cfg.Float("initial_angle", 0),
	}
}

func (m *orbitMotion) update(p *Projectile, dt float64, _ []Enemy) []SpawnRequest {
	if ownerGone(p.owner) {
		p.active = false
		return nil
	}

	m.lifetime += dt
	if reached(m.lifetime, m.duration) {
		p.active = false
		return nil
	}

	m.angle += m.angularSpeed * dt
	p.pos = p.owner.Position().Add(geom.FromAngle(m.angle, m.radius))
	return nil
}

// spiralMotion winds around a center that drifts along the launch heading.
type spiralMotion struct {
	straightMotion
	expansionSpeed float64
	rotationSpeed  float64 // рад/с
	travelSpeed    float64
	duration       float64

	center   geom.Vec2
	heading  geom.Vec2
	radius   float64
	angle    float64
	lifetime float64
}

func newSpiral(p *Projectile, cfg defs.TrajectoryConfig) *spiralMotion {
	return &spiralMotion{
		expansionSpeed: cfg.Float("expansion_speed", 40),
		rotationSpeed:  utils.DegToRad(cfg.Float("rotation_speed", 720)),
		travelSpeed:    cfg.Float("base_travel_speed", 150),
		duration:       cfg.Float("duration", 1.5),
		center:         p.pos,
		heading:        p.dir,
		radius:         cfg.Float("initial_radius", 5),
	}
}

func (m *spiralMotion) update(p *Projectile, dt float64, _ []Enemy) []SpawnRequest {
	m.lifetime += dt
	if reached(m.lifetime, m.duration) {
		p.active = false
		return nil
	}

	m.center = m.center.Add(m.heading.Scale(m.travelSpeed * dt))
	m.radius += m.expansionSpeed * dt
	m.angle += m.rotationSpeed * dt

	p.pos = m.center.Add(geom.FromAngle(m.angle, m.radius))
	return nil
}
