// internal/projectile/projectile.go
package projectile

import (
	"image/color"
	"log/slog"

	"go-magic-survivor/internal/config"
	"go-magic-survivor/internal/defs"
	"go-magic-survivor/internal/utils"
	"go-magic-survivor/pkg/geom"
)

// SpawnRequest asks the manager for a new projectile of spell SpellID.
type SpawnRequest struct {
	Owner     Owner
	SpellID   string
	Start     geom.Vec2
	Target    geom.Vec2
	Direction geom.Vec2
}

// Detonation describes one area explosion.
type Detonation struct {
	Center geom.Vec2
	Radius float64
	Damage float64
}

// motion is the per-trajectory half of a projectile.
type motion interface {
	update(p *Projectile, dt float64, enemies []Enemy) []SpawnRequest
	onHit(p *Projectile, hit Enemy, all []Enemy)
}

// hitFilter lets a motion refuse collisions with specific enemies.
type hitFilter interface {
	canHit(e Enemy) bool
}

// Projectile is one simulated shot. It is not safe for concurrent use.
type Projectile struct {
	owner   Owner
	spellID string

	pos      geom.Vec2
	dir      geom.Vec2
	damage   float64
	speed    float64
	rng      float64
	distance float64

	radius float64
	color  color.RGBA
	active bool

	trajectory Trajectory
	motion     motion
	detonation *Detonation
}

// New builds a projectile from a trajectory config. It never fails:
// missing keys take defaults and an unknown type falls back to STRAIGHT.
func New(owner Owner, start, dir geom.Vec2, damage, speed, rng float64, spellID string, cfg defs.TrajectoryConfig) *Projectile {
	trajectory, ok := ParseTrajectory(cfg.Type())
	if !ok {
		slog.Warn("unknown trajectory type, using STRAIGHT", "spell_id", spellID, "type", cfg.Type())
	}

	p := &Projectile{
		owner:      owner,
		spellID:    spellID,
		pos:        start,
		dir:        dir.Normalize(),
		damage:     damage,
		speed:      speed,
		rng:        rng,
		radius:     cfg.Float("radius", config.DefaultProjectileRadius),
		color:      cfg.Color("color", config.DefaultProjectile),
		active:     true,
		trajectory: trajectory,
	}
	p.motion = newMotion(p, cfg)
	return p
}

func newMotion(p *Projectile, cfg defs.TrajectoryConfig) motion {
	switch p.trajectory {
	case Homing:
		return newHoming(cfg)
	case Orbiting:
		return newOrbit(cfg)
	case SineWave:
		return newSine(p, cfg)
	case Boomerang:
		return &boomerangMotion{}
	case Chain:
		return newChain(cfg)
	case Piercing:
		return newPierce(cfg)
	case GroundAOE:
		return newGroundAOE(p, cfg)
	case Forking:
		return newFork(p, cfg)
	case Spiral:
		return newSpiral(p, cfg)
	case GrowingOrb:
		return newGrowingOrb(p, cfg)
	}
	return straightMotion{}
}

// Update advances the projectile by dt seconds. It returns the spawn
// requests produced by a fork, or nil. Inactive projectiles do nothing.
func (p *Projectile) Update(dt float64, enemies []Enemy) []SpawnRequest {
	if !p.active {
		return nil
	}
	return p.motion.update(p, dt, enemies)
}

// OnHitEnemy applies the consequences of striking hit.
func (p *Projectile) OnHitEnemy(hit Enemy, all []Enemy) {
	if !p.active {
		return
	}
	p.motion.onHit(p, hit, all)
}

// CanHit reports whether a collision with e should count. Piercing shots
// skip enemies already pierced and chains skip the enemy struck last.
func (p *Projectile) CanHit(e Enemy) bool {
	if f, ok := p.motion.(hitFilter); ok {
		return f.canHit(e)
	}
	return true
}

// Collides reports whether the projectile takes part in direct collision
// checks. Ground AOE markers deal damage only through their explosion.
func (p *Projectile) Collides() bool {
	return p.active && p.trajectory != GroundAOE
}

// TakeDetonation returns the explosion produced by the last Update, once.
func (p *Projectile) TakeDetonation() (Detonation, bool) {
	if p.detonation == nil {
		return Detonation{}, false
	}
	d := *p.detonation
	p.detonation = nil
	return d, true
}

func (p *Projectile) Position() geom.Vec2       { return p.pos }
func (p *Projectile) Direction() geom.Vec2      { return p.dir }
func (p *Projectile) Radius() float64           { return p.radius }
func (p *Projectile) Color() color.RGBA         { return p.color }
func (p *Projectile) Active() bool              { return p.active }
func (p *Projectile) Damage() float64           { return p.damage }
func (p *Projectile) Speed() float64            { return p.speed }
func (p *Projectile) Range() float64            { return p.rng }
func (p *Projectile) SpellID() string           { return p.spellID }
func (p *Projectile) Trajectory() Trajectory    { return p.trajectory }
func (p *Projectile) Owner() Owner              { return p.owner }
func (p *Projectile) DistanceTraveled() float64 { return p.distance }

// Bounds is the collision box: the square around the current radius.
func (p *Projectile) Bounds() geom.Rect {
	return geom.SquareAround(p.pos, p.radius)
}

// Deactivate marks the projectile for removal on the next manager update.
func (p *Projectile) Deactivate() {
	p.active = false
}

// advance moves along the heading at speed and accumulates distance.
func (p *Projectile) advance(dt float64) {
	step := p.speed * dt
	p.pos = p.pos.Add(p.dir.Scale(step))
	p.distance += step
}

func (p *Projectile) pastRange() bool {
	return reached(p.distance, p.rng)
}

// expireByRange deactivates the projectile once it has covered its range.
func (p *Projectile) expireByRange() {
	if p.pastRange() {
		p.active = false
	}
}

// steer blends the heading toward target by strength in [0, 1] and keeps
// it unit length. Zero strength never turns.
func (p *Projectile) steer(target geom.Vec2, strength float64) {
	s := utils.Clamp(strength, 0, 1)
	if s == 0 {
		return
	}
	to, ok := geom.Direction(p.pos, target)
	if !ok {
		return
	}
	if s == 1 {
		p.dir = to
		return
	}
	blended := p.dir.Scale(1 - s).Add(to.Scale(s))
	if blended.IsZero() {
		p.dir = to
		return
	}
	p.dir = blended.Normalize()
}

func reached(value, limit float64) bool {
	return utils.Reached(value, limit, config.ExpiryEpsilon)
}
