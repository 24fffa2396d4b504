// internal/projectile/manager.go
package projectile

import (
	"fmt"
	"log/slog"
	"slices"

	"go-magic-survivor/internal/defs"
	"go-magic-survivor/internal/event"
	"go-magic-survivor/pkg/geom"
)

// Hit is one projectile/enemy collision found by CheckEnemyCollisions.
type Hit struct {
	Enemy      Enemy
	Projectile *Projectile
	Damage     float64
}

// Manager owns the live projectiles of one encounter.
type Manager struct {
	spells          defs.SpellLibrary
	eventDispatcher *event.Dispatcher
	projectiles     []*Projectile
}

// NewManager creates a manager that resolves child spells against spells.
// The dispatcher may be nil.
func NewManager(spells defs.SpellLibrary, eventDispatcher *event.Dispatcher) *Manager {
	return &Manager{
		spells:          spells,
		eventDispatcher: eventDispatcher,
	}
}

// Spawn builds a projectile without inserting it. GROUND_AOE configs get
// the cast target injected as raw_target_x/raw_target_y on a copy.
func (m *Manager) Spawn(owner Owner, start, target, dir geom.Vec2, damage, speed, rng float64, spellID string, cfg defs.TrajectoryConfig) *Projectile {
	if t, _ := ParseTrajectory(cfg.Type()); t == GroundAOE {
		cfg = cfg.Clone()
		cfg["raw_target_x"] = target.X
		cfg["raw_target_y"] = target.Y
	}
	return New(owner, start, dir, damage, speed, rng, spellID, cfg)
}

// SpawnSpell builds a projectile for a library spell aimed from start at target.
// A zero-length aim falls back to straight up.
func (m *Manager) SpawnSpell(owner Owner, spellID string, start, target geom.Vec2) (*Projectile, error) {
	spell, err := m.spells.Get(spellID)
	if err != nil {
		return nil, fmt.Errorf("spawn: %w", err)
	}
	dir, ok := geom.Direction(start, target)
	if !ok {
		dir = geom.V(0, -1)
	}
	return m.Spawn(owner, start, target, dir, spell.Damage, spell.Speed, spell.Range, spellID, spell.TrajectoryProperties), nil
}

// Add inserts a projectile into the live set.
func (m *Manager) Add(p *Projectile) {
	if p == nil {
		return
	}
	m.projectiles = append(m.projectiles, p)
}

// Update advances every live projectile by dt. Children requested during
// the pass are staged: inactive projectiles are removed first, then the
// children are added, so they first move and collide on the next call.
func (m *Manager) Update(dt float64, enemies []Enemy) {
	var staged []*Projectile

	for _, p := range slices.Clone(m.projectiles) {
		if !p.Active() {
			continue
		}
		reqs := p.Update(dt, enemies)

		if d, ok := p.TakeDetonation(); ok {
			m.eventDispatcher.Dispatch(event.Event{Type: event.AoeDetonated, Data: event.AoeDetonatedData{
				SpellID: p.SpellID(),
				X:       d.Center.X,
				Y:       d.Center.Y,
				Radius:  d.Radius,
				Damage:  d.Damage,
			}})
		}

		if len(reqs) == 0 {
			continue
		}
		spawned := 0
		for _, req := range reqs {
			child, err := m.spawnChild(req)
			if err != nil {
				slog.Warn("child spell not found, skipping", "spell_id", req.SpellID, "parent", p.SpellID(), "err", err)
				continue
			}
			staged = append(staged, child)
			spawned++
		}
		m.eventDispatcher.Dispatch(event.Event{Type: event.ProjectileForked, Data: event.ProjectileForkedData{
			SpellID:  p.SpellID(),
			Children: spawned,
			X:        p.pos.X,
			Y:        p.pos.Y,
		}})
	}

	m.projectiles = slices.DeleteFunc(m.projectiles, func(p *Projectile) bool {
		if p.Active() {
			return false
		}
		m.eventDispatcher.Dispatch(event.Event{Type: event.ProjectileExpired, Data: p.SpellID()})
		return true
	})
	m.projectiles = append(m.projectiles, staged...)
}

func (m *Manager) spawnChild(req SpawnRequest) (*Projectile, error) {
	spell, err := m.spells.Get(req.SpellID)
	if err != nil {
		return nil, err
	}
	dir, ok := geom.Direction(req.Start, req.Target)
	if !ok {
		dir = req.Direction
	}
	return m.Spawn(req.Owner, req.Start, req.Target, dir, spell.Damage, spell.Speed, spell.Range, req.SpellID, spell.TrajectoryProperties), nil
}

// CheckEnemyCollisions tests every active projectile against every enemy
// and reports the overlaps. Each hit is passed to OnHitEnemy right away, and
// a projectile that goes inactive is not tested further. Enemy health and
// the live set are left untouched.
func (m *Manager) CheckEnemyCollisions(enemies []Enemy) []Hit {
	var hits []Hit
	for _, p := range m.projectiles {
		if !p.Collides() {
			continue
		}
		box := p.Bounds()
		for _, e := range enemies {
			if e == nil || !e.Active() || !p.CanHit(e) {
				continue
			}
			if !box.Overlaps(e.Hitbox()) {
				continue
			}
			hits = append(hits, Hit{Enemy: e, Projectile: p, Damage: p.Damage()})
			p.OnHitEnemy(e, enemies)
			if !p.Active() {
				break
			}
		}
	}
	return hits
}

// Projectiles returns a copy of the live set, inactive members included
// until the next Update purges them.
func (m *Manager) Projectiles() []*Projectile {
	return slices.Clone(m.projectiles)
}

// Len is the size of the live set.
func (m *Manager) Len() int {
	return len(m.projectiles)
}

// Clear drops every projectile, e.g. when an encounter ends.
func (m *Manager) Clear() {
	m.projectiles = nil
}

// Spells returns the library used to resolve spells.
func (m *Manager) Spells() defs.SpellLibrary {
	return m.spells
}
