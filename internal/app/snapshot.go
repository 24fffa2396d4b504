// internal/app/snapshot.go
package app

import (
	"image/color"
	"slices"

	"go-magic-survivor/internal/types"
)

// Snapshot — неизменяемый снимок кадра для отрисовки и зрителей.
type Snapshot struct {
	EncounterID string           `msgpack:"encounter_id"`
	Tick        uint64           `msgpack:"tick"`
	Time        float64          `msgpack:"time"`
	Phase       string           `msgpack:"phase"`
	Wave        int              `msgpack:"wave"`
	Kills       int              `msgpack:"kills"`
	Player      PlayerView       `msgpack:"player"`
	Enemies     []EnemyView      `msgpack:"enemies"`
	Projectiles []ProjectileView `msgpack:"projectiles"`
	Effects     []EffectView     `msgpack:"effects"`
}

type PlayerView struct {
	X         float64    `msgpack:"x"`
	Y         float64    `msgpack:"y"`
	Radius    float64    `msgpack:"r"`
	Health    int        `msgpack:"hp"`
	MaxHealth int        `msgpack:"max_hp"`
	Level     int        `msgpack:"level"`
	XP        int        `msgpack:"xp"`
	XPToNext  int        `msgpack:"xp_next"`
	Alive     bool       `msgpack:"alive"`
	Slots     []SlotView `msgpack:"slots"`
}

type SlotView struct {
	SpellID   string  `msgpack:"spell"`
	Cooldown  float64 `msgpack:"cd"`
	Remaining float64 `msgpack:"left"`
	Manual    bool    `msgpack:"manual"`
}

type EnemyView struct {
	ID        types.EntityID `msgpack:"id"`
	DefID     string         `msgpack:"def"`
	X         float64        `msgpack:"x"`
	Y         float64        `msgpack:"y"`
	Radius    float64        `msgpack:"r"`
	Health    int            `msgpack:"hp"`
	MaxHealth int            `msgpack:"max_hp"`
	Color     [4]uint8       `msgpack:"color"`
	Flash     bool           `msgpack:"flash"`
}

type ProjectileView struct {
	SpellID    string   `msgpack:"spell"`
	Trajectory string   `msgpack:"kind"`
	X          float64  `msgpack:"x"`
	Y          float64  `msgpack:"y"`
	Radius     float64  `msgpack:"r"`
	Color      [4]uint8 `msgpack:"color"`
	AoeState   string   `msgpack:"aoe,omitempty"`
}

type EffectView struct {
	X      float64  `msgpack:"x"`
	Y      float64  `msgpack:"y"`
	Radius float64  `msgpack:"r"`
	Color  [4]uint8 `msgpack:"color"`
}

func rgba(c color.RGBA) [4]uint8 {
	return [4]uint8{c.R, c.G, c.B, c.A}
}

// Snapshot собирает снимок текущего кадра. Срезы в нём не разделяют память с игрой.
func (g *Game) Snapshot() Snapshot {
	ecs := g.ECS
	snap := Snapshot{
		EncounterID: g.ID.String(),
		Tick:        g.tick,
		Time:        ecs.GameTime,
		Phase:       g.Phase().String(),
		Wave:        g.waveNumber,
		Kills:       g.kills,
	}

	id := ecs.PlayerID
	if pos, ok := ecs.PlayerPosition(); ok {
		snap.Player.X, snap.Player.Y = pos.X, pos.Y
	}
	if c, ok := ecs.Colliders[id]; ok {
		snap.Player.Radius = c.Radius
	}
	if h, ok := ecs.Healths[id]; ok {
		snap.Player.Health, snap.Player.MaxHealth = h.Value, h.Max
	}
	if st, ok := ecs.PlayerState[id]; ok {
		snap.Player.Level, snap.Player.XP, snap.Player.XPToNext = st.Level, st.CurrentXP, st.XPToNextLevel
	}
	snap.Player.Alive = ecs.PlayerAlive()
	if caster, ok := ecs.Casters[id]; ok {
		for _, s := range caster.Slots {
			snap.Player.Slots = append(snap.Player.Slots, SlotView{
				SpellID:   s.SpellID,
				Cooldown:  s.Cooldown,
				Remaining: s.Remaining,
				Manual:    s.Manual,
			})
		}
	}

	for _, eid := range ecs.EnemyIDs() {
		pos, ok := ecs.Positions[eid]
		if !ok {
			continue
		}
		view := EnemyView{ID: eid, DefID: ecs.Enemies[eid].DefID, X: pos.X, Y: pos.Y}
		if c, ok := ecs.Colliders[eid]; ok {
			view.Radius = c.Radius
		}
		if h, ok := ecs.Healths[eid]; ok {
			view.Health, view.MaxHealth = h.Value, h.Max
		}
		if r, ok := ecs.Renderables[eid]; ok {
			view.Color = rgba(r.Color)
		}
		_, view.Flash = ecs.DamageFlashes[eid]
		snap.Enemies = append(snap.Enemies, view)
	}

	for _, p := range g.Projectiles.Projectiles() {
		if !p.Active() {
			continue
		}
		pos := p.Position()
		view := ProjectileView{
			SpellID:    p.SpellID(),
			Trajectory: p.Trajectory().String(),
			X:          pos.X,
			Y:          pos.Y,
			Radius:     p.Radius(),
			Color:      rgba(p.Color()),
		}
		if st, ok := p.AoeState(); ok {
			view.AoeState = st.String()
		}
		snap.Projectiles = append(snap.Projectiles, view)
	}

	effectIDs := make([]types.EntityID, 0, len(ecs.AoeEffects))
	for eid := range ecs.AoeEffects {
		effectIDs = append(effectIDs, eid)
	}
	slices.Sort(effectIDs)
	for _, eid := range effectIDs {
		pos, hasPos := ecs.Positions[eid]
		r, hasRender := ecs.Renderables[eid]
		if !hasPos || !hasRender {
			continue
		}
		snap.Effects = append(snap.Effects, EffectView{X: pos.X, Y: pos.Y, Radius: float64(r.Radius), Color: rgba(r.Color)})
	}
	return snap
}
