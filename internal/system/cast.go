// internal/system/cast.go
package system

import (
	"errors"
	"fmt"
	"log/slog"
	"math"

	"go-magic-survivor/internal/component"
	"go-magic-survivor/internal/config"
	"go-magic-survivor/internal/defs"
	"go-magic-survivor/internal/entity"
	"go-magic-survivor/internal/event"
	"go-magic-survivor/internal/projectile"
	"go-magic-survivor/internal/types"
	"go-magic-survivor/internal/utils"
	"go-magic-survivor/pkg/geom"
)

var (
	ErrSpellNotEquipped = errors.New("spell not equipped")
	ErrSpellOnCooldown  = errors.New("spell on cooldown")
	ErrPlayerDead       = errors.New("player is dead")
)

// NewSpellCaster собирает набор слотов из библиотеки заклинаний.
// Стартовое заклинание кастуется вручную, остальные автоматически.
func NewSpellCaster(spells defs.SpellLibrary, ids []string) (*component.SpellCaster, error) {
	caster := &component.SpellCaster{Slots: make([]component.SpellSlot, 0, len(ids))}
	for _, id := range ids {
		def, err := spells.Get(id)
		if err != nil {
			return nil, fmt.Errorf("equip: %w", err)
		}
		caster.Slots = append(caster.Slots, component.SpellSlot{
			SpellID:  id,
			Cooldown: def.Cooldown,
			Manual:   id == config.DefaultStartingSpell,
		})
	}
	return caster, nil
}

// CastSystem перезаряжает способности игрока и кастует автоматические.
type CastSystem struct {
	ecs             *entity.ECS
	manager         *projectile.Manager
	eventDispatcher *event.Dispatcher
	prng            *utils.PRNGService
}

func NewCastSystem(ecs *entity.ECS, manager *projectile.Manager, eventDispatcher *event.Dispatcher, prng *utils.PRNGService) *CastSystem {
	return &CastSystem{
		ecs:             ecs,
		manager:         manager,
		eventDispatcher: eventDispatcher,
		prng:            prng,
	}
}

func (s *CastSystem) Update(deltaTime float64) {
	id := s.ecs.PlayerID
	caster, ok := s.ecs.Casters[id]
	if !ok || !s.ecs.PlayerAlive() {
		return
	}

	for i := range caster.Slots {
		slot := &caster.Slots[i]
		if slot.Remaining > 0 {
			slot.Remaining -= deltaTime
			if slot.Remaining <= config.ExpiryEpsilon {
				slot.Remaining = 0
			}
		}
		if slot.Manual || !slot.Ready() {
			continue
		}
		if err := s.cast(id, slot, s.autoTarget(id)); err != nil {
			slog.Warn("auto-cast failed", "spell", slot.SpellID, "error", err)
			slot.Remaining = slot.Cooldown
		}
	}
}

// Cast применяет заклинание игрока в сторону target.
func (s *CastSystem) Cast(spellID string, target geom.Vec2) error {
	id := s.ecs.PlayerID
	if !s.ecs.PlayerAlive() {
		return ErrPlayerDead
	}
	caster, ok := s.ecs.Casters[id]
	if !ok {
		return fmt.Errorf("%q: %w", spellID, ErrSpellNotEquipped)
	}
	slot, ok := caster.Slot(spellID)
	if !ok {
		return fmt.Errorf("%q: %w", spellID, ErrSpellNotEquipped)
	}
	if !slot.Ready() {
		return fmt.Errorf("%q: %w", spellID, ErrSpellOnCooldown)
	}
	return s.cast(id, slot, target)
}

func (s *CastSystem) cast(casterID types.EntityID, slot *component.SpellSlot, target geom.Vec2) error {
	pos, ok := s.ecs.Positions[casterID]
	if !ok {
		return ErrPlayerDead
	}
	p, err := s.manager.SpawnSpell(PlayerOwner(s.ecs, casterID), slot.SpellID, pos.Vec(), target)
	if err != nil {
		return err
	}
	s.manager.Add(p)
	slot.Remaining = slot.Cooldown
	s.eventDispatcher.Dispatch(event.Event{
		Type: event.SpellCast,
		Data: event.SpellCastData{SpellID: slot.SpellID, X: target.X, Y: target.Y},
	})
	return nil
}

// autoTarget — ближайший живой враг, а без врагов случайная точка вокруг игрока.
func (s *CastSystem) autoTarget(casterID types.EntityID) geom.Vec2 {
	var from geom.Vec2
	if pos, ok := s.ecs.Positions[casterID]; ok {
		from = pos.Vec()
	}

	var (
		best   geom.Vec2
		found  bool
		bestSq = math.Inf(1)
	)
	for _, enemy := range EnemyActors(s.ecs) {
		if !enemy.Active() {
			continue
		}
		c := enemy.Hitbox().Center()
		if d := from.DistSq(c); d < bestSq {
			best, bestSq, found = c, d, true
		}
	}
	if found {
		return best
	}

	angle := s.prng.Float64() * 2 * math.Pi
	dist := config.AutoCastMinDistance + s.prng.Float64()*(config.AutoCastMaxDistance-config.AutoCastMinDistance)
	return from.Add(geom.FromAngle(angle, dist))
}
