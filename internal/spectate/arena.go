package spectate

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"time"

	"go-magic-survivor/internal/app"
	"go-magic-survivor/internal/system"
)

const (
	DefaultTickHz       = 60
	DefaultPublishEvery = 2
)

// Publisher receives every published frame of a running arena.
type Publisher interface {
	Publish(snap app.Snapshot) error
}

// ArenaConfig configures a headless encounter loop.
type ArenaConfig struct {
	Options      app.Options
	TickHz       int
	PublishEvery int
	// Restart starts a new encounter with the next seed after game over
	// instead of stopping the loop.
	Restart bool
}

// Arena runs encounters on a fixed step without a window. The manual spell
// is aimed at the nearest enemy so the run does not rely on input.
type Arena struct {
	cfg  ArenaConfig
	pub  Publisher
	game *app.Game
	runs int
	step float64
	tick uint64
}

func NewArena(cfg ArenaConfig, pub Publisher) (*Arena, error) {
	if cfg.TickHz <= 0 {
		cfg.TickHz = DefaultTickHz
	}
	if cfg.PublishEvery <= 0 {
		cfg.PublishEvery = DefaultPublishEvery
	}
	a := &Arena{cfg: cfg, pub: pub, step: 1 / float64(cfg.TickHz)}
	if err := a.newEncounter(); err != nil {
		return nil, err
	}
	return a, nil
}

func (a *Arena) newEncounter() error {
	opts := a.cfg.Options
	opts.Seed += int64(a.runs)
	g, err := app.NewGame(opts)
	if err != nil {
		return fmt.Errorf("arena: %w", err)
	}
	a.runs++
	a.game = g
	g.Start()
	slog.Info("encounter started", "encounter", g.ID, "seed", opts.Seed, "run", a.runs)
	return nil
}

// Game returns the encounter currently being simulated.
func (a *Arena) Game() *app.Game { return a.game }

// Runs returns how many encounters have been started.
func (a *Arena) Runs() int { return a.runs }

// Step advances the arena by one fixed tick. It reports true once the
// current encounter is over and no restart is configured.
func (a *Arena) Step() (bool, error) {
	a.autopilot()
	a.game.Update(a.step)
	a.tick++

	over := a.game.Over()
	if a.pub != nil && (over || a.tick%uint64(a.cfg.PublishEvery) == 0) {
		if err := a.pub.Publish(a.game.Snapshot()); err != nil {
			return false, err
		}
	}
	if !over {
		return false, nil
	}

	slog.Info("encounter finished",
		"encounter", a.game.ID,
		"wave", a.game.WaveNumber(),
		"kills", a.game.Kills(),
		"time", a.game.ECS.GameTime)
	if !a.cfg.Restart {
		return true, nil
	}
	return false, a.newEncounter()
}

// Run steps the arena on a ticker until ctx is cancelled or the encounter ends.
func (a *Arena) Run(ctx context.Context) error {
	ticker := time.NewTicker(time.Second / time.Duration(a.cfg.TickHz))
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			done, err := a.Step()
			if err != nil {
				return err
			}
			if done {
				return nil
			}
		}
	}
}

func (a *Arena) autopilot() {
	ecs := a.game.ECS
	player, ok := ecs.PlayerPosition()
	if !ok || !ecs.PlayerAlive() {
		return
	}
	caster, ok := ecs.Casters[ecs.PlayerID]
	if !ok {
		return
	}

	var manual string
	for _, s := range caster.Slots {
		if s.Manual && s.Ready() {
			manual = s.SpellID
			break
		}
	}
	if manual == "" {
		return
	}

	best := math.Inf(1)
	var tx, ty float64
	for _, id := range ecs.EnemyIDs() {
		pos, ok := ecs.Positions[id]
		if !ok {
			continue
		}
		if d := math.Hypot(pos.X-player.X, pos.Y-player.Y); d < best {
			best, tx, ty = d, pos.X, pos.Y
		}
	}
	if math.IsInf(best, 1) {
		return
	}
	if err := a.game.Cast(manual, tx, ty); err != nil && !errors.Is(err, system.ErrSpellOnCooldown) {
		slog.Warn("autopilot cast failed", "spell", manual, "err", err)
	}
}
