// internal/app/game.go
package app

import (
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"go-magic-survivor/internal/component"
	"go-magic-survivor/internal/config"
	"go-magic-survivor/internal/defs"
	"go-magic-survivor/internal/entity"
	"go-magic-survivor/internal/event"
	"go-magic-survivor/internal/projectile"
	"go-magic-survivor/internal/system"
	"go-magic-survivor/internal/types"
	"go-magic-survivor/internal/utils"
	"go-magic-survivor/pkg/geom"
)

// Options задаёт параметры одного забега. Пустые поля берут значения по умолчанию.
type Options struct {
	Seed    int64
	Spells  defs.SpellLibrary
	Enemies defs.EnemyLibrary
	Loadout []string
}

// Game holds one encounter: the ECS, the projectile manager and the systems
// that drive them.
type Game struct {
	ID                 uuid.UUID
	ECS                *entity.ECS
	EventDispatcher    *event.Dispatcher
	Projectiles        *projectile.Manager
	Spells             defs.SpellLibrary
	CastSystem         *system.CastSystem
	ProjectileSystem   *system.ProjectileSystem
	MovementSystem     *system.MovementSystem
	WaveSystem         *system.WaveSystem
	StateSystem        *system.StateSystem
	PlayerSystem       *system.PlayerSystem
	VisualEffectSystem *system.VisualEffectSystem
	Rng                *utils.PRNGService

	log        *slog.Logger
	tick       uint64
	waveNumber int
	kills      int
}

// NewGame initializes a new encounter with the player in the middle of the screen.
func NewGame(opts Options) (*Game, error) {
	spells := opts.Spells
	if spells == nil {
		var err error
		if spells, err = defs.DefaultSpellLibrary(); err != nil {
			return nil, err
		}
	}
	enemies := opts.Enemies
	if enemies == nil {
		var err error
		if enemies, err = defs.DefaultEnemyLibrary(); err != nil {
			return nil, err
		}
	}
	loadout := opts.Loadout
	if len(loadout) == 0 {
		loadout = config.StartingLoadout
	}

	ecs := entity.NewECS()
	eventDispatcher := event.NewDispatcher()
	rng := utils.NewPRNGService(opts.Seed)
	manager := projectile.NewManager(spells, eventDispatcher)

	g := &Game{
		ID:              uuid.New(),
		ECS:             ecs,
		EventDispatcher: eventDispatcher,
		Projectiles:     manager,
		Spells:          spells,
		Rng:             rng,
	}
	g.log = slog.With("encounter", g.ID.String())
	g.CastSystem = system.NewCastSystem(ecs, manager, eventDispatcher, rng)
	g.ProjectileSystem = system.NewProjectileSystem(ecs, manager, eventDispatcher)
	g.MovementSystem = system.NewMovementSystem(ecs, eventDispatcher)
	g.WaveSystem = system.NewWaveSystem(ecs, enemies, rng, eventDispatcher)
	g.StateSystem = system.NewStateSystem(ecs, g, eventDispatcher)
	g.PlayerSystem = system.NewPlayerSystem(ecs, eventDispatcher)
	g.VisualEffectSystem = system.NewVisualEffectSystem(ecs, eventDispatcher)

	listener := &GameEventListener{game: g}
	eventDispatcher.Subscribe(event.WaveStarted, listener)
	eventDispatcher.Subscribe(event.WaveEnded, listener)
	eventDispatcher.Subscribe(event.EnemyDestroyed, listener)
	eventDispatcher.Subscribe(event.PlayerLeveledUp, listener)
	eventDispatcher.Subscribe(event.PlayerDied, listener)

	if err := g.createPlayerEntity(loadout); err != nil {
		return nil, fmt.Errorf("new game: %w", err)
	}
	return g, nil
}

func (g *Game) createPlayerEntity(loadout []string) error {
	caster, err := system.NewSpellCaster(g.Spells, loadout)
	if err != nil {
		return err
	}
	id := g.ECS.NewEntity()
	g.ECS.PlayerID = id
	g.ECS.Positions[id] = &component.Position{X: config.ScreenWidth / 2, Y: config.ScreenHeight / 2}
	g.ECS.Velocities[id] = &component.Velocity{Speed: config.PlayerSpeed}
	g.ECS.Colliders[id] = &component.Collider{Radius: config.PlayerRadius}
	g.ECS.Healths[id] = &component.Health{Value: config.PlayerHealth, Max: config.PlayerHealth}
	g.ECS.Renderables[id] = &component.Renderable{Color: config.PlayerColor, Radius: config.PlayerRadius}
	g.ECS.Inputs[id] = &component.PlayerInput{}
	g.ECS.Casters[id] = caster
	g.ECS.PlayerState[id] = &component.PlayerStateComponent{
		Level:         1,
		CurrentXP:     0,
		XPToNextLevel: config.CalculateXPForNextLevel(1),
	}
	return nil
}

// Start запускает первую волну.
func (g *Game) Start() {
	g.log.Info("encounter started", "spells", len(g.Spells))
	g.StateSystem.SwitchToWaveState()
}

// StartWave готовит следующую волну. Вызывается StateSystem после передышки.
func (g *Game) StartWave() {
	g.waveNumber++
	g.ECS.Wave = g.WaveSystem.StartWave(g.waveNumber)
	g.EventDispatcher.Dispatch(event.Event{Type: event.WaveStarted, Data: event.WaveData{Number: g.waveNumber}})
}

// ClearProjectiles убирает все живые снаряды.
func (g *Game) ClearProjectiles() {
	g.Projectiles.Clear()
}

// Update продвигает забег на deltaTime секунд. Шаг ограничен config.MaxDeltaTime.
func (g *Game) Update(deltaTime float64) {
	if deltaTime <= 0 {
		return
	}
	if deltaTime > config.MaxDeltaTime {
		deltaTime = config.MaxDeltaTime
	}
	g.tick++
	g.ECS.GameTime += deltaTime

	g.CastSystem.Update(deltaTime)
	g.ProjectileSystem.Update(deltaTime)
	g.MovementSystem.Update(deltaTime)
	g.WaveSystem.Update(deltaTime)
	g.StateSystem.Update(deltaTime)
	g.VisualEffectSystem.Update(deltaTime)
}

// Cast применяет заклинание игрока в сторону точки (x, y).
func (g *Game) Cast(spellID string, x, y float64) error {
	return g.CastSystem.Cast(spellID, geom.V(x, y))
}

// SetMoveIntent задаёт направление движения игрока до следующего вызова.
func (g *Game) SetMoveIntent(x, y float64) {
	if input, ok := g.ECS.Inputs[g.ECS.PlayerID]; ok {
		input.MoveX, input.MoveY = x, y
	}
}

func (g *Game) Phase() component.GamePhase { return g.StateSystem.Current() }
func (g *Game) Over() bool                 { return g.Phase() == component.GameOverPhase }
func (g *Game) WaveNumber() int            { return g.waveNumber }
func (g *Game) Kills() int                 { return g.kills }
func (g *Game) PlayerID() types.EntityID   { return g.ECS.PlayerID }

// GameEventListener ведёт счёт убийств и пишет ход забега в лог.
type GameEventListener struct {
	game *Game
}

func (l *GameEventListener) OnEvent(e event.Event) {
	switch e.Type {
	case event.EnemyDestroyed:
		l.game.kills++
	case event.WaveStarted, event.WaveEnded:
		data, _ := e.Data.(event.WaveData)
		l.game.log.Info("wave", "event", e.Type, "number", data.Number, "kills", l.game.kills)
	case event.PlayerLeveledUp:
		data, _ := e.Data.(event.LevelUpData)
		l.game.log.Info("player leveled up", "level", data.Level)
	case event.PlayerDied:
		l.game.log.Info("player died", "wave", l.game.waveNumber, "kills", l.game.kills, "time", l.game.ECS.GameTime)
	}
}
