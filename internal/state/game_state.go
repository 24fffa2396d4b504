// internal/state/game_state.go
package state

import (
	"errors"
	"log/slog"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"golang.org/x/image/font/basicfont"

	"go-magic-survivor/internal/app"
	"go-magic-survivor/internal/config"
	"go-magic-survivor/internal/system"
	"go-magic-survivor/internal/ui"
	"go-magic-survivor/pkg/render"
)

// Клавиши слотов заклинаний по порядку.
var slotKeys = []ebiten.Key{
	ebiten.Key1, ebiten.Key2, ebiten.Key3, ebiten.Key4, ebiten.Key5,
	ebiten.Key6, ebiten.Key7, ebiten.Key8, ebiten.Key9,
}

// GameState — состояние игры
type GameState struct {
	sm       *StateMachine
	opts     app.Options
	game     *app.Game
	renderer *render.ArenaRenderer

	healthIndicator *ui.PlayerHealthIndicator
	levelIndicator  *ui.PlayerLevelIndicator
	waveIndicator   *ui.WaveIndicator
	spellBar        *ui.SpellBar

	snapshot app.Snapshot
}

func NewGameState(sm *StateMachine, opts app.Options) (*GameState, error) {
	gameLogic, err := app.NewGame(opts)
	if err != nil {
		return nil, err
	}

	arenaColors := &render.ArenaColors{
		BackgroundColor:  config.BackgroundColor,
		PlayerColor:      config.PlayerColor,
		DamageFlashColor: config.DamageFlashColor,
		StrokeColor:      config.SpellSlotStroke,
		HealthBarColor:   config.HealthBarFill,
		HealthBarBack:    config.HealthBarBackground,
		StrokeWidth:      config.StrokeWidth,
	}

	face := basicfont.Face7x13
	margin := float32(config.HUDMargin)
	health := ui.NewPlayerHealthIndicator(margin, margin, face)

	gs := &GameState{
		sm:              sm,
		opts:            opts,
		game:            gameLogic,
		renderer:        render.NewArenaRenderer(arenaColors),
		healthIndicator: health,
		levelIndicator:  ui.NewPlayerLevelIndicator(margin, margin+health.GetHeight()+margin, face),
		waveIndicator:   ui.NewWaveIndicator(config.ScreenWidth-margin-160, margin, face),
		spellBar:        ui.NewSpellBar(margin, config.ScreenHeight-margin-config.SpellSlotSize, face),
	}
	return gs, nil
}

func (g *GameState) Enter() {
	g.game.Start()
	g.snapshot = g.game.Snapshot()
}

func (g *GameState) Update(deltaTime float64) {
	if inpututil.IsKeyJustPressed(ebiten.KeyP) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyF9) {
		g.sm.SetState(NewPauseState(g.sm, g))
		return
	}

	g.handleMovement()
	g.handleCasts()

	g.game.Update(deltaTime)
	g.snapshot = g.game.Snapshot()

	if g.game.Over() {
		g.sm.SetState(NewMenuState(g.sm, g.opts, &RunResult{
			Wave:  g.snapshot.Wave,
			Kills: g.snapshot.Kills,
			Time:  g.snapshot.Time,
		}))
	}
}

func (g *GameState) handleMovement() {
	var dx, dy float64
	if ebiten.IsKeyPressed(ebiten.KeyA) || ebiten.IsKeyPressed(ebiten.KeyArrowLeft) {
		dx--
	}
	if ebiten.IsKeyPressed(ebiten.KeyD) || ebiten.IsKeyPressed(ebiten.KeyArrowRight) {
		dx++
	}
	if ebiten.IsKeyPressed(ebiten.KeyW) || ebiten.IsKeyPressed(ebiten.KeyArrowUp) {
		dy--
	}
	if ebiten.IsKeyPressed(ebiten.KeyS) || ebiten.IsKeyPressed(ebiten.KeyArrowDown) {
		dy++
	}
	g.game.SetMoveIntent(dx, dy)
}

func (g *GameState) handleCasts() {
	slots := g.snapshot.Player.Slots
	cx, cy := ebiten.CursorPosition()

	for i, key := range slotKeys {
		if i >= len(slots) {
			break
		}
		if inpututil.IsKeyJustPressed(key) {
			g.cast(slots[i].SpellID, cx, cy)
		}
	}

	if !inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return
	}
	// Клик по панели заклинаний не стреляет
	if _, onBar := g.spellBar.SlotAt(float32(cx), float32(cy), len(slots)); onBar {
		return
	}
	for _, s := range slots {
		if s.Manual {
			g.cast(s.SpellID, cx, cy)
			return
		}
	}
}

func (g *GameState) cast(spellID string, x, y int) {
	err := g.game.Cast(spellID, float64(x), float64(y))
	switch {
	case err == nil, errors.Is(err, system.ErrSpellOnCooldown), errors.Is(err, system.ErrPlayerDead):
	default:
		slog.Warn("cast failed", "spell", spellID, "err", err)
	}
}

func (g *GameState) Draw(screen *ebiten.Image) {
	snap := &g.snapshot
	g.renderer.Draw(screen, snap)

	p := snap.Player
	g.healthIndicator.Draw(screen, p.Health, p.MaxHealth)
	g.levelIndicator.Draw(screen, p.Level, p.XP, p.XPToNext)
	g.waveIndicator.Draw(screen, snap.Wave, snap.Phase)
	g.spellBar.Draw(screen, p.Slots)
}

func (g *GameState) Exit() {
	// Ничего не делаем при выходе
}
