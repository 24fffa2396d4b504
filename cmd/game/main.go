// cmd/game/main.go
package main

import (
	"log/slog"
	"net/http"
	_ "net/http/pprof"
	"os"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"go-magic-survivor/internal/app"
	"go-magic-survivor/internal/config"
	"go-magic-survivor/internal/defs"
	"go-magic-survivor/internal/state"
	"go-magic-survivor/internal/utils"
)

type AppGame struct {
	stateMachine   *state.StateMachine
	lastUpdateTime time.Time
}

func (a *AppGame) Update() error {
	now := time.Now()
	deltaTime := now.Sub(a.lastUpdateTime).Seconds()
	if deltaTime > config.MaxDeltaTime {
		deltaTime = config.MaxDeltaTime
	}
	a.lastUpdateTime = now
	a.stateMachine.Update(deltaTime)
	return nil
}

func (a *AppGame) Draw(screen *ebiten.Image) {
	a.stateMachine.Draw(screen)
}

func (a *AppGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.ScreenWidth, config.ScreenHeight
}

func main() {
	if addr := os.Getenv("PPROF_ADDR"); addr != "" {
		go func() {
			slog.Info("pprof listening", "addr", addr)
			if err := http.ListenAndServe(addr, nil); err != nil {
				slog.Error("pprof server stopped", "err", err)
			}
		}()
	}

	spells, err := defs.SpellLibraryFrom(os.Getenv("SPELLS_PATH"))
	if err != nil {
		slog.Error("failed to load spells", "err", err)
		os.Exit(1)
	}
	enemies, err := defs.EnemyLibraryFrom(os.Getenv("ENEMIES_PATH"))
	if err != nil {
		slog.Error("failed to load enemies", "err", err)
		os.Exit(1)
	}
	opts := app.Options{
		Seed:    utils.GetEnvInt64("GAME_SEED", time.Now().UnixNano()),
		Spells:  spells,
		Enemies: enemies,
	}

	sm := state.NewStateMachine()
	if os.Getenv("SKIP_MENU") != "" {
		gs, err := state.NewGameState(sm, opts)
		if err != nil {
			slog.Error("failed to create encounter", "err", err)
			os.Exit(1)
		}
		sm.SetState(gs)
	} else {
		sm.SetState(state.NewMenuState(sm, opts, nil))
	}

	appGame := &AppGame{
		stateMachine:   sm,
		lastUpdateTime: time.Now(),
	}
	ebiten.SetWindowSize(config.ScreenWidth, config.ScreenHeight)
	ebiten.SetWindowTitle("Magic Survivor")
	if err := ebiten.RunGame(appGame); err != nil {
		slog.Error("game stopped", "err", err)
		os.Exit(1)
	}
}
