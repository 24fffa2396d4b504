// internal/state/menu_state.go
package state

import (
	"fmt"
	"log/slog"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"

	"go-magic-survivor/internal/app"
	"go-magic-survivor/internal/config"
)

// RunResult — итог завершённого забега для экрана меню.
type RunResult struct {
	Wave  int
	Kills int
	Time  float64
}

// MenuState — стартовый экран и экран после смерти.
type MenuState struct {
	sm     *StateMachine
	opts   app.Options
	result *RunResult
}

func NewMenuState(sm *StateMachine, opts app.Options, result *RunResult) *MenuState {
	return &MenuState{sm: sm, opts: opts, result: result}
}

func (m *MenuState) Enter() {
	// Ничего не делаем при входе
}

func (m *MenuState) Update(deltaTime float64) {
	if !inpututil.IsKeyJustPressed(ebiten.KeySpace) && !inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		return
	}
	gs, err := NewGameState(m.sm, m.opts)
	if err != nil {
		slog.Error("failed to start encounter", "err", err)
		return
	}
	m.sm.SetState(gs)
}

func (m *MenuState) Draw(screen *ebiten.Image) {
	screen.Fill(config.BackgroundColor)
	face := basicfont.Face7x13

	lines := []string{"MAGIC SURVIVOR", "", "WASD - move, 1-9 - cast, mouse - aim, P - pause", "", "press SPACE to start"}
	if m.result != nil {
		lines = append([]string{
			"YOU DIED",
			fmt.Sprintf("wave %d   kills %d   time %.0fs", m.result.Wave, m.result.Kills, m.result.Time),
			"",
		}, lines...)
	}
	y := config.ScreenHeight/2 - len(lines)*10
	for _, line := range lines {
		x := (config.ScreenWidth - len(line)*config.TextCharWidth) / 2
		text.Draw(screen, line, face, x, y, config.TextLightColor)
		y += 20
	}
}

func (m *MenuState) Exit() {
	// Ничего не делаем при выходе
}
