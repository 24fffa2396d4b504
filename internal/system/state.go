// internal/system/state.go
package system

import (
	"go-magic-survivor/internal/component"
	"go-magic-survivor/internal/config"
	"go-magic-survivor/internal/entity"
	"go-magic-survivor/internal/event"
	"go-magic-survivor/internal/interfaces"
)

// StateSystem переключает фазы забега: волна, передышка, конец игры.
type StateSystem struct {
	ecs             *entity.ECS
	gameContext     interfaces.GameContext // Используем интерфейс из interfaces
	eventDispatcher *event.Dispatcher
}

func NewStateSystem(ecs *entity.ECS, gameContext interfaces.GameContext, eventDispatcher *event.Dispatcher) *StateSystem {
	ss := &StateSystem{
		ecs:             ecs,
		gameContext:     gameContext,
		eventDispatcher: eventDispatcher,
	}
	eventDispatcher.Subscribe(event.WaveEnded, ss)
	eventDispatcher.Subscribe(event.PlayerDied, ss)
	return ss
}

func (s *StateSystem) OnEvent(e event.Event) {
	switch e.Type {
	case event.WaveEnded:
		if s.Current() == component.WavePhase {
			s.SwitchToBreakState()
		}
	case event.PlayerDied:
		s.SwitchToGameOver()
	}
}

func (s *StateSystem) Update(deltaTime float64) {
	gs := s.ecs.GameState
	if gs.Phase != component.BreakPhase {
		return
	}
	gs.BreakTimer -= deltaTime
	if gs.BreakTimer <= config.ExpiryEpsilon {
		s.SwitchToWaveState()
	}
}

func (s *StateSystem) SwitchToBreakState() {
	s.ecs.GameState.Phase = component.BreakPhase
	s.ecs.GameState.BreakTimer = config.WaveBreakDuration
}

func (s *StateSystem) SwitchToWaveState() {
	s.ecs.GameState.Phase = component.WavePhase
	s.ecs.GameState.BreakTimer = 0
	s.gameContext.StartWave()
}

// SwitchToGameOver — конечная фаза, из неё забег уже не выходит.
func (s *StateSystem) SwitchToGameOver() {
	s.ecs.GameState.Phase = component.GameOverPhase
	s.ecs.Wave = nil
	s.gameContext.ClearProjectiles()
}

func (s *StateSystem) Current() component.GamePhase {
	return s.ecs.GameState.Phase
}
