// internal/system/player_system.go
package system

import (
	"go-magic-survivor/internal/config"
	"go-magic-survivor/internal/entity"
	"go-magic-survivor/internal/event"
)

// PlayerSystem отвечает за логику, связанную с игроком, например, за начисление опыта.
type PlayerSystem struct {
	ecs             *entity.ECS
	eventDispatcher *event.Dispatcher
}

func NewPlayerSystem(ecs *entity.ECS, eventDispatcher *event.Dispatcher) *PlayerSystem {
	ps := &PlayerSystem{ecs: ecs, eventDispatcher: eventDispatcher}
	eventDispatcher.Subscribe(event.EnemyDestroyed, ps)
	return ps
}

// OnEvent обрабатывает события, на которые подписана система.
func (s *PlayerSystem) OnEvent(e event.Event) {
	if e.Type != event.EnemyDestroyed {
		return
	}
	data, ok := e.Data.(event.EnemyDestroyedData)
	if !ok || data.XP <= 0 {
		return
	}
	s.GainXP(data.XP)
}

// GainXP начисляет опыт игроку и повышает уровень, пока хватает опыта.
func (s *PlayerSystem) GainXP(amount int) {
	playerState, ok := s.ecs.PlayerState[s.ecs.PlayerID]
	if !ok || !s.ecs.PlayerAlive() {
		return
	}
	playerState.CurrentXP += amount

	for playerState.CurrentXP >= playerState.XPToNextLevel {
		playerState.CurrentXP -= playerState.XPToNextLevel
		playerState.Level++
		playerState.XPToNextLevel = config.CalculateXPForNextLevel(playerState.Level)

		// Новый уровень увеличивает максимум здоровья и лечит полностью
		if health, ok := s.ecs.Healths[s.ecs.PlayerID]; ok {
			health.Max += config.LevelUpHealthBonus
			health.Value = health.Max
		}
		s.eventDispatcher.Dispatch(event.Event{
			Type: event.PlayerLeveledUp,
			Data: event.LevelUpData{Level: playerState.Level},
		})
	}
}
