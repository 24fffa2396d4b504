// internal/system/wave.go
package system

import (
	"log/slog"

	"go-magic-survivor/internal/component"
	"go-magic-survivor/internal/config"
	"go-magic-survivor/internal/defs"
	"go-magic-survivor/internal/entity"
	"go-magic-survivor/internal/event"
	"go-magic-survivor/internal/utils"
)

// WaveSystem выпускает врагов текущей волны на кольце вокруг игрока.
type WaveSystem struct {
	ecs             *entity.ECS
	enemies         defs.EnemyLibrary
	prng            *utils.PRNGService
	eventDispatcher *event.Dispatcher
}

func NewWaveSystem(ecs *entity.ECS, enemies defs.EnemyLibrary, prng *utils.PRNGService, eventDispatcher *event.Dispatcher) *WaveSystem {
	return &WaveSystem{
		ecs:             ecs,
		enemies:         enemies,
		prng:            prng,
		eventDispatcher: eventDispatcher,
	}
}

func (s *WaveSystem) Update(deltaTime float64) {
	wave := s.ecs.Wave
	if wave == nil || s.ecs.GameState.Phase != component.WavePhase {
		return
	}
	if wave.EnemiesToSpawn > 0 {
		wave.SpawnTimer += deltaTime
		if utils.Reached(wave.SpawnTimer, wave.SpawnInterval, config.ExpiryEpsilon) {
			s.spawnEnemy(wave)
			wave.EnemiesToSpawn--
			wave.SpawnTimer = 0
		}
		return
	}
	if len(s.ecs.Enemies) == 0 {
		// Волну снимаем до рассылки, чтобы WaveEnded пришёл ровно один раз.
		s.ecs.Wave = nil
		s.eventDispatcher.Dispatch(event.Event{Type: event.WaveEnded, Data: event.WaveData{Number: wave.Number}})
	}
}

// StartWave готовит состояние волны с указанным номером.
func (s *WaveSystem) StartWave(waveNumber int) *component.Wave {
	waveDef := defs.WaveFor(waveNumber)
	return &component.Wave{
		Number:         waveNumber,
		EnemiesToSpawn: waveDef.Count,
		SpawnTimer:     0,
		SpawnInterval:  waveDef.SpawnInterval.Seconds(),
		Spawns:         waveDef.Spawns,
	}
}

func (s *WaveSystem) spawnEnemy(wave *component.Wave) {
	enemyID := s.prng.ChooseWeighted(wave.Spawns)
	def, ok := s.enemies[enemyID]
	if !ok {
		slog.Warn("enemy definition not found", "enemy", enemyID, "wave", wave.Number)
		return
	}

	cx, cy := config.ScreenWidth/2.0, config.ScreenHeight/2.0
	if pos, ok := s.ecs.PlayerPosition(); ok {
		cx, cy = pos.X, pos.Y
	}
	x, y := s.prng.PointOnRing(cx, cy, config.SpawnRingRadius)

	bodyColor := def.Visuals.Color
	if bodyColor.A == 0 {
		bodyColor = config.EnemyColor
	}

	id := s.ecs.NewEntity()
	s.ecs.Positions[id] = &component.Position{X: x, Y: y}
	s.ecs.Velocities[id] = &component.Velocity{Speed: def.Speed}
	s.ecs.Colliders[id] = &component.Collider{Radius: def.Visuals.Radius}
	s.ecs.Healths[id] = &component.Health{Value: def.Health, Max: def.Health}
	s.ecs.Renderables[id] = &component.Renderable{
		Color:  bodyColor,
		Radius: float32(def.Visuals.Radius),
	}
	s.ecs.Enemies[id] = &component.Enemy{
		DefID:         enemyID,
		ContactDamage: def.Damage,
		XP:            def.XP,
	}
	s.eventDispatcher.Dispatch(event.Event{Type: event.EnemySpawned, Data: id})
}
