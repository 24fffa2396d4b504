// internal/defs/waves.go
package defs

import "time"

// SpawnEntry — вес появления одного типа врага внутри волны.
type SpawnEntry struct {
	EnemyID string
	Weight  int
}

// WaveDefinition описывает параметры для одной волны врагов.
type WaveDefinition struct {
	Spawns        []SpawnEntry  // Кого и с каким весом выпускать
	Count         int           // Количество врагов в волне
	SpawnInterval time.Duration // Интервал между появлением врагов
}

// WavePatterns определяет последовательность волн в игре.
// Ключ карты - это номер волны.
var WavePatterns = map[int]WaveDefinition{
	1: {Spawns: []SpawnEntry{{"goblin_grunt", 1}}, Count: 5, SpawnInterval: 2 * time.Second},
	2: {Spawns: []SpawnEntry{{"goblin_grunt", 1}}, Count: 8, SpawnInterval: 1500 * time.Millisecond},
	3: {Spawns: []SpawnEntry{{"goblin_grunt", 3}, {"goblin_runner", 1}}, Count: 10, SpawnInterval: 1200 * time.Millisecond},
	4: {Spawns: []SpawnEntry{{"goblin_runner", 1}}, Count: 12, SpawnInterval: 800 * time.Millisecond},
	5: {Spawns: []SpawnEntry{{"goblin_grunt", 2}, {"orc_brute", 1}}, Count: 10, SpawnInterval: time.Second},
	6: {Spawns: []SpawnEntry{{"goblin_grunt", 2}, {"goblin_runner", 2}, {"orc_brute", 1}}, Count: 16, SpawnInterval: 700 * time.Millisecond},
	7: {Spawns: []SpawnEntry{{"orc_brute", 1}}, Count: 8, SpawnInterval: 1200 * time.Millisecond},
	8: {Spawns: []SpawnEntry{{"goblin_runner", 3}, {"orc_brute", 1}}, Count: 20, SpawnInterval: 500 * time.Millisecond},
}

// WaveFor возвращает определение волны; после последней волны
// повторяются волны с 5-й по 8-ю.
func WaveFor(number int) WaveDefinition {
	if def, ok := WavePatterns[number]; ok {
		return def
	}
	if number < 1 {
		return WavePatterns[1]
	}
	return WavePatterns[((number-5)%4)+5]
}
