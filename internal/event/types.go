// internal/event/types.go
package event

import "go-magic-survivor/internal/types"

const (
	WaveStarted       EventType = "WaveStarted"       // Волна началась
	WaveEnded         EventType = "WaveEnded"         // Волна закончилась
	EnemySpawned      EventType = "EnemySpawned"      // Враг появился на кольце спавна
	EnemyHit          EventType = "EnemyHit"          // Снаряд попал во врага
	EnemyDestroyed    EventType = "EnemyDestroyed"    // Враг уничтожен
	PlayerDamaged     EventType = "PlayerDamaged"     // Враг задел игрока
	PlayerDied        EventType = "PlayerDied"        // Здоровье игрока на нуле
	PlayerLeveledUp   EventType = "PlayerLeveledUp"   // Новый уровень
	SpellCast         EventType = "SpellCast"         // Игрок применил заклинание
	ProjectileForked  EventType = "ProjectileForked"  // Снаряд разделился
	ProjectileExpired EventType = "ProjectileExpired" // Снаряд убран из менеджера
	AoeDetonated      EventType = "AoeDetonated"      // Взрыв по площади
)

// EnemyHitData — данные события EnemyHit.
type EnemyHitData struct {
	EnemyID types.EntityID
	SpellID string
	Damage  float64
}

// EnemyDestroyedData — данные события EnemyDestroyed.
type EnemyDestroyedData struct {
	EnemyID types.EntityID
	DefID   string
	XP      int
}

// SpellCastData — данные события SpellCast.
type SpellCastData struct {
	SpellID string
	X, Y    float64
}

// ProjectileForkedData — данные события ProjectileForked.
type ProjectileForkedData struct {
	SpellID  string
	Children int
	X, Y     float64
}

// AoeDetonatedData — данные события AoeDetonated.
type AoeDetonatedData struct {
	SpellID string
	X, Y    float64
	Radius  float64
	Damage  float64
}

// WaveData — номер волны для WaveStarted/WaveEnded.
type WaveData struct {
	Number int
}

// LevelUpData — данные события PlayerLeveledUp.
type LevelUpData struct {
	Level int
}

// PlayerDamagedData — данные события PlayerDamaged.
type PlayerDamagedData struct {
	EnemyID   types.EntityID
	Damage    int
	Remaining int
}
