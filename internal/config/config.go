// internal/config/config.go
package config

import "image/color"

const (
	ScreenWidth  = 1200
	ScreenHeight = 900
	MaxDeltaTime = 0.06

	// Допуск при сравнении накопленной дистанции/таймеров с порогом.
	ExpiryEpsilon = 1e-9

	DefaultProjectileRadius = 5.0
	ChildDefaultSpeed       = 100.0
	ChildDefaultRange       = 100.0
	ForkChildAimDistance    = 100.0
	AoeDefaultTargetReach   = 1000.0

	PlayerHealth       = 100
	PlayerSpeed        = 180.0
	PlayerRadius       = 12.0
	PlayerContactRange = 4.0 // сколько пикселей зазора ещё считается касанием
	XPBaseToLevel      = 100
	LevelUpHealthBonus = 10

	// Автокаст без целей бьёт в случайную точку на таком расстоянии.
	AutoCastMinDistance = 100.0
	AutoCastMaxDistance = 300.0

	EnemySpeed           = 60.0
	EnemyHealth          = 20
	EnemyRadius          = 10.0
	EnemyContactDamage   = 5
	EnemyContactCooldown = 1.0
	SpawnRingRadius      = 480.0
	WaveBreakDuration    = 3.0

	DamageFlashDuration = 0.12
	AoeEffectDuration   = 0.35

	TextCharWidth = 7
	TextOffsetY   = 4

	HUDMargin        = 12
	SpellSlotSize    = 36
	SpellSlotSpacing = 6

	DefaultStartingSpell = "basic_projectile"
)

// StartingLoadout — заклинания игрока в начале забега. Первое кастуется вручную,
// остальные автоматически.
var StartingLoadout = []string{DefaultStartingSpell, "chain_spark", "orbiting_blades", "meteor_shard"}

var (
	BackgroundColor     = color.RGBA{20, 20, 30, 255}
	TextLightColor      = color.RGBA{240, 240, 240, 255}
	TextDarkColor       = color.RGBA{20, 20, 30, 255}
	PlayerColor         = color.RGBA{70, 130, 180, 255}
	EnemyColor          = color.RGBA{200, 60, 60, 255}
	DamageFlashColor    = color.RGBA{255, 255, 255, 255}
	DefaultProjectile   = color.RGBA{255, 255, 0, 255}
	DefaultMarkerColor  = color.RGBA{255, 120, 0, 255}
	DefaultAoeColor     = color.RGBA{255, 60, 0, 180}
	HealthBarBackground = color.RGBA{60, 20, 20, 220}
	HealthBarFill       = color.RGBA{220, 60, 60, 255}
	XPBarFill           = color.RGBA{120, 200, 255, 255}
	SpellSlotColor      = color.RGBA{40, 40, 60, 220}
	SpellSlotCooldown   = color.RGBA{0, 0, 0, 160}
	SpellSlotStroke     = color.RGBA{240, 240, 240, 255}
	PauseOverlayColor   = color.RGBA{0, 0, 0, 140}
	StrokeWidth         = float32(2.0)
)

// CalculateXPForNextLevel возвращает количество опыта, нужное для перехода
// с уровня level на следующий.
func CalculateXPForNextLevel(level int) int {
	if level < 1 {
		return XPBaseToLevel
	}
	return level * XPBaseToLevel
}
