// internal/defs/enemies.go
package defs

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"image/color"
)

//go:embed data/enemies.json
var defaultEnemiesJSON []byte

// EnemyDefinition holds all the static data for a specific type of enemy.
type EnemyDefinition struct {
	ID      string  `json:"id"`
	Name    string  `json:"name"`
	Health  int     `json:"health"`
	Damage  int     `json:"damage"` // урон при касании игрока
	Speed   float64 `json:"speed"`
	XP      int     `json:"xp"`
	Visuals Visuals `json:"visuals"`
}

// Visuals contains parameters for rendering an enemy.
type Visuals struct {
	Color  color.RGBA `json:"color"`
	Radius float64    `json:"radius"`
}

// EnemyLibrary maps enemy ids to their definitions.
type EnemyLibrary map[string]EnemyDefinition

// ParseEnemyLibrary decodes a JSON list of enemy definitions.
func ParseEnemyLibrary(data []byte) (EnemyLibrary, error) {
	var enemyDefs []EnemyDefinition
	if err := json.Unmarshal(data, &enemyDefs); err != nil {
		return nil, fmt.Errorf("failed to unmarshal enemy definitions: %w", err)
	}

	lib := make(EnemyLibrary, len(enemyDefs))
	for _, def := range enemyDefs {
		lib[def.ID] = def
	}
	return lib, nil
}

// DefaultEnemyLibrary returns the built-in enemy roster.
func DefaultEnemyLibrary() (EnemyLibrary, error) {
	lib, err := ParseEnemyLibrary(defaultEnemiesJSON)
	if err != nil {
		return nil, fmt.Errorf("built-in enemies: %w", err)
	}
	return lib, nil
}
