package component

import "go-magic-survivor/internal/defs"

// Wave — состояние текущей волны.
type Wave struct {
	Number         int
	EnemiesToSpawn int
	SpawnTimer     float64
	SpawnInterval  float64
	Spawns         []defs.SpawnEntry
}
