// internal/interfaces/game_context.go
package interfaces

//go:generate go tool mockgen -destination=./mocks/game_context_mock.go -package=mocks . GameContext

// GameContext — операции игры, которые нужны StateSystem.
// Это помогает избежать циклических зависимостей между system и app.
type GameContext interface {
	StartWave()
	ClearProjectiles()
}
