package component

// GamePhase — текущая фаза забега.
type GamePhase int

const (
	WavePhase GamePhase = iota
	BreakPhase
	GameOverPhase
)

// GameState — компонент для хранения состояния игры
type GameState struct {
	Phase      GamePhase
	BreakTimer float64 // Сколько осталось до следующей волны
}

func (p GamePhase) String() string {
	switch p {
	case WavePhase:
		return "wave"
	case BreakPhase:
		return "break"
	case GameOverPhase:
		return "game_over"
	}
	return "unknown"
}
