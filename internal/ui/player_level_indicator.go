// internal/ui/player_level_indicator.go
package ui

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"

	"go-magic-survivor/internal/config"
)

// PlayerLevelIndicator отображает уровень и опыт игрока.
type PlayerLevelIndicator struct {
	X, Y     float32
	fontFace font.Face
}

const (
	xpBarWidth  = 220
	xpBarHeight = 12
	borderWidth = 1
)

var borderColor = color.White

// NewPlayerLevelIndicator создает новый индикатор уровня.
func NewPlayerLevelIndicator(x, y float32, fontFace font.Face) *PlayerLevelIndicator {
	return &PlayerLevelIndicator{X: x, Y: y, fontFace: fontFace}
}

// Draw отрисовывает индикатор.
func (i *PlayerLevelIndicator) Draw(screen *ebiten.Image, level, currentXP, xpToNext int) {
	// 1. Рисуем белую обводку для полосы опыта
	vector.StrokeRect(screen, i.X, i.Y, xpBarWidth, xpBarHeight, borderWidth, borderColor, true)

	// 2. Рисуем заполненную часть полосы опыта
	fillRatio := 0.0
	if xpToNext > 0 {
		fillRatio = float64(currentXP) / float64(xpToNext)
	}
	if fillRatio > 1.0 {
		fillRatio = 1.0
	}
	fillWidth := float32(float64(xpBarWidth-borderWidth*2) * fillRatio)
	if fillWidth > 0 {
		vector.DrawFilledRect(screen, i.X+borderWidth, i.Y+borderWidth, fillWidth, xpBarHeight-borderWidth*2, config.XPBarFill, true)
	}

	// 3. Подпись уровня справа от полосы
	label := fmt.Sprintf("LV %d  %d/%d", level, currentXP, xpToNext)
	text.Draw(screen, label, i.fontFace, int(i.X)+xpBarWidth+8, int(i.Y)+xpBarHeight-2, config.TextLightColor)
}
