// internal/ui/player_health_indicator.go
package ui

import (
	"strconv"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"

	"go-magic-survivor/internal/config"
)

const (
	healthBarWidth  = 220
	healthBarHeight = 14
)

// PlayerHealthIndicator отображает здоровье игрока полосой.
type PlayerHealthIndicator struct {
	X, Y     float32
	fontFace font.Face
}

// NewPlayerHealthIndicator создает новый индикатор здоровья.
func NewPlayerHealthIndicator(x, y float32, fontFace font.Face) *PlayerHealthIndicator {
	return &PlayerHealthIndicator{X: x, Y: y, fontFace: fontFace}
}

// Draw рисует полосу здоровья с подписью "текущее/максимум".
func (i *PlayerHealthIndicator) Draw(screen *ebiten.Image, health, maxHealth int) {
	vector.DrawFilledRect(screen, i.X, i.Y, healthBarWidth, healthBarHeight, config.HealthBarBackground, true)
	if maxHealth > 0 && health > 0 {
		frac := min(float32(health)/float32(maxHealth), 1)
		vector.DrawFilledRect(screen, i.X, i.Y, healthBarWidth*frac, healthBarHeight, config.HealthBarFill, true)
	}
	vector.StrokeRect(screen, i.X, i.Y, healthBarWidth, healthBarHeight, borderWidth, borderColor, true)

	healthText := strconv.Itoa(health) + "/" + strconv.Itoa(maxHealth)
	textX := int(i.X) + (healthBarWidth-len(healthText)*config.TextCharWidth)/2
	text.Draw(screen, healthText, i.fontFace, textX, int(i.Y)+healthBarHeight-config.TextOffsetY+1, config.TextLightColor)
}

// GetHeight возвращает общую высоту индикатора.
func (i *PlayerHealthIndicator) GetHeight() float32 {
	return healthBarHeight
}
