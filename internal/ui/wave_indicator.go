package ui

import (
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"

	"go-magic-survivor/internal/config"
)

// WaveIndicator отображает номер текущей волны римскими цифрами.
type WaveIndicator struct {
	X, Y     float32
	fontFace font.Face
}

// NewWaveIndicator создает новый индикатор волны.
func NewWaveIndicator(x, y float32, fontFace font.Face) *WaveIndicator {
	return &WaveIndicator{X: x, Y: y, fontFace: fontFace}
}

// toRoman конвертирует целое число в римское.
func toRoman(num int) string {
	if num <= 0 {
		return ""
	}
	val := []int{1000, 900, 500, 400, 100, 90, 50, 40, 10, 9, 5, 4, 1}
	syb := []string{"M", "CM", "D", "CD", "C", "XC", "L", "XL", "X", "IX", "V", "IV", "I"}

	var roman strings.Builder
	for i := 0; i < len(val); i++ {
		for num >= val[i] {
			roman.WriteString(syb[i])
			num -= val[i]
		}
	}
	return roman.String()
}

// Draw отрисовывает индикатор на экране; phase подписывается под номером.
func (i *WaveIndicator) Draw(screen *ebiten.Image, waveNumber int, phase string) {
	if waveNumber <= 0 {
		return
	}

	label := "WAVE " + toRoman(waveNumber)
	// Центрируем текст
	bounds := text.BoundString(i.fontFace, label)
	textX := int(i.X) - bounds.Dx()/2
	textY := int(i.Y)

	// Обводка в один пиксель
	for _, d := range [][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}} {
		text.Draw(screen, label, i.fontFace, textX+d[0], textY+d[1], config.TextDarkColor)
	}
	text.Draw(screen, label, i.fontFace, textX, textY, config.TextLightColor)

	if phase != "" {
		pb := text.BoundString(i.fontFace, phase)
		text.Draw(screen, phase, i.fontFace, int(i.X)-pb.Dx()/2, textY+bounds.Dy()+6, config.TextLightColor)
	}
}
