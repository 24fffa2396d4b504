// internal/ui/spell_bar.go
package ui

import (
	"strconv"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"

	"go-magic-survivor/internal/app"
	"go-magic-survivor/internal/config"
)

// SpellBar — ряд ячеек экипированных заклинаний с затемнением на перезарядке.
type SpellBar struct {
	X, Y     float32
	fontFace font.Face
}

func NewSpellBar(x, y float32, fontFace font.Face) *SpellBar {
	return &SpellBar{X: x, Y: y, fontFace: fontFace}
}

// SlotAt возвращает индекс ячейки под точкой экрана.
func (b *SpellBar) SlotAt(x, y float32, slots int) (int, bool) {
	if y < b.Y || y > b.Y+config.SpellSlotSize {
		return 0, false
	}
	for i := range slots {
		sx := b.slotX(i)
		if x >= sx && x <= sx+config.SpellSlotSize {
			return i, true
		}
	}
	return 0, false
}

func (b *SpellBar) slotX(i int) float32 {
	return b.X + float32(i)*(config.SpellSlotSize+config.SpellSlotSpacing)
}

func (b *SpellBar) Draw(screen *ebiten.Image, slots []app.SlotView) {
	const size = float32(config.SpellSlotSize)
	for i, s := range slots {
		x := b.slotX(i)
		vector.DrawFilledRect(screen, x, b.Y, size, size, config.SpellSlotColor, false)

		if s.Cooldown > 0 && s.Remaining > 0 {
			frac := float32(min(s.Remaining/s.Cooldown, 1))
			vector.DrawFilledRect(screen, x, b.Y+size*(1-frac), size, size*frac, config.SpellSlotCooldown, false)
		}
		vector.StrokeRect(screen, x, b.Y, size, size, config.StrokeWidth, config.SpellSlotStroke, false)

		// Номер клавиши и первая буква заклинания
		text.Draw(screen, strconv.Itoa(i+1), b.fontFace, int(x)+3, int(b.Y)+12, config.TextLightColor)
		if s.SpellID != "" {
			initial := string([]rune(s.SpellID)[0:1])
			if s.Manual {
				initial = "*" + initial
			}
			text.Draw(screen, initial, b.fontFace, int(x+size/2)-config.TextCharWidth/2, int(b.Y+size)-config.TextOffsetY-2, config.TextLightColor)
		}
	}
}
