// pkg/render/arena.go
package render

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"go-magic-survivor/internal/app"
)

// ArenaRenderer draws a frame snapshot: effects, enemies, projectiles, player.
type ArenaRenderer struct {
	colors *ArenaColors
}

func NewArenaRenderer(colors *ArenaColors) *ArenaRenderer {
	return &ArenaRenderer{colors: colors}
}

func (r *ArenaRenderer) Draw(screen *ebiten.Image, snap *app.Snapshot) {
	screen.Fill(r.colors.BackgroundColor)

	for _, e := range snap.Effects {
		vector.DrawFilledCircle(screen, float32(e.X), float32(e.Y), float32(e.Radius), fromArray(e.Color), true)
	}

	for _, e := range snap.Enemies {
		c := fromArray(e.Color)
		if e.Flash {
			c = r.colors.DamageFlashColor
		}
		x, y, radius := float32(e.X), float32(e.Y), float32(e.Radius)
		vector.DrawFilledCircle(screen, x, y, radius, c, true)
		vector.StrokeCircle(screen, x, y, radius, r.colors.StrokeWidth, DarkenColor(c), true)
		if e.MaxHealth > 0 && e.Health < e.MaxHealth {
			r.drawEnemyHealth(screen, x, y-radius-6, radius*2, float32(e.Health)/float32(e.MaxHealth))
		}
	}

	for _, p := range snap.Projectiles {
		x, y := float32(p.X), float32(p.Y)
		c := fromArray(p.Color)
		switch p.AoeState {
		case "traveling", "arrived":
			// Маркер цели: только контур
			vector.StrokeCircle(screen, x, y, float32(p.Radius)+2, r.colors.StrokeWidth, c, true)
		default:
			vector.DrawFilledCircle(screen, x, y, float32(p.Radius), c, true)
		}
	}

	pl := snap.Player
	if pl.Alive {
		x, y := float32(pl.X), float32(pl.Y)
		vector.DrawFilledCircle(screen, x, y, float32(pl.Radius)+2, r.colors.StrokeColor, true)
		vector.DrawFilledCircle(screen, x, y, float32(pl.Radius), r.colors.PlayerColor, true)
	}
}

func (r *ArenaRenderer) drawEnemyHealth(screen *ebiten.Image, cx, y, width, frac float32) {
	x := cx - width/2
	vector.DrawFilledRect(screen, x, y, width, 3, r.colors.HealthBarBack, false)
	vector.DrawFilledRect(screen, x, y, width*frac, 3, r.colors.HealthBarColor, false)
}
