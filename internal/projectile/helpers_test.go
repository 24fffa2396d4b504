package projectile

import (
	"math"
	"testing"

	"go-magic-survivor/internal/defs"
	"go-magic-survivor/internal/types"
	"go-magic-survivor/pkg/geom"
)

const tol = 1e-9

type fakeEnemy struct {
	id     types.EntityID
	pos    geom.Vec2
	size   float64
	active bool
	taken  []float64
}

func newEnemy(id types.EntityID, x, y float64) *fakeEnemy {
	return &fakeEnemy{id: id, pos: geom.V(x, y), size: 20, active: true}
}

func (e *fakeEnemy) ID() types.EntityID        { return e.id }
func (e *fakeEnemy) Active() bool              { return e.active }
func (e *fakeEnemy) Hitbox() geom.Rect         { return geom.RectAround(e.pos, e.size, e.size) }
func (e *fakeEnemy) TakeDamage(amount float64) { e.taken = append(e.taken, amount) }

func enemyList(es ...*fakeEnemy) []Enemy {
	out := make([]Enemy, len(es))
	for i, e := range es {
		out[i] = e
	}
	return out
}

type fakeOwner struct {
	pos   geom.Vec2
	size  float64
	alive bool
}

func newOwner(x, y float64) *fakeOwner {
	return &fakeOwner{pos: geom.V(x, y), size: 20, alive: true}
}

func (o *fakeOwner) Position() geom.Vec2 { return o.pos }
func (o *fakeOwner) Hitbox() geom.Rect   { return geom.RectAround(o.pos, o.size, o.size) }
func (o *fakeOwner) Alive() bool         { return o.alive }

func cfg(kv ...any) defs.TrajectoryConfig {
	c := defs.TrajectoryConfig{}
	for i := 0; i+1 < len(kv); i += 2 {
		c[kv[i].(string)] = kv[i+1]
	}
	return c
}

// run calls Update n times with the same dt and collects every spawn request.
func run(p *Projectile, n int, dt float64, enemies []Enemy) []SpawnRequest {
	var reqs []SpawnRequest
	for range n {
		reqs = append(reqs, p.Update(dt, enemies)...)
	}
	return reqs
}

func approxVec(t *testing.T, name string, got, want geom.Vec2, eps float64) {
	t.Helper()
	if math.Abs(got.X-want.X) > eps || math.Abs(got.Y-want.Y) > eps {
		t.Errorf("%s = %v, want %v", name, got, want)
	}
}
