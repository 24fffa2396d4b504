package projectile

import (
	"math"
	"testing"

	"go-magic-survivor/internal/config"
	"go-magic-survivor/internal/projectile/mocks"
	"go-magic-survivor/internal/types"
	"go-magic-survivor/pkg/geom"

	"go.uber.org/mock/gomock"
)

func TestParseTrajectory(t *testing.T) {
	tests := []struct {
		tag    string
		want   Trajectory
		wantOK bool
	}{
		{"", Straight, true},
		{"STRAIGHT", Straight, true},
		{"homing", Homing, true},
		{"GROUND_AOE", GroundAOE, true},
		{"GROWING_ORB", GrowingOrb, true},
		{"TELEPORT", Straight, false},
	}
	for _, tt := range tests {
		got, ok := ParseTrajectory(tt.tag)
		if got != tt.want || ok != tt.wantOK {
			t.Errorf("ParseTrajectory(%q) = %v, %v, want %v, %v", tt.tag, got, ok, tt.want, tt.wantOK)
		}
	}
	if Spiral.String() != "SPIRAL" {
		t.Errorf("Spiral.String() = %q", Spiral.String())
	}
}

func TestNew_Defaults(t *testing.T) {
	p := New(nil, geom.V(1, 2), geom.V(0, 3), 10, 100, 200, "bolt", nil)
	if p.Trajectory() != Straight {
		t.Errorf("trajectory = %v, want STRAIGHT", p.Trajectory())
	}
	if p.Radius() != config.DefaultProjectileRadius {
		t.Errorf("radius = %f, want %f", p.Radius(), config.DefaultProjectileRadius)
	}
	if p.Color() != config.DefaultProjectile {
		t.Errorf("color = %v, want %v", p.Color(), config.DefaultProjectile)
	}
	if p.Direction() != geom.V(0, 1) {
		t.Errorf("direction = %v, want normalized (0, 1)", p.Direction())
	}
	if !p.Active() || p.SpellID() != "bolt" {
		t.Errorf("active = %v, spell = %q", p.Active(), p.SpellID())
	}

	unknown := New(nil, geom.V(0, 0), geom.V(1, 0), 1, 1, 1, "x", cfg("type", "WOBBLE", "radius", 9.0, "color", []any{1.0, 2.0, 3.0}))
	if unknown.Trajectory() != Straight {
		t.Errorf("unknown type trajectory = %v, want STRAIGHT", unknown.Trajectory())
	}
	if unknown.Radius() != 9 || unknown.Color().B != 3 {
		t.Errorf("radius/color not read from config: %f %v", unknown.Radius(), unknown.Color())
	}
}

func TestRangeExpiry(t *testing.T) {
	kinds := []string{"STRAIGHT", "HOMING", "PIERCING", "GROWING_ORB"}
	steps := []float64{0.1, 0.05, 0.02, 0.01}

	for _, kind := range kinds {
		for _, dt := range steps {
			p := New(nil, geom.V(0, 0), geom.V(1, 0), 10, 100, 200, "k", cfg("type", kind))

			run(p, int(math.Round(1.9/dt)), dt, nil)
			if !p.Active() {
				t.Errorf("%s dt=%v: inactive after 1.9s", kind, dt)
				continue
			}
			run(p, int(math.Round(0.1/dt)), dt, nil)
			if p.Active() {
				t.Errorf("%s dt=%v: still active after 2.0s (distance %f)", kind, dt, p.DistanceTraveled())
			}
		}
	}
}

func TestInactiveUpdateIsNoop(t *testing.T) {
	p := New(nil, geom.V(0, 0), geom.V(1, 0), 10, 100, 200, "k", nil)
	p.Deactivate()
	p.Update(1, nil)
	if p.Position() != geom.V(0, 0) || p.DistanceTraveled() != 0 {
		t.Errorf("inactive projectile moved to %v", p.Position())
	}
}

func TestHoming_FullSnap(t *testing.T) {
	enemy := newEnemy(1, 0, 100)
	p := New(nil, geom.V(0, 0), geom.V(-1, 0), 10, 100, 1000, "seek", cfg("type", "HOMING", "homing_strength", 1.0))

	p.Update(0.1, enemyList(enemy))

	approxVec(t, "direction", p.Direction(), geom.V(0, 1), tol)
	approxVec(t, "position", p.Position(), geom.V(0, 10), tol)
}

func TestHoming_PicksFirstOfEquidistant(t *testing.T) {
	up := newEnemy(1, 0, -50)
	down := newEnemy(2, 0, 50)
	p := New(nil, geom.V(0, 0), geom.V(1, 0), 10, 100, 1000, "seek", cfg("type", "HOMING", "homing_strength", 1.0))

	p.Update(0.01, enemyList(up, down))
	if p.Direction().Y >= 0 {
		t.Errorf("direction = %v, want toward first enemy (negative Y)", p.Direction())
	}
}

func TestHoming_IgnoresInactiveAndZeroStrength(t *testing.T) {
	dead := newEnemy(1, 0, 100)
	dead.active = false
	p := New(nil, geom.V(0, 0), geom.V(1, 0), 10, 100, 1000, "seek", cfg("type", "HOMING", "homing_strength", 1.0))
	p.Update(0.1, enemyList(dead))
	if p.Direction() != geom.V(1, 0) {
		t.Errorf("turned toward inactive enemy: %v", p.Direction())
	}

	still := New(nil, geom.V(0, 0), geom.V(1, 0), 10, 100, 1000, "seek", cfg("type", "HOMING", "homing_strength", 0.0))
	still.Update(0.1, enemyList(newEnemy(2, 0, 100)))
	if still.Direction() != geom.V(1, 0) {
		t.Errorf("zero strength turned: %v", still.Direction())
	}
}

func TestOrbiting_LifetimeByDuration(t *testing.T) {
	for _, omega := range []float64{0, 2, 25} {
		ctrl := gomock.NewController(t)
		owner := mocks.NewMockOwner(ctrl)
		owner.EXPECT().Alive().Return(true).AnyTimes()
		owner.EXPECT().Position().Return(geom.V(10, 20)).AnyTimes()

		p := New(owner, geom.V(10, 20), geom.V(1, 0), 5, 0, 0, "blades",
			cfg("type", "ORBITING", "duration", 5.0, "orbit_radius", 50.0, "angular_speed", omega))

		run(p, 499, 0.01, nil)
		if !p.Active() {
			t.Fatalf("omega=%v: inactive at 4.99s", omega)
		}
		if d := p.Position().Dist(geom.V(10, 20)); math.Abs(d-50) > 1e-6 {
			t.Errorf("omega=%v: orbit distance = %f, want 50", omega, d)
		}
		p.Update(0.01, nil)
		if p.Active() {
			t.Errorf("omega=%v: still active after 5.0s", omega)
		}
	}
}

func TestOrbiting_FollowsOwnerAngle(t *testing.T) {
	owner := newOwner(0, 0)
	p := New(owner, geom.V(0, 0), geom.V(1, 0), 5, 0, 0, "blades",
		cfg("type", "ORBITING", "orbit_radius", 10.0, "angular_speed", math.Pi, "initial_angle", 0.0))

	p.Update(0.5, nil)
	approxVec(t, "position", p.Position(), geom.V(0, 10), 1e-9)

	owner.pos = geom.V(100, 0)
	p.Update(0.5, nil)
	approxVec(t, "position after owner moved", p.Position(), geom.V(90, 0), 1e-9)
}

func TestOrbiting_OwnerGone(t *testing.T) {
	ctrl := gomock.NewController(t)
	owner := mocks.NewMockOwner(ctrl)
	owner.EXPECT().Alive().Return(false)

	p := New(owner, geom.V(0, 0), geom.V(1, 0), 5, 0, 0, "blades", cfg("type", "ORBITING"))
	p.Update(0.01, nil)
	if p.Active() {
		t.Error("orbiting projectile survived a dead owner")
	}

	orphan := New(nil, geom.V(0, 0), geom.V(1, 0), 5, 0, 0, "blades", cfg("type", "ORBITING"))
	orphan.Update(0.01, nil)
	if orphan.Active() {
		t.Error("orbiting projectile survived a nil owner")
	}
}

func TestSineWave_OffsetsAcrossBasePath(t *testing.T) {
	p := New(nil, geom.V(0, 0), geom.V(1, 0), 5, 200, 350, "wave",
		cfg("type", "SINE_WAVE", "amplitude", 30.0, "frequency", 5.0))

	p.Update(0.1, nil)

	// phase = 5 * 20 * 0.1 = 10
	want := geom.V(20, 30*math.Sin(10))
	approxVec(t, "position", p.Position(), want, 1e-9)
	if p.DistanceTraveled() != 20 {
		t.Errorf("distance = %f, want 20 along the base path", p.DistanceTraveled())
	}

	run(p, 17, 0.1, nil)
	if p.Active() {
		t.Errorf("still active after base path covered range (distance %f)", p.DistanceTraveled())
	}
}

func TestBoomerang_RoundTrip(t *testing.T) {
	owner := newOwner(0, 0)
	p := New(owner, geom.V(0, 0), geom.V(1, 0), 15, 100, 100, "disk", cfg("type", "BOOMERANG"))
	outward := p.Direction()

	run(p, 9, 0.1, nil)
	if p.motion.(*boomerangMotion).returning {
		t.Fatal("turned around before reaching range")
	}

	p.Update(0.1, nil)
	m := p.motion.(*boomerangMotion)
	if !m.returning {
		t.Fatalf("not returning at 1.0s (distance %f)", p.DistanceTraveled())
	}
	if p.Direction() != outward.Neg() {
		t.Errorf("return direction = %v, want exact negation %v", p.Direction(), outward.Neg())
	}
	if p.DistanceTraveled() != 0 {
		t.Errorf("distance not reset on turn: %f", p.DistanceTraveled())
	}

	run(p, 5, 0.1, nil)
	if !p.Active() {
		t.Fatal("deactivated halfway back")
	}
	run(p, 5, 0.1, nil)
	if p.Active() {
		t.Errorf("still active after reaching the owner at %v", p.Position())
	}
}

func TestBoomerang_SafetyBoundWhenOwnerMoved(t *testing.T) {
	owner := newOwner(1000, 1000)
	p := New(owner, geom.V(0, 0), geom.V(1, 0), 15, 100, 100, "disk", cfg("type", "BOOMERANG"))

	run(p, 24, 0.1, nil)
	if !p.Active() {
		t.Fatal("deactivated before 1.5x range on the return leg")
	}
	p.Update(0.1, nil)
	if p.Active() {
		t.Errorf("still active after 1.5x range on the return leg (distance %f)", p.DistanceTraveled())
	}
}

func TestBoomerang_OwnerGoneOnReturn(t *testing.T) {
	owner := newOwner(0, 0)
	p := New(owner, geom.V(0, 0), geom.V(1, 0), 15, 100, 100, "disk", cfg("type", "BOOMERANG"))
	run(p, 10, 0.1, nil)

	owner.alive = false
	p.Update(0.1, nil)
	if p.Active() {
		t.Error("boomerang kept flying back to a dead owner")
	}
}

func TestChain_Exhaustion(t *testing.T) {
	e1, e2, e3, e4 := newEnemy(1, 0, 0), newEnemy(2, 50, 0), newEnemy(3, 100, 0), newEnemy(4, 120, 0)
	all := enemyList(e1, e2, e3, e4)
	p := New(nil, geom.V(0, 0), geom.V(0, 1), 8, 350, 300, "spark", cfg("type", "CHAIN", "max_chains", 3))
	p.distance = 42

	p.OnHitEnemy(e1, all)
	if !p.Active() {
		t.Fatal("inactive after first of three chains")
	}
	approxVec(t, "direction after first hit", p.Direction(), geom.V(1, 0), 1e-6)
	if p.DistanceTraveled() != 0 {
		t.Errorf("distance not reset after chaining: %f", p.DistanceTraveled())
	}
	if p.CanHit(e1) {
		t.Error("chain may re-hit the enemy it just struck")
	}

	p.OnHitEnemy(e2, all)
	if !p.Active() {
		t.Fatal("inactive after second of three chains")
	}
	p.OnHitEnemy(e3, all)
	if p.Active() {
		t.Error("still active after max_chains hits")
	}
}

func TestChain_EndsWithoutNextTarget(t *testing.T) {
	near := newEnemy(1, 0, 0)
	far := newEnemy(2, 500, 0)
	dead := newEnemy(3, 30, 0)
	dead.active = false

	p := New(nil, geom.V(0, 0), geom.V(1, 0), 8, 350, 300, "spark",
		cfg("type", "CHAIN", "max_chains", 3, "chain_radius", 150.0))
	p.OnHitEnemy(near, enemyList(near, far, dead))
	if p.Active() {
		t.Error("chain continued with no eligible enemy in radius")
	}
}

func TestPiercing_Idempotence(t *testing.T) {
	e1, e2, e3 := newEnemy(1, 0, 0), newEnemy(2, 0, 0), newEnemy(3, 0, 0)
	all := enemyList(e1, e2, e3)
	p := New(nil, geom.V(0, 0), geom.V(1, 0), 12, 300, 400, "pierce", cfg("type", "PIERCING", "pierce_count", 3))

	p.OnHitEnemy(e1, all)
	p.OnHitEnemy(e1, all)
	if got := p.motion.(*pierceMotion).hits; got != 1 {
		t.Errorf("hits = %d after repeating one enemy, want 1", got)
	}
	if p.CanHit(e1) {
		t.Error("CanHit true for an already pierced enemy")
	}

	p.OnHitEnemy(e2, all)
	if !p.Active() {
		t.Fatal("inactive after two distinct enemies")
	}
	p.OnHitEnemy(e3, all)
	if p.Active() {
		t.Error("still active after three distinct enemies")
	}
}

func TestDefaultHit_Deactivates(t *testing.T) {
	for _, kind := range []string{"STRAIGHT", "HOMING", "SINE_WAVE", "BOOMERANG", "SPIRAL", "GROWING_ORB", "ORBITING"} {
		p := New(newOwner(0, 0), geom.V(0, 0), geom.V(1, 0), 1, 100, 100, "k", cfg("type", kind))
		p.OnHitEnemy(newEnemy(1, 0, 0), nil)
		if p.Active() {
			t.Errorf("%s survived its first hit", kind)
		}
	}
}

func TestForking_FanOut(t *testing.T) {
	p := New(nil, geom.V(0, 0), geom.V(1, 0), 10, 100, 1000, "fork", cfg(
		"type", "FORKING",
		"fork_count", 3,
		"fork_angle_spread", 60.0,
		"fork_condition_type", "DISTANCE",
		"fork_condition_value", 150.0,
		"child_spell_id", "frag",
	))

	if reqs := run(p, 14, 0.1, nil); len(reqs) != 0 {
		t.Fatalf("forked early with %d requests", len(reqs))
	}
	reqs := p.Update(0.1, nil)
	if p.Active() {
		t.Error("parent still active after forking")
	}
	if len(reqs) != 3 {
		t.Fatalf("got %d spawn requests, want 3", len(reqs))
	}

	for i, wantDeg := range []float64{-30, 0, 30} {
		gotDeg := reqs[i].Direction.Angle() * 180 / math.Pi
		if math.Abs(gotDeg-wantDeg) > 1e-9 {
			t.Errorf("child %d heading = %f°, want %f°", i, gotDeg, wantDeg)
		}
		if reqs[i].SpellID != "frag" {
			t.Errorf("child %d spell = %q, want frag", i, reqs[i].SpellID)
		}
		approxVec(t, "child start", reqs[i].Start, p.Position(), 0)
	}

	if more := p.Update(0.1, nil); more != nil {
		t.Errorf("forked twice: %d more requests", len(more))
	}
}

func TestForking_SingleChildGoesStraight(t *testing.T) {
	p := New(nil, geom.V(0, 0), geom.V(0, 1), 10, 100, 1000, "fork", cfg(
		"type", "FORKING", "fork_count", 1, "fork_angle_spread", 90.0,
		"fork_condition_value", 10.0, "child_spell_id", "frag",
	))
	reqs := p.Update(0.1, nil)
	if len(reqs) != 1 {
		t.Fatalf("got %d requests, want 1", len(reqs))
	}
	approxVec(t, "child direction", reqs[0].Direction, geom.V(0, 1), 1e-12)
}

func TestForking_NoChildExpiresByRange(t *testing.T) {
	p := New(nil, geom.V(0, 0), geom.V(1, 0), 10, 100, 200, "fork", cfg(
		"type", "FORKING", "fork_condition_value", 50.0,
	))
	if reqs := run(p, 20, 0.1, nil); len(reqs) != 0 {
		t.Errorf("forked without a child spell: %d requests", len(reqs))
	}
	if p.Active() {
		t.Error("still active past range")
	}
}

func TestForking_OnFirstHit(t *testing.T) {
	p := New(nil, geom.V(0, 0), geom.V(1, 0), 10, 100, 1000, "fork", cfg(
		"type", "FORKING", "fork_condition_type", "ON_FIRST_HIT", "fork_count", 2, "child_spell_id", "frag",
	))
	p.OnHitEnemy(newEnemy(1, 0, 0), nil)
	if !p.Active() {
		t.Fatal("ON_FIRST_HIT parent deactivated on the hit itself")
	}
	reqs := p.Update(0.01, nil)
	if len(reqs) != 2 || p.Active() {
		t.Errorf("after hit: %d requests, active=%v; want 2, false", len(reqs), p.Active())
	}
}

func TestForking_Timer(t *testing.T) {
	p := New(nil, geom.V(0, 0), geom.V(1, 0), 10, 10, 1000, "fork", cfg(
		"type", "FORKING", "fork_condition_type", "TIMER", "fork_condition_value", 0.5, "child_spell_id", "frag",
	))
	if reqs := run(p, 4, 0.1, nil); len(reqs) != 0 {
		t.Fatal("timer fork fired early")
	}
	if reqs := p.Update(0.1, nil); len(reqs) != 3 {
		t.Errorf("timer fork produced %d requests, want 3", len(reqs))
	}
}

func TestForking_NonHitTriggerDeactivatesOnHit(t *testing.T) {
	p := New(nil, geom.V(0, 0), geom.V(1, 0), 10, 100, 1000, "fork", cfg(
		"type", "FORKING", "child_spell_id", "frag",
	))
	p.OnHitEnemy(newEnemy(1, 0, 0), nil)
	if p.Active() {
		t.Error("DISTANCE forker survived a hit")
	}
}

func TestSpiral_ExpiresByDurationOnly(t *testing.T) {
	p := New(nil, geom.V(0, 0), geom.V(1, 0), 7, 0, 0, "spiral", cfg(
		"type", "SPIRAL", "duration", 1.5, "initial_radius", 5.0,
		"expansion_speed", 40.0, "rotation_speed", 90.0, "base_travel_speed", 100.0,
	))

	p.Update(1.0, nil)
	// center (100, 0), radius 45, angle 90°
	approxVec(t, "position", p.Position(), geom.V(100, 45), 1e-9)

	p.Update(0.49, nil)
	if !p.Active() {
		t.Fatal("spiral expired before its duration despite range 0")
	}
	p.Update(0.01, nil)
	if p.Active() {
		t.Error("spiral still active after its duration")
	}
}

func TestGrowingOrb_RadiusTracksGrowth(t *testing.T) {
	p := New(nil, geom.V(0, 0), geom.V(1, 0), 15, 100, 500, "orb", cfg(
		"type", "GROWING_ORB", "initial_radius", 5.0, "max_radius", 12.0,
		"growth_rate", 10.0, "growth_duration", 2.5,
	))
	if p.Radius() != 5 {
		t.Fatalf("initial radius = %f, want 5", p.Radius())
	}

	p.Update(0.5, nil)
	if math.Abs(p.Radius()-10) > tol {
		t.Errorf("radius = %f, want 10", p.Radius())
	}
	if b := p.Bounds(); math.Abs(b.W-20) > tol {
		t.Errorf("bounds width = %f, want 20", b.W)
	}

	p.Update(0.5, nil)
	if p.Radius() != 12 {
		t.Errorf("radius = %f, want clamp at 12", p.Radius())
	}
}

func TestGrowingOrb_StopsAfterGrowthDuration(t *testing.T) {
	p := New(nil, geom.V(0, 0), geom.V(1, 0), 15, 10, 500, "orb", cfg(
		"type", "GROWING_ORB", "initial_radius", 5.0, "max_radius", 100.0,
		"growth_rate", 10.0, "growth_duration", 1.0,
	))
	run(p, 30, 0.1, nil)
	if p.Radius() > 15+tol {
		t.Errorf("radius = %f, kept growing past growth_duration", p.Radius())
	}
}

func TestGroundAOE_DamagesOnce(t *testing.T) {
	ctrl := gomock.NewController(t)

	inside := mocks.NewMockEnemy(ctrl)
	inside.EXPECT().ID().Return(types.EntityID(1)).AnyTimes()
	inside.EXPECT().Active().Return(true).AnyTimes()
	inside.EXPECT().Hitbox().Return(geom.RectAround(geom.V(210, 0), 20, 20)).AnyTimes()
	inside.EXPECT().TakeDamage(30.0).Times(1)

	outside := mocks.NewMockEnemy(ctrl)
	outside.EXPECT().ID().Return(types.EntityID(2)).AnyTimes()
	outside.EXPECT().Active().Return(true).AnyTimes()
	outside.EXPECT().Hitbox().Return(geom.RectAround(geom.V(400, 0), 20, 20)).AnyTimes()

	m := NewManager(nil, nil)
	p := m.Spawn(nil, geom.V(0, 0), geom.V(200, 0), geom.V(1, 0), 0, 0, 1000, "meteor", cfg(
		"type", "GROUND_AOE", "travel_speed", 500.0, "aoe_radius", 80.0, "aoe_damage", 30.0,
		"aoe_duration", 0.2, "delay_after_arrival", 0.3,
	))
	enemies := []Enemy{inside, outside}

	detonations := 0
	for range 120 {
		p.Update(1.0/60, enemies)
		if _, ok := p.TakeDetonation(); ok {
			detonations++
		}
	}
	if p.Active() {
		t.Error("AOE still active after delay and explosion window")
	}
	if detonations != 1 {
		t.Errorf("detonations = %d, want 1", detonations)
	}
}

func TestGroundAOE_StateMachine(t *testing.T) {
	p := New(nil, geom.V(0, 0), geom.V(1, 0), 0, 0, 1000, "meteor", cfg(
		"type", "GROUND_AOE", "raw_target_x", 100.0, "raw_target_y", 0.0,
		"travel_speed", 500.0, "delay_after_arrival", 0.3, "aoe_duration", 0.2,
		"aoe_radius", 80.0, "marker_radius", 6.0,
	))
	state := func() AoeState {
		s, _ := p.AoeState()
		return s
	}

	if state() != AoeTraveling || p.Radius() != 6 {
		t.Fatalf("start: state %v radius %f", state(), p.Radius())
	}
	p.Update(0.1, nil) // 50px
	if state() != AoeTraveling {
		t.Fatalf("arrived too early at %v", p.Position())
	}
	p.Update(0.1, nil) // 100px, within one step
	if state() != AoeArrived || p.Position() != geom.V(100, 0) {
		t.Fatalf("state %v at %v, want arrived at (100, 0)", state(), p.Position())
	}

	run(p, 3, 0.1, nil)
	if state() != AoeExploding || p.Radius() != 80 {
		t.Fatalf("state %v radius %f, want exploding with aoe radius", state(), p.Radius())
	}
	run(p, 2, 0.1, nil)
	if p.Active() {
		t.Error("still active after aoe_duration")
	}
}

func TestGroundAOE_TargetAtStartSkipsTravel(t *testing.T) {
	p := New(nil, geom.V(5, 5), geom.V(1, 0), 0, 0, 1000, "meteor", cfg(
		"type", "GROUND_AOE", "raw_target_x", 5.0, "raw_target_y", 5.0,
	))
	if s, _ := p.AoeState(); s != AoeArrived {
		t.Errorf("state = %v, want arrived", s)
	}
	if p.Collides() {
		t.Error("ground AOE takes part in direct collision")
	}
	enemy := newEnemy(1, 5, 5)
	p.OnHitEnemy(enemy, nil)
	if !p.Active() {
		t.Error("OnHitEnemy deactivated a ground AOE")
	}
}
