package system_test

import (
	"testing"

	"go-magic-survivor/internal/component"
	"go-magic-survivor/internal/config"
	"go-magic-survivor/internal/defs"
	"go-magic-survivor/internal/entity"
	"go-magic-survivor/internal/event"
	"go-magic-survivor/internal/types"
)

const testSpellsJSON = `{
	"bolt": {"damage": 10, "speed": 100, "range": 1000, "cooldown": 1,
		"trajectory_properties": {"type": "STRAIGHT"}},
	"auto": {"damage": 5, "speed": 100, "range": 1000, "cooldown": 0.5,
		"trajectory_properties": {"type": "STRAIGHT"}},
	"boom": {"damage": 0, "speed": 100, "range": 1000, "cooldown": 3,
		"trajectory_properties": {"type": "GROUND_AOE", "travel_speed": 1000,
			"aoe_radius": 50, "aoe_damage": 30, "delay_after_arrival": 0, "aoe_duration": 0.2}}
}`

func testSpells(t *testing.T) defs.SpellLibrary {
	t.Helper()
	lib, err := defs.ParseSpellLibrary([]byte(testSpellsJSON))
	if err != nil {
		t.Fatalf("ParseSpellLibrary: %v", err)
	}
	return lib
}

// recorder копит события нужных типов в порядке рассылки.
type recorder struct {
	events []event.Event
}

func (r *recorder) OnEvent(e event.Event) { r.events = append(r.events, e) }

func (r *recorder) ofType(t event.EventType) []event.Event {
	var out []event.Event
	for _, e := range r.events {
		if e.Type == t {
			out = append(out, e)
		}
	}
	return out
}

func listen(d *event.Dispatcher, eventTypes ...event.EventType) *recorder {
	r := &recorder{}
	for _, t := range eventTypes {
		d.Subscribe(t, r)
	}
	return r
}

func addPlayer(ecs *entity.ECS, x, y float64) types.EntityID {
	id := ecs.NewEntity()
	ecs.PlayerID = id
	ecs.Positions[id] = &component.Position{X: x, Y: y}
	ecs.Velocities[id] = &component.Velocity{Speed: config.PlayerSpeed}
	ecs.Colliders[id] = &component.Collider{Radius: config.PlayerRadius}
	ecs.Healths[id] = &component.Health{Value: config.PlayerHealth, Max: config.PlayerHealth}
	ecs.Inputs[id] = &component.PlayerInput{}
	ecs.PlayerState[id] = &component.PlayerStateComponent{
		Level:         1,
		XPToNextLevel: config.CalculateXPForNextLevel(1),
	}
	return id
}

func addEnemy(ecs *entity.ECS, x, y float64, hp int) types.EntityID {
	id := ecs.NewEntity()
	ecs.Positions[id] = &component.Position{X: x, Y: y}
	ecs.Velocities[id] = &component.Velocity{Speed: config.EnemySpeed}
	ecs.Colliders[id] = &component.Collider{Radius: config.EnemyRadius}
	ecs.Healths[id] = &component.Health{Value: hp, Max: hp}
	ecs.Enemies[id] = &component.Enemy{
		DefID:         "goblin_grunt",
		ContactDamage: config.EnemyContactDamage,
		XP:            10,
	}
	return id
}
