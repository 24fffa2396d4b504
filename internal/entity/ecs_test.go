package entity

import (
	"slices"
	"testing"

	"go-magic-survivor/internal/component"
	"go-magic-survivor/internal/types"
)

func TestNewEntityIncrements(t *testing.T) {
	ecs := NewECS()
	a, b := ecs.NewEntity(), ecs.NewEntity()
	if a != 1 || b != 2 {
		t.Errorf("got ids %d, %d, want 1, 2", a, b)
	}
}

func TestEnemyIDsSorted(t *testing.T) {
	ecs := NewECS()
	for range 10 {
		ecs.NewEntity()
	}
	for _, id := range []types.EntityID{7, 3, 9, 1} {
		ecs.Enemies[id] = &component.Enemy{}
	}
	want := []types.EntityID{1, 3, 7, 9}
	if got := ecs.EnemyIDs(); !slices.Equal(got, want) {
		t.Errorf("EnemyIDs() = %v, want %v", got, want)
	}
}

func TestRemoveEntity(t *testing.T) {
	ecs := NewECS()
	id := ecs.NewEntity()
	ecs.PlayerID = id
	ecs.Positions[id] = &component.Position{X: 1}
	ecs.Healths[id] = &component.Health{Value: 5, Max: 5}
	ecs.PlayerState[id] = &component.PlayerStateComponent{Level: 1}

	if !ecs.PlayerAlive() {
		t.Fatal("player should be alive")
	}
	ecs.RemoveEntity(id)
	if _, ok := ecs.Positions[id]; ok {
		t.Error("position left behind")
	}
	if ecs.PlayerID != 0 {
		t.Errorf("PlayerID = %d, want 0", ecs.PlayerID)
	}
	if _, ok := ecs.PlayerPosition(); ok {
		t.Error("PlayerPosition found a removed player")
	}
}
