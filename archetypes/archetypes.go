package archetypes

import (
	"github.com/automoto/skeld/components"
	cfg "github.com/automoto/skeld/config"
	"github.com/automoto/skeld/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	Simulation = newArchetype(
		components.Simulation,
	)
	Player = newArchetype(
		tags.Player,
		components.Player,
		components.Body,
	)
	Wall = newArchetype(
		tags.Wall,
		components.Body,
	)
	Door = newArchetype(
		tags.Door,
		components.Door,
		components.Body,
	)
	Table = newArchetype(
		tags.Table,
		components.Body,
	)
	Crate = newArchetype(
		tags.Crate,
		components.Body,
	)
	Camera = newArchetype(
		components.Camera,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	e := ecs.World.Entry(ecs.Create(
		cfg.Default,
		append(a.components, cs...)...,
	))
	return e
}
