package ecm_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/gregoriB/ecm/ecm"
)

func TestGather2ReturnsBagsForBothTypes(t *testing.T) {
	m := newTestManager()
	e := m.CreateEntity()

	ecm.Add(m, e, Position{X: 1, Y: 2})
	ecm.Add(m, e, Velocity{DX: 3, DY: 4})

	pos, vel := ecm.Gather2[Position, Velocity](m, e)
	assert.True(t, pos.Present())
	assert.True(t, vel.Present())

	p, _ := pos.Peek()
	v, _ := vel.Peek()
	assert.Equal(t, Position{X: 1, Y: 2}, p)
	assert.Equal(t, Velocity{DX: 3, DY: 4}, v)
}

func TestGather3LeavesMissingTypeAsDummy(t *testing.T) {
	m := newTestManager()
	e := m.CreateEntity()

	ecm.Add(m, e, Position{X: 1, Y: 1})

	pos, vel, health := ecm.Gather3[Position, Velocity, Health](m, e)
	assert.True(t, pos.Present())
	assert.False(t, vel.Present())
	assert.False(t, health.Present())
}

func TestGather4(t *testing.T) {
	m := newTestManager()
	e := m.CreateEntity()

	ecm.Add(m, e, PositionComponent{X: 1, Y: 1})
	ecm.Add(m, e, MovementComponent{DX: 1, DY: 0})
	ecm.Add(m, e, SpriteComponent{Frame: 2})
	ecm.Add(m, e, DeathComponent{})

	pos, mov, spr, death := ecm.Gather4[PositionComponent, MovementComponent, SpriteComponent, DeathComponent](m, e)
	assert.True(t, pos.Present())
	assert.True(t, mov.Present())
	assert.True(t, spr.Present())
	assert.True(t, death.Present())
}

func TestGatherAll2ReturnsWholeSets(t *testing.T) {
	m := newTestManager()
	a := m.CreateEntity()
	b := m.CreateEntity()

	ecm.Add(m, a, Position{X: 1, Y: 1})
	ecm.Add(m, b, Velocity{DX: 2, DY: 2})

	positions, velocities := ecm.GatherAll2[Position, Velocity](m)

	var posIDs, velIDs []ecm.EntityID
	positions.Each(func(id ecm.EntityID, _ *ecm.Bag[Position]) bool {
		posIDs = append(posIDs, id)
		return true
	})
	velocities.Each(func(id ecm.EntityID, _ *ecm.Bag[Velocity]) bool {
		velIDs = append(velIDs, id)
		return true
	})

	assert.ElementsMatch(t, []ecm.EntityID{a}, posIDs)
	assert.ElementsMatch(t, []ecm.EntityID{b}, velIDs)
}

func TestGatherAll3AndAll4(t *testing.T) {
	m := newTestManager()
	e := m.CreateEntity()

	ecm.Add(m, e, Position{X: 1, Y: 1})
	ecm.Add(m, e, Velocity{DX: 1, DY: 1})
	ecm.Add(m, e, Health{Current: 10, Max: 10})

	positions, velocities, healths := ecm.GatherAll3[Position, Velocity, Health](m)
	assert.Equal(t, 1, positions.Size())
	assert.Equal(t, 1, velocities.Size())
	assert.Equal(t, 1, healths.Size())

	ecm.Add(m, e, PlayerComponent{})
	positions2, velocities2, healths2, players := ecm.GatherAll4[Position, Velocity, Health, PlayerComponent](m)
	assert.Equal(t, 1, positions2.Size())
	assert.Equal(t, 1, velocities2.Size())
	assert.Equal(t, 1, healths2.Size())
	assert.Equal(t, 1, players.Size())
}
