package ecm_test

import "github.com/gregoriB/ecm/ecm"

// Shared test component types used across the ecm_test package.

type Position struct {
	X, Y float32
}

type Velocity struct {
	DX, DY float32
}

type Health struct {
	Current, Max int
}

type PlayerComponent struct{}

type LeftAlienComponent struct {
	Step int
}

type CollisionCheckEvent struct {
	Bounds int
}

type DeathComponent struct{}

type PositionComponent struct {
	X, Y int
}

type MovementComponent struct {
	DX, DY int
}

type SpriteComponent struct {
	Frame int
}

type HealthEvent struct {
	Amount int
}

type FireEffect struct {
	ecm.EffectBase
	Stacks int
}

func newTestManager() *ecm.Manager {
	return ecm.NewDefaultManager()
}
