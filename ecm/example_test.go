package ecm_test

import (
	"fmt"

	"github.com/gregoriB/ecm/ecm"
)

// ExampleAdd demonstrates the default stacking behavior: repeated Add calls
// on a type with no NoStack tag append rather than replace.
func ExampleAdd() {
	m := ecm.NewDefaultManager()
	ecm.RegisterComponent[LeftAlienComponent](m, ecm.Stack)

	alien := m.CreateEntity()
	ecm.Add(m, alien, LeftAlienComponent{Step: 1})
	ecm.Add(m, alien, LeftAlienComponent{Step: 2})

	bag := ecm.Get[LeftAlienComponent](m, alien)
	bag.Inspect(func(c LeftAlienComponent) {
		fmt.Printf("step %d\n", c.Step)
	})

	// Output:
	// step 1
	// step 2
}

// ExampleGet demonstrates that Get never returns a nil reference, even for
// an entity that has never had the component added.
func ExampleGet() {
	m := ecm.NewDefaultManager()
	ghost := m.CreateEntity()

	bag := ecm.Get[Position](m, ghost)
	fmt.Println("present:", bag.Present())
	fmt.Println("len:", bag.Len())

	// Output:
	// present: false
	// len: 0
}

// ExampleGetUnique demonstrates that GetUnique returns the lone owner of a
// Unique component together with its occupied bag.
func ExampleGetUnique() {
	m := ecm.NewDefaultManager()
	ecm.RegisterComponent[PlayerComponent](m, ecm.Unique)

	first := m.CreateEntity()
	ecm.Add(m, first, PlayerComponent{})

	owner, bag := ecm.GetUnique[PlayerComponent](m)
	fmt.Println("owner == first:", owner == first)
	fmt.Println("present:", bag.Present())

	// Output:
	// owner == first: true
	// present: true
}

// ExamplePrune demonstrates sweeping dummy bags created by Get calls on
// entities that were never actually given the component.
func ExamplePrune() {
	m := ecm.NewDefaultManager()
	e := m.CreateEntity()

	_ = ecm.Get[DeathComponent](m, e)
	fmt.Println("before prune:", len(ecm.EntityIDs[DeathComponent](m)))

	ecm.Prune[DeathComponent](m)
	fmt.Println("after prune:", len(ecm.EntityIDs[DeathComponent](m)))

	// Output:
	// before prune: 1
	// after prune: 0
}
