package ecm_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/gregoriB/ecm/ecm"
)

func TestRegisterTransformationAppliesOnReadOnly(t *testing.T) {
	m := newTestManager()
	e := m.CreateEntity()

	ecm.RegisterTransformation(m, func(_ ecm.EntityID, h Health) Health {
		h.Current -= 1
		return h
	})

	ecm.Add(m, e, Health{Current: 10, Max: 10})

	bag := ecm.Get[Health](m, e)
	v, ok := bag.Peek()
	assert.True(t, ok)
	assert.Equal(t, 9, v.Current)

	var seen []int
	bag.Inspect(func(h Health) { seen = append(seen, h.Current) })
	assert.Equal(t, []int{9}, seen)

	bag.Mutate(func(h *Health) {
		assert.Equal(t, 10, h.Current)
	})

	assert.True(t, ecm.Tags[Health](m).Has(ecm.Transform))
}

func TestRegisterTransformationIsKeyedByEntity(t *testing.T) {
	m := newTestManager()
	a := m.CreateEntity()
	b := m.CreateEntity()

	ecm.RegisterTransformation(m, func(id ecm.EntityID, h Health) Health {
		if id == a {
			h.Current = 100
		}
		return h
	})

	ecm.Add(m, a, Health{Current: 1, Max: 1})
	ecm.Add(m, b, Health{Current: 1, Max: 1})

	aBag := ecm.Get[Health](m, a)
	bBag := ecm.Get[Health](m, b)

	va, _ := aBag.Peek()
	vb, _ := bBag.Peek()
	assert.Equal(t, 100, va.Current)
	assert.Equal(t, 1, vb.Current)
}
