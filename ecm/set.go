package ecm

import "github.com/gregoriB/ecm/internal/sparse"

// erasedSet is the uniform base interface every concrete ComponentSet[T]
// satisfies, letting the manager operate on heterogeneous sets without
// knowing their value type. ClearEntity is built entirely on top of it.
type erasedSet interface {
	Erase(id EntityID) bool
	Size() int
	EachWithEmpty(fn func(id EntityID) bool)
}

// ComponentSet wraps a sparse.Set[Bag[T]], translating ecm.EntityID to the
// raw uint32 the sparse package uses and layering bag-awareness (the Each
// vs EachWithEmpty distinction) on top of the single unconditional
// iteration primitive the sparse set provides. Obtain one via All[T].
type ComponentSet[T any] struct {
	raw *sparse.Set[Bag[T]]
}

func newComponentSet[T any](maxSize, standardSetSize int) *ComponentSet[T] {
	return &ComponentSet[T]{raw: sparse.NewSet[Bag[T]](maxSize, standardSetSize)}
}

// Erase removes id from the set. Part of erasedSet.
func (s *ComponentSet[T]) Erase(id EntityID) bool {
	return s.raw.Erase(uint32(id))
}

// Size returns the number of present entries, occupied or dummy.
func (s *ComponentSet[T]) Size() int {
	return s.raw.Len()
}

// EachWithEmpty visits every dense slot, including dummy EMPTY bags; it is
// the sparse set's only true iteration primitive, reused by Prune as well
// as collaborators who need to see dummies directly.
func (s *ComponentSet[T]) EachWithEmpty(fn func(id EntityID) bool) {
	s.raw.Each(func(id uint32, _ *Bag[T]) bool {
		return fn(EntityID(id))
	})
}

// Each visits only occupied bags, skipping dummies — the ergonomic
// iteration surface systems use via All[T].
func (s *ComponentSet[T]) Each(fn func(id EntityID, bag *Bag[T]) bool) {
	s.raw.Each(func(id uint32, bag *Bag[T]) bool {
		if !bag.Present() {
			return true
		}
		return fn(EntityID(id), bag)
	})
}

// EachAll visits every dense slot including dummies, exposing the bag
// pointer (unlike EachWithEmpty, which only yields ids).
func (s *ComponentSet[T]) EachAll(fn func(id EntityID, bag *Bag[T]) bool) {
	s.raw.Each(func(id uint32, bag *Bag[T]) bool {
		return fn(EntityID(id), bag)
	})
}

// Get returns the bag for id without creating one.
func (s *ComponentSet[T]) Get(id EntityID) (*Bag[T], bool) {
	return s.raw.Get(uint32(id))
}

// getOrCreate returns the bag for id, lazily materializing a dummy EMPTY
// bag (unlocking and relocking around the insert if necessary) when
// absent.
func (s *ComponentSet[T]) getOrCreate(id EntityID) *Bag[T] {
	if b, ok := s.raw.Get(uint32(id)); ok {
		return b
	}

	wasLocked := s.raw.IsLocked()
	if wasLocked {
		s.raw.Unlock()
	}
	s.raw.Insert(uint32(id), emptyBag[T]())
	if wasLocked {
		s.raw.Lock()
	}

	b, _ := s.raw.Get(uint32(id))
	return b
}

// insert creates a new bag for id containing v. It fails if id is already
// present, locked, or out of bounds.
func (s *ComponentSet[T]) insert(id EntityID, v T) bool {
	bag := emptyBag[T]()
	bag.Append(v)
	return s.raw.Insert(uint32(id), bag)
}

// overwrite replaces (or creates) id's bag with a single new instance.
func (s *ComponentSet[T]) overwrite(id EntityID, v T) bool {
	bag := emptyBag[T]()
	bag.Append(v)
	return s.raw.Overwrite(uint32(id), bag)
}

func (s *ComponentSet[T]) lock()          { s.raw.Lock() }
func (s *ComponentSet[T]) unlock()        { s.raw.Unlock() }
func (s *ComponentSet[T]) isLocked() bool { return s.raw.IsLocked() }

// IDs returns the entity ids present in the set, dummy or occupied.
func (s *ComponentSet[T]) IDs() []EntityID {
	raw := s.raw.IDs()
	out := make([]EntityID, len(raw))
	for i, v := range raw {
		out[i] = EntityID(v)
	}
	return out
}
