package ecm

import (
	"reflect"

	"github.com/kamstrup/intmap"
)

// Defaults mirror the source's constructor defaults exactly.
const (
	DefaultMinSetSize      = 100
	DefaultStandardSetSize = 10024
)

// Manager is the entity-component store. It owns every component set, the
// tag index, and the transformation registry; collaborators only ever hold
// a *Manager, never copy one by value.
type Manager struct {
	nextEntityID EntityID

	minSetSize      int
	standardSetSize int

	typeIDs map[reflect.Type]componentID
	metas   []componentMeta

	sets     *intmap.Map[componentID, erasedSet]
	setOrder []componentID
	tagIndex *intmap.Map[Tag, map[componentID]struct{}]

	transformations map[componentID]any
}

// NewManager constructs a Manager. minSetSize bounds sets created via
// entity-id-list and entity-scoped operations (getEntityIds, getAll,
// clearByEntity in the source); standardSetSize bounds sets created via
// ordinary Add/Get calls. Both are sparse-array capacities: an id at or
// beyond a set's bound is rejected at insert time, not grown.
func NewManager(minSetSize, standardSetSize int) *Manager {
	return &Manager{
		nextEntityID:    ReservedEntities,
		minSetSize:      minSetSize,
		standardSetSize: standardSetSize,
		typeIDs:         make(map[reflect.Type]componentID),
		sets:            intmap.New[componentID, erasedSet](32),
		tagIndex:        intmap.New[Tag, map[componentID]struct{}](8),
		transformations: make(map[componentID]any),
	}
}

// NewDefaultManager constructs a Manager using DefaultMinSetSize and
// DefaultStandardSetSize.
func NewDefaultManager() *Manager {
	return NewManager(DefaultMinSetSize, DefaultStandardSetSize)
}

// CreateEntity returns the next entity id. Ids strictly increase and are
// never reused.
func (m *Manager) CreateEntity() EntityID {
	id := m.nextEntityID
	m.nextEntityID++
	return id
}

// getOrCreateSet returns T's ComponentSet, creating it with the given
// sparse-array bound if this is the first time T has been used.
func getOrCreateSet[T any](m *Manager, maxSize int) *ComponentSet[T] {
	id := componentIDFor[T](m)

	if existing, ok := m.sets.Get(id); ok {
		cs, ok := existing.(*ComponentSet[T])
		ASSERT(ok, "componentID %d is registered as %s but its stored set has a different value type", id, ComponentName[T]())
		return cs
	}

	cs := newComponentSet[T](maxSize, m.standardSetSize)
	m.sets.Put(id, cs)
	m.setOrder = append(m.setOrder, id)

	indexTags(m, id, m.metas[id].tags)

	return cs
}

func indexTags(m *Manager, id componentID, tags Tag) {
	for _, tag := range allTags {
		if !tags.Has(tag) {
			continue
		}
		bucket, ok := m.tagIndex.Get(tag)
		if !ok {
			bucket = make(map[componentID]struct{})
			m.tagIndex.Put(tag, bucket)
		}
		bucket[id] = struct{}{}
	}
}

// standardSet returns T's set sized to the manager's standardSetSize,
// creating it on first use.
func standardSet[T any](m *Manager) *ComponentSet[T] {
	return getOrCreateSet[T](m, m.standardSetSize)
}

// scopedSet returns T's set sized to the manager's minSetSize, creating it
// on first use. Mirrors the source's use of m_minSetSize for
// getEntityIds/getAll/clearByEntity.
func scopedSet[T any](m *Manager) *ComponentSet[T] {
	return getOrCreateSet[T](m, m.minSetSize)
}

// ClearEntity erases id from every stored set, regardless of type.
func (m *Manager) ClearEntity(id EntityID) {
	for _, cid := range m.setOrder {
		set, ok := m.sets.Get(cid)
		if !ok {
			continue
		}
		set.Erase(id)
	}
}
