package ecm

// Add constructs and appends a component to id's bag. Id 0 is a no-op. If T
// is Unique, the call routes through the lock/ownership path. If the bag is
// absent it is created; if NoStack and already occupied, the add is
// refused with a logged warning; otherwise the value is appended and the
// registered transformation (if any) is installed on first insert.
func Add[T any](m *Manager, id EntityID, v T) {
	if id == NoEntity {
		return
	}

	if Tags[T](m).isUnique() {
		addUnique(m, id, v)
		return
	}

	addComponent(m, id, v)
}

func addUnique[T any](m *Manager, id EntityID, v T) {
	addComponent(m, id, v)
	standardSet[T](m).lock()
}

func addComponent[T any](m *Manager, id EntityID, v T) {
	cs := standardSet[T](m)
	ASSERT(!cs.isLocked(), "attempt to add to a locked unique component set for %s", ComponentName[T]())

	bag, existed := cs.Get(id)
	if !existed {
		if !cs.insert(id, v) {
			return
		}
		newBag, _ := cs.Get(id)
		installTransformer[T](m, id, newBag)
		return
	}

	if !Tags[T](m).shouldStack() && bag.Present() {
		logPolicyRejection(ComponentName[T](), id, "already contains a NoStack-tagged component; add refused")
		return
	}

	bag.Append(v)
	installTransformer[T](m, id, bag)
}

// Overwrite replaces id's entire bag with a single new instance. If the bag
// is absent, the overwrite is refused with a logged warning. If T is
// Unique, id must be the current owner or the call aborts via assertion.
func Overwrite[T any](m *Manager, id EntityID, v T) {
	if id == NoEntity {
		return
	}

	if Tags[T](m).isUnique() {
		overwriteUnique(m, id, v)
		return
	}

	overwriteComponent(m, id, v)
}

func overwriteUnique[T any](m *Manager, id EntityID, v T) {
	ownerID, _ := GetUnique[T](m)
	ASSERT(id == ownerID, "entity %d is not the owning entity for unique component %s", id, ComponentName[T]())

	overwriteComponent(m, id, v)
}

func overwriteComponent[T any](m *Manager, id EntityID, v T) {
	cs := standardSet[T](m)
	if _, existed := cs.Get(id); !existed {
		logPolicyRejection(ComponentName[T](), id, "component absent; overwrite refused")
		return
	}

	cs.overwrite(id, v)
	if bag, ok := cs.Get(id); ok {
		installTransformer[T](m, id, bag)
	}
}

// Get returns a reference to id's bag for T, lazily materializing a dummy
// EMPTY bag if none exists, so the returned reference is always valid. A
// Required type whose set does not exist in the manager (never created, or
// dropped by Clear, ClearByTag or Prune) aborts via assertion instead of
// silently handing back a dummy.
func Get[T any](m *Manager, id EntityID) *Bag[T] {
	if _, ok := m.sets.Get(componentIDFor[T](m)); !ok {
		ASSERT(!Tags[T](m).isRequired(), "%s is a required component with no entries", ComponentName[T]())
	}

	return standardSet[T](m).getOrCreate(id)
}

// GetUnique returns the (entityID, bag) pair for the lone occupied entry of
// a Unique type. If none exists, it returns (0, dummy). The scan does not
// stop at the first element so that later dummy entries are left for
// pruning rather than mistaken for a second owner.
func GetUnique[T any](m *Manager) (EntityID, *Bag[T]) {
	cs := standardSet[T](m)
	ASSERT(Tags[T](m).isUnique(), "%s is not a unique component", ComponentName[T]())

	var ownerID EntityID
	var ownerBag *Bag[T]
	cs.Each(func(id EntityID, bag *Bag[T]) bool {
		if ownerID == NoEntity {
			ownerID = id
			ownerBag = bag
		}
		return true
	})

	if ownerBag != nil {
		return ownerID, ownerBag
	}

	return NoEntity, Get[T](m, NoEntity)
}

// GetMany returns one bag reference per id, each created if missing.
func GetMany[T any](m *Manager, ids ...EntityID) []*Bag[T] {
	cs := standardSet[T](m)
	out := make([]*Bag[T], len(ids))
	for i, id := range ids {
		out[i] = cs.getOrCreate(id)
	}
	return out
}

// EntityIDs returns the entity-id list of T's set.
func EntityIDs[T any](m *Manager) []EntityID {
	return scopedSet[T](m).IDs()
}

// All returns the whole set for T, for iteration via ComponentSet.Each /
// EachWithEmpty.
func All[T any](m *Manager) *ComponentSet[T] {
	return scopedSet[T](m)
}

// Clear removes T's set entirely. A Required type logs a warning first but
// is cleared regardless.
func Clear[T any](m *Manager) {
	warnIfRequired[T](m, NoEntity, "Clear performed on a required component")
	id := componentIDFor[T](m)
	m.sets.Del(id)
}

// ClearByTag removes every set whose registered type carries tag, and
// forgets that tag's bucket in the tag index.
func ClearByTag(m *Manager, tag Tag) {
	bucket, ok := m.tagIndex.Get(tag)
	if !ok {
		return
	}

	for id := range bucket {
		m.sets.Del(id)
	}
	m.tagIndex.Del(tag)
}

// ClearByEntity erases id from T's set. A Required type logs a warning
// first but is cleared regardless.
func ClearByEntity[T any](m *Manager, id EntityID) {
	warnIfRequired[T](m, id, "Clear by entity performed on a required component")
	scopedSet[T](m).Erase(id)
}

func warnIfRequired[T any](m *Manager, id EntityID, reason string) {
	if !Tags[T](m).isRequired() {
		return
	}
	logPolicyRejection(ComponentName[T](), id, reason)
}

// Prune drops EMPTY bags from T's set; if every bag was empty, the whole
// set is dropped. A no-op if T has never been used.
func Prune[T any](m *Manager) {
	id := componentIDFor[T](m)
	raw, ok := m.sets.Get(id)
	if !ok {
		return
	}
	cs, ok := raw.(*ComponentSet[T])
	ASSERT(ok, "componentID %d is registered as %s but its stored set has a different value type", id, ComponentName[T]())

	var emptyIDs []EntityID
	cs.EachWithEmpty(func(eid EntityID) bool {
		bag, _ := cs.Get(eid)
		if bag == nil || !bag.Present() {
			emptyIDs = append(emptyIDs, eid)
		}
		return true
	})

	if len(emptyIDs) == cs.Size() {
		m.sets.Del(id)
		return
	}

	for _, eid := range emptyIDs {
		cs.Erase(eid)
	}

	if cs.Size() == 0 {
		m.sets.Del(id)
	}
}

// RegisterTransformation stores fn as T's per-entity transformation. Later
// Add and Overwrite calls install it (via setTransformer) on the bag they
// write to, and reads of that bag apply it lazily; bags not written since
// registration are read untransformed. It also tags T as Transform in the
// tag index.
func RegisterTransformation[T any](m *Manager, fn func(EntityID, T) T) {
	id := componentIDFor[T](m)
	m.metas[id].tags |= Transform
	indexTags(m, id, Transform)
	m.transformations[id] = fn
}

func installTransformer[T any](m *Manager, id EntityID, bag *Bag[T]) {
	cid := componentIDFor[T](m)
	raw, ok := m.transformations[cid]
	if !ok {
		return
	}

	fn, ok := raw.(func(EntityID, T) T)
	ASSERT(ok, "componentID %d's registered transformation has a different function type than %s", cid, ComponentName[T]())
	entity := id
	bag.setTransformer(func(v T) T { return fn(entity, v) })
}
