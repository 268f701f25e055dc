package ecm

import "reflect"

// typeFor mirrors reflect.TypeFor, which is unavailable on the Go toolchain
// this module is built with.
func typeFor[T any]() reflect.Type {
	return reflect.TypeOf((*T)(nil)).Elem()
}

// componentID is the process-stable small integer a component type is
// assigned the first time it is seen by a given Manager, replacing the
// source's typeid(T).hash_code() fingerprint with something cheap enough to
// use as an intmap key.
type componentID uint32

type componentMeta struct {
	id   componentID
	name string
	tags Tag
}

// componentIDFor returns T's componentID within m, registering it with no
// tags if this is the first time T has been seen. Invariant 1 requires that
// a set (and therefore a componentID) spring into existence on first use,
// not only on an explicit RegisterComponent call.
func componentIDFor[T any](m *Manager) componentID {
	typ := typeFor[T]()
	if id, ok := m.typeIDs[typ]; ok {
		return id
	}
	return m.registerType(typ, 0)
}

func (m *Manager) registerType(typ reflect.Type, tags Tag) componentID {
	if id, ok := m.typeIDs[typ]; ok {
		m.metas[id].tags |= tags
		return id
	}

	id := componentID(len(m.metas))
	m.typeIDs[typ] = id
	m.metas = append(m.metas, componentMeta{id: id, name: typ.String(), tags: tags})
	return id
}

// RegisterComponent declares T's tag set once, ahead of first use. It
// panics if Stack and NoStack are both given, since the source's
// compile-time conflict check has no Go equivalent and registration is the
// earliest point this can be caught.
func RegisterComponent[T any](m *Manager, tags ...Tag) {
	var combined Tag
	for _, t := range tags {
		combined |= t
	}

	ASSERT(!(combined.isStacked() && combined.isNotStacked()),
		"conflicting Stack/NoStack tags on %s", typeFor[T]().String())

	typ := typeFor[T]()
	id := m.registerType(typ, combined)
	indexTags(m, id, combined)
}

// Tags returns T's registered tag set within m. Unregistered types report
// zero (no tags).
func Tags[T any](m *Manager) Tag {
	typ := typeFor[T]()
	id, ok := m.typeIDs[typ]
	if !ok {
		return 0
	}
	return m.metas[id].tags
}

// ComponentName returns the debug-friendly name for T: the string form of
// its reflect.Type, the same name a Manager records when it registers T.
func ComponentName[T any]() string {
	return typeFor[T]().String()
}
