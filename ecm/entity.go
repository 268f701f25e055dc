package ecm

// EntityID identifies an entity. It is a monotonically increasing,
// never-reused integer; zero means "no entity", and Add and Overwrite
// ignore it.
type EntityID uint32

// NoEntity is the sentinel id meaning "no entity".
const NoEntity EntityID = 0

// ReservedEntities is the first id handed out by CreateEntity. Ids below
// this value (currently only NoEntity itself) are reserved sentinels.
const ReservedEntities EntityID = 1
