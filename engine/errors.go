package engine

import "errors"

// Recoverable registration conflicts are returned to the immediate caller,
// never propagated as faults. Lookup misses are (value, ok) returns instead
// of errors. Index corruption and double-release are invariant violations and
// escalate through the logger's DPanic path: fatal under a development
// logger, logged-and-skipped under a production one.
var (
	// ErrDuplicateID is returned by Manager.AddEntity when the id collides
	// with a live or pending entity. The caller decides whether to retry
	// with a fresh id.
	ErrDuplicateID = errors.New("entity id already registered")

	// ErrDuplicateComponentKind is returned by Entity.AddComponent when the
	// entity already holds a component of that kind. The entity is unchanged.
	ErrDuplicateComponentKind = errors.New("component kind already attached")
)
