package store

import "errors"

// Sentinel errors for the persistence layer. Callers match them with
// errors.Is; underlying driver errors stay wrapped in the chain.
var (
	// ErrNotFound means the referenced identifier is absent from its table.
	ErrNotFound = errors.New("record not found")

	// ErrDuplicateKey means an insert collided with an existing identifier.
	// Use Put for insert-or-replace semantics instead.
	ErrDuplicateKey = errors.New("duplicate key")

	// ErrStoreWrite means the underlying persistence backend rejected a
	// write. It is propagated untouched; user-visible reporting is the
	// caller's responsibility.
	ErrStoreWrite = errors.New("store write failed")

	// ErrPartialCascade means a multi-table delete was interrupted between
	// steps and may have left orphaned child records. With a transactional
	// backend the cascade rolls back instead and this error never escapes.
	ErrPartialCascade = errors.New("cascade delete partially applied")
)
