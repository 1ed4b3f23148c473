// Package repositories implements persistence over MongoDB collections.
package repositories

import "errors"

// ErrNotFound is returned when a lookup matches no document. Callers
// should test with errors.Is rather than comparing driver errors.
var ErrNotFound = errors.New("repositories: not found")
