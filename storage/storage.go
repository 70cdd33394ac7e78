// Package storage holds the in-memory menu and order stores. All state
// lives in process memory and is rebuilt from seed data on every start;
// every mutating operation is serialized behind the store's mutex.
package storage

import "errors"

// ErrNotFound is returned when an operation targets an id that does not
// exist in the store.
var ErrNotFound = errors.New("not found")
