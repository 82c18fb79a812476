// Package store provides the persistence boundary of the tracker: an abstract
// key-value capability plus the record adapter that serializes user-scoped
// collections through it. The capability is injected everywhere it is needed
// (in-memory for tests, database-backed in production) so the aggregation core
// never touches storage concerns.
package store

import "errors"

// ErrKeyNotFound is returned by Get when no value has been written for the
// namespace/key pair.
var ErrKeyNotFound = errors.New("key not found")

// KeyValueStore is the minimal storage capability the tracker depends on.
// Keys are scoped by a namespace (the owning user's identity, or a reserved
// name such as "auth") so distinct users never observe each other's data.
// Set overwrites atomically; there is no partial-write state.
type KeyValueStore interface {
	Get(namespace, key string) ([]byte, error)
	Set(namespace, key string, value []byte) error
	Delete(namespace, key string) error
}
