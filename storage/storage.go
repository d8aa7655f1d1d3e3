// Package storage provides the durable key-value stores backing user
// preferences.
package storage

import "errors"

// ErrClosed is returned by operations on a closed store.
var ErrClosed = errors.New("storage closed")

// Storage is a string key-value store that survives process restarts.
type Storage interface {
	// Get returns the value stored under key. ok is false when the key is
	// absent.
	Get(key string) (value string, ok bool, err error)

	// Set stores value under key, replacing any previous value.
	Set(key, value string) error

	// Close releases the store.
	Close() error
}
