package lives

import "errors"

// ErrWorldUnavailable is returned when persistent storage is requested for a
// world the host has not made available yet.
var ErrWorldUnavailable = errors.New("lives: world is not available")

// Region is a durable key/value region partitioned by save slot. Each world
// owns one slot and stores its records under fixed keys.
type Region interface {
	// Get returns the value stored under key in slot. The boolean is false if
	// no value is stored.
	Get(slot, key string) ([]byte, bool, error)

	// Put stores value under key in slot, replacing any previous value.
	Put(slot, key string, value []byte) error

	// Close releases the underlying storage.
	Close() error
}
