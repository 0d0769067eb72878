package listcache

import "fmt"

// Key represents a cache key as a string.
type Key string

// String returns the string representation of the Key.
func (k Key) String() string {
	return string(k)
}

// PageKey constructs the cache key for a pagination window. The ":" separator
// cannot appear in a formatted integer, so distinct (limit, offset) pairs
// always map to distinct keys.
func PageKey(limit, offset int) Key {
	return Key(fmt.Sprintf("%d:%d", limit, offset))
}
