// Package util is used for general utility functions such as tolerant lookups into decoded JSON.
package util

import (
	"strconv"
	"strings"
)

// ValueByKey returns the value stored at key in data. A key containing dots is always resolved
// one segment at a time: objects are indexed by name and arrays by a decimal position.
func ValueByKey(data map[string]any, key string) (any, bool) {
	if !strings.Contains(key, ".") {
		v, ok := data[key]

		return v, ok
	}

	var current any = data
	for _, segment := range strings.Split(key, ".") {
		var ok bool
		if current, ok = child(current, segment); !ok {
			return nil, false
		}
	}

	return current, true
}

func child(node any, segment string) (any, bool) {
	switch n := node.(type) {
	case map[string]any:
		v, ok := n[segment]

		return v, ok
	case []any:
		i, err := strconv.Atoi(segment)
		if err != nil || i < 0 || i >= len(n) {
			return nil, false
		}

		return n[i], true
	default:
		return nil, false
	}
}
