// SPDX-License-Identifier: MIT
package builder

import "strconv"

// IDFn generates a vertex identifier from its zero-based index.
// It must be pure: the same idx always yields the same identifier.
type IDFn[V comparable] func(idx int) V

// IntIDFn returns idx unchanged.
func IntIDFn(idx int) int { return idx }

// DefaultIDFn returns the decimal string of idx, e.g. 0→"0", 42→"42".
func DefaultIDFn(idx int) string { return strconv.Itoa(idx) }

// PrefixIDFn returns an IDFn producing prefix+decimal(idx), e.g. "v"→"v0","v1",….
// An empty prefix behaves like DefaultIDFn.
func PrefixIDFn(prefix string) IDFn[string] {
	return func(idx int) string { return prefix + strconv.Itoa(idx) }
}
