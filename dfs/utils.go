// SPDX-License-Identifier: MIT
package dfs

// IndexOf returns the first index of val in s, or -1 if not found.
// Time Complexity: O(n) where n = len(s).
func IndexOf[V comparable](s []V, val V) int {
	for i, x := range s {
		if x == val {
			return i
		}
	}

	return -1
}

// extend returns a fresh slice holding path followed by v.
// The input is never modified, so sibling branches cannot observe each other.
func extend[V comparable](path []V, v V) []V {
	out := make([]V, len(path)+1)
	copy(out, path)
	out[len(path)] = v

	return out
}
