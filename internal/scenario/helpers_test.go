// SPDX-License-Identifier: MIT
package scenario_test

import "sync"

// syncCounter serializes map increments from concurrent hooks.
type syncCounter struct {
	mu sync.Mutex
}

func (c *syncCounter) inc(m map[string]int, key string) {
	c.mu.Lock()
	m[key]++
	c.mu.Unlock()
}
