// SPDX-License-Identifier: MIT
package bfs_test

import (
	"fmt"

	"github.com/katalvlaran/lwwgraph/bfs"
)

// ExampleWalk demonstrates BFS layering and path reconstruction.
func ExampleWalk() {
	routes := adjList{
		"hub":   {"north", "south"},
		"north": {"peak"},
		"south": {"bay", "peak"},
	}

	res, err := bfs.Walk[string](routes, "hub")
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	path, _ := res.PathTo("bay")

	fmt.Println(res.Order)
	fmt.Println(path, res.Depth["bay"])
	// Output:
	// [hub north south peak bay]
	// [hub south bay] 2
}
