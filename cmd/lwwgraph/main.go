// SPDX-License-Identifier: MIT
// Command lwwgraph replays replica scenarios and works with snapshot files.
//
// Usage:
//
//	lwwgraph run scenario.yaml [--export-dir DIR] [--format json|msgpack]
//	lwwgraph merge OUT IN...
//	lwwgraph paths SNAPSHOT FROM TO [--max-depth N] [--max-paths N]
//
// Global flags: --log-level, --log-format, --metrics.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := execute(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, "lwwgraph:", err)
		os.Exit(1)
	}
}
