// SPDX-License-Identifier: MIT
// Package scenario replays multi-replica LWW graph sessions described in YAML.
//
// A scenario declares replicas with their local operations, an ordered list
// of sync steps (one replica merging another's snapshot), and queries that
// are evaluated once every sync has run:
//
//	clock: lamport
//	replicas:
//	  - name: a
//	    ops:
//	      - {op: add_edge, from: "1", to: "2", at: 10}
//	  - name: b
//	    ops:
//	      - {op: topology, topology: path, n: 3, prefix: "b"}
//	sync:
//	  - {from: b, to: a}
//	  - {all: true}
//	queries:
//	  - {replica: a, kind: paths, from: "1", to: "2"}
//
// Replicas apply their operations concurrently; sync steps and queries run
// in declaration order.
package scenario
