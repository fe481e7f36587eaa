// SPDX-License-Identifier: MIT
// Package builder produces deterministic fixtures for LWW graphs: classic
// topologies applied through AddEdge, and seeded random operation scripts
// replayed with explicit timestamps.
//
// Vertices are generated from zero-based indices by an IDFn, so the same
// constructors serve int-keyed test graphs and string-keyed CLI replicas.
//
// Constructors:
//
//	Path(n)               0→1→…→n-1                    n ≥ 2
//	Cycle(n)              Path(n) plus n-1→0           n ≥ 3
//	Star(n)               0→i for i in 1..n-1          n ≥ 2
//	Complete(n)           i→j for every i ≠ j          n ≥ 1
//	RandomSparse(n,p,s)   each i→j (i ≠ j) with prob p n ≥ 1, 0 ≤ p ≤ 1
//	Replay(script)        applies a Script step by step
//
// Determinism: same inputs, seed and constructor order ⇒ identical sets once
// the graph clock is fixed (for example clock.NewManual).
package builder
