// SPDX-License-Identifier: MIT
// Package snapshot reads and writes replica state files.
//
// A file wraps one replica's core.State in a versioned envelope:
//
//	{"version": 1, "replica": "a", "state": {"vertices_added": [...], ...}}
//
// Two encodings are supported: indented JSON for inspection and msgpack for
// compact exchange. The encoding is chosen explicitly (Encode, Decode) or by
// file extension (Write, Read).
//
// Errors:
//
//	ErrUnknownFormat      - format name or extension not recognized.
//	ErrUnsupportedVersion - envelope version other than Version.
//
// Decoded states are validated with core.State.Validate; failures wrap
// core.ErrDanglingEdge.
package snapshot
