// SPDX-License-Identifier: MIT
// Package: lwwgraph/builder
//
// errors.go: sentinel errors for the builder package.
//
// Error policy:
//   - Only sentinel variables are exposed; callers branch with errors.Is.
//   - Implementations attach context with %w.

package builder

import "errors"

// ErrTooFewVertices indicates that a size parameter is below the constructor's minimum.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrInvalidProbability indicates a probability outside [0,1].
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrConstructFailed indicates a construction that could not be carried out,
// such as a nil constructor, nil graph or nil IDFn.
var ErrConstructFailed = errors.New("builder: construction failed")
