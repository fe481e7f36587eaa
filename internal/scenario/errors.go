// SPDX-License-Identifier: MIT
package scenario

import "errors"

// Sentinel errors returned by Validate, Parse and Run.
var (
	// ErrNoReplicas indicates a scenario without replicas.
	ErrNoReplicas = errors.New("scenario: no replicas")

	// ErrDuplicateReplica indicates two replicas with the same name.
	ErrDuplicateReplica = errors.New("scenario: duplicate replica")

	// ErrUnknownReplica indicates a sync step or query naming an undeclared replica.
	ErrUnknownReplica = errors.New("scenario: unknown replica")

	// ErrUnknownOp indicates an unsupported operation or topology.
	ErrUnknownOp = errors.New("scenario: unknown op")

	// ErrUnknownQuery indicates an unsupported query kind.
	ErrUnknownQuery = errors.New("scenario: unknown query")

	// ErrUnknownClock indicates an unsupported clock name.
	ErrUnknownClock = errors.New("scenario: unknown clock")

	// ErrMissingField indicates an operation, sync step or query without a required field.
	ErrMissingField = errors.New("scenario: missing field")
)
