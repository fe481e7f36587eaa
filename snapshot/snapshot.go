// SPDX-License-Identifier: MIT
// File: snapshot.go
// Role: Versioned envelope codec for replica state.

package snapshot

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/vmihailenco/msgpack/v5"

	"github.com/katalvlaran/lwwgraph/core"
)

// Version is the envelope version written by this package.
const Version = 1

// File is the on-disk envelope for one replica's state.
type File[V comparable] struct {
	Version int           `json:"version" msgpack:"version"`
	Replica string        `json:"replica,omitempty" msgpack:"replica,omitempty"`
	State   core.State[V] `json:"state" msgpack:"state"`
}

// New wraps s for replica with the current Version.
func New[V comparable](replica string, s core.State[V]) File[V] {
	return File[V]{Version: Version, Replica: replica, State: s}
}

// Encode writes file to w in format f. A zero Version is written as Version.
func Encode[V comparable](w io.Writer, f Format, file File[V]) error {
	if file.Version == 0 {
		file.Version = Version
	}

	var err error
	switch f {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		err = enc.Encode(file)
	case FormatMsgpack:
		err = msgpack.NewEncoder(w).Encode(file)
	default:
		return fmt.Errorf("snapshot: Encode: %q: %w", f, ErrUnknownFormat)
	}
	if err != nil {
		return fmt.Errorf("snapshot: Encode %s: %w", f, err)
	}

	return nil
}

// Decode reads one envelope in format f from r, then checks its version and
// validates the state.
func Decode[V comparable](r io.Reader, f Format) (File[V], error) {
	var (
		file File[V]
		err  error
	)
	switch f {
	case FormatJSON:
		dec := json.NewDecoder(r)
		dec.DisallowUnknownFields()
		err = dec.Decode(&file)
	case FormatMsgpack:
		err = msgpack.NewDecoder(r).Decode(&file)
	default:
		return File[V]{}, fmt.Errorf("snapshot: Decode: %q: %w", f, ErrUnknownFormat)
	}
	if err != nil {
		return File[V]{}, fmt.Errorf("snapshot: Decode %s: %w", f, err)
	}
	if file.Version != Version {
		return File[V]{}, fmt.Errorf("snapshot: Decode: version %d: %w", file.Version, ErrUnsupportedVersion)
	}
	if err = file.State.Validate(); err != nil {
		return File[V]{}, fmt.Errorf("snapshot: Decode: %w", err)
	}

	return file, nil
}

// Write stores file at path in the format implied by its extension. The file
// is written to a temporary sibling and renamed into place.
func Write[V comparable](path string, file File[V]) (err error) {
	f, err := FormatFromPath(path)
	if err != nil {
		return err
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), ".snapshot-*")
	if err != nil {
		return fmt.Errorf("snapshot: Write: %w", err)
	}
	defer func() {
		if err != nil {
			_ = os.Remove(tmp.Name())
		}
	}()

	if err = Encode(tmp, f, file); err != nil {
		_ = tmp.Close()
		return err
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("snapshot: Write: %w", err)
	}
	if err = os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("snapshot: Write: %w", err)
	}

	return nil
}

// Read loads the envelope stored at path, using the format implied by its extension.
func Read[V comparable](path string) (File[V], error) {
	f, err := FormatFromPath(path)
	if err != nil {
		return File[V]{}, err
	}

	fh, err := os.Open(path)
	if err != nil {
		return File[V]{}, fmt.Errorf("snapshot: Read: %w", err)
	}
	defer fh.Close()

	file, err := Decode[V](fh, f)
	if err != nil {
		return File[V]{}, fmt.Errorf("%s: %w", path, err)
	}

	return file, nil
}
