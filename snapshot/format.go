// SPDX-License-Identifier: MIT
package snapshot

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

// Format names a snapshot encoding.
type Format string

// Supported encodings.
const (
	FormatJSON    Format = "json"
	FormatMsgpack Format = "msgpack"
)

// Sentinel errors for snapshot files.
var (
	// ErrUnknownFormat indicates a format name or file extension that is not supported.
	ErrUnknownFormat = errors.New("snapshot: unknown format")

	// ErrUnsupportedVersion indicates an envelope written by an incompatible version.
	ErrUnsupportedVersion = errors.New("snapshot: unsupported version")
)

// ParseFormat maps a format name, case-insensitively, to a Format.
func ParseFormat(name string) (Format, error) {
	switch Format(strings.ToLower(name)) {
	case FormatJSON:
		return FormatJSON, nil
	case FormatMsgpack, "mp":
		return FormatMsgpack, nil
	default:
		return "", fmt.Errorf("%q: %w", name, ErrUnknownFormat)
	}
}

// FormatFromPath selects a Format from the extension of path:
// ".json" for JSON, ".msgpack" or ".mp" for msgpack.
func FormatFromPath(path string) (Format, error) {
	ext := strings.TrimPrefix(filepath.Ext(path), ".")
	if ext == "" {
		return "", fmt.Errorf("%s: no extension: %w", path, ErrUnknownFormat)
	}
	f, err := ParseFormat(ext)
	if err != nil {
		return "", fmt.Errorf("%s: %w", path, err)
	}

	return f, nil
}

// Ext returns the canonical file extension for f, including the dot.
func (f Format) Ext() string {
	if f == FormatMsgpack {
		return ".msgpack"
	}

	return ".json"
}
