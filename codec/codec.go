// Copyright 2018 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

// Package codec provides the two compression adapters container framing
// dispatches to (spec §4.G). Each adapter is a pure compress/decompress
// black box; neither interprets the SAV container header.
package codec

import "errors"

// ErrCompression is returned when either direction of a Codec fails.
var ErrCompression = errors.New("palsave/codec: compression error")

// Codec is the uniform interface both compression adapters expose.
type Codec interface {
	// Compress returns the compressed form of data.
	Compress(data []byte) ([]byte, error)
	// Decompress returns the decompressed form of data. expectedLen is
	// a length taken from the SAV header; implementations use it only
	// as a capacity hint, and the caller checks the resulting length
	// (spec §4.F).
	Decompress(data []byte, expectedLen int) ([]byte, error)
}
