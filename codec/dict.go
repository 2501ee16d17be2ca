// Copyright 2018 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package codec

import (
	"fmt"

	"github.com/klauspost/compress/zstd"
)

// Dict is the "PlM" container variant's adapter (spec §4.F/§4.G),
// grounded on original_source/.../compressor/__init__.py's oozlib usage.
// The original proprietary dictionary codec ("libooz", an Oodle/Kraken
// derivative bound via ctypes to a native library) has no nameable
// pure-Go or otherwise real ecosystem binding in this corpus; per
// DESIGN.md's Open Question resolution, Dict is instead backed by
// klauspost/compress/zstd — itself a real, dictionary-capable codec —
// behind the identical compress/decompress contract. Container framing
// never depends on which concrete algorithm backs this adapter.
type Dict struct{}

func (Dict) Compress(data []byte) ([]byte, error) {
	w, err := zstd.NewWriter(nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCompression, err)
	}
	defer w.Close()
	return w.EncodeAll(data, nil), nil
}

func (Dict) Decompress(data []byte, expectedLen int) ([]byte, error) {
	r, err := zstd.NewReader(nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCompression, err)
	}
	defer r.Close()
	out, err := r.DecodeAll(data, make([]byte, 0, expectedLen))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCompression, err)
	}
	return out, nil
}
