// Copyright 2018 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package codec

import (
	"bytes"
	"fmt"
	"io"

	"github.com/klauspost/compress/zlib"
)

// Zlib is the "PlZ" container variant's adapter (spec §4.F/§4.G),
// grounded on original_source/.../compressor/__init__.py's z_lib usage.
// It wraps klauspost/compress/zlib rather than the stdlib compress/zlib
// package, matching the drop-in replacement the corpus itself reaches
// for (see DESIGN.md).
type Zlib struct{}

func (Zlib) Compress(data []byte) ([]byte, error) {
	var buf bytes.Buffer
	w := zlib.NewWriter(&buf)
	if _, err := w.Write(data); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCompression, err)
	}
	if err := w.Close(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCompression, err)
	}
	return buf.Bytes(), nil
}

func (Zlib) Decompress(data []byte, expectedLen int) ([]byte, error) {
	r, err := zlib.NewReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCompression, err)
	}
	defer r.Close()
	out := make([]byte, 0, expectedLen)
	buf := bytes.NewBuffer(out)
	if _, err := io.Copy(buf, r); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCompression, err)
	}
	return buf.Bytes(), nil
}
