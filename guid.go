// Copyright 2018 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package palsave

import (
	"encoding/binary"
	"fmt"

	"github.com/google/uuid"
)

// Guid is a 128-bit identifier stored, on the wire, as four little-endian
// 32-bit words. This is not RFC 4122 byte order (spec §9 "Guid byte
// order"); the conversion to/from the dashed hex string used by DOC goes
// through github.com/google/uuid purely for string formatting, never for
// the wire codec.
type Guid [16]byte

// ReadGuid reads a Guid as four little-endian uint32 words.
func (r *Reader) ReadGuid() (Guid, error) {
	var g Guid
	for word := 0; word < 4; word++ {
		v, err := r.ReadU32()
		if err != nil {
			return g, err
		}
		binary.LittleEndian.PutUint32(g[word*4:word*4+4], v)
	}
	return g, nil
}

// WriteGuid writes a Guid as four little-endian uint32 words.
func (w *Writer) WriteGuid(g Guid) {
	for word := 0; word < 4; word++ {
		w.WriteU32(binary.LittleEndian.Uint32(g[word*4 : word*4+4]))
	}
}

// String renders the Guid using the standard dashed hex form, matching
// the DOC representation described in spec §4.H.
func (g Guid) String() string {
	var words [4]uint32
	for i := range words {
		words[i] = binary.LittleEndian.Uint32(g[i*4 : i*4+4])
	}
	var raw [16]byte
	binary.BigEndian.PutUint32(raw[0:4], words[0])
	binary.BigEndian.PutUint32(raw[4:8], words[1])
	binary.BigEndian.PutUint32(raw[8:12], words[2])
	binary.BigEndian.PutUint32(raw[12:16], words[3])
	id, err := uuid.FromBytes(raw[:])
	if err != nil {
		// Unreachable: raw is always exactly 16 bytes.
		return fmt.Sprintf("%x", raw)
	}
	return id.String()
}

// MarshalJSON renders the Guid as a dashed hex string for DOC lowering.
func (g Guid) MarshalJSON() ([]byte, error) {
	return []byte(`"` + g.String() + `"`), nil
}

// UnmarshalJSON parses the dashed hex string produced by MarshalJSON.
func (g *Guid) UnmarshalJSON(data []byte) error {
	s := string(data)
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		s = s[1 : len(s)-1]
	}
	id, err := uuid.Parse(s)
	if err != nil {
		return fmt.Errorf("palsave: invalid guid %q: %w", s, err)
	}
	raw, _ := id.MarshalBinary()
	var words [4]uint32
	words[0] = binary.BigEndian.Uint32(raw[0:4])
	words[1] = binary.BigEndian.Uint32(raw[4:8])
	words[2] = binary.BigEndian.Uint32(raw[8:12])
	words[3] = binary.BigEndian.Uint32(raw[12:16])
	for i, w := range words {
		binary.LittleEndian.PutUint32(g[i*4:i*4+4], w)
	}
	return nil
}

// IsZero reports whether g is the all-zero Guid.
func (g Guid) IsZero() bool {
	return g == Guid{}
}
