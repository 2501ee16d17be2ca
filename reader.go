// Copyright 2018 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package palsave

import (
	"encoding/binary"
	"math"
	"unicode/utf16"
)

// Reader is a little-endian cursor over an in-memory buffer, the
// generalization of the ad-hoc offset arithmetic the teacher repeats in
// dosheader.go/ntheader.go/section.go into one reusable type (see
// DESIGN.md). It never mutates the underlying buffer.
type Reader struct {
	data []byte
	pos  int
}

// NewReader wraps data for sequential little-endian reads starting at
// offset zero.
func NewReader(data []byte) *Reader {
	return &Reader{data: data}
}

// Len returns the total number of bytes in the reader's buffer.
func (r *Reader) Len() int { return len(r.data) }

// Pos returns the current cursor offset.
func (r *Reader) Pos() int { return r.pos }

// Remaining returns the number of unread bytes.
func (r *Reader) Remaining() int { return len(r.data) - r.pos }

// EOF reports whether the cursor has consumed the entire buffer.
func (r *Reader) EOF() bool { return r.pos >= len(r.data) }

// Seek moves the cursor to an absolute byte offset.
func (r *Reader) Seek(pos int) error {
	if pos < 0 || pos > len(r.data) {
		return ErrUnexpectedEOF
	}
	r.pos = pos
	return nil
}

// Peek returns the next n bytes without advancing the cursor.
func (r *Reader) Peek(n int) ([]byte, error) {
	if r.Remaining() < n {
		return nil, ErrUnexpectedEOF
	}
	return r.data[r.pos : r.pos+n], nil
}

// ReadBytes reads and returns the next n bytes, advancing the cursor.
func (r *Reader) ReadBytes(n int) ([]byte, error) {
	b, err := r.Peek(n)
	if err != nil {
		return nil, err
	}
	r.pos += n
	return b, nil
}

// ReadToEnd consumes and returns every remaining byte.
func (r *Reader) ReadToEnd() []byte {
	b := r.data[r.pos:]
	r.pos = len(r.data)
	return b
}

// Sub creates a logically independent cursor over the next n bytes at
// byte offset zero, advancing the parent cursor past them. This is the
// bounded sub-reader required by spec §4.A whenever a size-delimited
// value must be parsed while the parent cursor keeps advancing.
func (r *Reader) Sub(n int) (*Reader, error) {
	b, err := r.ReadBytes(n)
	if err != nil {
		return nil, err
	}
	return NewReader(b), nil
}

func (r *Reader) ReadU8() (uint8, error) {
	b, err := r.ReadBytes(1)
	if err != nil {
		return 0, err
	}
	return b[0], nil
}

func (r *Reader) ReadI8() (int8, error) {
	v, err := r.ReadU8()
	return int8(v), err
}

func (r *Reader) ReadU16() (uint16, error) {
	b, err := r.ReadBytes(2)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint16(b), nil
}

func (r *Reader) ReadI16() (int16, error) {
	v, err := r.ReadU16()
	return int16(v), err
}

func (r *Reader) ReadU32() (uint32, error) {
	b, err := r.ReadBytes(4)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint32(b), nil
}

func (r *Reader) ReadI32() (int32, error) {
	v, err := r.ReadU32()
	return int32(v), err
}

func (r *Reader) ReadU64() (uint64, error) {
	b, err := r.ReadBytes(8)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint64(b), nil
}

func (r *Reader) ReadI64() (int64, error) {
	v, err := r.ReadU64()
	return int64(v), err
}

func (r *Reader) ReadF32() (float32, error) {
	v, err := r.ReadU32()
	if err != nil {
		return 0, err
	}
	return math.Float32frombits(v), nil
}

func (r *Reader) ReadF64() (float64, error) {
	v, err := r.ReadU64()
	if err != nil {
		return 0, err
	}
	return math.Float64frombits(v), nil
}

// ReadBool reads a BoolProperty-style single byte value.
func (r *Reader) ReadBool() (bool, error) {
	v, err := r.ReadU8()
	if err != nil {
		return false, err
	}
	return v != 0, nil
}

// ReadString reads a length-prefixed string. A positive length means a
// single-byte (Latin-1/UTF-8) encoding with a null terminator counted in
// the length; a negative length means a two-byte (UTF-16LE) encoding with
// a null terminator counted in |length|; a length of zero is the empty
// string with no terminator at all (spec §4.A/§6).
func (r *Reader) ReadString() (string, error) {
	n, err := r.ReadI32()
	if err != nil {
		return "", err
	}
	switch {
	case n == 0:
		return "", nil
	case n > 0:
		b, err := r.ReadBytes(int(n))
		if err != nil {
			return "", err
		}
		if len(b) == 0 || b[len(b)-1] != 0 {
			return "", ErrBadStringLength
		}
		return string(b[:len(b)-1]), nil
	default:
		count := int(-n)
		b, err := r.ReadBytes(count * 2)
		if err != nil {
			return "", err
		}
		units := make([]uint16, count)
		for i := 0; i < count; i++ {
			units[i] = binary.LittleEndian.Uint16(b[i*2 : i*2+2])
		}
		if units[count-1] != 0 {
			return "", ErrBadStringLength
		}
		return string(utf16.Decode(units[:count-1])), nil
	}
}

// ElementReader decodes one element of a tarray payload.
type ElementReader[T any] func(r *Reader) (T, error)

// ReadArray reads a uint32 count followed by n elements decoded with f,
// the generic realization of the Python tool's `tarray` helper.
func ReadArray[T any](r *Reader, f ElementReader[T]) ([]T, error) {
	count, err := r.ReadU32()
	if err != nil {
		return nil, err
	}
	out := make([]T, 0, count)
	for i := uint32(0); i < count; i++ {
		v, err := f(r)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

// ReadByteList reads n raw bytes, the idiom used by several custom
// handlers for fixed-width "leading/trailing bytes" framings whose exact
// meaning is unknown but which must round-trip verbatim.
func (r *Reader) ReadByteList(n int) ([]byte, error) {
	b, err := r.ReadBytes(n)
	if err != nil {
		return nil, err
	}
	out := make([]byte, n)
	copy(out, b)
	return out, nil
}
