// Copyright 2018 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package palsave

import (
	"bytes"
	"encoding/binary"
	"math"
	"unicode/utf16"
)

// Writer is the mirror of Reader: a little-endian cursor that appends to
// a growable buffer.
type Writer struct {
	buf bytes.Buffer
}

// NewWriter returns an empty Writer.
func NewWriter() *Writer { return &Writer{} }

// Bytes returns the bytes written so far.
func (w *Writer) Bytes() []byte { return w.buf.Bytes() }

// Len returns the number of bytes written so far.
func (w *Writer) Len() int { return w.buf.Len() }

// Write appends raw bytes verbatim.
func (w *Writer) Write(b []byte) { w.buf.Write(b) }

func (w *Writer) WriteU8(v uint8)   { w.buf.WriteByte(v) }
func (w *Writer) WriteI8(v int8)    { w.WriteU8(uint8(v)) }

func (w *Writer) WriteU16(v uint16) {
	var b [2]byte
	binary.LittleEndian.PutUint16(b[:], v)
	w.buf.Write(b[:])
}
func (w *Writer) WriteI16(v int16) { w.WriteU16(uint16(v)) }

func (w *Writer) WriteU32(v uint32) {
	var b [4]byte
	binary.LittleEndian.PutUint32(b[:], v)
	w.buf.Write(b[:])
}
func (w *Writer) WriteI32(v int32) { w.WriteU32(uint32(v)) }

func (w *Writer) WriteU64(v uint64) {
	var b [8]byte
	binary.LittleEndian.PutUint64(b[:], v)
	w.buf.Write(b[:])
}
func (w *Writer) WriteI64(v int64) { w.WriteU64(uint64(v)) }

func (w *Writer) WriteF32(v float32) { w.WriteU32(math.Float32bits(v)) }
func (w *Writer) WriteF64(v float64) { w.WriteU64(math.Float64bits(v)) }

// WriteBool writes a BoolProperty-style single byte value.
func (w *Writer) WriteBool(v bool) {
	if v {
		w.WriteU8(1)
	} else {
		w.WriteU8(0)
	}
}

// WriteString writes s using the same length-prefix convention ReadString
// consumes. Strings containing only ASCII use the positive/1-byte form;
// anything else uses the negative/UTF-16LE form, mirroring the original
// tool's own encoding choice.
func (w *Writer) WriteString(s string) {
	if s == "" {
		w.WriteI32(0)
		return
	}
	if isASCII(s) {
		w.WriteI32(int32(len(s) + 1))
		w.buf.WriteString(s)
		w.WriteU8(0)
		return
	}
	units := utf16.Encode([]rune(s))
	w.WriteI32(-int32(len(units) + 1))
	for _, u := range units {
		w.WriteU16(u)
	}
	w.WriteU16(0)
}

func isASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] >= 0x80 {
			return false
		}
	}
	return true
}

// ElementWriter encodes one element of a tarray payload.
type ElementWriter[T any] func(w *Writer, v T)

// WriteArray writes a uint32 count followed by each element encoded by f,
// the mirror of ReadArray.
func WriteArray[T any](w *Writer, f ElementWriter[T], values []T) {
	w.WriteU32(uint32(len(values)))
	for _, v := range values {
		f(w, v)
	}
}

// WithScratch runs f against a fresh scratch Writer and returns the bytes
// it produced, implementing the size-back-patching idiom from spec §9:
// write a payload to a scratch buffer, measure it, then patch the size
// field before flushing the payload to the real output.
func WithScratch(f func(w *Writer)) []byte {
	scratch := NewWriter()
	f(scratch)
	return scratch.Bytes()
}
