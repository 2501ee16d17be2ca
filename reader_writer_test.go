// Copyright 2018 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package palsave

import (
	"math"
	"testing"
)

func TestReaderWriterIntegerRoundTrip(t *testing.T) {
	w := NewWriter()
	w.WriteU8(0xAB)
	w.WriteI8(-5)
	w.WriteU16(0xBEEF)
	w.WriteI16(-1234)
	w.WriteU32(0xDEADBEEF)
	w.WriteI32(-123456)
	w.WriteU64(0x0123456789ABCDEF)
	w.WriteI64(-9223372036854775808)

	r := NewReader(w.Bytes())

	if v, err := r.ReadU8(); err != nil || v != 0xAB {
		t.Fatalf("ReadU8 = %v, %v", v, err)
	}
	if v, err := r.ReadI8(); err != nil || v != -5 {
		t.Fatalf("ReadI8 = %v, %v", v, err)
	}
	if v, err := r.ReadU16(); err != nil || v != 0xBEEF {
		t.Fatalf("ReadU16 = %v, %v", v, err)
	}
	if v, err := r.ReadI16(); err != nil || v != -1234 {
		t.Fatalf("ReadI16 = %v, %v", v, err)
	}
	if v, err := r.ReadU32(); err != nil || v != 0xDEADBEEF {
		t.Fatalf("ReadU32 = %v, %v", v, err)
	}
	if v, err := r.ReadI32(); err != nil || v != -123456 {
		t.Fatalf("ReadI32 = %v, %v", v, err)
	}
	if v, err := r.ReadU64(); err != nil || v != 0x0123456789ABCDEF {
		t.Fatalf("ReadU64 = %v, %v", v, err)
	}
	if v, err := r.ReadI64(); err != nil || v != -9223372036854775808 {
		t.Fatalf("ReadI64 = %v, %v", v, err)
	}
	if !r.EOF() {
		t.Fatalf("expected EOF, %d bytes remaining", r.Remaining())
	}
}

func TestReaderWriterFloatRoundTrip(t *testing.T) {
	w := NewWriter()
	w.WriteF32(3.14159)
	w.WriteF64(math.Pi)
	w.WriteF32(float32(math.NaN()))

	r := NewReader(w.Bytes())
	f32, err := r.ReadF32()
	if err != nil || float64(f32) != float64(float32(3.14159)) {
		t.Fatalf("ReadF32 = %v, %v", f32, err)
	}
	f64, err := r.ReadF64()
	if err != nil || f64 != math.Pi {
		t.Fatalf("ReadF64 = %v, %v", f64, err)
	}
	nan, err := r.ReadF32()
	if err != nil || !math.IsNaN(float64(nan)) {
		t.Fatalf("ReadF32(NaN) = %v, %v", nan, err)
	}
}

func TestReaderWriterBool(t *testing.T) {
	w := NewWriter()
	w.WriteBool(true)
	w.WriteBool(false)

	r := NewReader(w.Bytes())
	if v, err := r.ReadBool(); err != nil || v != true {
		t.Fatalf("ReadBool = %v, %v", v, err)
	}
	if v, err := r.ReadBool(); err != nil || v != false {
		t.Fatalf("ReadBool = %v, %v", v, err)
	}
}

func TestReaderWriterStringRoundTrip(t *testing.T) {
	tests := []struct {
		name string
		s    string
	}{
		{"empty", ""},
		{"ascii", "Pal.PalWorldSaveGame"},
		{"non-ascii", "Héllo wörld"},
		{"emoji", "caravan 🐾"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := NewWriter()
			w.WriteString(tt.s)
			r := NewReader(w.Bytes())
			got, err := r.ReadString()
			if err != nil {
				t.Fatalf("ReadString: %v", err)
			}
			if got != tt.s {
				t.Fatalf("ReadString = %q, want %q", got, tt.s)
			}
			if !r.EOF() {
				t.Fatalf("%d bytes left over after string", r.Remaining())
			}
		})
	}
}

func TestReaderStringEmptyHasNoTerminator(t *testing.T) {
	w := NewWriter()
	w.WriteI32(0)
	r := NewReader(w.Bytes())
	s, err := r.ReadString()
	if err != nil || s != "" {
		t.Fatalf("ReadString = %q, %v", s, err)
	}
	if r.Remaining() != 0 {
		t.Fatalf("expected no payload bytes for an empty string, got %d", r.Remaining())
	}
}

func TestReaderWriterArrayRoundTrip(t *testing.T) {
	w := NewWriter()
	WriteArray(w, func(w *Writer, v uint32) { w.WriteU32(v) }, []uint32{1, 2, 3, 4})

	r := NewReader(w.Bytes())
	got, err := ReadArray(r, func(r *Reader) (uint32, error) { return r.ReadU32() })
	if err != nil {
		t.Fatalf("ReadArray: %v", err)
	}
	want := []uint32{1, 2, 3, 4}
	if len(got) != len(want) {
		t.Fatalf("ReadArray = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("ReadArray[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestReaderByteList(t *testing.T) {
	w := NewWriter()
	w.Write([]byte{0x01, 0x02, 0x03})

	r := NewReader(w.Bytes())
	got, err := r.ReadByteList(3)
	if err != nil {
		t.Fatalf("ReadByteList: %v", err)
	}
	if string(got) != "\x01\x02\x03" {
		t.Fatalf("ReadByteList = %v", got)
	}
}

func TestReaderSubIsIndependentCursor(t *testing.T) {
	w := NewWriter()
	w.WriteU32(4)
	w.WriteU32(0xCAFEBABE)
	w.WriteU8(0xFF)

	r := NewReader(w.Bytes())
	n, err := r.ReadU32()
	if err != nil {
		t.Fatalf("ReadU32: %v", err)
	}
	sub, err := r.Sub(int(n))
	if err != nil {
		t.Fatalf("Sub: %v", err)
	}
	v, err := sub.ReadU32()
	if err != nil || v != 0xCAFEBABE {
		t.Fatalf("sub.ReadU32 = %v, %v", v, err)
	}
	if !sub.EOF() {
		t.Fatalf("sub reader should be exhausted")
	}
	tail, err := r.ReadU8()
	if err != nil || tail != 0xFF {
		t.Fatalf("parent cursor should resume after the sub-read: %v, %v", tail, err)
	}
}

func TestReaderUnexpectedEOF(t *testing.T) {
	r := NewReader([]byte{0x01, 0x02})
	if _, err := r.ReadU32(); err != ErrUnexpectedEOF {
		t.Fatalf("ReadU32 on short buffer = %v, want ErrUnexpectedEOF", err)
	}
}

func TestReaderSeekAndPeek(t *testing.T) {
	r := NewReader([]byte{1, 2, 3, 4, 5})
	if err := r.Seek(3); err != nil {
		t.Fatalf("Seek: %v", err)
	}
	b, err := r.Peek(2)
	if err != nil || b[0] != 4 || b[1] != 5 {
		t.Fatalf("Peek after Seek = %v, %v", b, err)
	}
	if r.Pos() != 3 {
		t.Fatalf("Peek must not advance cursor, pos = %d", r.Pos())
	}
	if err := r.Seek(10); err != ErrUnexpectedEOF {
		t.Fatalf("Seek past end = %v, want ErrUnexpectedEOF", err)
	}
}
