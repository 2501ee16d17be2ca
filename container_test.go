// Copyright 2018 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package palsave

import (
	"bytes"
	"testing"
)

func TestContainerRoundTripZlibSinglePass(t *testing.T) {
	gvas := bytes.Repeat([]byte("GVASpayload"), 50)
	opts := Options{Codec: CodecZlibSinglePass}

	encoded, err := EncodeSav(gvas, "/Script/SomeOtherGame.SaveGame", opts)
	if err != nil {
		t.Fatalf("EncodeSav: %v", err)
	}
	decoded, err := DecodeSav(encoded)
	if err != nil {
		t.Fatalf("DecodeSav: %v", err)
	}
	if !bytes.Equal(decoded, gvas) {
		t.Fatalf("round trip mismatch: got %d bytes, want %d", len(decoded), len(gvas))
	}
}

func TestContainerRoundTripZlibDoublePass(t *testing.T) {
	gvas := bytes.Repeat([]byte("GVASpayload"), 50)
	opts := Options{Codec: CodecZlibDoublePass}

	encoded, err := EncodeSav(gvas, "/Script/SomeOtherGame.SaveGame", opts)
	if err != nil {
		t.Fatalf("EncodeSav: %v", err)
	}
	decoded, err := DecodeSav(encoded)
	if err != nil {
		t.Fatalf("DecodeSav: %v", err)
	}
	if !bytes.Equal(decoded, gvas) {
		t.Fatalf("round trip mismatch: got %d bytes, want %d", len(decoded), len(gvas))
	}
}

func TestContainerRoundTripDict(t *testing.T) {
	gvas := bytes.Repeat([]byte("GVASpayload"), 50)
	opts := Options{Codec: CodecDict}

	encoded, err := EncodeSav(gvas, "/Script/Pal.PalWorldSaveGame", opts)
	if err != nil {
		t.Fatalf("EncodeSav: %v", err)
	}
	decoded, err := DecodeSav(encoded)
	if err != nil {
		t.Fatalf("DecodeSav: %v", err)
	}
	if !bytes.Equal(decoded, gvas) {
		t.Fatalf("round trip mismatch: got %d bytes, want %d", len(decoded), len(gvas))
	}
}

func TestContainerAutoCodecPicksDictForPalworldClasses(t *testing.T) {
	tests := []struct {
		className string
		wantMagic [3]byte
	}{
		{"/Script/Pal.PalWorldSaveGame", magicPlM},
		{"/Script/Pal.PalLocalWorldSaveGame", magicPlM},
		{"/Script/SomeOtherGame.SaveGame", magicPlZ},
	}
	for _, tt := range tests {
		magic, _ := selectCodec(tt.className, CodecAuto)
		if magic != tt.wantMagic {
			t.Errorf("selectCodec(%q, CodecAuto) magic = %v, want %v", tt.className, magic, tt.wantMagic)
		}
	}
}

func TestDecodeSavUnknownMagic(t *testing.T) {
	data := make([]byte, 12)
	data[8], data[9], data[10] = 'X', 'Y', 'Z'
	if _, err := DecodeSav(data); err != ErrUnknownContainerFormat {
		t.Fatalf("DecodeSav with unknown magic = %v, want ErrUnknownContainerFormat", err)
	}
}

func TestDecodeSavFileTooSmall(t *testing.T) {
	if _, err := DecodeSav([]byte{1, 2, 3}); err != ErrFileTooSmall {
		t.Fatalf("DecodeSav on tiny input = %v, want ErrFileTooSmall", err)
	}
}

func TestDecodeSavWithCnkPrefix(t *testing.T) {
	gvas := []byte("small gvas payload")
	encoded, err := EncodeSav(gvas, "", Options{Codec: CodecZlibSinglePass})
	if err != nil {
		t.Fatalf("EncodeSav: %v", err)
	}
	prefixed := append([]byte("CNK\x00\x00\x00\x00\x00\x00\x00\x00\x00"), encoded...)
	if len(prefixed) != len(encoded)+cnkPrefixLen {
		t.Fatalf("test setup: prefixed length mismatch")
	}
	decoded, err := DecodeSav(prefixed)
	if err != nil {
		t.Fatalf("DecodeSav with CNK prefix: %v", err)
	}
	if !bytes.Equal(decoded, gvas) {
		t.Fatalf("DecodeSav with CNK prefix round trip mismatch")
	}
}
