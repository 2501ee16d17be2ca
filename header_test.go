// Copyright 2018 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package palsave

import "testing"

func buildHeader(hasUE5 bool) GvasHeader {
	h := GvasHeader{
		SaveGameFileVersion:   3,
		PackageFileVersionUE4: 522,
		PackageFileVersionUE5: 1008,
		HasUE5Version:         hasUE5,
		Engine: EngineVersion{
			Major: 5, Minor: 1, Patch: 1, Build: 12345, BuildID: "++UE5+Release-5.1",
		},
		CustomFormatVersion: 37,
		CustomVersions: []CustomVersion{
			{ID: Guid{0x01, 0x02}, Version: 1},
			{ID: Guid{0x03, 0x04}, Version: 2},
		},
		SaveGameClassName: "/Script/Pal.PalWorldSaveGame",
	}
	if !hasUE5 {
		h.SaveGameFileVersion = 2
		h.PackageFileVersionUE5 = 0
	}
	return h
}

func TestHeaderRoundTrip(t *testing.T) {
	for _, hasUE5 := range []bool{true, false} {
		w := NewWriter()
		want := buildHeader(hasUE5)
		WriteHeader(w, want)

		r := NewReader(w.Bytes())
		got, err := ReadHeader(r)
		if err != nil {
			t.Fatalf("ReadHeader: %v", err)
		}
		if got.SaveGameFileVersion != want.SaveGameFileVersion ||
			got.PackageFileVersionUE4 != want.PackageFileVersionUE4 ||
			got.PackageFileVersionUE5 != want.PackageFileVersionUE5 ||
			got.HasUE5Version != want.HasUE5Version ||
			got.Engine != want.Engine ||
			got.CustomFormatVersion != want.CustomFormatVersion ||
			got.SaveGameClassName != want.SaveGameClassName {
			t.Fatalf("ReadHeader(WriteHeader(h)) = %+v, want %+v", got, want)
		}
		if len(got.CustomVersions) != len(want.CustomVersions) {
			t.Fatalf("CustomVersions length = %d, want %d", len(got.CustomVersions), len(want.CustomVersions))
		}
		for i := range want.CustomVersions {
			if got.CustomVersions[i] != want.CustomVersions[i] {
				t.Fatalf("CustomVersions[%d] = %+v, want %+v", i, got.CustomVersions[i], want.CustomVersions[i])
			}
		}
		if !r.EOF() {
			t.Fatalf("%d trailing bytes after header", r.Remaining())
		}
	}
}

func TestReadHeaderBadMagic(t *testing.T) {
	r := NewReader([]byte{'B', 'A', 'D', '!', 0, 0, 0, 0})
	if _, err := ReadHeader(r); err != ErrBadMagic {
		t.Fatalf("ReadHeader with bad magic = %v, want ErrBadMagic", err)
	}
}

func TestGuidRoundTrip(t *testing.T) {
	w := NewWriter()
	want := Guid{0x10, 0x20, 0x30, 0x40, 0x50, 0x60, 0x70, 0x80, 0x90, 0xA0, 0xB0, 0xC0, 0xD0, 0xE0, 0xF0, 0x01}
	w.WriteGuid(want)

	r := NewReader(w.Bytes())
	got, err := r.ReadGuid()
	if err != nil {
		t.Fatalf("ReadGuid: %v", err)
	}
	if got != want {
		t.Fatalf("ReadGuid = %v, want %v", got, want)
	}
}

func TestGuidStringJSONRoundTrip(t *testing.T) {
	var g Guid
	for i := range g {
		g[i] = byte(i + 1)
	}
	encoded, err := g.MarshalJSON()
	if err != nil {
		t.Fatalf("MarshalJSON: %v", err)
	}

	var got Guid
	if err := got.UnmarshalJSON(encoded); err != nil {
		t.Fatalf("UnmarshalJSON: %v", err)
	}
	if got != g {
		t.Fatalf("UnmarshalJSON(MarshalJSON(g)) = %v, want %v", got, g)
	}
}

func TestGuidIsZero(t *testing.T) {
	var zero Guid
	if !zero.IsZero() {
		t.Fatalf("zero Guid reports IsZero() = false")
	}
	nonzero := Guid{1}
	if nonzero.IsZero() {
		t.Fatalf("nonzero Guid reports IsZero() = true")
	}
}
