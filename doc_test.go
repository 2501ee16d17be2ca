// Copyright 2018 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package palsave

import (
	"bytes"
	"encoding/json"
	"testing"
)

func sampleGraph() *Graph {
	props := NewOrderedMap()
	props.Set("IsNewGame", Property{
		Name: "IsNewGame", TypeName: "BoolProperty",
		Header: BoolHeader{Value: true}, Value: BoolValue(true),
	})
	props.Set("PlayerLevel", Property{
		Name: "PlayerLevel", TypeName: "IntProperty",
		Header: NoHeader{}, Value: IntValue{Bits: KindInt32, Value: 42},
	})
	props.Set("GuildName", Property{
		Name: "GuildName", TypeName: "StrProperty",
		Header: NoHeader{}, Value: StringValue("Anthropic Raiders"),
	})
	props.Set("Multiplier", Property{
		Name: "Multiplier", TypeName: "FloatProperty",
		Header: NoHeader{}, Value: FloatValue{Bits: KindFloat32, Value: 1.5},
	})
	props.Set("UnlockedLevels", Property{
		Name: "UnlockedLevels", TypeName: "ArrayProperty",
		Header: ArrayHeader{ElementType: "IntProperty"},
		Value: ArrayValue{
			ElementType: "IntProperty",
			Values: []Value{
				IntValue{Bits: KindInt32, Value: 1},
				IntValue{Bits: KindInt32, Value: 2},
				IntValue{Bits: KindInt32, Value: 3},
			},
		},
	})

	return &Graph{
		Header: GvasHeader{
			SaveGameFileVersion:   3,
			PackageFileVersionUE4: 522,
			PackageFileVersionUE5: 1008,
			HasUE5Version:         true,
			Engine:                EngineVersion{Major: 5, Minor: 1, Patch: 1, Build: 1, BuildID: "++UE5"},
			CustomFormatVersion:   37,
			CustomVersions:        []CustomVersion{{ID: Guid{0x01}, Version: 1}},
			SaveGameClassName:     "/Script/SomeOtherGame.SaveGame",
		},
		Properties: props,
		Trailer:    0,
	}
}

func TestEncodeGraphDecodeGraphRoundTrip(t *testing.T) {
	opts := DefaultOptions()
	g := sampleGraph()

	sav, err := EncodeGraph(g, opts)
	if err != nil {
		t.Fatalf("EncodeGraph: %v", err)
	}

	g2, err := DecodeGraph(sav, opts)
	if err != nil {
		t.Fatalf("DecodeGraph: %v", err)
	}

	if g2.Header.SaveGameClassName != g.Header.SaveGameClassName {
		t.Fatalf("SaveGameClassName = %q, want %q", g2.Header.SaveGameClassName, g.Header.SaveGameClassName)
	}
	if g2.Properties.Len() != g.Properties.Len() {
		t.Fatalf("Properties.Len() = %d, want %d", g2.Properties.Len(), g.Properties.Len())
	}
}

func TestDocLowerLiftRoundTrip(t *testing.T) {
	opts := DefaultOptions()
	g := sampleGraph()

	sav, err := EncodeGraph(g, opts)
	if err != nil {
		t.Fatalf("EncodeGraph: %v", err)
	}
	g2, err := DecodeGraph(sav, opts)
	if err != nil {
		t.Fatalf("DecodeGraph: %v", err)
	}

	doc := Lower(g2, opts)
	encoded, err := json.Marshal(doc)
	if err != nil {
		t.Fatalf("json.Marshal: %v", err)
	}

	var roundTripped map[string]any
	if err := json.Unmarshal(encoded, &roundTripped); err != nil {
		t.Fatalf("json.Unmarshal: %v", err)
	}

	g3, err := Lift(roundTripped)
	if err != nil {
		t.Fatalf("Lift: %v", err)
	}

	resav, err := EncodeGraph(g3, opts)
	if err != nil {
		t.Fatalf("EncodeGraph after Lift: %v", err)
	}

	gvas1, err := DecodeSav(sav)
	if err != nil {
		t.Fatalf("DecodeSav(sav): %v", err)
	}
	gvas2, err := DecodeSav(resav)
	if err != nil {
		t.Fatalf("DecodeSav(resav): %v", err)
	}
	if !bytes.Equal(gvas1, gvas2) {
		t.Fatalf("DOC round trip produced a different GVAS payload")
	}
}

func TestLowerIncludesHeaderFields(t *testing.T) {
	opts := DefaultOptions()
	g := sampleGraph()
	doc := Lower(g, opts)

	header, ok := doc["header"].(map[string]any)
	if !ok {
		t.Fatalf("doc[\"header\"] missing or wrong type: %#v", doc["header"])
	}
	if header["save_game_class_name"] != g.Header.SaveGameClassName {
		t.Fatalf("header.save_game_class_name = %v, want %v", header["save_game_class_name"], g.Header.SaveGameClassName)
	}
}
