// Copyright 2018 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package handlers

import (
	"testing"

	"github.com/saferwall/palsave"
	"github.com/saferwall/palsave/log"
)

func moduleMapValue(moduleType string, rawData palsave.Value) palsave.MapValue {
	fields := palsave.NewOrderedMap()
	fields.Set("RawData", palsave.Property{Name: "RawData", TypeName: "ArrayProperty", Value: rawData})
	return palsave.MapValue{
		KeyType:   "EnumProperty",
		ValueType: "StructProperty",
		Entries: []palsave.MapEntry{
			{
				Key:   palsave.EnumValue{Value: moduleType},
				Value: palsave.StructValue{TypeName: "PalBaseCampModuleSaveData", Fields: fields},
			},
		},
	}
}

func TestBaseCampModuleNoOp(t *testing.T) {
	ctx := &palsave.HandlerContext{Logger: log.NewNop()}
	mv := moduleMapValue("EPalBaseCampModuleType::Energy", bytesToArrayValue(nil))

	decoded, err := (BaseCampModule{}).Decode(ctx, mv)
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	out := decoded.(palsave.MapValue)
	sv := out.Entries[0].Value.(palsave.StructValue)
	prop, _ := sv.Fields.Get("RawData")
	cv, ok := prop.Value.(palsave.CustomValue)
	if !ok {
		t.Fatalf("RawData value = %T, want palsave.CustomValue", prop.Value)
	}
	if cv.CustomType != "EPalBaseCampModuleType::Energy" {
		t.Errorf("CustomType = %q", cv.CustomType)
	}

	back, err := (BaseCampModule{}).Encode(ctx, out)
	if err != nil {
		t.Fatalf("Encode() error = %v", err)
	}
	bsv := back.(palsave.MapValue).Entries[0].Value.(palsave.StructValue)
	bprop, _ := bsv.Fields.Get("RawData")
	b, err := bytesFromArrayValue(bprop.Value)
	if err != nil {
		t.Fatalf("bytesFromArrayValue() error = %v", err)
	}
	if len(b) != 0 {
		t.Errorf("encoded bytes = % x, want empty", b)
	}
}

func TestBaseCampModuleTransportItemDirector(t *testing.T) {
	ctx := &palsave.HandlerContext{Logger: log.NewNop()}

	w := palsave.NewWriter()
	palsave.WriteArray(w, writeTransportItemCharacterInfo, []transportItemCharacterInfo{
		{
			ItemInfos:         []ItemAndNum{{StaticID: "Stone", Count: 5}},
			CharacterLocation: vector3{X: 1, Y: 2, Z: 3},
		},
	})
	w.Write([]byte{1, 2, 3, 4})

	mv := moduleMapValue("EPalBaseCampModuleType::TransportItemDirector", bytesToArrayValue(w.Bytes()))
	decoded, err := (BaseCampModule{}).Decode(ctx, mv)
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	sv := decoded.(palsave.MapValue).Entries[0].Value.(palsave.StructValue)
	prop, _ := sv.Fields.Get("RawData")
	cv := prop.Value.(palsave.CustomValue)
	data := cv.Value.(map[string]any)
	infos := data["transport_item_character_infos"].([]any)
	if len(infos) != 1 {
		t.Fatalf("got %d transport item infos, want 1", len(infos))
	}

	back, err := (BaseCampModule{}).Encode(ctx, decoded)
	if err != nil {
		t.Fatalf("Encode() error = %v", err)
	}
	bsv := back.(palsave.MapValue).Entries[0].Value.(palsave.StructValue)
	bprop, _ := bsv.Fields.Get("RawData")
	gotBytes, _ := bytesFromArrayValue(bprop.Value)
	wantBytes, _ := bytesFromArrayValue(bytesToArrayValue(w.Bytes()))
	if string(gotBytes) != string(wantBytes) {
		t.Errorf("round trip mismatch: got % x, want % x", gotBytes, wantBytes)
	}
}
