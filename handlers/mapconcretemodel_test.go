// Copyright 2018 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package handlers

import (
	"testing"

	"github.com/saferwall/palsave"
	"github.com/saferwall/palsave/log"
)

func objectMapValue(objectID string, rawData palsave.Value) palsave.MapValue {
	fields := palsave.NewOrderedMap()
	fields.Set("RawData", palsave.Property{Name: "RawData", TypeName: "ArrayProperty", Value: rawData})
	return palsave.MapValue{
		KeyType:   "NameProperty",
		ValueType: "StructProperty",
		Entries: []palsave.MapEntry{
			{
				Key:   palsave.NameValue(objectID),
				Value: palsave.StructValue{TypeName: "PalMapObjectSaveData", Fields: fields},
			},
		},
	}
}

func TestMapConcreteModelGenerateEnergy(t *testing.T) {
	ctx := &palsave.HandlerContext{Logger: log.NewNop()}

	var instanceID, modelInstanceID palsave.Guid
	instanceID[0] = 1
	modelInstanceID[0] = 2

	w := palsave.NewWriter()
	w.WriteGuid(instanceID)
	w.WriteGuid(modelInstanceID)
	w.WriteF32(42.5)
	w.Write([]byte{0, 0, 0, 0, 0, 0, 0, 0})

	mv := objectMapValue("electricgenerator", bytesToArrayValue(w.Bytes()))
	decoded, err := (MapConcreteModel{}).Decode(ctx, mv)
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	sv := decoded.(palsave.MapValue).Entries[0].Value.(palsave.StructValue)
	prop, _ := sv.Fields.Get("RawData")
	cv := prop.Value.(palsave.CustomValue)
	data, ok := cv.Value.(map[string]any)
	if !ok {
		t.Fatalf("RawData value = %v, want map[string]any", cv.Value)
	}
	if data["concrete_model_type"] != "PalMapObjectGenerateEnergyModel" {
		t.Errorf("concrete_model_type = %v", data["concrete_model_type"])
	}

	back, err := (MapConcreteModel{}).Encode(ctx, decoded)
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

func TestMapConcreteModelUnknownObjectFallsBackToRawBytes(t *testing.T) {
	ctx := &palsave.HandlerContext{Logger: log.NewNop()}
	raw := []byte{9, 9, 9, 9}
	mv := objectMapValue("totally_not_a_real_object", bytesToArrayValue(raw))

	decoded, err := (MapConcreteModel{}).Decode(ctx, mv)
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	sv := decoded.(palsave.MapValue).Entries[0].Value.(palsave.StructValue)
	prop, _ := sv.Fields.Get("RawData")
	cv := prop.Value.(palsave.CustomValue)
	if cv.Value != nil {
		t.Errorf("Value = %v, want nil for unknown object falling back to raw bytes", cv.Value)
	}
	if string(cv.Trailing) != string(raw) {
		t.Errorf("Trailing = % x, want % x", cv.Trailing, raw)
	}
}
