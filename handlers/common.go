// Copyright 2018 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

// Package handlers implements the custom-property sub-format decoders
// registered against specific property paths (spec's Handler
// contract), one file per data shape, grounded on
// original_source/palworld_save_tools/rawdata/*.py. Each handler
// receives the value the generic property codec already decoded and
// reinterprets its opaque byte payload; bytes it cannot parse are kept
// verbatim rather than dropped, either in a CustomValue's Trailing field
// (whole-payload fallback) or in an "unknown_bytes"/"trailing_bytes"
// entry of the decoded value.
package handlers

import (
	"fmt"

	"github.com/saferwall/palsave"
)

// bytesFromArrayValue flattens an ArrayProperty[ByteProperty] payload
// back into a plain byte slice, the inverse of bytesToArrayValue.
func bytesFromArrayValue(v palsave.Value) ([]byte, error) {
	av, ok := v.(palsave.ArrayValue)
	if !ok {
		return nil, fmt.Errorf("palsave/handlers: expected ArrayValue, got %T", v)
	}
	b := make([]byte, len(av.Values))
	for i, e := range av.Values {
		u, ok := e.(palsave.UintValue)
		if !ok {
			return nil, fmt.Errorf("palsave/handlers: expected byte element, got %T", e)
		}
		b[i] = byte(u.Value)
	}
	return b, nil
}

// bytesToArrayValue wraps a byte slice as the ArrayProperty[ByteProperty]
// shape the generic array writer expects.
func bytesToArrayValue(b []byte) palsave.ArrayValue {
	values := make([]palsave.Value, len(b))
	for i, c := range b {
		values[i] = palsave.UintValue{Bits: palsave.KindUInt8, Value: uint64(c)}
	}
	return palsave.ArrayValue{ElementType: "ByteProperty", Values: values}
}

// rawDataBytes reads the "RawData" field of a struct value's field map
// and returns its raw byte payload, for handlers whose registered path
// sits one level above the byte-bearing ArrayProperty (the
// BaseCampModule and MapConcreteModel handlers, whose RawData sits
// inside each entry of an outer MapProperty).
func rawDataBytes(fields *palsave.OrderedMap) ([]byte, palsave.Property, error) {
	prop, ok := fields.Get("RawData")
	if !ok {
		return nil, prop, fmt.Errorf("palsave/handlers: missing RawData field")
	}
	b, err := bytesFromArrayValue(prop.Value)
	return b, prop, err
}

func setRawData(fields *palsave.OrderedMap, prop palsave.Property, v palsave.Value) {
	prop.Value = v
	fields.Set("RawData", prop)
}

// guidToDoc/guidFromDoc bridge a palsave.Guid and the dashed-hex string
// form CustomValue payloads use for every other identifier field, via
// Guid's own JSON codec so the formatting never drifts from doc.go's.
func guidToDoc(g palsave.Guid) string {
	b, _ := g.MarshalJSON()
	s := string(b)
	return s[1 : len(s)-1]
}

func guidFromDoc(s string) (palsave.Guid, error) {
	var g palsave.Guid
	if s == "" {
		return g, nil
	}
	err := g.UnmarshalJSON([]byte(`"` + s + `"`))
	return g, err
}

func asString(m map[string]any, key string) string {
	s, _ := m[key].(string)
	return s
}

func asInt(m map[string]any, key string) int64 {
	switch x := m[key].(type) {
	case float64:
		return int64(x)
	case int64:
		return x
	case int:
		return int64(x)
	default:
		return 0
	}
}

func asFloat(m map[string]any, key string) float64 {
	f, _ := m[key].(float64)
	return f
}

func asBool(m map[string]any, key string) bool {
	b, _ := m[key].(bool)
	return b
}

func asByteSlice(v any) []byte {
	list, _ := v.([]any)
	b := make([]byte, len(list))
	for i, item := range list {
		switch x := item.(type) {
		case float64:
			b[i] = byte(int64(x))
		case int:
			b[i] = byte(x)
		}
	}
	return b
}

func byteSliceToAny(b []byte) []any {
	out := make([]any, len(b))
	for i, c := range b {
		out[i] = int(c)
	}
	return out
}

// ItemAndNum is the {static_id, count} pair used by base camp transport
// orders and map-object drop tables.
type ItemAndNum struct {
	StaticID string
	Count    int32
}

func readItemAndNum(r *palsave.Reader) (ItemAndNum, error) {
	id, err := r.ReadString()
	if err != nil {
		return ItemAndNum{}, err
	}
	n, err := r.ReadI32()
	if err != nil {
		return ItemAndNum{}, err
	}
	return ItemAndNum{StaticID: id, Count: n}, nil
}

func writeItemAndNum(w *palsave.Writer, v ItemAndNum) {
	w.WriteString(v.StaticID)
	w.WriteI32(v.Count)
}

func itemAndNumToDoc(v ItemAndNum) map[string]any {
	return map[string]any{"static_id": v.StaticID, "count": v.Count}
}

func itemAndNumFromDoc(m map[string]any) ItemAndNum {
	return ItemAndNum{StaticID: asString(m, "static_id"), Count: int32(asInt(m, "count"))}
}

// vector3 is the plain {x, y, z} double-precision location embedded in
// several module/model payloads outside of a full StructProperty
// envelope (the bytes here are a bare tuple of doubles, not a nested
// property).
type vector3 struct{ X, Y, Z float64 }

func readVector3(r *palsave.Reader) (vector3, error) {
	x, err := r.ReadF64()
	if err != nil {
		return vector3{}, err
	}
	y, err := r.ReadF64()
	if err != nil {
		return vector3{}, err
	}
	z, err := r.ReadF64()
	if err != nil {
		return vector3{}, err
	}
	return vector3{x, y, z}, nil
}

func writeVector3(w *palsave.Writer, v vector3) {
	w.WriteF64(v.X)
	w.WriteF64(v.Y)
	w.WriteF64(v.Z)
}

func vector3ToDoc(v vector3) map[string]any {
	return map[string]any{"x": v.X, "y": v.Y, "z": v.Z}
}

func vector3FromDoc(m map[string]any) vector3 {
	return vector3{X: asFloat(m, "x"), Y: asFloat(m, "y"), Z: asFloat(m, "z")}
}
