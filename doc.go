// Copyright 2018 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package palsave

import (
	"fmt"
	"math"
)

// Lower maps a decoded Graph to the neutral tree of maps/slices/strings/
// numbers/booleans described in spec §4.H/§6: a language-independent
// shape that the out-of-scope JSON writer (cmd/palconv) serializes.
// Properties and struct fields lower to an ordered slice of
// {name, type, value, ...} objects rather than a native Go map, since
// Go maps carry no iteration order and spec §8's "Order preservation"
// property is load-bearing; the slice is this module's faithful
// equivalent of the original tool's order-preserving dict (see
// DESIGN.md's doc.go notes).
func Lower(g *Graph, opts Options) map[string]any {
	return map[string]any{
		"header":     lowerHeader(g.Header),
		"properties": lowerProperties(g.Properties, opts),
		"trailer":    g.Trailer,
	}
}

func lowerHeader(h GvasHeader) map[string]any {
	versions := make([]map[string]any, 0, len(h.CustomVersions))
	for _, cv := range h.CustomVersions {
		versions = append(versions, map[string]any{
			"id":      cv.ID.String(),
			"version": cv.Version,
		})
	}
	doc := map[string]any{
		"save_game_file_version":   h.SaveGameFileVersion,
		"package_file_version_ue4": h.PackageFileVersionUE4,
		"engine_version": map[string]any{
			"major":    h.Engine.Major,
			"minor":    h.Engine.Minor,
			"patch":    h.Engine.Patch,
			"build":    h.Engine.Build,
			"build_id": h.Engine.BuildID,
		},
		"custom_format_version": h.CustomFormatVersion,
		"custom_versions":       versions,
		"save_game_class_name":  h.SaveGameClassName,
	}
	if h.HasUE5Version {
		doc["package_file_version_ue5"] = h.PackageFileVersionUE5
	}
	return doc
}

func lowerProperties(om *OrderedMap, opts Options) []map[string]any {
	out := make([]map[string]any, 0, om.Len())
	om.Each(func(name string, p Property) {
		out = append(out, lowerProperty(name, p, opts))
	})
	return out
}

// lowerProperty renders one Property envelope plus its value. Header
// fields that aren't implied by type_name alone (struct identity guid,
// enum name, element/key/value type) are carried alongside so Lift can
// rebuild the exact same Header without re-deriving it from value shape.
func lowerProperty(name string, p Property, opts Options) map[string]any {
	entry := map[string]any{
		"name": name,
		"type": p.TypeName,
	}
	if p.ArrayIndex != 0 {
		entry["array_index"] = p.ArrayIndex
	}
	switch h := p.Header.(type) {
	case EnumHeader:
		entry["enum_name"] = h.EnumName
	case StructHeader:
		entry["struct_type"] = h.StructType
		if !h.ID.IsZero() {
			entry["id"] = h.ID.String()
		}
	case ArrayHeader:
		entry["element_type"] = h.ElementType
	case SetHeader:
		entry["element_type"] = h.ElementType
	case MapHeader:
		entry["key_type"] = h.KeyType
		entry["value_type"] = h.ValueType
	}
	entry["value"] = lowerValue(p.Value, opts)
	return entry
}

// lowerValue renders a bare Value (no envelope) — used for the property
// payload itself and recursively for array/set elements, map keys and
// values, and struct fields.
func lowerValue(v Value, opts Options) any {
	switch x := v.(type) {
	case BoolValue:
		return bool(x)
	case IntValue:
		return x.Value
	case UintValue:
		return x.Value
	case FloatValue:
		return lowerFloat(x.Value, opts)
	case StringValue:
		return string(x)
	case NameValue:
		return string(x)
	case EnumValue:
		return map[string]any{"enum_name": x.EnumName, "value": x.Value}
	case GuidValue:
		return Guid(x).String()
	case StructValue:
		fields := map[string]any{
			"struct_type": x.TypeName,
			"fields":      lowerProperties(x.Fields, opts),
		}
		if !x.ID.IsZero() {
			fields["id"] = x.ID.String()
		}
		return fields
	case ArrayValue:
		values := make([]any, len(x.Values))
		for i, e := range x.Values {
			values[i] = lowerValue(e, opts)
		}
		doc := map[string]any{"element_type": x.ElementType, "values": values}
		if x.StructHeader != nil {
			doc["struct_header"] = map[string]any{
				"name":        x.StructHeader.Name,
				"struct_type": x.StructHeader.StructType,
				"id":          x.StructHeader.ID.String(),
			}
		}
		return doc
	case MapValue:
		entries := make([]any, len(x.Entries))
		for i, e := range x.Entries {
			entries[i] = map[string]any{
				"key":   lowerValue(e.Key, opts),
				"value": lowerValue(e.Value, opts),
			}
		}
		return map[string]any{
			"key_type":   x.KeyType,
			"value_type": x.ValueType,
			"entries":    entries,
		}
	case SetValue:
		values := make([]any, len(x.Values))
		for i, e := range x.Values {
			values[i] = lowerValue(e, opts)
		}
		return map[string]any{"element_type": x.ElementType, "values": values}
	case BytesValue:
		return map[string]any{"values": bytesToInts(x)}
	case CustomValue:
		doc := map[string]any{"custom_type": x.CustomType, "value": x.Value}
		if len(x.Trailing) > 0 {
			doc["trailing_bytes"] = bytesToInts(x.Trailing)
		}
		return doc
	default:
		return nil
	}
}

// lowerFloat applies spec §3's "Float policy": NaN/±Inf survive through
// the typed graph; DOC lowering represents them as a tagged string
// since encoding/json cannot marshal a non-finite float64, unless the
// caller opted into the lossy null-sentinel mode (spec §9 "Non-finite
// floats").
func lowerFloat(f float64, opts Options) any {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		if !opts.AllowNaN {
			return nil
		}
		return formatNonFiniteFloat(f)
	}
	return f
}

func formatNonFiniteFloat(f float64) string {
	switch {
	case math.IsNaN(f):
		return "NaN"
	case math.IsInf(f, 1):
		return "Infinity"
	default:
		return "-Infinity"
	}
}

// asFloatValue reconstructs a float from its lowered form: a plain JSON
// number, one of the non-finite tag strings lowerFloat produces, or
// null (the lossy AllowNaN=false sentinel, read back as NaN since that
// mode already forfeits exact round-trip).
func asFloatValue(raw any) float64 {
	switch x := raw.(type) {
	case float64:
		return x
	case string:
		switch x {
		case "Infinity":
			return math.Inf(1)
		case "-Infinity":
			return math.Inf(-1)
		default:
			return math.NaN()
		}
	default:
		return math.NaN()
	}
}

func bytesToInts(b []byte) []any {
	out := make([]any, len(b))
	for i, c := range b {
		out[i] = int(c)
	}
	return out
}

// Lift is the inverse of Lower: it rebuilds a Graph from the neutral
// tree, injective with Lower on all legal inputs (spec §4.H).
func Lift(doc map[string]any) (*Graph, error) {
	header, err := liftHeader(doc["header"])
	if err != nil {
		return nil, err
	}
	props, err := liftProperties(doc["properties"])
	if err != nil {
		return nil, err
	}
	trailer, _ := asUint32(doc["trailer"])
	return &Graph{Header: header, Properties: props, Trailer: trailer}, nil
}

func liftHeader(raw any) (GvasHeader, error) {
	var h GvasHeader
	m, ok := raw.(map[string]any)
	if !ok {
		return h, fmt.Errorf("palsave: doc header is not an object")
	}
	h.SaveGameFileVersion, _ = asInt32(m["save_game_file_version"])
	h.PackageFileVersionUE4, _ = asInt32(m["package_file_version_ue4"])
	if v, ok := m["package_file_version_ue5"]; ok {
		h.PackageFileVersionUE5, _ = asInt32(v)
		h.HasUE5Version = true
	}
	if ev, ok := m["engine_version"].(map[string]any); ok {
		major, _ := asUint32(ev["major"])
		minor, _ := asUint32(ev["minor"])
		patch, _ := asUint32(ev["patch"])
		build, _ := asUint32(ev["build"])
		h.Engine = EngineVersion{
			Major: uint16(major), Minor: uint16(minor), Patch: uint16(patch), Build: build,
		}
		if s, ok := ev["build_id"].(string); ok {
			h.Engine.BuildID = s
		}
	}
	h.CustomFormatVersion, _ = asInt32(m["custom_format_version"])
	if list, ok := m["custom_versions"].([]any); ok {
		h.CustomVersions = make([]CustomVersion, 0, len(list))
		for _, item := range list {
			cm, ok := item.(map[string]any)
			if !ok {
				continue
			}
			var cv CustomVersion
			if s, ok := cm["id"].(string); ok {
				g, err := guidFromString(s)
				if err != nil {
					return h, err
				}
				cv.ID = g
			}
			cv.Version, _ = asInt32(cm["version"])
			h.CustomVersions = append(h.CustomVersions, cv)
		}
	}
	if s, ok := m["save_game_class_name"].(string); ok {
		h.SaveGameClassName = s
	}
	return h, nil
}

func liftProperties(raw any) (*OrderedMap, error) {
	om := NewOrderedMap()
	list, ok := raw.([]any)
	if !ok {
		if raw == nil {
			return om, nil
		}
		return nil, fmt.Errorf("palsave: doc properties is not an array")
	}
	for _, item := range list {
		m, ok := item.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("palsave: doc property entry is not an object")
		}
		name, _ := m["name"].(string)
		p, err := liftProperty(m)
		if err != nil {
			return nil, err
		}
		om.Set(name, p)
	}
	return om, nil
}

func liftProperty(m map[string]any) (Property, error) {
	typeName, _ := m["type"].(string)
	p := Property{TypeName: typeName}
	if ai, ok := m["array_index"]; ok {
		p.ArrayIndex, _ = asUint32(ai)
	}

	switch typeName {
	case "EnumProperty", "ByteProperty":
		enumName, _ := m["enum_name"].(string)
		p.Header = EnumHeader{EnumName: enumName}
	case "StructProperty":
		structType, _ := m["struct_type"].(string)
		h := StructHeader{StructType: structType}
		if s, ok := m["id"].(string); ok {
			g, err := guidFromString(s)
			if err != nil {
				return p, err
			}
			h.ID = g
		}
		p.Header = h
	case "ArrayProperty":
		elementType, _ := m["element_type"].(string)
		p.Header = ArrayHeader{ElementType: elementType}
	case "SetProperty":
		elementType, _ := m["element_type"].(string)
		p.Header = SetHeader{ElementType: elementType}
	case "MapProperty":
		keyType, _ := m["key_type"].(string)
		valueType, _ := m["value_type"].(string)
		p.Header = MapHeader{KeyType: keyType, ValueType: valueType}
	case "BoolProperty":
		p.Header = NoHeader{}
	default:
		p.Header = NoHeader{}
	}

	v, err := liftTypedValue(typeName, m["value"])
	if err != nil {
		return p, err
	}
	p.Value = v
	if typeName == "BoolProperty" {
		if b, ok := v.(BoolValue); ok {
			p.Header = BoolHeader{Value: bool(b)}
		}
	}
	return p, nil
}

// liftTypedValue reconstructs a Value given the type_name governing it
// (a property's own type_name, or the element_type/key_type/value_type
// of an enclosing array/set/map). Scalar JSON primitives are ambiguous
// on their own — a bare float64 could be any integer width, float
// width, or (for ByteProperty) a raw byte — so typeName disambiguates
// exactly as decodeBareValue/decodeTypedValue do on the decode side.
// Composite and self-describing shapes (struct, array, map, bytes,
// enum, custom) carry their own tag and ignore typeName. A set lowers
// to the same {element_type, values} shape as an array, so SetProperty
// is told apart by typeName.
func liftTypedValue(typeName string, raw any) (Value, error) {
	switch typeName {
	case "BoolProperty":
		b, _ := raw.(bool)
		return BoolValue(b), nil
	case "Int8Property":
		return IntValue{Bits: KindInt8, Value: int64(asFloatValue(raw))}, nil
	case "Int16Property":
		return IntValue{Bits: KindInt16, Value: int64(asFloatValue(raw))}, nil
	case "IntProperty", "Int32Property":
		return IntValue{Bits: KindInt32, Value: int64(asFloatValue(raw))}, nil
	case "Int64Property":
		return IntValue{Bits: KindInt64, Value: int64(asFloatValue(raw))}, nil
	case "UInt16Property":
		return UintValue{Bits: KindUInt16, Value: uint64(asFloatValue(raw))}, nil
	case "UInt32Property":
		return UintValue{Bits: KindUInt32, Value: uint64(asFloatValue(raw))}, nil
	case "UInt64Property":
		return UintValue{Bits: KindUInt64, Value: uint64(asFloatValue(raw))}, nil
	case "FloatProperty":
		return FloatValue{Bits: KindFloat32, Value: asFloatValue(raw)}, nil
	case "DoubleProperty":
		return FloatValue{Bits: KindFloat64, Value: asFloatValue(raw)}, nil
	case "NameProperty":
		return NameValue(stringOr(raw)), nil
	case "StrProperty":
		return StringValue(stringOr(raw)), nil
	case "ByteProperty", "UInt8Property":
		switch x := raw.(type) {
		case string:
			return NameValue(x), nil
		case map[string]any:
			return liftObjectValue(x)
		default:
			return UintValue{Bits: KindUInt8, Value: uint64(asFloatValue(raw))}, nil
		}
	case "SetProperty":
		m, ok := raw.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("palsave: unrecognized doc value shape %T for type %q", raw, typeName)
		}
		elementType := stringOr(m["element_type"])
		values, err := liftValueList(elementType, m["values"])
		if err != nil {
			return nil, err
		}
		return SetValue{ElementType: elementType, Values: values}, nil
	default:
		m, ok := raw.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("palsave: unrecognized doc value shape %T for type %q", raw, typeName)
		}
		return liftObjectValue(m)
	}
}

func liftObjectValue(m map[string]any) (Value, error) {
	switch {
	case hasKeys(m, "enum_name", "value") && !hasKeys(m, "fields"):
		enumName, _ := m["enum_name"].(string)
		value, _ := m["value"].(string)
		return EnumValue{EnumName: enumName, Value: value}, nil
	case hasKeys(m, "struct_type", "fields"):
		structType := stringOr(m["struct_type"])
		knownFields, known, err := liftKnownStructFields(structType, m["fields"])
		if err != nil {
			return nil, err
		}
		var fields *OrderedMap
		if known {
			fields = knownFields
		} else {
			fields, err = liftProperties(m["fields"])
			if err != nil {
				return nil, err
			}
		}
		sv := StructValue{TypeName: structType, Fields: fields}
		if s, ok := m["id"].(string); ok {
			g, err := guidFromString(s)
			if err != nil {
				return nil, err
			}
			sv.ID = g
		}
		return sv, nil
	case hasKeys(m, "element_type", "values") && !hasKeys(m, "key_type"):
		elementType := stringOr(m["element_type"])
		values, err := liftValueList(elementType, m["values"])
		if err != nil {
			return nil, err
		}
		av := ArrayValue{ElementType: elementType, Values: values}
		if sh, ok := m["struct_header"].(map[string]any); ok {
			g, err := guidFromString(stringOr(sh["id"]))
			if err != nil {
				return nil, err
			}
			av.StructHeader = &ArrayStructHeader{
				Name:       stringOr(sh["name"]),
				StructType: stringOr(sh["struct_type"]),
				ID:         g,
			}
		}
		return av, nil
	case hasKeys(m, "key_type", "value_type", "entries"):
		keyType := stringOr(m["key_type"])
		valueType := stringOr(m["value_type"])
		rawEntries, _ := m["entries"].([]any)
		entries := make([]MapEntry, 0, len(rawEntries))
		for _, re := range rawEntries {
			em, ok := re.(map[string]any)
			if !ok {
				continue
			}
			key, err := liftTypedValue(keyType, em["key"])
			if err != nil {
				return nil, err
			}
			val, err := liftTypedValue(valueType, em["value"])
			if err != nil {
				return nil, err
			}
			entries = append(entries, MapEntry{Key: key, Value: val})
		}
		return MapValue{KeyType: keyType, ValueType: valueType, Entries: entries}, nil
	case hasKeys(m, "element_type", "values"):
		elementType := stringOr(m["element_type"])
		values, err := liftValueList(elementType, m["values"])
		if err != nil {
			return nil, err
		}
		return SetValue{ElementType: elementType, Values: values}, nil
	case hasKeys(m, "values") && !hasKeys(m, "element_type"):
		ints, _ := m["values"].([]any)
		b := make([]byte, len(ints))
		for i, v := range ints {
			n, _ := asUint32(v)
			b[i] = byte(n)
		}
		return BytesValue(b), nil
	case hasKeys(m, "custom_type"):
		cv := CustomValue{CustomType: stringOr(m["custom_type"]), Value: m["value"]}
		if tb, ok := m["trailing_bytes"].([]any); ok {
			b := make([]byte, len(tb))
			for i, v := range tb {
				n, _ := asUint32(v)
				b[i] = byte(n)
			}
			cv.Trailing = b
		}
		return cv, nil
	default:
		return nil, fmt.Errorf("palsave: unrecognized doc object value shape")
	}
}

// liftKnownStructFields mirrors decodeStructBody's closed set of fixed-
// layout struct types on the lift side: these synthetic fields (built
// via prop()/fieldsOf() on decode) carry no type_name of their own, so
// their Bits-tagged Value can only be reconstructed by structType, not
// inferred from the lowered JSON shape. Unknown struct types return
// known=false so the caller falls back to the generic property-list
// lift (liftProperties), mirroring decodeStructBody's own fallback.
func liftKnownStructFields(structType string, fieldsRaw any) (fields *OrderedMap, known bool, err error) {
	f := func(name string) float64 { return asFloatValue(fieldValueByName(fieldsRaw, name)) }
	switch structType {
	case "Vector":
		return fieldsOf(
			prop("X", FloatValue{Bits: KindFloat64, Value: f("X")}),
			prop("Y", FloatValue{Bits: KindFloat64, Value: f("Y")}),
			prop("Z", FloatValue{Bits: KindFloat64, Value: f("Z")}),
		), true, nil
	case "Quat":
		return fieldsOf(
			prop("X", FloatValue{Bits: KindFloat64, Value: f("X")}),
			prop("Y", FloatValue{Bits: KindFloat64, Value: f("Y")}),
			prop("Z", FloatValue{Bits: KindFloat64, Value: f("Z")}),
			prop("W", FloatValue{Bits: KindFloat64, Value: f("W")}),
		), true, nil
	case "LinearColor":
		return fieldsOf(
			prop("R", FloatValue{Bits: KindFloat32, Value: f("R")}),
			prop("G", FloatValue{Bits: KindFloat32, Value: f("G")}),
			prop("B", FloatValue{Bits: KindFloat32, Value: f("B")}),
			prop("A", FloatValue{Bits: KindFloat32, Value: f("A")}),
		), true, nil
	case "DateTime":
		return fieldsOf(
			prop("Ticks", IntValue{Bits: KindInt64, Value: int64(f("Ticks"))}),
		), true, nil
	case "Guid":
		g, err := guidFromString(stringOr(fieldValueByName(fieldsRaw, "Value")))
		if err != nil {
			return nil, true, err
		}
		return fieldsOf(prop("Value", GuidValue(g))), true, nil
	case "IntPoint":
		return fieldsOf(
			prop("X", IntValue{Bits: KindInt32, Value: int64(f("X"))}),
			prop("Y", IntValue{Bits: KindInt32, Value: int64(f("Y"))}),
		), true, nil
	default:
		return nil, false, nil
	}
}

func fieldValueByName(raw any, name string) any {
	list, _ := raw.([]any)
	for _, item := range list {
		fm, ok := item.(map[string]any)
		if !ok {
			continue
		}
		if stringOr(fm["name"]) == name {
			return fm["value"]
		}
	}
	return nil
}

func liftValueList(elementType string, raw any) ([]Value, error) {
	list, _ := raw.([]any)
	values := make([]Value, 0, len(list))
	for _, item := range list {
		v, err := liftTypedValue(elementType, item)
		if err != nil {
			return nil, err
		}
		values = append(values, v)
	}
	return values, nil
}

func hasKeys(m map[string]any, keys ...string) bool {
	for _, k := range keys {
		if _, ok := m[k]; !ok {
			return false
		}
	}
	return true
}

func stringOr(v any) string {
	s, _ := v.(string)
	return s
}

func asInt32(v any) (int32, bool) {
	n, ok := asUint32(v)
	return int32(n), ok
}

func asUint32(v any) (uint32, bool) {
	switch x := v.(type) {
	case float64:
		return uint32(x), true
	case int:
		return uint32(x), true
	case int32:
		return uint32(x), true
	case uint32:
		return x, true
	case int64:
		return uint32(x), true
	default:
		return 0, false
	}
}

// guidFromString parses a dashed hex Guid string into the wire-order
// four-little-endian-uint32-word representation (spec §9 "Guid byte
// order"), via the same conversion Guid.UnmarshalJSON uses.
func guidFromString(s string) (Guid, error) {
	var g Guid
	if s == "" {
		return g, nil
	}
	if err := g.UnmarshalJSON([]byte(`"` + s + `"`)); err != nil {
		return g, err
	}
	return g, nil
}
