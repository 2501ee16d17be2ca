// Copyright 2018 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package palsave

import (
	"fmt"

	"github.com/saferwall/palsave/log"
)

// sentinelNone is the property name that terminates every property map
// (spec §3 "Root", §4.C).
const sentinelNone = "None"

// codecCtx bundles the ambient state every recursive decode/encode call
// needs, mirroring how the teacher threads *Options through its
// ParseX(opts) pipeline in file.go.
type codecCtx struct {
	hints   TypeHints
	custom  CustomProperties
	logger  log.Logger
	allowNaN bool
}

func newCodecCtx(opts Options) *codecCtx {
	c := &codecCtx{hints: opts.TypeHints, custom: opts.CustomProperties, logger: opts.Logger, allowNaN: opts.AllowNaN}
	if c.hints == nil {
		c.hints = noHints{}
	}
	if c.custom == nil {
		c.custom = noCustomProperties{}
	}
	if c.logger == nil {
		c.logger = log.NewNop()
	}
	return c
}

// ReadProperties reads a property map until it consumes the sentinel
// "None" property name, per spec §4.C's read_properties contract.
func ReadProperties(r *Reader, path Path, opts Options) (*OrderedMap, error) {
	return readProperties(r, path, newCodecCtx(opts))
}

func readProperties(r *Reader, path Path, c *codecCtx) (*OrderedMap, error) {
	out := NewOrderedMap()
	for {
		name, err := r.ReadString()
		if err != nil {
			return nil, &ParseError{Path: path.String(), Err: err}
		}
		if name == sentinelNone {
			return out, nil
		}
		prop, err := readProperty(r, name, path, c)
		if err != nil {
			return nil, err
		}
		out.Set(name, prop)
	}
}

// WriteProperties emits each property in props then the sentinel "None",
// mirroring ReadProperties.
func WriteProperties(w *Writer, props *OrderedMap, opts Options) error {
	return writeProperties(w, props, RootPath(), newCodecCtx(opts))
}

func writeProperties(w *Writer, props *OrderedMap, parent Path, c *codecCtx) error {
	var werr error
	props.Each(func(name string, prop Property) {
		if werr != nil {
			return
		}
		w.WriteString(name)
		werr = writeProperty(w, prop, parent.Push(name), c)
	})
	if werr != nil {
		return werr
	}
	w.WriteString(sentinelNone)
	return nil
}

func readProperty(r *Reader, name string, parent Path, c *codecCtx) (Property, error) {
	path := parent.Push(name)
	typeName, err := r.ReadString()
	if err != nil {
		return Property{}, &ParseError{Path: path.String(), Err: err}
	}
	size, err := r.ReadU64()
	if err != nil {
		return Property{}, &ParseError{Path: path.String(), Err: err}
	}
	arrayIndex, err := r.ReadU32()
	if err != nil {
		return Property{}, &ParseError{Path: path.String(), Err: err}
	}

	header, value, err := decodeTypedValue(r, typeName, size, path, c)
	if err != nil {
		return Property{}, &ParseError{Path: path.String(), Err: err}
	}

	prop := Property{Name: name, TypeName: typeName, ArrayIndex: arrayIndex, Header: header, Value: value}

	if h, ok := c.custom.Lookup(path.String()); ok {
		replaced, err := h.Decode(&HandlerContext{Path: path, Logger: c.logger}, prop.Value)
		if err != nil {
			c.logger.Debugf("custom property handler failed at %s: %v, keeping generic decode", path.String(), err)
		} else {
			prop.Value = replaced
		}
	}
	return prop, nil
}

func writeProperty(w *Writer, prop Property, path Path, c *codecCtx) error {
	w.WriteString(prop.TypeName)
	value := prop.Value

	// Undo any custom-property transform before the generic encoder runs.
	if h, ok := c.custom.Lookup(path.String()); ok {
		back, err := h.Encode(&HandlerContext{Path: path, Logger: c.logger}, value)
		if err != nil {
			return fmt.Errorf("palsave: encoding custom property %s: %w", prop.Name, err)
		}
		value = back
	}

	// size covers only the value payload decodeTypedValue bounds with
	// Sub(size) for composite types (properties.go's StructProperty/
	// ArrayProperty/SetProperty/MapProperty cases); the typed header is
	// read directly off the parent cursor ahead of that sub-reader, so
	// it must be written the same way here, after size/array_index and
	// uncounted by it.
	var werr error
	payload := WithScratch(func(scratch *Writer) {
		if err := writeTypedValue(scratch, prop.TypeName, value, path, c); err != nil {
			werr = err
		}
	})
	if werr != nil {
		return werr
	}
	w.WriteU64(uint64(len(payload)))
	w.WriteU32(prop.ArrayIndex)
	writeTypedHeader(w, prop.TypeName, prop.Header)
	w.Write(payload)
	return nil
}

// decodeTypedValue dispatches on type_name per spec §4.C step 3. The
// returned Header carries the type-specific envelope fields that live
// ahead of size/array_index's payload; Value is the decoded payload.
func decodeTypedValue(r *Reader, typeName string, size uint64, path Path, c *codecCtx) (Header, Value, error) {
	switch typeName {
	case "BoolProperty":
		v, err := r.ReadBool()
		if err != nil {
			return nil, nil, err
		}
		return BoolHeader{Value: v}, BoolValue(v), nil

	case "Int8Property":
		return readScalarHeaderedInt(r, KindInt8)
	case "Int16Property":
		return readScalarHeaderedInt(r, KindInt16)
	case "IntProperty", "Int32Property":
		return readScalarHeaderedInt(r, KindInt32)
	case "Int64Property":
		return readScalarHeaderedInt(r, KindInt64)
	case "UInt16Property":
		return readScalarHeaderedUint(r, KindUInt16)
	case "UInt32Property":
		return readScalarHeaderedUint(r, KindUInt32)
	case "UInt64Property":
		return readScalarHeaderedUint(r, KindUInt64)

	case "FloatProperty":
		if err := readTerminator(r); err != nil {
			return nil, nil, err
		}
		v, err := r.ReadF32()
		if err != nil {
			return nil, nil, err
		}
		return NoHeader{}, FloatValue{Bits: KindFloat32, Value: float64(v)}, nil

	case "DoubleProperty":
		if err := readTerminator(r); err != nil {
			return nil, nil, err
		}
		v, err := r.ReadF64()
		if err != nil {
			return nil, nil, err
		}
		return NoHeader{}, FloatValue{Bits: KindFloat64, Value: v}, nil

	case "NameProperty":
		if err := readTerminator(r); err != nil {
			return nil, nil, err
		}
		v, err := r.ReadString()
		if err != nil {
			return nil, nil, err
		}
		return NoHeader{}, NameValue(v), nil

	case "StrProperty":
		if err := readTerminator(r); err != nil {
			return nil, nil, err
		}
		v, err := r.ReadString()
		if err != nil {
			return nil, nil, err
		}
		return NoHeader{}, StringValue(v), nil

	case "EnumProperty":
		enumName, err := r.ReadString()
		if err != nil {
			return nil, nil, err
		}
		if err := readTerminator(r); err != nil {
			return nil, nil, err
		}
		v, err := r.ReadString()
		if err != nil {
			return nil, nil, err
		}
		return EnumHeader{EnumName: enumName}, EnumValue{EnumName: enumName, Value: v}, nil

	case "ByteProperty":
		enumName, err := r.ReadString()
		if err != nil {
			return nil, nil, err
		}
		if err := readTerminator(r); err != nil {
			return nil, nil, err
		}
		if enumName == sentinelNone {
			v, err := r.ReadU8()
			if err != nil {
				return nil, nil, err
			}
			return EnumHeader{EnumName: enumName}, UintValue{Bits: KindUInt8, Value: uint64(v)}, nil
		}
		v, err := r.ReadString()
		if err != nil {
			return nil, nil, err
		}
		return EnumHeader{EnumName: enumName}, NameValue(v), nil

	case "StructProperty":
		structType, err := r.ReadString()
		if err != nil {
			return nil, nil, err
		}
		id, err := r.ReadGuid()
		if err != nil {
			return nil, nil, err
		}
		if err := readTerminator(r); err != nil {
			return nil, nil, err
		}
		sub, err := r.Sub(int(size))
		if err != nil {
			return nil, nil, err
		}
		fields, err := decodeStructBody(sub, structType, path, c)
		if err != nil {
			return nil, nil, err
		}
		if !sub.EOF() {
			return nil, nil, &SizeMismatchError{Path: path.String(), Declared: size, Consumed: uint64(sub.Pos())}
		}
		return StructHeader{StructType: structType, ID: id}, fields, nil

	case "ArrayProperty":
		elementType, err := r.ReadString()
		if err != nil {
			return nil, nil, err
		}
		if err := readTerminator(r); err != nil {
			return nil, nil, err
		}
		sub, err := r.Sub(int(size))
		if err != nil {
			return nil, nil, err
		}
		v, err := decodeArrayPayload(sub, elementType, path, c)
		if err != nil {
			return nil, nil, err
		}
		if !sub.EOF() {
			return nil, nil, &SizeMismatchError{Path: path.String(), Declared: size, Consumed: uint64(sub.Pos())}
		}
		return ArrayHeader{ElementType: elementType}, v, nil

	case "SetProperty":
		elementType, err := r.ReadString()
		if err != nil {
			return nil, nil, err
		}
		if err := readTerminator(r); err != nil {
			return nil, nil, err
		}
		sub, err := r.Sub(int(size))
		if err != nil {
			return nil, nil, err
		}
		if _, err := sub.ReadU32(); err != nil { // removed-index count, typically 0
			return nil, nil, err
		}
		values, err := ReadArray(sub, func(rr *Reader) (Value, error) {
			return decodeBareValue(rr, elementType, path.Push("*"), c)
		})
		if err != nil {
			return nil, nil, err
		}
		if !sub.EOF() {
			return nil, nil, &SizeMismatchError{Path: path.String(), Declared: size, Consumed: uint64(sub.Pos())}
		}
		return SetHeader{ElementType: elementType}, SetValue{ElementType: elementType, Values: values}, nil

	case "MapProperty":
		keyType, err := r.ReadString()
		if err != nil {
			return nil, nil, err
		}
		valueType, err := r.ReadString()
		if err != nil {
			return nil, nil, err
		}
		if err := readTerminator(r); err != nil {
			return nil, nil, err
		}
		sub, err := r.Sub(int(size))
		if err != nil {
			return nil, nil, err
		}
		padding, err := sub.ReadU32()
		if err != nil {
			return nil, nil, err
		}
		if padding != 0 {
			return nil, nil, ErrPaddingNotZero
		}
		count, err := sub.ReadU32()
		if err != nil {
			return nil, nil, err
		}
		entries := make([]MapEntry, 0, count)
		for i := uint32(0); i < count; i++ {
			k, err := decodeBareValue(sub, keyType, path.Push("Key"), c)
			if err != nil {
				return nil, nil, err
			}
			v, err := decodeBareValue(sub, valueType, path.Push("Value"), c)
			if err != nil {
				return nil, nil, err
			}
			entries = append(entries, MapEntry{Key: k, Value: v})
		}
		if !sub.EOF() {
			return nil, nil, &SizeMismatchError{Path: path.String(), Declared: size, Consumed: uint64(sub.Pos())}
		}
		return MapHeader{KeyType: keyType, ValueType: valueType}, MapValue{KeyType: keyType, ValueType: valueType, Entries: entries}, nil

	default:
		return nil, nil, fmt.Errorf("palsave: unknown property type %q", typeName)
	}
}

func readScalarHeaderedInt(r *Reader, bits Kind) (Header, Value, error) {
	if err := readTerminator(r); err != nil {
		return nil, nil, err
	}
	var v int64
	var err error
	switch bits {
	case KindInt8:
		var x int8
		x, err = r.ReadI8()
		v = int64(x)
	case KindInt16:
		var x int16
		x, err = r.ReadI16()
		v = int64(x)
	case KindInt32:
		var x int32
		x, err = r.ReadI32()
		v = int64(x)
	case KindInt64:
		v, err = r.ReadI64()
	}
	if err != nil {
		return nil, nil, err
	}
	return NoHeader{}, IntValue{Bits: bits, Value: v}, nil
}

func readScalarHeaderedUint(r *Reader, bits Kind) (Header, Value, error) {
	if err := readTerminator(r); err != nil {
		return nil, nil, err
	}
	var v uint64
	var err error
	switch bits {
	case KindUInt16:
		var x uint16
		x, err = r.ReadU16()
		v = uint64(x)
	case KindUInt32:
		v32, e := r.ReadU32()
		err = e
		v = uint64(v32)
	case KindUInt64:
		v, err = r.ReadU64()
	}
	if err != nil {
		return nil, nil, err
	}
	return NoHeader{}, UintValue{Bits: bits, Value: v}, nil
}

func readTerminator(r *Reader) error {
	b, err := r.ReadU8()
	if err != nil {
		return err
	}
	if b != 0 {
		return ErrPaddingNotZero
	}
	return nil
}

// decodeArrayPayload implements the ArrayProperty payload rules from
// spec §4.C: a struct element type carries its own inner header ahead of
// N struct bodies, everything else is a plain u32 count of raw elements.
func decodeArrayPayload(r *Reader, elementType string, path Path, c *codecCtx) (Value, error) {
	if elementType == "StructProperty" {
		count, err := r.ReadU32()
		if err != nil {
			return nil, err
		}
		innerName, err := r.ReadString()
		if err != nil {
			return nil, err
		}
		innerType, err := r.ReadString()
		if err != nil {
			return nil, err
		}
		if innerType != "StructProperty" {
			return nil, &UnexpectedTypeNameError{Expected: "StructProperty", Got: innerType}
		}
		if _, err := r.ReadU64(); err != nil { // inner-size, recomputed on write
			return nil, err
		}
		structType, err := r.ReadString()
		if err != nil {
			return nil, err
		}
		id, err := r.ReadGuid()
		if err != nil {
			return nil, err
		}
		if err := readTerminator(r); err != nil {
			return nil, err
		}
		values := make([]Value, 0, count)
		for i := uint32(0); i < count; i++ {
			fields, err := decodeStructBody(r, structType, path.Push("*"), c)
			if err != nil {
				return nil, err
			}
			values = append(values, fields)
		}
		return ArrayValue{
			ElementType: elementType,
			Values:      values,
			StructHeader: &ArrayStructHeader{Name: innerName, StructType: structType, ID: id},
		}, nil
	}

	values, err := ReadArray(r, func(rr *Reader) (Value, error) {
		return decodeBareValue(rr, elementType, path.Push("*"), c)
	})
	if err != nil {
		return nil, err
	}
	return ArrayValue{ElementType: elementType, Values: values}, nil
}

// decodeBareValue decodes a "bare" value of the given type name: no
// Property envelope, used for array/set elements and map keys/values
// (spec §4.C: "Keys and values are parsed as bare values of the given
// types (not as properties)").
func decodeBareValue(r *Reader, typeName string, path Path, c *codecCtx) (Value, error) {
	switch typeName {
	case "BoolProperty":
		v, err := r.ReadBool()
		return BoolValue(v), err
	case "ByteProperty", "UInt8Property":
		if hinted, ok := c.hints.Lookup(path.String()); ok {
			// Some byte-typed array/map elements are really enum values;
			// the registry supplies the enum name to read a Name instead
			// of a raw byte (spec §4.C "Type-hint consultation").
			v, err := r.ReadString()
			return EnumValue{EnumName: hinted, Value: v}, err
		}
		v, err := r.ReadU8()
		return UintValue{Bits: KindUInt8, Value: uint64(v)}, err
	case "Int8Property":
		v, err := r.ReadI8()
		return IntValue{Bits: KindInt8, Value: int64(v)}, err
	case "Int16Property":
		v, err := r.ReadI16()
		return IntValue{Bits: KindInt16, Value: int64(v)}, err
	case "IntProperty", "Int32Property":
		v, err := r.ReadI32()
		return IntValue{Bits: KindInt32, Value: int64(v)}, err
	case "Int64Property":
		v, err := r.ReadI64()
		return IntValue{Bits: KindInt64, Value: v}, err
	case "UInt16Property":
		v, err := r.ReadU16()
		return UintValue{Bits: KindUInt16, Value: uint64(v)}, err
	case "UInt32Property":
		v, err := r.ReadU32()
		return UintValue{Bits: KindUInt32, Value: uint64(v)}, err
	case "UInt64Property":
		v, err := r.ReadU64()
		return UintValue{Bits: KindUInt64, Value: v}, err
	case "FloatProperty":
		v, err := r.ReadF32()
		return FloatValue{Bits: KindFloat32, Value: float64(v)}, err
	case "DoubleProperty":
		v, err := r.ReadF64()
		return FloatValue{Bits: KindFloat64, Value: v}, err
	case "NameProperty":
		v, err := r.ReadString()
		return NameValue(v), err
	case "StrProperty":
		v, err := r.ReadString()
		return StringValue(v), err
	case "EnumProperty":
		v, err := r.ReadString()
		return EnumValue{Value: v}, err
	case "StructProperty":
		structType, ok := c.hints.Lookup(path.String())
		if !ok {
			c.logger.Debugf("no type hint for bare struct at %s, falling back to generic property list", path.String())
			structType = ""
		}
		return decodeStructBody(r, structType, path, c)
	default:
		return nil, fmt.Errorf("palsave: unsupported bare value type %q at %s", typeName, path.String())
	}
}

// decodeStructBody dispatches on struct_type per spec §4.C. Known struct
// types have fixed fields; an unknown/empty struct_type falls back to a
// nested property list terminated by "None" (spec's
// ErrUnknownStructFallback is a warning, not a failure).
func decodeStructBody(r *Reader, structType string, path Path, c *codecCtx) (Value, error) {
	switch structType {
	case "Vector":
		x, err := r.ReadF64()
		if err != nil {
			return nil, err
		}
		y, err := r.ReadF64()
		if err != nil {
			return nil, err
		}
		z, err := r.ReadF64()
		if err != nil {
			return nil, err
		}
		return StructValue{TypeName: structType, Fields: fieldsOf(
			prop("X", FloatValue{Bits: KindFloat64, Value: x}),
			prop("Y", FloatValue{Bits: KindFloat64, Value: y}),
			prop("Z", FloatValue{Bits: KindFloat64, Value: z}),
		)}, nil
	case "Quat":
		vals := make([]float64, 4)
		for i := range vals {
			v, err := r.ReadF64()
			if err != nil {
				return nil, err
			}
			vals[i] = v
		}
		return StructValue{TypeName: structType, Fields: fieldsOf(
			prop("X", FloatValue{Bits: KindFloat64, Value: vals[0]}),
			prop("Y", FloatValue{Bits: KindFloat64, Value: vals[1]}),
			prop("Z", FloatValue{Bits: KindFloat64, Value: vals[2]}),
			prop("W", FloatValue{Bits: KindFloat64, Value: vals[3]}),
		)}, nil
	case "LinearColor":
		vals := make([]float32, 4)
		for i := range vals {
			v, err := r.ReadF32()
			if err != nil {
				return nil, err
			}
			vals[i] = v
		}
		return StructValue{TypeName: structType, Fields: fieldsOf(
			prop("R", FloatValue{Bits: KindFloat32, Value: float64(vals[0])}),
			prop("G", FloatValue{Bits: KindFloat32, Value: float64(vals[1])}),
			prop("B", FloatValue{Bits: KindFloat32, Value: float64(vals[2])}),
			prop("A", FloatValue{Bits: KindFloat32, Value: float64(vals[3])}),
		)}, nil
	case "DateTime":
		v, err := r.ReadI64()
		if err != nil {
			return nil, err
		}
		return StructValue{TypeName: structType, Fields: fieldsOf(
			prop("Ticks", IntValue{Bits: KindInt64, Value: v}),
		)}, nil
	case "Guid":
		g, err := r.ReadGuid()
		if err != nil {
			return nil, err
		}
		return StructValue{TypeName: structType, Fields: fieldsOf(
			prop("Value", GuidValue(g)),
		)}, nil
	case "IntPoint":
		x, err := r.ReadI32()
		if err != nil {
			return nil, err
		}
		y, err := r.ReadI32()
		if err != nil {
			return nil, err
		}
		return StructValue{TypeName: structType, Fields: fieldsOf(
			prop("X", IntValue{Bits: KindInt32, Value: int64(x)}),
			prop("Y", IntValue{Bits: KindInt32, Value: int64(y)}),
		)}, nil
	default:
		fields, err := readProperties(r, path, c)
		if err != nil {
			return nil, err
		}
		return StructValue{TypeName: structType, Fields: fields}, nil
	}
}

func prop(name string, v Value) Property { return Property{Name: name, Value: v, Header: NoHeader{}} }

func fieldsOf(props ...Property) *OrderedMap {
	m := NewOrderedMap()
	for _, p := range props {
		m.Set(p.Name, p)
	}
	return m
}
