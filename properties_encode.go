// Copyright 2018 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package palsave

import "fmt"

// writeTypedHeader emits the type-specific header fields that precede a
// property's size-delimited payload, the encode mirror of the header
// portion of decodeTypedValue.
func writeTypedHeader(w *Writer, typeName string, h Header) {
	switch typeName {
	case "BoolProperty":
		// The bool value itself is carried entirely in the header and
		// has no further payload; writeTypedValue is a no-op for it.
		bh := h.(BoolHeader)
		if bh.Value {
			w.WriteU8(1)
		} else {
			w.WriteU8(0)
		}
		return
	case "EnumProperty", "ByteProperty":
		eh := h.(EnumHeader)
		w.WriteString(eh.EnumName)
		w.WriteU8(0)
	case "StructProperty":
		sh := h.(StructHeader)
		w.WriteString(sh.StructType)
		w.WriteGuid(sh.ID)
		w.WriteU8(0)
	case "ArrayProperty":
		ah := h.(ArrayHeader)
		w.WriteString(ah.ElementType)
		w.WriteU8(0)
	case "SetProperty":
		sh := h.(SetHeader)
		w.WriteString(sh.ElementType)
		w.WriteU8(0)
	case "MapProperty":
		mh := h.(MapHeader)
		w.WriteString(mh.KeyType)
		w.WriteString(mh.ValueType)
		w.WriteU8(0)
	default:
		// Every scalar numeric/string/name property type carries a
		// single zero terminator byte ahead of its value.
		w.WriteU8(0)
	}
}

// writeTypedValue emits the size-delimited payload for typeName, the
// encode mirror of decodeTypedValue's value portion.
func writeTypedValue(w *Writer, typeName string, v Value, path Path, c *codecCtx) error {
	switch typeName {
	case "BoolProperty":
		return nil
	case "Int8Property":
		w.WriteI8(int8(v.(IntValue).Value))
	case "Int16Property":
		w.WriteI16(int16(v.(IntValue).Value))
	case "IntProperty", "Int32Property":
		w.WriteI32(int32(v.(IntValue).Value))
	case "Int64Property":
		w.WriteI64(v.(IntValue).Value)
	case "UInt16Property":
		w.WriteU16(uint16(v.(UintValue).Value))
	case "UInt32Property":
		w.WriteU32(uint32(v.(UintValue).Value))
	case "UInt64Property":
		w.WriteU64(v.(UintValue).Value)
	case "FloatProperty":
		w.WriteF32(float32(v.(FloatValue).Value))
	case "DoubleProperty":
		w.WriteF64(v.(FloatValue).Value)
	case "NameProperty":
		w.WriteString(string(v.(NameValue)))
	case "StrProperty":
		w.WriteString(string(v.(StringValue)))
	case "EnumProperty":
		w.WriteString(v.(EnumValue).Value)
	case "ByteProperty":
		switch bv := v.(type) {
		case UintValue:
			w.WriteU8(uint8(bv.Value))
		case NameValue:
			w.WriteString(string(bv))
		default:
			return fmt.Errorf("palsave: unexpected value %T for ByteProperty", v)
		}
	case "StructProperty":
		sv, ok := v.(StructValue)
		if !ok {
			return fmt.Errorf("palsave: unexpected value %T for StructProperty", v)
		}
		return encodeStructBody(w, sv.TypeName, sv, path, c)
	case "ArrayProperty":
		av, ok := v.(ArrayValue)
		if !ok {
			return fmt.Errorf("palsave: unexpected value %T for ArrayProperty", v)
		}
		return encodeArrayPayload(w, av, path, c)
	case "SetProperty":
		sv, ok := v.(SetValue)
		if !ok {
			return fmt.Errorf("palsave: unexpected value %T for SetProperty", v)
		}
		w.WriteU32(0) // removed-index count
		var werr error
		WriteArray(w, func(ww *Writer, el Value) {
			if werr != nil {
				return
			}
			werr = encodeBareValue(ww, sv.ElementType, el, path.Push("*"), c)
		}, sv.Values)
		return werr
	case "MapProperty":
		mv, ok := v.(MapValue)
		if !ok {
			return fmt.Errorf("palsave: unexpected value %T for MapProperty", v)
		}
		w.WriteU32(0) // padding
		w.WriteU32(uint32(len(mv.Entries)))
		for _, e := range mv.Entries {
			if err := encodeBareValue(w, mv.KeyType, e.Key, path.Push("Key"), c); err != nil {
				return err
			}
			if err := encodeBareValue(w, mv.ValueType, e.Value, path.Push("Value"), c); err != nil {
				return err
			}
		}
	default:
		return fmt.Errorf("palsave: unknown property type %q", typeName)
	}
	return nil
}

func encodeArrayPayload(w *Writer, av ArrayValue, path Path, c *codecCtx) error {
	if av.ElementType == "StructProperty" {
		sh := av.StructHeader
		if sh == nil {
			return fmt.Errorf("palsave: struct array at %s missing inner header", path.String())
		}
		w.WriteU32(uint32(len(av.Values)))
		w.WriteString(sh.Name)
		w.WriteString("StructProperty")
		innerPayload := WithScratch(func(scratch *Writer) {
			for _, el := range av.Values {
				sv, ok := el.(StructValue)
				if !ok {
					continue
				}
				_ = encodeStructBody(scratch, sh.StructType, sv, path.Push("*"), c)
			}
		})
		w.WriteU64(uint64(len(innerPayload)))
		w.WriteString(sh.StructType)
		w.WriteGuid(sh.ID)
		w.WriteU8(0)
		w.Write(innerPayload)
		return nil
	}

	w.WriteU32(uint32(len(av.Values)))
	for _, el := range av.Values {
		if err := encodeBareValue(w, av.ElementType, el, path.Push("*"), c); err != nil {
			return err
		}
	}
	return nil
}

func encodeBareValue(w *Writer, typeName string, v Value, path Path, c *codecCtx) error {
	switch typeName {
	case "BoolProperty":
		w.WriteBool(bool(v.(BoolValue)))
	case "ByteProperty", "UInt8Property":
		switch bv := v.(type) {
		case EnumValue:
			w.WriteString(bv.Value)
		case UintValue:
			w.WriteU8(uint8(bv.Value))
		default:
			return fmt.Errorf("palsave: unexpected value %T for byte element", v)
		}
	case "Int8Property":
		w.WriteI8(int8(v.(IntValue).Value))
	case "Int16Property":
		w.WriteI16(int16(v.(IntValue).Value))
	case "IntProperty", "Int32Property":
		w.WriteI32(int32(v.(IntValue).Value))
	case "Int64Property":
		w.WriteI64(v.(IntValue).Value)
	case "UInt16Property":
		w.WriteU16(uint16(v.(UintValue).Value))
	case "UInt32Property":
		w.WriteU32(uint32(v.(UintValue).Value))
	case "UInt64Property":
		w.WriteU64(v.(UintValue).Value)
	case "FloatProperty":
		w.WriteF32(float32(v.(FloatValue).Value))
	case "DoubleProperty":
		w.WriteF64(v.(FloatValue).Value)
	case "NameProperty":
		w.WriteString(string(v.(NameValue)))
	case "StrProperty":
		w.WriteString(string(v.(StringValue)))
	case "EnumProperty":
		w.WriteString(v.(EnumValue).Value)
	case "StructProperty":
		sv, ok := v.(StructValue)
		if !ok {
			return fmt.Errorf("palsave: unexpected value %T for bare struct", v)
		}
		return encodeStructBody(w, sv.TypeName, sv, path, c)
	default:
		return fmt.Errorf("palsave: unsupported bare value type %q at %s", typeName, path.String())
	}
	return nil
}

func encodeStructBody(w *Writer, structType string, sv StructValue, path Path, c *codecCtx) error {
	get := func(name string) (Value, bool) {
		p, ok := sv.Fields.Get(name)
		if !ok {
			return nil, false
		}
		return p.Value, true
	}
	switch structType {
	case "Vector":
		x, _ := get("X")
		y, _ := get("Y")
		z, _ := get("Z")
		w.WriteF64(x.(FloatValue).Value)
		w.WriteF64(y.(FloatValue).Value)
		w.WriteF64(z.(FloatValue).Value)
	case "Quat":
		for _, name := range []string{"X", "Y", "Z", "W"} {
			v, _ := get(name)
			w.WriteF64(v.(FloatValue).Value)
		}
	case "LinearColor":
		for _, name := range []string{"R", "G", "B", "A"} {
			v, _ := get(name)
			w.WriteF32(float32(v.(FloatValue).Value))
		}
	case "DateTime":
		v, _ := get("Ticks")
		w.WriteI64(v.(IntValue).Value)
	case "Guid":
		v, _ := get("Value")
		w.WriteGuid(Guid(v.(GuidValue)))
	case "IntPoint":
		x, _ := get("X")
		y, _ := get("Y")
		w.WriteI32(int32(x.(IntValue).Value))
		w.WriteI32(int32(y.(IntValue).Value))
	default:
		return writeProperties(w, sv.Fields, path, c)
	}
	return nil
}
