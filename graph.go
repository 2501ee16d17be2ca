// Copyright 2018 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package palsave

// Kind tags every node of the typed property graph (spec §3). Folding the
// eight integer widths and two float widths into one Kind field rather
// than into ten near-identical Go types mirrors how the teacher folds its
// ~20 ImageDebugType* constants into a single int field (debug.go) rather
// than a type per debug-directory kind.
type Kind uint8

const (
	KindBool Kind = iota
	KindInt8
	KindInt16
	KindInt32
	KindInt64
	KindUInt8
	KindUInt16
	KindUInt32
	KindUInt64
	KindFloat32
	KindFloat64
	KindString
	KindName
	KindEnum
	KindGuid
	KindStruct
	KindArray
	KindMap
	KindSet
	KindBytes
	KindCustom
)

// Value is the tagged union every property or nested value conforms to.
type Value interface {
	isValue()
	Kind() Kind
}

// BoolValue holds a BoolProperty's payload.
type BoolValue bool

func (BoolValue) isValue()   {}
func (BoolValue) Kind() Kind { return KindBool }

// IntValue holds any signed integer width (Int8/16/32/64Property); Bits
// records the original width so re-encoding picks the right writer.
type IntValue struct {
	Bits  Kind // one of KindInt8, KindInt16, KindInt32, KindInt64
	Value int64
}

func (IntValue) isValue()     {}
func (v IntValue) Kind() Kind { return v.Bits }

// UintValue holds any unsigned integer width.
type UintValue struct {
	Bits  Kind // one of KindUInt8, KindUInt16, KindUInt32, KindUInt64
	Value uint64
}

func (UintValue) isValue()     {}
func (v UintValue) Kind() Kind { return v.Bits }

// FloatValue holds FloatProperty (32-bit) or DoubleProperty (64-bit).
type FloatValue struct {
	Bits  Kind // KindFloat32 or KindFloat64
	Value float64
}

func (FloatValue) isValue()     {}
func (v FloatValue) Kind() Kind { return v.Bits }

// StringValue holds StrProperty and plain FString payloads.
type StringValue string

func (StringValue) isValue()   {}
func (StringValue) Kind() Kind { return KindString }

// NameValue holds an interned FName identifier.
type NameValue string

func (NameValue) isValue()   {}
func (NameValue) Kind() Kind { return KindName }

// EnumValue holds an EnumProperty's qualified enum value, e.g.
// "EPalBaseCampModuleType::Energy".
type EnumValue struct {
	EnumName string
	Value    string
}

func (EnumValue) isValue()   {}
func (EnumValue) Kind() Kind { return KindEnum }

// GuidValue holds a standalone Guid value (as opposed to a struct
// envelope's own Guid, e.g. spec's Guid struct body).
type GuidValue Guid

func (GuidValue) isValue()   {}
func (GuidValue) Kind() Kind { return KindGuid }

// StructValue holds a struct body: its type name, identity Guid (zero if
// none was present on the wire), and its ordered field map.
type StructValue struct {
	TypeName string
	ID       Guid
	Fields   *OrderedMap
}

func (StructValue) isValue()   {}
func (StructValue) Kind() Kind { return KindStruct }

// ArrayValue holds an ArrayProperty's payload.
type ArrayValue struct {
	ElementType string
	Values      []Value
	// StructHeader carries struct-array-specific inner framing that must
	// survive unchanged to re-encode: the inner property name, struct
	// type name and guid. The inner byte size is not stored; it is
	// recomputed on write.
	StructHeader *ArrayStructHeader
}

func (ArrayValue) isValue()   {}
func (ArrayValue) Kind() Kind { return KindArray }

// ArrayStructHeader is the inner header ArrayProperty[StructProperty]
// carries ahead of its struct bodies (spec §4.C).
type ArrayStructHeader struct {
	Name       string
	StructType string
	ID         Guid
}

// MapEntry is one (key, value) pair of a MapProperty. Spec §3 is explicit
// that map entries are an ordered sequence of pairs, not a hash map.
type MapEntry struct {
	Key   Value
	Value Value
}

// MapValue holds a MapProperty's payload.
type MapValue struct {
	KeyType   string
	ValueType string
	Entries   []MapEntry
}

func (MapValue) isValue()   {}
func (MapValue) Kind() Kind { return KindMap }

// SetValue holds a SetProperty's payload.
type SetValue struct {
	ElementType string
	Values      []Value
}

func (SetValue) isValue()   {}
func (SetValue) Kind() Kind { return KindSet }

// BytesValue is the opaque-payload fallback used whenever no handler is
// registered for a property's path (spec §3 "No hidden loss").
type BytesValue []byte

func (BytesValue) isValue()   {}
func (BytesValue) Kind() Kind { return KindBytes }

// CustomValue is a decoded sub-format produced by a registered handler
// (spec §4.E). Trailing holds any bytes the handler could not interpret
// but must still preserve for round-trip (spec §7 "Handler fallback").
type CustomValue struct {
	CustomType string
	Value      any
	Trailing   []byte
}

func (CustomValue) isValue()   {}
func (CustomValue) Kind() Kind { return KindCustom }

// Header is the type-specific envelope data a Property carries alongside
// its generic name/type_name/size/array_index fields (spec §3).
type Header interface{ isHeader() }

type NoHeader struct{}

func (NoHeader) isHeader() {}

type BoolHeader struct{ Value bool }

func (BoolHeader) isHeader() {}

type EnumHeader struct{ EnumName string }

func (EnumHeader) isHeader() {}

type StructHeader struct {
	StructType string
	ID         Guid
}

func (StructHeader) isHeader() {}

type ArrayHeader struct{ ElementType string }

func (ArrayHeader) isHeader() {}

type SetHeader struct{ ElementType string }

func (SetHeader) isHeader() {}

type MapHeader struct {
	KeyType   string
	ValueType string
}

func (MapHeader) isHeader() {}

// Property is the outer record identifying a value inside a property map
// (spec §3's Property envelope).
type Property struct {
	Name       string
	TypeName   string
	ArrayIndex uint32
	Header     Header
	Value      Value
}

// Graph is the decoded representation of one GVAS file: header, the root
// property map, and the fixed trailer.
type Graph struct {
	Header     GvasHeader
	Properties *OrderedMap
	Trailer    uint32
}
