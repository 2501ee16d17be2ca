// Copyright 2018 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package palsave

import "github.com/saferwall/palsave/log"

// HandlerContext carries the ambient state a custom-property Handler
// needs beyond the value it was handed: the dotted path it was matched
// at (for error/log context) and the injected logger (spec §9: "Logging
// is injected as a minimal trace(msg) interface").
type HandlerContext struct {
	Path   Path
	Logger log.Logger
}

// Handler is the contract a custom-property sub-format decoder/encoder
// implements (spec §4.E). Decode receives the already generically
// decoded value (an ArrayValue, MapValue, BytesValue, or StructValue,
// depending on what the matched property's type_name produced) and
// returns a replacement Value — typically a CustomValue, but handlers
// that only rewrite a nested field may return the same shape with an
// inner value replaced. Encode performs the inverse transform, producing
// a Value the standard property writer can serialize with the ordinary
// ArrayProperty/MapProperty/struct-body logic.
type Handler interface {
	Decode(ctx *HandlerContext, v Value) (Value, error)
	Encode(ctx *HandlerContext, v Value) (Value, error)
}

// TypeHints supplies the struct/enum type name a property's path maps to
// when the envelope alone is insufficient to disambiguate it (spec
// §4.D). Implementations apply longest-specific-wins wildcard matching.
type TypeHints interface {
	Lookup(path string) (typeName string, ok bool)
}

// CustomProperties supplies the Handler registered for a property's path,
// if any (spec §4.D).
type CustomProperties interface {
	Lookup(path string) (h Handler, ok bool)
}

// noHints/noCustomProperties are the zero-value fallbacks used when
// Options leaves TypeHints/CustomProperties unset, so the property codec
// never needs a nil check at every call site.
type noHints struct{}

func (noHints) Lookup(string) (string, bool) { return "", false }

type noCustomProperties struct{}

func (noCustomProperties) Lookup(string) (Handler, bool) { return nil, false }
