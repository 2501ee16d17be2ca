// Copyright 2018 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package palsave

import "github.com/saferwall/palsave/log"

// CodecOverride lets a caller force which compression codec EncodeSav
// uses instead of relying on the save-class-name substring heuristic
// (spec §9 Open Question 1).
type CodecOverride uint8

const (
	// CodecAuto picks the codec from the header's save_game_class_name,
	// matching the original tool's default behavior.
	CodecAuto CodecOverride = iota
	// CodecZlibSinglePass forces "PlZ" / save_type 0x31.
	CodecZlibSinglePass
	// CodecZlibDoublePass forces "PlZ" / save_type 0x32 (the CLI's
	// --codec zlib override in spec §6).
	CodecZlibDoublePass
	// CodecDict forces "PlM" / save_type 0x30.
	CodecDict
)

// Options carries every tunable knob the root package exposes, grounded
// on the teacher's Options struct (file.go's Fast/SectionEntropy/
// MaxCOFFSymbolsCount/Logger fields passed into pe.New/pe.NewBytes).
type Options struct {
	// TypeHints supplies struct/enum types for paths the envelope alone
	// cannot disambiguate (spec §4.D). Defaults to an empty lookup.
	TypeHints TypeHints

	// CustomProperties supplies the Handler registered for matched paths
	// (spec §4.D). Defaults to an empty lookup.
	CustomProperties CustomProperties

	// Logger receives debug/info/warn/error diagnostics. Defaults to a
	// no-op logger.
	Logger log.Logger

	// AllowNaN controls whether DOC lowering preserves non-finite floats
	// (true, the default) or replaces them with a null sentinel (spec
	// §3 "Float policy").
	AllowNaN bool

	// Codec overrides the write-side codec selection (spec §9 Open
	// Question 1). CodecAuto (the zero value) preserves the original
	// substring-sniffing default.
	Codec CodecOverride
}

// DefaultOptions returns the zero-value-safe Options used when a caller
// doesn't need to customize anything: no type hints, no custom
// properties, a no-op logger, NaN/Inf preserved, automatic codec
// selection.
func DefaultOptions() Options {
	return Options{Logger: log.NewNop(), AllowNaN: true}
}
