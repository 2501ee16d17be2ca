// Copyright 2018 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package palsave

import (
	"encoding/binary"
	"strings"

	"github.com/saferwall/palsave/codec"
)

// Container magic bytes and save-type bytes (spec §4.F), grounded on
// original_source/.../compressor/__init__.py's MagicBytes/SaveType.
var (
	magicPlZ = [3]byte{'P', 'l', 'Z'}
	magicPlM = [3]byte{'P', 'l', 'M'}
)

const (
	saveTypeDict       = 0x30
	saveTypeZlibSingle = 0x31
	saveTypeZlibDouble = 0x32
)

// cnkPrefixLen is the length of the optional chunk-style prefix some inputs carry
// ahead of the standard SAV header (spec glossary "CNK").
const cnkPrefixLen = 12

// DecodeSav decompresses a SAV container to its GVAS payload (spec
// §4.F), dispatching to the zlib or dictionary codec by magic byte.
func DecodeSav(data []byte) ([]byte, error) {
	if len(data) < 12 {
		return nil, ErrFileTooSmall
	}

	offset := 0
	if len(data) >= cnkPrefixLen+12 && string(data[0:3]) == "CNK" {
		offset = cnkPrefixLen
	}
	if len(data) < offset+12 {
		return nil, ErrFileTooSmall
	}

	uncompressedLen := binary.LittleEndian.Uint32(data[offset : offset+4])
	compressedLen := binary.LittleEndian.Uint32(data[offset+4 : offset+8])
	magic := data[offset+8 : offset+11]
	saveType := data[offset+11]
	payload := data[offset+12:]

	switch {
	case string(magic) == string(magicPlZ[:]):
		if saveType != saveTypeZlibSingle && saveType != saveTypeZlibDouble {
			return nil, ErrUnsupportedSaveType
		}
		if saveType == saveTypeZlibSingle {
			// compressed_len is the wire length of the single compressed
			// blob.
			if len(payload) < int(compressedLen) {
				return nil, ErrFileTooSmall
			}
			payload = payload[:compressedLen]
			first, err := codec.Zlib{}.Decompress(payload, int(compressedLen))
			if err != nil {
				return nil, err
			}
			if uint32(len(first)) != uncompressedLen {
				return nil, ErrUncompressedLenMismatch
			}
			return first, nil
		}
		// Double pass: compressed_len names the length of the
		// intermediate (once-decompressed) data, not the wire length of
		// the outer blob, so the outer blob itself is simply whatever
		// remains in the file (spec §4.F).
		first, err := codec.Zlib{}.Decompress(payload, int(compressedLen))
		if err != nil {
			return nil, err
		}
		if uint32(len(first)) != compressedLen {
			return nil, ErrUncompressedLenMismatch
		}
		second, err := codec.Zlib{}.Decompress(first, int(uncompressedLen))
		if err != nil {
			return nil, err
		}
		if uint32(len(second)) != uncompressedLen {
			return nil, ErrUncompressedLenMismatch
		}
		return second, nil

	case string(magic) == string(magicPlM[:]):
		if saveType != saveTypeDict {
			return nil, ErrUnsupportedSaveType
		}
		if len(payload) < int(compressedLen) {
			return nil, ErrFileTooSmall
		}
		payload = payload[:compressedLen]
		out, err := codec.Dict{}.Decompress(payload, int(uncompressedLen))
		if err != nil {
			return nil, err
		}
		if uint32(len(out)) != uncompressedLen {
			return nil, ErrUncompressedLenMismatch
		}
		return out, nil

	default:
		return nil, ErrUnknownContainerFormat
	}
}

// EncodeSav rebuilds a SAV container from a GVAS payload (spec §4.F),
// choosing the codec per Options.Codec or, when CodecAuto, the
// save_game_class_name substring heuristic the original tool uses
// (spec §9 Open Question 1, original_source/.../commands/convert.py).
func EncodeSav(gvas []byte, saveGameClassName string, opts Options) ([]byte, error) {
	magic, saveType := selectCodec(saveGameClassName, opts.Codec)

	var compressed []byte
	var err error
	var uncompressedLen, compressedLen uint32

	switch magic {
	case magicPlZ:
		if saveType == saveTypeZlibSingle {
			compressed, err = codec.Zlib{}.Compress(gvas)
			if err != nil {
				return nil, err
			}
			uncompressedLen = uint32(len(gvas))
			compressedLen = uint32(len(compressed))
		} else {
			first, err1 := codec.Zlib{}.Compress(gvas)
			if err1 != nil {
				return nil, err1
			}
			second, err2 := codec.Zlib{}.Compress(first)
			if err2 != nil {
				return nil, err2
			}
			compressed = second
			uncompressedLen = uint32(len(gvas))
			compressedLen = uint32(len(first))
		}
	case magicPlM:
		compressed, err = codec.Dict{}.Compress(gvas)
		if err != nil {
			return nil, err
		}
		uncompressedLen = uint32(len(gvas))
		compressedLen = uint32(len(compressed))
	}

	out := make([]byte, 0, 12+len(compressed))
	var lenBuf [4]byte
	binary.LittleEndian.PutUint32(lenBuf[:], uncompressedLen)
	out = append(out, lenBuf[:]...)
	binary.LittleEndian.PutUint32(lenBuf[:], compressedLen)
	out = append(out, lenBuf[:]...)
	out = append(out, magic[:]...)
	out = append(out, saveType)
	out = append(out, compressed...)
	return out, nil
}

// selectCodec implements spec §4.F's write-side codec choice plus the
// §9 Open Question 1 resolution: Options.Codec, when set, overrides the
// substring heuristic rather than being silently inferred.
func selectCodec(saveGameClassName string, override CodecOverride) ([3]byte, byte) {
	switch override {
	case CodecZlibSinglePass:
		return magicPlZ, saveTypeZlibSingle
	case CodecZlibDoublePass:
		return magicPlZ, saveTypeZlibDouble
	case CodecDict:
		return magicPlM, saveTypeDict
	}
	if strings.Contains(saveGameClassName, "Pal.PalWorldSaveGame") ||
		strings.Contains(saveGameClassName, "Pal.PalLocalWorldSaveGame") {
		return magicPlM, saveTypeDict
	}
	return magicPlZ, saveTypeZlibSingle
}
