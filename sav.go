// Copyright 2018 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package palsave

// DecodeGraph runs the full .sav decode pipeline: container
// decompression (§4.F), header parsing (§4.B), and property-graph
// decoding (§4.C), mirroring the sequence Fuzz exercises.
func DecodeGraph(data []byte, opts Options) (*Graph, error) {
	gvas, err := DecodeSav(data)
	if err != nil {
		return nil, err
	}
	r := NewReader(gvas)
	header, err := ReadHeader(r)
	if err != nil {
		return nil, err
	}
	props, err := ReadProperties(r, RootPath(), opts)
	if err != nil {
		return nil, err
	}
	trailer, err := r.ReadU32()
	if err != nil {
		return nil, err
	}
	return &Graph{Header: header, Properties: props, Trailer: trailer}, nil
}

// EncodeGraph is the inverse of DecodeGraph: it serializes the header
// and property graph back to GVAS bytes and recompresses them into a
// .sav container, choosing the codec per Options.Codec or the
// save_game_class_name heuristic.
func EncodeGraph(g *Graph, opts Options) ([]byte, error) {
	w := NewWriter()
	WriteHeader(w, g.Header)
	if err := WriteProperties(w, g.Properties, opts); err != nil {
		return nil, err
	}
	w.WriteU32(g.Trailer)
	return EncodeSav(w.Bytes(), g.Header.SaveGameClassName, opts)
}
