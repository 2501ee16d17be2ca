// Copyright 2018 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package palsave

import "strings"

// Path tracks the dotted property/struct-field path used as the registry
// lookup key (spec §4.D/§9). Segments are appended as recursion descends
// into struct fields and array/map elements; the joined string is built
// lazily in String rather than eagerly concatenated on every push, per
// spec §9's "the path string is built on demand (not eagerly
// concatenated)".
type Path struct {
	segments []string
}

// RootPath returns the empty path a top-level ReadProperties call starts
// from.
func RootPath() Path { return Path{} }

// Push returns a new Path with name appended. The receiver's backing
// array is never mutated (append-copy), so sibling calls to Push from
// the same parent path never alias each other's segment slices.
func (p Path) Push(name string) Path {
	segs := make([]string, len(p.segments), len(p.segments)+1)
	copy(segs, p.segments)
	segs = append(segs, name)
	return Path{segments: segs}
}

// String renders the path as a dotted string with a leading dot, e.g.
// ".worldSaveData.BaseCampSaveData.Value.ModuleMap.Key".
func (p Path) String() string {
	if len(p.segments) == 0 {
		return ""
	}
	return "." + strings.Join(p.segments, ".")
}
