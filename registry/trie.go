// Copyright 2018 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

// Package registry implements the dotted-path type-hint and
// custom-property lookup tables (spec §4.D), backing palsave.TypeHints
// and palsave.CustomProperties with a wildcard-aware prefix trie (spec
// §9: "The registry uses trie/prefix-tree matching for wildcard
// patterns"), mirroring how the teacher keeps large static lookup
// tables (dotnet_metadata_tables.go) alongside the parser rather than
// inline in the codec.
package registry

import "strings"

// node is one segment of the trie. A path is split on "." and walked
// one segment per level; "*" matches exactly one segment, "**" matches
// any (including zero) trailing segments and is only meaningful as a
// path's final registered segment.
type node struct {
	children   map[string]*node
	star       *node
	doubleStar *entry
	value      *entry
}

// entry is the trie's stored payload, opaque to trie.go itself; a
// TypeHintTable stores a string, a CustomPropertyTable stores a
// palsave.Handler.
type entry struct {
	value any
}

func newNode() *node { return &node{children: make(map[string]*node)} }

// insert registers e at path, creating trie nodes as needed. "**" ends
// the walk immediately since it matches any suffix from that point.
func (n *node) insert(path string, e entry) {
	cur := n
	for _, seg := range splitPath(path) {
		if seg == "**" {
			cur.doubleStar = &e
			return
		}
		if seg == "*" {
			if cur.star == nil {
				cur.star = newNode()
			}
			cur = cur.star
			continue
		}
		child, ok := cur.children[seg]
		if !ok {
			child = newNode()
			cur.children[seg] = child
		}
		cur = child
	}
	cur.value = &e
}

// lookup walks segments, preferring an exact child match over "*" over
// a "**" fallback at each level — since exact/star branches are
// exhausted (full recursive descent) before falling back to "**", a
// longer, more specific registered path always wins over a shorter
// wildcard one that also matches (spec §4.C "exact match or wildcard
// suffix", §9 "longest-specific-wins").
func (n *node) lookup(segments []string) (entry, bool) {
	if len(segments) == 0 {
		if n.value != nil {
			return *n.value, true
		}
		if n.doubleStar != nil {
			return *n.doubleStar, true
		}
		return entry{}, false
	}
	head, rest := segments[0], segments[1:]
	if child, ok := n.children[head]; ok {
		if e, ok := child.lookup(rest); ok {
			return e, true
		}
	}
	if n.star != nil {
		if e, ok := n.star.lookup(rest); ok {
			return e, true
		}
	}
	if n.doubleStar != nil {
		return *n.doubleStar, true
	}
	return entry{}, false
}

// splitPath turns a palsave.Path.String() result (e.g.
// ".worldSaveData.BaseCampSaveData.Value") into its segment list,
// discarding the leading empty element the leading dot produces.
func splitPath(path string) []string {
	path = strings.TrimPrefix(path, ".")
	if path == "" {
		return nil
	}
	return strings.Split(path, ".")
}
