// Copyright 2018 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package registry

import "github.com/saferwall/palsave"

// TypeHintRule is one static row of the type-hint table (spec §4.D): a
// dotted path pattern (exact, "*"-segment, or "**"-suffix wildcard)
// mapped to the struct/enum type name the envelope alone can't supply.
type TypeHintRule struct {
	Path     string
	TypeName string
}

// TypeHintTable is a palsave.TypeHints backed by a wildcard trie, built
// once from a static rule slice and read-only thereafter (spec §7:
// "a registry is read-only after construction").
type TypeHintTable struct {
	root *node
}

// NewTypeHintTable builds a TypeHintTable from rules. Later rules with
// the same path overwrite earlier ones.
func NewTypeHintTable(rules []TypeHintRule) *TypeHintTable {
	root := newNode()
	for _, r := range rules {
		root.insert(r.Path, entry{value: r.TypeName})
	}
	return &TypeHintTable{root: root}
}

// Lookup implements palsave.TypeHints.
func (t *TypeHintTable) Lookup(path string) (string, bool) {
	e, ok := t.root.lookup(splitPath(path))
	if !ok {
		return "", false
	}
	return e.value.(string), true
}

// CustomPropertyRule is one static row of the custom-property registry
// (spec §4.D): a dotted path pattern mapped to the Handler that
// reinterprets the generically decoded value at matching paths.
type CustomPropertyRule struct {
	Path    string
	Handler palsave.Handler
}

// CustomPropertyTable is a palsave.CustomProperties backed by the same
// wildcard trie structure as TypeHintTable.
type CustomPropertyTable struct {
	root *node
}

// NewCustomPropertyTable builds a CustomPropertyTable from rules.
func NewCustomPropertyTable(rules []CustomPropertyRule) *CustomPropertyTable {
	root := newNode()
	for _, r := range rules {
		root.insert(r.Path, entry{value: r.Handler})
	}
	return &CustomPropertyTable{root: root}
}

// Lookup implements palsave.CustomProperties.
func (t *CustomPropertyTable) Lookup(path string) (palsave.Handler, bool) {
	e, ok := t.root.lookup(splitPath(path))
	if !ok {
		return nil, false
	}
	return e.value.(palsave.Handler), true
}
