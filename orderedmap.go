// Copyright 2018 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package palsave

// OrderedMap is a string-keyed map that preserves insertion order. Go's
// built-in map type has none, and spec §3's "Invariants: Ordering" makes
// insertion order load-bearing for the root property map, MapProperty
// entries, and struct field maps — so this module carries its own
// order-preserving map rather than reach for a stdlib type that cannot
// express the requirement.
type OrderedMap struct {
	keys   []string
	values map[string]Property
}

// NewOrderedMap returns an empty OrderedMap.
func NewOrderedMap() *OrderedMap {
	return &OrderedMap{values: make(map[string]Property)}
}

// Set inserts or overwrites the value for key, preserving the position of
// the first insertion if the key already existed.
func (m *OrderedMap) Set(key string, value Property) {
	if _, ok := m.values[key]; !ok {
		m.keys = append(m.keys, key)
	}
	m.values[key] = value
}

// Get returns the value for key and whether it was present.
func (m *OrderedMap) Get(key string) (Property, bool) {
	v, ok := m.values[key]
	return v, ok
}

// Keys returns the keys in insertion order.
func (m *OrderedMap) Keys() []string { return m.keys }

// Len returns the number of entries.
func (m *OrderedMap) Len() int { return len(m.keys) }

// Each calls f for every entry in insertion order.
func (m *OrderedMap) Each(f func(key string, value Property)) {
	for _, k := range m.keys {
		f(k, m.values[k])
	}
}
