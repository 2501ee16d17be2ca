// Copyright 2018 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package defaults

import "testing"

func TestCustomPropertiesLookup(t *testing.T) {
	table := CustomProperties()
	if _, ok := table.Lookup(".worldSaveData.CharacterContainerSaveData.Value.0.RawData"); !ok {
		t.Error("Lookup() ok = false for CharacterContainerSaveData RawData, want true")
	}
	if _, ok := table.Lookup(".worldSaveData.BaseCampSaveData.Value.0.ModuleMap"); !ok {
		t.Error("Lookup() ok = false for BaseCampSaveData ModuleMap, want true")
	}
}

func TestOptionsCarriesRegistries(t *testing.T) {
	opts := Options()
	if opts.TypeHints == nil {
		t.Error("Options().TypeHints = nil")
	}
	if opts.CustomProperties == nil {
		t.Error("Options().CustomProperties = nil")
	}
	if !opts.AllowNaN {
		t.Error("Options().AllowNaN = false, want true (DefaultOptions default)")
	}
}
