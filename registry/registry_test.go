// Copyright 2018 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package registry

import (
	"testing"

	"github.com/saferwall/palsave"
)

func TestTypeHintTableLookup(t *testing.T) {
	table := NewTypeHintTable([]TypeHintRule{
		{Path: ".worldSaveData.BaseCampSaveData.Value.ModuleMap.Key", TypeName: "Guid"},
		{Path: ".worldSaveData.CharacterSaveParameterMap.Value.*.RawData", TypeName: "CharacterContainer"},
		{Path: ".worldSaveData.ItemContainerSaveData.**", TypeName: "ItemContainer"},
	})

	tests := []struct {
		name     string
		path     string
		wantType string
		wantOK   bool
	}{
		{
			name:     "exact match",
			path:     ".worldSaveData.BaseCampSaveData.Value.ModuleMap.Key",
			wantType: "Guid",
			wantOK:   true,
		},
		{
			name:     "single-segment wildcard",
			path:     ".worldSaveData.CharacterSaveParameterMap.Value.0.RawData",
			wantType: "CharacterContainer",
			wantOK:   true,
		},
		{
			name:     "suffix wildcard, shallow",
			path:     ".worldSaveData.ItemContainerSaveData.Value",
			wantType: "ItemContainer",
			wantOK:   true,
		},
		{
			name:     "suffix wildcard, deep",
			path:     ".worldSaveData.ItemContainerSaveData.Value.0.Key.ID",
			wantType: "ItemContainer",
			wantOK:   true,
		},
		{
			name:   "unregistered path",
			path:   ".worldSaveData.Nope",
			wantOK: false,
		},
		{
			name:   "root",
			path:   "",
			wantOK: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := table.Lookup(tt.path)
			if ok != tt.wantOK {
				t.Fatalf("Lookup(%q) ok = %v, want %v", tt.path, ok, tt.wantOK)
			}
			if ok && got != tt.wantType {
				t.Errorf("Lookup(%q) = %q, want %q", tt.path, got, tt.wantType)
			}
		})
	}
}

func TestTypeHintTableLongestSpecificWins(t *testing.T) {
	table := NewTypeHintTable([]TypeHintRule{
		{Path: ".worldSaveData.**", TypeName: "generic"},
		{Path: ".worldSaveData.BaseCampSaveData.**", TypeName: "specific"},
	})

	got, ok := table.Lookup(".worldSaveData.BaseCampSaveData.Value.ModuleMap")
	if !ok {
		t.Fatal("Lookup() ok = false, want true")
	}
	if got != "specific" {
		t.Errorf("Lookup() = %q, want %q (the more specific suffix-wildcard rule should win)", got, "specific")
	}
}

// fakeHandler is a minimal palsave.Handler double; these tests only
// check identity through CustomPropertyTable.Lookup, never Decode/Encode.
type fakeHandler struct{}

func (fakeHandler) Decode(ctx *palsave.HandlerContext, v palsave.Value) (palsave.Value, error) {
	return v, nil
}

func (fakeHandler) Encode(ctx *palsave.HandlerContext, v palsave.Value) (palsave.Value, error) {
	return v, nil
}

func TestCustomPropertyTableLookup(t *testing.T) {
	h := &fakeHandler{}
	table := NewCustomPropertyTable([]CustomPropertyRule{
		{Path: ".worldSaveData.CharacterSaveParameterMap.Value.*.RawData", Handler: h},
	})

	got, ok := table.Lookup(".worldSaveData.CharacterSaveParameterMap.Value.3.RawData")
	if !ok {
		t.Fatal("Lookup() ok = false, want true")
	}
	if got != h {
		t.Errorf("Lookup() returned a different Handler than registered")
	}

	if _, ok := table.Lookup(".worldSaveData.Other"); ok {
		t.Error("Lookup() ok = true for an unregistered path, want false")
	}
}
