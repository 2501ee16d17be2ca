// Copyright 2018 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

// Package defaults builds the out-of-the-box TypeHints and
// CustomProperties registries for Palworld save files, wiring
// palsave/registry's wildcard tables to palsave/handlers' decoders the
// way the original tool's paltypes.py wires its own path table to the
// rawdata package. It is a separate package so the dependency only
// flows one way: palsave never imports registry or handlers, and
// callers that want the stock path table import defaults instead of
// hand-assembling rules themselves.
package defaults

import (
	"github.com/saferwall/palsave"
	"github.com/saferwall/palsave/handlers"
	"github.com/saferwall/palsave/registry"
)

// TypeHints returns the stock type-hint table: the struct/enum types the
// envelope alone cannot name, keyed by the dotted path spec §4.D
// describes.
func TypeHints() *registry.TypeHintTable {
	return registry.NewTypeHintTable([]registry.TypeHintRule{
		{Path: ".worldSaveData.BaseCampSaveData.Value.*.WorkerDirector.Value.RawData", TypeName: "Guid"},
		{Path: ".worldSaveData.GroupSaveDataMap.Value.*.RawData", TypeName: "Guid"},
		{Path: ".worldSaveData.CharacterSaveParameterMap.Key", TypeName: "Guid"},
		{Path: ".worldSaveData.ItemContainerSaveData.Key", TypeName: "Guid"},
	})
}

// NamedRule pairs a CustomPropertyRule with the short name its handler
// is selected by on the CLI's --custom-properties allow-list.
type NamedRule struct {
	Name string
	Rule registry.CustomPropertyRule
}

// NamedCustomPropertyRules returns the stock custom-property rules
// alongside the short names (CharacterContainer, BaseCampModule,
// MapConcreteModel) the CLI's --custom-properties flag selects by,
// mirroring the original tool's per-handler enable list
// (original_source's custom_properties dict keyed by the same names).
func NamedCustomPropertyRules() []NamedRule {
	return []NamedRule{
		{
			Name: "CharacterContainer",
			Rule: registry.CustomPropertyRule{
				Path:    ".worldSaveData.CharacterContainerSaveData.Value.*.RawData",
				Handler: handlers.CharacterContainer{},
			},
		},
		{
			Name: "BaseCampModule",
			Rule: registry.CustomPropertyRule{
				Path:    ".worldSaveData.BaseCampSaveData.Value.*.ModuleMap",
				Handler: handlers.BaseCampModule{},
			},
		},
		{
			Name: "MapConcreteModel",
			Rule: registry.CustomPropertyRule{
				Path:    ".worldSaveData.MapObjectSaveData.Value.*.ConcreteModel.ModuleMap",
				Handler: handlers.MapConcreteModel{},
			},
		},
	}
}

// CustomProperties returns the stock custom-property table wiring every
// named rule in NamedCustomPropertyRules.
func CustomProperties() *registry.CustomPropertyTable {
	named := NamedCustomPropertyRules()
	rules := make([]registry.CustomPropertyRule, len(named))
	for i, n := range named {
		rules[i] = n.Rule
	}
	return registry.NewCustomPropertyTable(rules)
}

// Options returns a palsave.Options pre-populated with the stock
// TypeHints and CustomProperties tables; callers that need to add
// project-specific rules on top should build their own registry.New*
// tables instead and set Options directly.
func Options() palsave.Options {
	opts := palsave.DefaultOptions()
	opts.TypeHints = TypeHints()
	opts.CustomProperties = CustomProperties()
	return opts
}
