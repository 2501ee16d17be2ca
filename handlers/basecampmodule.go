// Copyright 2018 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package handlers

import (
	"fmt"

	"github.com/saferwall/palsave"
)

// noOpModuleTypes lists base camp module types whose RawData is always
// empty, grounded on NO_OP_TYPES in
// original_source/palworld_save_tools/rawdata/base_camp_module.py.
var noOpModuleTypes = map[string]bool{
	"EPalBaseCampModuleType::Energy":              true,
	"EPalBaseCampModuleType::Medical":              true,
	"EPalBaseCampModuleType::ResourceCollector":    true,
	"EPalBaseCampModuleType::ItemStorages":         true,
	"EPalBaseCampModuleType::FacilityReservation":  true,
	"EPalBaseCampModuleType::ObjectMaintenance":    true,
	"EPalBaseCampModuleType::ItemStackInfo":        true,
}

// passiveEffectType names the PASSIVE_EFFECT_ENUM byte codes from the
// same file.
var passiveEffectType = map[byte]string{
	0: "EPalBaseCampPassiveEffectType::None",
	1: "EPalBaseCampPassiveEffectType::WorkSuitability",
	2: "EPalBaseCampPassiveEffectType::WorkHard",
	3: "EPalBaseCampPassiveEffectType::AllWorkSpeed",
	4: "EPalBaseCampPassiveEffectType::SanityDecreaseSuppressor",
	5: "EPalBaseCampPassiveEffectType::EPalBaseCampPassiveEffectType_MAX",
}

// BaseCampModule decodes the per-module RawData bytes nested inside a
// base camp's ModuleMap entries. Unlike CharacterContainer, the
// registered path is the MapProperty itself: Decode rewrites each
// entry's nested "RawData" field in place and returns the same
// MapValue shape, since the module type needed to interpret a given
// entry's bytes is only known from that entry's own key.
type BaseCampModule struct{}

func (BaseCampModule) Decode(ctx *palsave.HandlerContext, v palsave.Value) (palsave.Value, error) {
	mv, ok := v.(palsave.MapValue)
	if !ok {
		return v, nil
	}
	for i, entry := range mv.Entries {
		moduleType := enumString(entry.Key)
		sv, ok := entry.Value.(palsave.StructValue)
		if !ok {
			continue
		}
		raw, prop, err := rawDataBytes(sv.Fields)
		if err != nil {
			continue
		}
		decoded := decodeModuleBytes(ctx, raw, moduleType)
		setRawData(sv.Fields, prop, decoded)
		entry.Value = sv
		mv.Entries[i] = entry
	}
	return mv, nil
}

func (BaseCampModule) Encode(ctx *palsave.HandlerContext, v palsave.Value) (palsave.Value, error) {
	mv, ok := v.(palsave.MapValue)
	if !ok {
		return v, nil
	}
	for i, entry := range mv.Entries {
		moduleType := enumString(entry.Key)
		sv, ok := entry.Value.(palsave.StructValue)
		if !ok {
			continue
		}
		prop, ok := sv.Fields.Get("RawData")
		if !ok {
			continue
		}
		cv, ok := prop.Value.(palsave.CustomValue)
		if !ok {
			continue
		}
		encoded := encodeModuleBytes(cv, moduleType)
		setRawData(sv.Fields, prop, bytesToArrayValue(encoded))
		entry.Value = sv
		mv.Entries[i] = entry
	}
	return mv, nil
}

func enumString(v palsave.Value) string {
	if e, ok := v.(palsave.EnumValue); ok {
		return e.Value
	}
	return ""
}

func decodeModuleBytes(ctx *palsave.HandlerContext, b []byte, moduleType string) palsave.Value {
	fallback := func() palsave.Value {
		return palsave.CustomValue{CustomType: moduleType, Trailing: b}
	}

	r := palsave.NewReader(b)
	data := map[string]any{}

	switch {
	case noOpModuleTypes[moduleType]:
		// nothing to read
	case moduleType == "EPalBaseCampModuleType::TransportItemDirector":
		infos, err := palsave.ReadArray(r, readTransportItemCharacterInfo)
		if err != nil {
			ctx.Logger.Debugf("failed to decode transport item director at %s: %v", ctx.Path.String(), err)
			return fallback()
		}
		trailing, err := r.ReadByteList(4)
		if err != nil {
			ctx.Logger.Debugf("failed to decode transport item director trailer at %s: %v", ctx.Path.String(), err)
			return fallback()
		}
		list := make([]any, len(infos))
		for i, inf := range infos {
			list[i] = inf.toDoc()
		}
		data["transport_item_character_infos"] = list
		data["trailing_bytes"] = byteSliceToAny(trailing)
	case moduleType == "EPalBaseCampModuleType::PassiveEffect":
		effects, err := palsave.ReadArray(r, readModulePassiveEffect)
		if err != nil {
			ctx.Logger.Debugf("failed to decode passive effect at %s: %v", ctx.Path.String(), err)
			return fallback()
		}
		list := make([]any, len(effects))
		for i, e := range effects {
			list[i] = e.toDoc()
		}
		data["passive_effects"] = list
	default:
		ctx.Logger.Debugf("unknown base camp module type %s, falling back to raw bytes", moduleType)
		return fallback()
	}

	if !r.EOF() {
		ctx.Logger.Debugf("eof not reached for %s, falling back to raw bytes", moduleType)
		return fallback()
	}
	return palsave.CustomValue{CustomType: moduleType, Value: data}
}

func encodeModuleBytes(cv palsave.CustomValue, moduleType string) []byte {
	w := palsave.NewWriter()
	if cv.Value == nil {
		w.Write(cv.Trailing)
		return w.Bytes()
	}
	m, ok := cv.Value.(map[string]any)
	if !ok {
		return cv.Trailing
	}

	switch {
	case noOpModuleTypes[moduleType]:
	case moduleType == "EPalBaseCampModuleType::TransportItemDirector":
		rawInfos, _ := m["transport_item_character_infos"].([]any)
		infos := make([]transportItemCharacterInfo, len(rawInfos))
		for i, raw := range rawInfos {
			if im, ok := raw.(map[string]any); ok {
				infos[i] = transportItemCharacterInfoFromDoc(im)
			}
		}
		palsave.WriteArray(w, writeTransportItemCharacterInfo, infos)
		w.Write(asByteSlice(m["trailing_bytes"]))
	case moduleType == "EPalBaseCampModuleType::PassiveEffect":
		rawEffects, _ := m["passive_effects"].([]any)
		effects := make([]modulePassiveEffect, len(rawEffects))
		for i, raw := range rawEffects {
			if em, ok := raw.(map[string]any); ok {
				effects[i] = modulePassiveEffectFromDoc(em)
			}
		}
		palsave.WriteArray(w, writeModulePassiveEffect, effects)
	default:
		w.Write(cv.Trailing)
	}
	return w.Bytes()
}

type transportItemCharacterInfo struct {
	ItemInfos         []ItemAndNum
	CharacterLocation vector3
}

func readTransportItemCharacterInfo(r *palsave.Reader) (transportItemCharacterInfo, error) {
	infos, err := palsave.ReadArray(r, readItemAndNum)
	if err != nil {
		return transportItemCharacterInfo{}, err
	}
	loc, err := readVector3(r)
	if err != nil {
		return transportItemCharacterInfo{}, err
	}
	return transportItemCharacterInfo{ItemInfos: infos, CharacterLocation: loc}, nil
}

func writeTransportItemCharacterInfo(w *palsave.Writer, v transportItemCharacterInfo) {
	palsave.WriteArray(w, writeItemAndNum, v.ItemInfos)
	writeVector3(w, v.CharacterLocation)
}

func (v transportItemCharacterInfo) toDoc() map[string]any {
	items := make([]any, len(v.ItemInfos))
	for i, it := range v.ItemInfos {
		items[i] = itemAndNumToDoc(it)
	}
	return map[string]any{
		"item_infos":         items,
		"character_location": vector3ToDoc(v.CharacterLocation),
	}
}

func transportItemCharacterInfoFromDoc(m map[string]any) transportItemCharacterInfo {
	rawItems, _ := m["item_infos"].([]any)
	items := make([]ItemAndNum, len(rawItems))
	for i, raw := range rawItems {
		if im, ok := raw.(map[string]any); ok {
			items[i] = itemAndNumFromDoc(im)
		}
	}
	loc, _ := m["character_location"].(map[string]any)
	return transportItemCharacterInfo{ItemInfos: items, CharacterLocation: vector3FromDoc(loc)}
}

type modulePassiveEffect struct {
	Type           byte
	WorkHardType   byte
	UnknownTrailer []byte
}

func readModulePassiveEffect(r *palsave.Reader) (modulePassiveEffect, error) {
	t, err := r.ReadU8()
	if err != nil {
		return modulePassiveEffect{}, err
	}
	if _, ok := passiveEffectType[t]; !ok {
		return modulePassiveEffect{}, fmt.Errorf("palsave/handlers: unknown passive effect type %d", t)
	}
	e := modulePassiveEffect{Type: t}
	if t == 2 {
		wh, err := r.ReadU8()
		if err != nil {
			return modulePassiveEffect{}, err
		}
		trailer, err := r.ReadByteList(12)
		if err != nil {
			return modulePassiveEffect{}, err
		}
		e.WorkHardType = wh
		e.UnknownTrailer = trailer
	}
	return e, nil
}

func writeModulePassiveEffect(w *palsave.Writer, v modulePassiveEffect) {
	w.WriteU8(v.Type)
	if v.Type == 2 {
		w.WriteU8(v.WorkHardType)
		w.Write(v.UnknownTrailer)
	}
}

func (v modulePassiveEffect) toDoc() map[string]any {
	doc := map[string]any{"type": int(v.Type)}
	if v.Type == 2 {
		doc["work_hard_type"] = int(v.WorkHardType)
		doc["unknown_trailer"] = byteSliceToAny(v.UnknownTrailer)
	}
	return doc
}

func modulePassiveEffectFromDoc(m map[string]any) modulePassiveEffect {
	e := modulePassiveEffect{Type: byte(asInt(m, "type"))}
	if e.Type == 2 {
		e.WorkHardType = byte(asInt(m, "work_hard_type"))
		e.UnknownTrailer = asByteSlice(m["unknown_trailer"])
	}
	return e
}
