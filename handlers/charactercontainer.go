// Copyright 2018 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package handlers

import "github.com/saferwall/palsave"

// CharacterContainer decodes a CharacterContainerSaveData slot's RawData
// bytes: a player guid, an instance guid, and a one-byte permission
// tribe id, grounded on
// original_source/palworld_save_tools/rawdata/character_container.py.
type CharacterContainer struct{}

func (CharacterContainer) Decode(ctx *palsave.HandlerContext, v palsave.Value) (palsave.Value, error) {
	b, err := bytesFromArrayValue(v)
	if err != nil {
		return v, err
	}
	if len(b) == 0 {
		return palsave.CustomValue{CustomType: "CharacterContainer", Value: nil}, nil
	}

	r := palsave.NewReader(b)
	playerUID, err := r.ReadGuid()
	if err != nil {
		return v, err
	}
	instanceID, err := r.ReadGuid()
	if err != nil {
		return v, err
	}
	tribeID, err := r.ReadU8()
	if err != nil {
		return v, err
	}

	data := map[string]any{
		"player_uid":          guidToDoc(playerUID),
		"instance_id":         guidToDoc(instanceID),
		"permission_tribe_id": int(tribeID),
	}
	if !r.EOF() {
		unknown := r.ReadToEnd()
		ctx.Logger.Debugf("unknown trailing bytes in character container at %s: % x", ctx.Path.String(), unknown)
		data["unknown_bytes"] = byteSliceToAny(unknown)
	}
	return palsave.CustomValue{CustomType: "CharacterContainer", Value: data}, nil
}

func (CharacterContainer) Encode(ctx *palsave.HandlerContext, v palsave.Value) (palsave.Value, error) {
	cv, ok := v.(palsave.CustomValue)
	if !ok {
		return v, nil
	}
	if cv.Value == nil {
		return bytesToArrayValue(nil), nil
	}
	m, ok := cv.Value.(map[string]any)
	if !ok {
		return v, nil
	}

	playerUID, err := guidFromDoc(asString(m, "player_uid"))
	if err != nil {
		return v, err
	}
	instanceID, err := guidFromDoc(asString(m, "instance_id"))
	if err != nil {
		return v, err
	}

	w := palsave.NewWriter()
	w.WriteGuid(playerUID)
	w.WriteGuid(instanceID)
	w.WriteU8(uint8(asInt(m, "permission_tribe_id")))
	if ub, ok := m["unknown_bytes"]; ok {
		w.Write(asByteSlice(ub))
	}
	return bytesToArrayValue(w.Bytes()), nil
}
