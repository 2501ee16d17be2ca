// Copyright 2018 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package handlers

import (
	"testing"

	"github.com/saferwall/palsave"
	"github.com/saferwall/palsave/log"
)

func TestCharacterContainerRoundTrip(t *testing.T) {
	ctx := &palsave.HandlerContext{Logger: log.NewNop()}

	var playerUID, instanceID palsave.Guid
	playerUID[0] = 0xAA
	instanceID[0] = 0xBB

	w := palsave.NewWriter()
	w.WriteGuid(playerUID)
	w.WriteGuid(instanceID)
	w.WriteU8(3)
	raw := bytesToArrayValue(w.Bytes())

	decoded, err := (CharacterContainer{}).Decode(ctx, raw)
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	cv, ok := decoded.(palsave.CustomValue)
	if !ok {
		t.Fatalf("Decode() returned %T, want palsave.CustomValue", decoded)
	}
	data, ok := cv.Value.(map[string]any)
	if !ok {
		t.Fatalf("Decode() value = %T, want map[string]any", cv.Value)
	}
	if data["permission_tribe_id"] != 3 {
		t.Errorf("permission_tribe_id = %v, want 3", data["permission_tribe_id"])
	}

	back, err := (CharacterContainer{}).Encode(ctx, decoded)
	if err != nil {
		t.Fatalf("Encode() error = %v", err)
	}
	gotBytes, err := bytesFromArrayValue(back)
	if err != nil {
		t.Fatalf("bytesFromArrayValue() error = %v", err)
	}
	wantBytes, _ := bytesFromArrayValue(raw)
	if string(gotBytes) != string(wantBytes) {
		t.Errorf("round trip mismatch: got % x, want % x", gotBytes, wantBytes)
	}
}

func TestCharacterContainerEmpty(t *testing.T) {
	ctx := &palsave.HandlerContext{Logger: log.NewNop()}
	decoded, err := (CharacterContainer{}).Decode(ctx, bytesToArrayValue(nil))
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	cv := decoded.(palsave.CustomValue)
	if cv.Value != nil {
		t.Errorf("Decode() value = %v, want nil for empty input", cv.Value)
	}
	back, err := (CharacterContainer{}).Encode(ctx, decoded)
	if err != nil {
		t.Fatalf("Encode() error = %v", err)
	}
	b, _ := bytesFromArrayValue(back)
	if len(b) != 0 {
		t.Errorf("Encode() bytes = % x, want empty", b)
	}
}
