// Copyright 2018 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package palsave

// GvasMagic is the fixed 4-byte magic every GVAS file starts with.
var GvasMagic = [4]byte{'G', 'V', 'A', 'S'}

// EngineVersion mirrors Unreal's FEngineVersion struct.
type EngineVersion struct {
	Major    uint16
	Minor    uint16
	Patch    uint16
	Build    uint32
	BuildID  string
}

// CustomVersion is one entry of the custom-version list: an engine
// subsystem Guid paired with its version number. Spec §4.B: "unordered
// vector of (Guid, i32); order as read is preserved".
type CustomVersion struct {
	ID      Guid
	Version int32
}

// GvasHeader is the fixed layout described in spec §3/§4.B. It is parsed
// verbatim and re-emitted unchanged except for fields this module itself
// never mutates (save_game_class_name is read by container framing to
// pick a default codec, spec §4.F, but never rewritten by this module).
type GvasHeader struct {
	SaveGameFileVersion    int32
	PackageFileVersionUE4  int32
	PackageFileVersionUE5  int32
	HasUE5Version          bool
	Engine                 EngineVersion
	CustomFormatVersion    int32
	CustomVersions         []CustomVersion
	SaveGameClassName      string
}

// ReadHeader parses the fixed GVAS header, mirroring the teacher's
// ParseDOSHeader (dosheader.go): verify magic, then read fixed fields in
// sequence. save_game_file_version < 3 means the header has no
// package_file_version_ue5 field; this module always treats it as
// present when version >= 3, matching the original tool's behavior, and
// records whether it read one so write can reproduce the original
// layout exactly.
func ReadHeader(r *Reader) (GvasHeader, error) {
	var h GvasHeader
	magic, err := r.ReadBytes(4)
	if err != nil {
		return h, err
	}
	if magic[0] != GvasMagic[0] || magic[1] != GvasMagic[1] || magic[2] != GvasMagic[2] || magic[3] != GvasMagic[3] {
		return h, ErrBadMagic
	}
	if h.SaveGameFileVersion, err = r.ReadI32(); err != nil {
		return h, err
	}
	if h.PackageFileVersionUE4, err = r.ReadI32(); err != nil {
		return h, err
	}
	if h.SaveGameFileVersion >= 3 {
		if h.PackageFileVersionUE5, err = r.ReadI32(); err != nil {
			return h, err
		}
		h.HasUE5Version = true
	}
	if h.Engine.Major, err = r.ReadU16(); err != nil {
		return h, err
	}
	if h.Engine.Minor, err = r.ReadU16(); err != nil {
		return h, err
	}
	if h.Engine.Patch, err = r.ReadU16(); err != nil {
		return h, err
	}
	if h.Engine.Build, err = r.ReadU32(); err != nil {
		return h, err
	}
	if h.Engine.BuildID, err = r.ReadString(); err != nil {
		return h, err
	}
	if h.CustomFormatVersion, err = r.ReadI32(); err != nil {
		return h, err
	}
	count, err := r.ReadU32()
	if err != nil {
		return h, err
	}
	h.CustomVersions = make([]CustomVersion, 0, count)
	for i := uint32(0); i < count; i++ {
		var cv CustomVersion
		if cv.ID, err = r.ReadGuid(); err != nil {
			return h, err
		}
		if cv.Version, err = r.ReadI32(); err != nil {
			return h, err
		}
		h.CustomVersions = append(h.CustomVersions, cv)
	}
	if h.SaveGameClassName, err = r.ReadString(); err != nil {
		return h, err
	}
	return h, nil
}

// WriteHeader emits h in the exact layout ReadHeader expects, omitting
// package_file_version_ue5 when HasUE5Version is false so round-trip
// reproduces files saved by older engine versions byte-for-byte.
func WriteHeader(w *Writer, h GvasHeader) {
	w.Write(GvasMagic[:])
	w.WriteI32(h.SaveGameFileVersion)
	w.WriteI32(h.PackageFileVersionUE4)
	if h.HasUE5Version {
		w.WriteI32(h.PackageFileVersionUE5)
	}
	w.WriteU16(h.Engine.Major)
	w.WriteU16(h.Engine.Minor)
	w.WriteU16(h.Engine.Patch)
	w.WriteU32(h.Engine.Build)
	w.WriteString(h.Engine.BuildID)
	w.WriteI32(h.CustomFormatVersion)
	w.WriteU32(uint32(len(h.CustomVersions)))
	for _, cv := range h.CustomVersions {
		w.WriteGuid(cv.ID)
		w.WriteI32(cv.Version)
	}
	w.WriteString(h.SaveGameClassName)
}
