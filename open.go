// Copyright 2018 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package palsave

import (
	"os"

	mmap "github.com/edsrzf/mmap-go"
)

// SavFile is a memory-mapped .sav container, grounded on the teacher's
// own File type (file.go's New/NewBytes/Close, which memory-maps the
// input rather than reading it into a heap buffer).
type SavFile struct {
	data mmap.MMap
	f    *os.File
}

// OpenSav memory-maps name read-only. The caller must call Close when
// done; Bytes stays valid until then.
func OpenSav(name string) (*SavFile, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	data, err := mmap.Map(f, mmap.RDONLY, 0)
	if err != nil {
		f.Close()
		return nil, err
	}
	return &SavFile{data: data, f: f}, nil
}

// OpenSavFile wraps an already-open *os.File, taking ownership of it the
// same way. Useful when the caller already resolved the path (e.g. a
// directory walk).
func OpenSavFile(f *os.File) (*SavFile, error) {
	data, err := mmap.Map(f, mmap.RDONLY, 0)
	if err != nil {
		return nil, err
	}
	return &SavFile{data: data, f: f}, nil
}

// Bytes returns the mapped contents.
func (s *SavFile) Bytes() []byte { return s.data }

// Close unmaps the file and closes the underlying descriptor.
func (s *SavFile) Close() error {
	if s.data != nil {
		_ = s.data.Unmap()
	}
	if s.f != nil {
		return s.f.Close()
	}
	return nil
}
