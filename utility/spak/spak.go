// Copyright (c) 2026 varis3d
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

// Package spak is an api for an lz4 backed shader pack format.
// A pack bundles the GLSL sources of a project into one versioned
// file. The archive itself is not compressed in any form, rather
// every source is individually compressed, so it can be read from
// its place and decompressed on the fly without touching the rest
// of the pack. The index in the header knows where every file is
// located before any of them is read, and records which pipeline
// stage a source is meant for. It can be read from concurrently.
package spak

import (
	"bytes"
	"encoding/binary"
	"encoding/gob"
	"errors"
	"strings"
)

// package errors
var (
	ErrFileFormat = errors.New("corrupted or not a spak archive")
	ErrNotFound   = errors.New("no file with that name in the archive")
	ErrTempFail   = errors.New("temporary folder or file operation failed")
)

// Sizes relevant to the header of a pack file
const (
	MagicLength            = 4
	HeaderSizeNumberLength = 8
)

var magic = [MagicLength]byte{'S', 'P', 'K', '\x00'}

// Stage is the pipeline role a packed source is meant for.
type Stage uint8

// Stages a packed source can declare
const (
	StageUnknown Stage = iota
	StageVertex
	StageFragment
)

func (s Stage) String() string {
	switch s {
	case StageVertex:
		return "vertex"
	case StageFragment:
		return "fragment"
	default:
		return "unknown"
	}
}

// StageFromName classifies a file name by its suffix.
func StageFromName(name string) Stage {
	switch {
	case strings.HasSuffix(name, ".vert"):
		return StageVertex
	case strings.HasSuffix(name, ".frag"):
		return StageFragment
	default:
		return StageUnknown
	}
}

// IndexEntry is info for one source in the file index.
// Offset is relative to the start of the data section.
type IndexEntry struct {
	Name           string
	Stage          Stage
	Offset         int64
	Size           int64
	CompressedSize int64
}

// Header is the file header for spak files.
type Header struct {
	Author      string
	DateCreated int64
	Version     int64
	Index       []IndexEntry
}

func int64ToBinary(num int64) []byte {
	buf := bytes.NewBuffer([]byte{})
	if err := binary.Write(buf, binary.LittleEndian, &num); err != nil {
		panic(err) // If this thing fails you're probably having bigger problems
	}
	return buf.Bytes()
}

func binaryToInt64(bts []byte) (int64, error) {
	var num int64
	if err := binary.Read(bytes.NewReader(bts), binary.LittleEndian, &num); err != nil {
		return 0, err
	}
	return num, nil
}

func gobEncode(data interface{}) ([]byte, error) {
	var encoded bytes.Buffer
	enc := gob.NewEncoder(&encoded)
	if err := enc.Encode(data); err != nil {
		return nil, err
	}
	return encoded.Bytes(), nil
}

func gobDecode(obj interface{}, bts []byte) error {
	dec := gob.NewDecoder(bytes.NewBuffer(bts))
	return dec.Decode(obj)
}
