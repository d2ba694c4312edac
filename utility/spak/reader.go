// Copyright (c) 2026 varis3d
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package spak

import (
	"bytes"
	"io"
	"io/ioutil"

	"github.com/pierrec/lz4"
)

// Open opens the spak archive from r. It will also check
// if the file actually is a spak archive, and return an error
// when it is not.
func Open(r io.ReaderAt) (*Archive, error) {
	magicBytes := make([]byte, MagicLength)
	if num, err := r.ReadAt(magicBytes, 0); err != nil {
		return nil, err
	} else if num < MagicLength || !bytes.Equal(magicBytes, magic[:]) {
		return nil, ErrFileFormat
	}

	headerSizeBytes := make([]byte, HeaderSizeNumberLength)
	if num, err := r.ReadAt(headerSizeBytes, MagicLength); err != nil {
		return nil, err
	} else if num < HeaderSizeNumberLength {
		return nil, ErrFileFormat
	}

	headerSize, err := binaryToInt64(headerSizeBytes)
	if err != nil || headerSize <= 0 {
		return nil, ErrFileFormat
	}

	headerBytes := make([]byte, headerSize)
	if num, err := r.ReadAt(headerBytes, MagicLength+HeaderSizeNumberLength); err != nil {
		return nil, err
	} else if int64(num) < headerSize {
		return nil, ErrFileFormat
	}

	var header Header
	if err := gobDecode(&header, headerBytes); err != nil {
		return nil, ErrFileFormat
	}

	return &Archive{
		reader:    r,
		header:    header,
		dataStart: MagicLength + HeaderSizeNumberLength + headerSize,
	}, nil
}

// Archive provides concurrent io for a spak file, and can provide
// an io.Reader for each source separately to perform actions on.
type Archive struct {
	reader    io.ReaderAt
	header    Header
	dataStart int64
}

// Header returns the decoded pack header
func (a *Archive) Header() Header {
	return a.header
}

// Index returns the file index of the pack
func (a *Archive) Index() []IndexEntry {
	return a.header.Index
}

func (a *Archive) entry(name string) (IndexEntry, error) {
	for _, e := range a.header.Index {
		if e.Name == name {
			return e, nil
		}
	}
	return IndexEntry{}, ErrNotFound
}

// Open returns a Reader for a source in the Archive
func (a *Archive) Open(name string) (*Reader, error) {
	e, err := a.entry(name)
	if err != nil {
		return nil, err
	}
	section := io.NewSectionReader(a.reader, a.dataStart+e.Offset, e.CompressedSize)
	return &Reader{
		entry:   e,
		decoder: lz4.NewReader(section),
	}, nil
}

// ReadAll returns the entire contents of a source with a given name
func (a *Archive) ReadAll(name string) ([]byte, error) {
	reader, err := a.Open(name)
	if err != nil {
		return nil, err
	}
	return ioutil.ReadAll(reader)
}

// Reader is a reader for a single source in an Archive.
// Abstracts away the location that needs to be known.
type Reader struct {
	entry   IndexEntry
	decoder io.Reader
}

// Read reads already decompressed data
func (r *Reader) Read(p []byte) (n int, err error) {
	return r.decoder.Read(p)
}

// Entry returns the index metadata of the source being read
func (r *Reader) Entry() IndexEntry {
	return r.entry
}
