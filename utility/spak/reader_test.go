// Copyright (c) 2026 varis3d
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package spak_test

import (
	"bytes"
	"io"
	"testing"
	"time"

	qt "github.com/frankban/quicktest"
	"github.com/gobuffalo/packr"

	"github.com/varis3d/varis/utility/spak"
)

var staticResources = packr.NewBox("../../shaders")

func buildTestPack(c *qt.C) ([]byte, []byte, *spak.Archive) {
	builder, err := spak.NewBuilder(spak.Header{
		Author:      "varis3d",
		DateCreated: time.Now().Unix(),
		Version:     1,
	})
	c.Assert(err, qt.IsNil)

	vert := staticResources.Bytes("simple.vert")
	frag := staticResources.Bytes("simple.frag")
	c.Assert(builder.Add("simple.vert", spak.StageVertex, vert), qt.IsNil)
	c.Assert(builder.Add("simple.frag", spak.StageFragment, frag), qt.IsNil)

	buf := bytes.NewBuffer([]byte{})
	written, err := builder.WriteTo(buf)
	c.Assert(err, qt.IsNil)
	c.Assert(written, qt.Equals, int64(buf.Len()))

	archive, err := spak.Open(bytes.NewReader(buf.Bytes()))
	c.Assert(err, qt.IsNil)
	return vert, frag, archive
}

func TestBundleAndReadBack(t *testing.T) {
	c := qt.New(t)
	vert, frag, archive := buildTestPack(c)

	gotVert, err := archive.ReadAll("simple.vert")
	c.Assert(err, qt.IsNil)
	c.Assert(string(gotVert), qt.Equals, string(vert))

	gotFrag, err := archive.ReadAll("simple.frag")
	c.Assert(err, qt.IsNil)
	c.Assert(string(gotFrag), qt.Equals, string(frag))
}

func TestIndexMetadata(t *testing.T) {
	c := qt.New(t)
	vert, _, archive := buildTestPack(c)

	c.Assert(len(archive.Index()), qt.Equals, 2)
	c.Assert(archive.Header().Author, qt.Equals, "varis3d")

	entry := archive.Index()[0]
	c.Assert(entry.Name, qt.Equals, "simple.vert")
	c.Assert(entry.Stage, qt.Equals, spak.StageVertex)
	c.Assert(entry.Size, qt.Equals, int64(len(vert)))
}

func TestStreamingReader(t *testing.T) {
	c := qt.New(t)
	_, frag, archive := buildTestPack(c)

	reader, err := archive.Open("simple.frag")
	c.Assert(err, qt.IsNil)
	c.Assert(reader.Entry().Stage, qt.Equals, spak.StageFragment)

	var assembled bytes.Buffer
	chunk := make([]byte, 7)
	for {
		n, err := reader.Read(chunk)
		assembled.Write(chunk[:n])
		if err == io.EOF {
			break
		}
		c.Assert(err, qt.IsNil)
	}
	c.Assert(assembled.String(), qt.Equals, string(frag))
}

func TestMissingSource(t *testing.T) {
	c := qt.New(t)
	_, _, archive := buildTestPack(c)

	_, err := archive.ReadAll("shadow.vert")
	c.Assert(err, qt.Equals, spak.ErrNotFound)
}

func TestOpenRejectsForeignFile(t *testing.T) {
	c := qt.New(t)

	_, err := spak.Open(bytes.NewReader([]byte("GIF89a definitely not a shader pack")))
	c.Assert(err, qt.Equals, spak.ErrFileFormat)
}
