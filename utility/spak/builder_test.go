// Copyright (c) 2026 varis3d
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package spak

import (
	"bytes"
	"testing"
	"time"
)

var (
	testVertexSource   = "#version 330 core\nvoid main() { gl_Position = vec4(0.0); }\n"
	testFragmentSource = "#version 330 core\nout vec4 fragColor;\nvoid main() { fragColor = vec4(1.0); }\n"
)

func TestAddAndWrite(t *testing.T) {
	builder, err := NewBuilder(Header{
		Author:      "varis3d",
		DateCreated: time.Now().Unix(),
		Version:     1,
	})
	if err != nil {
		t.Fatal(err)
	}

	if err := builder.Add("simple.vert", StageVertex, []byte(testVertexSource)); err != nil {
		t.Error(err)
	}
	if err := builder.Add("simple.frag", StageFragment, []byte(testFragmentSource)); err != nil {
		t.Error(err)
	}

	if len(builder.files) != 2 {
		t.Error("incorrect number of sources present")
	}

	buf := bytes.NewBuffer([]byte{})
	num, err := builder.WriteTo(buf)
	if err != nil {
		t.Error(err)
	}
	if num != int64(buf.Len()) {
		t.Errorf("reported %d written bytes, buffer has %d", num, buf.Len())
	}

	if len(builder.files) != 0 {
		t.Error("builder was not reset after WriteTo")
	}
}

func TestIndexOffsets(t *testing.T) {
	builder, err := NewBuilder(Header{Author: "varis3d", Version: 1})
	if err != nil {
		t.Fatal(err)
	}
	builder.Add("simple.vert", StageVertex, []byte(testVertexSource))
	builder.Add("simple.frag", StageFragment, []byte(testFragmentSource))

	buf := bytes.NewBuffer([]byte{})
	if _, err := builder.WriteTo(buf); err != nil {
		t.Fatal(err)
	}

	archive, err := Open(bytes.NewReader(buf.Bytes()))
	if err != nil {
		t.Fatal(err)
	}

	index := archive.Index()
	if len(index) != 2 {
		t.Fatalf("index has %d entries, want 2", len(index))
	}
	if index[0].Offset != 0 {
		t.Errorf("first entry starts at %d, want 0", index[0].Offset)
	}
	if index[1].Offset != index[0].CompressedSize {
		t.Errorf("second entry starts at %d, want %d", index[1].Offset, index[0].CompressedSize)
	}
	if index[0].Size != int64(len(testVertexSource)) {
		t.Errorf("first entry size %d, want %d", index[0].Size, len(testVertexSource))
	}
}

func TestStageFromName(t *testing.T) {
	cases := map[string]Stage{
		"simple.vert":  StageVertex,
		"simple.frag":  StageFragment,
		"notes.txt":    StageUnknown,
		"vert":         StageUnknown,
		"shadow.vert":  StageVertex,
		"compose.frag": StageFragment,
	}
	for name, want := range cases {
		if got := StageFromName(name); got != want {
			t.Errorf("StageFromName(%q) = %s, want %s", name, got, want)
		}
	}
}
