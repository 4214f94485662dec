// seehuhn.de/go/resbake - embed resource files into C++ headers at build time
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package resbake

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"seehuhn.de/go/resbake/zblob"
)

func docSources() []Source {
	return []Source{
		{Path: "doc/classes/Node.xml", Data: []byte("<class name=\"Node\">\n</class>\n")},
		{Path: "doc/classes/Area2D.xml", Data: []byte("<class name=\"Area2D\">\n</class>\n")},
		{Path: "doc/README.md", Data: []byte("# not documentation\n")},
	}
}

func TestWriteDocs(t *testing.T) {
	buf := &bytes.Buffer{}
	err := WriteDocs(buf, docSources(), nil)
	if err != nil {
		t.Fatal(err)
	}
	header := buf.String()

	if !strings.HasPrefix(header, "/* THIS FILE IS GENERATED DO NOT EDIT */\n#ifndef _DOC_DATA_RAW_H\n") {
		t.Errorf("unexpected start of header:\n%s", header)
	}

	data := headerArray(t, header, "_doc_data_compressed")
	if n := headerInt(t, header, "_doc_data_compressed_size"); n != len(data) {
		t.Errorf("compressed size %d, array has %d bytes", n, len(data))
	}
	size := headerInt(t, header, "_doc_data_uncompressed_size")
	got, err := zblob.Decompress(data, size)
	if err != nil {
		t.Fatal(err)
	}

	// caller order is kept, no sorting
	want := "<class name=\"Node\">\n</class>\n<class name=\"Area2D\">\n</class>\n# not documentation\n"
	if d := cmp.Diff(want, string(got)); d != "" {
		t.Errorf("unexpected documentation (-want +got):\n%s", d)
	}

	hashLine := `static const char *_doc_data_hash = "` + DocHash(data) + `";`
	if !strings.Contains(header, hashLine) {
		t.Errorf("hash line %q not found", hashLine)
	}
}

func TestWriteDocsOptions(t *testing.T) {
	opt := &DocOptions{
		Extensions: []string{".xml"},
		Begin:      "<doc>",
		End:        "</doc>",
	}
	buf := &bytes.Buffer{}
	err := WriteDocs(buf, docSources(), opt)
	if err != nil {
		t.Fatal(err)
	}
	header := buf.String()
	got, err := zblob.Decompress(headerArray(t, header, "_doc_data_compressed"),
		headerInt(t, header, "_doc_data_uncompressed_size"))
	if err != nil {
		t.Fatal(err)
	}
	want := "<doc><class name=\"Node\">\n</class>\n<class name=\"Area2D\">\n</class>\n</doc>"
	if d := cmp.Diff(want, string(got)); d != "" {
		t.Errorf("unexpected documentation (-want +got):\n%s", d)
	}
}

func TestWriteDocsEmpty(t *testing.T) {
	buf := &bytes.Buffer{}
	err := WriteDocs(buf, nil, nil)
	if err != nil {
		t.Fatal(err)
	}
	if n := headerInt(t, buf.String(), "_doc_data_uncompressed_size"); n != 0 {
		t.Errorf("uncompressed size = %d, want 0", n)
	}
}

func TestDocHashStable(t *testing.T) {
	var outputs []string
	for range 2 {
		buf := &bytes.Buffer{}
		if err := WriteDocs(buf, docSources(), nil); err != nil {
			t.Fatal(err)
		}
		outputs = append(outputs, buf.String())
	}
	if outputs[0] != outputs[1] {
		t.Error("output differs between runs")
	}

	// Known value, so that the hash cannot silently change between releases.
	const emptySHA256 = "e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855"
	if h := DocHash(nil); h != emptySHA256 {
		t.Errorf("DocHash(nil) = %s", h)
	}

	changed := docSources()
	changed[0].Data = []byte("<class name=\"Node3D\">\n</class>\n")
	buf := &bytes.Buffer{}
	if err := WriteDocs(buf, changed, nil); err != nil {
		t.Fatal(err)
	}
	a := headerArray(t, outputs[0], "_doc_data_compressed")
	b := headerArray(t, buf.String(), "_doc_data_compressed")
	if DocHash(a) == DocHash(b) {
		t.Error("hash did not change with the content")
	}
}

func TestMakeDocHeader(t *testing.T) {
	dir := writeFiles(t, map[string]string{
		"a.xml": "<a/>",
		"b.xml": "<b/>",
	})
	dst := filepath.Join(dir, "doc_data_compressed.gen.h")
	err := MakeDocHeader(dst, []string{filepath.Join(dir, "b.xml"), filepath.Join(dir, "a.xml")}, nil)
	if err != nil {
		t.Fatal(err)
	}
	body, err := os.ReadFile(dst)
	if err != nil {
		t.Fatal(err)
	}
	header := string(body)
	got, err := zblob.Decompress(headerArray(t, header, "_doc_data_compressed"),
		headerInt(t, header, "_doc_data_uncompressed_size"))
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != "<b/><a/>" {
		t.Errorf("got %q", got)
	}
}

func TestMakeDocHeaderErrors(t *testing.T) {
	dir := writeFiles(t, map[string]string{"a.xml": "<a/>"})

	missing := filepath.Join(dir, "missing.xml")
	err := MakeDocHeader(filepath.Join(dir, "out.h"), []string{missing}, nil)
	var srcErr *SourceError
	if !errors.As(err, &srcErr) || srcErr.Path != missing {
		t.Errorf("got %v, want a SourceError for %s", err, missing)
	}
	if _, err := os.Stat(filepath.Join(dir, "out.h")); !errors.Is(err, os.ErrNotExist) {
		t.Error("output written despite failure")
	}

	dst := filepath.Join(dir, "no-such-dir", "out.h")
	err = MakeDocHeader(dst, []string{filepath.Join(dir, "a.xml")}, nil)
	var dstErr *DestError
	if !errors.As(err, &dstErr) || dstErr.Path != dst {
		t.Errorf("got %v, want a DestError for %s", err, dst)
	}
}
