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
	"io"
	"os"
	"path/filepath"
	"strings"
)

// Source is a resource file which has been read into memory.
type Source struct {
	Path string
	Data []byte
}

// Stem returns the base name of the source without its extension,
// e.g. "pt_BR" for "translations/pt_BR.po".
func (s Source) Stem() string {
	base := filepath.Base(s.Path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// ReadSources reads the given files, in order.
// A file which cannot be read results in a [*SourceError].
func ReadSources(paths []string) ([]Source, error) {
	res := make([]Source, 0, len(paths))
	for _, path := range paths {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, &SourceError{Path: path, Err: err}
		}
		res = append(res, Source{Path: path, Data: data})
	}
	return res, nil
}

// SourceError indicates that a resource file could not be read.
type SourceError struct {
	Path string
	Err  error
}

func (err *SourceError) Error() string {
	return "cannot read resource " + err.Path + ": " + err.Err.Error()
}

func (err *SourceError) Unwrap() error {
	return err.Err
}

// DestError indicates that the generated header could not be written.
type DestError struct {
	Path string
	Err  error
}

func (err *DestError) Error() string {
	return "cannot write " + err.Path + ": " + err.Err.Error()
}

func (err *DestError) Unwrap() error {
	return err.Err
}

// NameClashError indicates that two sources map to the same array name,
// which would declare the same identifier twice in the generated header.
type NameClashError struct {
	Name          string
	First, Second string
}

func (err *NameClashError) Error() string {
	return "sources " + err.First + " and " + err.Second + " both map to array " + err.Name
}

// arrayNames assigns the array name name(src) to each source, and fails if
// two sources get the same name.
func arrayNames(sources []Source, name func(Source) string) ([]string, error) {
	res := make([]string, len(sources))
	seen := make(map[string]string, len(sources))
	for i, src := range sources {
		n := name(src)
		if prev, clash := seen[n]; clash {
			return nil, &NameClashError{Name: n, First: prev, Second: src.Path}
		}
		seen[n] = src.Path
		res[i] = n
	}
	return res, nil
}

// render runs gen on an in-memory buffer.  If gen succeeds, the result is
// written to dst in one go; a failed run leaves dst untouched.
func render(dst string, gen func(w io.Writer) error) error {
	buf := &bytes.Buffer{}
	err := gen(buf)
	if err != nil {
		return err
	}
	err = os.WriteFile(dst, buf.Bytes(), 0o644)
	if err != nil {
		return &DestError{Path: dst, Err: err}
	}
	return nil
}
