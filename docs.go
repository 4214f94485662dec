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
	"crypto/sha256"
	"encoding/hex"
	"io"
	"path/filepath"
	"slices"

	"seehuhn.de/go/resbake/cheader"
	"seehuhn.de/go/resbake/zblob"
)

// DocOptions controls the generation of documentation headers.
type DocOptions struct {
	// Extensions, if non-empty, restricts the sources to files with one of
	// the given extensions (including the leading dot, e.g. ".xml").  Other
	// sources are skipped.
	Extensions []string

	// Begin and End are placed before and after the concatenated sources.
	Begin, End string
}

// DocHash returns the content identity of compressed documentation data:
// the hex-encoded SHA-256 digest of the compressed bytes.  The value only
// depends on data, so build steps can compare it across runs.
func DocHash(compressed []byte) string {
	sum := sha256.Sum256(compressed)
	return hex.EncodeToString(sum[:])
}

// WriteDocs writes a header which embeds the concatenation of all sources,
// in the order given, as a single compressed array.
//
// The header declares _doc_data_hash, _doc_data_compressed_size,
// _doc_data_uncompressed_size and the array _doc_data_compressed.
func WriteDocs(w io.Writer, sources []Source, opt *DocOptions) error {
	if opt == nil {
		opt = &DocOptions{}
	}

	var buf []byte
	buf = append(buf, opt.Begin...)
	for _, src := range sources {
		if len(opt.Extensions) > 0 && !slices.Contains(opt.Extensions, filepath.Ext(src.Path)) {
			continue
		}
		buf = append(buf, src.Data...)
	}
	buf = append(buf, opt.End...)

	blob, err := zblob.NewBlob(buf)
	if err != nil {
		return err
	}

	cw := cheader.NewWriter(w)
	cw.Guarded("doc_data_raw", func() {
		cw.StringConst("_doc_data_hash", DocHash(blob.Data))
		cw.IntConst("_doc_data_uncompressed_size", blob.UncompressedSize)
		cw.ByteArray("_doc_data_compressed", blob.Data)
	})
	return cw.Flush()
}

// MakeDocHeader reads the documentation sources and writes the header to
// dst.
func MakeDocHeader(dst string, paths []string, opt *DocOptions) error {
	sources, err := ReadSources(paths)
	if err != nil {
		return err
	}
	return render(dst, func(w io.Writer) error {
		return WriteDocs(w, sources, opt)
	})
}
