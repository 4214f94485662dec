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

// Package cheader writes C/C++ header files which embed binary data.
//
// All output is plain ASCII.  Byte values are written in decimal, so no
// escaping is ever needed.  The Writer keeps the first error it encounters;
// later calls do nothing and the error is reported by Flush.
package cheader

import (
	"bufio"
	"io"
	"strconv"
	"strings"
)

// GeneratedBanner is written at the top of every generated file.
const GeneratedBanner = "/* THIS FILE IS GENERATED DO NOT EDIT */"

// bytesPerLine is the number of array elements written per output line.
const bytesPerLine = 16

// Writer renders header declarations.
type Writer struct {
	w   *bufio.Writer
	err error
}

// NewWriter returns a Writer which writes to w.
// The caller must call Flush when done.
func NewWriter(w io.Writer) *Writer {
	return &Writer{w: bufio.NewWriter(w)}
}

// Flush writes any buffered data and returns the first error encountered.
func (w *Writer) Flush() error {
	if w.err != nil {
		return w.err
	}
	w.err = w.w.Flush()
	return w.err
}

// Err returns the first error encountered so far.
func (w *Writer) Err() error {
	return w.err
}

func (w *Writer) str(s string) {
	if w.err != nil {
		return
	}
	_, w.err = w.w.WriteString(s)
}

// Comment writes a one-line C comment.  Bytes outside printable ASCII are
// dropped and "*/" is broken up, so that any text can be passed.
func (w *Writer) Comment(text string) {
	buf := make([]byte, 0, len(text))
	for i := 0; i < len(text); i++ {
		if c := text[i]; c >= 0x20 && c < 0x7f {
			buf = append(buf, c)
		}
	}
	w.str("/* " + strings.ReplaceAll(string(buf), "*/", "* /") + " */\n")
}

// Guarded writes the banner, opens an include guard derived from name,
// calls body and closes the guard.  For name "editor_fonts" the guard macro
// is "_EDITOR_FONTS_H".
func (w *Writer) Guarded(name string, body func()) {
	macro := GuardMacro(name)
	w.str(GeneratedBanner + "\n")
	w.str("#ifndef " + macro + "\n")
	w.str("#define " + macro + "\n")
	body()
	w.str("#endif /* " + macro + " */\n")
}

// GuardMacro returns the include guard macro used by Guarded.
func GuardMacro(name string) string {
	return "_" + strings.ToUpper(Ident(name)) + "_H"
}

// IntConst declares an integer constant.
func (w *Writer) IntConst(name string, value int) {
	w.str("static const int " + name + " = " + strconv.Itoa(value) + ";\n")
}

// StringConst declares a string constant.  The value is written as a C
// string literal, with every byte outside printable ASCII escaped in octal.
func (w *Writer) StringConst(name, value string) {
	w.str("static const char *" + name + " = " + quote(value) + ";\n")
}

// ByteArray declares the array name, holding data, together with a
// companion constant name+"_size" giving its length.
//
// C and C++ do not allow empty arrays of unspecified size.  For empty data a
// single zero element is written, while the size constant stays 0.
func (w *Writer) ByteArray(name string, data []byte) {
	w.IntConst(name+"_size", len(data))
	w.str("static const unsigned char " + name + "[] = {\n")
	if len(data) == 0 {
		w.str("\t0\n")
	}
	line := make([]byte, 0, 4*bytesPerLine+2)
	for len(data) > 0 {
		n := min(len(data), bytesPerLine)
		line = append(line[:0], '\t')
		for i, b := range data[:n] {
			if i > 0 {
				line = append(line, ' ')
			}
			line = strconv.AppendUint(line, uint64(b), 10)
			line = append(line, ',')
		}
		line = append(line, '\n')
		if w.err == nil {
			_, w.err = w.w.Write(line)
		}
		data = data[n:]
	}
	w.str("};\n")
}

// Row is one entry in a descriptor table.
// The zero Row is the sentinel which terminates every table.
type Row struct {
	Lang             string
	CompressedSize   int
	UncompressedSize int

	// Data is the name of the array holding the compressed data.
	Data string
}

// DescriptorTable declares the struct type structName and the array
// tableName of that type.  The array holds rows in the given order,
// followed by the sentinel row.
func (w *Writer) DescriptorTable(structName, tableName string, rows []Row) {
	w.str("struct " + structName + " {\n")
	w.str("\tconst char *lang;\n")
	w.str("\tint comp_size;\n")
	w.str("\tint uncomp_size;\n")
	w.str("\tconst unsigned char *data;\n")
	w.str("};\n\n")

	w.str("static const " + structName + " " + tableName + "[] = {\n")
	for _, row := range rows {
		w.row(row)
	}
	w.row(Row{})
	w.str("};\n")
}

func (w *Writer) row(r Row) {
	if r == (Row{}) {
		w.str("\t{ nullptr, 0, 0, nullptr }\n")
		return
	}
	w.str("\t{ " + quote(r.Lang) + ", " +
		strconv.Itoa(r.CompressedSize) + ", " +
		strconv.Itoa(r.UncompressedSize) + ", " +
		r.Data + " },\n")
}

// Ident turns s into a valid C identifier by replacing every character
// other than ASCII letters, digits and underscores with an underscore.
// A leading digit is prefixed with an underscore.
func Ident(s string) string {
	buf := make([]byte, 0, len(s)+1)
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c == '_':
			buf = append(buf, c)
		case c >= '0' && c <= '9':
			if i == 0 {
				buf = append(buf, '_')
			}
			buf = append(buf, c)
		default:
			buf = append(buf, '_')
		}
	}
	if len(buf) == 0 {
		return "_"
	}
	return string(buf)
}

func quote(s string) string {
	buf := make([]byte, 0, len(s)+2)
	buf = append(buf, '"')
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c == '"' || c == '\\':
			buf = append(buf, '\\', c)
		case c < 0x20 || c >= 0x7f || c == '?':
			// '?' is escaped to avoid trigraphs
			buf = append(buf, '\\',
				'0'+(c>>6), '0'+((c>>3)&7), '0'+(c&7))
		default:
			buf = append(buf, c)
		}
	}
	buf = append(buf, '"')
	return string(buf)
}
