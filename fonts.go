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

	"seehuhn.de/go/postscript/type1"
	"seehuhn.de/go/sfnt"

	"seehuhn.de/go/resbake/cheader"
)

// FontOptions controls the generation of font headers.
type FontOptions struct {
	// Prefix is prepended to the array names.  The default is "_font_".
	Prefix string
}

// WriteFonts writes a header which embeds each source as an uncompressed
// array.  Font data is not compressed since the consumer references it
// directly from memory.
//
// For a source "fonts/DroidSans.ttf" the header declares _font_DroidSans
// and _font_DroidSans_size.  If two sources map to the same array name, a
// [*NameClashError] is returned and nothing is written.
func WriteFonts(w io.Writer, sources []Source, opt *FontOptions) error {
	prefix := "_font_"
	if opt != nil && opt.Prefix != "" {
		prefix = opt.Prefix
	}

	names, err := arrayNames(sources, func(src Source) string {
		return prefix + cheader.Ident(src.Stem())
	})
	if err != nil {
		return err
	}

	cw := cheader.NewWriter(w)
	cw.Guarded("editor_fonts", func() {
		for i, src := range sources {
			if desc := describeFont(src.Data); desc != "" {
				cw.Comment(desc)
			}
			cw.ByteArray(names[i], src.Data)
		}
	})
	return cw.Flush()
}

// describeFont returns a short description of a font file, or the empty
// string if the data is not recognised.  The font data is only inspected,
// never modified.
func describeFont(data []byte) string {
	if f, err := sfnt.Read(bytes.NewReader(data)); err == nil {
		family := f.FamilyName
		psName := f.PostScriptName()
		switch {
		case family != "" && psName != "":
			return family + " (" + psName + ")"
		case family != "":
			return family
		default:
			return psName
		}
	}
	if f, err := type1.Read(bytes.NewReader(data)); err == nil && f.FontInfo != nil {
		return f.FontInfo.FontName
	}
	return ""
}

// MakeFontsHeader reads the font files and writes the header to dst.
func MakeFontsHeader(dst string, paths []string, opt *FontOptions) error {
	sources, err := ReadSources(paths)
	if err != nil {
		return err
	}
	return render(dst, func(w io.Writer) error {
		return WriteFonts(w, sources, opt)
	})
}
