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

// Package resbake turns resource files into C++ headers at build time.
//
// Documentation, fonts and translation catalogs are converted into static
// byte arrays, so that an application can use them without shipping or
// loading the original files at run time.  There is one generator for each
// kind of resource:
//
//   - [WriteDocs] concatenates documentation sources and embeds them as one
//     compressed blob, together with a content hash.
//   - [WriteFonts] embeds every font file uncompressed, so that the data can
//     be used directly from memory.
//   - [WriteTranslations] compiles gettext catalogs, compresses each of them
//     and emits a table which lists all languages.
//
// The Make*Header functions read the sources from disk and write the
// generated header to a file.  The command tools/resbake exposes them on the
// command line.
//
// Resource contents are never validated: malformed input is embedded as-is.
package resbake
