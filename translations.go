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
	"cmp"
	"context"
	"errors"
	"io"
	"log"
	"slices"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"seehuhn.de/go/resbake/catalog"
	"seehuhn.de/go/resbake/cheader"
	"seehuhn.de/go/resbake/zblob"
)

// Categories lists the translation categories used by the editor build.
// Other categories can be used as well; the category only affects names.
var Categories = []string{"editor", "property", "doc"}

// TranslationEntry describes one embedded translation catalog.
type TranslationEntry struct {
	// Lang is the language code, taken from the file name stem.
	Lang string

	// ArrayName is the name of the array holding Blob.Data.
	ArrayName string

	Blob *zblob.Blob
}

// SortTranslations sorts sources by language code, i.e. by file name stem.
// Sources with the same stem are ordered by path.  The result does not
// depend on the initial order.
func SortTranslations(sources []Source) {
	slices.SortStableFunc(sources, func(a, b Source) int {
		return cmp.Or(
			cmp.Compare(a.Stem(), b.Stem()),
			cmp.Compare(a.Path, b.Path),
		)
	})
}

// TranslationNames holds the identifiers used in a translations header.
type TranslationNames struct {
	Guard  string // name passed to cheader.Writer.Guarded
	Struct string // descriptor struct type, e.g. "EditorTranslationList"
	Table  string // descriptor table, e.g. "_editor_translations"
	prefix string
}

// ArrayName returns the name of the array for the given language.
func (n *TranslationNames) ArrayName(lang string) string {
	return n.prefix + cheader.Ident(lang) + "_compressed"
}

var errNoCategory = errors.New("translation category must not be empty")

// NamesFor returns the identifiers used for the given category.
func NamesFor(category string) (*TranslationNames, error) {
	if category == "" {
		return nil, errNoCategory
	}
	id := cheader.Ident(category)
	return &TranslationNames{
		Guard:  id + "_translations",
		Struct: cases.Title(language.Und).String(id) + "TranslationList",
		Table:  "_" + id + "_translations",
		prefix: "_" + id + "_translation_",
	}, nil
}

// WriteTranslations writes a header which embeds one compressed catalog per
// source, together with a descriptor table listing all languages.
//
// Sources are emitted in the order established by [SortTranslations];
// the caller's order does not matter.  Each catalog is compiled by comp,
// which falls back to the raw source if no catalog compiler is available.
// The returned entries are in output order.  Two sources whose language
// codes map to the same array name, for example "a/de.po" and "b/de.po" or
// "pt-BR.po" and "pt_BR.po", result in a [*NameClashError].
func WriteTranslations(ctx context.Context, w io.Writer, sources []Source, category string, comp *catalog.Compiler) ([]TranslationEntry, error) {
	names, err := NamesFor(category)
	if err != nil {
		return nil, err
	}
	if comp == nil {
		comp = &catalog.Compiler{}
	}

	sorted := slices.Clone(sources)
	SortTranslations(sorted)

	arrays, err := arrayNames(sorted, func(src Source) string {
		return names.ArrayName(src.Stem())
	})
	if err != nil {
		return nil, err
	}

	entries := make([]TranslationEntry, 0, len(sorted))
	for i, src := range sorted {
		lang := src.Stem()
		if _, err := language.Parse(lang); err != nil {
			warnf(comp.Logger, "%s: %q is not a valid language tag", src.Path, lang)
		}

		data := comp.CompileSource(ctx, src.Path, src.Data)
		blob, err := zblob.NewBlob(data)
		if err != nil {
			return nil, err
		}
		entries = append(entries, TranslationEntry{
			Lang:      lang,
			ArrayName: arrays[i],
			Blob:      blob,
		})
	}

	rows := make([]cheader.Row, len(entries))
	for i, e := range entries {
		rows[i] = cheader.Row{
			Lang:             e.Lang,
			CompressedSize:   e.Blob.CompressedSize,
			UncompressedSize: e.Blob.UncompressedSize,
			Data:             e.ArrayName,
		}
	}

	cw := cheader.NewWriter(w)
	cw.Guarded(names.Guard, func() {
		for _, e := range entries {
			cw.ByteArray(e.ArrayName, e.Blob.Data)
		}
		cw.DescriptorTable(names.Struct, names.Table, rows)
	})
	err = cw.Flush()
	if err != nil {
		return nil, err
	}
	return entries, nil
}

// TranslationConfig controls [MakeTranslationsHeader].
type TranslationConfig struct {
	// Tool is the name or path of the catalog compiler.
	// The default is [catalog.DefaultTool].
	Tool string

	// TempDir holds intermediate compiler output.
	// The default is os.TempDir().
	TempDir string

	// Timeout, if positive, limits the time allowed for compiling a
	// single catalog.  Catalogs which take longer are embedded uncompiled.
	Timeout time.Duration

	// Logger receives warnings.  If nil, log.Default() is used.
	Logger *log.Logger
}

// MakeTranslationsHeader reads the translation catalogs and writes the
// header for the given category to dst.
//
// The catalog compiler is looked up once.  If it is missing, a single
// warning is logged and the uncompiled catalogs are embedded.
func MakeTranslationsHeader(ctx context.Context, dst string, paths []string, category string, cfg *TranslationConfig) error {
	if cfg == nil {
		cfg = &TranslationConfig{}
	}
	if category == "" {
		return errNoCategory
	}

	sources, err := ReadSources(paths)
	if err != nil {
		return err
	}

	toolName := cmp.Or(cfg.Tool, catalog.DefaultTool)
	tool, ok := catalog.Probe(toolName)
	if !ok {
		warnf(cfg.Logger, "%s is not found, using uncompiled catalogs", toolName)
	}
	comp := &catalog.Compiler{
		Tool:    tool,
		TempDir: cfg.TempDir,
		Timeout: cfg.Timeout,
		Logger:  cfg.Logger,
	}

	return render(dst, func(w io.Writer) error {
		_, err := WriteTranslations(ctx, w, sources, category, comp)
		return err
	})
}

func warnf(l *log.Logger, format string, args ...any) {
	if l == nil {
		l = log.Default()
	}
	l.Printf("WARNING: "+format, args...)
}
