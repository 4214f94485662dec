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

// Resbake converts resource files into C++ headers at build time.
//
// Usage:
//
//	resbake doc [-ext .xml] -o doc_data_compressed.gen.h file.xml...
//	resbake fonts -o builtin_fonts.gen.h font.ttf...
//	resbake translations -category editor -o editor_translations.gen.h lang.po...
//
// Catalogs are compiled with msgfmt if it is installed; otherwise the .po
// files are embedded unchanged.  Warnings are written to stderr.  The exit
// status is 0 on success, 1 if a file could not be read or written, and 2 if
// the command line was invalid.
package main

import (
	"bytes"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"golang.org/x/term"

	"seehuhn.de/go/resbake"
	"seehuhn.de/go/resbake/catalog"
	"seehuhn.de/go/resbake/tools/internal/buildinfo"
	"seehuhn.de/go/resbake/tools/internal/profile"
)

const (
	exitOK    = 0
	exitFatal = 1
	exitUsage = 2
)

func main() {
	logger := log.New(highlight(os.Stderr), "resbake: ", 0)
	err := run(context.Background(), os.Args[1:], os.Stdout, os.Stderr, logger)
	if err != nil && !errors.Is(err, flag.ErrHelp) {
		fmt.Fprintln(os.Stderr, "resbake:", err)
	}
	os.Exit(exitCode(err))
}

// usageError indicates an invalid command line.
type usageError struct {
	msg string
}

func (err *usageError) Error() string {
	return err.msg
}

func usagef(format string, args ...any) error {
	return &usageError{msg: fmt.Sprintf(format, args...)}
}

func exitCode(err error) int {
	var uErr *usageError
	switch {
	case err == nil, errors.Is(err, flag.ErrHelp):
		return exitOK
	case errors.As(err, &uErr):
		return exitUsage
	default:
		return exitFatal
	}
}

func usage(out io.Writer) {
	fmt.Fprintf(out, "resbake \u2014 embed resource files into C++ headers\n")
	fmt.Fprintf(out, "%s\n\n", buildinfo.Version("resbake"))
	fmt.Fprintf(out, "Usage:\n")
	fmt.Fprintf(out, "  resbake doc [options] -o <out.h> <file>...\n")
	fmt.Fprintf(out, "  resbake fonts [options] -o <out.h> <font>...\n")
	fmt.Fprintf(out, "  resbake translations [options] -category <name> -o <out.h> <file.po>...\n")
	fmt.Fprintf(out, "  resbake version\n\n")
	fmt.Fprintf(out, "Run \"resbake <command> -h\" for the options of a command.\n")
}

// command holds the flags shared by all subcommands.
type command struct {
	flags      *flag.FlagSet
	out        string
	cpuprofile string
	memprofile string
}

func newCommand(name string, stderr io.Writer) *command {
	c := &command{flags: flag.NewFlagSet(name, flag.ContinueOnError)}
	c.flags.SetOutput(stderr)
	c.flags.StringVar(&c.out, "o", "", "write the header to `file` (required)")
	c.flags.StringVar(&c.cpuprofile, "cpuprofile", "", "write cpu profile to `file`")
	c.flags.StringVar(&c.memprofile, "memprofile", "", "write memory profile to `file`")
	return c
}

// parse parses the arguments and returns the input files.
func (c *command) parse(args []string) ([]string, error) {
	err := c.flags.Parse(args)
	if errors.Is(err, flag.ErrHelp) {
		return nil, err
	} else if err != nil {
		return nil, usagef("%s: %v", c.flags.Name(), err)
	}
	if c.out == "" {
		return nil, usagef("%s: missing output file (-o)", c.flags.Name())
	}
	if c.flags.NArg() == 0 {
		return nil, usagef("%s: no input files", c.flags.Name())
	}
	return c.flags.Args(), nil
}

// exec runs f with profiling enabled as requested on the command line.
func (c *command) exec(f func() error) (err error) {
	stop, err := profile.Start(c.cpuprofile, c.memprofile)
	if err != nil {
		return err
	}
	defer func() {
		err = errors.Join(err, stop())
	}()
	return f()
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer, logger *log.Logger) error {
	if len(args) == 0 {
		usage(stderr)
		return usagef("no command given")
	}

	switch cmd, args := args[0], args[1:]; cmd {
	case "doc":
		c := newCommand(cmd, stderr)
		var ext string
		c.flags.StringVar(&ext, "ext", "", "comma-separated `extensions` of the files to include, e.g. .xml (default all)")
		srcs, err := c.parse(args)
		if err != nil {
			return err
		}
		opt := &resbake.DocOptions{}
		if ext != "" {
			opt.Extensions = strings.Split(ext, ",")
		}
		return c.exec(func() error {
			return resbake.MakeDocHeader(c.out, srcs, opt)
		})

	case "fonts":
		c := newCommand(cmd, stderr)
		var prefix string
		c.flags.StringVar(&prefix, "prefix", "_font_", "`prefix` of the array names")
		srcs, err := c.parse(args)
		if err != nil {
			return err
		}
		return c.exec(func() error {
			return resbake.MakeFontsHeader(c.out, srcs, &resbake.FontOptions{Prefix: prefix})
		})

	case "translations":
		c := newCommand(cmd, stderr)
		cfg := &resbake.TranslationConfig{Logger: logger}
		var category string
		c.flags.StringVar(&category, "category", "", "translation `category`, e.g. "+strings.Join(resbake.Categories, ", ")+" (required)")
		c.flags.StringVar(&cfg.Tool, "msgfmt", catalog.DefaultTool, "catalog compiler `program`")
		c.flags.StringVar(&cfg.TempDir, "tmpdir", "", "`directory` for intermediate files (default system temp dir)")
		c.flags.DurationVar(&cfg.Timeout, "timeout", 0, "abandon a catalog compilation after this `duration` (0 means never)")
		srcs, err := c.parse(args)
		if err != nil {
			return err
		}
		if category == "" {
			return usagef("translations: missing category (-category)")
		}
		return c.exec(func() error {
			return resbake.MakeTranslationsHeader(ctx, c.out, srcs, category, cfg)
		})

	case "version":
		fmt.Fprintln(stdout, buildinfo.Version("resbake"))
		return nil

	case "help", "-h", "-help", "--help":
		usage(stderr)
		return flag.ErrHelp

	default:
		usage(stderr)
		return usagef("unknown command %q", cmd)
	}
}

// highlight returns a writer which marks warnings in bold, if w is a
// terminal.
func highlight(w *os.File) io.Writer {
	if !term.IsTerminal(int(w.Fd())) {
		return w
	}
	return &warningHighlighter{w: w}
}

type warningHighlighter struct {
	w io.Writer
}

var (
	plainWarning = []byte("WARNING:")
	boldWarning  = []byte("\x1b[1;33mWARNING:\x1b[0m")
)

func (h *warningHighlighter) Write(p []byte) (int, error) {
	_, err := h.w.Write(bytes.ReplaceAll(p, plainWarning, boldWarning))
	if err != nil {
		return 0, err
	}
	return len(p), nil
}
