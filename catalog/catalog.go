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

// Package catalog compiles gettext translation catalogs.
//
// A human-editable .po catalog is turned into the binary .mo form by an
// external tool, normally GNU msgfmt.  If the tool is not installed, or if it
// fails, the uncompiled source is used instead.  Both cases only produce
// warnings: a missing optional tool never blocks a build.
package catalog

import (
	"bytes"
	"context"
	"encoding/hex"
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
)

// DefaultTool is the name of the catalog compiler looked up by Probe.
const DefaultTool = "msgfmt"

// Tool compiles the catalog src into the binary catalog dst.
type Tool interface {
	Compile(ctx context.Context, src, dst string) error
}

// waitDelay bounds the time spent collecting output after the tool was
// killed because ctx expired.
const waitDelay = time.Second

// Msgfmt runs GNU msgfmt.
type Msgfmt struct {
	// Path is the location of the executable.
	Path string
}

// Compile implements the [Tool] interface.
func (m *Msgfmt) Compile(ctx context.Context, src, dst string) error {
	cmd := exec.CommandContext(ctx, m.Path, src, "--no-hash", "-o", dst)
	stderr := &bytes.Buffer{}
	cmd.Stderr = stderr
	cmd.WaitDelay = waitDelay
	err := cmd.Run()
	if err != nil {
		return &ToolError{
			Tool:   m.Path,
			Source: src,
			Output: strings.TrimSpace(stderr.String()),
			Err:    err,
		}
	}
	return nil
}

// Probe looks up the named catalog compiler on the executable search path.
// The second return value reports whether the tool was found; if not, the
// returned Tool is nil.
//
// Probe should be called once per run and the result passed to every
// [Compiler].
func Probe(name string) (Tool, bool) {
	if name == "" {
		name = DefaultTool
	}
	path, err := exec.LookPath(name)
	if err != nil {
		return nil, false
	}
	return &Msgfmt{Path: path}, true
}

// ToolError reports a failed run of the catalog compiler.
type ToolError struct {
	Tool   string
	Source string

	// Output is the diagnostic output of the tool, if any.
	Output string

	Err error
}

func (err *ToolError) Error() string {
	msg := fmt.Sprintf("%s failed for %q: %v", err.Tool, err.Source, err.Err)
	if err.Output != "" {
		msg += "\n" + err.Output
	}
	return msg
}

func (err *ToolError) Unwrap() error {
	return err.Err
}

// Compiler turns catalog sources into the bytes which get embedded.
type Compiler struct {
	// Tool is the catalog compiler.  If Tool is nil, the tool is treated as
	// unavailable and source catalogs are used unchanged.
	Tool Tool

	// TempDir holds intermediate output.  If empty, os.TempDir() is used.
	TempDir string

	// Logger receives warnings.  If nil, log.Default() is used.
	Logger *log.Logger

	// Timeout, if positive, limits the run time of each tool invocation.
	// A timed out invocation counts as a failure.
	Timeout time.Duration

	// NewName returns the base name of a fresh intermediate file.  If nil,
	// TempName is used.
	NewName func() string
}

// TempName returns a file name derived from a random UUID.  Independent
// processes can use names from TempName in a shared directory concurrently.
func TempName() string {
	id := uuid.New()
	return hex.EncodeToString(id[:]) + ".mo"
}

// Compile returns the compiled form of the catalog at path.  If the
// tool is unavailable or fails, the raw contents of path are returned
// instead.  An error is returned only if path itself cannot be read.
func (c *Compiler) Compile(ctx context.Context, path string) ([]byte, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return c.CompileSource(ctx, path, raw), nil
}

// CompileSource is like Compile, but uses raw as the already loaded contents
// of path.  The result is either the compiled catalog or raw itself; callers
// cannot tell which.
func (c *Compiler) CompileSource(ctx context.Context, path string, raw []byte) []byte {
	if c.Tool == nil {
		return raw
	}
	data, err := c.run(ctx, path)
	if err != nil {
		c.warnf("catalog compilation failed, using %s instead: %v", path, err)
		return raw
	}
	return data
}

// run compiles path into a fresh temporary file and returns the result.
// The temporary file is removed on every return path.
func (c *Compiler) run(ctx context.Context, path string) (data []byte, err error) {
	dir := c.TempDir
	if dir == "" {
		dir = os.TempDir()
	}
	newName := c.NewName
	if newName == nil {
		newName = TempName
	}
	tmp := filepath.Join(dir, newName())

	defer func() {
		rmErr := os.Remove(tmp)
		if rmErr != nil && !errors.Is(rmErr, fs.ErrNotExist) {
			c.warnf("could not delete temporary file %s: %v", tmp, rmErr)
		}
	}()

	if c.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.Timeout)
		defer cancel()
	}

	err = c.Tool.Compile(ctx, path, tmp)
	if err != nil {
		return nil, err
	}
	return os.ReadFile(tmp)
}

func (c *Compiler) warnf(format string, args ...any) {
	l := c.Logger
	if l == nil {
		l = log.Default()
	}
	l.Printf("WARNING: "+format, args...)
}
