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
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"
	"testing"
)

// headerArray returns the contents of the named byte array in a generated
// header.
func headerArray(t *testing.T, header, name string) []byte {
	t.Helper()
	start := strings.Index(header, "static const unsigned char "+name+"[] = {\n")
	if start < 0 {
		t.Fatalf("array %s not found", name)
	}
	body := header[start:]
	body = body[strings.Index(body, "{")+1 : strings.Index(body, "};")]
	var out []byte
	for _, f := range strings.FieldsFunc(body, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\n' || r == '\t'
	}) {
		v, err := strconv.ParseUint(f, 10, 8)
		if err != nil {
			t.Fatal(err)
		}
		out = append(out, byte(v))
	}
	return out
}

// headerInt returns the value of the named integer constant.
func headerInt(t *testing.T, header, name string) int {
	t.Helper()
	re := regexp.MustCompile(`static const int ` + regexp.QuoteMeta(name) + ` = (\d+);`)
	m := re.FindStringSubmatch(header)
	if m == nil {
		t.Fatalf("constant %s not found", name)
	}
	v, err := strconv.Atoi(m[1])
	if err != nil {
		t.Fatal(err)
	}
	return v
}

func writeFiles(t *testing.T, files map[string]string) (dir string) {
	t.Helper()
	dir = t.TempDir()
	for name, body := range files {
		err := os.WriteFile(filepath.Join(dir, name), []byte(body), 0o644)
		if err != nil {
			t.Fatal(err)
		}
	}
	return dir
}
