// Copyright 2026 The Sanskrit Tools Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package devanagari

import (
	"bufio"
	"bytes"
	"io"
	"path/filepath"
	"strings"
	"testing"
	"testing/iotest"

	"golang.org/x/text/transform"
	"golang.org/x/tools/txtar"
)

// TestGolden runs the archives in testdata. Each archive holds an input and
// a want file. A comment line of the form "options: name ..." selects the
// options of the Transformer.
func TestGolden(t *testing.T) {
	files, err := filepath.Glob(filepath.Join("testdata", "*.txtar"))
	if err != nil {
		t.Fatal(err)
	}
	if len(files) == 0 {
		t.Fatal("no test archives found")
	}
	for _, file := range files {
		file := file
		t.Run(strings.TrimSuffix(filepath.Base(file), ".txtar"), func(t *testing.T) {
			a, err := txtar.ParseFile(file)
			if err != nil {
				t.Fatal(err)
			}
			opts := parseOptions(t, a.Comment)
			var input, want []byte
			for _, f := range a.Files {
				switch f.Name {
				case "input":
					input = f.Data
				case "want":
					want = f.Data
				default:
					t.Fatalf("unexpected file %q", f.Name)
				}
			}
			if got := IAST(opts...).Bytes(input); !bytes.Equal(got, want) {
				t.Errorf("Bytes:\ngot:\n%s\nwant:\n%s", got, want)
			}

			// The same output must result when the input arrives a byte at
			// a time.
			r := transform.NewReader(iotest.OneByteReader(bytes.NewReader(input)), IAST(opts...))
			got, err := io.ReadAll(r)
			if err != nil {
				t.Fatal(err)
			}
			if !bytes.Equal(got, want) {
				t.Errorf("Reader:\ngot:\n%s\nwant:\n%s", got, want)
			}
		})
	}
}

func parseOptions(t *testing.T, comment []byte) (opts []Option) {
	s := bufio.NewScanner(bytes.NewReader(comment))
	for s.Scan() {
		names, ok := strings.CutPrefix(s.Text(), "options:")
		if !ok {
			continue
		}
		for _, name := range strings.Fields(names) {
			switch name {
			case "iso15919":
				opts = append(opts, ISO15919())
			case "noannotation":
				opts = append(opts, NoAnnotation())
			default:
				t.Fatalf("unknown option %q", name)
			}
		}
	}
	return opts
}
