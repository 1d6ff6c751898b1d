// Copyright 2026 The Sanskrit Tools Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/text/encoding/charmap"
)

func runCmd(t *testing.T, stdin string, args ...string) (code int, stdout, stderr string) {
	t.Helper()
	var out, errOut bytes.Buffer
	code = run(args, strings.NewReader(stdin), &out, &errOut)
	return code, out.String(), errOut.String()
}

func writeFile(t *testing.T, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, data, 0o644))
	return path
}

func TestStdin(t *testing.T) {
	code, out, errOut := runCmd(t, "dharmakṣetre kurukṣetre\nsaṃskṛtam ሴ\n")
	require.Equal(t, exitOK, code)
	require.Empty(t, errOut)
	require.Equal(t, "धर्मक्षेत्रे कुरुक्षेत्रे\nसंस्कृतम् ሴ(0x1234)\n", out)
}

func TestEmptyInput(t *testing.T) {
	code, out, _ := runCmd(t, "")
	require.Equal(t, exitOK, code)
	require.Empty(t, out)
}

func TestFlags(t *testing.T) {
	for _, tc := range []struct {
		desc string
		args []string
		in   string
		want string
	}{
		{"default", nil, "oṃ ॐ\n", "ओं ॐ(0x950)\n"},
		{"quiet", []string{"-q"}, "oṃ ॐ\n", "ओं ॐ\n"},
		{"decomposed without nfc", nil, "s\u0301iva", "स\u0301(0x301)इव"},
		{"decomposed with nfc", []string{"-nfc"}, "s\u0301iva", "शिव"},
		{"iso", []string{"-iso"}, "kr\u0325ta sa\u1e41", "कृत सं"},
		{"latin-1", []string{"-encoding", "iso-8859-1"}, "a\xf1ja", "अञ्ज"},
	} {
		t.Run(tc.desc, func(t *testing.T) {
			code, out, errOut := runCmd(t, tc.in, tc.args...)
			require.Equal(t, exitOK, code, errOut)
			require.Equal(t, tc.want, out)
		})
	}
}

func TestEncodingWindows1252(t *testing.T) {
	src, err := charmap.Windows1252.NewEncoder().String("pañca\n")
	require.NoError(t, err)
	code, out, errOut := runCmd(t, src, "-encoding", "windows-1252")
	require.Equal(t, exitOK, code, errOut)
	require.Equal(t, "पञ्च\n", out)
}

func TestFiles(t *testing.T) {
	a := writeFile(t, "a.txt", []byte("rāmaḥ\nvanam gacchat"))
	b := writeFile(t, "b.txt", []byte("t\n"))
	code, out, errOut := runCmd(t, "ignored", a, b)
	require.Equal(t, exitOK, code, errOut)
	// The final t of a.txt is not joined to the t of b.txt.
	require.Equal(t, "रामः\nवनम् गछ्हत"+"त्\n", out)
}

func TestMissingFile(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "missing.txt")
	code, _, errOut := runCmd(t, "", missing)
	require.Equal(t, exitError, code)
	require.Contains(t, errOut, "sanskrit: ")
	require.Contains(t, errOut, "missing.txt")
}

func TestUsageErrors(t *testing.T) {
	code, _, errOut := runCmd(t, "", "-encoding", "no-such-encoding")
	require.Equal(t, exitUsage, code)
	require.Contains(t, errOut, `unknown encoding "no-such-encoding"`)

	code, _, errOut = runCmd(t, "", "-bogus")
	require.Equal(t, exitUsage, code)
	require.Contains(t, errOut, "usage: sanskrit")

	code, _, _ = runCmd(t, "", "-h")
	require.Equal(t, exitOK, code)
}
