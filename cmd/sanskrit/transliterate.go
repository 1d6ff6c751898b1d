// Copyright 2026 The Sanskrit Tools Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/sanskrit-tools/text/devanagari"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/htmlindex"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// config holds the settings given on the command line.
type config struct {
	encoding string
	nfc      bool
	iso      bool
	quiet    bool

	enc encoding.Encoding
}

// init resolves the encoding name.
func (c *config) init() error {
	enc, err := htmlindex.Get(c.encoding)
	if err != nil {
		return fmt.Errorf("unknown encoding %q", c.encoding)
	}
	c.enc = enc
	return nil
}

// transformer returns a fresh pipeline that turns input bytes into
// Devanagari encoded as UTF-8.
func (c *config) transformer() transform.Transformer {
	var opts []devanagari.Option
	if c.iso {
		opts = append(opts, devanagari.ISO15919())
	}
	if c.quiet {
		opts = append(opts, devanagari.NoAnnotation())
	}
	t := []transform.Transformer{c.enc.NewDecoder()}
	if c.nfc {
		t = append(t, norm.NFC)
	}
	t = append(t, devanagari.IAST(opts...))
	return transform.Chain(t...)
}

// transliterate copies r to w through a new pipeline.
func (c *config) transliterate(w io.Writer, r io.Reader) error {
	_, err := io.Copy(w, transform.NewReader(r, c.transformer()))
	return err
}

func (c *config) transliterateFile(w io.Writer, name string) error {
	f, err := os.Open(name)
	if err != nil {
		return err
	}
	defer f.Close()
	if err := c.transliterate(w, f); err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}
	return nil
}
