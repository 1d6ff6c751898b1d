// Copyright 2026 The Sanskrit Tools Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package devanagari

import (
	"strconv"
	"unicode/utf8"

	"golang.org/x/text/transform"
)

// mode records what kind of glyph was written last.
type mode int

const (
	modeSpace mode = iota
	modeVowel
	modeConsonant
)

// maxUnit is the maximum number of bytes written for a single unit: an
// unmapped rune followed by its annotation, as in "\U0010FFFF(0x10ffff)".
const maxUnit = utf8.UTFMax + len("(0x10ffff)")

type transliterator struct {
	table    *table
	annotate bool
	mode     mode
}

func (t *transliterator) Reset() { t.mode = modeSpace }

func (t *transliterator) Transform(dst, src []byte, atEOF bool) (nDst, nSrc int, err error) {
	var buf [maxUnit]byte
	for nSrc < len(src) {
		e, size := t.match(src[nSrc:], atEOF)
		if size == 0 {
			return nDst, nSrc, transform.ErrShortSrc
		}
		out, m := t.write(buf[:0], e)
		if len(out) > len(dst)-nDst {
			return nDst, nSrc, transform.ErrShortDst
		}
		nDst += copy(dst[nDst:], out)
		nSrc += size
		t.mode = m
	}
	return nDst, nSrc, nil
}

// match returns the entry for the longest key at the start of src and the
// number of bytes it spans. Runes without a key are returned as an unmapped
// entry. A size of 0 means more input is needed to decide.
func (t *transliterator) match(src []byte, atEOF bool) (e entry, size int) {
	var k key
	n := 0
	for i := 0; i < maxKey; i++ {
		if n == len(src) {
			if !atEOF {
				return entry{}, 0
			}
			break
		}
		r, sz := utf8.DecodeRune(src[n:])
		if sz == 1 && r == utf8.RuneError && !atEOF && !utf8.FullRune(src[n:]) {
			return entry{}, 0 // incomplete UTF-8 encoding
		}
		k[i] = r
		n += sz
		if x, ok := t.table.entries[k]; ok {
			e, size = x, n
		} else if i == 0 {
			e, size = entry{class: unmapped, lone: r}, n
		}
		if !t.table.prefix[k] {
			break
		}
	}
	return e, size
}

// write appends the glyphs for e to b and returns the mode that follows.
func (t *transliterator) write(b []byte, e entry) ([]byte, mode) {
	switch e.class {
	case whitespace:
		if t.mode == modeConsonant {
			b = utf8.AppendRune(b, virama)
		}
		return utf8.AppendRune(b, e.lone), modeSpace

	case fixed:
		return utf8.AppendRune(b, e.lone), t.mode

	case vowel:
		switch {
		case t.mode != modeConsonant:
			b = utf8.AppendRune(b, e.lone)
		case e.sign != inherent:
			b = utf8.AppendRune(b, e.sign)
		}
		return b, modeVowel

	case consonant:
		if t.mode == modeConsonant {
			b = utf8.AppendRune(b, virama)
		}
		return utf8.AppendRune(b, e.lone), modeConsonant
	}

	b = utf8.AppendRune(b, e.lone)
	if t.annotate && e.lone > 0xFF {
		b = append(b, "(0x"...)
		b = strconv.AppendInt(b, int64(e.lone), 16)
		b = append(b, ')')
	}
	return b, modeSpace
}
