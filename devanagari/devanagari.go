// Copyright 2026 The Sanskrit Tools Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:generate stringer -type=mode -trimprefix=mode

// Package devanagari transliterates Sanskrit written in the Latin alphabet,
// using the diacritics of IAST, into the Devanagari script.
//
// The transliteration is a single forward pass over the input. Each unit is
// one rune or, for aspirated consonants (kh, gh, ...), the doubled cc and the
// diphthongs ai and au, two runes. A unit is written out according to what
// was written before it:
//
//   - a vowel following a consonant is written as a dependent vowel sign, or
//     not at all for the inherent a; anywhere else it is written as an
//     independent letter;
//   - a consonant following a consonant is joined to it with a virama;
//   - a space or newline following a consonant is preceded by a virama.
//
// Runes that have no transliteration are passed through unchanged. Runes
// above U+00FF are followed by their value in hexadecimal, as in "ॐ(0x950)",
// so that they stand out in the output.
//
// The input is not validated: this package does not reject text that is not
// well-formed Sanskrit.
package devanagari // import "github.com/sanskrit-tools/text/devanagari"

import (
	"golang.org/x/text/transform"
)

// Transformer implements the transform.Transformer interface.
//
// A Transformer is stateful: it remembers whether it last wrote a vowel, a
// consonant or a separator. It must not be used concurrently.
type Transformer struct {
	t *transliterator
}

// Reset implements the transform.Resetter interface.
func (t Transformer) Reset() { t.t.Reset() }

// Transform implements the transform.Transformer interface.
func (t Transformer) Transform(dst, src []byte, atEOF bool) (nDst, nSrc int, err error) {
	return t.t.Transform(dst, src, atEOF)
}

// Bytes returns a new byte slice with the result of applying t to b.
func (t Transformer) Bytes(b []byte) []byte {
	b, _, _ = transform.Bytes(t, b)
	return b
}

// String returns a string with the result of applying t to s.
func (t Transformer) String(s string) string {
	s, _, _ = transform.String(t, s)
	return s
}

// IAST returns a Transformer that converts IAST transliterated Sanskrit to
// Devanagari.
func IAST(opts ...Option) Transformer {
	o := getOpts(opts...)
	tab := iastTable
	if o.iso15919 {
		tab = isoTable
	}
	return Transformer{&transliterator{
		table:    tab,
		annotate: !o.noAnnotation,
	}}
}

// An Option is used to modify the behavior of a Transformer.
type Option func(o options) options

type options struct {
	iso15919     bool
	noAnnotation bool
}

func getOpts(o ...Option) (res options) {
	for _, f := range o {
		res = f(res)
	}
	return
}

// ISO15919 also accepts the ISO 15919 spellings that differ from IAST: the
// vocalic liquids written with a combining ring below (r̥, r̥̄, l̥, l̥̄) and
// the anusvara written with a dot above (ṁ).
func ISO15919() Option {
	return func(o options) options {
		o.iso15919 = true
		return o
	}
}

// NoAnnotation disables the hexadecimal annotation that follows runes above
// U+00FF that have no transliteration.
func NoAnnotation() Option {
	return func(o options) options {
		o.noAnnotation = true
		return o
	}
}
