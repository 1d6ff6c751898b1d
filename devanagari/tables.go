// Copyright 2026 The Sanskrit Tools Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package devanagari

// class is the kind of transliteration unit a key resolves to.
type class uint8

const (
	unmapped class = iota
	whitespace
	fixed // avagraha, anusvara and visarga; the mode is left as is
	vowel
	consonant
)

const (
	virama   = '\u094d'
	avagraha = '\u093d'
	anusvara = '\u0902'
	visarga  = '\u0903'
)

// inherent is the sign form of a vowel that a preceding consonant already
// carries. Nothing is written for it.
const inherent = rune(-1)

// maxKey is the longest key, in runes, of any table.
const maxKey = 3

// A key is a sequence of up to maxKey runes, padded with zeros.
type key [maxKey]rune

// An entry describes the output of a matched key. For vowels lone is the
// independent letter and sign the dependent vowel sign. Consonants, whitespace
// and fixed signs only use lone.
type entry struct {
	class class
	lone  rune
	sign  rune
}

type glyph struct {
	key string
	entry
}

func v(lone, sign rune) entry { return entry{class: vowel, lone: lone, sign: sign} }
func c(r rune) entry          { return entry{class: consonant, lone: r} }
func sign(r rune) entry       { return entry{class: fixed, lone: r} }
func space(r rune) entry      { return entry{class: whitespace, lone: r} }

// iastGlyphs lists the Latin transliteration keys and their Devanagari
// glyphs.
var iastGlyphs = []glyph{
	{" ", space(' ')},
	{"\n", space('\n')},

	{"'", sign(avagraha)},
	{"\u1e43", sign(anusvara)}, // ṃ
	{"\u1e25", sign(visarga)},  // ḥ

	{"a", v(0x0905, inherent)},
	{"ai", v(0x0910, 0x0948)},
	{"au", v(0x0914, 0x094c)},
	{"\u0101", v(0x0906, 0x093e)}, // ā
	{"i", v(0x0907, 0x093f)},
	{"\u012b", v(0x0908, 0x0940)}, // ī
	{"u", v(0x0909, 0x0941)},
	{"\u016b", v(0x090a, 0x0942)}, // ū
	{"e", v(0x090f, 0x0947)},
	{"o", v(0x0913, 0x094b)},
	{"\u1e5b", v(0x090b, 0x0943)}, // ṛ
	{"\u1e5d", v(0x0960, 0x0944)}, // ṝ
	{"\u1e37", v(0x090c, 0x0962)}, // ḷ
	{"\u1e39", v(0x0961, 0x0963)}, // ḹ

	{"k", c(0x0915)},
	{"kh", c(0x0916)},
	{"g", c(0x0917)},
	{"gh", c(0x0918)},
	{"\u1e45", c(0x0919)},  // ṅ
	{"c", c(0x091a)},
	{"cc", c(0x091b)},
	{"j", c(0x091c)},
	{"jh", c(0x091d)},
	{"\u00f1", c(0x091e)},  // ñ
	{"\u1e6d", c(0x091f)},  // ṭ
	{"\u1e6dh", c(0x0920)}, // ṭh
	{"\u1e0d", c(0x0921)},  // ḍ
	{"\u1e0dh", c(0x0922)}, // ḍh
	{"\u1e47", c(0x0923)},  // ṇ
	{"t", c(0x0924)},
	{"th", c(0x0925)},
	{"d", c(0x0926)},
	{"dh", c(0x0927)},
	{"n", c(0x0928)},
	{"p", c(0x092a)},
	{"ph", c(0x092b)},
	{"b", c(0x092c)},
	{"bh", c(0x092d)},
	{"m", c(0x092e)},
	{"y", c(0x092f)},
	{"r", c(0x0930)},
	{"l", c(0x0932)},
	{"v", c(0x0935)},
	{"\u015b", c(0x0936)},  // ś
	{"\u1e63", c(0x0937)},  // ṣ
	{"s", c(0x0938)},
	{"h", c(0x0939)},
}

// isoGlyphs adds the ISO 15919 spellings of the vocalic liquids, written with
// a combining ring below, and the dot-above anusvara.
var isoGlyphs = []glyph{
	{"r\u0325", v(0x090b, 0x0943)},       // r̥
	{"r\u0325\u0304", v(0x0960, 0x0944)}, // r̥̄
	{"l\u0325", v(0x090c, 0x0962)},       // l̥
	{"l\u0325\u0304", v(0x0961, 0x0963)}, // l̥̄
	{"\u1e41", sign(anusvara)},           // ṁ
}

// A table maps keys to entries. Any key that is a strict prefix of a longer
// key is recorded in prefix so that the engine knows when to look ahead.
type table struct {
	entries map[key]entry
	prefix  map[key]bool
}

// newTable builds a table from one or more glyph lists. Later lists override
// earlier ones.
func newTable(lists ...[]glyph) *table {
	t := &table{
		entries: map[key]entry{},
		prefix:  map[key]bool{},
	}
	for _, list := range lists {
		for _, g := range list {
			rs := []rune(g.key)
			if len(rs) == 0 || len(rs) > maxKey {
				panic("devanagari: bad table key " + g.key)
			}
			var k key
			for i, r := range rs {
				if i > 0 {
					t.prefix[k] = true
				}
				k[i] = r
			}
			t.entries[k] = g.entry
		}
	}
	return t
}

var (
	iastTable = newTable(iastGlyphs)
	isoTable  = newTable(iastGlyphs, isoGlyphs)
)
