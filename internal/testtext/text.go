// Copyright 2026 The Sanskrit Tools Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package testtext contains sample texts and helpers shared by tests and
// benchmarks.
package testtext

import "strings"

// Gita holds the first verses of the Bhagavad Gītā in IAST.
const Gita = `dharmakṣetre kurukṣetre samavetā yuyutsavaḥ
māmakāḥ pāṇḍavāś caiva kim akurvata sañjaya
dṛṣṭvā tu pāṇḍavānīkaṃ vyūḍhaṃ duryodhanas tadā
ācāryam upasaṃgamya rājā vacanam abravīt
`

// ASCII is plain transliteration without any diacritics.
const ASCII = `om namo bhagavate vaasudevaaya
yogah karmasu kausalam
`

// Mixed interleaves transliteration with punctuation, digits and runes that
// have no transliteration.
const Mixed = "oṃ tat sat || 1.1 ॐ\tśāntiḥ — ሴ x\n"

// Repeat returns s repeated until it is at least n bytes long.
func Repeat(s string, n int) string {
	if len(s) == 0 {
		return ""
	}
	return strings.Repeat(s, (n+len(s)-1)/len(s))
}
