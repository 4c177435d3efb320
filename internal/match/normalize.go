// Package match implements normalized fuzzy lookup of reference rows for
// slip auto-fill. Matching is exact-on-normalized-key first, then
// substring containment; the first hit in table order wins, so results
// are deterministic for a given table.
package match

import "strings"

// Punctuation and bracket characters stripped by Normalize. Case folding
// is deliberately absent: keys are CJK text.
const strippedRunes = "：:，,。.!？?（）()【】[]{}<>《》-"

// Normalize derives the comparison key for a reference name: all
// whitespace and a fixed punctuation set removed. Idempotent.
func Normalize(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if isSpace(r) || strings.ContainsRune(strippedRunes, r) {
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// NormalizeValue strips whitespace only. Used for plate/driver/phone
// comparison where punctuation is meaningful.
func NormalizeValue(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if isSpace(r) {
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

func isSpace(r rune) bool {
	switch r {
	case ' ', '\t', '\n', '\r', '\v', '\f', ' ', '　':
		return true
	}
	return false
}
