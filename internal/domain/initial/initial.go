// Package initial provides the initial-letter buckets used by the artist filter.
package initial

import (
	"strings"
	"unicode/utf8"
)

// Key is an initial bucket: an uppercase Latin letter, a Hangul leading
// consonant syllable, or Other.
type Key string

const (
	// None means no initial filter is active.
	None Key = ""
	// Other collects digits, symbols, other scripts and empty names.
	Other Key = "#"
)

const (
	hangulBase  = 0xAC00
	hangulLast  = 0xD7A3
	hangulBlock = 21 * 28
)

// leadBuckets maps the 19 leading consonant indices to the 14 display
// buckets. Tense consonants share the bucket of their plain form.
var leadBuckets = [19]Key{
	"가", "가", "나", "다", "다", "라", "마", "바", "바", "사",
	"사", "아", "자", "자", "차", "카", "타", "파", "하",
}

var hangulKeys = []Key{"가", "나", "다", "라", "마", "바", "사", "아", "자", "차", "카", "타", "파", "하"}

// Classify returns the bucket of a name, based on its first rune after trimming.
func Classify(name string) Key {
	r, ok := firstRune(name)
	if !ok {
		return Other
	}
	switch {
	case isASCIILetter(r):
		return Key(strings.ToUpper(string(r)))
	case r >= hangulBase && r <= hangulLast:
		return leadBuckets[(r-hangulBase)/hangulBlock]
	default:
		return Other
	}
}

// IsLatin reports whether the name starts with an ASCII Latin letter.
func IsLatin(name string) bool {
	r, ok := firstRune(name)
	return ok && isASCIILetter(r)
}

// LatinKeys returns A through Z.
func LatinKeys() []Key {
	keys := make([]Key, 0, 26)
	for c := 'A'; c <= 'Z'; c++ {
		keys = append(keys, Key(string(c)))
	}
	return keys
}

// HangulKeys returns the Hangul buckets in display order.
func HangulKeys() []Key {
	return append([]Key(nil), hangulKeys...)
}

// All returns every selectable key: Latin, then Hangul, then Other.
func All() []Key {
	keys := append(LatinKeys(), hangulKeys...)
	return append(keys, Other)
}

// ParseKey validates user input against the key alphabet.
// Lowercase Latin letters are accepted.
func ParseKey(s string) (Key, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return None, false
	}
	if len(s) == 1 && isASCIILetter(rune(s[0])) {
		return Key(strings.ToUpper(s)), true
	}
	for _, k := range hangulKeys {
		if string(k) == s {
			return k, true
		}
	}
	if s == string(Other) {
		return Other, true
	}
	return None, false
}

// Matches reports whether a name belongs to the bucket. None matches all.
func (k Key) Matches(name string) bool {
	return k == None || Classify(name) == k
}

// String returns the display form.
func (k Key) String() string {
	if k == None {
		return "all"
	}
	return string(k)
}

func firstRune(name string) (rune, bool) {
	name = strings.TrimSpace(name)
	if name == "" {
		return 0, false
	}
	r, _ := utf8.DecodeRuneInString(name)
	return r, true
}

func isASCIILetter(r rune) bool {
	return (r >= 'A' && r <= 'Z') || (r >= 'a' && r <= 'z')
}
