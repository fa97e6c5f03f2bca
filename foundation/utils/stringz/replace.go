// File: replace.go
// Title: Search and Replace Operations
// Description: Prefix and suffix checks, case-insensitive containment and
//              global literal replacement with and without case sensitivity,
//              plus whitespace-collapsing concatenation.
// Author: msto63
// Version: v0.1.1
// Created: 2025-10-14
// Modified: 2025-10-15
//
// Change History:
// - 2025-10-14 v0.1.0: Initial implementation
// - 2025-10-15 v0.1.1: Literal search without regexp; strcase for case folding

package stringz

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/charlievieth/strcase"

	szerrors "github.com/msto63/stringz/foundation/core/errors"
)

// StartsWith reports whether s begins with prefix, compared byte for byte.
// The empty prefix always matches.
func StartsWith(s, prefix string) bool {
	return strings.HasPrefix(s, prefix)
}

// EndsWith reports whether s ends with suffix, compared byte for byte.
// The empty suffix always matches.
func EndsWith(s, suffix string) bool {
	return strings.HasSuffix(s, suffix)
}

// ContainsIgnoreCase reports whether needle occurs in s ignoring letter case.
// The empty needle is contained in every string.
func ContainsIgnoreCase(s, needle string) bool {
	if needle == "" {
		return true
	}
	if utf8.ValidString(s) && utf8.ValidString(needle) {
		return strcase.Contains(s, needle)
	}
	at, _ := indexFold(s, needle)
	return at >= 0
}

// ReplaceAll replaces every non-overlapping occurrence of old in s with new,
// scanning left to right. old is a literal, not a pattern. An empty old is
// rejected with an INVALID_ARGUMENT error.
func ReplaceAll(s, old, new string) (string, error) {
	if old == "" {
		return "", emptyOld("replace_all")
	}
	return strings.ReplaceAll(s, old, new), nil
}

// ReplaceAllIgnoreCase is ReplaceAll with case-insensitive matching. The
// inserted text is new exactly as given, whatever the case of the match.
func ReplaceAllIgnoreCase(s, old, new string) (string, error) {
	if old == "" {
		return "", emptyOld("replace_all_ignore_case")
	}

	at, n := indexFold(s, old)
	if at < 0 {
		return s, nil
	}

	var b strings.Builder
	b.Grow(len(s))
	pos := 0
	for at >= 0 {
		b.WriteString(s[pos : pos+at])
		b.WriteString(new)
		pos += at + n
		at, n = indexFold(s[pos:], old)
	}
	b.WriteString(s[pos:])
	return b.String(), nil
}

func emptyOld(operation string) error {
	return szerrors.InvalidArgument(szerrors.ModuleStringz, operation, "old", "", "non-empty search string")
}

// indexFold returns the byte offset and byte length of the first match of
// substr in s under simple Unicode case folding, or -1. substr is non-empty.
// Invalid UTF-8 bytes only match the identical byte.
func indexFold(s, substr string) (int, int) {
	if utf8.ValidString(s) && utf8.ValidString(substr) {
		for pos := 0; pos < len(s); {
			at := strcase.Index(s[pos:], substr)
			if at < 0 {
				return -1, 0
			}
			at += pos
			if n := foldPrefixLen(s[at:], substr); n >= 0 {
				return at, n
			}
			_, size := utf8.DecodeRuneInString(s[at:])
			pos = at + size
		}
		return -1, 0
	}

	for at := 0; at < len(s); {
		if n := foldPrefixLen(s[at:], substr); n >= 0 {
			return at, n
		}
		_, size := utf8.DecodeRuneInString(s[at:])
		at += size
	}
	return -1, 0
}

// foldPrefixLen returns how many bytes of s match prefix under simple case
// folding, or -1 if s does not start with prefix. Matched lengths can
// differ: the Kelvin sign is three bytes, k is one.
func foldPrefixLen(s, prefix string) int {
	i := 0
	for j := 0; j < len(prefix); {
		if i >= len(s) {
			return -1
		}
		pr, pn := utf8.DecodeRuneInString(prefix[j:])
		sr, sn := utf8.DecodeRuneInString(s[i:])

		pBad := pr == utf8.RuneError && pn == 1
		sBad := sr == utf8.RuneError && sn == 1
		switch {
		case pBad || sBad:
			if !pBad || !sBad || prefix[j] != s[i] {
				return -1
			}
		case !equalFoldRune(pr, sr):
			return -1
		}
		i += sn
		j += pn
	}
	return i
}

// equalFoldRune reports whether a and b are in the same simple folding orbit
func equalFoldRune(a, b rune) bool {
	if a == b {
		return true
	}
	for r := unicode.SimpleFold(a); r != a; r = unicode.SimpleFold(r) {
		if r == b {
			return true
		}
	}
	return false
}

var whitespaceRun = regexp.MustCompile(`\s+`)

// CombineStr concatenates a and b and collapses every whitespace run,
// including one spanning the join, to a single space.
func CombineStr(a, b string) string {
	return whitespaceRun.ReplaceAllLiteralString(a+b, " ")
}
