// File: size.go
// Title: Fixed-Width String Shaping
// Description: Repeat, pad, chop and fixSize. Sizes are signed: a positive
//              size works on the right end of the string, a negative size on
//              the left. Operations with nothing meaningful to return report
//              that through a false ok value instead of an empty string.
// Author: msto63
// Version: v0.1.1
// Created: 2025-10-14
// Modified: 2025-10-15
//
// Change History:
// - 2025-10-14 v0.1.0: Initial implementation
// - 2025-10-15 v0.1.1: Document overflow panics of Repeat and Pad

package stringz

import (
	"math"
	"strings"
	"unicode/utf8"
)

// DefaultPadChar is used by Pad and FixSize when padChar is empty
const DefaultPadChar = " "

// Repeat returns s concatenated to itself n times. n == 0 returns ok=false;
// n == 1 and negative n return s unchanged. Like strings.Repeat, it panics
// if the result length overflows.
func Repeat(s string, n int) (string, bool) {
	switch {
	case n == 0:
		return "", false
	case n <= 1:
		return s, true
	default:
		return strings.Repeat(s, n), true
	}
}

// Pad appends abs(size) copies of padChar to the right of s when size > 0,
// or prepends them when size < 0. padChar may be longer than one character;
// the added length is abs(size) copies of it. An empty padChar means " ".
// Like strings.Repeat, it panics if the result length overflows.
func Pad(s string, size int, padChar string) string {
	if size == 0 {
		return s
	}
	if padChar == "" {
		padChar = DefaultPadChar
	}

	padding := strings.Repeat(padChar, abs(size))
	if size > 0 {
		return s + padding
	}
	return padding + s
}

// Chop removes abs(size) runes from the end of s when size > 0, or from the
// start when size < 0. size == 0 returns s unchanged. ok is false when
// abs(size) is at least the rune length of s.
func Chop(s string, size int) (string, bool) {
	if size == 0 {
		return s, true
	}

	n := abs(size)
	length := utf8.RuneCountInString(s)
	if n >= length {
		return "", false
	}

	if size > 0 {
		return s[:runeOffset(s, length-n)], true
	}
	return s[runeOffset(s, n):], true
}

// FixSize chops or pads s to exactly abs(size) runes, working on the right
// end for positive size and the left end for negative size. Padding repeats
// padChar and cuts the last copy short if needed. size == 0 returns ok=false.
func FixSize(s string, size int, padChar string) (string, bool) {
	if size == 0 {
		return "", false
	}
	if padChar == "" {
		padChar = DefaultPadChar
	}

	sign := 1
	if size < 0 {
		sign = -1
	}

	diff := utf8.RuneCountInString(s) - abs(size)
	switch {
	case diff > 0:
		return Chop(s, diff*sign)
	case diff < 0:
		padding := fill(padChar, -diff)
		if sign > 0 {
			return s + padding, true
		}
		return padding + s, true
	default:
		return s, true
	}
}

// fill repeats unit until it is exactly width runes long
func fill(unit string, width int) string {
	unitLen := utf8.RuneCountInString(unit)
	copies := (width + unitLen - 1) / unitLen
	repeated := strings.Repeat(unit, copies)
	return repeated[:runeOffset(repeated, width)]
}

// runeOffset returns the byte offset of the n-th rune in s
func runeOffset(s string, n int) int {
	if n <= 0 {
		return 0
	}
	count := 0
	for i := range s {
		if count == n {
			return i
		}
		count++
	}
	return len(s)
}

func abs(n int) int {
	if n == math.MinInt {
		return math.MaxInt
	}
	if n < 0 {
		return -n
	}
	return n
}
