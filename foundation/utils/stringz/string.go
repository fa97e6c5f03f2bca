// File: string.go
// Title: String Extension Type
// Description: String wraps the built-in string type and exposes every
//              operation of the package as a method, giving method-call
//              ergonomics without touching the native type.
// Author: msto63
// Version: v0.1.0
// Created: 2025-10-14
// Modified: 2025-10-14
//
// Change History:
// - 2025-10-14 v0.1.0: Initial implementation

package stringz

// String is a string with the stringz operations attached as methods
type String string

// String returns the underlying string
func (s String) String() string { return string(s) }

// StartsWith reports whether s begins with prefix
func (s String) StartsWith(prefix string) bool { return StartsWith(string(s), prefix) }

// EndsWith reports whether s ends with suffix
func (s String) EndsWith(suffix string) bool { return EndsWith(string(s), suffix) }

// ContainsIgnoreCase reports whether needle occurs in s ignoring case
func (s String) ContainsIgnoreCase(needle string) bool {
	return ContainsIgnoreCase(string(s), needle)
}

// ReplaceAll replaces every occurrence of old with new
func (s String) ReplaceAll(old, new string) (String, error) {
	r, err := ReplaceAll(string(s), old, new)
	return String(r), err
}

// ReplaceAllIgnoreCase replaces every occurrence of old with new ignoring case
func (s String) ReplaceAllIgnoreCase(old, new string) (String, error) {
	r, err := ReplaceAllIgnoreCase(string(s), old, new)
	return String(r), err
}

// EscapeRegex escapes regular expression metacharacters
func (s String) EscapeRegex() String { return String(EscapeRegex(string(s))) }

// Times repeats s n times; see Repeat
func (s String) Times(n int) (String, bool) {
	r, ok := Repeat(string(s), n)
	return String(r), ok
}

// Pad pads s with abs(size) copies of padChar; see Pad
func (s String) Pad(size int, padChar string) String {
	return String(Pad(string(s), size, padChar))
}

// Chop removes abs(size) runes from one end; see Chop
func (s String) Chop(size int) (String, bool) {
	r, ok := Chop(string(s), size)
	return String(r), ok
}

// FixSize chops or pads s to abs(size) runes; see FixSize
func (s String) FixSize(size int, padChar string) (String, bool) {
	r, ok := FixSize(string(s), size, padChar)
	return String(r), ok
}

// Fmt uses s as the template for Fmt
func (s String) Fmt(args ...any) String { return String(Fmt(string(s), args...)) }

// CombineStr joins s and other collapsing whitespace; see CombineStr
func (s String) CombineStr(other string) String {
	return String(CombineStr(string(s), other))
}
