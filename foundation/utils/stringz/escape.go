// File: escape.go
// Title: Regular Expression Escaping and Literal Patterns
// Description: Escapes regular expression metacharacters in arbitrary literals
//              and compiles exact-literal patterns with optional global and
//              case-insensitive matching.
// Author: msto63
// Version: v0.1.1
// Created: 2025-10-14
// Modified: 2025-10-15
//
// Change History:
// - 2025-10-14 v0.1.0: Initial implementation
// - 2025-10-15 v0.1.1: Reject literals that are not valid UTF-8

package stringz

import (
	"regexp"
	"strings"
	"unicode/utf8"

	szerrors "github.com/msto63/stringz/foundation/core/errors"
)

// regexSpecials lists every character EscapeRegex prefixes with a backslash
const regexSpecials = `-[]/{}()*+?.\^$|`

// EscapeRegex escapes the characters - [ ] / { } ( ) * + ? . \ ^ $ | by
// prefixing each with a backslash, so the result compiles to a pattern that
// matches literal exactly.
func EscapeRegex(literal string) string {
	if !strings.ContainsAny(literal, regexSpecials) {
		return literal
	}

	var b strings.Builder
	b.Grow(len(literal) * 2)
	for i := 0; i < len(literal); i++ {
		c := literal[i]
		if strings.IndexByte(regexSpecials, c) >= 0 {
			b.WriteByte('\\')
		}
		b.WriteByte(c)
	}
	return b.String()
}

// PatternFlag selects matching behaviour for BuildPattern
type PatternFlag uint8

const (
	// FlagGlobal applies Replace at every match instead of only the first
	FlagGlobal PatternFlag = 1 << iota

	// FlagIgnoreCase matches without regard to letter case
	FlagIgnoreCase
)

// Has reports whether all bits of flag are set
func (f PatternFlag) Has(flag PatternFlag) bool {
	return f&flag == flag
}

// String returns the flags in regular expression notation ("g", "i", "gi")
func (f PatternFlag) String() string {
	var s string
	if f.Has(FlagGlobal) {
		s += "g"
	}
	if f.Has(FlagIgnoreCase) {
		s += "i"
	}
	return s
}

// Pattern is a compiled exact-literal pattern
type Pattern struct {
	literal string
	flags   PatternFlag
	re      *regexp.Regexp
}

// BuildPattern escapes literal and compiles it with the given flags.
// A literal that is not valid UTF-8 is rejected with INVALID_ARGUMENT, since
// the regexp engine cannot represent it. Any other error means the regexp
// engine rejected the escaped literal.
func BuildPattern(literal string, flags PatternFlag) (*Pattern, error) {
	if !utf8.ValidString(literal) {
		return nil, szerrors.InvalidArgument(szerrors.ModuleStringz, "build_pattern", "literal", literal, "valid UTF-8").
			WithDetail("flags", flags.String())
	}

	expr := EscapeRegex(literal)
	if flags.Has(FlagIgnoreCase) {
		expr = "(?i)" + expr
	}

	re, err := regexp.Compile(expr)
	if err != nil {
		return nil, szerrors.InvalidPattern(szerrors.ModuleStringz, "build_pattern", expr, err).
			WithDetail("literal", literal).
			WithDetail("flags", flags.String())
	}

	return &Pattern{literal: literal, flags: flags, re: re}, nil
}

// MustBuildPattern is like BuildPattern but panics on error
func MustBuildPattern(literal string, flags PatternFlag) *Pattern {
	p, err := BuildPattern(literal, flags)
	if err != nil {
		panic(err)
	}
	return p
}

// Literal returns the unescaped text the pattern matches
func (p *Pattern) Literal() string { return p.literal }

// Flags returns the flags the pattern was built with
func (p *Pattern) Flags() PatternFlag { return p.flags }

// Expr returns the compiled regular expression source
func (p *Pattern) Expr() string { return p.re.String() }

// MatchString reports whether s contains a match
func (p *Pattern) MatchString(s string) bool {
	return p.re.MatchString(s)
}

// Index returns the byte offset of the first match in s, or -1
func (p *Pattern) Index(s string) int {
	loc := p.re.FindStringIndex(s)
	if loc == nil {
		return -1
	}
	return loc[0]
}

// Count returns the number of non-overlapping matches in s
func (p *Pattern) Count(s string) int {
	return len(p.re.FindAllStringIndex(s, -1))
}

// Replace substitutes repl for the first match, or for every match when the
// pattern is global. repl is inserted literally; $ has no special meaning.
func (p *Pattern) Replace(s, repl string) string {
	if p.flags.Has(FlagGlobal) {
		return p.re.ReplaceAllLiteralString(s, repl)
	}

	loc := p.re.FindStringIndex(s)
	if loc == nil {
		return s
	}
	return s[:loc[0]] + repl + s[loc[1]:]
}
