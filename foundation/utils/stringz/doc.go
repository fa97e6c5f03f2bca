// File: doc.go
// Title: Package Documentation for stringz
// Description: Package stringz provides string primitives the standard
//              library does not: literal-safe regular expression escaping,
//              case-insensitive search and replace, signed-size padding and
//              chopping, and a positional/sequential template formatter.
// Author: msto63
// Version: v0.1.0
// Created: 2025-10-14
// Modified: 2025-10-14
//
// Change History:
// - 2025-10-14 v0.1.0: Initial package documentation

// Package stringz provides small string-manipulation primitives and a
// template formatter.
//
// Overview
//
// Every function in the package is pure: it reads only its arguments and
// returns a new value, so all of them are safe for concurrent use. The only
// shared state is the extension Registry, whose installation is guarded.
//
// Operations that have nothing meaningful to return report it through a
// second ok result instead of an empty string, so "no result" stays distinct
// from "empty result":
//
//	s, ok := stringz.Repeat("*", 0)  // "", false
//	s, ok  = stringz.Chop("*", 1)    // "", false
//	s, ok  = stringz.Chop("", 0)     // "", true
//
// Template formatting
//
// Fmt understands two placeholder styles that may be mixed freely:
//
//	%{N}   the N-th argument (zero-based), any number of times
//	%{s}   the next argument, left to right
//	%%{s}  a literal %%{s}; consumes nothing
//
// Indexed placeholders are resolved over the whole template first. Sequential
// placeholders are then resolved over that result with a cursor that starts
// at the first argument and ignores which indices were used:
//
//	stringz.Fmt("The %{2} %{s} %{0}", "quick", "brown", "fox")
//	// "The fox quick quick"
//
// A placeholder whose argument does not exist renders as "undefined". Text
// that only looks like a placeholder (%{x}, %{1 , an unclosed %{) is copied
// through unchanged. Fmt never returns an error.
//
// Sizes
//
// Pad, Chop and FixSize take a signed size. Positive sizes work on the right
// end of the string, negative sizes on the left. Chop and FixSize measure in
// runes; Pad counts copies of the pad text, which may be several characters:
//
//	stringz.Pad("*", -5, "-")    // "-----*"
//	stringz.Pad("*", 2, "bob")   // "*bobbob"
//	stringz.FixSize("ab", -4, "") // "  ab", true
//
// Search and replace
//
// ReplaceAll and ReplaceAllIgnoreCase treat the search text as a literal
// and insert the replacement exactly as given. An empty search text is
// rejected with an INVALID_ARGUMENT error rather than inserting between
// every character. Case-insensitive matching uses simple Unicode case
// folding; bytes that are not valid UTF-8 match only themselves.
//
// BuildPattern compiles an escaped literal into a regular expression for
// callers that need one. It rejects literals that are not valid UTF-8.
//
// Extensions
//
// String carries every operation as a method:
//
//	out, _ := stringz.String("Bobby").ReplaceAll("b", "d") // "Boddy"
//
// Install populates the process-wide Registry once, which dispatches the
// same operations by name for callers that only have text, such as the
// stringz command line tool:
//
//	v, err := stringz.Install().Call("pad", "*", "3", "-") // "*---"
package stringz
