// File: example_test.go
// Title: Example Tests for StringZ Package Documentation
// Description: Executable examples that serve as both documentation and tests.
// Author: msto63
// Version: v0.1.0
// Created: 2025-10-14
// Modified: 2025-10-14
//
// Change History:
// - 2025-10-14 v0.1.0: Initial example implementation

package stringz_test

import (
	"fmt"

	szstringz "github.com/msto63/stringz/foundation/utils/stringz"
)

func ExampleFmt() {
	fmt.Println(szstringz.Fmt("The %{0} %{1} %{2}", "quick", "brown", "fox"))
	fmt.Println(szstringz.Fmt("The %{s} %{s} %{s}", "quick", "brown", "fox"))
	fmt.Println(szstringz.Fmt("%{0} %{s} %{1}", "a", "b"))
	fmt.Println(szstringz.Fmt("%{s} %{s}", "only"))
	// Output:
	// The quick brown fox
	// The quick brown fox
	// a a b
	// only undefined
}

func ExampleFmt_escaped() {
	fmt.Println(szstringz.Fmt("%{s} %%{s} %{s}", "a", "b"))
	// Output:
	// a %%{s} b
}

func ExampleEscapeRegex() {
	fmt.Println(szstringz.EscapeRegex("1+1=2?"))
	fmt.Println(szstringz.EscapeRegex("plain"))
	// Output:
	// 1\+1=2\?
	// plain
}

func ExampleReplaceAll() {
	s, _ := szstringz.ReplaceAll("Bobby", "b", "d")
	fmt.Println(s)

	s, _ = szstringz.ReplaceAllIgnoreCase("Bobby", "b", "d")
	fmt.Println(s)

	_, err := szstringz.ReplaceAll("Bobby", "", "d")
	fmt.Println(err != nil)
	// Output:
	// Boddy
	// doddy
	// true
}

func ExamplePad() {
	fmt.Printf("%q\n", szstringz.Pad("*", 1, ""))
	fmt.Println(szstringz.Pad("*", -5, "-"))
	fmt.Println(szstringz.Pad("*", 2, "bob"))
	// Output:
	// "* "
	// -----*
	// *bobbob
}

func ExampleChop() {
	s, ok := szstringz.Chop("testing", 3)
	fmt.Println(s, ok)
	s, ok = szstringz.Chop("testing", -4)
	fmt.Println(s, ok)
	_, ok = szstringz.Chop("*", 1)
	fmt.Println(ok)
	// Output:
	// test true
	// ing true
	// false
}

func ExampleFixSize() {
	s, _ := szstringz.FixSize("testing", 10, "-")
	fmt.Println(s)
	s, _ = szstringz.FixSize("testing", -3, "")
	fmt.Println(s)
	// Output:
	// testing---
	// ing
}

func ExampleCombineStr() {
	fmt.Println(szstringz.CombineStr("Hello    ", " Monday"))
	// Output:
	// Hello Monday
}

func ExampleString() {
	s := szstringz.String("The quick brown fox")
	fmt.Println(s.ContainsIgnoreCase("QUICK"))
	fmt.Println(s.Pad(-2, "."))
	// Output:
	// true
	// ..The quick brown fox
}

func ExampleRegistry_Call() {
	r := szstringz.NewRegistry(nil)
	szstringz.InstallInto(r)

	v, _ := r.Call("chop", "testing", "3")
	fmt.Println(v)

	v, _ = r.Call("times", "*", "0")
	fmt.Println(v)
	// Output:
	// test
	// null
}
