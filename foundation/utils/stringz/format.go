// File: format.go
// Title: Positional and Sequential Template Formatting
// Description: Implements Fmt, which substitutes %{N} indexed placeholders and
//              %{s} sequential placeholders into a template. Indexed tokens are
//              resolved first over the whole template; sequential tokens are
//              then resolved left to right over that result with their own
//              argument cursor. %%{s} is emitted verbatim without consuming an
//              argument. Placeholders without a matching argument render as
//              "undefined"; malformed tokens are left untouched.
// Author: msto63
// Version: v0.1.0
// Created: 2025-10-14
// Modified: 2025-10-14
//
// Change History:
// - 2025-10-14 v0.1.0: Initial implementation

package stringz

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

const (
	// Undefined is substituted for a placeholder that has no argument
	Undefined = "undefined"

	// Null is how a nil argument is rendered
	Null = "null"

	sequentialToken = "%{s}"
	escapeMarker    = '%'
)

// indexedToken matches %{<digits>} and captures the digits
var indexedToken = regexp.MustCompile(`%\{(\d+)\}`)

// Fmt formats template with args. See the package documentation for the
// placeholder syntax. Fmt never fails.
func Fmt(template string, args ...any) string {
	return formatSequential(formatIndexed(template, args), args)
}

// formatIndexed replaces every %{N} with the N-th argument
func formatIndexed(template string, args []any) string {
	if !strings.Contains(template, "%{") {
		return template
	}

	return indexedToken.ReplaceAllStringFunc(template, func(token string) string {
		digits := token[2 : len(token)-1]
		idx, err := strconv.Atoi(digits)
		// Atoi only fails here on overflow, which is out of range too
		if err != nil || idx >= len(args) {
			return Undefined
		}
		return render(args[idx])
	})
}

// formatSequential replaces %{s} tokens left to right, honoring %%{s}
func formatSequential(s string, args []any) string {
	first := strings.Index(s, sequentialToken)
	if first < 0 {
		return s
	}

	var b strings.Builder
	b.Grow(len(s))

	cursor := 0
	pos := 0
	for at := first; at >= 0; {
		b.WriteString(s[pos:at])

		// The marker is looked up in s, never in output already substituted
		if at > 0 && s[at-1] == escapeMarker {
			b.WriteString(sequentialToken)
		} else {
			if cursor < len(args) {
				b.WriteString(render(args[cursor]))
			} else {
				b.WriteString(Undefined)
			}
			cursor++
		}

		pos = at + len(sequentialToken)
		next := strings.Index(s[pos:], sequentialToken)
		if next < 0 {
			break
		}
		at = pos + next
	}
	b.WriteString(s[pos:])

	return b.String()
}

// render converts an argument to the text substituted for it
func render(v any) string {
	switch t := v.(type) {
	case nil:
		return Null
	case string:
		return t
	default:
		return fmt.Sprint(v)
	}
}
