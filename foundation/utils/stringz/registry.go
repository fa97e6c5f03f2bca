// File: registry.go
// Title: Extension Registry
// Description: A process-wide table of named string methods that can be
//              invoked dynamically by name, plus the type-level Format entry
//              point. Installation is explicit and non-destructive: a name
//              that is already registered is never replaced, and the
//              check-and-set is atomic so concurrent installers cannot race.
// Author: msto63
// Version: v0.1.1
// Created: 2025-10-14
// Modified: 2025-10-15
//
// Change History:
// - 2025-10-14 v0.1.0: Initial implementation
// - 2025-10-15 v0.1.1: Result size limit for times, pad and fixSize

package stringz

import (
	"sort"
	"strconv"
	"sync"
	"unicode/utf8"

	szerrors "github.com/msto63/stringz/foundation/core/errors"
	szlog "github.com/msto63/stringz/foundation/core/log"
)

// Kind tags the type held by a Value
type Kind int

const (
	// KindAbsent marks an operation that had nothing to return
	KindAbsent Kind = iota

	// KindString marks a string result
	KindString

	// KindBool marks a boolean result from a predicate
	KindBool
)

// String returns the name of the kind
func (k Kind) String() string {
	switch k {
	case KindString:
		return "string"
	case KindBool:
		return "bool"
	default:
		return "absent"
	}
}

// Value is the result of a registry call
type Value struct {
	kind Kind
	str  string
	b    bool
}

// StringValue wraps a string result
func StringValue(s string) Value { return Value{kind: KindString, str: s} }

// BoolValue wraps a boolean result
func BoolValue(b bool) Value { return Value{kind: KindBool, b: b} }

// AbsentValue is the sentinel for "nothing to return"
func AbsentValue() Value { return Value{kind: KindAbsent} }

func optionalValue(s string, ok bool) Value {
	if !ok {
		return AbsentValue()
	}
	return StringValue(s)
}

// Kind returns the type held by v
func (v Value) Kind() Kind { return v.kind }

// IsAbsent reports whether v is the absent sentinel
func (v Value) IsAbsent() bool { return v.kind == KindAbsent }

// Str returns the string result; ok is false unless v holds a string
func (v Value) Str() (string, bool) { return v.str, v.kind == KindString }

// Bool returns the boolean result; ok is false unless v holds a bool
func (v Value) Bool() (bool, bool) { return v.b, v.kind == KindBool }

// String renders v for display: absent as "null", booleans as true/false
func (v Value) String() string {
	switch v.kind {
	case KindString:
		return v.str
	case KindBool:
		return strconv.FormatBool(v.b)
	default:
		return Null
	}
}

// MaxResultLen caps the byte length of results built by the times, pad and
// fixSize methods
const MaxResultLen = 64 << 20

// Method is a string operation invoked by name with the receiver as its
// first parameter and the remaining parameters as text
type Method func(receiver string, args ...string) (Value, error)

// Registry maps method names to Methods
type Registry struct {
	mu      sync.RWMutex
	methods map[string]Method
	logger  *szlog.Logger
}

// NewRegistry creates an empty registry. A nil logger discards output.
func NewRegistry(logger *szlog.Logger) *Registry {
	if logger == nil {
		logger = szlog.Discard()
	}
	return &Registry{
		methods: make(map[string]Method),
		logger:  logger.WithField("component", "registry"),
	}
}

// Register adds m under name unless the name is taken. It reports whether m
// was installed.
func (r *Registry) Register(name string, m Method) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.methods[name]; exists {
		r.logger.Debug("method already registered, skipping", szlog.Field("method", name))
		return false
	}
	r.methods[name] = m
	r.logger.Debug("method registered", szlog.Field("method", name))
	return true
}

// Lookup returns the method registered under name
func (r *Registry) Lookup(name string) (Method, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	m, ok := r.methods[name]
	return m, ok
}

// Names returns the registered method names in sorted order
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.methods))
	for name := range r.methods {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Call invokes the method registered under name on receiver
func (r *Registry) Call(name, receiver string, args ...string) (Value, error) {
	m, ok := r.Lookup(name)
	if !ok {
		return AbsentValue(), szerrors.NotFound(szerrors.ModuleRegistry, "call", name).
			WithDetail("method", name)
	}
	return m(receiver, args...)
}

// Format is the type-level formatting entry point, equivalent to Fmt
func (r *Registry) Format(template string, args ...any) string {
	return Fmt(template, args...)
}

// builtinMethod pairs a method name with its implementation
type builtinMethod struct {
	name   string
	method Method
}

// builtins lists every operation installed by InstallInto, under the names
// the methods are known by on the extension type
var builtins = []builtinMethod{
	{"startsWith", func(s string, args ...string) (Value, error) {
		prefix, err := stringArg("startsWith", args, 0, "prefix")
		if err != nil {
			return AbsentValue(), err
		}
		return BoolValue(StartsWith(s, prefix)), nil
	}},
	{"endsWith", func(s string, args ...string) (Value, error) {
		suffix, err := stringArg("endsWith", args, 0, "suffix")
		if err != nil {
			return AbsentValue(), err
		}
		return BoolValue(EndsWith(s, suffix)), nil
	}},
	{"containsIgnoreCase", func(s string, args ...string) (Value, error) {
		needle, err := stringArg("containsIgnoreCase", args, 0, "needle")
		if err != nil {
			return AbsentValue(), err
		}
		return BoolValue(ContainsIgnoreCase(s, needle)), nil
	}},
	{"replaceAll", func(s string, args ...string) (Value, error) {
		return callReplace("replaceAll", s, args, ReplaceAll)
	}},
	{"replaceAllIgnoreCase", func(s string, args ...string) (Value, error) {
		return callReplace("replaceAllIgnoreCase", s, args, ReplaceAllIgnoreCase)
	}},
	{"escapeRegEx", func(s string, _ ...string) (Value, error) {
		return StringValue(EscapeRegex(s)), nil
	}},
	{"times", func(s string, args ...string) (Value, error) {
		n, err := intArg("times", args, 0, "count")
		if err != nil {
			return AbsentValue(), err
		}
		if n > 1 {
			if err := checkSize("times", "count", n, len(s), 0); err != nil {
				return AbsentValue(), err
			}
		}
		return optionalValue(Repeat(s, n)), nil
	}},
	{"pad", func(s string, args ...string) (Value, error) {
		size, err := intArg("pad", args, 0, "size")
		if err != nil {
			return AbsentValue(), err
		}
		padChar := padArg(args, 1)
		if err := checkSize("pad", "size", size, len(padChar), len(s)); err != nil {
			return AbsentValue(), err
		}
		return StringValue(Pad(s, size, padChar)), nil
	}},
	{"chop", func(s string, args ...string) (Value, error) {
		size, err := intArg("chop", args, 0, "size")
		if err != nil {
			return AbsentValue(), err
		}
		return optionalValue(Chop(s, size)), nil
	}},
	{"fixSize", func(s string, args ...string) (Value, error) {
		size, err := intArg("fixSize", args, 0, "size")
		if err != nil {
			return AbsentValue(), err
		}
		padChar := padArg(args, 1)
		if abs(size) > utf8.RuneCountInString(s) {
			if err := checkSize("fixSize", "size", size, len(padChar), len(s)); err != nil {
				return AbsentValue(), err
			}
		}
		return optionalValue(FixSize(s, size, padChar)), nil
	}},
	{"fmt", func(s string, args ...string) (Value, error) {
		values := make([]any, len(args))
		for i, a := range args {
			values[i] = a
		}
		return StringValue(Fmt(s, values...)), nil
	}},
	{"combineStr", func(s string, args ...string) (Value, error) {
		other, err := stringArg("combineStr", args, 0, "other")
		if err != nil {
			return AbsentValue(), err
		}
		return StringValue(CombineStr(s, other)), nil
	}},
}

// BuiltinNames returns the names InstallInto registers, in install order
func BuiltinNames() []string {
	names := make([]string, len(builtins))
	for i, b := range builtins {
		names[i] = b.name
	}
	return names
}

// InstallInto registers every builtin method that r does not already have
// and returns the names that were newly installed
func InstallInto(r *Registry) []string {
	installed := make([]string, 0, len(builtins))
	for _, b := range builtins {
		if r.Register(b.name, b.method) {
			installed = append(installed, b.name)
		}
	}
	r.logger.Debug("string extensions installed",
		szlog.Field("installed", len(installed)),
		szlog.Field("skipped", len(builtins)-len(installed)))
	return installed
}

var (
	defaultRegistry *Registry
	installOnce     sync.Once
)

// Install installs the builtin methods into the process-wide default
// registry on first use and returns that registry. Later calls do nothing.
func Install() *Registry {
	installOnce.Do(func() {
		defaultRegistry = NewRegistry(nil)
		InstallInto(defaultRegistry)
	})
	return defaultRegistry
}

func stringArg(method string, args []string, pos int, name string) (string, error) {
	if pos >= len(args) {
		return "", szerrors.MissingArgument(szerrors.ModuleRegistry, method, name, pos)
	}
	return args[pos], nil
}

func intArg(method string, args []string, pos int, name string) (int, error) {
	raw, err := stringArg(method, args, pos, name)
	if err != nil {
		return 0, err
	}
	n, convErr := strconv.Atoi(raw)
	if convErr != nil {
		return 0, szerrors.InvalidArgument(szerrors.ModuleRegistry, method, name, raw, "integer")
	}
	return n, nil
}

// padArg returns the pad text at pos, or DefaultPadChar
func padArg(args []string, pos int) string {
	if pos < len(args) && args[pos] != "" {
		return args[pos]
	}
	return DefaultPadChar
}

// checkSize rejects a count of unitLen-byte copies that would grow a
// baseLen-byte string past MaxResultLen
func checkSize(method, name string, count, unitLen, baseLen int) error {
	if count == 0 || unitLen == 0 {
		return nil
	}
	if baseLen > MaxResultLen || abs(count) > (MaxResultLen-baseLen)/unitLen {
		return szerrors.InvalidArgument(szerrors.ModuleRegistry, method, name, count,
			"a result of at most "+strconv.Itoa(MaxResultLen)+" bytes")
	}
	return nil
}

func callReplace(method, s string, args []string, replace func(string, string, string) (string, error)) (Value, error) {
	old, err := stringArg(method, args, 0, "old")
	if err != nil {
		return AbsentValue(), err
	}
	repl, err := stringArg(method, args, 1, "new")
	if err != nil {
		return AbsentValue(), err
	}
	out, err := replace(s, old, repl)
	if err != nil {
		return AbsentValue(), err
	}
	return StringValue(out), nil
}
