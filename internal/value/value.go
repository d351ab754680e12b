// Package value implements the Bolt runtime's tagged-union value type,
// truthiness, equality, and display rules.
package value

import "strconv"

// Kind tags the variant held by a Value.
type Kind int

const (
	KindNil Kind = iota
	KindNumber
	KindString
	KindBool
	KindCallable
)

// Value is the runtime representation of every Bolt value. Exactly one of
// Num/Str/Bool/Callable is meaningful, selected by Kind.
type Value struct {
	Kind     Kind
	Num      float64
	Str      string
	Bool     bool
	Callable *Callable
}

// Callable is a first-class invocable value: a name, an arity, and an
// invocation thunk that closes over its defining environment. Callables
// compare equal by (Name, Arity) only — the thunk itself is
// opaque and not structurally comparable.
type Callable struct {
	Name  string
	Arity int
	// Thunk's signature mentions only Value, so this package has no
	// dependency on the interpreter package that constructs it.
	Thunk func(args []Value) (Value, error)
}

func Nil() Value                { return Value{Kind: KindNil} }
func Number(n float64) Value    { return Value{Kind: KindNumber, Num: n} }
func String(s string) Value     { return Value{Kind: KindString, Str: s} }
func Bool(b bool) Value         { return Value{Kind: KindBool, Bool: b} }
func FromCallable(c *Callable) Value { return Value{Kind: KindCallable, Callable: c} }

// Truthy implements language-level truthiness: Nil and the boolean false
// are falsy, everything else — including 0 and the empty string — is
// truthy. Used for if/while/and/or and, per the decision recorded in
// DESIGN.md, for unary `!` as well.
func Truthy(v Value) bool {
	switch v.Kind {
	case KindNil:
		return false
	case KindBool:
		return v.Bool
	default:
		return true
	}
}

// Equal implements structural-within-variant equality, cross-variant
// comparisons always false, and name+arity equality for callables.
func Equal(a, b Value) bool {
	if a.Kind != b.Kind {
		return false
	}
	switch a.Kind {
	case KindNil:
		return true
	case KindNumber:
		return a.Num == b.Num
	case KindString:
		return a.Str == b.Str
	case KindBool:
		return a.Bool == b.Bool
	case KindCallable:
		return a.Callable.Name == b.Callable.Name && a.Callable.Arity == b.Callable.Arity
	default:
		return false
	}
}

// Display renders v the way `print` writes it to stdout.
func Display(v Value) string {
	switch v.Kind {
	case KindNil:
		return "nil"
	case KindNumber:
		return formatNumber(v.Num)
	case KindString:
		return "\"" + v.Str + "\""
	case KindBool:
		if v.Bool {
			return "true"
		}
		return "false"
	case KindCallable:
		return v.Callable.Name + "|" + strconv.Itoa(v.Callable.Arity)
	default:
		return "<invalid value>"
	}
}

func formatNumber(n float64) string {
	return strconv.FormatFloat(n, 'f', -1, 64)
}

// TypeName returns a short human-readable type name, used in runtime
// error messages ("Minus not implemented for <type>").
func TypeName(v Value) string {
	switch v.Kind {
	case KindNil:
		return "nil"
	case KindNumber:
		return "number"
	case KindString:
		return "string"
	case KindBool:
		return "bool"
	case KindCallable:
		return "function"
	default:
		return "unknown"
	}
}
