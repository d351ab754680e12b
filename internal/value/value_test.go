package value

import "testing"

func TestTruthiness(t *testing.T) {
	cases := []struct {
		v    Value
		want bool
	}{
		{Nil(), false},
		{Bool(false), false},
		{Bool(true), true},
		{Number(0), true},
		{String(""), true},
		{Number(1), true},
	}
	for _, c := range cases {
		if got := Truthy(c.v); got != c.want {
			t.Errorf("Truthy(%v) = %v, want %v", Display(c.v), got, c.want)
		}
	}
}

func TestEqualityIsStructuralWithinVariant(t *testing.T) {
	if !Equal(Number(1), Number(1)) {
		t.Error("expected equal numbers to be equal")
	}
	if Equal(Number(1), Number(2)) {
		t.Error("expected different numbers to be unequal")
	}
	if Equal(Number(0), String("0")) {
		t.Error("cross-variant comparisons must be false")
	}
	if !Equal(Nil(), Nil()) {
		t.Error("nil must equal nil")
	}
}

func TestCallableEqualityIsNameAndArity(t *testing.T) {
	a := FromCallable(&Callable{Name: "f", Arity: 1})
	b := FromCallable(&Callable{Name: "f", Arity: 1})
	c := FromCallable(&Callable{Name: "f", Arity: 2})
	if !Equal(a, b) {
		t.Error("expected callables with same name+arity to be equal")
	}
	if Equal(a, c) {
		t.Error("expected callables with different arity to be unequal")
	}
}

func TestDisplayFormats(t *testing.T) {
	cases := []struct {
		v    Value
		want string
	}{
		{Nil(), "nil"},
		{Bool(true), "true"},
		{Bool(false), "false"},
		{Number(90), "90"},
		{Number(1.5), "1.5"},
		{String("hi"), "\"hi\""},
		{FromCallable(&Callable{Name: "add", Arity: 2}), "add|2"},
	}
	for _, c := range cases {
		if got := Display(c.v); got != c.want {
			t.Errorf("Display = %q, want %q", got, c.want)
		}
	}
}
