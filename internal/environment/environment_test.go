package environment

import (
	"testing"

	"github.com/boltlang/bolt/internal/value"
)

func TestDefineThenGet(t *testing.T) {
	e := New(nil)
	e.Define("x", value.Number(1))
	v, ok := e.Get("x")
	if !ok || v.Num != 1 {
		t.Fatalf("got %+v, %v", v, ok)
	}
}

func TestGetWalksParentChain(t *testing.T) {
	parent := New(nil)
	parent.Define("x", value.Number(1))
	child := New(parent)
	v, ok := child.Get("x")
	if !ok || v.Num != 1 {
		t.Fatalf("expected to find x in parent, got %+v, %v", v, ok)
	}
}

func TestDefineShadowsInChildWithoutMutatingParent(t *testing.T) {
	parent := New(nil)
	parent.Define("x", value.Number(1))
	child := New(parent)
	child.Define("x", value.Number(2))

	got, _ := child.Get("x")
	if got.Num != 2 {
		t.Fatalf("expected child's own binding, got %v", got.Num)
	}
	got, _ = parent.Get("x")
	if got.Num != 1 {
		t.Fatalf("expected parent's binding untouched, got %v", got.Num)
	}
}

func TestAssignWritesNearestBindingNotGlobal(t *testing.T) {
	parent := New(nil)
	parent.Define("x", value.Number(1))
	child := New(parent)
	child.Define("x", value.Number(2))

	if !child.Assign("x", value.Number(3)) {
		t.Fatal("expected assign to succeed")
	}
	got, _ := child.Get("x")
	if got.Num != 3 {
		t.Fatalf("expected child's binding updated, got %v", got.Num)
	}
	got, _ = parent.Get("x")
	if got.Num != 1 {
		t.Fatalf("expected parent's binding untouched by child assign, got %v", got.Num)
	}
}

func TestAssignWalksUpToDefiningFrame(t *testing.T) {
	parent := New(nil)
	parent.Define("x", value.Number(1))
	child := New(parent)

	if !child.Assign("x", value.Number(9)) {
		t.Fatal("expected assign to find x in the parent frame")
	}
	got, _ := parent.Get("x")
	if got.Num != 9 {
		t.Fatalf("expected parent's binding updated via child assign, got %v", got.Num)
	}
}

func TestAssignFailsForUndefinedAndCreatesNoBinding(t *testing.T) {
	e := New(nil)
	if e.Assign("missing", value.Number(1)) {
		t.Fatal("expected assign to fail for an undefined name")
	}
	if _, ok := e.Get("missing"); ok {
		t.Fatal("assign must never create a new binding")
	}
}

func TestGetMissingReportsNotFound(t *testing.T) {
	e := New(nil)
	if _, ok := e.Get("nope"); ok {
		t.Fatal("expected not-found for an undefined variable")
	}
}

func TestDefineAlwaysOverwrites(t *testing.T) {
	e := New(nil)
	e.Define("x", value.Number(1))
	e.Define("x", value.Number(2))
	v, _ := e.Get("x")
	if v.Num != 2 {
		t.Fatalf("expected redefinition to overwrite, got %v", v.Num)
	}
}
