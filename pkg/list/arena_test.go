package list

import (
	"errors"
	"testing"
)

func TestFromValues(t *testing.T) {
	a := FromValues(10, 20, 30)

	var got []string
	for r := a.Head(); r != Nil; r = a.Next(r) {
		v, ok := a.Value(r)
		if !ok {
			t.Fatalf("Value(%s) not readable", r)
		}
		got = append(got, v)
	}

	want := []string{"10", "20", "30"}
	if len(got) != len(want) {
		t.Fatalf("walked %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("node %d = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestFromValuesEmpty(t *testing.T) {
	a := FromValues[int]()
	if a.Head() != Nil {
		t.Errorf("Head() = %s, want Nil", a.Head())
	}
	if a.Len() != 0 {
		t.Errorf("Len() = %d, want 0", a.Len())
	}
}

func TestArenaFree(t *testing.T) {
	a := NewArena[int]()
	r := a.Alloc(5)

	if !a.Live(r) {
		t.Fatal("freshly allocated ref should be live")
	}
	if err := a.Free(r); err != nil {
		t.Fatalf("Free: %v", err)
	}
	if a.Live(r) {
		t.Error("freed ref should not be live")
	}
	if a.Suspicious(r) {
		t.Error("freed ref was allocated once and should not be suspicious")
	}
	if err := a.Free(r); !errors.Is(err, ErrNotLive) {
		t.Errorf("double Free error = %v, want ErrNotLive", err)
	}
	if _, ok := a.Value(r); ok {
		t.Error("Value of freed ref should not be readable")
	}
}

func TestArenaSetNext(t *testing.T) {
	a := NewArena[string]()
	x := a.Alloc("x")
	y := a.Alloc("y")

	if err := a.SetNext(x, y); err != nil {
		t.Fatalf("SetNext: %v", err)
	}
	if a.Next(x) != y {
		t.Errorf("Next(x) = %s, want %s", a.Next(x), y)
	}

	// Targets are stored verbatim, even garbage.
	if err := a.SetNext(y, Ref(99)); err != nil {
		t.Fatalf("SetNext to garbage: %v", err)
	}
	if a.Next(y) != Ref(99) {
		t.Errorf("Next(y) = %s, want 0x63", a.Next(y))
	}

	if err := a.SetNext(Ref(42), x); !errors.Is(err, ErrNotLive) {
		t.Errorf("SetNext from unknown source error = %v, want ErrNotLive", err)
	}
}

func TestArenaSuspicious(t *testing.T) {
	a := FromValues(1, 2)

	tests := []struct {
		ref  Ref
		want bool
	}{
		{Nil, false},
		{1, false},
		{2, false},
		{3, true},
		{0x1000, true},
	}
	for _, tt := range tests {
		if got := a.Suspicious(tt.ref); got != tt.want {
			t.Errorf("Suspicious(%s) = %v, want %v", tt.ref, got, tt.want)
		}
	}
}

func TestArenaGarbageRefs(t *testing.T) {
	a := FromValues(1, 2)

	for _, r := range []Ref{0xdeadbeefdeadbeef, ^Ref(0), 1 << 63} {
		if a.Live(r) {
			t.Errorf("Live(%s) = true", r)
		}
		if !a.Suspicious(r) {
			t.Errorf("Suspicious(%s) = false", r)
		}
		if got := a.Next(r); got != Nil {
			t.Errorf("Next(%s) = %s, want Nil", r, got)
		}
		if _, ok := a.Value(r); ok {
			t.Errorf("Value(%s) should not be readable", r)
		}
		if _, ok := a.Get(r); ok {
			t.Errorf("Get(%s) should fail", r)
		}
		if err := a.Free(r); !errors.Is(err, ErrNotLive) {
			t.Errorf("Free(%s) = %v, want ErrNotLive", r, err)
		}
		if err := a.SetNext(r, 1); !errors.Is(err, ErrNotLive) {
			t.Errorf("SetNext(%s) = %v, want ErrNotLive", r, err)
		}
	}
}

func TestArenaRefs(t *testing.T) {
	a := FromValues("a", "b", "c")
	if err := a.Free(2); err != nil {
		t.Fatal(err)
	}

	refs := a.Refs()
	if len(refs) != 2 || refs[0] != 1 || refs[1] != 3 {
		t.Errorf("Refs() = %v, want [0x1 0x3]", refs)
	}
}

func TestStep(t *testing.T) {
	a := FromValues(1, 2)
	if err := a.Free(2); err != nil {
		t.Fatal(err)
	}

	if got := Step(a, 1); got != 2 {
		t.Errorf("Step(1) = %s, want 0x2", got)
	}
	if got := Step(a, 2); got != Nil {
		t.Errorf("Step(freed) = %s, want Nil", got)
	}
	if got := Step(a, Nil); got != Nil {
		t.Errorf("Step(Nil) = %s, want Nil", got)
	}
}

func TestRefString(t *testing.T) {
	if got := Ref(255).String(); got != "0xff" {
		t.Errorf("Ref(255).String() = %q, want %q", got, "0xff")
	}
}
