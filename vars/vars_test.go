package vars

import "testing"

func TestDerefOrZero(t *testing.T) {
	if v := DerefOrZero[int](nil); v != 0 {
		t.Fatalf("got %v", v)
	}
	n := 42
	if v := DerefOrZero(&n); v != 42 {
		t.Fatalf("got %v", v)
	}
}

func TestFirstNonZero(t *testing.T) {
	if v := FirstNonZero(0, 0, 3, 4); v != 3 {
		t.Fatalf("got %v", v)
	}
	if v := FirstNonZero("", "a"); v != "a" {
		t.Fatalf("got %v", v)
	}
	if v := FirstNonZero[int](); v != 0 {
		t.Fatalf("got %v", v)
	}
}

func TestFirstNonEmpty(t *testing.T) {
	if v := FirstNonEmpty(nil, []int{}, []int{1, 2}); len(v) != 2 {
		t.Fatalf("got %v", v)
	}
	if v := FirstNonEmpty[int](); v != nil {
		t.Fatalf("got %v", v)
	}
}

func TestStrToBool(t *testing.T) {
	for _, s := range []string{"true", "T", "yes", "Y"} {
		if !StrToBool(s) {
			t.Fatalf("%q should be true", s)
		}
	}
	for _, s := range []string{"false", "F", "no", "N", "", "whatever"} {
		if StrToBool(s) {
			t.Fatalf("%q should be false", s)
		}
	}
}
