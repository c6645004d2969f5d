package resources

import (
	"errors"
	"strings"
	"testing"
)

func TestWithCleanExit(t *testing.T) {
	var lines []string
	h := New("db", func(s string) {
		lines = append(lines, s)
	})
	err := With(h, func(h *Handle) error {
		lines = append(lines, "using "+h.Name)
		return nil
	})
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"enter db", "using db", "exit db"}
	if len(lines) != len(want) {
		t.Fatalf("got %v", lines)
	}
	for i := range want {
		if lines[i] != want[i] {
			t.Fatalf("got %v", lines)
		}
	}
}

func TestWithErrorExit(t *testing.T) {
	var lines []string
	h := New("db", func(s string) {
		lines = append(lines, s)
	})
	boom := errors.New("boom")
	err := With(h, func(*Handle) error {
		return boom
	})
	if !errors.Is(err, boom) {
		t.Fatalf("got %v", err)
	}
	if len(lines) != 2 || lines[1] != "exit db" {
		t.Fatalf("exit should still run, got %v", lines)
	}
}

type suppressing struct {
	exited bool
}

func (s *suppressing) Enter() (int, error) {
	return 1, nil
}

func (s *suppressing) Exit(cause error) bool {
	s.exited = true
	return cause != nil
}

func TestWithSuppression(t *testing.T) {
	s := new(suppressing)
	err := With[int](s, func(int) error {
		return errors.New("swallowed")
	})
	if err != nil {
		t.Fatalf("got %v", err)
	}
	if !s.exited {
		t.Fatal("exit should run")
	}
}

func TestWithSuppressedPanic(t *testing.T) {
	s := new(suppressing)
	err := With[int](s, func(int) error {
		panic("ouch")
	})
	if err != nil {
		t.Fatalf("got %v", err)
	}
	if !s.exited {
		t.Fatal("exit should run")
	}
}

func TestWithUnsuppressedPanic(t *testing.T) {
	var lines []string
	h := New("f", func(s string) {
		lines = append(lines, s)
	})
	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("should panic")
		}
		if r != "ouch" {
			t.Fatalf("got %v", r)
		}
		if len(lines) != 2 || lines[1] != "exit f" {
			t.Fatalf("exit should run before repanic, got %v", lines)
		}
	}()
	With(h, func(*Handle) error {
		panic("ouch")
	})
}

type failingEnter struct{}

func (failingEnter) Enter() (int, error) {
	return 0, errors.New("no handle")
}

func (failingEnter) Exit(error) bool {
	return false
}

func TestWithEnterFailure(t *testing.T) {
	used := false
	err := With[int](failingEnter{}, func(int) error {
		used = true
		return nil
	})
	if err == nil || !strings.Contains(err.Error(), "no handle") {
		t.Fatalf("got %v", err)
	}
	if used {
		t.Fatal("use should not run when enter fails")
	}
}
