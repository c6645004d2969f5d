package results

import "fmt"

// Result is a tagged union: Ok carrying a value, or Err carrying a domain
// message. The zero value is Err with an empty message.
type Result[A any] struct {
	value   A
	message string
	ok      bool
}

func Ok[A any](value A) Result[A] {
	return Result[A]{
		value: value,
		ok:    true,
	}
}

func Err[A any](message string) Result[A] {
	return Result[A]{
		message: message,
	}
}

func (r Result[A]) IsOK() bool {
	return r.ok
}

func (r Result[A]) IsErr() bool {
	return !r.ok
}

func (r Result[A]) Value() (A, bool) {
	return r.value, r.ok
}

func (r Result[A]) Message() (string, bool) {
	return r.message, !r.ok
}

func (r Result[A]) String() string {
	if r.ok {
		return fmt.Sprintf("Ok(%v)", r.value)
	}
	return fmt.Sprintf("Err(%s)", r.message)
}

func Match[A, B any](r Result[A], onOK func(A) B, onErr func(string) B) B {
	if r.ok {
		return onOK(r.value)
	}
	return onErr(r.message)
}

func Map[A, B any](r Result[A], fn func(A) B) Result[B] {
	if !r.ok {
		return Err[B](r.message)
	}
	return Ok(fn(r.value))
}

func FlatMap[A, B any](r Result[A], fn func(A) Result[B]) Result[B] {
	if !r.ok {
		return Err[B](r.message)
	}
	return fn(r.value)
}
