package resources

import "fmt"

// Scoped is a resource with paired acquisition and release. Exit receives
// the error that ends the scope (nil on a clean exit) and reports whether
// that error should be suppressed.
type Scoped[H any] interface {
	Enter() (H, error)
	Exit(cause error) bool
}

// With runs use between Enter and Exit. Exit runs on every path out of use,
// panics included. When Exit suppresses the cause, With returns nil; an
// unsuppressed panic resumes panicking after Exit.
func With[H any](s Scoped[H], use func(H) error) error {
	h, err := s.Enter()
	if err != nil {
		return err
	}
	var panicked any
	var cause error
	func() {
		defer func() {
			if r := recover(); r != nil {
				panicked = r
				cause = fmt.Errorf("panic: %v", r)
			}
		}()
		cause = use(h)
	}()
	if s.Exit(cause) {
		return nil
	}
	if panicked != nil {
		panic(panicked)
	}
	return cause
}
