package genvm

import "errors"

var (
	// ErrExhausted reports any operation on a terminal generator. A failed
	// generator reports it too: the original failure is delivered once.
	ErrExhausted = errors.New("generator exhausted")

	// ErrAlreadyRunning reports a reentrant operation from inside the
	// generator's own call chain. The generator state is unchanged.
	ErrAlreadyRunning = errors.New("generator already running")

	// ErrIgnoredClose reports a generator that yielded again after Close.
	ErrIgnoredClose = errors.New("generator ignored close")

	// ErrCanceled is the cancellation injected by Close. A body may observe
	// it at a catch label to run cleanup; rethrowing it terminates cleanly.
	ErrCanceled = errors.New("generator canceled")

	// ErrNotStarted reports a non-nil send into a generator that has not
	// reached its first yield.
	ErrNotStarted = errors.New("cannot send a value into an unstarted generator")
)
