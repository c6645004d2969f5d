package genvm

import (
	"errors"
	"fmt"
)

// Resume advances the generator, delivering in as the value of the yield
// point it is suspended at. The first resume enters the body at Entry and
// must not carry a value. Returns the next yielded value with done false,
// or the terminal value with done true, or an error.
func (g *Generator) Resume(in any) (out any, done bool, err error) {
	return g.perform(in, nil, false)
}

// Send is Resume under its conventional name.
func (g *Generator) Send(in any) (out any, done bool, err error) {
	return g.perform(in, nil, false)
}

// Throw injects cause at the suspension point. A catch label routes it to
// the handler with Thrown set; without one the generator fails with cause.
// Throwing into a generator that never ran fails it without entering the
// body. Throw(nil) behaves as Resume(nil).
func (g *Generator) Throw(cause error) (out any, done bool, err error) {
	return g.perform(nil, cause, false)
}

// Close injects ErrCanceled and expects the generator to terminate. With no
// handler the generator completes silently. A handler may run cleanup and
// return, or rethrow ErrCanceled; both close cleanly. A handler that yields
// again fails the generator with ErrIgnoredClose. Closing a terminal
// generator is a no-op.
func (g *Generator) Close() error {
	switch g.phase {
	case Completed, Failed:
		return nil
	case Running:
		return ErrAlreadyRunning
	}
	if g.delegate != nil {
		return g.closeDelegated()
	}
	if g.phase == Created {
		g.phase = Completed
		return nil
	}
	_, _, err := g.perform(nil, ErrCanceled, true)
	return err
}

// Close propagates to the delegate first. The delegate's outcome is then
// delivered at the delegation point: a clean close continues closing the
// outer generator, a failure is thrown into it.
func (g *Generator) closeDelegated() error {
	sub := g.delegate
	g.delegate = nil
	if cerr := sub.Close(); cerr != nil {
		_, _, err := g.perform(nil, cerr, true)
		return err
	}
	_, _, err := g.perform(nil, ErrCanceled, true)
	return err
}

func (g *Generator) perform(in any, cause error, closing bool) (any, bool, error) {
	switch g.phase {
	case Completed, Failed:
		return nil, false, ErrExhausted
	case Running:
		return nil, false, ErrAlreadyRunning
	}

	if g.delegate != nil {
		return g.advanceDelegate(in, cause, closing)
	}

	if g.phase == Created {
		if cause != nil {
			if closing {
				g.phase = Completed
				return nil, true, nil
			}
			g.phase = Failed
			return nil, false, cause
		}
		if in != nil {
			return nil, false, ErrNotStarted
		}
	}

	if cause != nil {
		return g.deliver(cause, closing)
	}

	g.phase = Running
	g.catch = ""
	g.frame.in.store(in, nil)
	return g.drive(closing)
}

// deliver routes an injected error to the catch label of the current
// suspension point, or terminates the generator when there is none.
func (g *Generator) deliver(cause error, closing bool) (any, bool, error) {
	g.delegate = nil
	if g.catch == "" {
		if closing && errors.Is(cause, ErrCanceled) {
			g.phase = Completed
			return nil, true, nil
		}
		g.phase = Failed
		return nil, false, cause
	}
	g.phase = Running
	g.frame.label = g.catch
	g.catch = ""
	g.frame.in.store(nil, cause)
	return g.drive(closing)
}

// drive steps the body until it suspends or terminates. In closing mode any
// further yield is a refusal to die and a rethrown ErrCanceled is a clean
// exit.
func (g *Generator) drive(closing bool) (any, bool, error) {
	for {
		step, err := g.body(&g.frame)
		g.frame.in.clear()

		if err != nil {
			if closing && errors.Is(err, ErrCanceled) {
				g.phase = Completed
				return nil, true, nil
			}
			g.phase = Failed
			return nil, false, err
		}

		switch step.kind {

		case stepYield:
			if closing {
				g.phase = Failed
				return nil, false, ErrIgnoredClose
			}
			g.frame.label = step.next
			g.catch = step.catch
			g.phase = Suspended
			return step.value, false, nil

		case stepJump:
			g.frame.label = step.next

		case stepReturn:
			g.phase = Completed
			return step.value, true, nil

		case stepDelegate:
			if step.sub == nil || step.sub == g {
				g.phase = Failed
				return nil, false, fmt.Errorf("%s: invalid delegate", g.name)
			}
			g.delegate = step.sub
			g.next = step.next
			g.catch = step.catch
			g.phase = Suspended
			return g.advanceDelegate(nil, nil, closing)

		default:
			g.phase = Failed
			return nil, false, fmt.Errorf("%s: invalid step at label %q", g.name, g.frame.label)
		}
	}
}

// advanceDelegate forwards a resume datum to the innermost delegate. A
// delegate yield passes through untouched; a terminal delegate is spliced
// back into the body.
func (g *Generator) advanceDelegate(in any, cause error, closing bool) (any, bool, error) {
	if g.routing {
		return nil, false, ErrAlreadyRunning
	}

	sub := g.delegate
	switch sub.phase {
	case Running:
		return nil, false, ErrAlreadyRunning
	case Completed, Failed:
		// exhausted elsewhere: same as completing now with no value
		return g.splice(nil, closing)
	}

	// guard the forwarding window only: splice and deliver re-enter the
	// body, which may start a new delegation
	g.routing = true
	out, done, err := sub.perform(in, cause, false)
	g.routing = false

	if err != nil {
		if err == ErrAlreadyRunning {
			return nil, false, err
		}
		return g.deliver(err, closing)
	}
	if !done {
		if closing {
			g.phase = Failed
			return nil, false, ErrIgnoredClose
		}
		return out, false, nil
	}
	return g.splice(out, closing)
}

// splice consumes the delegate's terminal value: the body continues at the
// delegation point's next label with the value as Recv, within the same
// resume.
func (g *Generator) splice(terminal any, closing bool) (any, bool, error) {
	g.delegate = nil
	g.phase = Running
	g.frame.label = g.next
	g.catch = ""
	g.frame.in.store(terminal, nil)
	return g.drive(closing)
}
