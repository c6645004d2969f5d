package genvm

type stepKind uint8

const (
	stepInvalid stepKind = iota
	stepYield
	stepJump
	stepDelegate
	stepReturn
)

// Step is the directive a body segment returns: suspend with a value, jump
// to another label within the same resume, delegate to a sub-generator, or
// terminate.
type Step struct {
	value any
	sub   *Generator
	next  Label
	catch Label
	kind  stepKind
}

// Yield suspends the generator with value. The next resume enters the body
// at next.
func Yield(value any, next Label) Step {
	return Step{
		kind:  stepYield,
		value: value,
		next:  next,
	}
}

// Jump re-enters the body at next without suspending.
func Jump(next Label) Step {
	return Step{
		kind: stepJump,
		next: next,
	}
}

// Delegate routes the generator through sub until sub terminates. The body
// then continues at next with sub's terminal value as Recv.
func Delegate(sub *Generator, next Label) Step {
	return Step{
		kind: stepDelegate,
		sub:  sub,
		next: next,
	}
}

// Return terminates the generator with terminal value value.
func Return(value any) Step {
	return Step{
		kind:  stepReturn,
		value: value,
	}
}

// Catch names the label to enter when an error is injected while suspended
// at this step, or when a delegate fails here. Handler labels must not be
// Entry; an empty handler means the error terminates the generator.
func (s Step) Catch(handler Label) Step {
	s.catch = handler
	return s
}
