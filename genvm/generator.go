// Package genvm implements cooperative generators as explicit state
// machines. A body suspends at yield points, resumes with injected values
// or injected errors, and delegates transparently to nested generators.
// Suspension and resumption are ordinary function calls; there is no
// scheduler and no preemption.
package genvm

// Label names a resumption point in a generator body. A fresh body is
// entered at Entry.
type Label string

const Entry Label = ""

// Body is one step of a generator: called with the frame positioned at a
// label, it returns the next directive. A non-nil error is an uncaught
// failure: the generator moves to Failed and the error propagates verbatim
// to the caller.
type Body func(f *Frame) (Step, error)

type Generator struct {
	name  string
	body  Body
	frame Frame
	phase Phase

	// handler label of the active suspension point
	catch Label

	// active delegation: where to continue when delegate terminates
	delegate *Generator
	next     Label
	routing  bool
}

func New(name string, body Body) *Generator {
	return &Generator{
		name: name,
		body: body,
	}
}

func (g *Generator) Name() string {
	return g.name
}

func (g *Generator) Phase() Phase {
	return g.phase
}
