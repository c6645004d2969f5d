package genvm

// Frame is the saved continuation of a generator between resumes: the label
// the body re-enters at, plus named locals that survive suspension.
type Frame struct {
	label  Label
	locals map[string]any
	in     slot
}

func (f *Frame) Label() Label {
	return f.label
}

func (f *Frame) Def(name string, value any) {
	if f.locals == nil {
		f.locals = make(map[string]any)
	}
	f.locals[name] = value
}

func (f *Frame) Get(name string) (any, bool) {
	value, ok := f.locals[name]
	return value, ok
}

func (f *Frame) Int(name string) int {
	value, _ := f.locals[name].(int)
	return value
}

// Recv returns the value injected by the resume that entered this step, or
// a finished delegate's terminal value. Nil when nothing was injected.
func (f *Frame) Recv() any {
	return f.in.value
}

// Thrown returns the error injected by Throw or Close when the body is
// entered at a catch label. Nil outside catch steps.
func (f *Frame) Thrown() error {
	return f.in.err
}
