package genvm

import (
	"fmt"
	"iter"
)

// FromSlice is a generator over fixed values, with a nil terminal value.
func FromSlice(vals ...any) *Generator {
	return New("slice", func(f *Frame) (Step, error) {
		i := f.Int("i")
		if i >= len(vals) {
			return Return(nil), nil
		}
		f.Def("i", i+1)
		return Yield(vals[i], Entry), nil
	})
}

// Range is a generator over 0..n-1.
func Range(n int) *Generator {
	return New("range", func(f *Frame) (Step, error) {
		i := f.Int("i")
		if i >= n {
			return Return(nil), nil
		}
		f.Def("i", i+1)
		return Yield(i, Entry), nil
	})
}

// FromSeq adapts a standard iterator. Throw and Close stop the underlying
// pull iterator before propagating.
func FromSeq(name string, seq iter.Seq[any]) *Generator {
	return New(name, func(f *Frame) (Step, error) {
		switch f.Label() {

		case Entry:
			next, stop := iter.Pull(seq)
			f.Def("next", next)
			f.Def("stop", stop)
			return Jump("pull"), nil

		case "pull":
			v, _ := f.Get("next")
			next := v.(func() (any, bool))
			val, ok := next()
			if !ok {
				return Return(nil), nil
			}
			return Yield(val, "pull").Catch("stop"), nil

		case "stop":
			v, _ := f.Get("stop")
			v.(func())()
			return Step{}, f.Thrown()

		}
		return Step{}, fmt.Errorf("%s: unknown label %q", name, f.Label())
	})
}

// All drives the generator to termination as a range-over-func sequence.
// Each yielded value comes with a nil error; a failure ends the sequence
// with a nil value and the error. The terminal value of a clean run is not
// part of the sequence.
func (g *Generator) All() iter.Seq2[any, error] {
	return func(yield func(any, error) bool) {
		for {
			out, done, err := g.Resume(nil)
			if err != nil {
				yield(nil, err)
				return
			}
			if done {
				return
			}
			if !yield(out, nil) {
				return
			}
		}
	}
}

// Drain resumes until terminal, collecting all yielded values and the
// terminal value.
func (g *Generator) Drain() (outs []any, terminal any, err error) {
	for {
		out, done, derr := g.Resume(nil)
		if derr != nil {
			return outs, nil, derr
		}
		if done {
			return outs, out, nil
		}
		outs = append(outs, out)
	}
}
