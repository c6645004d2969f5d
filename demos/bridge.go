package demos

import (
	"context"
	"fmt"

	"github.com/reusee/gens/gensconfigs"
	"github.com/reusee/gens/genvm"
	"github.com/reusee/gens/logs"
)

// Bridge is the classic bridge script as a generator: one plain yield, a
// send loop recording what the caller passes back in, then delegation to a
// trailing sequence whose terminal is consumed silently.
func Bridge(record func(any)) *genvm.Generator {
	return genvm.New("bridge", func(f *genvm.Frame) (genvm.Step, error) {
		switch f.Label() {

		case genvm.Entry:
			return genvm.Yield("start", "loop"), nil

		case "loop":
			i := f.Int("i")
			if i >= 3 {
				return genvm.Delegate(genvm.FromSlice("a", "b"), "done"), nil
			}
			f.Def("i", i+1)
			return genvm.Yield(i, "recv"), nil

		case "recv":
			if v := f.Recv(); v != nil {
				record(v)
			}
			return genvm.Jump("loop"), nil

		case "done":
			return genvm.Return(nil), nil

		}
		return genvm.Step{}, fmt.Errorf("unknown label %q", f.Label())
	})
}

type RunBridge func(ctx context.Context) ([]string, error)

func (Module) RunBridge(
	logger logs.Logger,
	trace gensconfigs.Trace,
) RunBridge {
	return func(ctx context.Context) (lines []string, err error) {
		ctx = logs.WithGenerator(ctx, "bridge")

		gen := Bridge(func(v any) {
			lines = append(lines, fmt.Sprintf("got %v", v))
		})

		out, _, err := gen.Resume(nil)
		if err != nil {
			return lines, err
		}
		lines = append(lines, fmt.Sprintf("%v", out))

		out, _, err = gen.Resume(nil)
		if err != nil {
			return lines, err
		}
		lines = append(lines, fmt.Sprintf("%v", out))

		out, _, err = gen.Send("hello")
		if err != nil {
			return lines, err
		}
		lines = append(lines, fmt.Sprintf("%v", out))

		if trace {
			logSnapshot(ctx, logger, gen)
		}

		rest, _, err := gen.Drain()
		if err != nil {
			return lines, err
		}
		lines = append(lines, fmt.Sprintf("%v", rest))

		logger.InfoContext(ctx, "bridge done",
			"phase", gen.Phase().String(),
		)
		return lines, nil
	}
}
