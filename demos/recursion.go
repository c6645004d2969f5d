package demos

import (
	"context"
	"errors"
	"fmt"

	"github.com/reusee/gens/gensconfigs"
	"github.com/reusee/gens/genvm"
	"github.com/reusee/gens/logs"
)

var ErrBottom = errors.New("boom at bottom")

// Countdown descends by delegation: each level delegates to the next one
// down and would add one to its terminal on the way back. Level zero raises
// instead, so every level catches the failure at its delegation point and
// wraps it with its own depth. The wrapping is the traceback.
func Countdown(n int) *genvm.Generator {
	return genvm.New(fmt.Sprintf("countdown-%d", n), func(f *genvm.Frame) (genvm.Step, error) {
		switch f.Label() {

		case genvm.Entry:
			if n == 0 {
				return genvm.Step{}, ErrBottom
			}
			return genvm.Delegate(Countdown(n-1), "up").Catch("wrap"), nil

		case "up":
			return genvm.Return(f.Recv().(int) + 1), nil

		case "wrap":
			return genvm.Step{}, fmt.Errorf("depth %d: %w", n, f.Thrown())

		}
		return genvm.Step{}, fmt.Errorf("unknown label %q", f.Label())
	})
}

type RunRecursion func(ctx context.Context) ([]string, error)

func (Module) RunRecursion(
	logger logs.Logger,
	depth gensconfigs.RecursionDepth,
) RunRecursion {
	return func(ctx context.Context) ([]string, error) {
		ctx = logs.WithGenerator(ctx, "countdown")

		gen := Countdown(int(depth))
		_, _, err := gen.Resume(nil)
		if err == nil {
			return nil, fmt.Errorf("countdown should raise at the bottom")
		}

		lines := []string{
			"caught: " + err.Error(),
		}
		logger.InfoContext(ctx, "recursion raised",
			"depth", int(depth),
			"error", err,
		)
		// the failure is part of the demo: report it, then hand it up
		return lines, err
	}
}
