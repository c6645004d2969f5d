package demos

import (
	"context"
	"fmt"

	"github.com/reusee/gens/calcs"
	"github.com/reusee/gens/genvm"
	"github.com/reusee/gens/logs"
	"github.com/reusee/gens/results"
)

// Calc yields one line per computation. The lines come from two lazy
// per-group sequences the outer generator delegates to in turn.
func Calc(calc calcs.Calculator, adv calcs.AdvancedMath) *genvm.Generator {

	basics := genvm.FromSeq("basics", func(yield func(any) bool) {
		if !yield(fmt.Sprintf("add 2 3 = %d", calc.Add(2, 3))) {
			return
		}
		if !yield(fmt.Sprintf("subtract 10 4 = %d", calc.Subtract(10, 4))) {
			return
		}
		if !yield(fmt.Sprintf("multiply 6 7 = %d", calc.Multiply(6, 7))) {
			return
		}
		for _, div := range [][2]int{{7, 2}, {-7, 2}, {1, 0}} {
			line := results.Match(calc.Divide(div[0], div[1]),
				func(q int) string {
					return fmt.Sprintf("divide %d %d = %d", div[0], div[1], q)
				},
				func(msg string) string {
					return fmt.Sprintf("divide %d %d: %s", div[0], div[1], msg)
				},
			)
			if !yield(line) {
				return
			}
		}
		if !yield(fmt.Sprintf("fibonacci 10 = %d", calc.Fibonacci(10))) {
			return
		}
	})

	advanced := genvm.FromSeq("advanced", func(yield func(any) bool) {
		for _, n := range []int{5, 25} {
			line := results.Match(adv.Factorial(n),
				func(v int) string {
					return fmt.Sprintf("factorial %d = %d", n, v)
				},
				func(msg string) string {
					return fmt.Sprintf("factorial %d: %s", n, msg)
				},
			)
			if !yield(line) {
				return
			}
		}
		if !yield(fmt.Sprintf("is_prime 97 = %v", adv.IsPrime(97))) {
			return
		}
		if !yield(fmt.Sprintf("gcd 48 18 = %d", adv.GCD(48, 18))) {
			return
		}
	})

	return genvm.New("calc", func(f *genvm.Frame) (genvm.Step, error) {
		switch f.Label() {
		case genvm.Entry:
			return genvm.Delegate(basics, "advanced"), nil
		case "advanced":
			return genvm.Delegate(advanced, "done"), nil
		case "done":
			return genvm.Return(nil), nil
		}
		return genvm.Step{}, fmt.Errorf("unknown label %q", f.Label())
	})
}

type RunCalc func(ctx context.Context) ([]string, error)

func (Module) RunCalc(
	logger logs.Logger,
) RunCalc {
	return func(ctx context.Context) ([]string, error) {
		ctx = logs.WithGenerator(ctx, "calc")

		gen := Calc(calcs.New(), calcs.NewAdvanced())
		var lines []string
		for out, err := range gen.All() {
			if err != nil {
				return lines, err
			}
			lines = append(lines, out.(string))
		}

		logger.InfoContext(ctx, "calc done",
			"ops", len(lines),
		)
		return lines, nil
	}
}
