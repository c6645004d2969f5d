package demos

import (
	"slices"
	"testing"

	"github.com/reusee/dscope"
	"github.com/reusee/gens/configs"
	"github.com/reusee/gens/modes"
)

func TestRunCalc(t *testing.T) {
	dscope.New(
		new(Module),
		modes.ForTest(t),
	).Fork(
		dscope.Provide(configs.NewLoader(nil, "")),
	).Call(func(
		runCalc RunCalc,
	) {
		lines, err := runCalc(t.Context())
		if err != nil {
			t.Fatal(err)
		}
		want := []string{
			"add 2 3 = 5",
			"subtract 10 4 = 6",
			"multiply 6 7 = 42",
			"divide 7 2 = 3",
			"divide -7 2 = -4",
			"divide 1 0: Division by zero",
			"fibonacci 10 = 55",
			"factorial 5 = 120",
			"factorial 25: Factorial too large (would overflow)",
			"is_prime 97 = true",
			"gcd 48 18 = 6",
		}
		if !slices.Equal(lines, want) {
			t.Fatalf("got %v", lines)
		}
	})
}
