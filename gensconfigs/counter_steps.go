package gensconfigs

import (
	"github.com/reusee/gens/cmds"
	"github.com/reusee/gens/configs"
	"github.com/reusee/gens/vars"
)

type CounterSteps []int

var _ configs.Configurable = CounterSteps(nil)

func (c CounterSteps) ConfigExpr() string {
	return "CounterSteps"
}

var counterStepFlag = cmds.Collect[int]("-counter-step")

func (Module) CounterSteps(
	loader configs.Loader,
) CounterSteps {
	return CounterSteps(vars.FirstNonEmpty(
		*counterStepFlag,
		configs.First[[]int](loader, "counter_steps"),
		[]int{1, 5},
	))
}
