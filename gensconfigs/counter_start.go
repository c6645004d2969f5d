package gensconfigs

import (
	"github.com/reusee/gens/cmds"
	"github.com/reusee/gens/configs"
	"github.com/reusee/gens/vars"
)

type CounterStart int

var _ configs.Configurable = CounterStart(0)

func (c CounterStart) ConfigExpr() string {
	return "CounterStart"
}

var counterStartFlag = cmds.Var[int]("-counter-start")

func (Module) CounterStart(
	loader configs.Loader,
) CounterStart {
	return CounterStart(vars.FirstNonZero(
		*counterStartFlag,
		configs.First[int](loader, "counter_start"),
		10,
	))
}
