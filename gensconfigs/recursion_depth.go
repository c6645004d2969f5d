package gensconfigs

import (
	"github.com/reusee/gens/cmds"
	"github.com/reusee/gens/configs"
	"github.com/reusee/gens/vars"
)

// RecursionDepth is how deep the recursion demo descends before raising.
type RecursionDepth int

var _ configs.Configurable = RecursionDepth(0)

func (r RecursionDepth) ConfigExpr() string {
	return "RecursionDepth"
}

var recursionDepthFlag = cmds.Var[int]("-recursion-depth")

func (Module) RecursionDepth(
	loader configs.Loader,
) RecursionDepth {
	return RecursionDepth(vars.FirstNonZero(
		*recursionDepthFlag,
		configs.First[int](loader, "recursion_depth"),
		20,
	))
}
