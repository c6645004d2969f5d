package gensconfigs

import (
	"fmt"
	"strings"

	"github.com/reusee/gens/configs"
)

type ConfigReport string

func (Module) ConfigReport(
	depth RecursionDepth,
	start CounterStart,
	steps CounterSteps,
	trace Trace,
) ConfigReport {
	var b strings.Builder
	for _, c := range []configs.Configurable{
		depth,
		start,
		steps,
		trace,
	} {
		fmt.Fprintf(&b, "%s = %v\n", c.ConfigExpr(), c)
	}
	return ConfigReport(b.String())
}
