package gensconfigs

import (
	"github.com/reusee/gens/cmds"
	"github.com/reusee/gens/configs"
)

// Trace enables tapping generator snapshots while demos run.
type Trace bool

var _ configs.Configurable = Trace(false)

func (t Trace) ConfigExpr() string {
	return "Trace"
}

var traceFlag = cmds.Switch("-trace")

func (Module) Trace(
	loader configs.Loader,
) Trace {
	if *traceFlag {
		return true
	}
	return Trace(configs.First[bool](loader, "trace"))
}
