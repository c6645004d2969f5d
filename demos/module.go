package demos

import (
	"github.com/reusee/dscope"
	"github.com/reusee/gens/gensconfigs"
	"github.com/reusee/gens/logs"
)

type Module struct {
	dscope.Module
	Logs    logs.Module
	Configs gensconfigs.Module
}
