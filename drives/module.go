package drives

import (
	"github.com/reusee/dscope"
	"github.com/reusee/gens/debugs"
	"github.com/reusee/gens/logs"
)

type Module struct {
	dscope.Module
	Logs   logs.Module
	Debugs debugs.Module
}
