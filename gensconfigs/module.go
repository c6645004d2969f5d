package gensconfigs

import (
	"github.com/reusee/dscope"
	"github.com/reusee/gens/logs"
)

type Module struct {
	dscope.Module
	Logs logs.Module
}
