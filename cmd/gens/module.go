package main

import (
	"github.com/reusee/dscope"
	"github.com/reusee/gens/demos"
	"github.com/reusee/gens/drives"
)

type Module struct {
	dscope.Module
	Demos  demos.Module
	Drives drives.Module
}
