package main

import (
	"context"
	"fmt"
	"os"

	"github.com/reusee/dscope"
	"github.com/reusee/gens/cmds"
	"github.com/reusee/gens/demos"
	"github.com/reusee/gens/drives"
	"github.com/reusee/gens/gensconfigs"
	"github.com/reusee/gens/logs"
	"github.com/reusee/gens/modes"
)

var (
	demoFlag       = cmds.Var[string]("-demo")
	driveFlag      = cmds.Switch("-drive")
	showConfigFlag = cmds.Switch("-show-config")
)

func main() {
	cmds.Execute(os.Args[1:])

	scope := dscope.New(
		new(Module),
		modes.ForProduction(),
	)

	scope.Call(run)
}

func run(
	logger logs.Logger,
	newSpan logs.NewSpan,
	suite demos.Suite,
	allDemos demos.Demos,
	drive drives.Drive,
	report gensconfigs.ConfigReport,
) {
	ctx := context.Background()
	ctx, _ = newSpan(ctx, "")

	if *showConfigFlag {
		fmt.Print(string(report))
		return
	}

	if *driveFlag {
		gen := demos.Bridge(func(v any) {
			fmt.Println("got", v)
		})
		ce(drive(ctx, gen))
		return
	}

	if name := *demoFlag; name != "" {
		for _, demo := range allDemos {
			if demo.Name != name {
				continue
			}
			lines, err := demo.Run(ctx)
			for _, line := range lines {
				fmt.Println(line)
			}
			ce(err)
			return
		}
		ce(fmt.Errorf("unknown demo: %s", name))
	}

	logger.InfoContext(ctx, "running all demos")
	ce(suite(ctx))
}
