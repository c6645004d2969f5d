package demos

import (
	"context"
	"fmt"
	"sync"

	"github.com/reusee/gens/cmds"
	"github.com/reusee/gens/logs"
	"github.com/reusee/gens/procs"
	"github.com/reusee/gens/syncs"
)

type Demo struct {
	Name string
	Run  func(ctx context.Context) ([]string, error)
}

type Demos []Demo

func (Module) Demos(
	runBridge RunBridge,
	runCounter RunCounter,
	runResource RunResource,
	runRecursion RunRecursion,
	runCalc RunCalc,
) Demos {
	return Demos{
		{"bridge", runBridge},
		{"counter", runCounter},
		{"resource", runResource},
		{"recursion", runRecursion},
		{"calc", runCalc},
	}
}

type demoProc struct {
	demo    Demo
	logger  logs.Logger
	newSpan logs.NewSpan
	emit    func([]string)
}

func (d demoProc) Run(ctx context.Context) (procs.Proc[context.Context], error) {
	ctx, _ = d.newSpan(ctx, "")
	d.logger.InfoContext(ctx, "demo "+d.demo.Name)
	lines, err := d.demo.Run(ctx)
	d.emit(append([]string{"== " + d.demo.Name}, lines...))
	if err != nil {
		// a failing demo reports its error, the suite moves on
		d.logger.InfoContext(ctx, "demo failed",
			"name", d.demo.Name,
			"error", logs.WrapSpan(ctx, err),
		)
	}
	return nil, nil
}

var parallelFlag = cmds.Var[int]("-parallel")

type Suite func(ctx context.Context) error

func (Module) Suite(
	demos Demos,
	logger logs.Logger,
	newSpan logs.NewSpan,
	output Output,
) Suite {
	return func(ctx context.Context) error {
		var mu sync.Mutex
		emit := func(lines []string) {
			mu.Lock()
			defer mu.Unlock()
			for _, line := range lines {
				fmt.Fprintln(output, line)
			}
		}

		var queue procs.Procs[context.Context]
		for _, demo := range demos {
			queue = append(queue, demoProc{
				demo:    demo,
				logger:  logger,
				newSpan: newSpan,
				emit:    emit,
			})
		}

		if n := *parallelFlag; n > 1 {
			sem := syncs.NewSemaphore(n)
			wg := new(sync.WaitGroup)
			for _, proc := range queue {
				wg.Add(1)
				go func() {
					defer wg.Done()
					sem.With(func() {
						proc.Run(ctx)
					})
				}()
			}
			wg.Wait()
			return nil
		}

		var p procs.Proc[context.Context] = queue
		for p != nil {
			var err error
			p, err = p.Run(ctx)
			if err != nil {
				return err
			}
		}
		return nil
	}
}
