package demos

import (
	"context"
	"strconv"

	"github.com/reusee/gens/counters"
	"github.com/reusee/gens/gensconfigs"
	"github.com/reusee/gens/logs"
)

type RunCounter func(ctx context.Context) ([]string, error)

func (Module) RunCounter(
	logger logs.Logger,
	start gensconfigs.CounterStart,
	steps gensconfigs.CounterSteps,
) RunCounter {
	return func(ctx context.Context) ([]string, error) {
		counter := counters.New(int(start))
		var lines []string
		for _, step := range steps {
			lines = append(lines, strconv.Itoa(counter(step)))
		}
		logger.InfoContext(ctx, "counter done",
			"start", int(start),
			"steps", []int(steps),
		)
		return lines, nil
	}
}
