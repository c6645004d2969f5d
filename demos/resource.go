package demos

import (
	"context"
	"fmt"

	"github.com/reusee/gens/logs"
	"github.com/reusee/gens/resources"
)

type RunResource func(ctx context.Context) ([]string, error)

func (Module) RunResource(
	logger logs.Logger,
) RunResource {
	return func(ctx context.Context) (lines []string, err error) {
		emit := func(s string) {
			lines = append(lines, s)
		}

		// clean exit: exit follows the work
		err = resources.With(resources.New("X", emit), func(h *resources.Handle) error {
			emit(fmt.Sprintf("inside <Resource %s>", h.Name))
			return nil
		})
		if err != nil {
			return lines, err
		}

		// failing exit: the handle never suppresses, the error comes back
		// after its exit line
		err = resources.With(resources.New("Y", emit), func(h *resources.Handle) error {
			return fmt.Errorf("failed inside %s", h.Name)
		})
		if err != nil {
			emit("caught: " + err.Error())
		}

		logger.InfoContext(ctx, "resource done")
		return lines, nil
	}
}
