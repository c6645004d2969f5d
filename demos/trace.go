package demos

import (
	"context"

	"github.com/reusee/gens/genvm"
	"github.com/reusee/gens/logs"
)

func logSnapshot(ctx context.Context, logger logs.Logger, gen *genvm.Generator) {
	s := gen.Snapshot()
	depth := 0
	for sub := s.Delegate; sub != nil; sub = sub.Delegate {
		depth++
	}
	logger.InfoContext(ctx, "snapshot",
		"phase", s.Phase.String(),
		"label", string(s.Label),
		"locals", s.Locals,
		"delegation_depth", depth,
	)
}
