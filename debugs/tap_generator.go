package debugs

import (
	"context"

	"github.com/reusee/gens/genvm"
)

// TapGenerator opens an inspection shell over one generator's current
// state: phase, resumption label, named slots, and the delegation chain.
type TapGenerator func(ctx context.Context, gen *genvm.Generator)

func (Module) TapGenerator(
	tap Tap,
) TapGenerator {
	return func(ctx context.Context, gen *genvm.Generator) {
		snapshot := gen.Snapshot()
		globals := map[string]any{
			"name":     snapshot.Name,
			"phase":    snapshot.Phase.String(),
			"label":    string(snapshot.Label),
			"locals":   snapshot.Locals,
			"snapshot": snapshot,
		}
		depth := 0
		for sub := snapshot.Delegate; sub != nil; sub = sub.Delegate {
			depth++
		}
		globals["delegation_depth"] = depth
		tap(ctx, "generator "+snapshot.Name, globals)
	}
}
