package genvm

import "maps"

// Snapshot is a copy of a generator's observable state. Locals are cloned;
// mutating a snapshot never touches the live generator.
type Snapshot struct {
	Name     string
	Phase    Phase
	Label    Label
	Locals   map[string]any
	Delegate *Snapshot
}

func (g *Generator) Snapshot() Snapshot {
	s := Snapshot{
		Name:   g.name,
		Phase:  g.phase,
		Label:  g.frame.label,
		Locals: maps.Clone(g.frame.locals),
	}
	if g.delegate != nil {
		d := g.delegate.Snapshot()
		s.Delegate = &d
	}
	return s
}
