package genvm

type Phase uint8

const (
	Created Phase = iota
	Suspended
	Running
	Completed
	Failed
)

func (p Phase) String() string {
	switch p {
	case Created:
		return "created"
	case Suspended:
		return "suspended"
	case Running:
		return "running"
	case Completed:
		return "completed"
	case Failed:
		return "failed"
	}
	return "invalid"
}

// Terminal reports whether no further transition is possible.
func (p Phase) Terminal() bool {
	return p == Completed || p == Failed
}
