package counters

// Counter advances a running total by step and returns the new total.
type Counter func(step int) int

type state struct {
	total int
}

func New(start int) Counter {
	s := &state{
		total: start,
	}
	return s.add
}

func (s *state) add(step int) int {
	s.total += step
	return s.total
}
