package genvm

// slot is the single-use carrier for an injected datum: a value from
// Resume/Send or an error from Throw/Close. The engine stores it for
// exactly one body step and clears it when the step returns, so nothing
// injected can be observed twice.
type slot struct {
	value any
	err   error
}

func (s *slot) store(value any, err error) {
	s.value = value
	s.err = err
}

func (s *slot) clear() {
	s.value = nil
	s.err = nil
}
