package resources

// Handle is a named resource that announces its lifecycle through emit and
// never suppresses.
type Handle struct {
	Name string
	emit func(string)
}

var _ Scoped[*Handle] = new(Handle)

func New(name string, emit func(string)) *Handle {
	if emit == nil {
		emit = func(string) {}
	}
	return &Handle{
		Name: name,
		emit: emit,
	}
}

func (h *Handle) Enter() (*Handle, error) {
	h.emit("enter " + h.Name)
	return h, nil
}

func (h *Handle) Exit(cause error) bool {
	h.emit("exit " + h.Name)
	return false
}
