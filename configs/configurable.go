package configs

// Configurable is implemented by typed config values so tooling can
// report which config expressions the program reads.
type Configurable interface {
	ConfigExpr() string
}
