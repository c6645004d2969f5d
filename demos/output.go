package demos

import (
	"io"
	"os"
)

type Output io.Writer

func (Module) Output() Output {
	return os.Stdout
}
