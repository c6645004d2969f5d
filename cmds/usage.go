package cmds

import (
	"fmt"
	"io"
	"maps"
	"os"
	"slices"
	"strings"
)

func (p *Executor) PrintUsage() {
	p.printCommands(os.Stdout, p.commands, 0)
}

func (p *Executor) printCommands(w io.Writer, commands map[string]*Command, indent int) {
	names := slices.Sorted(maps.Keys(commands))
	for _, name := range names {
		command := commands[name]
		if command == nil || command.Hidden {
			continue
		}
		// alias entries share the command, print the primary name only
		if slices.Contains(command.Aliases, name) {
			continue
		}
		line := strings.Repeat("  ", indent) + name
		if len(command.Aliases) > 0 {
			line += " (" + strings.Join(command.Aliases, ", ") + ")"
		}
		fmt.Fprintln(w, line)
		if command.Description != "" {
			fmt.Fprintln(w, strings.Repeat("  ", indent+2)+command.Description)
		}
		if len(command.Subs) > 0 {
			p.printCommands(w, command.Subs, indent+1)
		}
	}
}
