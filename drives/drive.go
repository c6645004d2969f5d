package drives

import (
	"context"
	"errors"
	"fmt"
	"io"
	"maps"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"strings"
	"sync"

	"github.com/peterh/liner"
	"github.com/reusee/gens/cmds"
	"github.com/reusee/gens/debugs"
	"github.com/reusee/gens/genvm"
	"github.com/reusee/gens/logs"
)

var tapFlag = cmds.Switch("-tap")

// Drive runs a prompt loop over one generator. Each line is a driver
// command; the generator only moves when told to.
type Drive func(ctx context.Context, gen *genvm.Generator) error

func (Module) Drive(
	logger logs.Logger,
	tapGenerator debugs.TapGenerator,
) Drive {

	getHistoryPath := sync.OnceValues(func() (string, error) {
		dir, err := os.UserConfigDir()
		if err != nil {
			return "", err
		}
		return filepath.Join(dir, "gens-drive-history"), nil
	})

	return func(ctx context.Context, gen *genvm.Generator) error {
		ctx = logs.WithGenerator(ctx, gen.Name())

		line := liner.NewLiner()
		defer line.Close()
		line.SetCtrlCAborts(true)

		historyPath, err := getHistoryPath()
		if err != nil {
			logger.Warn("get history path error", "err", err)
		} else {
			if f, err := os.Open(historyPath); err == nil {
				line.ReadHistory(f)
				f.Close()
			}
		}
		defer func() {
			if historyPath == "" {
				return
			}
			if err := os.MkdirAll(filepath.Dir(historyPath), 0755); err != nil {
				logger.Warn("create history dir error", "err", err)
				return
			}
			f, err := os.Create(historyPath)
			if err != nil {
				logger.Warn("create history file error", "err", err)
				return
			}
			line.WriteHistory(f)
			f.Close()
		}()

		if *tapFlag {
			tapGenerator(ctx, gen)
		}

		fmt.Println("driving " + gen.Name() + ". Type help for commands.")
		for {
			input, err := line.Prompt(gen.Name() + "> ")
			if err != nil {
				switch err {
				case io.EOF, liner.ErrPromptAborted:
					fmt.Println()
					return nil
				}
				return err
			}
			input = strings.TrimSpace(input)
			if input == "" {
				continue
			}
			line.AppendHistory(input)

			if quit := handleCommand(ctx, gen, os.Stdout, tapGenerator, input); quit {
				return nil
			}
		}
	}
}

func handleCommand(
	ctx context.Context,
	gen *genvm.Generator,
	w io.Writer,
	tapGenerator debugs.TapGenerator,
	input string,
) (quit bool) {
	fields := strings.Fields(input)
	switch fields[0] {

	case "next", "n":
		out, done, err := gen.Resume(nil)
		report(w, out, done, err)

	case "send":
		if len(fields) < 2 {
			fmt.Fprintln(w, "usage: send <value>")
			return false
		}
		out, done, err := gen.Send(parseValue(strings.Join(fields[1:], " ")))
		report(w, out, done, err)

	case "throw":
		message := "driver error"
		if len(fields) > 1 {
			message = strings.Join(fields[1:], " ")
		}
		out, done, err := gen.Throw(errors.New(message))
		report(w, out, done, err)

	case "close":
		if err := gen.Close(); err != nil {
			fmt.Fprintln(w, "error:", err)
			return false
		}
		fmt.Fprintln(w, "closed, phase "+gen.Phase().String())

	case "state":
		printState(w, gen.Snapshot(), 0)

	case "tap":
		tapGenerator(ctx, gen)

	case "help", "?":
		printHelp(w)

	case "quit", "exit", "q":
		return true

	default:
		fmt.Fprintf(w, "unknown command: %s. Type help for help.\n", fields[0])
	}
	return false
}

// parseValue keeps driver input convenient: numbers and booleans go in as
// themselves, everything else as the raw string.
func parseValue(str string) any {
	if n, err := strconv.Atoi(str); err == nil {
		return n
	}
	switch str {
	case "true":
		return true
	case "false":
		return false
	}
	return str
}

func report(w io.Writer, out any, done bool, err error) {
	if err != nil {
		fmt.Fprintln(w, "error:", err)
		return
	}
	if done {
		fmt.Fprintf(w, "done, terminal %v\n", out)
		return
	}
	fmt.Fprintf(w, "yield %v\n", out)
}

func printState(w io.Writer, s genvm.Snapshot, indent int) {
	pad := strings.Repeat("  ", indent)
	fmt.Fprintf(w, "%s%s: %s at %q\n", pad, s.Name, s.Phase, s.Label)
	for _, name := range slices.Sorted(maps.Keys(s.Locals)) {
		fmt.Fprintf(w, "%s  %s = %v\n", pad, name, s.Locals[name])
	}
	if s.Delegate != nil {
		printState(w, *s.Delegate, indent+1)
	}
}

func printHelp(w io.Writer) {
	fmt.Fprintln(w, "  next, n          resume with no value")
	fmt.Fprintln(w, "  send <value>     resume with a value")
	fmt.Fprintln(w, "  throw [message]  inject an error at the suspension point")
	fmt.Fprintln(w, "  close            request termination")
	fmt.Fprintln(w, "  state            print the suspension state")
	fmt.Fprintln(w, "  tap              open the inspection shell")
	fmt.Fprintln(w, "  help             show this help message")
	fmt.Fprintln(w, "  quit             leave the driver")
}
