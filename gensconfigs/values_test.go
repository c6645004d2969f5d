package gensconfigs

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/reusee/dscope"
	"github.com/reusee/gens/configs"
	"github.com/reusee/gens/modes"
)

func TestDefaults(t *testing.T) {
	dscope.New(
		new(Module),
		modes.ForTest(t),
	).Fork(
		dscope.Provide(configs.NewLoader(nil, "")),
	).Call(func(
		depth RecursionDepth,
		start CounterStart,
		steps CounterSteps,
		trace Trace,
	) {
		if depth != 20 {
			t.Fatalf("got %v", depth)
		}
		if start != 10 {
			t.Fatalf("got %v", start)
		}
		if str := fmt.Sprintf("%v", steps); str != "[1 5]" {
			t.Fatalf("got %s", str)
		}
		if trace {
			t.Fatal()
		}
	})
}

func TestConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "gens.cue")
	if err := os.WriteFile(path, []byte(`
recursion_depth: 3
counter_steps: [2, 3]
trace: true
`), 0644); err != nil {
		t.Fatal(err)
	}

	dscope.New(
		new(Module),
		modes.ForTest(t),
	).Fork(
		dscope.Provide(configs.NewLoader([]string{path}, schema)),
	).Call(func(
		depth RecursionDepth,
		start CounterStart,
		steps CounterSteps,
		trace Trace,
	) {
		if depth != 3 {
			t.Fatalf("got %v", depth)
		}
		if start != 10 {
			t.Fatalf("got %v", start)
		}
		if str := fmt.Sprintf("%v", steps); str != "[2 3]" {
			t.Fatalf("got %s", str)
		}
		if !trace {
			t.Fatal()
		}
	})
}

func TestConfigReport(t *testing.T) {
	dscope.New(
		new(Module),
		modes.ForTest(t),
	).Fork(
		dscope.Provide(configs.NewLoader(nil, "")),
	).Call(func(
		report ConfigReport,
	) {
		if !strings.Contains(string(report), "RecursionDepth = 20") {
			t.Fatalf("got %v", report)
		}
		if !strings.Contains(string(report), "CounterSteps = [1 5]") {
			t.Fatalf("got %v", report)
		}
	})
}
