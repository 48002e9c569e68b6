// Command cardinal is a REPL for the rewriting kernel: read one
// expression, evaluate it to a fixed point, print the result. Grounded
// in the teacher's cmd/cardinal/repl.go, adapted from its *engine.Context
// threading to engine.Kernel and from its own expression syntax to
// sexprparser's Head[args] reader.
package main

import (
	"bufio"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/lmorg/readline/v4"
	"golang.org/x/term"

	"github.com/client9/cardinal/core"
	"github.com/client9/cardinal/engine"
	"github.com/client9/cardinal/rulepack"
	"github.com/client9/cardinal/sexprparser"
)

func main() {
	start := time.Now()
	kernel := engine.NewKernel(engine.Config{})
	rulepack.Install(kernel)
	log.Printf("cardinal: kernel ready in %s", time.Since(start))

	repl := newREPL(kernel)
	if err := repl.run(); err != nil {
		fmt.Fprintln(os.Stderr, "cardinal:", err)
		os.Exit(1)
	}
}

// repl is a Read-Eval-Print loop over a single *engine.Kernel. It uses
// an interactive readline prompt against a terminal and falls back to
// plain line-buffered reading for piped input, matching the teacher's
// isInteractive split in cmd/cardinal/repl.go.
type repl struct {
	kernel *engine.Kernel
}

func newREPL(k *engine.Kernel) *repl {
	return &repl{kernel: k}
}

func (r *repl) run() error {
	if term.IsTerminal(int(os.Stdin.Fd())) {
		return r.runInteractive()
	}
	return r.runPiped()
}

func (r *repl) runInteractive() error {
	rl := readline.NewInstance()
	rl.SetPrompt("cardinal> ")

	for {
		line, err := rl.Readline()
		if err != nil {
			return nil // Ctrl-D / Ctrl-C ends the session cleanly
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if line == "quit" || line == "exit" {
			return nil
		}
		r.evalPrint(line)
	}
}

func (r *repl) runPiped() error {
	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		r.evalPrint(line)
	}
	return scanner.Err()
}

// evalPrint parses, evaluates, and prints one line, recovering any
// core.InternalError panic at this boundary per spec.md §7 — the engine
// itself never recovers its own programmer errors.
func (r *repl) evalPrint(line string) {
	defer func() {
		if rec := recover(); rec != nil {
			if ie, ok := rec.(core.InternalError); ok {
				fmt.Fprintln(os.Stderr, "internal error:", ie.Error())
				return
			}
			panic(rec)
		}
	}()

	expr, err := sexprparser.Parse(line)
	if err != nil {
		fmt.Fprintln(os.Stderr, "parse error:", err)
		return
	}
	fmt.Println(r.kernel.EvaluateAndPrint(expr))
}
