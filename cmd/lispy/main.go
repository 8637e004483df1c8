// Package main is the Lispy REPL driver: it wires the line-editor
// front end, the concrete-syntax parser, the reader, and the evaluator
// together (spec §6.2).
package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"runtime/debug"
	"sync"

	"github.com/chzyer/readline"
	"github.com/fatih/color"

	"github.com/lispy-lang/lispy"
	"github.com/lispy-lang/lispy/eval"
	"github.com/lispy-lang/lispy/internal/lispyconfig"
	"github.com/lispy-lang/lispy/reader"
	"github.com/lispy-lang/lispy/syntax"
)

func main() {
	cfg, err := lispyconfig.Parse(os.Args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	logLevel := slog.LevelWarn
	if cfg.LogReader || cfg.LogEval {
		logLevel = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel}))

	rl, err := readline.NewEx(&readline.Config{
		Prompt:          cfg.Prompt,
		HistoryFile:     cfg.HistFile,
		InterruptPrompt: "^C",
		EOFPrompt:       "",
	})
	if err != nil {
		fmt.Fprintln(os.Stderr, "unable to start line editor:", err)
		os.Exit(1)
	}
	defer rl.Close()

	root := eval.NewRootEnvironment()
	logger.Info("bootstrap complete", "builtins", len(root.Names()))

	errColor := color.New(color.FgRed)
	if cfg.NoColor {
		errColor.DisableColor()
	}

	var wg sync.WaitGroup
	wg.Add(1)
	go repl(rl, root, cfg, logger, errColor, &wg)
	wg.Wait()
}

func repl(rl *readline.Instance, root *lispy.Environment, cfg *lispyconfig.Config, logger *slog.Logger, errColor *color.Color, wg *sync.WaitGroup) {
	defer func() {
		if r := recover(); r != nil {
			logger.Error("recovered panic", "value", r, "stack", string(debug.Stack()))
			go repl(rl, root, cfg, logger, errColor, wg)
			return
		}
		wg.Done()
	}()

	for {
		line, err := rl.Readline()
		if err != nil {
			if errors.Is(err, io.EOF) || errors.Is(err, readline.ErrInterrupt) {
				return
			}
			logger.Error("reading line", "error", err)
			continue
		}
		if line == "" {
			continue
		}

		tree, err := syntax.Parse(line)
		if err != nil {
			errColor.Println("Error:", err)
			continue
		}

		val := reader.Read(tree)
		if cfg.LogReader {
			logger.Debug("read", "value", val.String())
		}

		for _, result := range evalTopLevel(root, val) {
			if cfg.LogEval {
				logger.Debug("eval", "value", result.String())
			}
			if lispy.IsError(result) {
				errColor.Println(result.String())
				continue
			}
			fmt.Println(result.String())
		}
	}
}

// evalTopLevel evaluates every top-level expression the reader produced
// for one input line and returns each result in order, so the driver
// can print one line per expression (spec §6.2).
func evalTopLevel(root *lispy.Environment, v lispy.Value) []lispy.Value {
	top, ok := v.(*lispy.SExpr)
	if !ok {
		return []lispy.Value{eval.Eval(root, v)}
	}
	results := make([]lispy.Value, len(top.Children))
	for i, child := range top.Children {
		results[i] = eval.Eval(root, child)
	}
	return results
}
