package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/mattn/go-isatty"
)

func main() {
	ctx := context.Background()

	var (
		timeout time.Duration
		trace   bool
		dump    bool
		expr    string
	)
	flag.DurationVar(&timeout, "timeout", 0, "specify a time limit")
	flag.BoolVar(&trace, "trace", false, "enable trace logging")
	flag.BoolVar(&dump, "dump", false, "dump interpreter state on exit")
	flag.StringVar(&expr, "e", "", "evaluate an expression, print the stack, and exit")
	flag.Parse()

	opts := []VMOption{
		WithInput(os.Stdin),
		WithOutput(os.Stdout),
	}
	if trace {
		opts = append(opts, WithLogf(log.Printf))
	}
	if expr == "" && len(flag.Args()) == 0 && isatty.IsTerminal(os.Stdin.Fd()) {
		opts = append(opts, WithPrompt("> "))
	}
	vm := New(opts...)

	if timeout != 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	err := run(ctx, vm, expr, flag.Args())
	if dump {
		vmDumper{vm: vm, out: os.Stderr}.dump()
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: %+v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, vm *VM, expr string, files []string) error {
	if expr != "" {
		if err := vm.Eval(expr); err != nil {
			return err
		}
		fmt.Println(vm.Stack())
		return nil
	}
	if len(files) > 0 {
		for _, name := range files {
			src, err := os.ReadFile(name)
			if err != nil {
				return err
			}
			if err := vm.Eval(string(src)); err != nil {
				return fmt.Errorf("%v: %w", name, err)
			}
		}
		fmt.Println(vm.Stack())
		return nil
	}
	return vm.Run(ctx)
}
