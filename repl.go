package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
)

// Run reads lines from the VM's input and evaluates each, writing a status
// line to the VM's output: "ok" plus the stack on success, the evaluation
// error otherwise. Evaluation errors do not stop the loop, since the
// interpreter stays usable after them. Run returns nil at end of input, the
// context's error on cancellation, and the first IO error otherwise.
func (vm *VM) Run(ctx context.Context) error {
	sc := bufio.NewScanner(vm.in)
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := vm.writePrompt(); err != nil {
			return err
		}
		if !sc.Scan() {
			break
		}
		if err := vm.reply(vm.Eval(sc.Text())); err != nil {
			return err
		}
	}
	return sc.Err()
}

func (vm *VM) writePrompt() error {
	if vm.prompt == "" {
		return nil
	}
	if _, err := io.WriteString(vm.out, vm.prompt); err != nil {
		return err
	}
	return vm.out.Flush()
}

func (vm *VM) reply(evalErr error) error {
	var err error
	if evalErr != nil {
		_, err = fmt.Fprintf(vm.out, "error: %v\n", evalErr)
	} else {
		_, err = fmt.Fprintf(vm.out, "ok %v\n", vm.stack)
	}
	if err != nil {
		return err
	}
	return vm.out.Flush()
}
