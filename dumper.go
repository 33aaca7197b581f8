package main

import (
	"fmt"
	"io"
	"sort"
)

// vmDumper writes a human readable snapshot of interpreter state: the data
// stack, any definitions still queued for expansion, and the installed
// words with their flattened bodies.
type vmDumper struct {
	vm  *VM
	out io.Writer
}

func (dump vmDumper) dump() {
	fmt.Fprintf(dump.out, "# VM Dump\n")
	fmt.Fprintf(dump.out, "  stack: %v\n", dump.vm.stack)

	if pending := dump.vm.pending; len(pending) > 0 {
		fmt.Fprintf(dump.out, "# Pending Definitions\n")
		for _, def := range pending {
			fmt.Fprintf(dump.out, "  : %v %v ;\n", def.name, tokensString(def.body))
		}
	}

	fmt.Fprintf(dump.out, "# Dictionary\n")
	for _, name := range dump.words() {
		if op := dump.vm.ops[name]; op.code == opUser {
			fmt.Fprintf(dump.out, "  : %v %v ;\n", name, tokensString(op.body))
		} else {
			fmt.Fprintf(dump.out, "  %v builtin\n", name)
		}
	}
}

// words lists table entries, builtins first, then user words, each group
// sorted by name.
func (dump vmDumper) words() []string {
	names := make([]string, 0, len(dump.vm.ops))
	for name := range dump.vm.ops {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool {
		useri := dump.vm.ops[names[i]].code == opUser
		userj := dump.vm.ops[names[j]].code == opUser
		if useri != userj {
			return userj
		}
		return names[i] < names[j]
	})
	return names
}
