package main

import "fmt"

// A definition is a queued `: name body ;` awaiting expansion. Definitions
// drain in FIFO order, so a redefinition lands in the table after the entry
// it shadows.
type definition struct {
	name string
	body []token
}

// lookup resolves a word against the table of installed operations.
func (vm *VM) lookup(word string) (operation, error) {
	op, ok := vm.ops[word]
	if !ok {
		return operation{}, ErrUnknownWord
	}
	return op, nil
}

// pendingShadows reports whether a queued definition would replace the
// table entry for word once drained.
func (vm *VM) pendingShadows(word string) bool {
	for _, def := range vm.pending {
		if def.name == word {
			return true
		}
	}
	return false
}

// resolve looks a word up for execution. If the word is missing from the
// table, or a queued definition shadows its current entry, the whole
// pending queue drains first, so that the freshest definition wins.
func (vm *VM) resolve(word string) (operation, error) {
	if _, ok := vm.ops[word]; !ok || vm.pendingShadows(word) {
		if err := vm.drain(); err != nil {
			return operation{}, err
		}
	}
	return vm.lookup(word)
}

// drain expands every queued definition in FIFO order and installs each
// into the table, replacing any prior entry of the same name. A failed
// expansion leaves its definition uninstalled and the rest of the queue
// intact ahead of the next drain.
func (vm *VM) drain() error {
	for len(vm.pending) > 0 {
		def := vm.pending[0]
		vm.pending = vm.pending[1:]
		body, err := vm.expand(def)
		if err != nil {
			return err
		}
		if vm.logfn != nil {
			vm.logf("install %v { %v }", def.name, tokensString(body))
		}
		vm.ops[def.name] = operation{code: opUser, body: body}
	}
	return nil
}

// expand flattens a definition body down to number tokens and primitive
// words. A word resolving to a user definition splices that body onto the
// front of the remaining input, as if textually substituted, so nested
// words expand against the table as it stands right now. Unknown words are
// dropped: definition time validation is deferred until a word actually
// executes. Work is bounded by the VM's expansion limit.
func (vm *VM) expand(def definition) ([]token, error) {
	buf := make([]token, 0, len(def.body))
	input := def.body
	for steps := 0; len(input) > 0; {
		if steps++; steps > vm.expandLimit {
			return nil, expansionError{def.name, vm.expandLimit}
		}
		tok := input[0]
		input = input[1:]
		if tok.isNum() {
			buf = append(buf, tok)
			continue
		}
		op, ok := vm.ops[tok.word]
		if !ok {
			vm.logf("expand %v drops %q", def.name, tok.word)
			continue
		}
		if op.code == opUser {
			input = spliceFront(input, op.body)
		} else {
			buf = append(buf, tok)
		}
	}
	return buf, nil
}

// spliceFront prepends body to the front of queue. The three-index slice
// forces any growth to copy, since body usually belongs to an installed
// table entry.
func spliceFront(queue, body []token) []token {
	return append(body[:len(body):len(body)], queue...)
}

type expansionError struct {
	word  string
	limit int
}

func (err expansionError) Error() string {
	return fmt.Sprintf("expansion of %q exceeded %v tokens", err.word, err.limit)
}

func (err expansionError) Unwrap() error { return ErrExpansionOverflow }
