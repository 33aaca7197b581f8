package main

import "strings"

// A command is one unit of evaluation: a definition to queue, or an
// expression to run against the stack.
type command struct {
	name   string  // definition name; empty for an expression
	tokens []token // body tokens for a definition, all tokens otherwise
}

func (cmd command) isDefinition() bool { return cmd.name != "" }

// splitCommands cuts input into individual commands on definition
// boundaries: a `:` begins a new command, a `;` ends one, and text outside
// any definition becomes its own command. Blank commands are elided.
func splitCommands(input string) (cmds []string) {
	var cur strings.Builder
	flush := func() {
		if s := strings.TrimSpace(cur.String()); s != "" {
			cmds = append(cmds, s)
		}
		cur.Reset()
	}
	for _, r := range input {
		switch r {
		case ':':
			flush()
			cur.WriteRune(r)
		case ';':
			cur.WriteRune(r)
			flush()
		default:
			cur.WriteRune(r)
		}
	}
	flush()
	return cmds
}

// parseCommand classifies a single command. A command is a definition iff
// its first token is `:`; it must then be terminated by `;` and name a word,
// not a number, else the command fails with ErrInvalidWord. Anything else is
// an expression, the empty command included.
func parseCommand(input string) (command, error) {
	tokens := tokenize(input)
	if len(tokens) == 0 || tokens[0].word != ":" {
		return command{tokens: tokens}, nil
	}
	if last := tokens[len(tokens)-1]; last.word != ";" {
		return command{}, ErrInvalidWord
	}
	if len(tokens) < 3 || tokens[1].isNum() {
		return command{}, ErrInvalidWord
	}
	return command{name: tokens[1].word, tokens: tokens[2 : len(tokens)-1]}, nil
}
