package main

import (
	"strconv"
	"strings"
)

// A token is one lexical item of input: an integer literal or a word. Words
// are stored case folded, since the language is case insensitive. A token
// with an empty word field is a number; the tokenizer never produces an
// empty word.
type token struct {
	word string
	num  int
}

func (tok token) isNum() bool { return tok.word == "" }

func (tok token) String() string {
	if tok.isNum() {
		return strconv.Itoa(tok.num)
	}
	return tok.word
}

// tokenize splits a command on whitespace, classifying each piece as a
// number if it parses as a signed integer, and a word otherwise. There is no
// error path: any non-numeric piece is a word, known or not.
func tokenize(command string) []token {
	fields := strings.Fields(strings.ToLower(command))
	tokens := make([]token, 0, len(fields))
	for _, field := range fields {
		if n, err := strconv.ParseInt(field, 10, strconv.IntSize); err == nil {
			tokens = append(tokens, token{num: int(n)})
		} else {
			tokens = append(tokens, token{word: field})
		}
	}
	return tokens
}

func tokensString(tokens []token) string {
	var sb strings.Builder
	for i, tok := range tokens {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(tok.String())
	}
	return sb.String()
}
