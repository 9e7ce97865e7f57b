// Package sqlparser adapts the ANTLR MySQL lexer into the tokenizer the
// analyzer builds on. Only the lexer is run, never the full parser: lexing
// is lenient enough that a misspelled keyword still tokenizes as an
// identifier, which lets the pattern detectors examine queries a strict
// grammar would reject.
package sqlparser

import (
	"regexp"
	"strings"

	"github.com/antlr4-go/antlr/v4"
	parser "github.com/gedhean/mysql-parser"
)

// Token is one default-channel token produced by the tokenizer.
type Token struct {
	// Text is the token text as written.
	Text string

	// Upper is the upper-cased token text.
	Upper string

	// Line and Column locate the token in the input (1-based line).
	Line   int
	Column int
}

var wordShaped = regexp.MustCompile(`^\w+$`)

// IsWord reports whether the token is word-shaped (identifier or keyword).
func (t Token) IsWord() bool {
	return wordShaped.MatchString(t.Text)
}

// ParsedQuery is the parsed representation of a single statement. It exposes
// the two views the analysis needs: the flattened upper-cased text used by
// the pattern detectors, and the token stream used by the structural checks.
type ParsedQuery struct {
	// Raw is the original statement text.
	Raw string

	// Flattened is the upper-cased textual view of the statement.
	Flattened string

	// Tokens are the default-channel tokens in input order.
	Tokens []Token
}

// FunctionCallCount counts word tokens immediately followed by an opening
// parenthesis, approximating the number of function calls.
func (q *ParsedQuery) FunctionCallCount() int {
	count := 0
	for i := 0; i+1 < len(q.Tokens); i++ {
		if q.Tokens[i].IsWord() && q.Tokens[i+1].Text == "(" {
			count++
		}
	}
	return count
}

// CountKeyword counts occurrences of an upper-cased word token.
func (q *ParsedQuery) CountKeyword(upper string) int {
	count := 0
	for _, t := range q.Tokens {
		if t.Upper == upper {
			count++
		}
	}
	return count
}

// Parse tokenizes the given statement. It returns a *ParseError when the
// tokenizer reports an error or produces no tokens at all; any other input
// is accepted. Parse has no side effects and is safe for concurrent use.
func Parse(statement string) (*ParsedQuery, error) {
	input := antlr.NewInputStream(statement)
	lexer := parser.NewMySQLLexer(input)

	listener := &lexErrorListener{}
	lexer.RemoveErrorListeners()
	lexer.AddErrorListener(listener)

	stream := antlr.NewCommonTokenStream(lexer, antlr.TokenDefaultChannel)
	stream.Fill()

	if listener.err != nil {
		return nil, listener.err
	}

	var tokens []Token
	for _, t := range stream.GetAllTokens() {
		if t.GetChannel() != antlr.TokenDefaultChannel || t.GetTokenType() == antlr.TokenEOF {
			continue
		}
		text := t.GetText()
		tokens = append(tokens, Token{
			Text:   text,
			Upper:  strings.ToUpper(text),
			Line:   t.GetLine(),
			Column: t.GetColumn(),
		})
	}

	if len(tokens) == 0 {
		return nil, &ParseError{Detail: "statement contains no tokens"}
	}

	return &ParsedQuery{
		Raw:       statement,
		Flattened: strings.ToUpper(statement),
		Tokens:    tokens,
	}, nil
}
