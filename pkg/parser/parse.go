package parser

import (
	"errors"

	hclog "github.com/hashicorp/go-hclog"
	"golang.org/x/exp/slices"

	"github.com/seal-io/bendump/pkg/diag"
	"github.com/seal-io/bendump/pkg/element"
	"github.com/seal-io/bendump/pkg/lexer"
	"github.com/seal-io/bendump/utils/logging"
)

// DefaultMaxDepth bounds the nesting of lists and dictionaries.
const DefaultMaxDepth = 512

// elementStarts are the kinds that can begin an element.
var elementStarts = []lexer.Kind{
	lexer.KindDictionary,
	lexer.KindList,
	lexer.KindIntegerBegin,
	lexer.KindStringBegin,
}

type Option func(*parser)

// WithMaxDepth limits the nesting of lists and dictionaries,
// a non-positive value keeps DefaultMaxDepth.
func WithMaxDepth(n int) Option {
	return func(p *parser) {
		if n > 0 {
			p.maxDepth = n
		}
	}
}

// Parse builds the single root element of the given tokens,
// every syntactic error is reported to the given sink.
//
// Parse returns an error wrapping diag.ErrInvalidInput if any error was reported,
// no element is returned in that case.
func Parse(tokens []lexer.Token, sink diag.Sink, opts ...Option) (element.Element, error) {
	p := &parser{
		tokens:   tokens,
		sink:     sink,
		maxDepth: DefaultMaxDepth,
		logger:   logging.Named("parser"),
	}

	for i := range opts {
		opts[i](p)
	}

	return p.parse()
}

type parser struct {
	tokens   []lexer.Token
	pos      int
	sink     diag.Sink
	maxDepth int
	logger   hclog.Logger

	errs int
}

func (p *parser) parse() (element.Element, error) {
	var root element.Element

	for {
		p.skipLines()

		start := p.peek()
		if start.Kind == lexer.KindEndOfInput {
			break
		}

		e, err := p.parseElement(0)
		if err == nil && root != nil {
			err = unexpected(start, lexer.KindEndOfLine, lexer.KindEndOfInput)
		}

		if err != nil {
			if !p.report(err) {
				return nil, diag.Failed("parse", p.errs, true)
			}

			continue
		}

		root = e
	}

	if root == nil && p.errs == 0 {
		if !p.report(unexpected(p.peek(), slices.Clone(elementStarts)...)) {
			return nil, diag.Failed("parse", p.errs, true)
		}
	}

	if p.errs > 0 {
		return nil, diag.Failed("parse", p.errs, false)
	}

	return root, nil
}

// parseElement parses the element starting at the current token,
// depth is the number of enclosing lists and dictionaries.
func (p *parser) parseElement(depth int, alternatives ...lexer.Kind) (element.Element, error) {
	tok := p.peek()

	switch tok.Kind {
	case lexer.KindDictionary:
		return p.parseDictionary(depth)
	case lexer.KindList:
		return p.parseList(depth)
	case lexer.KindIntegerBegin:
		return p.parseInteger()
	case lexer.KindStringBegin:
		return p.parseString()
	}

	p.advance()

	return nil, unexpected(tok, append(slices.Clone(elementStarts), alternatives...)...)
}

func (p *parser) parseList(depth int) (element.Element, error) {
	open := p.advance()
	if err := p.checkDepth(open, depth); err != nil {
		return nil, err
	}

	items := element.List{}

	for {
		p.skipLines()

		if p.peek().Kind == lexer.KindEndType {
			p.advance()
			break
		}

		e, err := p.parseElement(depth+1, lexer.KindEndType)
		if err != nil {
			return nil, err
		}

		items = append(items, e)
	}

	return items, nil
}

func (p *parser) parseDictionary(depth int) (element.Element, error) {
	open := p.advance()
	if err := p.checkDepth(open, depth); err != nil {
		return nil, err
	}

	var entries []element.Entry

	for {
		p.skipLines()

		tok := p.peek()
		if tok.Kind == lexer.KindEndType {
			p.advance()
			break
		}

		if tok.Kind != lexer.KindStringBegin {
			p.advance()
			return nil, unexpected(tok, lexer.KindStringBegin, lexer.KindEndType)
		}

		key, err := p.parseString()
		if err != nil {
			return nil, err
		}

		p.skipLines()

		value, err := p.parseElement(depth + 1)
		if err != nil {
			return nil, err
		}

		entries = append(entries, element.Entry{
			Key:   key.(element.ByteString),
			Value: value,
		})
	}

	d, err := element.NewDictionary(entries...)
	if err != nil {
		p.logger.Trace("unordered dictionary", "line", open.Line, "column", open.Column, "error", err)

		return nil, &SyntaxError{
			Kind:  ErrBrokenKeyOrder,
			Token: open,
		}
	}

	return d, nil
}

func (p *parser) parseInteger() (element.Element, error) {
	if _, err := p.consume(lexer.KindIntegerBegin); err != nil {
		return nil, err
	}

	tok, err := p.consume(lexer.KindInteger)
	if err != nil {
		return nil, err
	}

	if _, err = p.consume(lexer.KindEndType); err != nil {
		return nil, err
	}

	return element.Integer(tok.Number), nil
}

func (p *parser) parseString() (element.Element, error) {
	if _, err := p.consume(lexer.KindStringBegin); err != nil {
		return nil, err
	}

	if _, err := p.consume(lexer.KindSeparator); err != nil {
		return nil, err
	}

	tok, err := p.consume(lexer.KindString)
	if err != nil {
		return nil, err
	}

	return element.ByteString(tok.Literal), nil
}

// checkDepth rejects a container opened at the given depth if it is too deep,
// the whole container is skipped so that parsing resumes after it.
func (p *parser) checkDepth(open lexer.Token, depth int) error {
	if depth < p.maxDepth {
		return nil
	}

	for level := 1; level > 0; {
		switch p.advance().Kind {
		case lexer.KindList, lexer.KindDictionary, lexer.KindIntegerBegin:
			level++
		case lexer.KindEndType:
			level--
		case lexer.KindEndOfInput:
			level = 0
		}
	}

	return &SyntaxError{
		Kind:     ErrNestingTooDeep,
		Token:    open,
		MaxDepth: p.maxDepth,
	}
}

func (p *parser) peek() lexer.Token {
	if p.pos < len(p.tokens) {
		return p.tokens[p.pos]
	}

	// Tolerate a sequence without the final marker.
	eof := lexer.Token{Kind: lexer.KindEndOfInput, Line: 1, Column: lexer.EndOfLineColumn}
	if n := len(p.tokens); n != 0 {
		eof.Line = p.tokens[n-1].Line
	}

	return eof
}

// advance returns the current token and moves past it,
// it never moves past the end of input.
func (p *parser) advance() lexer.Token {
	tok := p.peek()
	if tok.Kind != lexer.KindEndOfInput {
		p.pos++
	}

	return tok
}

func (p *parser) consume(expected lexer.Kind) (lexer.Token, error) {
	tok := p.advance()
	if tok.Kind != expected {
		return tok, unexpected(tok, expected)
	}

	return tok, nil
}

func (p *parser) skipLines() {
	for p.peek().Kind == lexer.KindEndOfLine {
		p.pos++
	}
}

func (p *parser) report(err error) bool {
	p.errs++

	var se *SyntaxError
	if errors.As(err, &se) {
		p.logger.Trace("syntax error", "kind", se.Kind, "line", se.Token.Line, "column", se.Token.Column)
	}

	return p.sink.Report(err.Error())
}
