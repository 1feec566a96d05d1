package parser

import (
	"fmt"

	"github.com/seal-io/bendump/pkg/lexer"
)

// ErrorKind classifies syntactic errors.
type ErrorKind uint8

const (
	ErrUnexpectedToken ErrorKind = iota
	ErrBrokenKeyOrder
	ErrNestingTooDeep
)

func (k ErrorKind) String() string {
	switch k {
	case ErrUnexpectedToken:
		return "UnexpectedToken"
	case ErrBrokenKeyOrder:
		return "BrokenKeyOrder"
	case ErrNestingTooDeep:
		return "NestingTooDeep"
	}

	return fmt.Sprintf("ErrorKind(%d)", k)
}

// SyntaxError describes a grammar violation anchored at a token,
// its Error method renders the message handed to the diagnostic sink.
type SyntaxError struct {
	Kind  ErrorKind
	Token lexer.Token
	// Expected lists the acceptable kinds of an ErrUnexpectedToken.
	Expected []lexer.Kind
	// MaxDepth is the exceeded bound of an ErrNestingTooDeep.
	MaxDepth int
}

func (e *SyntaxError) Error() string {
	switch e.Kind {
	case ErrUnexpectedToken:
		return fmt.Sprintf("%s\nExpected tokens: %s,\nActual: %s",
			e.Token.Position(), lexer.Kinds(e.Expected...), e.Token.Kind)
	case ErrBrokenKeyOrder:
		return e.Token.Position() + "\nThe lexicographic order in the dictionary is broken"
	case ErrNestingTooDeep:
		return fmt.Sprintf("%s\nNesting is deeper than %d levels", e.Token.Position(), e.MaxDepth)
	}

	return e.Token.Position() + "\n" + e.Kind.String()
}

func unexpected(tok lexer.Token, expected ...lexer.Kind) *SyntaxError {
	return &SyntaxError{
		Kind:     ErrUnexpectedToken,
		Token:    tok,
		Expected: expected,
	}
}
