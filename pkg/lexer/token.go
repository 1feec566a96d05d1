package lexer

import (
	"fmt"
	"strings"
)

// Kind represents the type of token identified by the scanner.
type Kind uint8

const (
	KindList         Kind = iota // l
	KindDictionary               // d
	KindStringBegin              // declared string length
	KindSeparator                // :
	KindString                   // string payload
	KindIntegerBegin             // i
	KindInteger                  // integer literal
	KindEndType                  // e
	KindEndOfLine
	KindEndOfInput
)

var kindNames = [...]string{
	KindList:         "List",
	KindDictionary:   "Dictionary",
	KindStringBegin:  "StringBegin",
	KindSeparator:    "Separator",
	KindString:       "String",
	KindIntegerBegin: "IntegerBegin",
	KindInteger:      "Integer",
	KindEndType:      "EndType",
	KindEndOfLine:    "EndOfLine",
	KindEndOfInput:   "EndOfInput",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}

	return fmt.Sprintf("Kind(%d)", k)
}

// Kinds formats a set of kinds as "[A, B]".
func Kinds(ks ...Kind) string {
	ss := make([]string, len(ks))
	for i := range ks {
		ss[i] = ks[i].String()
	}

	return "[" + strings.Join(ss, ", ") + "]"
}

// EndOfLineColumn is the column of tokens that mark the end of a line.
const EndOfLineColumn = -1

// Token represents a lexical unit pointing back to the source.
type Token struct {
	Kind Kind
	// Line is 1-based.
	Line int
	// Column is the 0-based byte offset in the line,
	// or EndOfLineColumn.
	Column int
	// Literal is the raw text of the token.
	Literal string
	// Number holds the parsed value of KindInteger and KindStringBegin tokens.
	Number int64
}

// Position formats the location of the token for diagnostics.
func (t Token) Position() string {
	if t.Column == EndOfLineColumn {
		return fmt.Sprintf("End of line %d", t.Line)
	}

	return fmt.Sprintf("Line %d, position: %d", t.Line, t.Column+1)
}

func (t Token) String() string {
	if t.Literal == "" {
		return fmt.Sprintf("%s@%d:%d", t.Kind, t.Line, t.Column)
	}

	return fmt.Sprintf("%s(%q)@%d:%d", t.Kind, t.Literal, t.Line, t.Column)
}
