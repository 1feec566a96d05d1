package lexer

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// ErrorKind classifies lexical errors.
type ErrorKind uint8

const (
	ErrUnknownChar ErrorKind = iota
	ErrIncorrectNumber
	ErrIncorrectStringLength
	ErrNumberWithLeadingZeros
)

func (k ErrorKind) String() string {
	switch k {
	case ErrUnknownChar:
		return "UnknownChar"
	case ErrIncorrectNumber:
		return "IncorrectNumber"
	case ErrIncorrectStringLength:
		return "IncorrectStringLength"
	case ErrNumberWithLeadingZeros:
		return "NumberWithLeadingZeros"
	}

	return fmt.Sprintf("ErrorKind(%d)", k)
}

// ScanError describes a lexical error, its Error method renders the
// message handed to the diagnostic sink.
type ScanError struct {
	Kind ErrorKind
	// Line is 1-based, Column is the 0-based byte offset in Source.
	Line   int
	Column int
	// Source is the whole line the error was found in.
	Source string
	// Subject is the offending character, literal or declared length.
	Subject string
}

func (e *ScanError) Error() string {
	var head string

	switch e.Kind {
	case ErrUnknownChar:
		head = fmt.Sprintf("Unknown char '%s' at line %d:", e.Subject, e.Line)
	case ErrIncorrectNumber:
		head = fmt.Sprintf("Incorrect number %s at line %d:", e.Subject, e.Line)
	case ErrIncorrectStringLength:
		head = fmt.Sprintf("Expected string of length %s at line %d:", e.Subject, e.Line)
	case ErrNumberWithLeadingZeros:
		head = fmt.Sprintf("Number %s cannot have leading zeros at line %d:", e.Subject, e.Line)
	default:
		head = fmt.Sprintf("%s at line %d:", e.Kind, e.Line)
	}

	return head + "\n" + e.Source + "\n" + strings.Repeat(" ", e.caret()) + "^--- here"
}

// caret counts runes so the marker lines up under multibyte characters.
func (e *ScanError) caret() int {
	col := e.Column
	if col > len(e.Source) {
		col = len(e.Source)
	}

	return utf8.RuneCountInString(e.Source[:col])
}

// charSubject renders the character at the start of s,
// invalid UTF-8 is shown as an escaped byte.
func charSubject(s string) (string, int) {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError && size <= 1 {
		if len(s) == 0 {
			return "", 0
		}

		return fmt.Sprintf("\\x%02x", s[0]), 1
	}

	return string(r), size
}

func numberSubject(lit string) string {
	if lit == "" {
		return "''"
	}

	return lit
}
