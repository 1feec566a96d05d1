package lexer

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode/utf8"

	hclog "github.com/hashicorp/go-hclog"

	"github.com/seal-io/bendump/pkg/diag"
	"github.com/seal-io/bendump/utils/logging"
)

// MaxLineSize bounds the length of a single input line.
const MaxLineSize = 64 << 20

// Scan reads the whole input and converts it into tokens,
// every lexical error is reported to the given sink.
//
// Scan returns an error wrapping diag.ErrInvalidInput if any error was reported,
// the tokens of such an input are never returned.
func Scan(r io.Reader, sink diag.Sink) ([]Token, error) {
	s := &scanner{
		sink:   sink,
		logger: logging.Named("lexer"),
	}

	return s.scan(r)
}

// ScanString is Scan over an in-memory document.
func ScanString(src string, sink diag.Sink) ([]Token, error) {
	return Scan(strings.NewReader(src), sink)
}

type scanner struct {
	sink   diag.Sink
	logger hclog.Logger

	tokens []Token
	errs   int

	line int
	src  string
}

func (s *scanner) scan(r io.Reader) ([]Token, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), MaxLineSize)

	for sc.Scan() {
		s.line++
		s.src = sc.Text()

		if !s.scanLine() {
			s.logger.Debug("scan stopped", "line", s.line, "errors", s.errs)
			return nil, diag.Failed("scan", s.errs, true)
		}

		s.emit(KindEndOfLine, EndOfLineColumn, "", 0)
	}

	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("failed to read input: %w", err)
	}

	s.line = max(s.line, 1)
	s.emit(KindEndOfInput, EndOfLineColumn, "", 0)

	if s.errs > 0 {
		return nil, diag.Failed("scan", s.errs, false)
	}

	s.logger.Trace("scanned", "lines", s.line, "tokens", len(s.tokens))

	return s.tokens, nil
}

// scanLine tokenizes the current line,
// returns false if the sink asked to stop.
func (s *scanner) scanLine() bool {
	var (
		src = s.src
		// afterSep is set when the next byte starts a string payload.
		afterSep bool
		strLen   int64
		// skipLen is the declared length of a string whose length literal was
		// rejected, -1 if the length is unknown.
		skipLen   int64
		lenFailed bool
	)

	for i := 0; i < len(src); {
		c := src[i]

		if afterSep {
			afterSep = false

			next, ok := s.scanString(i, strLen)
			if !ok {
				return false
			}

			i = next

			continue
		}

		if c != ':' {
			lenFailed = false
		}

		switch {
		case c == 'i':
			s.emit(KindIntegerBegin, i, "i", 0)

			next, _, ok := s.scanNumber(i+1, KindInteger)
			if !ok {
				return false
			}

			i = next
		case isDigit(c):
			emitted := len(s.tokens)

			next, n, ok := s.scanNumber(i, KindStringBegin)
			if !ok {
				return false
			}

			if len(s.tokens) == emitted {
				lenFailed, skipLen = true, n
			}

			i = next
		case c == ':':
			if lenFailed {
				// Nothing sensible follows a rejected length,
				// skip its payload without another report.
				lenFailed = false

				if skipLen < 0 || int64(len(src)-i-1) < skipLen {
					i = len(src)
				} else {
					i += 1 + int(skipLen)
				}

				continue
			}

			strLen = 0
			if l := s.last(); l.Kind == KindStringBegin {
				strLen = l.Number
			}

			s.emit(KindSeparator, i, ":", 0)
			afterSep = true
			i++
		case c == 'd':
			s.emit(KindDictionary, i, "d", 0)
			i++
		case c == 'l':
			s.emit(KindList, i, "l", 0)
			i++
		case c == 'e':
			s.emit(KindEndType, i, "e", 0)
			i++
		default:
			subject, size := charSubject(src[i:])
			if !s.report(ErrUnknownChar, i, subject) {
				return false
			}

			i += size
		}
	}

	if afterSep {
		// The declared payload is missing from the line.
		_, ok := s.scanString(len(src), strLen)
		return ok
	}

	return true
}

// scanNumber scans an integer literal (kind KindInteger) or a string length
// (kind KindStringBegin) starting at i, returns the offset to resume from and
// the parsed value, -1 if it could not be parsed.
func (s *scanner) scanNumber(i int, kind Kind) (int, int64, bool) {
	var (
		src = s.src
		j   = i
	)

	if kind == KindInteger && j < len(src) && src[j] == '-' {
		j++
	}

	digits := j
	for j < len(src) && isDigit(src[j]) {
		j++
	}

	lit := src[i:j]

	if j == digits {
		return j, -1, s.report(ErrIncorrectNumber, i, numberSubject(lit))
	}

	bitSize := 64
	if kind == KindStringBegin {
		bitSize = strconv.IntSize
	}

	v, err := strconv.ParseInt(lit, 10, bitSize)

	if hasLeadingZeros(lit) {
		if err != nil {
			v = -1
		}

		return j, v, s.report(ErrNumberWithLeadingZeros, i, lit)
	}

	if err != nil {
		return j, -1, s.report(ErrIncorrectNumber, i, lit)
	}

	s.emit(kind, i, lit, v)

	return j, v, true
}

// scanString consumes the payload of a string declared with length n,
// starting at i.
func (s *scanner) scanString(i int, n int64) (int, bool) {
	src := s.src

	if n <= 0 || int64(len(src)-i) < n {
		next := len(src)
		if n <= 0 {
			next = i
		}

		return next, s.report(ErrIncorrectStringLength, i, strconv.FormatInt(n, 10))
	}

	end := i + int(n)

	for p := i; p < end; p++ {
		if src[p] > maxASCII {
			subject, _ := charSubject(src[p:])

			// Resume on a character boundary after the declared span.
			for end < len(src) && !utf8.RuneStart(src[end]) {
				end++
			}

			return end, s.report(ErrUnknownChar, p, subject)
		}
	}

	s.emit(KindString, i, src[i:end], 0)

	return end, true
}

func (s *scanner) emit(kind Kind, col int, lit string, n int64) {
	s.tokens = append(s.tokens, Token{
		Kind:    kind,
		Line:    s.line,
		Column:  col,
		Literal: lit,
		Number:  n,
	})
}

func (s *scanner) last() Token {
	if len(s.tokens) == 0 {
		return Token{Kind: KindEndOfInput}
	}

	return s.tokens[len(s.tokens)-1]
}

func (s *scanner) report(kind ErrorKind, col int, subject string) bool {
	s.errs++

	err := &ScanError{
		Kind:    kind,
		Line:    s.line,
		Column:  col,
		Source:  s.src,
		Subject: subject,
	}
	s.logger.Trace("lexical error", "kind", kind, "line", s.line, "column", col)

	return s.sink.Report(err.Error())
}

const maxASCII = 0x7f

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func hasLeadingZeros(lit string) bool {
	digits := strings.TrimPrefix(lit, "-")

	return len(digits) != 0 && digits[0] == '0' && (len(digits) > 1 || len(digits) != len(lit))
}
