package image

import (
	"bufio"
	"io"
)

type token struct {
	text string
	line int
}

// lexer splits its input into maximal runs of non-whitespace bytes
type lexer struct {
	r    *bufio.Reader
	line int
	buf  []byte
}

func newLexer(r io.Reader) *lexer {
	return &lexer{
		r:    bufio.NewReader(r),
		line: 1,
	}
}

func isSpace(b byte) bool {
	switch b {
	case ' ', '\t', '\n', '\r':
		return true
	}
	return false
}

// next returns the next token or io.EOF once the input is exhausted. It
// never returns an empty token.
func (l *lexer) next() (token, error) {
	var b byte
	var err error

	for {
		if b, err = l.r.ReadByte(); err != nil {
			return token{}, err
		}
		if !isSpace(b) {
			break
		}
		if b == '\n' {
			l.line++
		}
	}

	l.buf = append(l.buf[:0], b)
	t := token{line: l.line}

	for {
		if b, err = l.r.ReadByte(); err != nil {
			if err == io.EOF {
				break
			}
			return token{}, err
		}
		if isSpace(b) {
			if b == '\n' {
				l.line++
			}
			break
		}
		l.buf = append(l.buf, b)
	}

	t.text = string(l.buf)
	return t, nil
}
