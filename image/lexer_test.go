package image

import (
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLexer(t *testing.T) {
	tables := map[string]struct {
		input  string
		tokens []token
	}{
		"empty": {
			input: "",
		},
		"whitespace": {
			input: " \t\r\n\n ",
		},
		"single": {
			input:  "red",
			tokens: []token{{"red", 1}},
		},
		"collapse": {
			input: "  a\tb\n\n c  \r\n`",
			tokens: []token{
				{"a", 1},
				{"b", 1},
				{"c", 3},
				{"`", 4},
			},
		},
	}

	for name, table := range tables {
		t.Run(name, func(t *testing.T) {
			l := newLexer(strings.NewReader(table.input))
			var tokens []token
			for {
				tok, err := l.next()
				if err == io.EOF {
					break
				}
				require.Nil(t, err)
				assert.NotEmpty(t, tok.text)
				tokens = append(tokens, tok)
			}
			assert.Equal(t, table.tokens, tokens)

			// Stays at the end
			_, err := l.next()
			assert.Equal(t, io.EOF, err)
		})
	}
}
