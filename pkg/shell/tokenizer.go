package shell

import (
	"io"
	"strings"
)

// DefaultMaxArgs is the most tokens a single line may produce.
const DefaultMaxArgs = 2048

// DefaultDelimiters split commands into words.
const DefaultDelimiters = " \t\n"

type DefaultTokenizer struct {
	delimiters string
	maxTokens  int
	newReader  func(string) io.RuneReader
	newBuilder func() *strings.Builder
}

func NewDefaultTokenizer(delimiters string, maxTokens int) *DefaultTokenizer {
	t := &DefaultTokenizer{
		delimiters: delimiters,
		maxTokens:  maxTokens,
		newReader: func(s string) io.RuneReader {
			return strings.NewReader(s)
		},
		newBuilder: func() *strings.Builder {
			return &strings.Builder{}
		},
	}

	return t
}

type tokenBuffer struct {
	builder *strings.Builder
}

func newTokenBuffer(builder *strings.Builder) *tokenBuffer {
	tokenBuffer := &tokenBuffer{
		builder: builder,
	}

	return tokenBuffer
}

func (tokenBuffer *tokenBuffer) isEmpty() bool {
	return tokenBuffer.builder.Len() == 0
}

func (tokenBuffer *tokenBuffer) appendRune(r rune) {
	tokenBuffer.builder.WriteRune(r)
}

func (tokenBuffer *tokenBuffer) flush() string {
	s := tokenBuffer.builder.String()
	tokenBuffer.builder.Reset()
	return s
}

// Tokenize splits line on any delimiter rune, collapsing runs so no empty
// tokens are produced. At most maxTokens-1 tokens are collected; the rest of
// the line is silently dropped and truncated reports whether any word (or part
// of one) was dropped that way. The caller decides what to do about it.
func (t *DefaultTokenizer) Tokenize(line string) ([]string, bool) {
	runeReader := t.newReader(line)
	tokenBuffer := newTokenBuffer(t.newBuilder())

	tokens := []string{}
	limit := t.maxTokens - 1

	for {
		ch, _, err := runeReader.ReadRune()

		if err == io.EOF {
			break
		}

		if err != nil {
			// strings.Reader never fails mid-string; treat like EOF
			break
		}

		if strings.ContainsRune(t.delimiters, ch) {
			if tokenBuffer.isEmpty() {
				continue
			}

			if len(tokens) == limit {
				return tokens, true
			}

			tokens = append(tokens, tokenBuffer.flush())
			continue
		}

		if len(tokens) == limit {
			// a new word is starting past the limit
			return tokens, true
		}

		tokenBuffer.appendRune(ch)
	}

	if !tokenBuffer.isEmpty() {
		tokens = append(tokens, tokenBuffer.flush())
	}

	return tokens, false
}
