package shell

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTokenizer_Tokenize(t *testing.T) {

	// Table-driven test: each case has a name, input, limit, expected tokens
	// and expected truncation flag.
	tests := []struct {
		name       string
		input      string
		delimiters string
		maxTokens  int
		expected   []string
		truncated  bool
	}{
		{
			name:      "simple command",
			input:     "echo hello",
			maxTokens: 16,
			expected:  []string{"echo", "hello"},
		},
		{
			name:      "command with multiple arguments",
			input:     "ls -la /home/user",
			maxTokens: 16,
			expected:  []string{"ls", "-la", "/home/user"},
		},
		{
			name:      "empty input",
			input:     "",
			maxTokens: 16,
			expected:  []string{},
		},
		{
			name:      "only delimiters",
			input:     "   \t  \n  ",
			maxTokens: 16,
			expected:  []string{},
		},
		{
			name:      "consecutive delimiters collapse",
			input:     "echo    hello\t\tworld",
			maxTokens: 16,
			expected:  []string{"echo", "hello", "world"},
		},
		{
			name:      "trailing newline",
			input:     "echo hello\n",
			maxTokens: 16,
			expected:  []string{"echo", "hello"},
		},
		{
			name:      "token exactly at the boundary",
			input:     "a b",
			maxTokens: 3,
			expected:  []string{"a", "b"},
		},
		{
			name:      "boundary token followed by delimiters only",
			input:     "a b   \n",
			maxTokens: 3,
			expected:  []string{"a", "b"},
		},
		{
			name:      "one token past the limit",
			input:     "a b c",
			maxTokens: 3,
			expected:  []string{"a", "b"},
			truncated: true,
		},
		{
			name:      "overflow discards the remainder",
			input:     "a b c d e f",
			maxTokens: 3,
			expected:  []string{"a", "b"},
			truncated: true,
		},
		{
			name:      "limit of one collects nothing",
			input:     "a",
			maxTokens: 1,
			expected:  []string{},
			truncated: true,
		},
		{
			name:       "slash delimiter splits paths",
			input:      "/a//b/",
			delimiters: "/",
			maxTokens:  16,
			expected:   []string{"a", "b"},
		},
	}

	for _, tt := range tests {

		t.Run(tt.name, func(t *testing.T) {

			delimiters := tt.delimiters
			if delimiters == "" {
				delimiters = DefaultDelimiters
			}

			tokenizer := NewDefaultTokenizer(delimiters, tt.maxTokens)
			tokens, truncated := tokenizer.Tokenize(tt.input)

			assert.Equal(t, tt.expected, tokens)
			assert.Equal(t, tt.truncated, truncated)

		})

	}

}

func TestTokenizer_NeverExceedsLimit(t *testing.T) {

	tokenizer := NewDefaultTokenizer(DefaultDelimiters, 5)

	inputs := []string{
		"a b c d e f g h",
		"one",
		"",
		"  spaced   out   input   here   now  ",
	}

	for _, input := range inputs {
		tokens, _ := tokenizer.Tokenize(input)
		assert.LessOrEqual(t, len(tokens), 4, "input %q", input)
	}

}
