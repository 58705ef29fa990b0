package shell

import (
	"context"
)

// LineReader supplies one line per loop iteration. The production
// implementation wraps readline; tests feed scripted lines.
type LineReader interface {
	ReadLine(prompt string) (string, error)
}

type Tokenizer interface {
	Tokenize(line string) (tokens []string, truncated bool)
}

type Executor interface {
	Start(ctx context.Context, argv []string, io IOBindings) (*Handle, error)
}
