// Package input adapts readline to the interpreter's line source interface.
package input

import (
	"errors"

	"github.com/chzyer/readline"

	"github.com/kevin-b-lockwood/shell/pkg/shell"
)

type Reader struct {
	rl *readline.Instance
}

func New(historyFile string) (*Reader, error) {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:          "$ ",
		HistoryFile:     historyFile,
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
	})

	if err != nil {
		return nil, err
	}

	return &Reader{rl: rl}, nil
}

// ReadLine blocks for one line. It returns io.EOF at end of input and
// shell.ErrInterrupted when the read was cancelled with ^C.
func (r *Reader) ReadLine(prompt string) (string, error) {
	r.rl.SetPrompt(prompt)

	line, err := r.rl.Readline()

	if errors.Is(err, readline.ErrInterrupt) {
		return "", shell.ErrInterrupted
	}

	return line, err
}

func (r *Reader) Close() error {
	return r.rl.Close()
}
