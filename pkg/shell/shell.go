package shell

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"

	"go.uber.org/zap"
	"golang.org/x/sys/unix"
)

// type Builtin
type Builtin func(args []string, s *Shell) error

// type Shell
type Shell struct {
	in        LineReader
	Out       io.Writer
	Err       io.Writer
	cfg       *Config
	log       *zap.Logger
	pathDirs  []string
	builtins  map[string]Builtin
	session   *Session
	jobs      *Jobs
	executor  Executor
	tokenizer Tokenizer
	prompt    func() string
	stdio     IOBindings
	fgPid     atomic.Int64
}

type Option func(s *Shell)

// WithConfig replaces the default configuration.
func WithConfig(cfg *Config) Option {
	return func(s *Shell) { s.cfg = cfg }
}

// WithLogger sets the diagnostic logger (a nop logger is the default).
func WithLogger(log *zap.Logger) Option {
	return func(s *Shell) { s.log = log }
}

// WithExecutor replaces the process executor.
func WithExecutor(executor Executor) Option {
	return func(s *Shell) { s.executor = executor }
}

// WithTokenizer replaces the line tokenizer.
func WithTokenizer(tokenizer Tokenizer) Option {
	return func(s *Shell) { s.tokenizer = tokenizer }
}

// WithPrompt sets the prompt renderer, called once per iteration.
func WithPrompt(prompt func() string) Option {
	return func(s *Shell) { s.prompt = prompt }
}

// WithChildIO sets the streams handed to spawned commands.
func WithChildIO(stdio IOBindings) Option {
	return func(s *Shell) { s.stdio = stdio }
}

// func New
func New(in LineReader, out, errw io.Writer, opts ...Option) *Shell {
	path := os.Getenv("PATH")
	var dirs []string

	if path != "" {
		dirs = strings.Split(path, string(os.PathListSeparator))
	}

	s := &Shell{
		in:       in,
		Out:      out,
		Err:      errw,
		cfg:      DefaultConfig(),
		log:      zap.NewNop(),
		pathDirs: dirs,
		builtins: make(map[string]Builtin),
		jobs:     NewJobs(),
		prompt:   func() string { return "$ " },
		stdio:    IOBindings{Stdout: out, Stderr: errw},
	}

	for _, opt := range opts {
		opt(s)
	}

	if s.executor == nil {
		s.executor = &DefaultExecutor{LookupFunc: s.Lookup}
	}

	if s.tokenizer == nil {
		s.tokenizer = NewDefaultTokenizer(DefaultDelimiters, s.cfg.MaxArgs)
	}

	if s.session == nil {
		s.session = NewSession(s.cfg)
	}

	s.registerBuiltins()
	return s
}

func (s *Shell) Session() *Session { return s.session }

func (s *Shell) Jobs() *Jobs { return s.jobs }

//func Run

// Run is the read-eval loop. It returns nil on exit or end of input and an
// error only when the loop cannot continue.
func (s *Shell) Run() error {
	for {
		line, err := s.in.ReadLine(s.prompt())

		if errors.Is(err, ErrInterrupted) {
			continue
		}

		if errors.Is(err, io.EOF) {
			return nil
		}

		if err != nil {
			return err
		}

		argv, truncated := s.tokenizer.Tokenize(line)

		if truncated {
			// the command is discarded, not partially run
			fmt.Fprintln(s.Err, ErrTooManyArgs.Error())
			s.log.Warn("input truncated", zap.Int("limit", s.cfg.MaxArgs))
			continue
		}

		if len(argv) == 0 {
			continue
		}

		// check built ins
		if fn, ok := s.builtins[argv[0]]; ok {
			if err := fn(argv[1:], s); err != nil {
				if errors.Is(err, ErrExit) {
					return nil
				}

				fmt.Fprintln(s.Err, "builtin error:", err)
			}
			continue
		}

		if err := s.spawn(argv); err != nil {
			return err
		}
	}
}

// spawn runs an external command. A single trailing bare & token marks the
// command as background and is stripped from the argv the program receives.
// Only a failure to create the child at all is returned; everything else is
// reported and recovered.
func (s *Shell) spawn(argv []string) error {
	background := argv[len(argv)-1] == "&"

	if background {
		argv = argv[:len(argv)-1]

		if len(argv) == 0 {
			fmt.Fprintln(s.Err, "missing command before &")
			return nil
		}
	}

	stdio := s.stdio
	if background {
		// background children do not share the interactive input
		stdio.Stdin = nil
	}

	handle, err := s.executor.Start(context.Background(), argv, stdio)

	if errors.Is(err, ErrNotFound) {
		fmt.Fprintln(s.Out, argv[0]+": command not found")
		return nil
	}

	if errors.Is(err, ErrSpawn) {
		fmt.Fprintln(s.Err, err)
		return err
	}

	if err != nil {
		fmt.Fprintln(s.Err, argv[0]+":", err)
		return nil
	}

	if background {
		job := s.jobs.Add(handle.PID, argv)
		fmt.Fprintf(s.Out, "[%d] %d\n", job.Number, job.PID)
		s.log.Debug("background job started",
			zap.String("id", job.ID),
			zap.Int("pid", job.PID))

		go func() {
			code := handle.Wait()
			s.jobs.Finish(job.ID, code)
			s.log.Debug("background job finished",
				zap.String("id", job.ID),
				zap.Int("code", code))
		}()

		return nil
	}

	s.fgPid.Store(int64(handle.PID))
	code := handle.Wait()
	s.fgPid.Store(0)

	s.log.Debug("command exited",
		zap.String("command", argv[0]),
		zap.Int("code", code))

	return nil
}

// InterruptForeground delivers SIGINT to the foreground child, if any, and
// reports whether there was one to interrupt.
func (s *Shell) InterruptForeground() bool {
	pid := s.fgPid.Load()

	if pid <= 0 {
		return false
	}

	_ = unix.Kill(int(pid), unix.SIGINT)
	return true
}

// func Lookup
func (s *Shell) Lookup(name string) (string, bool) {

	for _, dir := range s.pathDirs {

		pathToCheck := filepath.Join(dir, name)

		if info, err := os.Stat(pathToCheck); err == nil {
			if info.Mode().IsRegular() && info.Mode()&0111 != 0 {
				return pathToCheck, true
			}
		}
	}

	return "", false

}
