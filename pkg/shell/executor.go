package shell

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os/exec"
	"syscall"
)

type IOBindings struct {
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// Handle identifies a started child and its pending wait. Every child has
// exactly one waiter: the loop itself for a foreground command, a reaper
// goroutine for a background one. That keeps "wait for this specific pid"
// and "detach and reap" from ever competing for the same termination.
type Handle struct {
	PID  int
	wait func() int
}

// Wait blocks until the child exits and returns its exit code. It must be
// called exactly once per handle.
func (h *Handle) Wait() int {
	return h.wait()
}

type DefaultExecutor struct {
	LookupFunc func(name string) (string, bool)
}

func (e *DefaultExecutor) Start(ctx context.Context, argv []string, io IOBindings) (*Handle, error) {
	path, ok := e.LookupFunc(argv[0])

	if !ok {
		return nil, ErrNotFound
	}

	externalCmd := exec.CommandContext(ctx, path, argv[1:]...)
	// argv[0] stays exactly what the user typed
	externalCmd.Args = append([]string{argv[0]}, argv[1:]...)
	externalCmd.Stdin = io.Stdin
	externalCmd.Stdout = io.Stdout
	externalCmd.Stderr = io.Stderr

	if err := externalCmd.Start(); err != nil {
		// only running out of processes or memory is fork-level failure
		if errors.Is(err, syscall.EAGAIN) || errors.Is(err, syscall.ENOMEM) {
			return nil, fmt.Errorf("%w: %v", ErrSpawn, err)
		}

		return nil, fmt.Errorf("%w: %v", ErrExec, err)
	}

	return &Handle{
		PID: externalCmd.Process.Pid,
		wait: func() int {
			if err := externalCmd.Wait(); err != nil {
				if exitErr, ok := err.(*exec.ExitError); ok {
					return exitErr.ExitCode()
				}

				return 1
			}

			return 0
		},
	}, nil
}
