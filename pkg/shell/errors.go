package shell

import "errors"

// exit error
var ErrExit = errors.New("exit")

var (
	ErrNotFound    = errors.New("not found")
	ErrInterrupted = errors.New("interrupted")

	// ErrTooManyArgs marks a line that overflowed the token limit; the
	// whole command is discarded and the loop continues.
	ErrTooManyArgs = errors.New("too many arguments")

	// ErrPathTooLong rejects a cd argument before any directory operation.
	ErrPathTooLong = errors.New("path too long")

	// ErrChangeDir wraps a failed chdir; no session or environment state
	// has been touched when it is returned.
	ErrChangeDir = errors.New("directory change failed")

	// ErrEnvUpdate wraps a failed PWD/OLDPWD update; the directory change
	// is rolled back before it is returned.
	ErrEnvUpdate = errors.New("environment update failed")

	// ErrExec marks a child that could not be started for reasons other
	// than resource exhaustion; the loop recovers and continues.
	ErrExec = errors.New("exec failed")

	// ErrSpawn is the one fatal error: process creation itself failed.
	ErrSpawn = errors.New("spawn failed")
)
