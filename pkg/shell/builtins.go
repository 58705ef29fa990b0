package shell

import (
	"fmt"
	"os"
	"strings"
)

func (s *Shell) registerBuiltins() {

	s.builtins["echo"] = func(args []string, s *Shell) error {
		fmt.Fprintln(s.Out, strings.Join(args, " "))
		return nil
	}

	s.builtins["exit"] = func(args []string, s *Shell) error {
		return ErrExit
	}

	s.builtins["type"] = func(args []string, s *Shell) error {

		if len(args) == 0 {
			fmt.Fprintln(s.Out, "type: usage: type NAME")
			return nil
		}

		name := args[0]

		// check builts in
		if _, ok := s.builtins[name]; ok {
			fmt.Fprintln(s.Out, name, "is a shell builtin")
			return nil
		}

		if path, ok := s.Lookup(name); ok {
			fmt.Fprintln(s.Out, name, "is", path)
			return nil
		}

		fmt.Fprintln(s.Out, name+": not found")
		return nil
	}

	s.builtins["pwd"] = func(args []string, s *Shell) error {
		dir, err := os.Getwd()
		if err == nil {
			fmt.Fprintln(s.Out, dir)
		} else {
			fmt.Fprintln(s.Err, "error finding directory:", err)
		}

		return nil
	}

	s.builtins["cd"] = func(args []string, s *Shell) error {

		var requested *string

		if len(args) > 0 {
			// reject overlong arguments before any directory operation
			if len(args[0]) > s.cfg.MaxPathLen {
				fmt.Fprintln(s.Err, "cd:", ErrPathTooLong.Error())
				return nil
			}

			requested = &args[0]
		}

		if err := s.session.ChangeDir(requested, s.Out); err != nil {
			fmt.Fprintln(s.Err, "cd:", err)
		}

		return nil
	}

	s.builtins["jobs"] = func(args []string, s *Shell) error {

		for _, job := range s.jobs.Snapshot() {
			fmt.Fprintf(s.Out, "[%d] %d %s\t%s\n",
				job.Number, job.PID, job.State, strings.Join(job.Argv, " "))
		}

		return nil
	}
}
