package shell

import (
	"fmt"
	"io"
	"os"
)

// Session tracks the directory state the interpreter mutates: the home
// directory and the previously visited directory. The current directory is
// queried fresh from the process each time, never cached.
type Session struct {
	home     string
	previous string
	maxPath  int
}

func NewSession(cfg *Config) *Session {
	s := &Session{
		home:     os.Getenv("HOME"),
		previous: os.Getenv("OLDPWD"),
		maxPath:  cfg.MaxPathLen,
	}

	if s.previous == "" {
		if wd, err := os.Getwd(); err == nil {
			s.previous = wd
		}
	}

	return s
}

func (s *Session) Home() string { return s.home }

func (s *Session) Previous() string { return s.previous }

// ChangeDir resolves requested against the current session state and applies
// it. The directory change and both variable updates form one transaction: on
// any failure the process working directory, the session and the environment
// are left exactly as they were.
func (s *Session) ChangeDir(requested *string, out io.Writer) error {
	current, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrChangeDir, err)
	}

	resolution, err := s.Resolve(current, requested)
	if err != nil {
		return err
	}

	if err := os.Chdir(resolution.Path); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrChangeDir, resolution.Path, err)
	}

	if err := s.commitVars(current, resolution.Path); err != nil {
		// undo the chdir so no partial state survives
		_ = os.Chdir(current)
		return err
	}

	s.previous = current

	if resolution.Echo {
		fmt.Fprintln(out, resolution.Path)
	}

	return nil
}

func (s *Session) commitVars(oldDir, newDir string) error {
	savedOldpwd, hadOldpwd := os.LookupEnv("OLDPWD")

	if err := os.Setenv("OLDPWD", oldDir); err != nil {
		return fmt.Errorf("%w: OLDPWD: %v", ErrEnvUpdate, err)
	}

	if err := os.Setenv("PWD", newDir); err != nil {
		if hadOldpwd {
			_ = os.Setenv("OLDPWD", savedOldpwd)
		} else {
			_ = os.Unsetenv("OLDPWD")
		}

		return fmt.Errorf("%w: PWD: %v", ErrEnvUpdate, err)
	}

	return nil
}
