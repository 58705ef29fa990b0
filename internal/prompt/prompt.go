// Package prompt renders the two-line interactive prompt:
//
//	╭─ user@host cwd
//	╰─ %
//
// The working directory collapses to ~ when it equals the home directory and
// the mark switches to # for root.
package prompt

import (
	"fmt"
	"os"
	"os/user"
)

type Info struct {
	Username string
	Hostname string
	Dir      string
	Root     bool
}

// Current gathers the identity and directory shown in the prompt. Lookups
// that fail degrade to placeholders rather than breaking the prompt.
func Current(home string) Info {
	username := "ERROR"
	root := false

	if u, err := user.Current(); err == nil {
		username = u.Username
		root = u.Uid == "0"
	}

	hostname, err := os.Hostname()
	if err != nil {
		hostname = "localhost"
	}

	dir, err := os.Getwd()
	if err != nil {
		dir = "?"
	}

	return Info{
		Username: username,
		Hostname: hostname,
		Dir:      Abbreviate(dir, home),
		Root:     root,
	}
}

// Abbreviate collapses dir to ~ when it is exactly the home directory.
func Abbreviate(dir, home string) string {
	if home != "" && dir == home {
		return "~"
	}

	return dir
}

func mark(root bool) string {
	if root {
		return "#"
	}

	return "%"
}

// Render formats the prompt, with ANSI styling when color is set.
func Render(info Info, color bool) string {
	if !color {
		return fmt.Sprintf("╭─%s@%s %s \n╰─%s ",
			info.Username, info.Hostname, info.Dir, mark(info.Root))
	}

	return fmt.Sprintf("\033[1m╭─\033[0m\033[92;1m%s@%s\033[0m \033[34;1m%s\033[0m \n\033[1m╰─\033[0m\033[1m%s\033[0m ",
		info.Username, info.Hostname, info.Dir, mark(info.Root))
}
