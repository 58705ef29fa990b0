package main

import (
	"log"
	"os"
	"os/signal"
	"path/filepath"

	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/kevin-b-lockwood/shell/internal/input"
	"github.com/kevin-b-lockwood/shell/internal/prompt"
	"github.com/kevin-b-lockwood/shell/pkg/shell"
)

func main() {

	cfg, err := shell.LoadConfig(configPath())
	if err != nil {
		log.Fatal(err)
	}

	logger := zap.NewNop()
	if os.Getenv("SHELL_DEBUG") != "" {
		if dev, err := zap.NewDevelopment(); err == nil {
			logger = dev
		}
	}
	defer logger.Sync()

	in, err := input.New(cfg.HistoryFile)
	if err != nil {
		log.Fatal(err)
	}
	defer in.Close()

	color := cfg.Color && term.IsTerminal(int(os.Stdout.Fd()))
	home := os.Getenv("HOME")

	s := shell.New(in, os.Stdout, os.Stderr,
		shell.WithConfig(cfg),
		shell.WithLogger(logger),
		shell.WithPrompt(func() string {
			return prompt.Render(prompt.Current(home), color)
		}),
		shell.WithChildIO(shell.IOBindings{
			Stdin:  os.Stdin,
			Stdout: os.Stdout,
			Stderr: os.Stderr,
		}),
	)

	// ^C interrupts the foreground command, never the interpreter itself;
	// with nothing running, readline redraws the prompt on its own.
	sigc := make(chan os.Signal, 1)
	signal.Notify(sigc, os.Interrupt)
	go func() {
		for range sigc {
			s.InterruptForeground()
		}
	}()

	if err := s.Run(); err != nil {
		log.Fatal(err)
	}

}

func configPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".gshrc.yaml"
	}

	return filepath.Join(home, ".gshrc.yaml")
}
