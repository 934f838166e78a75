// Command div11 asks for an integer and says whether it is divisible by 11.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/mattn/go-isatty"
	"github.com/pdxmph/todo/internal/divisibility"
	"github.com/pdxmph/todo/internal/logging"
	"github.com/pdxmph/todo/internal/tui"
)

func interactive(in, out *os.File) bool {
	return isatty.IsTerminal(in.Fd()) && isatty.IsTerminal(out.Fd())
}

func runInteractive(in io.Reader, out io.Writer) error {
	p := tea.NewProgram(tui.New(), tea.WithInput(in), tea.WithOutput(out))
	final, err := p.Run()
	if err != nil {
		return fmt.Errorf("running prompt: %w", err)
	}
	if _, ok := final.(tui.Model).Result(); !ok {
		return divisibility.ErrNoInput
	}
	return nil
}

func main() {
	logger, err := logging.New(os.Stderr, logging.DefaultOptions("div11"))
	if err != nil {
		log.Fatal(err)
	}

	if interactive(os.Stdin, os.Stdout) {
		err = runInteractive(os.Stdin, os.Stdout)
	} else {
		_, err = divisibility.Prompt(os.Stdin, os.Stdout)
	}

	if errors.Is(err, divisibility.ErrNoInput) {
		fmt.Println()
		os.Exit(1)
	}
	if err != nil {
		logger.Fatal("checking divisibility", "err", err)
	}
}
