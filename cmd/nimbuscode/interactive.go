// The interactive command: a stateful chat session in the terminal.
package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/peterh/liner"
	"github.com/spf13/cobra"

	"github.com/nimbuscode/nimbuscode/pkg/llm"
	"github.com/nimbuscode/nimbuscode/pkg/prompt"
	"github.com/nimbuscode/nimbuscode/pkg/session"
)

var interactiveCmd = &cobra.Command{
	Use:   "interactive",
	Short: "Start an interactive coding session with the AI",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		settings, err := loadSettings()
		if err != nil {
			return err
		}
		key, err := requireKey(settings)
		if err != nil {
			return err
		}

		reader, closeReader := newLineReader()
		defer closeReader()

		titleColor.Println("NimbusCode Interactive Mode")
		fmt.Println("Type your questions or 'exit' to quit.")
		fmt.Println()

		display := func(reply string) string { return reply }
		if stdoutIsTTY() {
			display = renderMarkdown
		}

		sess, err := session.New(session.Options{
			Completer:    llm.New(key, llm.WithLogger(appLogger())),
			Reader:       reader,
			Out:          os.Stdout,
			Display:      display,
			Settings:     settings,
			SystemPrompt: prompt.InteractiveSystem,
			Logger:       appLogger(),
		})
		if err != nil {
			return err
		}
		return sess.Run(cmd.Context())
	},
}

func init() {
	rootCmd.AddCommand(interactiveCmd)
}

// newLineReader picks liner on a terminal (history, Ctrl-C as a graceful
// abort) and a plain buffered reader when input is piped.
func newLineReader() (session.LineReader, func()) {
	if isatty.IsTerminal(os.Stdin.Fd()) {
		state := liner.NewLiner()
		state.SetCtrlCAborts(true)
		return &linerReader{state: state}, func() { _ = state.Close() }
	}
	return &bufioReader{scanner: bufio.NewScanner(os.Stdin)}, func() {}
}

// linerReader adapts liner to the session's LineReader.
type linerReader struct {
	state *liner.State
}

func (r *linerReader) ReadLine(promptText string) (string, error) {
	line, err := r.state.Prompt(promptText)
	if errors.Is(err, liner.ErrPromptAborted) {
		return "", session.ErrInterrupted
	}
	if err != nil {
		return "", err
	}
	if strings.TrimSpace(line) != "" {
		r.state.AppendHistory(line)
	}
	return line, nil
}

// bufioReader reads lines from piped stdin.
type bufioReader struct {
	scanner *bufio.Scanner
}

func (r *bufioReader) ReadLine(promptText string) (string, error) {
	fmt.Print(promptText)
	if !r.scanner.Scan() {
		if err := r.scanner.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return r.scanner.Text(), nil
}
