// Terminal rendering: markdown output, request spinner, status colors.
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/glamour"
	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/schollz/progressbar/v3"
)

var (
	statusColor = color.New(color.FgGreen)
	warnColor   = color.New(color.FgYellow)
	errColor    = color.New(color.FgRed)
	titleColor  = color.New(color.FgBlue, color.Bold)
)

// markdownRenderer renders replies for terminal display. Nil when the
// renderer could not be initialized; output falls back to plain text.
var markdownRenderer *glamour.TermRenderer

func init() {
	var err error
	markdownRenderer, err = glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(100),
	)
	if err != nil {
		markdownRenderer = nil
	}
}

// renderMarkdown renders markdown when possible, returning the input
// unchanged on any failure.
func renderMarkdown(content string) string {
	if markdownRenderer == nil {
		return content
	}
	rendered, err := markdownRenderer.Render(content)
	if err != nil {
		return content
	}
	return rendered
}

// stdoutIsTTY reports whether stdout is a terminal.
func stdoutIsTTY() bool {
	return isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())
}

// displayReply prints a reply, rendering markdown only on a TTY so piped
// output stays clean.
func displayReply(title, reply string) {
	if !stdoutIsTTY() {
		fmt.Println(reply)
		return
	}
	titleColor.Println(title)
	fmt.Print(renderMarkdown(reply))
}

// spinner animates a status line on stderr while a request is in flight.
// A nil bar means output is piped and nothing is drawn.
type spinner struct {
	bar  *progressbar.ProgressBar
	done chan struct{}
}

// startSpinner begins animating the given status description.
func startSpinner(description string) *spinner {
	if !isatty.IsTerminal(os.Stderr.Fd()) {
		return &spinner{}
	}
	bar := progressbar.NewOptions(-1,
		progressbar.OptionSetDescription(description),
		progressbar.OptionSetWriter(os.Stderr),
		progressbar.OptionSpinnerType(14),
		progressbar.OptionClearOnFinish(),
	)
	s := &spinner{bar: bar, done: make(chan struct{})}
	go func() {
		ticker := time.NewTicker(100 * time.Millisecond)
		defer ticker.Stop()
		for {
			select {
			case <-s.done:
				return
			case <-ticker.C:
				_ = bar.Add(1)
			}
		}
	}()
	return s
}

// Stop clears the spinner. Safe to call on a no-op spinner.
func (s *spinner) Stop() {
	if s.bar == nil {
		return
	}
	close(s.done)
	_ = s.bar.Finish()
}
