// Shared request/render/save pipeline used by every prompt command.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"unicode"

	"github.com/spf13/cobra"

	"github.com/nimbuscode/nimbuscode/pkg/config"
	"github.com/nimbuscode/nimbuscode/pkg/llm"
	"github.com/nimbuscode/nimbuscode/pkg/markdown"
	"github.com/nimbuscode/nimbuscode/pkg/prompt"
)

// templateFunc builds the prompt pair for one command once settings are
// loaded. It returns an error for unreadable input files.
type templateFunc func(settings config.Settings) (prompt.Pair, error)

// promptOptions carries the per-command rendering and save behavior.
type promptOptions struct {
	// Status is the spinner text shown while the request is in flight.
	Status string
	// Title heads the rendered reply on a TTY.
	Title string
	// Save is the optional output path.
	Save string
	// SaveFirstBlock saves the first extracted code block instead of the
	// full reply (improve, generate).
	SaveFirstBlock bool
	// ExtractAll writes every code block to numbered files (ask, generate).
	ExtractAll bool
	// Model overrides the configured model for this invocation.
	Model string
}

// runPromptCommand executes the pipeline shared by ask, generate, improve,
// explain, cloud, and mobile: load settings, resolve the key, build the
// prompt, call the completion endpoint, render, and optionally save.
//
// A transport failure becomes an inline "Error: ..." reply that is still
// rendered (and saved, if requested); the command itself succeeds.
func runPromptCommand(cmd *cobra.Command, build templateFunc, opts promptOptions) error {
	settings, err := loadSettings()
	if err != nil {
		return err
	}
	key, err := requireKey(settings)
	if err != nil {
		return err
	}
	if opts.Model != "" {
		settings.Model = opts.Model
	}

	pair, err := build(settings)
	if err != nil {
		return err
	}

	client := llm.New(key, llm.WithLogger(appLogger()))
	if opts.Status == "" {
		opts.Status = "Thinking..."
	}
	spin := startSpinner(opts.Status)
	reply, err := client.Complete(cmd.Context(), pair.User, pair.System, settings)
	spin.Stop()
	if err != nil {
		reply = "Error: " + err.Error()
	}

	if opts.Title == "" {
		opts.Title = "NimbusCode"
	}
	displayReply(opts.Title, reply)

	if opts.Save != "" {
		saveReply(reply, opts.Save, opts.SaveFirstBlock)
	}
	if opts.ExtractAll {
		extractAllBlocks(reply, ".")
	}
	return nil
}

// saveReply writes the reply (or its first code block) to path. Failures
// are reported and do not fail the command.
func saveReply(reply, path string, firstBlockOnly bool) {
	content := reply
	label := "Response"
	if firstBlockOnly {
		blocks := markdown.ExtractCodeBlocks(reply)
		if len(blocks) == 0 {
			warnColor.Println("No code blocks found in the response")
			return
		}
		content = blocks[0]
		label = "Code"
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		errColor.Fprintf(os.Stderr, "Failed to save to %s: %v\n", path, err)
		return
	}
	statusColor.Printf("%s saved to %s\n", label, path)
}

// extractAllBlocks writes every code block in the reply to numbered files
// under dir.
func extractAllBlocks(reply, dir string) {
	blocks := markdown.ExtractCodeBlocks(reply)
	if len(blocks) == 0 {
		warnColor.Println("No code blocks found in the response")
		return
	}
	for i, block := range blocks {
		name := filepath.Join(dir, fmt.Sprintf("code_block_%d.txt", i+1))
		if err := os.WriteFile(name, []byte(block), 0o644); err != nil {
			errColor.Fprintf(os.Stderr, "Failed to save %s: %v\n", name, err)
			continue
		}
		statusColor.Printf("Code block saved to %s\n", name)
	}
}

// readInputFile reads a file whose content feeds a prompt. The error carries
// the path for the user-facing message.
func readInputFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", path, err)
	}
	return string(data), nil
}

// capitalize upper-cases the first rune only, for display titles.
func capitalize(s string) string {
	if s == "" {
		return s
	}
	runes := []rune(s)
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}
