// The improve command: review-and-rewrite of an existing file.
package main

import (
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/nimbuscode/nimbuscode/pkg/config"
	"github.com/nimbuscode/nimbuscode/pkg/prompt"
)

var improveSave string

var improveCmd = &cobra.Command{
	Use:   "improve <file>",
	Short: "Improve existing code with AI suggestions",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		file := args[0]
		build := func(config.Settings) (prompt.Pair, error) {
			code, err := readInputFile(file)
			if err != nil {
				return prompt.Pair{}, err
			}
			return prompt.Improve(code), nil
		}
		return runPromptCommand(cmd, build, promptOptions{
			Status:         "Analyzing and improving code...",
			Title:          "Code Improvements for " + filepath.Base(file),
			Save:           improveSave,
			SaveFirstBlock: true,
		})
	},
}

func init() {
	improveCmd.Flags().StringVar(&improveSave, "save", "", "Save the improved code to a file")
	rootCmd.AddCommand(improveCmd)
}
