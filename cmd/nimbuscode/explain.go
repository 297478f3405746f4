// The explain command: educational breakdown of an existing file.
package main

import (
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/nimbuscode/nimbuscode/pkg/config"
	"github.com/nimbuscode/nimbuscode/pkg/prompt"
)

var explainCmd = &cobra.Command{
	Use:   "explain <file>",
	Short: "Explain code with detailed comments and documentation",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		file := args[0]
		build := func(config.Settings) (prompt.Pair, error) {
			code, err := readInputFile(file)
			if err != nil {
				return prompt.Pair{}, err
			}
			return prompt.Explain(code), nil
		}
		return runPromptCommand(cmd, build, promptOptions{
			Status: "Analyzing code...",
			Title:  "Code Explanation for " + filepath.Base(file),
		})
	},
}

func init() {
	rootCmd.AddCommand(explainCmd)
}
