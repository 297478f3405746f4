// The generate command: code generation from a description.
package main

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/nimbuscode/nimbuscode/pkg/config"
	"github.com/nimbuscode/nimbuscode/pkg/prompt"
)

var (
	generateLanguage string
	generateSave     string
	generateExtract  bool
)

var generateCmd = &cobra.Command{
	Use:   "generate <description>...",
	Short: "Generate code based on a description",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		description := strings.Join(args, " ")
		build := func(config.Settings) (prompt.Pair, error) {
			return prompt.Generate(description, generateLanguage), nil
		}
		return runPromptCommand(cmd, build, promptOptions{
			Status:         "Generating code...",
			Title:          "Generated " + capitalize(generateLanguage) + " Code",
			Save:           generateSave,
			SaveFirstBlock: true,
			ExtractAll:     generateExtract,
		})
	},
}

func init() {
	generateCmd.Flags().StringVarP(&generateLanguage, "language", "l", "python", "Programming language")
	generateCmd.Flags().StringVar(&generateSave, "save", "", "Save the generated code to a file")
	generateCmd.Flags().BoolVarP(&generateExtract, "extract", "e", false, "Extract and save every code block")
	rootCmd.AddCommand(generateCmd)
}
