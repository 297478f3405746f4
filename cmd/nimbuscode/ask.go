// The ask command: free-form questions with optional file context.
package main

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/nimbuscode/nimbuscode/pkg/config"
	"github.com/nimbuscode/nimbuscode/pkg/prompt"
)

var (
	askFile    string
	askSystem  string
	askSave    string
	askExtract bool
	askModel   string
)

var askCmd = &cobra.Command{
	Use:   "ask <prompt>...",
	Short: "Ask the AI a coding question",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		question := strings.Join(args, " ")
		build := func(config.Settings) (prompt.Pair, error) {
			var fileContent string
			if askFile != "" {
				content, err := readInputFile(askFile)
				if err != nil {
					return prompt.Pair{}, err
				}
				fileContent = content
			}
			return prompt.Ask(question, fileContent, askSystem), nil
		}
		return runPromptCommand(cmd, build, promptOptions{
			Save:       askSave,
			ExtractAll: askExtract,
			Model:      askModel,
		})
	},
}

func init() {
	askCmd.Flags().StringVarP(&askFile, "file", "f", "", "File to use as context")
	askCmd.Flags().StringVarP(&askSystem, "system", "s", "", "System prompt to use")
	askCmd.Flags().StringVar(&askSave, "save", "", "Save the response to a file")
	askCmd.Flags().BoolVarP(&askExtract, "extract", "e", false, "Extract and save code blocks")
	askCmd.Flags().StringVarP(&askModel, "model", "m", "", "Model to use for this request")
	rootCmd.AddCommand(askCmd)
}
