// The models command: list OpenRouter models that are free to use.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nimbuscode/nimbuscode/pkg/llm"
)

var modelsCmd = &cobra.Command{
	Use:   "models",
	Short: "List available free models from OpenRouter",
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

		client := llm.New(key, llm.WithLogger(appLogger()))
		spin := startSpinner("Fetching available models...")
		models, err := client.ListFreeModels(cmd.Context())
		spin.Stop()
		if err != nil {
			return err
		}

		if len(models) == 0 {
			warnColor.Println("No free models found")
			return nil
		}

		titleColor.Println("Free Models:")
		for _, m := range models {
			statusColor.Printf("  %s\n", m.ID)
			fmt.Printf("    Context: %s\n", contextLabel(m.ContextLength))
			fmt.Printf("    Description: %s\n\n", descriptionLabel(m.Description))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(modelsCmd)
}

// contextLabel renders a context length, with a sentinel for models that do
// not report one.
func contextLabel(length int) string {
	if length <= 0 {
		return "Unknown"
	}
	return fmt.Sprintf("%d", length)
}

// descriptionLabel substitutes a placeholder for empty descriptions.
func descriptionLabel(description string) string {
	if description == "" {
		return "No description"
	}
	return description
}
