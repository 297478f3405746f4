// The cloud command: deployment plans for a cloud provider.
package main

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/nimbuscode/nimbuscode/pkg/config"
	"github.com/nimbuscode/nimbuscode/pkg/prompt"
)

var (
	cloudProvider string
	cloudSave     string
)

var cloudCmd = &cobra.Command{
	Use:   "cloud <description>...",
	Short: "Generate cloud deployment code or instructions",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		description := strings.Join(args, " ")
		build := func(config.Settings) (prompt.Pair, error) {
			return prompt.Cloud(description, cloudProvider), nil
		}
		return runPromptCommand(cmd, build, promptOptions{
			Status: "Generating cloud deployment plan...",
			Title:  strings.ToUpper(cloudProvider) + " Deployment Plan",
			Save:   cloudSave,
		})
	},
}

func init() {
	cloudCmd.Flags().StringVarP(&cloudProvider, "provider", "p", "aws", "Cloud provider (aws, azure, gcp)")
	cloudCmd.Flags().StringVar(&cloudSave, "save", "", "Save the deployment plan to a file")
	rootCmd.AddCommand(cloudCmd)
}
