// The mobile command: app-development guidance for a mobile platform.
package main

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/nimbuscode/nimbuscode/pkg/config"
	"github.com/nimbuscode/nimbuscode/pkg/prompt"
)

var (
	mobilePlatform string
	mobileSave     string
)

var mobileCmd = &cobra.Command{
	Use:   "mobile <description>...",
	Short: "Generate mobile app development code or guidance",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		description := strings.Join(args, " ")
		build := func(config.Settings) (prompt.Pair, error) {
			return prompt.Mobile(description, mobilePlatform), nil
		}
		return runPromptCommand(cmd, build, promptOptions{
			Status: "Generating mobile app guidance...",
			Title:  capitalize(prompt.PlatformDisplay(mobilePlatform)) + " App Development",
			Save:   mobileSave,
		})
	},
}

func init() {
	mobileCmd.Flags().StringVarP(&mobilePlatform, "platform", "p", "cross", "Mobile platform (ios, android, cross)")
	mobileCmd.Flags().StringVar(&mobileSave, "save", "", "Save the guidance to a file")
	rootCmd.AddCommand(mobileCmd)
}
