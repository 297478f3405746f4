// The config command: persist API key, model, and sampling parameters.
package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

var (
	configAPIKey      string
	configModel       string
	configMaxTokens   int
	configTemperature float64
	configShow        bool
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Configure NimbusCode settings",
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := newStore()
		if err != nil {
			return err
		}
		settings, err := store.Load()
		if err != nil {
			return err
		}

		if configShow {
			display := settings
			display.APIKey = maskKey(display.APIKey)
			out, err := json.MarshalIndent(display, "", "  ")
			if err != nil {
				return fmt.Errorf("encoding settings: %w", err)
			}
			fmt.Println(string(out))
			return nil
		}

		// Mutate only the flags the user actually set, so zero values can
		// be stored deliberately.
		flags := cmd.Flags()
		if flags.Changed("api-key") {
			settings.APIKey = configAPIKey
		}
		if flags.Changed("model") {
			settings.Model = configModel
		}
		if flags.Changed("max-tokens") {
			settings.MaxTokens = configMaxTokens
		}
		if flags.Changed("temperature") {
			settings.Temperature = configTemperature
		}

		if err := store.Save(settings); err != nil {
			return err
		}
		statusColor.Println("Configuration updated successfully")
		return nil
	},
}

func init() {
	configCmd.Flags().StringVar(&configAPIKey, "api-key", "", "Set the OpenRouter API key")
	configCmd.Flags().StringVar(&configModel, "model", "", "Set the default model")
	configCmd.Flags().IntVar(&configMaxTokens, "max-tokens", 0, "Set the maximum tokens")
	configCmd.Flags().Float64Var(&configTemperature, "temperature", 0, "Set the temperature")
	configCmd.Flags().BoolVar(&configShow, "show", false, "Show the current configuration")
	rootCmd.AddCommand(configCmd)
}

// maskKey hides all but the last four characters of a key for display.
func maskKey(key string) string {
	if key == "" {
		return ""
	}
	tail := key
	if len(key) > 4 {
		tail = key[len(key)-4:]
	}
	return "********" + tail
}
