// Command registration and shared wiring for the nimbuscode CLI.
package main

import (
	"errors"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/nimbuscode/nimbuscode/pkg/config"
	"github.com/nimbuscode/nimbuscode/pkg/logger"
)

var version = "dev"

var (
	flagVerbose   bool
	flagConfigDir string
)

// errMissingKey aborts any command that needs a credential it cannot resolve.
var errMissingKey = errors.New("API key not found. Please set it with 'nimbuscode config --api-key YOUR_API_KEY'")

var rootCmd = &cobra.Command{
	Use:   "nimbuscode",
	Short: "NimbusCode - AI coding assistant",
	Long: `NimbusCode is a lightweight AI coding assistant using OpenRouter's free models.

  nimbuscode config --api-key sk-or-...         Store your OpenRouter API key
  nimbuscode ask "how do I read a file in Go?"  Ask a coding question
  nimbuscode generate "a REST server" -l go     Generate code
  nimbuscode improve main.go                    Improve existing code
  nimbuscode explain main.go                    Explain existing code
  nimbuscode models                             List free models
  nimbuscode interactive                        Start a chat session`,
	Version:       version,
	SilenceUsage:  true,
	SilenceErrors: false,
}

func init() {
	// Mirror the usual .env convention; absence is fine.
	_ = godotenv.Load()

	rootCmd.PersistentFlags().BoolVar(&flagVerbose, "verbose", false, "Verbose diagnostic logging to stderr")
	rootCmd.PersistentFlags().StringVar(&flagConfigDir, "config-dir", "", "Override the config directory (default ~/.nimbuscode)")
}

// appLogger returns the diagnostic logger selected by --verbose.
func appLogger() logger.Logger {
	if flagVerbose {
		return logger.NewWriterLogger(os.Stderr)
	}
	return logger.NopLogger{}
}

// newStore builds the settings store honoring --config-dir.
func newStore() (*config.Store, error) {
	return config.NewStore(flagConfigDir, appLogger())
}

// loadSettings loads persisted settings through a fresh store.
func loadSettings() (config.Settings, error) {
	store, err := newStore()
	if err != nil {
		return config.Settings{}, err
	}
	return store.Load()
}

// requireKey resolves the API key for a command that cannot run without one.
func requireKey(settings config.Settings) (string, error) {
	key := config.ResolveKey(settings)
	if key == "" {
		return "", errMissingKey
	}
	return key, nil
}
