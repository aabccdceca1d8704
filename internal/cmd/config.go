package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sabhahq/sabha/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect the CLI configuration",
}

// configShowCmd prints the effective configuration
var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the effective configuration",
	Long: `Print the configuration after merging the config file
(~/.sabha/config.yaml) with environment overrides.

Examples:
  sabha config show`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadDefault()
		if err != nil {
			return err
		}

		fmt.Printf("api_url:       %s\n", cfg.APIURL)
		fmt.Printf("poll_interval: %s\n", cfg.PollInterval)
		fmt.Printf("log_level:     %s\n", cfg.LogLevel)
		fmt.Printf("log_format:    %s\n", cfg.LogFormat)

		if path, err := config.DefaultPath(); err == nil {
			fmt.Printf("config file:   %s\n", path)
		}
		return nil
	},
}

func init() {
	configCmd.AddCommand(configShowCmd)
	rootCmd.AddCommand(configCmd)
}
