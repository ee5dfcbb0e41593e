package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the active configuration file.",
	Example: `
  # Show active config and source file
  relatorios config show
`,
	RunE: func(cmd *cobra.Command, args []string) error {
		configPath, err := resolveConfigPath(cfgFile, viper.ConfigFileUsed())
		if err != nil {
			return err
		}

		content, err := os.ReadFile(configPath)
		if err != nil {
			if os.IsNotExist(err) {
				return fmt.Errorf("no config file at %s (create one with: relatorios config create)", configPath)
			}
			return fmt.Errorf("read config file: %w", err)
		}

		fmt.Printf("Config file: %s\n\n%s", configPath, content)
		return nil
	},
}

func init() {
	configCmd.AddCommand(configShowCmd)
}
