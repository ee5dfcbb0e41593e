package cmd

import "github.com/spf13/cobra"

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage the relatorios configuration file.",
	Long: `Create and display the relatorios configuration file.

The configuration stores the sheet location, service account credentials,
cache validity, and the fixed report header values:
- sheet.url / sheet.read_range / sheet.credentials_file
- cache.ttl_seconds
- report.date_order / report.title / report.institution_lines`,
	Example: `
  # Create default config in $HOME/.relatorios.yaml
  relatorios config create

  # Show active config and source file
  relatorios config show
`,
}

func init() {
	rootCmd.AddCommand(configCmd)
}
