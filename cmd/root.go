package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/victor-kauan-coder/dashboard-relatorios/config"
)

var cfgFile string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "relatorios",
	Short: "Dashboard de frequência: fetch activity reports from a shared sheet, filter them, and render attendance PDFs.",
	Long: `relatorios pulls activity report rows from a shared Google Sheet,
normalizes them into records, serves a filterable local dashboard, and renders
printable monthly attendance sheets as PDF (or exports the rows to Excel).

The remote spreadsheet is the durable store; this tool only keeps a short-lived
in-memory snapshot of it.`,
	Example: `
  # Create configuration file
  relatorios config create

  # Start the local dashboard
  relatorios serve

  # Render the attendance PDF for one person straight from the CLI
  relatorios export --name "Ana" --from 2024-03-01 --to 2024-03-31 --output ./frequencia.pdf

  # Export the filtered rows as a spreadsheet
  relatorios export --from 2024-03-01 --to 2024-03-31 --output ./relatorios.xlsx
`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	config.SetDefaults()

	rootCmd.PersistentFlags().StringVar(&cfgFile, "configFile", "", "Config file override (default discovery: $HOME/.relatorios.yaml, then ./.relatorios.yaml)")

	// PersistentPreRunE so the gate fires for subcommands; a plain PreRunE
	// on the root only runs when the root itself is invoked.
	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		if !requiresConfig(cmd) {
			return nil
		}

		_, err := config.LoadAndValidate()
		return err
	}
}

func requiresConfig(cmd *cobra.Command) bool {
	if cmd == nil {
		return false
	}
	switch cmd.Name() {
	case "serve", "export":
		return true
	default:
		return false
	}
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		cobra.CheckErr(err)

		viper.AddConfigPath(home)
		viper.AddConfigPath(".")
		viper.SetConfigType("yaml")
		viper.SetConfigName(".relatorios")
	}

	viper.AutomaticEnv() // read in environment variables that match

	if err := viper.ReadInConfig(); err != nil {
		fmt.Fprintln(os.Stderr, "No config file found. Create one first with: relatorios config create")
	}
}
