package cmd

import (
	"testing"

	"github.com/spf13/viper"

	"github.com/victor-kauan-coder/dashboard-relatorios/config"
)

// no t.Parallel: resets the shared viper instance
func TestRootConfigGate_FiresForSubcommands(t *testing.T) {
	viper.Reset()
	config.SetDefaults()
	defer func() {
		viper.Reset()
		config.SetDefaults()
	}()

	gate := rootCmd.PersistentPreRunE
	if gate == nil {
		t.Fatalf("config gate is not wired as a persistent hook")
	}

	if err := gate(serveCmd, nil); err == nil {
		t.Fatalf("serve without configuration should fail validation")
	}
	if err := gate(exportCmd, nil); err == nil {
		t.Fatalf("export without configuration should fail validation")
	}
	if err := gate(configCmd, nil); err != nil {
		t.Fatalf("config command should not require configuration: %v", err)
	}
}
