package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"floodwatch-cli/internal/auth"
	"floodwatch-cli/internal/client"
	"floodwatch-cli/internal/config"
	"floodwatch-cli/internal/stats"
)

var cfgFile string
var jsonOutput bool

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "floodwatch-cli",
	Short: "A CLI for the flood-monitoring dashboard backend",
	Long: `Inspect sensor readings, logs, and pinned areas on your flood-monitoring
deployment, and manage dashboard users.`,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(func() { config.InitConfig(cfgFile) })

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.floodwatch-cli.yaml)")

	// Add the persistent flag here
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output results as JSON")
}

// apiClient builds the client from stored configuration.
func apiClient() *client.Client {
	base := config.SensorBaseURL()
	if base == "" {
		fmt.Println("Error: No backend configured. Run 'floodwatch-cli login --host <url>' first.")
		os.Exit(1)
	}

	return client.New(client.ClientConfig{
		SensorBaseURL: base,
		AuthBaseURL:   config.AuthBaseURL(),
		Tokens:        config.TokenStore{},
	})
}

// Navigation routes guarded the same way the dashboard guards its views.
var loginRoute = auth.Route{Name: "login"}

// requireAuth gates protected commands on a stored token, mirroring the
// dashboard's navigation guard: no token means you land on login.
func requireAuth(target string) {
	gate := auth.NewGate(config.TokenStore{}, loginRoute)
	if resolved := gate.Resolve(auth.Route{Name: target, Protected: true}); resolved == loginRoute {
		fmt.Println("Error: Not logged in. Please run 'floodwatch-cli login' first.")
		os.Exit(1)
	}
}

// thresholds reads the status-derivation tuning from config.
func thresholds() stats.Thresholds {
	return stats.Thresholds{
		PollInterval:      config.PollInterval(),
		StaleMultiplier:   config.StaleMultiplier(),
		OfflineMultiplier: config.OfflineMultiplier(),
	}
}
