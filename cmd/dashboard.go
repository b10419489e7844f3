package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"floodwatch-cli/pkg/models"
)

var composeStats bool

// dashboardCmd shows the aggregated dashboard view-model
var dashboardCmd = &cobra.Command{
	Use:   "dashboard",
	Short: "Show dashboard statistics",
	Long: `Fetches the server-computed dashboard stats, or composes them client-side
from the raw logs, pinned areas, and readings with --compose.`,
	Run: func(cmd *cobra.Command, args []string) {
		requireAuth("dashboard")
		api := apiClient()

		var result *models.DashboardStats
		var err error
		if composeStats {
			result, err = api.ComposeDashboardStats(context.Background(), thresholds())
		} else {
			result, err = api.GetDashboardStats(context.Background())
		}
		if err != nil {
			fmt.Printf("Error fetching dashboard stats: %v\n", err)
			os.Exit(1)
		}

		// --- JSON OUTPUT ---
		if jsonOutput {
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			if err := enc.Encode(result); err != nil {
				fmt.Printf("Error encoding JSON: %v\n", err)
				os.Exit(1)
			}
			return
		}
		// -------------------

		fmt.Printf("Sensor: %s (%s)\n", result.SensorStatus.Status, result.SensorStatus.Message)
		fmt.Printf("Totals: %d logs, %d pinned areas, %d readings\n",
			result.Totals.Logs, result.Totals.PinnedAreas, result.Totals.SensorReadings)
		fmt.Printf("Log types: %d sensor / %d user / %d system\n",
			result.LogTypes.Sensor, result.LogTypes.UserAction, result.LogTypes.SystemEvent)
		fmt.Printf("Logs last 24h: %d\n", result.Recent.LogsLast24h)

		if latest := result.Recent.LatestSensorReading; latest != nil {
			fmt.Printf("Latest reading: %s (level %s cm at %s)\n",
				latest.ID, fmtLevel(latest.WaterLevelCm), latest.Timestamp)
		} else {
			fmt.Println("Latest reading: none")
		}

		if len(result.RecentActivity) > 0 {
			fmt.Println("\nRecent activity:")
			w := tabwriter.NewWriter(os.Stdout, 0, 0, 3, ' ', 0)
			for _, l := range result.RecentActivity {
				fmt.Fprintf(w, "  %s\t%s\t%s\n", l.Timestamp, l.Type, l.ID)
			}
			w.Flush()
		}
	},
}

func init() {
	rootCmd.AddCommand(dashboardCmd)
	dashboardCmd.Flags().BoolVar(&composeStats, "compose", false, "Aggregate client-side from raw collections")
}
