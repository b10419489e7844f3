package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"floodwatch-cli/internal/client"
)

// Variables to hold flag values
var (
	readingStart  string
	readingEnd    string
	readingLimit  int
	readingOffset int
)

// Parent Command
var readingsCmd = &cobra.Command{
	Use:   "readings",
	Short: "Inspect sensor readings",
	Long:  `List the flood sensor's measurement stream or fetch the latest reading.`,
}

func fmtLevel(v *float64) string {
	if v == nil {
		return "-"
	}
	return fmt.Sprintf("%.1f", *v)
}

// List Command
var readingsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List sensor readings",
	Run: func(cmd *cobra.Command, args []string) {
		requireAuth("sensor-readings")
		api := apiClient()

		result, err := api.GetSensorReadings(context.Background(), client.LogFilter{
			StartDate: readingStart,
			EndDate:   readingEnd,
			Limit:     readingLimit,
			Offset:    readingOffset,
		})
		if err != nil {
			fmt.Printf("Error fetching readings: %v\n", err)
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

		if len(result.Readings) == 0 {
			fmt.Println("No readings.")
			return
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 3, ' ', 0)
		fmt.Fprintln(w, "ID\tDISTANCE\tLEVEL CM\tSOURCE\tTIMESTAMP")
		fmt.Fprintln(w, "--\t--------\t--------\t------\t---------")

		for _, r := range result.Readings {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
				r.ID,
				fmtLevel(r.Distance),
				fmtLevel(r.WaterLevelCm),
				r.Source,
				r.Timestamp,
			)
		}
		w.Flush()

		p := result.Pagination
		fmt.Printf("\nShowing %d of %d (offset %d)\n", len(result.Readings), p.Total, p.Offset)
	},
}

// Latest Command
var readingsLatestCmd = &cobra.Command{
	Use:   "latest",
	Short: "Fetch the most recent reading",
	Run: func(cmd *cobra.Command, args []string) {
		requireAuth("sensor-readings")
		api := apiClient()

		reading, err := api.GetLatestSensorReading(context.Background())
		if err != nil {
			fmt.Printf("Error fetching latest reading: %v\n", err)
			os.Exit(1)
		}

		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(reading); err != nil {
			fmt.Printf("Error encoding JSON: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	// Register Parent
	rootCmd.AddCommand(readingsCmd)

	// Register List
	readingsCmd.AddCommand(readingsListCmd)
	readingsListCmd.Flags().StringVar(&readingStart, "start", "", "Filter from this ISO-8601 timestamp")
	readingsListCmd.Flags().StringVar(&readingEnd, "end", "", "Filter up to this ISO-8601 timestamp")
	readingsListCmd.Flags().IntVar(&readingLimit, "limit", 0, "Page size (0 = backend default)")
	readingsListCmd.Flags().IntVar(&readingOffset, "offset", 0, "Page offset")

	// Register Latest
	readingsCmd.AddCommand(readingsLatestCmd)
}
