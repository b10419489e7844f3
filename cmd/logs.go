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
	logType   string
	logStart  string
	logEnd    string
	logLimit  int
	logOffset int
	logID     string
)

// Parent Command
var logsCmd = &cobra.Command{
	Use:   "logs",
	Short: "Manage backend logs",
	Long:  `List, inspect, or clear the backend's log stream.`,
}

// List Command
var logsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List logs",
	Run: func(cmd *cobra.Command, args []string) {
		requireAuth("logs")
		api := apiClient()

		result, err := api.GetLogs(context.Background(), client.LogFilter{
			Type:      logType,
			StartDate: logStart,
			EndDate:   logEnd,
			Limit:     logLimit,
			Offset:    logOffset,
		})
		if err != nil {
			fmt.Printf("Error fetching logs: %v\n", err)
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

		if len(result.Logs) == 0 {
			fmt.Println("No logs.")
			return
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 3, ' ', 0)
		fmt.Fprintln(w, "ID\tTYPE\tSOURCE\tTIMESTAMP")
		fmt.Fprintln(w, "--\t----\t------\t---------")

		for _, l := range result.Logs {
			source := l.Source
			if source == "" {
				source = "-"
			}
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", l.ID, l.Type, source, l.Timestamp)
		}
		w.Flush()

		p := result.Pagination
		fmt.Printf("\nShowing %d of %d (offset %d)\n", len(result.Logs), p.Total, p.Offset)
		if p.HasMore {
			fmt.Printf("More available: rerun with --offset %d\n", p.Offset+p.Limit)
		}
	},
}

// Get Command
var logsGetCmd = &cobra.Command{
	Use:   "get",
	Short: "Fetch a single log entry",
	Run: func(cmd *cobra.Command, args []string) {
		requireAuth("logs")
		api := apiClient()

		entry, err := api.GetLog(context.Background(), logID)
		if err != nil {
			fmt.Printf("Error fetching log: %v\n", err)
			os.Exit(1)
		}

		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(entry); err != nil {
			fmt.Printf("Error encoding JSON: %v\n", err)
			os.Exit(1)
		}
	},
}

// Clear Command
var logsClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Delete all logs",
	Run: func(cmd *cobra.Command, args []string) {
		requireAuth("logs")
		api := apiClient()

		result, err := api.ClearLogs(context.Background())
		if err != nil {
			fmt.Printf("Error clearing logs: %v\n", err)
			os.Exit(1)
		}

		fmt.Printf("Cleared %d logs.\n", result.DeletedCount)
	},
}

func init() {
	// Register Parent
	rootCmd.AddCommand(logsCmd)

	// Register List
	logsCmd.AddCommand(logsListCmd)
	logsListCmd.Flags().StringVar(&logType, "type", "", "Filter by type (sensor, user_action, system_event)")
	logsListCmd.Flags().StringVar(&logStart, "start", "", "Filter from this ISO-8601 timestamp")
	logsListCmd.Flags().StringVar(&logEnd, "end", "", "Filter up to this ISO-8601 timestamp")
	logsListCmd.Flags().IntVar(&logLimit, "limit", 0, "Page size (0 = backend default)")
	logsListCmd.Flags().IntVar(&logOffset, "offset", 0, "Page offset")

	// Register Get
	logsCmd.AddCommand(logsGetCmd)
	logsGetCmd.Flags().StringVar(&logID, "id", "", "Log ID to fetch")
	_ = logsGetCmd.MarkFlagRequired("id")

	// Register Clear
	logsCmd.AddCommand(logsClearCmd)
}
