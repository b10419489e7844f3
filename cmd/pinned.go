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

// Variables to hold flag values
var (
	pinnedID      string
	pinnedLat     float64
	pinnedLon     float64
	pinnedAddress string
	pinnedUserID  string
)

// Parent Command
var pinnedCmd = &cobra.Command{
	Use:   "pinned",
	Short: "Manage pinned areas",
	Long:  `List, pin, or unpin geographic areas of interest on the flood map.`,
}

// List Command
var pinnedListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all pinned areas",
	Run: func(cmd *cobra.Command, args []string) {
		requireAuth("pinned-areas")
		api := apiClient()

		areas, err := api.GetPinnedAreas(context.Background())
		if err != nil {
			fmt.Printf("Error fetching pinned areas: %v\n", err)
			os.Exit(1)
		}

		// --- JSON OUTPUT ---
		if jsonOutput {
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			if err := enc.Encode(areas); err != nil {
				fmt.Printf("Error encoding JSON: %v\n", err)
				os.Exit(1)
			}
			return
		}
		// -------------------

		if len(areas) == 0 {
			fmt.Println("No pinned areas.")
			return
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 3, ' ', 0)
		fmt.Fprintln(w, "ID\tLATITUDE\tLONGITUDE\tADDRESS")
		fmt.Fprintln(w, "--\t--------\t---------\t-------")

		for _, a := range areas {
			address := a.Address
			if address == "" {
				address = "-"
			}
			fmt.Fprintf(w, "%s\t%.6f\t%.6f\t%s\n", a.ID, a.Latitude, a.Longitude, address)
		}
		w.Flush()
	},
}

// Get Command
var pinnedGetCmd = &cobra.Command{
	Use:   "get",
	Short: "Fetch a single pinned area",
	Run: func(cmd *cobra.Command, args []string) {
		requireAuth("pinned-areas")
		api := apiClient()

		area, err := api.GetPinnedArea(context.Background(), pinnedID)
		if err != nil {
			fmt.Printf("Error fetching pinned area: %v\n", err)
			os.Exit(1)
		}

		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(area); err != nil {
			fmt.Printf("Error encoding JSON: %v\n", err)
			os.Exit(1)
		}
	},
}

// Create Command
var pinnedCreateCmd = &cobra.Command{
	Use:     "create",
	Short:   "Pin a new area",
	Example: `  floodwatch-cli pinned create --lat 14.5995 --lon 120.9842 --address "Manila"`,
	Run: func(cmd *cobra.Command, args []string) {
		requireAuth("pinned-areas")
		api := apiClient()

		created, err := api.CreatePinnedArea(context.Background(), models.CreatePinnedAreaRequest{
			Latitude:  &pinnedLat,
			Longitude: &pinnedLon,
			Address:   pinnedAddress,
			UserID:    pinnedUserID,
		})
		if err != nil {
			fmt.Printf("Error creating pinned area: %v\n", err)
			os.Exit(1)
		}

		fmt.Printf("Pinned area %s at (%.6f, %.6f).\n", created.ID, created.Latitude, created.Longitude)
	},
}

// Delete Command
var pinnedDeleteCmd = &cobra.Command{
	Use:   "delete",
	Short: "Unpin an area",
	Run: func(cmd *cobra.Command, args []string) {
		requireAuth("pinned-areas")
		api := apiClient()

		if err := api.DeletePinnedArea(context.Background(), pinnedID); err != nil {
			fmt.Printf("Error deleting pinned area: %v\n", err)
			os.Exit(1)
		}

		fmt.Println("Pinned area deleted.")
	},
}

func init() {
	// Register Parent
	rootCmd.AddCommand(pinnedCmd)

	// Register List
	pinnedCmd.AddCommand(pinnedListCmd)

	// Register Get
	pinnedCmd.AddCommand(pinnedGetCmd)
	pinnedGetCmd.Flags().StringVar(&pinnedID, "id", "", "Pinned area ID to fetch")
	_ = pinnedGetCmd.MarkFlagRequired("id")

	// Register Create
	pinnedCmd.AddCommand(pinnedCreateCmd)
	pinnedCreateCmd.Flags().Float64Var(&pinnedLat, "lat", 0, "Latitude")
	pinnedCreateCmd.Flags().Float64Var(&pinnedLon, "lon", 0, "Longitude")
	pinnedCreateCmd.Flags().StringVar(&pinnedAddress, "address", "", "Optional address label")
	pinnedCreateCmd.Flags().StringVar(&pinnedUserID, "user-id", "", "Optional owning user id")
	_ = pinnedCreateCmd.MarkFlagRequired("lat")
	_ = pinnedCreateCmd.MarkFlagRequired("lon")

	// Register Delete
	pinnedCmd.AddCommand(pinnedDeleteCmd)
	pinnedDeleteCmd.Flags().StringVar(&pinnedID, "id", "", "Pinned area ID to delete")
	_ = pinnedDeleteCmd.MarkFlagRequired("id")
}
