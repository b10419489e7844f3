package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var healthCmd = &cobra.Command{
	Use:   "health",
	Short: "Check backend and sensor health",
	Run: func(cmd *cobra.Command, args []string) {
		api := apiClient()

		health, err := api.GetHealth(context.Background())
		if err != nil {
			fmt.Printf("Error fetching health: %v\n", err)
			os.Exit(1)
		}

		if jsonOutput {
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			if err := enc.Encode(health); err != nil {
				fmt.Printf("Error encoding JSON: %v\n", err)
				os.Exit(1)
			}
			return
		}

		fmt.Printf("Backend: %s (poll interval %dms)\n", health.Status, health.PollIntervalMs)
		fmt.Printf("Sensor:  %s - %s\n", health.Sensor.Status, health.Sensor.Message)
		if health.Sensor.LastReadingTime != "" {
			fmt.Printf("Last reading: %s\n", health.Sensor.LastReadingTime)
		}
		fmt.Printf("LED:     %s (%s)\n", health.LED.Color, health.LED.Status)
	},
}

func init() {
	rootCmd.AddCommand(healthCmd)
}
