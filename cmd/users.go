package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

// Variables to hold flag values
var (
	userID     string
	userStatus string
)

// Parent Command
var usersCmd = &cobra.Command{
	Use:   "users",
	Short: "Manage dashboard users",
	Long:  `List accounts or change their verification status. Admin scope.`,
}

// List Command
var usersListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all users",
	Run: func(cmd *cobra.Command, args []string) {
		requireAuth("user-management")
		api := apiClient()

		users, err := api.GetUsers(context.Background())
		if err != nil {
			fmt.Printf("Error fetching users: %v\n", err)
			os.Exit(1)
		}

		// --- JSON OUTPUT ---
		if jsonOutput {
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			if err := enc.Encode(users); err != nil {
				fmt.Printf("Error encoding JSON: %v\n", err)
				os.Exit(1)
			}
			return
		}
		// -------------------

		if len(users) == 0 {
			fmt.Println("No users.")
			return
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 3, ' ', 0)
		fmt.Fprintln(w, "ID\tUSERNAME\tEMAIL\tSTATUS")
		fmt.Fprintln(w, "--\t--------\t-----\t------")

		for _, u := range users {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", u.ID, u.Username, u.Email, u.Status)
		}
		w.Flush()
	},
}

// Set Status Command
var usersSetStatusCmd = &cobra.Command{
	Use:     "set-status",
	Short:   "Change a user's verification status",
	Example: `  floodwatch-cli users set-status --id "663a..." --status "Verified"`,
	Run: func(cmd *cobra.Command, args []string) {
		requireAuth("user-management")
		api := apiClient()

		fmt.Printf("Setting user %s to '%s'...\n", userID, userStatus)

		updated, err := api.UpdateUserStatus(context.Background(), userID, userStatus)
		if err != nil {
			fmt.Printf("Error updating user: %v\n", err)
			os.Exit(1)
		}

		fmt.Printf("User %s is now %s.\n", updated.Username, updated.Status)
	},
}

func init() {
	// Register Parent
	rootCmd.AddCommand(usersCmd)

	// Register List
	usersCmd.AddCommand(usersListCmd)

	// Register Set Status
	usersCmd.AddCommand(usersSetStatusCmd)
	usersSetStatusCmd.Flags().StringVar(&userID, "id", "", "User ID to update")
	usersSetStatusCmd.Flags().StringVar(&userStatus, "status", "", "New status (Verified, \"Pending Verification\", Rejected)")
	_ = usersSetStatusCmd.MarkFlagRequired("id")
	_ = usersSetStatusCmd.MarkFlagRequired("status")
}
