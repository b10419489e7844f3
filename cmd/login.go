package cmd

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"floodwatch-cli/internal/client"
	"floodwatch-cli/internal/config"
	"floodwatch-cli/pkg/models"
)

// Variables to hold flag values
var (
	host     string
	authHost string
	user     string
	pass     string
	regEmail string
)

// loginCmd represents the login command
var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Authenticate with the flood-monitoring backend",
	Long: `Authenticates with the dashboard's identity backend and saves the bearer
token locally for future commands.

Example:
  floodwatch-cli login --host "http://10.0.0.5:3000/api" --username admin --password pass`,
	Run: func(cmd *cobra.Command, args []string) {
		// Clean up input host (remove trailing slash if present)
		host = strings.TrimRight(host, "/")
		authHost = strings.TrimRight(authHost, "/")

		api := client.New(client.ClientConfig{
			SensorBaseURL: host,
			AuthBaseURL:   authHost,
		})

		fmt.Printf("Authenticating against %s as user '%s'...\n", host, user)

		result, err := api.Login(context.Background(), user, pass)
		if err != nil {
			log.Fatalf("Fatal: Login failed: %v", err)
		}

		fmt.Println("Login successful. Saving configuration...")

		// Save the base URLs so subsequent commands know where to connect.
		viper.Set(config.KeySensorBaseURL, host)
		if authHost != "" {
			viper.Set(config.KeyAuthBaseURL, authHost)
		}

		if err := config.SaveToken(result.Token); err != nil {
			log.Fatalf("Failed to save configuration file: %v", err)
		}

		fmt.Printf("Logged in as %s (%s). You can now run commands like './floodwatch-cli dashboard'.\n",
			result.User.Username, result.User.Status)
	},
}

// logoutCmd clears the stored token
var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Forget the stored auth token",
	Run: func(cmd *cobra.Command, args []string) {
		store := config.TokenStore{}
		store.Clear()
		if err := config.SaveToken(""); err != nil {
			log.Fatalf("Failed to update configuration file: %v", err)
		}
		fmt.Println("Logged out.")
	},
}

// registerCmd creates a new dashboard account
var registerCmd = &cobra.Command{
	Use:   "register",
	Short: "Register a new dashboard account",
	Long: `Creates an account on the identity backend. New accounts start in
"Pending Verification" until an admin approves them.`,
	Run: func(cmd *cobra.Command, args []string) {
		host = strings.TrimRight(host, "/")
		authHost = strings.TrimRight(authHost, "/")

		api := client.New(client.ClientConfig{
			SensorBaseURL: host,
			AuthBaseURL:   authHost,
		})

		created, err := api.Register(context.Background(), models.RegisterRequest{
			Username: user,
			Email:    regEmail,
			Password: pass,
		})
		if err != nil {
			log.Fatalf("Fatal: Registration failed: %v", err)
		}

		fmt.Printf("Account %s created (%s).\n", created.Username, created.Status)
	},
}

func init() {
	rootCmd.AddCommand(loginCmd)
	rootCmd.AddCommand(logoutCmd)
	rootCmd.AddCommand(registerCmd)

	// Define Flags
	// We use local flags because these are specific only to the auth actions.
	loginCmd.Flags().StringVar(&host, "host", "", "API Base URL (e.g. http://192.168.1.50:3000/api)")
	loginCmd.Flags().StringVar(&authHost, "auth-host", "", "Identity backend URL (optional, defaults to --host)")
	loginCmd.Flags().StringVarP(&user, "username", "u", "", "Dashboard username")
	loginCmd.Flags().StringVarP(&pass, "password", "p", "", "Dashboard password")

	_ = loginCmd.MarkFlagRequired("host")
	_ = loginCmd.MarkFlagRequired("username")
	_ = loginCmd.MarkFlagRequired("password")

	registerCmd.Flags().StringVar(&host, "host", "", "API Base URL")
	registerCmd.Flags().StringVar(&authHost, "auth-host", "", "Identity backend URL (optional)")
	registerCmd.Flags().StringVarP(&user, "username", "u", "", "Username for the new account")
	registerCmd.Flags().StringVar(&regEmail, "email", "", "Email for the new account")
	registerCmd.Flags().StringVarP(&pass, "password", "p", "", "Password for the new account")

	_ = registerCmd.MarkFlagRequired("host")
	_ = registerCmd.MarkFlagRequired("username")
	_ = registerCmd.MarkFlagRequired("email")
	_ = registerCmd.MarkFlagRequired("password")
}
