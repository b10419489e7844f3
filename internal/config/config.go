package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/viper"
)

// Viper keys used across the CLI
const (
	KeySensorBaseURL  = "sensor_base_url"
	KeyAuthBaseURL    = "auth_base_url"
	KeyPollIntervalMs = "poll_interval_ms"
	KeyStaleMult      = "stale_multiplier"
	KeyOfflineMult    = "offline_multiplier"
	KeyTokenStorage   = "token_storage_key"
)

// DefaultTokenKey is the config entry the auth token is stored under unless
// token_storage_key overrides it.
const DefaultTokenKey = "token"

// InitConfig reads in config file and ENV variables if set.
func InitConfig(cfgFile string) {
	if cfgFile != "" {
		// Use config file from the flag.
		viper.SetConfigFile(cfgFile)
	} else {
		// Find home directory.
		home, err := os.UserHomeDir()
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}

		// Search config in home directory with name ".floodwatch-cli" (without extension).
		viper.AddConfigPath(home)
		viper.SetConfigType("yaml")
		viper.SetConfigName(".floodwatch-cli")
	}

	viper.SetEnvPrefix("FLOODWATCH")
	viper.AutomaticEnv() // read in environment variables that match

	viper.SetDefault(KeyPollIntervalMs, 5000)
	viper.SetDefault(KeyStaleMult, 2)
	viper.SetDefault(KeyOfflineMult, 10)
	viper.SetDefault(KeyTokenStorage, DefaultTokenKey)

	// If a config file is found, read it in.
	if err := viper.ReadInConfig(); err == nil {
		// Config loaded successfully
	}
}

// SensorBaseURL returns the base address of the sensor/logs/areas backend.
func SensorBaseURL() string {
	return viper.GetString(KeySensorBaseURL)
}

// AuthBaseURL returns the base address of the identity backend. Deployments
// running a single combined backend leave this unset and the sensor address
// serves both resource families.
func AuthBaseURL() string {
	if u := viper.GetString(KeyAuthBaseURL); u != "" {
		return u
	}
	return viper.GetString(KeySensorBaseURL)
}

// PollInterval returns the configured sensor poll interval.
func PollInterval() time.Duration {
	return time.Duration(viper.GetInt(KeyPollIntervalMs)) * time.Millisecond
}

// StaleMultiplier and OfflineMultiplier tune the status thresholds relative
// to the poll interval. They are deployment configuration, not constants.
func StaleMultiplier() int   { return viper.GetInt(KeyStaleMult) }
func OfflineMultiplier() int { return viper.GetInt(KeyOfflineMult) }

func tokenKey() string {
	if k := viper.GetString(KeyTokenStorage); k != "" {
		return k
	}
	return DefaultTokenKey
}

// SaveToken persists the auth token (and any other pending viper settings)
// to the config file, creating the file if it does not exist yet.
func SaveToken(token string) error {
	viper.Set(tokenKey(), token)

	// Ensure the file exists before writing
	if err := viper.WriteConfig(); err != nil {
		// If file doesn't exist, create it
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			return viper.SafeWriteConfig()
		}
		// If it exists but failed to write, try writing to default path
		home, _ := os.UserHomeDir()
		path := filepath.Join(home, ".floodwatch-cli.yaml")
		return viper.WriteConfigAs(path)
	}
	return nil
}

// TokenStore reads the stored auth token from viper. It satisfies
// auth.TokenProvider so the gate and the transport clients never touch
// viper directly.
type TokenStore struct{}

func (TokenStore) Token() string {
	return viper.GetString(tokenKey())
}

func (TokenStore) Clear() {
	viper.Set(tokenKey(), "")
}
