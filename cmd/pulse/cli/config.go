package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/shubham2057mishra-png/twitter-sentimental-analysis-1/internal/api"
)

const (
	configDir     = ".pulse"
	configFile    = "config.json"
	defaultServer = "http://localhost:8090"
)

// Config holds CLI configuration persisted to disk.
type Config struct {
	Server string `json:"server"`
}

func configDirPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot determine home directory: %w", err)
	}
	return filepath.Join(home, configDir), nil
}

// SaveConfig persists CLI config to ~/.pulse/config.json.
func SaveConfig(cfg Config) error {
	dir, err := configDirPath()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("cannot create config directory %s: %w", dir, err)
	}

	b, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("cannot marshal config: %w", err)
	}

	path := filepath.Join(dir, configFile)
	if err := os.WriteFile(path, b, 0600); err != nil {
		return fmt.Errorf("cannot write config file: %w", err)
	}
	return nil
}

// LoadConfig reads CLI config; a missing file yields the zero config.
func LoadConfig() (Config, error) {
	dir, err := configDirPath()
	if err != nil {
		return Config{}, err
	}

	b, err := os.ReadFile(filepath.Join(dir, configFile))
	if err != nil {
		if os.IsNotExist(err) {
			return Config{}, nil
		}
		return Config{}, fmt.Errorf("cannot read config file: %w", err)
	}

	var cfg Config
	if err := json.Unmarshal(b, &cfg); err != nil {
		return Config{}, fmt.Errorf("corrupt config file: %w", err)
	}
	return cfg, nil
}

// serverURL resolves the server to talk to: flag, then PULSE_SERVER, then
// the stored config, then the default.
func serverURL() string {
	if flagServer != "" {
		return flagServer
	}
	if v := os.Getenv("PULSE_SERVER"); v != "" {
		return v
	}
	if cfg, err := LoadConfig(); err == nil && cfg.Server != "" {
		return cfg.Server
	}
	return defaultServer
}

func newClient() *api.Client {
	return api.NewClient(serverURL())
}

var configureCmd = &cobra.Command{
	Use:   "configure --server <url>",
	Short: "Store the server URL",
	RunE: func(cmd *cobra.Command, args []string) error {
		if flagServer == "" {
			return fmt.Errorf("--server is required")
		}
		if err := SaveConfig(Config{Server: flagServer}); err != nil {
			return err
		}
		fmt.Printf("Server set to %s\n", flagServer)
		return nil
	},
}
