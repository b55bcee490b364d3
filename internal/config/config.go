// Package config loads server configuration from an HCL file with
// environment overrides.
package config

import (
	"fmt"
	"os"

	"github.com/hashicorp/hcl/v2/hclsimple"
)

// Config holds everything the server binary needs.
type Config struct {
	Server    ServerConfig
	Twitter   TwitterConfig
	Sentiment SentimentConfig
}

// ServerConfig controls the HTTP listener.
type ServerConfig struct {
	ListenAddr string
	LogLevel   string
}

// TwitterConfig holds Twitter API credentials and tuning.
type TwitterConfig struct {
	BearerToken string
	BaseURL     string
	RateLimit   float64
}

// SentimentConfig points at an optional custom lexicon.
type SentimentConfig struct {
	LexiconPath string
}

// hclFile mirrors the on-disk layout. Every block is optional.
type hclFile struct {
	Server *struct {
		ListenAddr string `hcl:"listen_addr,optional"`
		LogLevel   string `hcl:"log_level,optional"`
	} `hcl:"server,block"`
	Twitter *struct {
		BearerToken string  `hcl:"bearer_token,optional"`
		BaseURL     string  `hcl:"base_url,optional"`
		RateLimit   float64 `hcl:"rate_limit,optional"`
	} `hcl:"twitter,block"`
	Sentiment *struct {
		LexiconPath string `hcl:"lexicon_path,optional"`
	} `hcl:"sentiment,block"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			ListenAddr: ":8090",
			LogLevel:   "info",
		},
	}
}

// Load reads configuration: defaults, then the HCL file at path when one is
// given, then environment overrides. A missing file at an explicitly given
// path is an error; an empty path skips the file step.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		if _, err := os.Stat(path); err != nil {
			return nil, fmt.Errorf("config file %s: %w", path, err)
		}
		var file hclFile
		if err := hclsimple.DecodeFile(path, nil, &file); err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", path, err)
		}
		applyFile(cfg, &file)
	}

	applyEnv(cfg)
	return cfg, nil
}

func applyFile(cfg *Config, file *hclFile) {
	if file.Server != nil {
		if file.Server.ListenAddr != "" {
			cfg.Server.ListenAddr = file.Server.ListenAddr
		}
		if file.Server.LogLevel != "" {
			cfg.Server.LogLevel = file.Server.LogLevel
		}
	}
	if file.Twitter != nil {
		if file.Twitter.BearerToken != "" {
			cfg.Twitter.BearerToken = file.Twitter.BearerToken
		}
		if file.Twitter.BaseURL != "" {
			cfg.Twitter.BaseURL = file.Twitter.BaseURL
		}
		if file.Twitter.RateLimit > 0 {
			cfg.Twitter.RateLimit = file.Twitter.RateLimit
		}
	}
	if file.Sentiment != nil && file.Sentiment.LexiconPath != "" {
		cfg.Sentiment.LexiconPath = file.Sentiment.LexiconPath
	}
}

func applyEnv(cfg *Config) {
	if v := os.Getenv("BEARER_TOKEN"); v != "" {
		cfg.Twitter.BearerToken = v
	}
	if v := os.Getenv("TWITTER_BASE_URL"); v != "" {
		cfg.Twitter.BaseURL = v
	}
	if v := os.Getenv("LISTEN_ADDR"); v != "" {
		cfg.Server.ListenAddr = v
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		cfg.Server.LogLevel = v
	}
	if v := os.Getenv("LEXICON_PATH"); v != "" {
		cfg.Sentiment.LexiconPath = v
	}
}
