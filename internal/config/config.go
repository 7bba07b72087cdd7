// Package config loads server settings from a YAML file with
// environment variable overrides.
package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/rakibul-dev/teastall/internal/util"
)

const (
	defaultConfigPath  = "config.yaml"
	defaultListenAddr  = ":8080"
	defaultDatabaseDSN = "tea_stall.db"
	defaultStaticDir   = "dist"
	defaultUploadDir   = "public/images"
)

// AppConfig holds command line inputs for the server process.
type AppConfig struct {
	ConfigPath string
}

// Config is the resolved server configuration.
type Config struct {
	ListenAddr string `yaml:"listen-addr"`
	Database   struct {
		DSN string `yaml:"dsn"`
	} `yaml:"database"`
	StaticDir string   `yaml:"static-dir"`
	UploadDir string   `yaml:"upload-dir"`
	CORS      []string `yaml:"cors-origins"`
	Admin     struct {
		BootstrapPassword string `yaml:"bootstrap-password"`
	} `yaml:"admin"`
	Log struct {
		File       string `yaml:"file"`
		Level      string `yaml:"level"`
		MaxSizeMB  int    `yaml:"max-size-mb"`
		MaxBackups int    `yaml:"max-backups"`
	} `yaml:"log"`
}

// ResolveConfigPath returns the effective config file path, falling back
// to the default when none was given.
func ResolveConfigPath(configPath string) string {
	configPath = strings.TrimSpace(configPath)
	if configPath == "" {
		return defaultConfigPath
	}
	return configPath
}

// Load reads the YAML config at configPath and applies defaults and
// environment overrides. A missing file is not an error; defaults are
// used so the server can run without any config at all.
func Load(configPath string) (*Config, error) {
	cfg := &Config{}
	data, errRead := os.ReadFile(configPath)
	if errRead != nil {
		if !os.IsNotExist(errRead) {
			return nil, fmt.Errorf("config: read %s: %w", configPath, errRead)
		}
	} else if errDecode := yaml.Unmarshal(data, cfg); errDecode != nil {
		return nil, fmt.Errorf("config: parse %s: %w", configPath, errDecode)
	}
	cfg.applyDefaults()
	cfg.applyEnv()
	return cfg, nil
}

// LoadDatabaseDSN returns just the database DSN from the config file.
func LoadDatabaseDSN(configPath string) (string, error) {
	cfg, err := Load(configPath)
	if err != nil {
		return "", err
	}
	return cfg.Database.DSN, nil
}

func (c *Config) applyDefaults() {
	if strings.TrimSpace(c.ListenAddr) == "" {
		c.ListenAddr = defaultListenAddr
	}
	if strings.TrimSpace(c.Database.DSN) == "" {
		c.Database.DSN = defaultDatabaseDSN
	}
	if strings.TrimSpace(c.StaticDir) == "" {
		c.StaticDir = defaultStaticDir
	}
	if strings.TrimSpace(c.UploadDir) == "" {
		c.UploadDir = defaultUploadDir
	}
	if c.Log.MaxSizeMB <= 0 {
		c.Log.MaxSizeMB = 10
	}
	if c.Log.MaxBackups <= 0 {
		c.Log.MaxBackups = 3
	}
}

func (c *Config) applyEnv() {
	if v := strings.TrimSpace(os.Getenv("PORT")); v != "" {
		c.ListenAddr = ":" + strings.TrimPrefix(v, ":")
	}
	if v := strings.TrimSpace(os.Getenv("TEASTALL_DSN")); v != "" {
		c.Database.DSN = v
	}
	if v := strings.TrimSpace(os.Getenv("STATIC_DIR")); v != "" {
		c.StaticDir = v
	}
	if v := util.UploadPath(); v != "" {
		c.UploadDir = v
	}
	if v := os.Getenv("ADMIN_PASSWORD"); v != "" {
		c.Admin.BootstrapPassword = v
	}
	if v := strings.TrimSpace(os.Getenv("LOG_FILE")); v != "" {
		c.Log.File = v
	}
	if v := strings.TrimSpace(os.Getenv("LOG_LEVEL")); v != "" {
		c.Log.Level = v
	}
}
