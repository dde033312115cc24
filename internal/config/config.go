// Package config loads application configuration from environment variables.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"net/url"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// AssetMode selects how the product image directory is listed.
type AssetMode string

const (
	// AssetModeFlat lists a single directory level under public/products.
	AssetModeFlat AssetMode = "flat"
	// AssetModeRecursive walks public/brands and every directory beneath it.
	AssetModeRecursive AssetMode = "recursive"
)

// Config holds the application configuration loaded from environment variables.
type Config struct {
	ListenAddr  string
	PublicDir   string
	CatalogPath string
	AssetMode   AssetMode
	SiteURL     string
}

// AssetRoot returns the directory (relative to PublicDir) and the URL prefix
// that the configured AssetMode lists images from.
func (c *Config) AssetRoot() (dir, urlPrefix string) {
	if c.AssetMode == AssetModeRecursive {
		return "brands", "/brands/"
	}
	return "products", "/products/"
}

// LoadEnvFile loads variables from a dotenv file without overriding values that
// are already set in the process environment. A missing file is not an error.
// The path comes from LIQUORLOCKER_ENV_FILE, defaulting to ".env".
func LoadEnvFile() error {
	path := ".env"
	if v, ok := os.LookupEnv("LIQUORLOCKER_ENV_FILE"); ok && v != "" {
		path = v
	}

	if err := godotenv.Load(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("load env file %s: %w", path, err)
	}
	return nil
}

// Load reads configuration from environment variables and returns a validated Config.
// Optional variables with defaults: LIQUORLOCKER_LISTEN_ADDR (127.0.0.1:8080),
// LIQUORLOCKER_PUBLIC_DIR (public), LIQUORLOCKER_CATALOG_PATH (data/data.json),
// LIQUORLOCKER_ASSET_MODE (flat), LIQUORLOCKER_SITE_URL (http://localhost:8080).
func Load() (*Config, error) {
	listenAddr := "127.0.0.1:8080"
	if v, ok := os.LookupEnv("LIQUORLOCKER_LISTEN_ADDR"); ok && v != "" {
		listenAddr = v
	}

	publicDir := "public"
	if v, ok := os.LookupEnv("LIQUORLOCKER_PUBLIC_DIR"); ok && v != "" {
		publicDir = v
	}

	catalogPath := "data/data.json"
	if v, ok := os.LookupEnv("LIQUORLOCKER_CATALOG_PATH"); ok && v != "" {
		catalogPath = v
	}

	assetMode := AssetModeFlat
	if v, ok := os.LookupEnv("LIQUORLOCKER_ASSET_MODE"); ok && v != "" {
		switch mode := AssetMode(strings.ToLower(strings.TrimSpace(v))); mode {
		case AssetModeFlat, AssetModeRecursive:
			assetMode = mode
		default:
			return nil, fmt.Errorf("LIQUORLOCKER_ASSET_MODE must be %q or %q, got %q", AssetModeFlat, AssetModeRecursive, v)
		}
	}

	siteURL := "http://localhost:8080"
	if v, ok := os.LookupEnv("LIQUORLOCKER_SITE_URL"); ok && v != "" {
		u, err := url.Parse(v)
		if err != nil || u.Scheme == "" || u.Host == "" {
			return nil, fmt.Errorf("LIQUORLOCKER_SITE_URL must be an absolute URL, got %q", v)
		}
		siteURL = strings.TrimRight(v, "/")
	}

	return &Config{
		ListenAddr:  listenAddr,
		PublicDir:   publicDir,
		CatalogPath: catalogPath,
		AssetMode:   assetMode,
		SiteURL:     siteURL,
	}, nil
}
