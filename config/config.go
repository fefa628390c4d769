package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds the service settings read from the environment
type Config struct {
	Port       string
	ChromePath string
	PDFTimeout time.Duration

	LogoPath         string
	LogoDriveFileID  string
	DriveCredentials string
	LogoMaxWidth     int

	QuotesTable string
}

// Defaults
const (
	DefaultPort         = "8080"
	DefaultPDFTimeout   = 30 * time.Second
	DefaultLogoPath     = "static/orca_logo.png"
	DefaultLogoMaxWidth = 400
	DefaultQuotesTable  = "quote_responses"
)

// Load reads the configuration from environment variables
func Load() (*Config, error) {
	cfg := &Config{
		Port:             normalizePort(os.Getenv("PORT")),
		ChromePath:       os.Getenv("CHROME_PATH"),
		PDFTimeout:       DefaultPDFTimeout,
		LogoPath:         getenvDefault("LOGO_PATH", DefaultLogoPath),
		LogoDriveFileID:  os.Getenv("LOGO_DRIVE_FILE_ID"),
		DriveCredentials: os.Getenv("GOOGLE_APPLICATION_CREDENTIALS"),
		LogoMaxWidth:     DefaultLogoMaxWidth,
		QuotesTable:      getenvDefault("QUOTES_TABLE", DefaultQuotesTable),
	}

	if v := os.Getenv("PDF_TIMEOUT"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil || d <= 0 {
			return nil, fmt.Errorf("invalid PDF_TIMEOUT %q: use a positive duration like 30s", v)
		}
		cfg.PDFTimeout = d
	}

	if v := os.Getenv("LOGO_MAX_WIDTH"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			return nil, fmt.Errorf("invalid LOGO_MAX_WIDTH %q: use a positive integer", v)
		}
		cfg.LogoMaxWidth = n
	}

	if cfg.LogoDriveFileID != "" && cfg.DriveCredentials == "" {
		return nil, fmt.Errorf("LOGO_DRIVE_FILE_ID is set but GOOGLE_APPLICATION_CREDENTIALS is not")
	}

	return cfg, nil
}

// UseDriveLogo reports whether the logo should be fetched from Google Drive
func (c *Config) UseDriveLogo() bool {
	return c.LogoDriveFileID != ""
}

// Addr is the listen address on all interfaces
func (c *Config) Addr() string {
	return "0.0.0.0:" + c.Port
}

// normalizePort defaults to 8080 and strips a leading colon
func normalizePort(port string) string {
	port = strings.TrimPrefix(strings.TrimSpace(port), ":")
	if port == "" {
		return DefaultPort
	}
	return port
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
