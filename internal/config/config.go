// Package config provides configuration management for the Nexus page
// composer using Viper for flexible loading from files, environment
// variables, and command-line flags.
//
// Configuration comes from .nexus.yml with NEXUS_ prefixed environment
// variable overrides (NEXUS_SERVER_PORT, NEXUS_SITE_BASE_PATH, ...). It
// covers the site identity, the theme's slideshow and column settings, the
// preview server, and the active locale.
package config

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/nearfal08/nexus/internal/theme"
)

type Config struct {
	Site   SiteConfig   `yaml:"site"`
	Theme  theme.Theme  `yaml:"theme"`
	Server ServerConfig `yaml:"server"`
	Locale string       `yaml:"locale"`
}

type SiteConfig struct {
	Name      string `yaml:"name"`
	BasePath  string `yaml:"base_path"`
	FrontPage string `yaml:"front_page"`
}

type ServerConfig struct {
	Port int    `yaml:"port"`
	Host string `yaml:"host"`
	Open bool   `yaml:"open"`
}

func Load() (*Config, error) {
	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, err
	}

	// Handle nested keys set via viper (workaround for viper key mapping)
	if viper.IsSet("site.name") {
		config.Site.Name = viper.GetString("site.name")
	}
	if viper.IsSet("site.base_path") {
		config.Site.BasePath = viper.GetString("site.base_path")
	}
	if viper.IsSet("site.front_page") {
		config.Site.FrontPage = viper.GetString("site.front_page")
	}
	if viper.IsSet("theme.slideshow.enabled") {
		config.Theme.Slideshow.Enabled = viper.GetBool("theme.slideshow.enabled")
	}
	if viper.IsSet("theme.columns.preface") {
		config.Theme.Columns.Preface = viper.GetInt("theme.columns.preface")
	}
	if viper.IsSet("theme.columns.footer") {
		config.Theme.Columns.Footer = viper.GetInt("theme.columns.footer")
	}
	if viper.IsSet("theme.footer.credit_text") {
		config.Theme.Footer.CreditText = viper.GetString("theme.footer.credit_text")
	}
	if viper.IsSet("theme.footer.show_credit") {
		config.Theme.Footer.ShowCredit = viper.GetBool("theme.footer.show_credit")
	}
	if viper.IsSet("theme.footer.show_sitemap_link") {
		config.Theme.Footer.ShowSitemapLink = viper.GetBool("theme.footer.show_sitemap_link")
	}
	if viper.IsSet("theme.footer.show_contact_link") {
		config.Theme.Footer.ShowContactLink = viper.GetBool("theme.footer.show_contact_link")
	}
	if viper.IsSet("locale") {
		config.Locale = viper.GetString("locale")
	}
	if viper.IsSet("server.port") {
		config.Server.Port = viper.GetInt("server.port")
	}
	if viper.IsSet("server.host") {
		config.Server.Host = viper.GetString("server.host")
	}

	applyDefaults(&config)

	if err := validateConfig(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

func applyDefaults(config *Config) {
	def := theme.Default()

	if config.Site.Name == "" {
		config.Site.Name = "Nexus Lawncare"
	}
	if config.Site.BasePath == "" {
		config.Site.BasePath = "/"
	}
	if config.Site.FrontPage == "" {
		config.Site.FrontPage = config.Site.BasePath
	}
	if len(config.Theme.Slideshow.Slides) == 0 {
		config.Theme.Slideshow.Slides = def.Slideshow.Slides
		if !viper.IsSet("theme.slideshow.enabled") {
			config.Theme.Slideshow.Enabled = def.Slideshow.Enabled
		}
	}
	if config.Theme.Columns.Preface == 0 {
		config.Theme.Columns.Preface = def.Columns.Preface
	}
	if config.Theme.Columns.Footer == 0 {
		config.Theme.Columns.Footer = def.Columns.Footer
	}
	if config.Theme.Footer.CreditText == "" {
		config.Theme.Footer.CreditText = def.Footer.CreditText
	}
	if config.Locale == "" {
		config.Locale = "en"
	}
	if config.Server.Port == 0 {
		config.Server.Port = 8080
	}
	if config.Server.Host == "" {
		config.Server.Host = "localhost"
	}
}

// validateConfig validates configuration values for security and correctness
func validateConfig(config *Config) error {
	if err := validateServerConfig(&config.Server); err != nil {
		return fmt.Errorf("server config: %w", err)
	}
	if err := validateSiteConfig(&config.Site); err != nil {
		return fmt.Errorf("site config: %w", err)
	}
	if err := validateThemeConfig(&config.Theme); err != nil {
		return fmt.Errorf("theme config: %w", err)
	}
	return nil
}

// validateServerConfig validates server configuration values
func validateServerConfig(config *ServerConfig) error {
	// Allow 0 for system-assigned ports in testing
	if config.Port < 0 || config.Port > 65535 {
		return fmt.Errorf("port %d is not in valid range 0-65535", config.Port)
	}

	if config.Host != "" {
		dangerousChars := []string{";", "&", "|", "$", "`", "(", ")", "<", ">", "\"", "'", "\\"}
		for _, char := range dangerousChars {
			if strings.Contains(config.Host, char) {
				return fmt.Errorf("host contains dangerous character: %s", char)
			}
		}
	}

	return nil
}

// validateSiteConfig validates site identity values
func validateSiteConfig(config *SiteConfig) error {
	if !strings.HasPrefix(config.BasePath, "/") {
		return fmt.Errorf("base_path must start with /: %s", config.BasePath)
	}
	if !strings.HasSuffix(config.BasePath, "/") {
		return fmt.Errorf("base_path must end with /: %s", config.BasePath)
	}
	for _, char := range []string{"<", ">", "\"", "'"} {
		if strings.Contains(config.BasePath, char) {
			return fmt.Errorf("base_path contains dangerous character: %s", char)
		}
	}
	return nil
}

// validateThemeConfig validates theme asset paths
func validateThemeConfig(config *theme.Theme) error {
	for _, slide := range config.Slideshow.Slides {
		if err := validateAssetPath(slide.Image); err != nil {
			return fmt.Errorf("invalid slide image '%s': %w", slide.Image, err)
		}
	}
	return nil
}

// validateAssetPath validates a relative asset path for security
func validateAssetPath(path string) error {
	if path == "" {
		return fmt.Errorf("empty path")
	}

	cleanPath := filepath.Clean(path)

	if strings.Contains(cleanPath, "..") {
		return fmt.Errorf("path contains traversal: %s", path)
	}
	if filepath.IsAbs(cleanPath) {
		return fmt.Errorf("asset path must be relative: %s", path)
	}

	dangerousChars := []string{";", "&", "|", "$", "`", "(", ")", "<", ">", "\"", "'"}
	for _, char := range dangerousChars {
		if strings.Contains(cleanPath, char) {
			return fmt.Errorf("path contains dangerous character: %s", char)
		}
	}

	return nil
}
