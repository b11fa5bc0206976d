// Package cmd provides the command-line interface for the Nexus page
// composer with configuration from multiple sources.
//
// Configuration precedence (highest to lowest):
//  1. Command-line flags (--config, --port, ...)
//  2. NEXUS_CONFIG_FILE environment variable - custom config file path
//  3. Individual environment variables (NEXUS_SERVER_PORT, ...)
//  4. Configuration file (.nexus.yml)
package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var cfgFile string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "nexus",
	Short: "Compose Nexus site pages from named content regions",
	Long: `Nexus assembles the HTML document for one page of a Nexus site from a
fixed set of named, independently optional content regions, applying
conditional wrapper markup only where a region has content.

Quick Start:
  nexus compose page.yml          Compose a page file to HTML
  nexus serve page.yml            Preview a page with live reload
  nexus regions                   List the known region keys
  nexus doctor page.yml           Diagnose config and page file problems`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is .nexus.yml, can also use NEXUS_CONFIG_FILE env var)")
	rootCmd.PersistentFlags().StringP("log-level", "l", "info", "log level (debug, info, warn, error)")
	_ = viper.BindPFlag("log-level", rootCmd.PersistentFlags().Lookup("log-level"))
}

// initConfig initializes the configuration system. The --config flag wins
// over NEXUS_CONFIG_FILE, which wins over the default .nexus.yml in the
// current directory. NEXUS_ prefixed environment variables override
// individual values (NEXUS_SERVER_PORT, NEXUS_SITE_BASE_PATH, ...).
func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else if envConfigFile := os.Getenv("NEXUS_CONFIG_FILE"); envConfigFile != "" {
		viper.SetConfigFile(envConfigFile)
	} else {
		viper.AddConfigPath(".")
		viper.SetConfigType("yaml")
		viper.SetConfigName(".nexus")
	}

	viper.SetEnvPrefix("NEXUS")
	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// Missing config files are fine; defaults cover everything.
	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}
