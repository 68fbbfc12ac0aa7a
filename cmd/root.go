/*
Copyright © 2026 Darko Luketic <info@icod.de>
*/
package cmd

import (
	"errors"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/deicod/usdafas/pkg/fas"
)

var (
	configFile  string
	baseURL     string
	httpTimeout time.Duration
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "usdafas",
	Short: "Query the USDA FAS Open Data API from the terminal",
	Long: "A Cobra CLI for the USDA Foreign Agricultural Service Open Data API.\n" +
		"Covers the PSD (Production, Supply and Distribution) and ESR (Export\n" +
		"Sales Reporting) endpoint families and prints responses as indented JSON.",
	RunE: func(_ *cobra.Command, _ []string) error {
		return errors.New("a subcommand is required")
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file (default is $HOME/.usdafas.yaml)")
	rootCmd.PersistentFlags().StringVar(&baseURL, "base-url", fas.DefaultBaseURL, "base URL of the FAS Open Data API")
	rootCmd.PersistentFlags().DurationVar(&httpTimeout, "timeout", 0, "request timeout (0 uses the transport default)")

	if err := viper.BindPFlag("base_url", rootCmd.PersistentFlags().Lookup("base-url")); err != nil {
		panic(err)
	}
	if err := viper.BindPFlag("timeout", rootCmd.PersistentFlags().Lookup("timeout")); err != nil {
		panic(err)
	}
}

// initConfig reads in the config file and environment before any
// subcommand runs. A .env in the working directory is picked up so
// the API key does not have to live in the shell profile.
func initConfig() {
	if configFile != "" {
		viper.SetConfigFile(configFile)
	} else if home, err := os.UserHomeDir(); err == nil {
		viper.AddConfigPath(home)
		viper.SetConfigType("yaml")
		viper.SetConfigName(".usdafas")
	}

	_ = godotenv.Load()

	if err := viper.BindEnv("api_key", "USDA_API_KEY"); err != nil {
		panic(err)
	}

	// Missing config file is fine; the environment alone is enough.
	_ = viper.ReadInConfig()
}

// resolveAPIKey returns the credential from the USDA_API_KEY
// environment variable (including a loaded .env) or the config file.
func resolveAPIKey() string {
	return viper.GetString("api_key")
}
