// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the webpify CLI.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd is the base command for the webpify CLI.
var rootCmd = &cobra.Command{
	Use:   "webpify",
	Short: "Convert project images to WebP and rewrite references",
	Long: `webpify converts the JPEG and PNG images in a project's images/ directory
to WebP, scaling down images that exceed a maximum width or height, then
rewrites references to the old filenames across the project's HTML, CSS,
and JS files so links stay valid.

Run the whole pipeline with "webpify run", or the two phases separately
with "webpify convert" and "webpify relink" (the convert phase writes a
manifest of filename mappings that relink consumes).`,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./webpify.yaml or ~/.config/webpify/config.yaml)")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("webpify")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "webpify"))
		}
	}

	viper.SetEnvPrefix("WEBPIFY")
	viper.AutomaticEnv()

	viper.SetDefault("convert.input_extensions", []string{".jpg", ".jpeg", ".png"})
	viper.SetDefault("convert.output_extension", ".webp")
	viper.SetDefault("scan.text_extensions", []string{".html", ".css", ".js"})
	viper.SetDefault("scan.exclude_dirs", []string{"node_modules", "_site", ".git", ".jekyll-cache", "vendor", ".bundle"})

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
