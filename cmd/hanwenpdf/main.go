// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the hanwenpdf CLI, which converts
// plain-text Simplified Chinese books into paginated Traditional Chinese
// PDFs with chapter bookmarks.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/zjgcainiao/HanwenPDF/internal/chinese"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd is the base command for the hanwenpdf CLI.
var rootCmd = &cobra.Command{
	Use:   "hanwenpdf",
	Short: "Simplified Chinese text to Traditional Chinese PDF converter",
	Long: `hanwenpdf converts plain-text Simplified Chinese book files into paginated
Traditional Chinese PDF documents. Chapter headings are detected from a
configurable pattern set and become page breaks and sidebar bookmarks;
every body page carries an exact "Page X of Y" footer.

The script conversion is delegated to the OpenCC dictionaries and the PDF
layout to gofpdf. A CJK-capable TrueType font must be supplied by the
operator (--font or font.path in the config file).`,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./hanwenpdf.yaml or ~/.config/hanwenpdf/config.yaml)")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("hanwenpdf")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "hanwenpdf"))
		}
	}

	viper.SetDefault("convert.mode", chinese.DefaultMode)
	viper.SetDefault("output.dir", ".")

	viper.SetEnvPrefix("HANWENPDF")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
