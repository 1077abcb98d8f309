// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/zjgcainiao/HanwenPDF/internal/chinese"
	"github.com/zjgcainiao/HanwenPDF/internal/layout"
	"github.com/zjgcainiao/HanwenPDF/internal/pipeline"
	"github.com/zjgcainiao/HanwenPDF/pkg/types"
)

var convertCmd = &cobra.Command{
	Use:   "convert <input.txt> [more.txt...]",
	Short: "Convert Simplified Chinese text files to Traditional Chinese PDFs",
	Long: `Convert reads each input file, converts its script under the selected
OpenCC profile, detects chapter headings, and writes
<output-dir>/<input-basename>.pdf with a flat chapter outline.

All errors are fatal for the file they occur in; a partially written PDF is
never left behind. With multiple inputs the remaining files still run and
the exit status reflects any failure.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runConvert,
}

func init() {
	convertCmd.Flags().StringP("output", "o", "", "output directory (default: current directory)")
	convertCmd.Flags().String("mode", "", "conversion profile (default: "+chinese.DefaultMode+")")
	convertCmd.Flags().String("font", "", "path to a CJK-capable TrueType font file")
	convertCmd.Flags().String("patterns", "", "YAML chapter-pattern file (default: built-in set)")

	rootCmd.AddCommand(convertCmd)
}

func runConvert(cmd *cobra.Command, args []string) error {
	cfg := convertConfig(cmd)

	if err := os.MkdirAll(cfg.OutputDir, 0o755); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}

	conv, err := chinese.NewOpenCC(cfg.Mode)
	if err != nil {
		return err
	}

	result := pipeline.RunBatch(cfg, conv, layout.PDFRenderer{}, args, os.Stdout)
	if result.HasFailures() {
		return fmt.Errorf("%d file(s) failed", result.Failed)
	}
	return nil
}

// convertConfig resolves the run configuration from flags, falling back to
// viper (config file and environment) where a flag is unset.
func convertConfig(cmd *cobra.Command) types.ConvertConfig {
	cfg := types.DefaultConvertConfig()

	stringSetting := func(flag, key, fallback string) string {
		if v, _ := cmd.Flags().GetString(flag); v != "" {
			return v
		}
		if v := viper.GetString(key); v != "" {
			return v
		}
		return fallback
	}

	cfg.Mode = stringSetting("mode", "convert.mode", cfg.Mode)
	cfg.OutputDir = stringSetting("output", "output.dir", cfg.OutputDir)
	cfg.PatternFile = stringSetting("patterns", "patterns.file", "")
	cfg.Layout.Font.Path = stringSetting("font", "font.path", "")
	if v := viper.GetString("font.family"); v != "" {
		cfg.Layout.Font.Family = v
	}
	if v := viper.GetString("page.size"); v != "" {
		cfg.Layout.Page.Size = v
	}
	margin := func(key string, dst *float64) {
		if viper.IsSet(key) {
			*dst = viper.GetFloat64(key)
		}
	}
	margin("page.margin_left", &cfg.Layout.Page.MarginLeft)
	margin("page.margin_right", &cfg.Layout.Page.MarginRight)
	margin("page.margin_top", &cfg.Layout.Page.MarginTop)
	margin("page.margin_bottom", &cfg.Layout.Page.MarginBottom)

	return cfg
}
