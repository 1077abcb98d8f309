// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/zjgcainiao/HanwenPDF/internal/chapter"
)

var patternsCmd = &cobra.Command{
	Use:   "patterns",
	Short: "Show or export the chapter-heading pattern set",
	Long: `Patterns prints the active chapter-heading pattern set in priority order.
With --write it exports the set to a YAML file, which can be edited and fed
back through --patterns or the patterns.file config key.`,
	RunE: runPatterns,
}

func init() {
	patternsCmd.Flags().String("write", "", "write the pattern set to a YAML file instead of printing it")

	rootCmd.AddCommand(patternsCmd)
}

func runPatterns(cmd *cobra.Command, args []string) error {
	patterns := chapter.DefaultPatterns()
	if pf := viper.GetString("patterns.file"); pf != "" {
		loaded, err := chapter.LoadPatternFile(pf)
		if err != nil {
			return err
		}
		patterns = loaded
	}

	if out, _ := cmd.Flags().GetString("write"); out != "" {
		if err := chapter.WritePatternFile(out, patterns); err != nil {
			return err
		}
		fmt.Println("Wrote pattern set to", out)
		return nil
	}

	for i, p := range patterns {
		fmt.Printf("%d. %-8s %s\n", i+1, p.Name(), p.Expr())
	}
	return nil
}
