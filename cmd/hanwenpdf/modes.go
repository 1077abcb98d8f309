package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/zjgcainiao/HanwenPDF/internal/chinese"
)

var modesCmd = &cobra.Command{
	Use:   "modes",
	Short: "List the supported conversion profiles",
	Run: func(cmd *cobra.Command, args []string) {
		for _, m := range chinese.Modes() {
			marker := " "
			if m == chinese.DefaultMode {
				marker = "*"
			}
			fmt.Printf("%s %s\n", marker, m)
		}
	},
}

func init() {
	rootCmd.AddCommand(modesCmd)
}
