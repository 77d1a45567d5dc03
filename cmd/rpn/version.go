package main

import (
	"fmt"
	"strings"

	"github.com/aretw0/rpn"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of rpn",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("rpn version %s\n", strings.TrimSpace(rpn.Version))
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
