package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/aretw0/decant"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of decant",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("decant version %s\n", strings.TrimSpace(decant.Version))
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
