package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number of gcpctl",
		Long:  `All software has versions. This is gcpctl's.`,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("gcpctl version %s\n", rootCmd.Version)
		},
	}
}
