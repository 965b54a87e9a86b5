package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number of swatch",
		Long:  `All software has versions. This is swatch's.`,
		Run: func(cmd *cobra.Command, args []string) {
			// rootCmd.Version is set from main via SetVersion; the root
			// command's --version flag prints the same string through its
			// version template.
			fmt.Printf("swatch version %s\n", rootCmd.Version)
		},
	}
}
