package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// version is stamped by the release build via -ldflags.
var version = "(devel)"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the learnloop version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("learnloop %s\n", version)
	},
}
