package protonav

import (
	"os"

	"github.com/protonav/protonav/pkg/protonav/commands"
	"github.com/spf13/cobra"
)

// rootCmd represents the base command when called without any subcommands
func BuildRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "protonav",
		Short: "Protobuf schema navigation server",
	}

	rootCmd.AddCommand(commands.BuildServeCmd())
	rootCmd.AddCommand(commands.BuildVersionCmd())

	return rootCmd
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := BuildRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
