package cmd

import (
	"os"

	"github.com/Rahulkumar010/python-noadmin/internal/version"
	"github.com/Rahulkumar010/python-noadmin/tui"
	"github.com/spf13/cobra"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:           "pynoadmin",
	Short:         "Install Python without administrator rights",
	Long:          "pynoadmin provisions a self-contained Python installation under your\nhome directory, bootstraps pip, and wires up PATH. No sudo, no MSI,\nno system packages touched.",
	Version:       version.BuildVersion,
	SilenceErrors: true,
	SilenceUsage:  true,
	RunE: func(cmd *cobra.Command, args []string) error {
		// Bare invocation installs the default version.
		return runInstall(cmd, installOptions{version: installVersion, force: installForce})
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		PrintError(err)
		os.Exit(1)
	}
}

func init() {
	tui.InitCommonStyles(os.Stdout)
}
