package cmd

import (
	"fmt"

	"github.com/Rahulkumar010/python-noadmin/internal/release"
	"github.com/Rahulkumar010/python-noadmin/tui"
	"github.com/spf13/cobra"
)

// listCmd represents the list command
var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the tested Python versions",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println(tui.PrimaryTitleStyle().Render("Tested Python versions:"))
		fmt.Println()
		for _, v := range release.Versions {
			marker := "  "
			suffix := ""
			if v == release.DefaultVersion {
				marker = tui.PrimaryStyle().Render("▶ ")
				suffix = tui.SubtleTextStyle().Render("  (default)")
			}
			fmt.Println(marker + v + suffix)
		}
		fmt.Println()
		fmt.Println(tui.SubtleTextStyle().Render("Other versions may work: pass any version with install --version."))
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
}
