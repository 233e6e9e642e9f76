package cmd

import (
	"errors"
	"fmt"
	"os"
	"runtime"

	"github.com/Rahulkumar010/python-noadmin/internal/installer"
	"github.com/Rahulkumar010/python-noadmin/tui"
	"github.com/spf13/cobra"
)

// confirmFn asks for the destructive-action confirmation. Seam for tests.
var confirmFn = tui.Confirm

// uninstallCmd represents the uninstall command
var uninstallCmd = &cobra.Command{
	Use:   "uninstall",
	Short: "Remove the installed Python",
	Long: `Remove the Python installation under ~/` + installer.DirName + `.

Installed packages are deleted along with the interpreter. PATH entries
added during installation are left in place; the command prints how to
clean them up.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runUninstall()
	},
}

func init() {
	rootCmd.AddCommand(uninstallCmd)
}

func runUninstall() error {
	installDir, err := installer.Dir()
	if err != nil {
		return err
	}

	if _, err := os.Stat(installDir); err != nil {
		if os.IsNotExist(err) {
			fmt.Println("Nothing to uninstall: no installation found at " + installDir)
			return nil
		}
		return err
	}

	confirmed, err := confirmFn("Remove the Python installation at " + installDir + "?\nThis deletes the interpreter and every installed package.")
	if err != nil {
		var cancel *tui.CancellationError
		if errors.As(err, &cancel) {
			fmt.Println("Uninstall cancelled.")
			return nil
		}
		return err
	}
	if !confirmed {
		fmt.Println("Uninstall cancelled.")
		return nil
	}

	if err := os.RemoveAll(installDir); err != nil {
		return fmt.Errorf("remove installation: %w", err)
	}

	PrintSuccessSimple("Removed " + installDir)
	printPathCleanupHints(installDir)
	return nil
}

func printPathCleanupHints(installDir string) {
	fmt.Println()
	if runtime.GOOS == "windows" {
		fmt.Println(tui.SubtleTextStyle().Render("PATH entries pointing at " + installDir + " remain in your user"))
		fmt.Println(tui.SubtleTextStyle().Render("environment. Remove them via Settings > System > About >"))
		fmt.Println(tui.SubtleTextStyle().Render("Advanced system settings > Environment Variables."))
		return
	}
	fmt.Println(tui.SubtleTextStyle().Render("Your shell profile may still export " + installDir + " on PATH."))
	fmt.Println(tui.SubtleTextStyle().Render("Delete the block between \"# Python-NoAdmin PATH\" and"))
	fmt.Println(tui.SubtleTextStyle().Render("\"# End Python-NoAdmin\" from your profile to finish cleanup."))
}
