package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/Rahulkumar010/python-noadmin/internal/download"
	"github.com/Rahulkumar010/python-noadmin/internal/installer"
	"github.com/Rahulkumar010/python-noadmin/internal/pip"
	"github.com/Rahulkumar010/python-noadmin/internal/platform"
	"github.com/Rahulkumar010/python-noadmin/internal/release"
	"github.com/Rahulkumar010/python-noadmin/tui"
	"github.com/spf13/cobra"
)

var (
	installVersion string
	installForce   bool
)

type installOptions struct {
	version string
	force   bool
}

// installCmd represents the install command
var installCmd = &cobra.Command{
	Use:   "install",
	Short: "Download and install Python into your home directory",
	Long: `Download a standalone Python build and install it under ~/` + installer.DirName + `.

The installation needs no administrator rights. After unpacking, pip is
bootstrapped and the interpreter directory is added to PATH for new shells.

Examples:
  # Install the default version
  pynoadmin install

  # Install a specific version
  pynoadmin install --version 3.11.9

  # Replace an existing installation
  pynoadmin install --force`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runInstall(cmd, installOptions{version: installVersion, force: installForce})
	},
}

func init() {
	installCmd.Flags().StringVarP(&installVersion, "version", "v", release.DefaultVersion, "Python version to install")
	installCmd.Flags().BoolVarP(&installForce, "force", "f", false, "replace an existing installation")

	rootCmd.AddCommand(installCmd)
}

func runInstall(cmd *cobra.Command, opts installOptions) error {
	ctx := cmd.Context()

	info, err := platform.Detect()
	if err != nil {
		return err
	}

	if err := release.Validate(opts.version); err != nil {
		return err
	}
	if !release.Known(opts.version) {
		PrintWarning(fmt.Sprintf("Python %s is not a tested version; the download may not exist", opts.version))
	}

	installDir, err := installer.Dir()
	if err != nil {
		return err
	}

	fmt.Println(tui.RenderHeader("Python No-Admin Installer"))
	fmt.Println()
	fmt.Println(tui.LabelStyle().Render("Version:  ") + opts.version)
	fmt.Println(tui.LabelStyle().Render("Platform: ") + info.String())
	fmt.Println(tui.LabelStyle().Render("Target:   ") + installDir)
	fmt.Println()

	bar := tui.NewDownloadProgress(os.Stdout)
	dl := download.NewClient()
	dl.OnProgress = bar.Update

	inst := installer.ForPlatform(info, dl, installDir)

	if !opts.force {
		if existing := describeExisting(cmd, inst, installDir); existing != "" {
			PrintWarning(fmt.Sprintf("Python is already installed at %s (%s)", installDir, existing))
			fmt.Println(tui.SubtleTextStyle().Render("Re-run with --force to replace it."))
			return nil
		}
	}

	pythonExe, err := inst.Install(ctx, opts.version)
	bar.Finish()
	if err != nil {
		return err
	}

	reported, err := installer.VerifyInterpreter(ctx, pythonExe)
	if err != nil {
		return err
	}
	PrintSuccessSimple("Installed " + reported)

	if err := pip.Ensure(ctx, pythonExe, dl); err != nil {
		return err
	}

	result := inst.ConfigurePath(installDir)
	switch result.Status {
	case installer.StatusOK:
		if result.Message != "" {
			PrintSuccessSimple(result.Message)
		}
	case installer.StatusDegraded:
		PrintWarning(result.Message)
		for _, step := range result.ManualSteps {
			fmt.Println(tui.SubtleTextStyle().Render("  " + step))
		}
	case installer.StatusFailed:
		return fmt.Errorf("PATH configuration failed: %s", result.Message)
	}

	fmt.Println()
	fmt.Println(tui.RenderSummaryBox(completionSummary(opts.version, pythonExe)))
	return nil
}

// describeExisting reports the version string of an installation already
// sitting at installDir, or "" when the directory is absent or holds no
// working interpreter.
func describeExisting(cmd *cobra.Command, inst installer.Installer, installDir string) string {
	if _, err := os.Stat(installDir); err != nil {
		return ""
	}
	exe := inst.InterpreterPath(installDir)
	reported, err := installer.VerifyInterpreter(cmd.Context(), exe)
	if err != nil {
		return "contents unrecognized"
	}
	return reported
}

func completionSummary(version, pythonExe string) string {
	var b strings.Builder
	b.WriteString(tui.SuccessStyle().Render("Python " + version + " is ready"))
	b.WriteString("\n\n")
	b.WriteString("Interpreter: " + pythonExe + "\n")
	b.WriteString("Run pip:     " + pythonExe + " -m pip\n\n")
	b.WriteString(tui.SubtleTextStyle().Render("Open a new terminal for PATH changes to take effect."))
	return b.String()
}
