package tui

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/Rahulkumar010/python-noadmin/tui/theme"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/mattn/go-isatty"
)

// DownloadProgress redraws a single progress line in place as bytes arrive.
// On non-terminal output it stays quiet so logs do not fill with control
// characters.
type DownloadProgress struct {
	out        io.Writer
	bar        progress.Model
	isTerminal bool
	lastDraw   time.Time
	drew       bool
}

func NewDownloadProgress(out io.Writer) *DownloadProgress {
	bar := progress.New(
		progress.WithScaledGradient(theme.PrimaryColorHex, theme.SuccessColorHex),
		progress.WithWidth(40),
	)
	bar.ShowPercentage = false

	isTerminal := false
	if f, ok := out.(*os.File); ok {
		isTerminal = isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
	}

	return &DownloadProgress{out: out, bar: bar, isTerminal: isTerminal}
}

// Update renders the current state. Redraws are throttled so slow terminals
// are not flooded; a total of zero means the server sent no content length
// and only the byte count is shown.
func (d *DownloadProgress) Update(downloaded, total int64) {
	if !d.isTerminal {
		return
	}
	if time.Since(d.lastDraw) < 100*time.Millisecond && downloaded != total {
		return
	}
	d.lastDraw = time.Now()
	d.drew = true

	if total <= 0 {
		fmt.Fprintf(d.out, "\r%s downloaded", formatBytes(downloaded))
		return
	}

	percent := float64(downloaded) / float64(total)
	if percent > 1 {
		percent = 1
	}
	fmt.Fprintf(d.out, "\r%s %s / %s (%.1f%%)",
		d.bar.ViewAs(percent),
		formatBytes(downloaded),
		formatBytes(total),
		percent*100,
	)
}

// Finish terminates the progress line so the next write starts clean.
func (d *DownloadProgress) Finish() {
	if d.drew {
		fmt.Fprintln(d.out)
		d.drew = false
	}
}

func formatBytes(bytes int64) string {
	const unit = 1024
	if bytes < unit {
		return fmt.Sprintf("%d B", bytes)
	}

	div, exp := int64(unit), 0
	for n := bytes / unit; n >= unit; n /= unit {
		div *= unit
		exp++
	}

	units := []string{"KB", "MB", "GB", "TB", "PB"}
	return fmt.Sprintf("%.1f %s", float64(bytes)/float64(div), units[exp])
}
