package tui

import (
	"io"

	"github.com/Rahulkumar010/python-noadmin/tui/theme"
	"github.com/charmbracelet/lipgloss"
)

var (
	helpStyleTUI    lipgloss.Style
	errorStyleTUI   lipgloss.Style
	warningStyleTUI lipgloss.Style
	successStyleTUI lipgloss.Style

	primaryStyle      lipgloss.Style
	primaryTitleStyle lipgloss.Style
	labelStyle        lipgloss.Style
	subtleTextStyle   lipgloss.Style
	headerBoxStyle    lipgloss.Style
	summaryBoxStyle   lipgloss.Style
)

func InitCommonStyles(out io.Writer) {
	theme.Init(out)

	helpStyleTUI = theme.Neutral().Italic(true)
	errorStyleTUI = theme.Error()
	warningStyleTUI = theme.Warning()
	successStyleTUI = theme.Success()

	primaryStyle = theme.Primary()
	primaryTitleStyle = primaryStyle.Bold(true)
	labelStyle = theme.Label()
	subtleTextStyle = theme.Neutral()
	headerBoxStyle = primaryTitleStyle.
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(theme.PrimaryColorHex)).
		Padding(0, 2)
	summaryBoxStyle = theme.Renderer().NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(theme.PrimaryColorHex)).
		Padding(0, 2)
}

func RenderHeader(title string) string {
	if title == "" {
		return ""
	}
	return headerBoxStyle.Render(title)
}

func RenderSummaryBox(body string) string {
	if body == "" {
		return ""
	}
	return summaryBoxStyle.Render(body)
}

func RenderWarningSimple(message string) string {
	if message == "" {
		return ""
	}
	return warningStyleTUI.Render("⚠ " + message)
}

func RenderWarning(message string) string {
	if message == "" {
		return ""
	}
	return warningStyleTUI.Render("⚠ Warning: " + message)
}

func RenderSuccessSimple(message string) string {
	if message == "" {
		return ""
	}
	return successStyleTUI.Render("✓ " + message)
}

func RenderSuccess(message string) string {
	if message == "" {
		return ""
	}
	return successStyleTUI.Render("✓ Success: " + message)
}

func RenderError(err error) string {
	if err == nil {
		return ""
	}
	return errorStyleTUI.Render("✗ Error: " + err.Error())
}

func RenderErrorMessage(message string) string {
	if message == "" {
		return ""
	}
	return errorStyleTUI.Render("✗ Error: " + message)
}

func PrimaryStyle() lipgloss.Style {
	return primaryStyle
}

func PrimaryTitleStyle() lipgloss.Style {
	return primaryTitleStyle
}

func LabelStyle() lipgloss.Style {
	return labelStyle
}

func SubtleTextStyle() lipgloss.Style {
	return subtleTextStyle
}

func HelpStyle() lipgloss.Style {
	return helpStyleTUI
}

func WarningStyle() lipgloss.Style {
	return warningStyleTUI
}

func SuccessStyle() lipgloss.Style {
	return successStyleTUI
}

func ErrorStyle() lipgloss.Style {
	return errorStyleTUI
}

func ResetLine(out io.Writer) {
	if out == nil {
		return
	}
	_, _ = io.WriteString(out, "\r\x1b[2K")
}
