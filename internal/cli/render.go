package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/NikitaCOEUR/vicmd/internal/config"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("12"))

	keyStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	valueStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("15"))

	successStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("10"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("9"))

	subtleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))
)

// CompletionResult is what one completion request produced
type CompletionResult struct {
	Line       string
	Command    string
	Offset     int // Byte offset in Line where candidates replace the text
	Candidates []string
	Timing     string
}

// renderCompletion formats a result for people reading a terminal
func renderCompletion(r CompletionResult) string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Completion"))
	b.WriteString("\n")
	writeField(&b, "Line", fmt.Sprintf("%q", r.Line))
	writeField(&b, "Command", r.Command)
	writeField(&b, "Replace from", fmt.Sprintf("%d %s", r.Offset, subtleStyle.Render(fmt.Sprintf("(%q)", r.Line[r.Offset:]))))

	matches := len(r.Candidates)
	if matches > 0 {
		matches-- // the typed text is always last
	}
	writeField(&b, "Matches", fmt.Sprintf("%d", matches))
	b.WriteString("\n")

	for i, c := range r.Candidates {
		if i == len(r.Candidates)-1 {
			b.WriteString(subtleStyle.Render(fmt.Sprintf("  %q (typed)", c)))
		} else {
			b.WriteString("  " + valueStyle.Render(c))
		}
		b.WriteString("\n")
	}

	if r.Timing != "" {
		b.WriteString("\n")
		b.WriteString(subtleStyle.Render(r.Timing))
		b.WriteString("\n")
	}
	return b.String()
}

// renderAmbiguous lists the executables a fast-run name could mean
func renderAmbiguous(command string, matches []string) string {
	var b strings.Builder
	b.WriteString(errorStyle.Render(fmt.Sprintf("✗ %q is ambiguous:", command)))
	b.WriteString("\n")
	for _, m := range matches {
		b.WriteString("  " + valueStyle.Render(m) + "\n")
	}
	return b.String()
}

// renderValidation formats a validation result
func renderValidation(path string, result *config.ValidationResult) string {
	var b strings.Builder

	writeField(&b, "Validating", path)
	b.WriteString("\n")

	if result.Valid {
		b.WriteString(successStyle.Render("✓ Configuration is valid!"))
		b.WriteString("\n")
		return b.String()
	}

	b.WriteString(errorStyle.Render("✗ Configuration has errors:"))
	b.WriteString("\n")
	for i, e := range result.Errors {
		b.WriteString(fmt.Sprintf("%d. %s %s\n", i+1, keyStyle.Render("["+e.Field+"]"), e.Message))
	}
	b.WriteString(fmt.Sprintf("\nFound %d error(s)\n", len(result.Errors)))
	return b.String()
}

func writeField(b *strings.Builder, key, value string) {
	b.WriteString(keyStyle.Render(key + ": "))
	b.WriteString(valueStyle.Render(value))
	b.WriteString("\n")
}
