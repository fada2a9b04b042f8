package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// uiOut receives every status line.
var uiOut io.Writer = os.Stdout

// =============================================================================
// Styles
// =============================================================================

var (
	// StyleDim renders secondary text: details, separators, timings.
	StyleDim = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))

	styleIconSpinner = lipgloss.NewStyle().Foreground(lipgloss.Color("36"))
	stylePath        = lipgloss.NewStyle().Foreground(lipgloss.Color("255"))
	styleCommand     = lipgloss.NewStyle().Foreground(lipgloss.Color("75"))
	styleWarnText    = lipgloss.NewStyle().Foreground(lipgloss.Color("220"))
	styleCacheHit    = lipgloss.NewStyle().Foreground(lipgloss.Color("35"))
)

type statusKind int

const (
	statusSuccess statusKind = iota
	statusError
	statusWarning
	statusInfo
)

var statusIcons = [...]struct {
	glyph string
	style lipgloss.Style
}{
	statusSuccess: {"✓", lipgloss.NewStyle().Foreground(lipgloss.Color("35"))},
	statusError:   {"✗", lipgloss.NewStyle().Foreground(lipgloss.Color("167"))},
	statusWarning: {"!", lipgloss.NewStyle().Foreground(lipgloss.Color("220"))},
	statusInfo:    {"›", lipgloss.NewStyle().Foreground(lipgloss.Color("245"))},
}

// =============================================================================
// Status Lines
// =============================================================================

func printStatus(kind statusKind, format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	if kind == statusWarning {
		msg = styleWarnText.Render(msg)
	}
	icon := statusIcons[kind]
	fmt.Fprintln(uiOut, icon.style.Render(icon.glyph)+" "+msg)
}

func printSuccess(format string, args ...any) { printStatus(statusSuccess, format, args...) }
func printError(format string, args ...any)   { printStatus(statusError, format, args...) }
func printWarning(format string, args ...any) { printStatus(statusWarning, format, args...) }
func printInfo(format string, args ...any)    { printStatus(statusInfo, format, args...) }

// printDetail prints an indented, dimmed line under the previous status.
func printDetail(format string, args ...any) {
	fmt.Fprintln(uiOut, "  "+StyleDim.Render(fmt.Sprintf(format, args...)))
}

// printFile prints the path of a written file.
func printFile(path string) {
	fmt.Fprintln(uiOut, "  "+StyleDim.Render("→")+" "+stylePath.Render(path))
}

// printStats prints the panel and line counts of a figure and whether it
// came from the cache. Zero counts are left out; cache hits report none.
func printStats(panels, lines int, cached bool) {
	var parts []string
	if panels > 0 {
		parts = append(parts, StyleDim.Render(fmt.Sprintf("%d panels", panels)))
	}
	if lines > 0 {
		parts = append(parts, StyleDim.Render(fmt.Sprintf("%d lines", lines)))
	}
	if cached {
		parts = append(parts, styleCacheHit.Render("cached"))
	} else {
		parts = append(parts, StyleDim.Render("fresh"))
	}
	fmt.Fprintln(uiOut, "  "+strings.Join(parts, StyleDim.Render(" · ")))
}

// printNextStep suggests the command to run next.
func printNextStep(description, cmd string) {
	fmt.Fprintln(uiOut, StyleDim.Render(description+":")+" "+styleCommand.Render(cmd))
}
