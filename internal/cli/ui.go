package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	colorCyan  = lipgloss.Color("36")  // teal - primary values
	colorGreen = lipgloss.Color("35")  // green - success
	colorAmber = lipgloss.Color("220") // amber - warnings
	colorWhite = lipgloss.Color("255") // bright white - values
	colorDim   = lipgloss.Color("240") // dim gray - muted text
)

var (
	styleTitle   = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	styleLabel   = lipgloss.NewStyle().Foreground(colorDim)
	styleValue   = lipgloss.NewStyle().Foreground(colorWhite)
	styleNumber  = lipgloss.NewStyle().Foreground(colorCyan)
	styleSuccess = lipgloss.NewStyle().Foreground(colorGreen)
	styleWarning = lipgloss.NewStyle().Foreground(colorAmber)
)

// summary renders an aligned label/value block, the report printed after
// gen and query runs.
type summary struct {
	title string
	rows  [][2]string
}

func newSummary(title string) *summary {
	return &summary{title: title}
}

func (s *summary) add(label, value string) {
	s.rows = append(s.rows, [2]string{label, value})
}

func (s *summary) addf(label, format string, args ...any) {
	s.add(label, fmt.Sprintf(format, args...))
}

// String renders the block with labels padded to a common width.
func (s *summary) String() string {
	width := 0
	for _, row := range s.rows {
		if len(row[0]) > width {
			width = len(row[0])
		}
	}

	var b strings.Builder
	b.WriteString(styleTitle.Render(s.title))
	b.WriteByte('\n')
	for _, row := range s.rows {
		b.WriteString(styleLabel.Render(fmt.Sprintf("  %-*s ", width, row[0])))
		b.WriteString(styleValue.Render(row[1]))
		b.WriteByte('\n')
	}
	return b.String()
}

// fmtPerm renders a permutation with blanks between symbols, the same
// shape accepted by --goal and --perm.
func fmtPerm(perm []int) string {
	parts := make([]string, len(perm))
	for i, s := range perm {
		parts[i] = fmt.Sprintf("%d", s)
	}
	return strings.Join(parts, " ")
}
