// Copyright (c) 2024 John Dewey

// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to
// deal in the Software without restriction, including without limitation the
// rights to use, copy, modify, merge, publish, distribute, sublicense, and/or
// sell copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:

// The above copyright notice and this permission notice shall be included in
// all copies or substantial portions of the Software.

// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING
// FROM, OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER
// DEALINGS IN THE SOFTWARE.

package cli

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"golang.org/x/term"

	"github.com/retr0h/botconsole/internal/client"
)

// Theme colors for terminal output.
var (
	Purple    = lipgloss.Color("99")
	Gray      = lipgloss.Color("245")
	LightGray = lipgloss.Color("241")
	White     = lipgloss.Color("15")
	Teal      = lipgloss.Color("#06ffa5")
)

var (
	labelStyle = lipgloss.NewStyle().Bold(true).Foreground(Purple)
	valueStyle = lipgloss.NewStyle().Foreground(Teal)

	// DimStyle is a muted style for secondary text.
	DimStyle = lipgloss.NewStyle().Foreground(Gray)
)

// Section is a titled table.
type Section struct {
	Title   string
	Headers []string
	Rows    [][]string
}

// minColWidth is the narrowest a scaled column may become.
const minColWidth = 8

// PrintStyledTable renders each section as a bordered table sized to the
// terminal.
func PrintStyledTable(
	sections []Section,
) {
	re := lipgloss.NewRenderer(os.Stdout)

	termWidth, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil {
		termWidth = 120
	}

	headerStyle := re.NewStyle().Foreground(White).Bold(true).Align(lipgloss.Center)
	cellStyle := re.NewStyle().PaddingLeft(1)
	oddRowStyle := cellStyle.Foreground(Gray)
	evenRowStyle := cellStyle.Foreground(LightGray)
	borderStyle := re.NewStyle().Foreground(Purple)
	paddingStyle := re.NewStyle().Padding(0, 2)
	titleStyle := re.NewStyle().Bold(true).Foreground(Purple).PaddingLeft(2).PaddingTop(1)

	for _, section := range sections {
		widths := columnWidths(section.Headers, section.Rows, 1)
		fitWidths(widths, termWidth)

		if section.Title != "" {
			fmt.Println(titleStyle.Render(section.Title + ":"))
		}

		t := table.New().
			Border(lipgloss.ThickBorder()).
			BorderStyle(borderStyle).
			StyleFunc(func(
				row int,
				col int,
			) lipgloss.Style {
				style := evenRowStyle
				if row%2 != 0 {
					style = oddRowStyle
				}
				if col < len(widths) {
					style = style.Width(widths[col])
				}

				return style
			})

		headers := make([]string, len(section.Headers))
		for i, h := range section.Headers {
			headers[i] = headerStyle.Render(h)
		}
		t.Headers(headers...)
		t.Rows(section.Rows...)

		fmt.Println(paddingStyle.Render(t.String()))
	}
}

// PrintKV prints label/value pairs on one indented line. Arguments
// alternate between labels and values.
func PrintKV(
	pairs ...string,
) {
	if len(pairs) == 0 || len(pairs)%2 != 0 {
		return
	}

	rendered := make([]string, 0, len(pairs)/2)
	for i := 0; i < len(pairs); i += 2 {
		rendered = append(
			rendered,
			labelStyle.Render(pairs[i]+":")+" "+valueStyle.Render(pairs[i+1]),
		)
	}

	fmt.Println("  " + strings.Join(rendered, "    "))
}

// FormatAge renders d as "3d 4h", "12h 30m", "45m" or "30s".
func FormatAge(
	d time.Duration,
) string {
	if d <= 0 {
		return ""
	}

	days := int(d.Hours()) / 24
	hours := int(d.Hours()) % 24
	minutes := int(d.Minutes()) % 60

	switch {
	case days > 0:
		return fmt.Sprintf("%dd %dh", days, hours)
	case hours > 0:
		return fmt.Sprintf("%dh %dm", hours, minutes)
	case minutes > 0:
		return fmt.Sprintf("%dm", minutes)
	default:
		return fmt.Sprintf("%ds", int(d.Seconds()))
	}
}

// FormatBytes renders b as "5.2 KB", "1.0 GB" and so on.
func FormatBytes(
	b uint64,
) string {
	const (
		kb = 1024
		mb = kb * 1024
		gb = mb * 1024
	)

	switch {
	case b >= gb:
		return fmt.Sprintf("%.1f GB", float64(b)/float64(gb))
	case b >= mb:
		return fmt.Sprintf("%.1f MB", float64(b)/float64(mb))
	case b >= kb:
		return fmt.Sprintf("%.1f KB", float64(b)/float64(kb))
	default:
		return fmt.Sprintf("%d B", b)
	}
}

// FormatList joins list with commas, or returns "None".
func FormatList(
	list []string,
) string {
	if len(list) == 0 {
		return "None"
	}

	return strings.Join(list, ", ")
}

// HandleError logs a failed console call. Auth failures are reported
// separately from other errors.
func HandleError(
	err error,
	logger *slog.Logger,
) {
	var apiErr *client.Error
	if !errors.As(err, &apiErr) {
		logger.Error("request failed", slog.String("error", err.Error()))
		return
	}

	if client.IsUnauthorized(err) || client.IsForbidden(err) {
		logger.Error(
			"authorization error",
			slog.Int("code", apiErr.StatusCode),
			slog.String("response", apiErr.Message),
		)
		return
	}

	logger.Error(
		"error in response",
		slog.Int("code", apiErr.StatusCode),
		slog.String("error", apiErr.Message),
	)
}

func columnWidths(
	headers []string,
	rows [][]string,
	padding int,
) []int {
	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = len(h)
	}

	for _, row := range rows {
		for i, cell := range row {
			if i >= len(widths) {
				continue
			}
			for _, line := range strings.Split(cell, "\n") {
				if len(line) > widths[i] {
					widths[i] = len(line)
				}
			}
		}
	}

	for i := range widths {
		widths[i] += padding * 2
	}

	return widths
}

// fitWidths scales widths down proportionally when the table would not
// fit in termWidth.
func fitWidths(
	widths []int,
	termWidth int,
) {
	total := len(widths) * 3
	for _, w := range widths {
		total += w
	}

	if total <= termWidth-4 {
		return
	}

	scale := float64(termWidth-4) / float64(total)
	for i := range widths {
		widths[i] = int(float64(widths[i]) * scale)
		if widths[i] < minColWidth {
			widths[i] = minColWidth
		}
	}
}
