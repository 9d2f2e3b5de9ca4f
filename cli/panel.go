package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/mattn/go-runewidth"

	"weatherreport/manager"
)

const (
	panelTitle = "🌍 Weather Report"
	labelStyle = "\x1b[1;36m"
	resetStyle = "\x1b[0m"
)

type row struct {
	label string
	value string
}

func rows(report manager.Report) []row {
	loc := report.Location
	wthr := report.Weather

	condition := wthr.WeatherCode.Description()
	if icon := wthr.WeatherCode.Icon(); icon != "" {
		condition += " " + icon
	}

	result := []row{
		{"City", loc.City},
		{"Country", loc.Country},
	}
	if loc.Continent != "" {
		result = append(result, row{"Continent", loc.Continent})
	}

	return append(result,
		row{"Coordinates", fmt.Sprintf("%s, %s", manager.FormatFloat(loc.Latitude), manager.FormatFloat(loc.Longitude))},
		row{"Temperature", manager.FormatFloat(wthr.TemperatureC) + " °C"},
		row{"Wind Speed", manager.FormatFloat(wthr.WindSpeedKmh) + " km/h"},
		row{"Condition", condition},
	)
}

// writePanel draws the report as a bordered two-column table followed by
// the one-line summary. Labels are coloured only when w is a terminal.
func writePanel(w io.Writer, report manager.Report) {
	color := isTerminal(w)
	table := rows(report)

	var labelWidth, valueWidth int
	for _, r := range table {
		labelWidth = max(labelWidth, runewidth.StringWidth(r.label))
		valueWidth = max(valueWidth, runewidth.StringWidth(r.value))
	}

	title := " " + panelTitle + " "
	inner := max(labelWidth+valueWidth+4, runewidth.StringWidth(title)+4)
	valueWidth = inner - labelWidth - 4

	left := (inner - runewidth.StringWidth(title)) / 2
	right := inner - runewidth.StringWidth(title) - left
	fmt.Fprintf(w, "╭%s%s%s╮\n", strings.Repeat("─", left), title, strings.Repeat("─", right))

	for _, r := range table {
		label := runewidth.FillRight(r.label, labelWidth)
		if color {
			label = labelStyle + label + resetStyle
		}
		fmt.Fprintf(w, "│ %s  %s │\n", label, runewidth.FillRight(r.value, valueWidth))
	}

	fmt.Fprintf(w, "╰%s╯\n", strings.Repeat("─", inner))
	fmt.Fprintln(w, report.Summary())
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}

	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
