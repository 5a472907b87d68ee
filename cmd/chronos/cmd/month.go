package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/msto63/chronos/pkg/temporal/calendar"
	"github.com/msto63/chronos/pkg/temporal/iso"
)

var weekdayNames = []string{"Mo", "Tu", "We", "Th", "Fr", "Sa", "Su"}

type monthDay struct {
	Day       int    `json:"day" yaml:"day"`
	ISO       string `json:"iso" yaml:"iso"`
	DayOfWeek int    `json:"dayOfWeek" yaml:"dayOfWeek"`
}

type monthResult struct {
	Calendar  string             `json:"calendar" yaml:"calendar"`
	Year      int                `json:"year" yaml:"year"`
	Month     int                `json:"month" yaml:"month"`
	MonthCode calendar.MonthCode `json:"monthCode" yaml:"monthCode"`
	Era       string             `json:"era,omitempty" yaml:"era,omitempty"`
	EraYear   int                `json:"eraYear,omitempty" yaml:"eraYear,omitempty"`
	Selected  int                `json:"selected" yaml:"selected"`
	Days      []monthDay         `json:"days" yaml:"days"`
}

var monthCmd = &cobra.Command{
	Use:   "month <date>",
	Short: "Print the calendar month containing a date",
	Example: `  chronos month 2024-03-11 --calendar hebrew
  chronos month 2019-05-01 --calendar japanese`,
	Args: cobra.ExactArgs(1),
	RunE: runMonth,
}

func init() {
	rootCmd.AddCommand(monthCmd)
}

func runMonth(cmd *cobra.Command, args []string) error {
	m, err := eng.parseMarker(args[0])
	if err != nil {
		return err
	}
	cal := m.Calendar()
	date := m.DateTime().Date
	f := cal.Fields(date)

	res := monthResult{
		Calendar:  cal.ID(),
		Year:      f.Year,
		Month:     f.Month,
		MonthCode: f.MonthCode,
		Era:       f.Era,
		EraYear:   f.EraYear,
		Selected:  f.Day,
	}
	first := iso.AddDays(date, -int64(f.Day-1))
	for i := 0; i < f.DaysInMonth; i++ {
		d := iso.AddDays(first, int64(i))
		res.Days = append(res.Days, monthDay{Day: i + 1, ISO: d.String(), DayOfWeek: iso.DayOfWeek(d)})
	}

	return render(cmd, res, func(w io.Writer) {
		fmt.Fprintln(w, renderMonth(res))
	})
}

// renderMonth lays the days out in ISO weeks starting on Monday
func renderMonth(res monthResult) string {
	title := fmt.Sprintf("%s %d %s", res.Calendar, res.Year, res.MonthCode)
	if res.Era != "" {
		title += fmt.Sprintf(" (%s %d)", res.Era, res.EraYear)
	}

	var rows []string
	header := make([]string, len(weekdayNames))
	for i, name := range weekdayNames {
		header[i] = weekdayStyle.Render(fmt.Sprintf("%3s", name))
	}
	rows = append(rows, strings.Join(header, ""))

	var week []string
	if len(res.Days) > 0 {
		for i := 1; i < res.Days[0].DayOfWeek; i++ {
			week = append(week, "   ")
		}
	}
	for _, d := range res.Days {
		cell := fmt.Sprintf("%3d", d.Day)
		switch {
		case d.Day == res.Selected:
			cell = selectedDayStyle.Render(cell)
		case d.DayOfWeek >= 6:
			cell = weekendStyle.Render(cell)
		}
		week = append(week, cell)
		if d.DayOfWeek == 7 {
			rows = append(rows, strings.Join(week, ""))
			week = nil
		}
	}
	if len(week) > 0 {
		rows = append(rows, strings.Join(week, ""))
	}

	grid := lipgloss.JoinVertical(lipgloss.Left, rows...)
	return boxStyle.Render(lipgloss.JoinVertical(lipgloss.Left, titleStyle.Render(title), grid))
}
