package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
)

type calendarInfo struct {
	ID         string   `json:"id" yaml:"id"`
	Eras       []string `json:"eras,omitempty" yaml:"eras,omitempty"`
	LeapMonths bool     `json:"leapMonths" yaml:"leapMonths"`
}

var calendarsCmd = &cobra.Command{
	Use:   "calendars",
	Short: "List the supported calendar systems",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		var infos []calendarInfo
		for _, id := range eng.calendars.IDs() {
			cal, err := eng.calendars.Get(id)
			if err != nil {
				return err
			}
			infos = append(infos, calendarInfo{
				ID:         id,
				Eras:       cal.Eras(),
				LeapMonths: cal.LeapMonthPosition() != 0,
			})
		}
		return render(cmd, infos, func(w io.Writer) {
			fmt.Fprintln(w, headerStyle.Render(fmt.Sprintf("%-16s %-6s %s", "CALENDAR", "LEAP", "ERAS")))
			for _, info := range infos {
				leap := "-"
				if info.LeapMonths {
					leap = "yes"
				}
				fmt.Fprintf(w, "%-16s %-6s %s\n", info.ID, leap, strings.Join(info.Eras, ", "))
			}
		})
	},
}

func init() {
	rootCmd.AddCommand(calendarsCmd)
}
