package main

import (
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"

	"pms/internal/domains/availability"
	"pms/internal/domains/availability/model/dto"

	"github.com/spf13/cobra"
	"golang.org/x/term"
)

const (
	defaultWidth = 120
	roomColumns  = 16
)

var (
	shortCodes = map[string]string{
		availability.CellAvailable:   ".",
		availability.CellCheckIn:     "[",
		availability.CellCheckOut:    "]",
		availability.CellTurnover:    "X",
		availability.CellOccupied:    "#",
		availability.CellMaintenance: "M",
		availability.CellOutOfOrder:  "O",
	}
	longCodes = map[string]string{
		availability.CellAvailable:   "-",
		availability.CellCheckIn:     "IN",
		availability.CellCheckOut:    "OUT",
		availability.CellTurnover:    "TRN",
		availability.CellOccupied:    "OCC",
		availability.CellMaintenance: "MNT",
		availability.CellOutOfOrder:  "OOO",
	}
)

func calendarCmd() *cobra.Command {
	var req dto.CalendarRequest

	var floor int

	cmd := &cobra.Command{
		Use:   "calendar",
		Short: "Print the room availability grid",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if cmd.Flags().Changed("floor") {
				req.Floor = &floor
			}

			calendar, err := console.Availability.Calendar(operatorContext(cmd.Context()), req)
			if err != nil {
				return fmt.Errorf("failed to load calendar: %w", err)
			}

			return renderCalendar(os.Stdout, calendar, terminalWidth())
		},
	}

	cmd.Flags().StringVar(&req.View, "view", availability.ViewWeek, "week or month")
	cmd.Flags().StringVar(&req.Anchor, "anchor", "", "anchor date YYYY-MM-DD, defaults to today")
	cmd.Flags().StringVar(&req.Type, "type", "", "room type filter")
	cmd.Flags().IntVar(&floor, "floor", 0, "floor filter")

	return cmd
}

func terminalWidth() int {
	fd := int(os.Stdout.Fd())
	if !term.IsTerminal(fd) {
		return defaultWidth
	}

	width, _, err := term.GetSize(fd)
	if err != nil || width <= 0 {
		return defaultWidth
	}

	return width
}

// renderCalendar picks three letter codes when every day fits in width, single characters otherwise.
func renderCalendar(out io.Writer, calendar dto.CalendarResponse, width int) error {
	codes, label := longCodes, func(day string) string { return day[5:] }
	if roomColumns+len(calendar.Days)*6 > width {
		codes, label = shortCodes, func(day string) string { return day[8:] }
	}

	fmt.Fprintf(out, "%s view from %s (previous %s, next %s)\n\n", calendar.View, calendar.Anchor, calendar.Previous, calendar.Next)

	writer := tabwriter.NewWriter(out, 1, 2, 1, ' ', 0)

	header := make([]string, 0, len(calendar.Days)+2)
	header = append(header, "ROOM", "TYPE")

	for _, day := range calendar.Days {
		header = append(header, label(day))
	}

	fmt.Fprintln(writer, strings.Join(header, "\t"))

	for _, row := range calendar.Rows {
		cells := make([]string, 0, len(row.Cells)+2)
		cells = append(cells, row.RoomNumber, row.RoomType)

		for _, cell := range row.Cells {
			code, ok := codes[cell.State]
			if !ok {
				code = "?"
			}

			cells = append(cells, code)
		}

		fmt.Fprintln(writer, strings.Join(cells, "\t"))
	}

	if err := writer.Flush(); err != nil {
		return fmt.Errorf("failed to write calendar: %w", err)
	}

	fmt.Fprintln(out)

	return legend(out, codes)
}

func legend(out io.Writer, codes map[string]string) error {
	states := []string{
		availability.CellAvailable,
		availability.CellCheckIn,
		availability.CellCheckOut,
		availability.CellTurnover,
		availability.CellOccupied,
		availability.CellMaintenance,
		availability.CellOutOfOrder,
	}

	parts := make([]string, len(states))
	for i, state := range states {
		parts[i] = codes[state] + " " + state
	}

	if _, err := fmt.Fprintln(out, strings.Join(parts, "  ")); err != nil {
		return fmt.Errorf("failed to write legend: %w", err)
	}

	return nil
}
