package cli

import (
	"fmt"
	"io"
	"mediconnect-portal/internal/app/models"
	"mediconnect-portal/internal/app/services/core/appointments"
	"mediconnect-portal/internal/app/services/core/slot"
	"text/tabwriter"

	"github.com/goccy/go-json"
)

func printJSON(w io.Writer, v interface{}) error {
	raw, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, string(raw))
	return err
}

func printDates(w io.Writer, view *slot.DoctorScheduleView) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "DATE\tDAY")
	for _, date := range view.AvailableDates {
		fmt.Fprintf(tw, "%s\t%s\n", date.Date, date.Day)
	}
	if len(view.OffDays) > 0 {
		fmt.Fprintf(tw, "\nOff days: %v\n", view.OffDays)
	}
	return tw.Flush()
}

func printSlots(w io.Writer, slots []models.Slot) error {
	if len(slots) == 0 {
		_, err := fmt.Fprintln(w, "No slots available")
		return err
	}
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "#\tSTART\tEND\tSTATUS")
	for _, s := range slots {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\n", s.SlotID, s.StartDateTime, s.EndDateTime, s.Status)
	}
	return tw.Flush()
}

func printBoard(w io.Writer, view appointments.BoardView) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tPATIENT\tSTART\tPURPOSE\tSTATUS")
	for _, group := range [][]models.Appointment{view.Pending, view.Approved, view.Rejected} {
		for _, a := range group {
			fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n", a.Identifier(), a.PatientEmail, a.StartDateTime, a.Purpose, a.Status)
		}
	}
	fmt.Fprintf(tw, "\nTotal: %d  Pending: %d  Approved: %d  Rejected: %d\n",
		view.Total, len(view.Pending), len(view.Approved), len(view.Rejected))
	return tw.Flush()
}
