package appointments

import (
	"mediconnect-portal/internal/app/models"
	"mediconnect-portal/internal/pkg/constvars"
	"time"
)

// Board is the receptionist's appointment view. All is the backing list and
// Visible the upcoming subset shown; both are reconciled together.
type Board struct {
	All     []models.Appointment
	Visible []models.Appointment
}

func NewBoard(list []models.Appointment, now time.Time) *Board {
	return &Board{
		All:     list,
		Visible: FilterUpcoming(list, now),
	}
}

func (b *Board) Apply(update models.StatusUpdate) {
	b.All = ReconcileStatus(b.All, update)
	b.Visible = ReconcileStatus(b.Visible, update)
}

func (b *Board) Pending() []models.Appointment {
	return FilterByStatus(b.Visible, constvars.AppointmentStatusPending)
}

func (b *Board) Approved() []models.Appointment {
	return FilterByStatus(b.Visible, constvars.AppointmentStatusApproved)
}

func (b *Board) Rejected() []models.Appointment {
	return FilterByStatus(b.Visible, constvars.AppointmentStatusRejected)
}

type BoardView struct {
	Total    int                  `json:"total"`
	Pending  []models.Appointment `json:"pending"`
	Approved []models.Appointment `json:"approved"`
	Rejected []models.Appointment `json:"rejected"`
}

func (b *Board) View() BoardView {
	return BoardView{
		Total:    len(b.Visible),
		Pending:  b.Pending(),
		Approved: b.Approved(),
		Rejected: b.Rejected(),
	}
}
