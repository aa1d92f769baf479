package appointments

import (
	"mediconnect-portal/internal/app/models"
	"mediconnect-portal/internal/pkg/utils"
	"time"
)

// ReconcileStatus copies list and replaces the status of the entry whose id
// matches update. Length, order and every other field stay as they were.
func ReconcileStatus(list []models.Appointment, update models.StatusUpdate) []models.Appointment {
	reconciled := make([]models.Appointment, len(list))
	copy(reconciled, list)
	for i := range reconciled {
		if reconciled[i].Identifier() == update.AppointmentID {
			reconciled[i].Status = update.Status
		}
	}
	return reconciled
}

// RemoveAppointment drops the entry with the given id.
func RemoveAppointment(list []models.Appointment, appointmentID string) []models.Appointment {
	kept := make([]models.Appointment, 0, len(list))
	for _, appointment := range list {
		if appointment.Identifier() != appointmentID {
			kept = append(kept, appointment)
		}
	}
	return kept
}

// FilterUpcoming keeps appointments starting strictly after now.
func FilterUpcoming(list []models.Appointment, now time.Time) []models.Appointment {
	upcoming := make([]models.Appointment, 0, len(list))
	for _, appointment := range list {
		start, err := utils.ParseAPIDateTime(appointment.StartDateTime, now.Location())
		if err == nil && start.After(now) {
			upcoming = append(upcoming, appointment)
		}
	}
	return upcoming
}

// FilterPastWithRecords keeps appointments that started before now and carry medical records.
func FilterPastWithRecords(list []models.Appointment, now time.Time) []models.Appointment {
	past := make([]models.Appointment, 0, len(list))
	for _, appointment := range list {
		start, err := utils.ParseAPIDateTime(appointment.StartDateTime, now.Location())
		if err == nil && start.Before(now) && appointment.HasMedicalRecords() {
			past = append(past, appointment)
		}
	}
	return past
}

func FilterByStatus(list []models.Appointment, status string) []models.Appointment {
	filtered := make([]models.Appointment, 0, len(list))
	for _, appointment := range list {
		if appointment.Status == status {
			filtered = append(filtered, appointment)
		}
	}
	return filtered
}

// CountByStatus tallies appointments per status value.
func CountByStatus(list []models.Appointment) map[string]int {
	counts := make(map[string]int)
	for _, appointment := range list {
		counts[appointment.Status]++
	}
	return counts
}
