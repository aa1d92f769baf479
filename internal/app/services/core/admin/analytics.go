package admin

import (
	"mediconnect-portal/internal/app/models"
	"mediconnect-portal/internal/app/services/core/appointments"
	"mediconnect-portal/internal/pkg/constvars"
)

// BuildAnalytics derives the admin counters from the four directory listings.
func BuildAnalytics(list []models.Appointment, doctors []models.Doctor, users []models.User, hospitals []models.Hospital) *Analytics {
	return &Analytics{
		TotalAppointments:    len(list),
		TotalDoctors:         len(doctors),
		RegisteredDoctors:    countUsersWithRole(users, constvars.RoleDoctor),
		TotalUsers:           len(users),
		TotalHospitals:       len(hospitals),
		AppointmentsByStatus: appointments.CountByStatus(list),
	}
}

func countUsersWithRole(users []models.User, role string) int {
	count := 0
	for _, user := range users {
		if value, ok := user["role"].(string); ok && value == role {
			count++
		}
	}
	return count
}
