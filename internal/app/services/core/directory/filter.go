package directory

import (
	"mediconnect-portal/internal/app/models"
	"mediconnect-portal/internal/pkg/constvars"
	"mediconnect-portal/internal/pkg/dto/requests"
	"mediconnect-portal/internal/pkg/utils"
	"sort"
	"strings"
)

// FilterDoctors keeps doctors whose name, hospital or specialization
// contains search, case-insensitively, sorted by name.
func FilterDoctors(doctors []models.Doctor, search string) []models.Doctor {
	search = utils.SanitizeSearchQuery(search)
	filtered := make([]models.Doctor, 0, len(doctors))
	for _, doctor := range doctors {
		if containsAny(search, doctor.Name, doctor.Hospital, doctor.Specialization) {
			filtered = append(filtered, doctor)
		}
	}
	sort.SliceStable(filtered, func(i, j int) bool {
		return strings.ToLower(filtered[i].Name) < strings.ToLower(filtered[j].Name)
	})
	return filtered
}

// FilterHospitals keeps hospitals whose name or location contains search.
func FilterHospitals(hospitals []models.Hospital, search string) []models.Hospital {
	search = utils.SanitizeSearchQuery(search)
	filtered := make([]models.Hospital, 0, len(hospitals))
	for _, hospital := range hospitals {
		if containsAny(search, hospital.Name, hospital.Location) {
			filtered = append(filtered, hospital)
		}
	}
	sort.SliceStable(filtered, func(i, j int) bool {
		return strings.ToLower(filtered[i].Name) < strings.ToLower(filtered[j].Name)
	})
	return filtered
}

// Paginate slices items for a 1-based page. Pages past the end are empty.
func Paginate[T any](items []T, pagination requests.Pagination) *Page[T] {
	page := pagination.Page
	if page <= 0 {
		page = 1
	}
	pageSize := pagination.PageSize
	if pageSize <= 0 {
		pageSize = constvars.DefaultPageSize
	}

	start := (page - 1) * pageSize
	if start > len(items) {
		start = len(items)
	}
	end := start + pageSize
	if end > len(items) {
		end = len(items)
	}

	return &Page[T]{
		Items:    items[start:end],
		Total:    len(items),
		Page:     page,
		PageSize: pageSize,
	}
}

func containsAny(search string, values ...string) bool {
	if search == "" {
		return true
	}
	for _, value := range values {
		if strings.Contains(strings.ToLower(value), search) {
			return true
		}
	}
	return false
}
