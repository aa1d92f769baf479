package requests

type Pagination struct {
	Page     int
	PageSize int
}

// DirectoryQuery narrows directory listings. Empty fields match everything.
type DirectoryQuery struct {
	Search     string
	HospitalID string
	Pagination
}
