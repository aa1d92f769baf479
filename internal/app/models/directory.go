package models

type Doctor struct {
	ID             string `json:"id,omitempty"`
	Name           string `json:"name"`
	Email          string `json:"email,omitempty"`
	Hospital       string `json:"hospital"`
	HospitalID     string `json:"hospital_id,omitempty"`
	Specialization string `json:"specialization"`
	Fee            int    `json:"fee,omitempty"`
}

type Hospital struct {
	ID       string `json:"id,omitempty"`
	Name     string `json:"name"`
	Location string `json:"location"`
	Mobile   string `json:"mobile,omitempty"`
}

type User map[string]interface{}
