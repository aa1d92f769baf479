package models

type ScheduleBreak struct {
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
	Reason    string `json:"reason"`
}

type ScheduleConfig struct {
	DoctorID  string          `json:"doctor_id,omitempty"`
	DayOff    string          `json:"day_off"`
	StartTime string          `json:"start_time"`
	EndTime   string          `json:"end_time"`
	Breaks    []ScheduleBreak `json:"breaks"`
}
