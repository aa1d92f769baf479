package requests

type ScheduleBreak struct {
	StartTime string `json:"start_time" validate:"required,clock"`
	EndTime   string `json:"end_time" validate:"required,clock"`
	Reason    string `json:"reason"`
}

type CreateSchedule struct {
	DoctorID  string          `json:"doctor_id,omitempty"`
	DayOff    string          `json:"day_off" validate:"required,weekday"`
	StartTime string          `json:"start_time" validate:"required,clock"`
	EndTime   string          `json:"end_time" validate:"required,clock"`
	Breaks    []ScheduleBreak `json:"breaks" validate:"dive"`
}
