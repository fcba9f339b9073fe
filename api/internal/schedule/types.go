package schedule

// Entry is one row of a schedule as the model reads it off the image.
// Hours stays free text ("8:30 AM - 5:00 PM", "OFF", ...) — we never
// normalize what the image says.
type Entry struct {
	Day      string `json:"day"`
	Location string `json:"location"`
	Hours    string `json:"hours"`
}

type Data struct {
	EmployeeName string  `json:"employee_name"`
	Schedule     []Entry `json:"schedule"`
}

type Analysis struct {
	TotalHours float64 `json:"total_hours"`
	Summary    string  `json:"summary"`
}

// StoredRecord is what lands on disk, one file per processed schedule.
// ProcessedAt carries the same YYYYMMDD_HHMMSS stamp used in the filename.
type StoredRecord struct {
	RawSchedule Data     `json:"raw_schedule"`
	Analysis    Analysis `json:"analysis"`
	ProcessedAt string   `json:"processed_at"`
}
