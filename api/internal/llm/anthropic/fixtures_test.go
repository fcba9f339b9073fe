package anthropic

import "schedule-scanner/api/internal/schedule"

func scheduleFixture() schedule.Data {
	return schedule.Data{
		EmployeeName: "Jane Doe",
		Schedule: []schedule.Entry{
			{Day: "Monday", Location: "Store 4", Hours: "9:00 AM - 5:00 PM"},
			{Day: "Tuesday", Location: "Store 4", Hours: "9:00 AM - 5:00 PM"},
			{Day: "Wednesday", Location: "Store 4", Hours: "9:00 AM - 5:00 PM"},
			{Day: "Thursday", Location: "Store 4", Hours: "9:00 AM - 5:00 PM"},
			{Day: "Friday", Location: "Store 4", Hours: "9:00 AM - 5:00 PM"},
		},
	}
}
