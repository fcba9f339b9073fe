package prompt

// ExtractSchedule asks the model to read the schedule image and answer
// with one JSON object matching schedule.Data. Times are kept verbatim.
const ExtractSchedule = `Please analyze this employee schedule image and return a JSON object with the following structure:
{
    "employee_name": "string",
    "schedule": [
        {
            "day": "string",
            "location": "string",
            "hours": "string"
        }
    ]
}
Extract the exact times as shown in the image without modifying the format.`

// AnalyzeSchedule is the second call: given the extracted JSON, total the
// hours and write a short natural-language summary. %s is the schedule
// JSON, indent 2.
const AnalyzeSchedule = `Given this schedule data:
%s

Please analyze the schedule and provide:
1. Calculate the total hours worked for the week
2. Write a brief summary of the schedule

Return your response as a JSON object with this structure:
{
    "total_hours": number,
    "summary": "string describing the schedule"
}`
