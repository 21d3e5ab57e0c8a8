package panels

import (
	"encoding/csv"
	"strings"
)

// Bulk-upload CSV templates, built locally with no network round-trip.

func StudentTemplate() (filename, content string) {
	return "student_upload_template.csv", writeCSV([][]string{
		{"full_name", "class_label", "roll_number", "date_of_birth", "house", "parent_phone", "admission_year"},
		{"Aarav Sharma", "Class 8", "12", "2012-07-14", "Aravali", "+919812345678", "2023"},
		{"Anaya Verma", "Class 8", "14", "2012-03-09", "Nilgiri", "+919876543210", "2023"},
	})
}

func ScoreTemplate() (filename, content string) {
	return "score_upload_template.csv", writeCSV([][]string{
		{"subject", "roll_no", "student_name", "score", "max_score", "grade"},
		{"Mathematics", "12", "Aarav Sharma", "88", "100", "A"},
		{"Science", "12", "Aarav Sharma", "84", "100", "A"},
		{"English", "14", "Anaya Verma", "91", "100", "A+"},
	})
}

func writeCSV(rows [][]string) string {
	var b strings.Builder
	w := csv.NewWriter(&b)
	_ = w.WriteAll(rows)
	w.Flush()
	return b.String()
}
