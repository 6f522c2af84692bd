package attendance

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"math"
	"strings"
)

// ReportRow is a per-student aggregate of presence over one month.
type ReportRow struct {
	StudentID string `json:"id"`
	Name      string `json:"name"`
	USN       string `json:"usn,omitempty"`
	Present   int    `json:"present"`
	Total     int    `json:"total"`
	Percent   int    `json:"percent"`
}

var csvHeader = []string{"Name", "USN", "Present", "Total", "Percent"}

// MonthNames indexes English month names by 1-based month number.
var MonthNames = [...]string{
	"", "January", "February", "March", "April", "May", "June",
	"July", "August", "September", "October", "November", "December",
}

// MonthlyReport aggregates raw attendance marks of classID into one
// row per enrolled student for the given month (1-12).
//
// Every entry of the month counts toward a student's total whether or
// not the student has a recorded mark; only an explicit true mark
// counts toward present. Rows follow student document order.
func (svc *Service) MonthlyReport(ctx context.Context, classID string, year, month int) ([]ReportRow, error) {
	svc.mu.Lock()
	defer svc.mu.Unlock()

	doc := svc.load(ctx)

	prefix := fmt.Sprintf("%04d-%02d", year, month)
	entries := make([]Entry, 0, len(doc.Attendance))
	for _, ent := range doc.Attendance {
		if ent.ClassID == classID && strings.HasPrefix(ent.Date, prefix) {
			entries = append(entries, ent)
		}
	}

	rows := make([]ReportRow, 0, len(doc.Students))
	for _, stu := range doc.Students {
		if stu.ClassID != classID {
			continue
		}
		var present int
		for _, ent := range entries {
			if ent.Records[stu.ID] {
				present++
			}
		}
		total := len(entries)
		var percent int
		if total > 0 {
			percent = int(math.Round(float64(present) / float64(total) * 100))
		}
		rows = append(rows, ReportRow{
			StudentID: stu.ID,
			Name:      stu.Name,
			USN:       stu.USN,
			Present:   present,
			Total:     total,
			Percent:   percent,
		})
	}
	return rows, nil
}

// WriteCSV renders report rows with the Name,USN,Present,Total,Percent
// header, one line per student.
func WriteCSV(w io.Writer, rows []ReportRow) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return err
	}
	for _, row := range rows {
		record := []string{
			row.Name,
			row.USN,
			fmt.Sprintf("%d", row.Present),
			fmt.Sprintf("%d", row.Total),
			fmt.Sprintf("%d", row.Percent),
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// CSVFilename follows the attendance_<month>_<year>.csv convention,
// month 1-based and unpadded.
func CSVFilename(year, month int) string {
	return fmt.Sprintf("attendance_%d_%d.csv", month, year)
}
