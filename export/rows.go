/*
Package export formats attendance data for external sinks.

PURPOSE:
  Turns record lists into tabular rows for three consumers: the admin
  CSV download, an XLSX workbook, and the Google Sheets sync. The core
  engine hands finished records to this package; nothing here reads or
  writes attendance state.

ROW LAYOUT:
  The sheet layout is fixed at 16 columns, one row per attendance
  record, newest first, with a sync timestamp stamped per export run.
*/
package export

import (
	"fmt"
	"sort"
	"time"

	"github.com/pulse/attendance-engine/engine"
	"github.com/pulse/attendance-engine/tracker"
)

// Header is the fixed sheet column layout.
var Header = []string{
	"Date",
	"Employee Name",
	"Employee ID",
	"Department",
	"Email",
	"Check In Time",
	"Check Out Time",
	"Total Hours",
	"Status",
	"Overtime Hours",
	"Break Duration",
	"Notes",
	"Location Verified",
	"Distance from Office (m)",
	"Short Leave Used",
	"Sync Timestamp",
}

// Rows formats records into the 16-column layout, newest date first.
// Unknown employees render as "Unknown"/"N/A" rather than dropping the
// record.
func Rows(days []engine.Day, employees []tracker.Employee, syncedAt time.Time) [][]string {
	byID := make(map[string]tracker.Employee, len(employees))
	for _, e := range employees {
		byID[e.ID] = e
	}

	sorted := make([]engine.Day, len(days))
	copy(sorted, days)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[j].Date.Before(sorted[i].Date)
	})

	stamp := syncedAt.UTC().Format(time.RFC3339)
	rows := make([][]string, 0, len(sorted)+1)
	rows = append(rows, Header)
	for _, d := range sorted {
		emp, known := byID[d.EmployeeID]
		name, badge, dept, email := "Unknown", "N/A", "N/A", "N/A"
		if known {
			name = emp.Name
			if emp.EmployeeID != "" {
				badge = emp.EmployeeID
			}
			if emp.Department != "" {
				dept = emp.Department
			}
			if emp.Email != "" {
				email = emp.Email
			}
		}

		rows = append(rows, []string{
			d.Date.String(),
			name,
			badge,
			dept,
			email,
			clockString(d.CheckIn),
			clockString(d.CheckOut),
			d.TotalHours.StringFixed(2),
			string(d.Status),
			d.Overtime.StringFixed(2),
			d.BreakHours().StringFixed(2),
			d.Notes,
			yesNo(d.LocationVerified),
			fmt.Sprintf("%.0f", d.DistanceFromOffice),
			yesNo(d.ShortLeaveUsed),
			stamp,
		})
	}
	return rows
}

// SummaryHeader is the admin-dashboard export layout, one row per
// employee.
var SummaryHeader = []string{
	"Name",
	"Email",
	"Department",
	"Role",
	"Employee ID",
	"Today Status",
	"Today Check In",
	"Today Check Out",
	"Today Hours",
	"Attendance Rate",
	"Average Hours",
	"Total Records",
}

// SummaryRows formats admin summary rows.
func SummaryRows(summaries []tracker.EmployeeSummary) [][]string {
	rows := make([][]string, 0, len(summaries)+1)
	rows = append(rows, SummaryHeader)
	for _, s := range summaries {
		rows = append(rows, []string{
			s.Employee.Name,
			s.Employee.Email,
			s.Employee.Department,
			string(s.Employee.Role),
			s.Employee.EmployeeID,
			orNA(string(s.TodayStatus)),
			orNA(s.TodayCheckIn),
			orNA(s.TodayCheckOut),
			fmt.Sprintf("%.2f", s.TodayHours),
			fmt.Sprintf("%.2f", s.Stats.AttendanceRate),
			fmt.Sprintf("%.2f", s.Stats.AverageHours),
			fmt.Sprintf("%d", s.TotalRecords),
		})
	}
	return rows
}

func clockString(c *engine.Clock) string {
	if c == nil {
		return ""
	}
	return c.String()
}

func yesNo(b bool) string {
	if b {
		return "Yes"
	}
	return "No"
}

func orNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}
