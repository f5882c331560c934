package export_test

import (
	"bytes"
	"context"
	"encoding/csv"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/pulse/attendance-engine/engine"
	"github.com/pulse/attendance-engine/export"
	"github.com/pulse/attendance-engine/tracker"
)

// =============================================================================
// TEST FIXTURES
// =============================================================================

var syncedAt = time.Date(2025, time.March, 10, 18, 30, 0, 0, time.UTC)

func testEmployee() tracker.Employee {
	return tracker.Employee{
		ID:         "emp-1",
		Name:       "Jordan Reyes",
		Email:      "jordan@example.com",
		Department: "Engineering",
		EmployeeID: "ENG-042",
		Role:       tracker.RoleEmployee,
	}
}

func completedDay(date engine.Date) engine.Day {
	in := engine.MustClock("09:30")
	out := engine.MustClock("18:15")
	d := engine.NewDay("day-"+date.String(), "emp-1", date)
	d.CheckIn = &in
	d.CheckOut = &out
	d.TotalHours = decimal.RequireFromString("8.75")
	d.Overtime = decimal.RequireFromString("0.75")
	d.Status = engine.StatusPresent
	d.LocationVerified = true
	d.DistanceFromOffice = 42
	return d
}

// =============================================================================
// ROWS
// =============================================================================

func TestRows_Layout(t *testing.T) {
	day := completedDay(engine.NewDate(2025, time.March, 10))
	day.Notes = "regular day"

	rows := export.Rows([]engine.Day{day}, []tracker.Employee{testEmployee()}, syncedAt)

	require.Len(t, rows, 2)
	assert.Equal(t, export.Header, rows[0])
	assert.Equal(t, []string{
		"2025-03-10",
		"Jordan Reyes",
		"ENG-042",
		"Engineering",
		"jordan@example.com",
		"09:30",
		"18:15",
		"8.75",
		"present",
		"0.75",
		"0.00",
		"regular day",
		"Yes",
		"42",
		"No",
		"2025-03-10T18:30:00Z",
	}, rows[1])
}

func TestRows_NewestFirst(t *testing.T) {
	old := completedDay(engine.NewDate(2025, time.March, 3))
	recent := completedDay(engine.NewDate(2025, time.March, 10))

	rows := export.Rows([]engine.Day{old, recent}, nil, syncedAt)

	require.Len(t, rows, 3)
	assert.Equal(t, "2025-03-10", rows[1][0])
	assert.Equal(t, "2025-03-03", rows[2][0])
}

func TestRows_UnknownEmployee(t *testing.T) {
	day := completedDay(engine.NewDate(2025, time.March, 10))

	rows := export.Rows([]engine.Day{day}, nil, syncedAt)

	require.Len(t, rows, 2)
	assert.Equal(t, "Unknown", rows[1][1])
	assert.Equal(t, "N/A", rows[1][2])
	assert.Equal(t, "N/A", rows[1][3])
	assert.Equal(t, "N/A", rows[1][4])
}

func TestSummaryRows_Layout(t *testing.T) {
	rows := export.SummaryRows([]tracker.EmployeeSummary{
		{
			Employee:      testEmployee(),
			Stats:         engine.Stats{AttendanceRate: 95.5, AverageHours: 8.12},
			TodayStatus:   engine.StatusPresent,
			TodayCheckIn:  "09:30",
			TodayCheckOut: "18:15",
			TodayHours:    8.75,
			TotalRecords:  21,
		},
		{Employee: tracker.Employee{Name: "Riley Chen"}},
	})

	require.Len(t, rows, 3)
	assert.Equal(t, export.SummaryHeader, rows[0])
	assert.Equal(t, "present", rows[1][5])
	assert.Equal(t, "95.50", rows[1][9])
	assert.Equal(t, "21", rows[1][11])

	// No record today renders as N/A, not empty cells.
	assert.Equal(t, "N/A", rows[2][5])
	assert.Equal(t, "N/A", rows[2][6])
}

// =============================================================================
// CSV / XLSX
// =============================================================================

func TestWriteCSV_RoundTrip(t *testing.T) {
	day := completedDay(engine.NewDate(2025, time.March, 10))
	rows := export.Rows([]engine.Day{day}, []tracker.Employee{testEmployee()}, syncedAt)

	var buf bytes.Buffer
	require.NoError(t, export.WriteCSV(&buf, rows))

	parsed, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	assert.Equal(t, rows, parsed)
}

func TestWriteXLSX_RoundTrip(t *testing.T) {
	day := completedDay(engine.NewDate(2025, time.March, 10))
	rows := export.Rows([]engine.Day{day}, []tracker.Employee{testEmployee()}, syncedAt)

	var buf bytes.Buffer
	require.NoError(t, export.WriteXLSX(&buf, "Attendance", rows))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	got, err := f.GetRows("Attendance")
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, export.Header, got[0])
	assert.Equal(t, "Jordan Reyes", got[1][1])
}

// =============================================================================
// SHEETS SYNC
// =============================================================================

func testConfig() export.SheetsConfig {
	return export.SheetsConfig{
		SpreadsheetID: "sheet-123",
		APIKey:        "key-abc",
		SheetName:     "Attendance Data",
		Enabled:       true,
	}
}

func TestSync_ClearsThenWrites(t *testing.T) {
	var calls []string
	var uploaded struct {
		Values [][]string `json:"values"`
	}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls = append(calls, r.Method+" "+r.URL.Path)
		assert.Equal(t, "key-abc", r.URL.Query().Get("key"))
		if r.Method == http.MethodPut {
			require.NoError(t, json.NewDecoder(r.Body).Decode(&uploaded))
		}
		w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	client := export.NewSheetsClient(export.WithBaseURL(srv.URL))
	day := completedDay(engine.NewDate(2025, time.March, 10))
	rows := export.Rows([]engine.Day{day}, []tracker.Employee{testEmployee()}, syncedAt)

	n, err := client.Sync(context.Background(), testConfig(), rows)
	require.NoError(t, err)

	assert.Equal(t, 1, n)
	require.Len(t, calls, 2)
	assert.Contains(t, calls[0], "POST ")
	assert.Contains(t, calls[0], ":clear")
	assert.Contains(t, calls[1], "PUT ")
	require.Len(t, uploaded.Values, 2)
	assert.Equal(t, export.Header, uploaded.Values[0])
}

func TestSync_NotConfigured(t *testing.T) {
	client := export.NewSheetsClient()

	cfg := testConfig()
	cfg.Enabled = false
	_, err := client.Sync(context.Background(), cfg, nil)
	assert.ErrorIs(t, err, export.ErrSheetsNotConfigured)

	cfg = testConfig()
	cfg.APIKey = ""
	_, err = client.Sync(context.Background(), cfg, nil)
	assert.ErrorIs(t, err, export.ErrSheetsNotConfigured)
}

func TestSync_SurfacesAPIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		w.Write([]byte(`{"error":{"message":"API key not valid"}}`))
	}))
	defer srv.Close()

	client := export.NewSheetsClient(export.WithBaseURL(srv.URL))

	_, err := client.Sync(context.Background(), testConfig(), [][]string{export.Header})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "API key not valid")
}

func TestConnection_ValidatesConfig(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		w.Write([]byte(`{"spreadsheetId":"sheet-123"}`))
	}))
	defer srv.Close()

	client := export.NewSheetsClient(export.WithBaseURL(srv.URL))
	require.NoError(t, client.TestConnection(context.Background(), testConfig()))

	err := client.TestConnection(context.Background(), export.SheetsConfig{})
	assert.ErrorIs(t, err, export.ErrSheetsNotConfigured)
}
