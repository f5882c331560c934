/*
Package sqlite provides a SQLite-backed implementation of the storage
interfaces.

PURPOSE:
  Implements every store interface in the module (tracker.Store,
  tracker.EmployeeStore, leave.Store, goals.Store, achievements.Store,
  export.ConfigStore) over a single SQLite database. The same SQL
  patterns apply to PostgreSQL with only dialect changes.

KEY TABLES:
  employees:       Directory records
  attendance_days: One row per employee per date (unique constraint)
  day_breaks:      Break intervals, child rows of attendance_days
  short_leaves:    Consumed quota per (employee, month)
  leave_requests:  Leave workflow records
  goals:           Personal goals with live progress
  achievements:    Unlocked badges, unique per (employee, title)
  sheets_config:   Single-row Google Sheets sync configuration
  sync_runs:       Sync attempt history

ATOMICITY:
  PutDay replaces the day row and its break rows inside one database
  transaction, preserving the engine's no-partial-writes contract at
  the storage boundary.

WAL MODE:
  The database is opened with WAL for better read concurrency and crash
  recovery.

USAGE:
  store, err := sqlite.New("./attendance.db")  // ":memory:" for tests
  defer store.Close()

MIGRATION:
  Schema is auto-migrated on New(). For production, use a versioned
  migration tool instead.
*/
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"github.com/shopspring/decimal"

	"github.com/pulse/attendance-engine/achievements"
	"github.com/pulse/attendance-engine/engine"
	"github.com/pulse/attendance-engine/export"
	"github.com/pulse/attendance-engine/goals"
	"github.com/pulse/attendance-engine/leave"
	"github.com/pulse/attendance-engine/tracker"
)

// Store implements all storage interfaces using SQLite.
type Store struct {
	db *sql.DB
}

// Compile-time interface checks.
var (
	_ tracker.Store         = (*Store)(nil)
	_ tracker.EmployeeStore = (*Store)(nil)
	_ leave.Store           = (*Store)(nil)
	_ goals.Store           = (*Store)(nil)
	_ achievements.Store    = (*Store)(nil)
	_ export.ConfigStore    = (*Store)(nil)
)

// New creates a SQLite store. Use ":memory:" for an in-memory database.
func New(dbPath string) (*Store, error) {
	db, err := sql.Open("sqlite3", dbPath+"?_foreign_keys=on&_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	store := &Store{db: db}
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}
	return store, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS employees (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		email TEXT NOT NULL,
		department TEXT,
		employee_id TEXT,
		role TEXT NOT NULL,
		join_date TEXT NOT NULL,
		active INTEGER NOT NULL DEFAULT 1,
		created_at TEXT NOT NULL
	);

	CREATE TABLE IF NOT EXISTS attendance_days (
		id TEXT PRIMARY KEY,
		employee_id TEXT NOT NULL,
		date TEXT NOT NULL,
		check_in TEXT,
		check_out TEXT,
		total_hours TEXT NOT NULL DEFAULT '0',
		overtime_hours TEXT NOT NULL DEFAULT '0',
		status TEXT NOT NULL DEFAULT '',
		short_leave_used INTEGER NOT NULL DEFAULT 0,
		notes TEXT NOT NULL DEFAULT '',
		location_verified INTEGER NOT NULL DEFAULT 0,
		distance REAL NOT NULL DEFAULT 0,
		checkout_location_verified INTEGER NOT NULL DEFAULT 0,
		checkout_distance REAL NOT NULL DEFAULT 0,
		UNIQUE(employee_id, date)
	);

	CREATE INDEX IF NOT EXISTS idx_days_employee_date
		ON attendance_days(employee_id, date);
	CREATE INDEX IF NOT EXISTS idx_days_date
		ON attendance_days(date);

	CREATE TABLE IF NOT EXISTS day_breaks (
		id TEXT PRIMARY KEY,
		day_id TEXT NOT NULL REFERENCES attendance_days(id) ON DELETE CASCADE,
		kind TEXT NOT NULL,
		start_time TEXT NOT NULL,
		end_time TEXT,
		duration TEXT NOT NULL DEFAULT '0',
		position INTEGER NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_breaks_day
		ON day_breaks(day_id);

	CREATE TABLE IF NOT EXISTS short_leaves (
		employee_id TEXT NOT NULL,
		month TEXT NOT NULL,
		used INTEGER NOT NULL DEFAULT 0,
		PRIMARY KEY (employee_id, month)
	);

	CREATE TABLE IF NOT EXISTS leave_requests (
		id TEXT PRIMARY KEY,
		employee_id TEXT NOT NULL,
		type TEXT NOT NULL,
		start_date TEXT NOT NULL,
		end_date TEXT NOT NULL,
		reason TEXT NOT NULL DEFAULT '',
		status TEXT NOT NULL,
		request_date TEXT NOT NULL,
		approved_by TEXT NOT NULL DEFAULT '',
		created_at TEXT NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_leaves_employee
		ON leave_requests(employee_id);

	CREATE TABLE IF NOT EXISTS goals (
		id TEXT PRIMARY KEY,
		employee_id TEXT NOT NULL,
		kind TEXT NOT NULL,
		target REAL NOT NULL,
		current REAL NOT NULL DEFAULT 0,
		description TEXT NOT NULL,
		period TEXT NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_goals_employee
		ON goals(employee_id);

	CREATE TABLE IF NOT EXISTS achievements (
		id TEXT PRIMARY KEY,
		employee_id TEXT NOT NULL,
		title TEXT NOT NULL,
		description TEXT NOT NULL,
		icon TEXT NOT NULL,
		category TEXT NOT NULL,
		unlocked_at TEXT NOT NULL,
		UNIQUE(employee_id, title)
	);

	CREATE TABLE IF NOT EXISTS sheets_config (
		id INTEGER PRIMARY KEY CHECK (id = 1),
		spreadsheet_id TEXT NOT NULL DEFAULT '',
		api_key TEXT NOT NULL DEFAULT '',
		sheet_name TEXT NOT NULL DEFAULT 'Attendance Data',
		enabled INTEGER NOT NULL DEFAULT 0
	);

	CREATE TABLE IF NOT EXISTS sync_runs (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		at TEXT NOT NULL,
		status TEXT NOT NULL,
		records INTEGER NOT NULL DEFAULT 0,
		error TEXT NOT NULL DEFAULT ''
	);
	`
	_, err := s.db.Exec(schema)
	return err
}

// =============================================================================
// SERIALIZATION HELPERS
// =============================================================================

func nullClock(c *engine.Clock) sql.NullString {
	if c == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: c.String(), Valid: true}
}

func scanClock(ns sql.NullString) (*engine.Clock, error) {
	if !ns.Valid || ns.String == "" {
		return nil, nil
	}
	c, err := engine.ParseClock(ns.String)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func scanDecimal(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero
	}
	return d
}

// =============================================================================
// ATTENDANCE DAYS
// =============================================================================

const dayColumns = `id, employee_id, date, check_in, check_out, total_hours,
	overtime_hours, status, short_leave_used, notes, location_verified,
	distance, checkout_location_verified, checkout_distance`

func (s *Store) Day(ctx context.Context, employeeID string, date engine.Date) (engine.Day, bool, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT `+dayColumns+` FROM attendance_days WHERE employee_id = ? AND date = ?`,
		employeeID, date.String())

	day, err := s.scanDay(ctx, row)
	if err == sql.ErrNoRows {
		return engine.Day{}, false, nil
	}
	if err != nil {
		return engine.Day{}, false, err
	}
	return day, true, nil
}

func (s *Store) Days(ctx context.Context, employeeID string) ([]engine.Day, error) {
	return s.queryDays(ctx,
		`SELECT `+dayColumns+` FROM attendance_days WHERE employee_id = ? ORDER BY date ASC`,
		employeeID)
}

func (s *Store) AllDays(ctx context.Context) ([]engine.Day, error) {
	return s.queryDays(ctx,
		`SELECT `+dayColumns+` FROM attendance_days ORDER BY date DESC`)
}

func (s *Store) queryDays(ctx context.Context, query string, args ...any) ([]engine.Day, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var days []engine.Day
	for rows.Next() {
		day, err := s.scanDay(ctx, rows)
		if err != nil {
			return nil, err
		}
		days = append(days, day)
	}
	return days, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func (s *Store) scanDay(ctx context.Context, row rowScanner) (engine.Day, error) {
	var (
		d                       engine.Day
		dateStr                 string
		checkIn, checkOut       sql.NullString
		totalHours, overtime    string
		status                  string
		shortLeave, locVerified bool
		checkoutVerified        bool
	)
	err := row.Scan(&d.ID, &d.EmployeeID, &dateStr, &checkIn, &checkOut,
		&totalHours, &overtime, &status, &shortLeave, &d.Notes, &locVerified,
		&d.DistanceFromOffice, &checkoutVerified, &d.CheckOutDistance)
	if err != nil {
		return engine.Day{}, err
	}

	if d.Date, err = engine.ParseDate(dateStr); err != nil {
		return engine.Day{}, fmt.Errorf("bad date %q: %w", dateStr, err)
	}
	if d.CheckIn, err = scanClock(checkIn); err != nil {
		return engine.Day{}, err
	}
	if d.CheckOut, err = scanClock(checkOut); err != nil {
		return engine.Day{}, err
	}
	d.TotalHours = scanDecimal(totalHours)
	d.Overtime = scanDecimal(overtime)
	d.Status = engine.Status(status)
	d.ShortLeaveUsed = shortLeave
	d.LocationVerified = locVerified
	d.CheckOutLocationVerified = checkoutVerified

	if d.Breaks, err = s.loadBreaks(ctx, d.ID); err != nil {
		return engine.Day{}, err
	}
	return d, nil
}

func (s *Store) loadBreaks(ctx context.Context, dayID string) ([]engine.Break, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, kind, start_time, end_time, duration
		 FROM day_breaks WHERE day_id = ? ORDER BY position ASC`, dayID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var breaks []engine.Break
	for rows.Next() {
		var (
			b        engine.Break
			kind     string
			start    string
			end      sql.NullString
			duration string
		)
		if err := rows.Scan(&b.ID, &kind, &start, &end, &duration); err != nil {
			return nil, err
		}
		b.Kind = engine.BreakKind(kind)
		if b.Start, err = engine.ParseClock(start); err != nil {
			return nil, err
		}
		if b.End, err = scanClock(end); err != nil {
			return nil, err
		}
		b.Duration = scanDecimal(duration)
		breaks = append(breaks, b)
	}
	return breaks, rows.Err()
}

// PutDay replaces the day row and its break rows in one transaction.
func (s *Store) PutDay(ctx context.Context, day engine.Day) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx, `
		INSERT INTO attendance_days (`+dayColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(employee_id, date) DO UPDATE SET
			check_in = excluded.check_in,
			check_out = excluded.check_out,
			total_hours = excluded.total_hours,
			overtime_hours = excluded.overtime_hours,
			status = excluded.status,
			short_leave_used = excluded.short_leave_used,
			notes = excluded.notes,
			location_verified = excluded.location_verified,
			distance = excluded.distance,
			checkout_location_verified = excluded.checkout_location_verified,
			checkout_distance = excluded.checkout_distance`,
		day.ID, day.EmployeeID, day.Date.String(),
		nullClock(day.CheckIn), nullClock(day.CheckOut),
		day.TotalHours.String(), day.Overtime.String(), string(day.Status),
		day.ShortLeaveUsed, day.Notes, day.LocationVerified,
		day.DistanceFromOffice, day.CheckOutLocationVerified, day.CheckOutDistance)
	if err != nil {
		return err
	}

	if _, err := tx.ExecContext(ctx, `DELETE FROM day_breaks WHERE day_id = ?`, day.ID); err != nil {
		return err
	}
	for i, b := range day.Breaks {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO day_breaks (id, day_id, kind, start_time, end_time, duration, position)
			VALUES (?, ?, ?, ?, ?, ?, ?)`,
			b.ID, day.ID, string(b.Kind), b.Start.String(), nullClock(b.End),
			b.Duration.String(), i)
		if err != nil {
			return err
		}
	}

	return tx.Commit()
}

// =============================================================================
// SHORT LEAVES
// =============================================================================

func (s *Store) ShortLeavesUsed(ctx context.Context, employeeID, month string) (int, error) {
	var used int
	err := s.db.QueryRowContext(ctx,
		`SELECT used FROM short_leaves WHERE employee_id = ? AND month = ?`,
		employeeID, month).Scan(&used)
	if err == sql.ErrNoRows {
		return 0, nil
	}
	return used, err
}

func (s *Store) SetShortLeavesUsed(ctx context.Context, employeeID, month string, used int) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO short_leaves (employee_id, month, used) VALUES (?, ?, ?)
		ON CONFLICT(employee_id, month) DO UPDATE SET used = excluded.used`,
		employeeID, month, used)
	return err
}

// =============================================================================
// EMPLOYEES
// =============================================================================

func (s *Store) Employee(ctx context.Context, id string) (tracker.Employee, bool, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, name, email, department, employee_id, role, join_date, active
		FROM employees WHERE id = ?`, id)

	e, err := scanEmployee(row)
	if err == sql.ErrNoRows {
		return tracker.Employee{}, false, nil
	}
	if err != nil {
		return tracker.Employee{}, false, err
	}
	return e, true, nil
}

func (s *Store) Employees(ctx context.Context) ([]tracker.Employee, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, name, email, department, employee_id, role, join_date, active
		FROM employees ORDER BY created_at ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []tracker.Employee
	for rows.Next() {
		e, err := scanEmployee(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

func scanEmployee(row rowScanner) (tracker.Employee, error) {
	var (
		e        tracker.Employee
		role     string
		joinDate string
	)
	err := row.Scan(&e.ID, &e.Name, &e.Email, &e.Department, &e.EmployeeID,
		&role, &joinDate, &e.Active)
	if err != nil {
		return tracker.Employee{}, err
	}
	e.Role = tracker.Role(role)
	if e.JoinDate, err = engine.ParseDate(joinDate); err != nil {
		return tracker.Employee{}, fmt.Errorf("bad join date %q: %w", joinDate, err)
	}
	return e, nil
}

func (s *Store) PutEmployee(ctx context.Context, e tracker.Employee) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO employees (id, name, email, department, employee_id, role, join_date, active, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			name = excluded.name,
			email = excluded.email,
			department = excluded.department,
			employee_id = excluded.employee_id,
			role = excluded.role,
			join_date = excluded.join_date,
			active = excluded.active`,
		e.ID, e.Name, e.Email, e.Department, e.EmployeeID, string(e.Role),
		e.JoinDate.String(), e.Active, time.Now().UTC().Format(time.RFC3339Nano))
	return err
}

// =============================================================================
// LEAVE REQUESTS
// =============================================================================

func (s *Store) Request(ctx context.Context, id string) (leave.Request, bool, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, employee_id, type, start_date, end_date, reason, status, request_date, approved_by
		FROM leave_requests WHERE id = ?`, id)

	r, err := scanRequest(row)
	if err == sql.ErrNoRows {
		return leave.Request{}, false, nil
	}
	if err != nil {
		return leave.Request{}, false, err
	}
	return r, true, nil
}

func (s *Store) Requests(ctx context.Context, employeeID string) ([]leave.Request, error) {
	return s.queryRequests(ctx, `
		SELECT id, employee_id, type, start_date, end_date, reason, status, request_date, approved_by
		FROM leave_requests WHERE employee_id = ? ORDER BY created_at ASC`, employeeID)
}

func (s *Store) AllRequests(ctx context.Context) ([]leave.Request, error) {
	return s.queryRequests(ctx, `
		SELECT id, employee_id, type, start_date, end_date, reason, status, request_date, approved_by
		FROM leave_requests ORDER BY created_at ASC`)
}

func (s *Store) queryRequests(ctx context.Context, query string, args ...any) ([]leave.Request, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []leave.Request
	for rows.Next() {
		r, err := scanRequest(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

func scanRequest(row rowScanner) (leave.Request, error) {
	var (
		r                       leave.Request
		typ, status             string
		start, end, requestDate string
	)
	err := row.Scan(&r.ID, &r.EmployeeID, &typ, &start, &end, &r.Reason,
		&status, &requestDate, &r.ApprovedBy)
	if err != nil {
		return leave.Request{}, err
	}
	r.Type = leave.Type(typ)
	r.Status = leave.Status(status)
	if r.StartDate, err = engine.ParseDate(start); err != nil {
		return leave.Request{}, err
	}
	if r.EndDate, err = engine.ParseDate(end); err != nil {
		return leave.Request{}, err
	}
	if r.RequestDate, err = engine.ParseDate(requestDate); err != nil {
		return leave.Request{}, err
	}
	return r, nil
}

func (s *Store) PutRequest(ctx context.Context, r leave.Request) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO leave_requests (id, employee_id, type, start_date, end_date, reason, status, request_date, approved_by, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			status = excluded.status,
			approved_by = excluded.approved_by`,
		r.ID, r.EmployeeID, string(r.Type), r.StartDate.String(), r.EndDate.String(),
		r.Reason, string(r.Status), r.RequestDate.String(), r.ApprovedBy,
		time.Now().UTC().Format(time.RFC3339Nano))
	return err
}

func (s *Store) DeleteRequest(ctx context.Context, id string) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM leave_requests WHERE id = ?`, id)
	return err
}

// =============================================================================
// GOALS
// =============================================================================

func (s *Store) Goals(ctx context.Context, employeeID string) ([]goals.Goal, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, employee_id, kind, target, current, description, period
		FROM goals WHERE employee_id = ?
		ORDER BY CASE kind WHEN 'daily' THEN 0 WHEN 'weekly' THEN 1 ELSE 2 END, description ASC`,
		employeeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []goals.Goal
	for rows.Next() {
		var (
			g    goals.Goal
			kind string
		)
		if err := rows.Scan(&g.ID, &g.EmployeeID, &kind, &g.Target, &g.Current,
			&g.Description, &g.Period); err != nil {
			return nil, err
		}
		g.Kind = goals.Kind(kind)
		out = append(out, g)
	}
	return out, rows.Err()
}

func (s *Store) PutGoal(ctx context.Context, g goals.Goal) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO goals (id, employee_id, kind, target, current, description, period)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			target = excluded.target,
			current = excluded.current,
			description = excluded.description,
			period = excluded.period`,
		g.ID, g.EmployeeID, string(g.Kind), g.Target, g.Current, g.Description, g.Period)
	return err
}

func (s *Store) DeleteGoal(ctx context.Context, id string) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM goals WHERE id = ?`, id)
	return err
}

// =============================================================================
// ACHIEVEMENTS
// =============================================================================

func (s *Store) Achievements(ctx context.Context, employeeID string) ([]achievements.Achievement, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, employee_id, title, description, icon, category, unlocked_at
		FROM achievements WHERE employee_id = ? ORDER BY unlocked_at ASC`, employeeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []achievements.Achievement
	for rows.Next() {
		var (
			a          achievements.Achievement
			category   string
			unlockedAt string
		)
		if err := rows.Scan(&a.ID, &a.EmployeeID, &a.Title, &a.Description,
			&a.Icon, &category, &unlockedAt); err != nil {
			return nil, err
		}
		a.Category = achievements.Category(category)
		if a.UnlockedAt, err = time.Parse(time.RFC3339Nano, unlockedAt); err != nil {
			return nil, fmt.Errorf("bad unlock time %q: %w", unlockedAt, err)
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

func (s *Store) PutAchievement(ctx context.Context, a achievements.Achievement) error {
	// Unlock-once: a duplicate title for the employee is silently kept
	// as the original row.
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO achievements (id, employee_id, title, description, icon, category, unlocked_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(employee_id, title) DO NOTHING`,
		a.ID, a.EmployeeID, a.Title, a.Description, a.Icon, string(a.Category),
		a.UnlockedAt.UTC().Format(time.RFC3339Nano))
	return err
}

// =============================================================================
// SHEETS CONFIG / SYNC RUNS
// =============================================================================

func (s *Store) SheetsConfig(ctx context.Context) (export.SheetsConfig, bool, error) {
	var cfg export.SheetsConfig
	err := s.db.QueryRowContext(ctx, `
		SELECT spreadsheet_id, api_key, sheet_name, enabled FROM sheets_config WHERE id = 1`).
		Scan(&cfg.SpreadsheetID, &cfg.APIKey, &cfg.SheetName, &cfg.Enabled)
	if err == sql.ErrNoRows {
		return export.SheetsConfig{}, false, nil
	}
	if err != nil {
		return export.SheetsConfig{}, false, err
	}
	return cfg, true, nil
}

func (s *Store) PutSheetsConfig(ctx context.Context, cfg export.SheetsConfig) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO sheets_config (id, spreadsheet_id, api_key, sheet_name, enabled)
		VALUES (1, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			spreadsheet_id = excluded.spreadsheet_id,
			api_key = excluded.api_key,
			sheet_name = excluded.sheet_name,
			enabled = excluded.enabled`,
		cfg.SpreadsheetID, cfg.APIKey, cfg.SheetName, cfg.Enabled)
	return err
}

func (s *Store) RecordSyncRun(ctx context.Context, run export.SyncRun) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO sync_runs (at, status, records, error) VALUES (?, ?, ?, ?)`,
		run.At.UTC().Format(time.RFC3339Nano), run.Status, run.Records, run.Error)
	return err
}

func (s *Store) LastSyncRun(ctx context.Context) (export.SyncRun, bool, error) {
	var (
		run export.SyncRun
		at  string
	)
	err := s.db.QueryRowContext(ctx, `
		SELECT at, status, records, error FROM sync_runs ORDER BY id DESC LIMIT 1`).
		Scan(&at, &run.Status, &run.Records, &run.Error)
	if err == sql.ErrNoRows {
		return export.SyncRun{}, false, nil
	}
	if err != nil {
		return export.SyncRun{}, false, err
	}
	if run.At, err = time.Parse(time.RFC3339Nano, at); err != nil {
		return export.SyncRun{}, false, err
	}
	return run, true, nil
}
