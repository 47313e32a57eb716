package storage

import (
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"

	"github.com/kamalsrini/PayrollTimecardAgent/timesheet"
)

// SQLiteStore persists consolidated records as a durable run ledger.
// Output artifacts remain the source of truth for payroll; the ledger is
// an audit trail across runs.
type SQLiteStore struct {
	db *sql.DB
}

func OpenSQLite(path string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}

	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}

	store := &SQLiteStore{db: db}
	if err := store.ensureSchema(); err != nil {
		_ = db.Close()
		return nil, err
	}

	return store, nil
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

func (s *SQLiteStore) ensureSchema() error {
	const schema = `
CREATE TABLE IF NOT EXISTS ledger_records (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	employee_name TEXT NOT NULL,
	total_hours REAL NOT NULL CHECK(total_hours >= 0),
	period TEXT NOT NULL,
	title TEXT NOT NULL,
	project_manager TEXT NOT NULL,
	client TEXT NOT NULL,
	firm TEXT NOT NULL,
	source_type TEXT NOT NULL,
	source_file TEXT NOT NULL,
	extracted_at TEXT NOT NULL,
	created_at TEXT NOT NULL DEFAULT CURRENT_TIMESTAMP,
	UNIQUE(employee_name, total_hours, source_type, source_file, extracted_at)
);
`
	if _, err := s.db.Exec(schema); err != nil {
		return fmt.Errorf("create schema: %w", err)
	}

	return nil
}

// InsertRecords appends consolidated records to the ledger and returns
// how many rows were actually inserted. Re-running an identical
// consolidation is ignored by the UNIQUE constraint.
func (s *SQLiteStore) InsertRecords(records []timesheet.Record) (int, error) {
	if len(records) == 0 {
		return 0, nil
	}

	tx, err := s.db.Begin()
	if err != nil {
		return 0, fmt.Errorf("begin transaction: %w", err)
	}

	const insertStmt = `
INSERT OR IGNORE INTO ledger_records (
	employee_name,
	total_hours,
	period,
	title,
	project_manager,
	client,
	firm,
	source_type,
	source_file,
	extracted_at
) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?);`

	stmt, err := tx.Prepare(insertStmt)
	if err != nil {
		_ = tx.Rollback()
		return 0, fmt.Errorf("prepare insert statement: %w", err)
	}
	defer stmt.Close()

	inserted := 0
	for _, record := range records {
		res, err := stmt.Exec(
			record.EmployeeName,
			record.TotalHours,
			record.Period,
			record.Title,
			record.ProjectManager,
			record.Client,
			record.Firm,
			record.SourceType,
			record.SourceFile,
			record.ExtractedAt,
		)
		if err != nil {
			_ = tx.Rollback()
			return inserted, fmt.Errorf("insert ledger record: %w", err)
		}

		rows, err := res.RowsAffected()
		if err == nil && rows > 0 {
			inserted++
		}
	}

	if err := tx.Commit(); err != nil {
		return inserted, fmt.Errorf("commit transaction: %w", err)
	}

	return inserted, nil
}

// ListRecords returns the full ledger, oldest extraction first.
func (s *SQLiteStore) ListRecords() ([]timesheet.Record, error) {
	const query = `
SELECT
	employee_name,
	total_hours,
	period,
	title,
	project_manager,
	client,
	firm,
	source_type,
	source_file,
	extracted_at
FROM ledger_records
ORDER BY extracted_at, id;
`

	rows, err := s.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("query ledger records: %w", err)
	}
	defer rows.Close()

	records := make([]timesheet.Record, 0, 64)
	for rows.Next() {
		var record timesheet.Record
		if err := rows.Scan(
			&record.EmployeeName,
			&record.TotalHours,
			&record.Period,
			&record.Title,
			&record.ProjectManager,
			&record.Client,
			&record.Firm,
			&record.SourceType,
			&record.SourceFile,
			&record.ExtractedAt,
		); err != nil {
			return nil, fmt.Errorf("scan ledger record: %w", err)
		}
		records = append(records, record)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate ledger records: %w", err)
	}

	return records, nil
}

// ListRecordsByEmployee returns ledger rows for one trimmed employee
// name, oldest extraction first.
func (s *SQLiteStore) ListRecordsByEmployee(name string) ([]timesheet.Record, error) {
	const query = `
SELECT
	employee_name,
	total_hours,
	period,
	title,
	project_manager,
	client,
	firm,
	source_type,
	source_file,
	extracted_at
FROM ledger_records
WHERE TRIM(employee_name) = TRIM(?)
ORDER BY extracted_at, id;
`

	rows, err := s.db.Query(query, name)
	if err != nil {
		return nil, fmt.Errorf("query ledger records for %s: %w", name, err)
	}
	defer rows.Close()

	records := make([]timesheet.Record, 0, 16)
	for rows.Next() {
		var record timesheet.Record
		if err := rows.Scan(
			&record.EmployeeName,
			&record.TotalHours,
			&record.Period,
			&record.Title,
			&record.ProjectManager,
			&record.Client,
			&record.Firm,
			&record.SourceType,
			&record.SourceFile,
			&record.ExtractedAt,
		); err != nil {
			return nil, fmt.Errorf("scan ledger record: %w", err)
		}
		records = append(records, record)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate ledger records: %w", err)
	}

	return records, nil
}
