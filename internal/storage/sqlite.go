package storage

import (
	"database/sql"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"

	"vacancy-finder-go/internal/models"
)

// SQLiteStore persists vacancies in an embedded SQLite database. It serves
// the same Connector contract as the JSON file store for setups where the
// flat file gets unwieldy. A NULL salary column is the unspecified variant,
// a NULL id column is an absent id.
type SQLiteStore struct {
	path string
	conn *sql.DB
}

func NewSQLiteStore(path string) (*SQLiteStore, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, &StorageError{Op: "init", Path: path, Err: err}
		}
	}
	conn, err := sql.Open("sqlite", path+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, &StorageError{Op: "open", Path: path, Err: err}
	}
	// SQLite only supports one writer; a single connection avoids SQLITE_BUSY
	conn.SetMaxOpenConns(1)

	s := &SQLiteStore{path: path, conn: conn}
	if err := s.migrate(); err != nil {
		conn.Close()
		return nil, &StorageError{Op: "migrate", Path: path, Err: err}
	}
	return s, nil
}

func (s *SQLiteStore) migrate() error {
	_, err := s.conn.Exec(`CREATE TABLE IF NOT EXISTS vacancies (
		name TEXT NOT NULL,
		link TEXT NOT NULL,
		salary REAL,
		description TEXT NOT NULL DEFAULT '',
		id TEXT
	)`)
	return err
}

func (s *SQLiteStore) Close() error {
	return s.conn.Close()
}

func (s *SQLiteStore) Add(vacancy models.Vacancy) error {
	var salary any
	if amount, ok := vacancy.Salary.Amount(); ok {
		salary = amount
	}
	var id any
	if vacancy.ID != "" {
		id = vacancy.ID
	}
	_, err := s.conn.Exec(
		`INSERT INTO vacancies (name, link, salary, description, id) VALUES (?, ?, ?, ?, ?)`,
		vacancy.Name, vacancy.Link, salary, vacancy.Description, id,
	)
	if err != nil {
		return &StorageError{Op: "insert", Path: s.path, Err: err}
	}
	return nil
}

func (s *SQLiteStore) Get(criteria Criteria) ([]models.Vacancy, error) {
	rows, err := s.conn.Query(`SELECT name, link, salary, description, id FROM vacancies ORDER BY rowid`)
	if err != nil {
		return nil, &StorageError{Op: "select", Path: s.path, Err: err}
	}
	defer rows.Close()

	var matched []models.Vacancy
	for rows.Next() {
		var (
			v      models.Vacancy
			salary sql.NullFloat64
			id     sql.NullString
		)
		if err := rows.Scan(&v.Name, &v.Link, &salary, &v.Description, &id); err != nil {
			return nil, &StorageError{Op: "scan", Path: s.path, Err: err}
		}
		if salary.Valid {
			sal, err := models.NewSalary(salary.Float64)
			if err != nil {
				return nil, &StorageError{Op: "scan", Path: s.path, Err: err}
			}
			v.Salary = sal
		}
		if id.Valid {
			v.ID = id.String
		}
		if criteria.Matches(v) {
			matched = append(matched, v)
		}
	}
	if err := rows.Err(); err != nil {
		return nil, &StorageError{Op: "select", Path: s.path, Err: err}
	}
	return matched, nil
}

func (s *SQLiteStore) Delete(id string) error {
	if _, err := s.conn.Exec(`DELETE FROM vacancies WHERE id = ?`, id); err != nil {
		return &StorageError{Op: "delete", Path: s.path, Err: err}
	}
	return nil
}
