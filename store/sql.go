package store

import (
	"database/sql"
	"fmt"

	salescoach "github.com/vertriebslab/salescoach-sdk-go"
)

// SQLSessionStore implements salescoach.SessionStore on database/sql.
// It is driver-agnostic: the sql.DB must already be opened with a driver
// (SQLite for embedded deployments, MySQL/Postgres for shared ones).
//
// One table holds one snapshot row per session id (auto-created if
// AutoMigrate is true).
type SQLSessionStore struct {
	db    *sql.DB
	table string
}

// SQLStoreConfig configures the SQL store.
type SQLStoreConfig struct {
	Table       string // table name, default "salescoach_sessions"
	AutoMigrate bool   // create table if not exist, default true
}

// NewSQLSessionStore creates a SessionStore backed by a SQL database.
func NewSQLSessionStore(db *sql.DB, config ...SQLStoreConfig) (*SQLSessionStore, error) {
	cfg := SQLStoreConfig{Table: "salescoach_sessions", AutoMigrate: true}
	if len(config) > 0 {
		cfg = config[0]
	}
	if cfg.Table == "" {
		cfg.Table = "salescoach_sessions"
	}

	s := &SQLSessionStore{db: db, table: cfg.Table}
	if cfg.AutoMigrate {
		if err := s.migrate(); err != nil {
			return nil, fmt.Errorf("auto-migrate failed: %w", err)
		}
	}
	return s, nil
}

func (s *SQLSessionStore) migrate() error {
	ddl := fmt.Sprintf(`CREATE TABLE IF NOT EXISTS %s (
		session_id TEXT NOT NULL PRIMARY KEY,
		snapshot   TEXT NOT NULL
	)`, s.table)
	_, err := s.db.Exec(ddl)
	return err
}

func (s *SQLSessionStore) Get(sessionID string) (string, error) {
	var snapshot string
	err := s.db.QueryRow(
		fmt.Sprintf("SELECT snapshot FROM %s WHERE session_id = ?", s.table),
		sessionID,
	).Scan(&snapshot)
	if err == sql.ErrNoRows {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return snapshot, nil
}

func (s *SQLSessionStore) Put(sessionID, snapshot string) error {
	_, err := s.db.Exec(
		fmt.Sprintf(`INSERT INTO %s (session_id, snapshot) VALUES (?, ?)
			ON CONFLICT(session_id) DO UPDATE SET snapshot = excluded.snapshot`, s.table),
		sessionID, snapshot,
	)
	return err
}

func (s *SQLSessionStore) Delete(sessionID string) error {
	_, err := s.db.Exec(
		fmt.Sprintf("DELETE FROM %s WHERE session_id = ?", s.table),
		sessionID,
	)
	return err
}

func (s *SQLSessionStore) List() ([]string, error) {
	rows, err := s.db.Query(fmt.Sprintf("SELECT session_id FROM %s ORDER BY session_id", s.table))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

// Compile-time interface check.
var _ salescoach.SessionStore = (*SQLSessionStore)(nil)
