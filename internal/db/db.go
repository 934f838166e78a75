package db

import (
	"database/sql"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

const timeLayout = time.RFC3339Nano

// DB wraps the task file connection
type DB struct {
	conn *sql.DB
	path string
}

// Open opens the task file at dbPath, creating an empty one if it does not
// exist yet.
func Open(dbPath string) (*DB, error) {
	if _, err := os.Stat(dbPath); errors.Is(err, fs.ErrNotExist) {
		if err := Initialize(dbPath); err != nil {
			return nil, err
		}
	} else if err != nil {
		return nil, fmt.Errorf("checking task file: %w", err)
	}

	conn, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, fmt.Errorf("opening task file: %w", err)
	}

	// sql.Open is lazy; a file that is not a task database fails here
	if _, err := conn.Exec(schema); err != nil {
		conn.Close()
		return nil, fmt.Errorf("reading task file %s: %w", dbPath, err)
	}

	return &DB{conn: conn, path: dbPath}, nil
}

// Path returns the location of the task file
func (db *DB) Path() string {
	return db.path
}

// Close closes the task file connection
func (db *DB) Close() error {
	return db.conn.Close()
}

// LoadTasks returns the full collection in stored order
func (db *DB) LoadTasks() ([]Task, error) {
	query := `
		SELECT id, uuid, name, due, priority, created_at, completed_at
		FROM tasks
		ORDER BY position
	`

	rows, err := db.conn.Query(query)
	if err != nil {
		return nil, fmt.Errorf("querying tasks: %w", err)
	}
	defer rows.Close()

	var tasks []Task
	for rows.Next() {
		var (
			t         Task
			created   string
			completed sql.NullString
		)
		if err := rows.Scan(&t.ID, &t.UUID, &t.Name, &t.Due, &t.Priority, &created, &completed); err != nil {
			return nil, fmt.Errorf("scanning task: %w", err)
		}

		t.CreatedAt, err = time.Parse(timeLayout, created)
		if err != nil {
			return nil, fmt.Errorf("parsing created_at of task %d: %w", t.ID, err)
		}
		if completed.Valid {
			at, err := time.Parse(timeLayout, completed.String)
			if err != nil {
				return nil, fmt.Errorf("parsing completed_at of task %d: %w", t.ID, err)
			}
			t.CompletedAt = sql.NullTime{Time: at, Valid: true}
		}

		tasks = append(tasks, t)
	}

	return tasks, rows.Err()
}

// SaveTasks replaces the stored collection with tasks
func (db *DB) SaveTasks(tasks []Task) error {
	tx, err := db.conn.Begin()
	if err != nil {
		return fmt.Errorf("starting transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM tasks`); err != nil {
		return fmt.Errorf("clearing tasks: %w", err)
	}

	stmt, err := tx.Prepare(`
		INSERT INTO tasks (id, uuid, position, name, due, priority, created_at, completed_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("preparing insert: %w", err)
	}
	defer stmt.Close()

	for i, t := range tasks {
		var completed sql.NullString
		if t.CompletedAt.Valid {
			completed = NewNullString(t.CompletedAt.Time.Format(timeLayout))
		}

		_, err := stmt.Exec(
			t.ID,
			t.UUID,
			i,
			t.Name,
			t.Due,
			t.Priority,
			t.CreatedAt.Format(timeLayout),
			completed,
		)
		if err != nil {
			return fmt.Errorf("inserting task %d: %w", t.ID, err)
		}
	}

	return tx.Commit()
}
