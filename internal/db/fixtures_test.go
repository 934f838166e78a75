package db

import (
	"database/sql"
	"fmt"
	"testing"
	"time"
)

// fixtureTasks returns a small collection with a gap in the IDs, one
// completed task, and one task without a due date.
func fixtureTasks(now time.Time) []Task {
	return []Task{
		{
			ID:        1,
			UUID:      "4b4e7f0e-1d1a-4a53-9a3e-7a0c2b6f0001",
			Name:      "Write report",
			Due:       NewNullString("10/31/2026"),
			Priority:  3,
			CreatedAt: now.AddDate(0, 0, -4),
		},
		{
			ID:          2,
			UUID:        "4b4e7f0e-1d1a-4a53-9a3e-7a0c2b6f0002",
			Name:        "Renew passport",
			Priority:    1,
			CreatedAt:   now.AddDate(0, 0, -2),
			CompletedAt: sql.NullTime{Time: now.Add(-time.Hour), Valid: true},
		},
		{
			ID:        4,
			UUID:      "4b4e7f0e-1d1a-4a53-9a3e-7a0c2b6f0004",
			Name:      "Report bug in parser",
			Priority:  2,
			CreatedAt: now,
		},
	}
}

// createFixturesDatabase writes the fixture collection to a fresh file
func createFixturesDatabase(t *testing.T, dbPath string, now time.Time) {
	t.Helper()

	database, err := Open(dbPath)
	if err != nil {
		t.Fatalf("opening fixtures database: %v", err)
	}
	defer database.Close()

	if err := database.SaveTasks(fixtureTasks(now)); err != nil {
		t.Fatal(fmt.Errorf("saving fixtures: %w", err))
	}
}
