// Package tasks holds the in-memory task collection for one run and the
// operations the command line exposes on it.
package tasks

import (
	"fmt"
	"io"
	"slices"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/pdxmph/todo/internal/db"
)

// DefaultPriority is used when a task is added without one
const DefaultPriority = 1

// Store owns the task collection between load and save
type Store struct {
	tasks  []db.Task
	out    io.Writer
	now    func() time.Time
	logger *log.Logger
}

// Option configures a Store
type Option func(*Store)

// WithClock replaces time.Now, mainly for tests
func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		s.now = now
	}
}

// WithLogger attaches a logger for debug events
func WithLogger(logger *log.Logger) Option {
	return func(s *Store) {
		s.logger = logger
	}
}

// NewStore creates a store over a loaded collection. User-facing messages
// and tables are written to out.
func NewStore(tasks []db.Task, out io.Writer, opts ...Option) *Store {
	s := &Store{
		tasks:  tasks,
		out:    out,
		now:    time.Now,
		logger: log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Tasks returns a copy of the collection in stored order
func (s *Store) Tasks() []db.Task {
	return slices.Clone(s.tasks)
}

// nextID is one more than the largest existing ID, so IDs are never reused
// within a run
func (s *Store) nextID() int {
	largest := 0
	for _, t := range s.tasks {
		largest = max(largest, t.ID)
	}
	return largest + 1
}

// Add appends a new task and returns its ID. An empty due means no due date.
func (s *Store) Add(name, due string, priority int) int {
	task := db.Task{
		ID:        s.nextID(),
		UUID:      uuid.NewString(),
		Name:      name,
		Due:       db.NewNullString(due),
		Priority:  priority,
		CreatedAt: s.now(),
	}
	s.tasks = append(s.tasks, task)

	s.logger.Debug("added task", "id", task.ID, "uuid", task.UUID, "priority", priority)
	fmt.Fprintf(s.out, "Created task %d\n", task.ID)
	return task.ID
}

// Delete removes the task with the given ID
func (s *Store) Delete(id int) bool {
	i := s.indexOf(id)
	if i < 0 {
		fmt.Fprintln(s.out, "Could not find task to delete")
		return false
	}

	s.tasks = slices.Delete(s.tasks, i, i+1)
	s.logger.Debug("deleted task", "id", id, "position", i)
	fmt.Fprintf(s.out, "Deleted task %d\n", id)
	return true
}

// Done stamps the task with the given ID as completed now
func (s *Store) Done(id int) bool {
	i := s.indexOf(id)
	if i < 0 {
		fmt.Fprintf(s.out, "Could not find task with id %d\n", id)
		return false
	}

	s.tasks[i].CompletedAt.Time = s.now()
	s.tasks[i].CompletedAt.Valid = true
	fmt.Fprintf(s.out, "Completed task %d\n", id)
	return true
}

// List renders incomplete tasks, highest priority first, and returns them
func (s *Store) List() []db.Task {
	pending := byPriority(incomplete(s.tasks))
	renderList(s.out, pending, s.now())
	return pending
}

// Report renders every task, highest priority first, and returns them
func (s *Store) Report() []db.Task {
	all := byPriority(s.tasks)
	renderReport(s.out, all, s.now())
	return all
}

// Query renders incomplete tasks whose name contains any keyword, ignoring
// case. A task matching several keywords is listed once per keyword.
func (s *Store) Query(keywords []string) []db.Task {
	var matches []db.Task
	for _, kw := range keywords {
		kw = strings.ToLower(kw)
		for _, t := range s.tasks {
			if !t.IsComplete() && strings.Contains(strings.ToLower(t.Name), kw) {
				matches = append(matches, t)
			}
		}
	}

	s.logger.Debug("query", "keywords", keywords, "matches", len(matches))
	renderList(s.out, matches, s.now())
	return matches
}

func (s *Store) indexOf(id int) int {
	return slices.IndexFunc(s.tasks, func(t db.Task) bool {
		return t.ID == id
	})
}

func incomplete(tasks []db.Task) []db.Task {
	var pending []db.Task
	for _, t := range tasks {
		if !t.IsComplete() {
			pending = append(pending, t)
		}
	}
	return pending
}

// byPriority returns a copy sorted by descending priority, keeping the
// stored order among equal priorities
func byPriority(tasks []db.Task) []db.Task {
	sorted := slices.Clone(tasks)
	slices.SortStableFunc(sorted, func(a, b db.Task) int {
		return b.Priority - a.Priority
	})
	return sorted
}
