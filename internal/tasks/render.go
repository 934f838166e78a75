package tasks

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/pdxmph/todo/internal/db"
)

// TimestampLayout formats creation and completion times in reports
const TimestampLayout = "Mon Jan 2 15:04:05 MST 2006"

type column struct {
	title string
	rule  string
	width int
}

var (
	listColumns = []column{
		{"ID", "--", 4},
		{"Age", "---", 5},
		{"Due Date", "------------", 15},
		{"Priority", "--------", 10},
		{"Task", "--------------------", 22},
	}

	reportColumns = append(listColumns[:len(listColumns):len(listColumns)],
		column{"Created", "----------------------------", 35},
		column{"Completed", "----------------------------", 27},
	)
)

// padRow left-justifies each cell to its column width. Longer cells are
// not truncated.
func padRow(cols []column, cells []string) string {
	var b strings.Builder
	for i, c := range cols {
		fmt.Fprintf(&b, "%-*s", c.width, cells[i])
	}
	return b.String()
}

func renderHeader(w io.Writer, cols []column) {
	titles := make([]string, len(cols))
	rules := make([]string, len(cols))
	for i, c := range cols {
		titles[i] = c.title
		rules[i] = c.rule
	}

	// The renderer picks the color profile of w, so piped output stays plain
	r := lipgloss.NewRenderer(w)
	headerStyle := r.NewStyle().Bold(true)
	ruleStyle := r.NewStyle().Foreground(lipgloss.Color("240"))

	fmt.Fprintln(w, headerStyle.Render(padRow(cols, titles)))
	fmt.Fprintln(w, ruleStyle.Render(padRow(cols, rules)))
}

func taskCells(t db.Task, now time.Time) []string {
	return []string{
		fmt.Sprint(t.ID),
		fmt.Sprintf("%dd", t.AgeDays(now)),
		t.DueString(),
		fmt.Sprint(t.Priority),
		t.Name,
	}
}

func renderList(w io.Writer, tasks []db.Task, now time.Time) {
	renderHeader(w, listColumns)
	for _, t := range tasks {
		fmt.Fprintln(w, padRow(listColumns, taskCells(t, now)))
	}
}

func renderReport(w io.Writer, tasks []db.Task, now time.Time) {
	renderHeader(w, reportColumns)
	for _, t := range tasks {
		completed := "-"
		if t.IsComplete() {
			completed = t.CompletedAt.Time.Format(TimestampLayout)
		}
		cells := append(taskCells(t, now), t.CreatedAt.Format(TimestampLayout), completed)
		fmt.Fprintln(w, padRow(reportColumns, cells))
	}
}
