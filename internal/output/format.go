// Package output provides formatters for CLI output.
package output

import (
	"fmt"
	"io"
	"strings"

	"rtask/internal/service"
)

// FormatTask formats one task line.
// Format: "{ID:>4}  [x| ]  {TITLE}\n" (4-wide right-aligned server ID,
// completion marker, title).
func FormatTask(w io.Writer, task service.Task) {
	marker := " "
	if task.IsCompleted {
		marker = "x"
	}
	fmt.Fprintf(w, "%4d  [%s]  %s\n", task.ID, marker, normalizeTitle(task.Title))
}

// normalizeTitle normalizes a task title for display.
// - Empty or whitespace-only titles become "(untitled)"
// - Newlines are replaced with spaces
func normalizeTitle(title string) string {
	title = strings.ReplaceAll(title, "\r", " ")
	title = strings.ReplaceAll(title, "\n", " ")

	if strings.TrimSpace(title) == "" {
		return "(untitled)"
	}
	return title
}
