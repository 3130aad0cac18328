package commands

import (
	"errors"
	"fmt"
	"strconv"
)

// ErrTaskIDRequired indicates no task ID was provided.
var ErrTaskIDRequired = errors.New("task id required")

// ParseTaskID reads a task ID from the first positional argument.
//
// Task IDs are the server-assigned integers shown in list output, so the
// reference is the ID itself: digits only, at least 1. Anything else is an
// "invalid task id" error.
func ParseTaskID(args []string) (int64, error) {
	if len(args) == 0 {
		return 0, ErrTaskIDRequired
	}

	raw := args[0]
	if !isAllDigits(raw) {
		return 0, fmt.Errorf("invalid task id: %s", raw)
	}

	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id < 1 {
		return 0, fmt.Errorf("invalid task id: %s", raw)
	}
	return id, nil
}

// isAllDigits returns true if s consists only of ASCII digits and is non-empty.
func isAllDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
