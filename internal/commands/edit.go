package commands

import (
	"context"
	"flag"
	"fmt"
	"io"
	"strings"

	"rtask/internal/config"
	"rtask/internal/exitcode"
	"rtask/internal/output"
	"rtask/internal/service"
)

func init() {
	Register(&EditCmd{})
}

// EditCmd implements the edit command. It sends a partial update: only the
// fields the user asked to change go over the wire.
type EditCmd struct {
	done   bool
	undone bool
}

func (c *EditCmd) Name() string      { return "edit" }
func (c *EditCmd) Aliases() []string { return nil }
func (c *EditCmd) Synopsis() string  { return "Change a task's title or completion flag" }
func (c *EditCmd) Usage() string     { return "rtask edit [--done|--undone] <id> [title...]" }
func (c *EditCmd) NeedsAPI() bool    { return true }

func (c *EditCmd) RegisterFlags(fs *flag.FlagSet) {
	fs.BoolVar(&c.done, "done", false, "mark the task completed")
	fs.BoolVar(&c.undone, "undone", false, "mark the task not completed")
}

// SetDone marks the task completed on the next Run.
func (c *EditCmd) SetDone() { c.done = true }

// SetUndone marks the task not completed on the next Run.
func (c *EditCmd) SetUndone() { c.undone = true }

func (c *EditCmd) Run(ctx context.Context, cfg *config.Config, svc service.Service, args []string, out, errOut io.Writer) int {
	id, err := ParseTaskID(args)
	if err != nil {
		if err == ErrTaskIDRequired {
			fmt.Fprintln(errOut, "error: task id required")
		} else {
			fmt.Fprintf(errOut, "error: %v\n", err)
		}
		return exitcode.UserError
	}

	if c.done && c.undone {
		fmt.Fprintln(errOut, "error: cannot use both --done and --undone")
		return exitcode.UserError
	}

	var patch service.TaskPatch
	if rest := args[1:]; len(rest) > 0 {
		title := strings.Join(rest, " ")
		if strings.TrimSpace(title) == "" {
			fmt.Fprintln(errOut, "error: empty title")
			return exitcode.UserError
		}
		patch.Title = &title
	}
	if c.done || c.undone {
		completed := c.done
		patch.IsCompleted = &completed
	}

	if patch.IsEmpty() {
		fmt.Fprintln(errOut, "error: nothing to update")
		return exitcode.UserError
	}

	task, err := svc.UpdateTask(ctx, id, patch)
	if err != nil {
		fmt.Fprintf(errOut, "error: backend error: %v\n", err)
		return exitcode.BackendError
	}

	if !cfg.Quiet {
		output.FormatTask(out, task)
	}
	return exitcode.Success
}
