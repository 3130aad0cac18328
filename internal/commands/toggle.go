package commands

import (
	"context"
	"flag"
	"fmt"
	"io"

	"rtask/internal/config"
	"rtask/internal/exitcode"
	"rtask/internal/output"
	"rtask/internal/service"
)

func init() {
	Register(&ToggleCmd{})
}

// ToggleCmd implements the toggle command. The "done" alias reads better
// when checking something off; both flip the flag either way.
type ToggleCmd struct{}

func (c *ToggleCmd) Name() string      { return "toggle" }
func (c *ToggleCmd) Aliases() []string { return []string{"done"} }
func (c *ToggleCmd) Synopsis() string  { return "Flip a task's completion flag" }
func (c *ToggleCmd) Usage() string     { return "rtask toggle <id>" }
func (c *ToggleCmd) NeedsAPI() bool    { return true }

func (c *ToggleCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *ToggleCmd) Run(ctx context.Context, cfg *config.Config, svc service.Service, args []string, out, errOut io.Writer) int {
	id, err := ParseTaskID(args)
	if err != nil {
		if err == ErrTaskIDRequired {
			fmt.Fprintln(errOut, "error: task id required")
		} else {
			fmt.Fprintf(errOut, "error: %v\n", err)
		}
		return exitcode.UserError
	}

	task, err := svc.ToggleTask(ctx, id)
	if err != nil {
		fmt.Fprintf(errOut, "error: backend error: %v\n", err)
		return exitcode.BackendError
	}

	// The returned task carries the flipped flag.
	if !cfg.Quiet {
		output.FormatTask(out, task)
	}
	return exitcode.Success
}
