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
	Register(&AddCmd{})
}

// AddCmd implements the add command.
type AddCmd struct{}

func (c *AddCmd) Name() string      { return "add" }
func (c *AddCmd) Aliases() []string { return []string{"create"} }
func (c *AddCmd) Synopsis() string  { return "Create a task" }
func (c *AddCmd) Usage() string     { return "rtask add <title...>" }
func (c *AddCmd) NeedsAPI() bool    { return true }

func (c *AddCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *AddCmd) Run(ctx context.Context, cfg *config.Config, svc service.Service, args []string, out, errOut io.Writer) int {
	if len(args) == 0 {
		fmt.Fprintln(errOut, "error: title required")
		return exitcode.UserError
	}

	// Join args to form the title
	title := strings.Join(args, " ")
	if strings.TrimSpace(title) == "" {
		fmt.Fprintln(errOut, "error: title required")
		return exitcode.UserError
	}

	task, err := svc.CreateTask(ctx, title)
	if err != nil {
		fmt.Fprintf(errOut, "error: backend error: %v\n", err)
		return exitcode.BackendError
	}

	// Print the server's representation; it carries the assigned ID the
	// user needs for toggle/edit/rm.
	if !cfg.Quiet {
		output.FormatTask(out, task)
	}
	return exitcode.Success
}
