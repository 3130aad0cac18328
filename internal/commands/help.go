package commands

import (
	"context"
	"flag"
	"fmt"
	"io"

	"rtask/internal/config"
	"rtask/internal/exitcode"
	"rtask/internal/service"
)

func init() {
	Register(&HelpCmd{})
}

// HelpCmd implements the help command.
type HelpCmd struct{}

func (c *HelpCmd) Name() string      { return "help" }
func (c *HelpCmd) Aliases() []string { return nil }
func (c *HelpCmd) Synopsis() string  { return "Print usage" }
func (c *HelpCmd) Usage() string     { return "rtask help" }
func (c *HelpCmd) NeedsAPI() bool    { return false }

func (c *HelpCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *HelpCmd) Run(ctx context.Context, cfg *config.Config, svc service.Service, args []string, out, errOut io.Writer) int {
	fmt.Fprint(out, helpText)
	return exitcode.Success
}

const helpText = `Usage:
  rtask                                    List tasks
  rtask list [common flags]                List tasks
  rtask ls [common flags]                  List tasks
  rtask add [common flags] <title...>      Create a task
  rtask create [common flags] <title...>   Create a task
  rtask toggle [common flags] <id>         Flip a task's completion flag
  rtask done [common flags] <id>           Flip a task's completion flag
  rtask edit [common flags] [--done|--undone] <id> [title...]
  rtask rm [common flags] <id>             Delete a task
  rtask delete [common flags] <id>         Delete a task
  rtask help
  rtask version

Common flags:
  --api <url>   Override the task API base URL
  --quiet       Suppress informational output
  --debug       Print debug logs to stderr
`
