package cli

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/dmitrijs2005/groupauth/internal/client/client"
	"github.com/dmitrijs2005/groupauth/internal/client/config"
	"github.com/dmitrijs2005/groupauth/internal/logging"
)

// ErrUsage marks a malformed command line. The message has already been
// printed when it is returned.
var ErrUsage = errors.New("usage error")

// ErrHelp is returned after a command printed its flag help on -h.
var ErrHelp = errors.New("help requested")

type App struct {
	config *config.Config
	logger logging.Logger
	out    io.Writer
	errOut io.Writer
	reader *bufio.Reader

	newClient func(cfg *config.Config, logger logging.Logger) (client.Client, error)
	openAdmin func(ctx context.Context, cfg *config.Config) (*adminBackend, error)
}

func NewApp(c *config.Config) *App {
	return &App{
		config: c,
		logger: logging.New(os.Stderr, c.LogLevel),
		out:    os.Stdout,
		errOut: os.Stderr,
		reader: bufio.NewReader(os.Stdin),
		newClient: func(cfg *config.Config, logger logging.Logger) (client.Client, error) {
			return client.New(cfg, logger)
		},
		openAdmin: openPostgresAdmin,
	}
}

const usage = `usage: groupctl [global flags] <command> [flags]

commands:
  check     -group NAME [-phrase PHRASE]   check a group password phrase
  generate  -group NAME                    issue a new group password phrase
  admin     <command> -email EMAIL ...     manage users, groups and memberships

global flags:
  -c FILE  -a ADDR  -r ATTEMPTS  -b BACKOFF  -d DSN  -l LEVEL
`

// Run executes the command in args (global flags already stripped).
func (a *App) Run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		fmt.Fprint(a.errOut, usage)
		return ErrUsage
	}

	switch args[0] {
	case "check":
		return a.check(ctx, args[1:])
	case "generate":
		return a.generate(ctx, args[1:])
	case "admin":
		return a.admin(ctx, args[1:])
	case "help", "-h", "--help":
		fmt.Fprint(a.out, usage)
		return nil
	default:
		fmt.Fprintf(a.errOut, "unknown command %q\n\n%s", args[0], usage)
		return ErrUsage
	}
}

func (a *App) newFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(a.errOut)
	return fs
}

func (a *App) parse(fs *flag.FlagSet, args []string) error {
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return ErrHelp
		}
		return ErrUsage
	}
	return nil
}

// require checks that every named flag of fs ended up non-empty.
func (a *App) require(fs *flag.FlagSet, names ...string) error {
	for _, name := range names {
		if f := fs.Lookup(name); f == nil || f.Value.String() == "" {
			fmt.Fprintf(a.errOut, "%s: -%s is required\n", fs.Name(), name)
			return ErrUsage
		}
	}
	return nil
}
