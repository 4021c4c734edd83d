package cli

import (
	"context"
	"errors"
	"fmt"
)

// ErrRejected is returned when the service answered, but negatively.
var ErrRejected = errors.New("rejected")

func (a *App) check(ctx context.Context, args []string) error {
	fs := a.newFlagSet("check")
	group := fs.String("group", "", "group name")
	phrase := fs.String("phrase", "", "group password phrase")
	if err := a.parse(fs, args); err != nil {
		return err
	}
	if err := a.require(fs, "group"); err != nil {
		return err
	}

	c, err := a.newClient(a.config, a.logger)
	if err != nil {
		return err
	}
	defer c.Close()

	res := c.CheckGroup(ctx, *group, *phrase)
	if res.Error != "" {
		return errors.New(res.Error)
	}

	fmt.Fprintf(a.out, "exists: %t\nvalid: %t\n", res.Exists, res.ValidPassword)
	if res.GroupDescription != "" {
		fmt.Fprintf(a.out, "description: %s\n", res.GroupDescription)
	}
	fmt.Fprintf(a.out, "message: %s\n", res.Message)

	if !res.ValidPassword {
		return ErrRejected
	}
	return nil
}

func (a *App) generate(ctx context.Context, args []string) error {
	fs := a.newFlagSet("generate")
	group := fs.String("group", "", "group name")
	if err := a.parse(fs, args); err != nil {
		return err
	}
	if err := a.require(fs, "group"); err != nil {
		return err
	}

	c, err := a.newClient(a.config, a.logger)
	if err != nil {
		return err
	}
	defer c.Close()

	res := c.GenerateGroupPassword(ctx, *group)
	if !res.Success {
		return fmt.Errorf("%w: %s", ErrRejected, res.Error)
	}

	fmt.Fprintln(a.out, res.Password)
	return nil
}
