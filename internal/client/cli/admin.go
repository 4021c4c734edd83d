package cli

import (
	"context"
	"database/sql"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/dmitrijs2005/groupauth/internal/client/config"
	"github.com/dmitrijs2005/groupauth/internal/server/auth"
	"github.com/dmitrijs2005/groupauth/internal/server/models"
	"github.com/dmitrijs2005/groupauth/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/groupauth/internal/server/services"
	servercfg "github.com/dmitrijs2005/groupauth/internal/server/config"
)

type userAdmin interface {
	Authenticate(ctx context.Context, email, password string) (auth.Principal, error)
	Create(ctx context.Context, p auth.Principal, in services.UserInput) (*models.User, error)
	Update(ctx context.Context, p auth.Principal, id string, in services.UserInput) error
	Delete(ctx context.Context, p auth.Principal, id string) error
	List(ctx context.Context, p auth.Principal) ([]*models.User, error)
}

type groupAdmin interface {
	CreateGroup(ctx context.Context, p auth.Principal, name, description string) (*models.Group, error)
	UpdateGroup(ctx context.Context, p auth.Principal, id, name, description string) error
	DeleteGroup(ctx context.Context, p auth.Principal, id string) error
	ListGroups(ctx context.Context, p auth.Principal) ([]*models.Group, error)
	RotatePhrase(ctx context.Context, p auth.Principal, groupID string) (string, error)
	ClearPhrase(ctx context.Context, p auth.Principal, groupID string) error
}

type membershipAdmin interface {
	Assign(ctx context.Context, p auth.Principal, userID, groupID string) (*models.Membership, error)
	Remove(ctx context.Context, p auth.Principal, membershipID string) error
	Get(ctx context.Context, userID string) (*models.Membership, error)
	ListByGroup(ctx context.Context, p auth.Principal, groupID string) ([]*models.Membership, error)
}

// adminBackend is the store-side surface the admin commands drive.
type adminBackend struct {
	users   userAdmin
	groups  groupAdmin
	members membershipAdmin
	closer  io.Closer
}

func openPostgresAdmin(ctx context.Context, cfg *config.Config) (*adminBackend, error) {
	db, err := sql.Open("pgx", cfg.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("db ping: %w", err)
	}

	sc := &servercfg.Config{}
	sc.LoadDefaults()
	rm := repomanager.NewPostgresRepositoryManager()

	return &adminBackend{
		users:   services.NewUserService(db, rm),
		groups:  services.NewGroupService(db, rm, sc),
		members: services.NewMembershipService(db, rm, sc),
		closer:  db,
	}, nil
}

type adminCommand struct {
	flags []string
	run   func(ctx context.Context, a *App, b *adminBackend, p auth.Principal, v map[string]*string) error
}

var adminCommands = map[string]adminCommand{
	"user-create": {
		flags: []string{"username", "user-email", "password", "role"},
		run: func(ctx context.Context, a *App, b *adminBackend, p auth.Principal, v map[string]*string) error {
			u, err := b.users.Create(ctx, p, services.UserInput{
				UserName: *v["username"], Email: *v["user-email"], Password: *v["password"], Role: models.Role(*v["role"]),
			})
			if err != nil {
				return err
			}
			fmt.Fprintf(a.out, "created user %s (%s)\n", u.UserName, u.ID)
			return nil
		},
	},
	"user-list": {
		run: func(ctx context.Context, a *App, b *adminBackend, p auth.Principal, _ map[string]*string) error {
			list, err := b.users.List(ctx, p)
			if err != nil {
				return err
			}
			tw := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "ID\tUSERNAME\tEMAIL\tROLE")
			for _, u := range list {
				fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", u.ID, u.UserName, u.Email, u.Role)
			}
			return tw.Flush()
		},
	},
	"user-update": {
		flags: []string{"id", "username", "user-email", "password", "role"},
		run: func(ctx context.Context, a *App, b *adminBackend, p auth.Principal, v map[string]*string) error {
			err := b.users.Update(ctx, p, *v["id"], services.UserInput{
				UserName: *v["username"], Email: *v["user-email"], Password: *v["password"], Role: models.Role(*v["role"]),
			})
			if err != nil {
				return err
			}
			fmt.Fprintf(a.out, "updated user %s\n", *v["id"])
			return nil
		},
	},
	"user-delete": {
		flags: []string{"id"},
		run: func(ctx context.Context, a *App, b *adminBackend, p auth.Principal, v map[string]*string) error {
			if err := b.users.Delete(ctx, p, *v["id"]); err != nil {
				return err
			}
			fmt.Fprintf(a.out, "deleted user %s\n", *v["id"])
			return nil
		},
	},
	"group-create": {
		flags: []string{"name", "description"},
		run: func(ctx context.Context, a *App, b *adminBackend, p auth.Principal, v map[string]*string) error {
			g, err := b.groups.CreateGroup(ctx, p, *v["name"], *v["description"])
			if err != nil {
				return err
			}
			fmt.Fprintf(a.out, "created group %s (%s)\n", g.Name, g.ID)
			return nil
		},
	},
	"group-list": {
		run: func(ctx context.Context, a *App, b *adminBackend, p auth.Principal, _ map[string]*string) error {
			list, err := b.groups.ListGroups(ctx, p)
			if err != nil {
				return err
			}
			tw := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "ID\tNAME\tPHRASE\tDESCRIPTION")
			for _, g := range list {
				phrase := "no"
				if g.HasPhrase() {
					phrase = "yes"
				}
				fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", g.ID, g.Name, phrase, g.Description)
			}
			return tw.Flush()
		},
	},
	"group-update": {
		flags: []string{"id", "name", "description"},
		run: func(ctx context.Context, a *App, b *adminBackend, p auth.Principal, v map[string]*string) error {
			if err := b.groups.UpdateGroup(ctx, p, *v["id"], *v["name"], *v["description"]); err != nil {
				return err
			}
			fmt.Fprintf(a.out, "updated group %s\n", *v["id"])
			return nil
		},
	},
	"group-delete": {
		flags: []string{"id"},
		run: func(ctx context.Context, a *App, b *adminBackend, p auth.Principal, v map[string]*string) error {
			if err := b.groups.DeleteGroup(ctx, p, *v["id"]); err != nil {
				return err
			}
			fmt.Fprintf(a.out, "deleted group %s\n", *v["id"])
			return nil
		},
	},
	"group-rotate": {
		flags: []string{"id"},
		run: func(ctx context.Context, a *App, b *adminBackend, p auth.Principal, v map[string]*string) error {
			phrase, err := b.groups.RotatePhrase(ctx, p, *v["id"])
			if err != nil {
				return err
			}
			fmt.Fprintln(a.out, phrase)
			return nil
		},
	},
	"group-clear": {
		flags: []string{"id"},
		run: func(ctx context.Context, a *App, b *adminBackend, p auth.Principal, v map[string]*string) error {
			if err := b.groups.ClearPhrase(ctx, p, *v["id"]); err != nil {
				return err
			}
			fmt.Fprintf(a.out, "cleared phrase of group %s\n", *v["id"])
			return nil
		},
	},
	"member-assign": {
		flags: []string{"user", "group"},
		run: func(ctx context.Context, a *App, b *adminBackend, p auth.Principal, v map[string]*string) error {
			m, err := b.members.Assign(ctx, p, *v["user"], *v["group"])
			if err != nil {
				return err
			}
			fmt.Fprintf(a.out, "user %s is now in group %s (membership %s)\n", m.UserID, m.GroupID, m.ID)
			return nil
		},
	},
	"member-remove": {
		flags: []string{"id"},
		run: func(ctx context.Context, a *App, b *adminBackend, p auth.Principal, v map[string]*string) error {
			if err := b.members.Remove(ctx, p, *v["id"]); err != nil {
				return err
			}
			fmt.Fprintf(a.out, "removed membership %s\n", *v["id"])
			return nil
		},
	},
	"member-get": {
		flags: []string{"user"},
		run: func(ctx context.Context, a *App, b *adminBackend, p auth.Principal, v map[string]*string) error {
			m, err := b.members.Get(ctx, *v["user"])
			if err != nil {
				return err
			}
			fmt.Fprintf(a.out, "%s\t%s\t%s\n", m.ID, m.UserID, m.GroupID)
			return nil
		},
	},
	"member-list": {
		flags: []string{"group"},
		run: func(ctx context.Context, a *App, b *adminBackend, p auth.Principal, v map[string]*string) error {
			list, err := b.members.ListByGroup(ctx, p, *v["group"])
			if err != nil {
				return err
			}
			tw := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "ID\tUSER\tGROUP")
			for _, m := range list {
				fmt.Fprintf(tw, "%s\t%s\t%s\n", m.ID, m.UserID, m.GroupID)
			}
			return tw.Flush()
		},
	},
}

// requiredAdminFlags lists what each command cannot do without. Optional
// flags (role, description, password on update) are left out.
var requiredAdminFlags = map[string][]string{
	"user-create":   {"username", "user-email", "password"},
	"user-update":   {"id", "username", "user-email", "role"},
	"user-delete":   {"id"},
	"group-create":  {"name"},
	"group-update":  {"id", "name"},
	"group-delete":  {"id"},
	"group-rotate":  {"id"},
	"group-clear":   {"id"},
	"member-assign": {"user", "group"},
	"member-remove": {"id"},
	"member-get":    {"user"},
	"member-list":   {"group"},
}

func (a *App) admin(ctx context.Context, args []string) error {
	if len(args) == 0 {
		fmt.Fprint(a.errOut, "admin: command required (see groupctl help)\n")
		return ErrUsage
	}
	name := args[0]
	cmd, ok := adminCommands[name]
	if !ok {
		fmt.Fprintf(a.errOut, "admin: unknown command %q\n", name)
		return ErrUsage
	}

	fs := a.newFlagSet(name)
	email := fs.String("email", "", "administrator email")
	values := make(map[string]*string, len(cmd.flags))
	for _, f := range cmd.flags {
		values[f] = fs.String(f, "", f)
	}
	if err := a.parse(fs, args[1:]); err != nil {
		return err
	}
	if err := a.require(fs, requiredAdminFlags[name]...); err != nil {
		return err
	}

	if *email == "" {
		v, err := GetSimpleText(a.reader, "Admin email", a.errOut)
		if err != nil {
			return err
		}
		*email = v
	}
	password, err := GetPassword(a.errOut, "Admin password")
	if err != nil {
		return err
	}

	b, err := a.openAdmin(ctx, a.config)
	if err != nil {
		return err
	}
	defer b.closer.Close()

	p, err := b.users.Authenticate(ctx, *email, password)
	if err != nil {
		return err
	}
	if err := auth.RequireAdmin(p); err != nil {
		return err
	}

	return cmd.run(ctx, a, b, p, values)
}
