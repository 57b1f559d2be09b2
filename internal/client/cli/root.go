package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/estatehub/internal/client/config"
	"github.com/dmitrijs2005/estatehub/internal/client/models"
	"github.com/spf13/cobra"
)

// ErrCommandFailed is returned by a command whose failure has already been
// shown to the user.
var ErrCommandFailed = errors.New("command failed")

// Factory builds the App for a loaded configuration.
type Factory func(cfg *config.Config) *App

// DefaultFactory builds an App on the process standard streams.
func DefaultFactory(cfg *config.Config) *App {
	in, out, errOut := stdio()
	return NewApp(cfg, in, out, errOut)
}

// NewRootCommand builds the estatehub command tree. Configuration is loaded
// and the App is built once the flags are parsed.
func NewRootCommand(factory Factory, version string) *cobra.Command {
	var app *App

	run := func(fn func(*App) handler) func(*cobra.Command, []string) error {
		return func(cmd *cobra.Command, args []string) error {
			defer func() {
				if err := app.Close(); err != nil {
					app.logger.Warn(cmd.Context(), "closing local storage failed", "error", err)
				}
			}()
			if err := fn(app)(cmd.Context(), args); err != nil {
				app.report(err)
				return ErrCommandFailed
			}
			return nil
		}
	}

	root := &cobra.Command{
		Use:   "estatehub",
		Short: "Browse and manage EstateHub property listings",
		Long: `estatehub is a terminal client for the EstateHub real-estate API.

Run without a command to start the interactive shell.

Example usage:
  estatehub login                      # Sign in and open your landing view
  estatehub listings --city Austin     # Search approved listings
  estatehub dashboard add              # Submit a new listing (owners)
  estatehub admin pending              # Review pending listings (admins)`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(cmd.Flags())
			if err != nil {
				return fmt.Errorf("loading config: %w", err)
			}
			app = factory(cfg)
			return nil
		},
		RunE: run(func(a *App) handler { return a.Shell }),
	}
	config.RegisterFlags(root.PersistentFlags())

	root.AddCommand(
		&cobra.Command{
			Use:   "shell",
			Short: "Start the interactive shell",
			Args:  cobra.NoArgs,
			RunE:  run(func(a *App) handler { return a.Shell }),
		},
		&cobra.Command{
			Use:   "login",
			Short: "Sign in",
			Args:  cobra.NoArgs,
			RunE:  run(func(a *App) handler { return a.Login }),
		},
		&cobra.Command{
			Use:   "register",
			Short: "Create an account",
			Args:  cobra.NoArgs,
			RunE:  run(func(a *App) handler { return a.Register }),
		},
		&cobra.Command{
			Use:   "logout",
			Short: "Sign out and forget the stored token",
			Args:  cobra.NoArgs,
			RunE:  run(func(a *App) handler { return a.Logout }),
		},
		&cobra.Command{
			Use:   "whoami",
			Short: "Show the signed-in user",
			Args:  cobra.NoArgs,
			RunE:  run(func(a *App) handler { return a.Whoami }),
		},
		&cobra.Command{
			Use:     "featured",
			Aliases: []string{"home"},
			Short:   "Show featured listings",
			Args:    cobra.NoArgs,
			RunE:    run(func(a *App) handler { return a.Home }),
		},
		newListingsCommand(run),
		&cobra.Command{
			Use:   "show <id>",
			Short: "Show one listing",
			Args:  cobra.ExactArgs(1),
			RunE:  run(func(a *App) handler { return a.Show }),
		},
		&cobra.Command{
			Use:   "fav <id>",
			Short: "Add or remove a listing from favorites",
			Args:  cobra.ExactArgs(1),
			RunE:  run(func(a *App) handler { return a.Fav }),
		},
		&cobra.Command{
			Use:   "favorites",
			Short: "List favorite listings",
			Args:  cobra.NoArgs,
			RunE:  run(func(a *App) handler { return a.Favorites }),
		},
		newDashboardCommand(run),
		newAdminCommand(run),
	)
	return root
}

type runner func(fn func(*App) handler) func(*cobra.Command, []string) error

func newListingsCommand(run runner) *cobra.Command {
	var (
		city, typ, sort string
		maxPrice        int
	)
	cmd := &cobra.Command{
		Use:   "listings",
		Short: "Search approved listings",
		Args:  cobra.NoArgs,
	}
	cmd.RunE = run(func(a *App) handler {
		return func(ctx context.Context, _ []string) error {
			return a.Search(ctx, models.ListingFilter{
				City:     city,
				Type:     models.PropertyType(typ),
				MaxPrice: maxPrice,
				SortBy:   models.SortOrder(sort),
			})
		}
	})
	cmd.Flags().StringVar(&city, "city", "", "city to search in")
	cmd.Flags().StringVar(&typ, "type", "", "property type: house, apartment, condo, villa or land")
	cmd.Flags().IntVar(&maxPrice, "max-price", 0, "maximum price")
	cmd.Flags().StringVar(&sort, "sort", "", "order: -createdAt, price or -price")
	return cmd
}

func newDashboardCommand(run runner) *cobra.Command {
	list := run(func(a *App) handler { return a.DashboardList })
	cmd := &cobra.Command{
		Use:   "dashboard",
		Short: "Manage your own listings (owners and admins)",
		Args:  cobra.NoArgs,
		RunE:  list,
	}
	cmd.AddCommand(
		&cobra.Command{Use: "list", Short: "List your listings", Args: cobra.NoArgs, RunE: list},
		&cobra.Command{
			Use:   "add",
			Short: "Submit a new listing",
			Args:  cobra.NoArgs,
			RunE:  run(func(a *App) handler { return a.DashboardAdd }),
		},
		&cobra.Command{
			Use:   "edit <id>",
			Short: "Edit one of your listings",
			Args:  cobra.ExactArgs(1),
			RunE:  run(func(a *App) handler { return a.DashboardEdit }),
		},
		&cobra.Command{
			Use:   "delete <id>",
			Short: "Delete one of your listings",
			Args:  cobra.ExactArgs(1),
			RunE:  run(func(a *App) handler { return a.DashboardDelete }),
		},
	)
	return cmd
}

func newAdminCommand(run runner) *cobra.Command {
	stats := run(func(a *App) handler { return a.AdminStats })
	cmd := &cobra.Command{
		Use:   "admin",
		Short: "Moderate listings and users (admins)",
		Args:  cobra.NoArgs,
		RunE:  stats,
	}
	cmd.AddCommand(
		&cobra.Command{Use: "stats", Short: "Show platform statistics", Args: cobra.NoArgs, RunE: stats},
		&cobra.Command{
			Use:   "pending [page]",
			Short: "List listings waiting for review",
			Args:  cobra.MaximumNArgs(1),
			RunE:  run(func(a *App) handler { return a.AdminPending }),
		},
		&cobra.Command{
			Use:   "all [status] [page]",
			Short: "List listings in any state",
			Args:  cobra.MaximumNArgs(2),
			RunE:  run(func(a *App) handler { return a.AdminAll }),
		},
		&cobra.Command{
			Use:   "approve <id>",
			Short: "Approve a listing",
			Args:  cobra.ExactArgs(1),
			RunE:  run(func(a *App) handler { return a.AdminApprove }),
		},
		&cobra.Command{
			Use:   "reject <id> [reason...]",
			Short: "Reject a listing with a reason",
			Args:  cobra.MinimumNArgs(1),
			RunE:  run(func(a *App) handler { return a.AdminReject }),
		},
		&cobra.Command{
			Use:   "feature <id>",
			Short: "Toggle the featured flag of a listing",
			Args:  cobra.ExactArgs(1),
			RunE:  run(func(a *App) handler { return a.AdminFeature }),
		},
		&cobra.Command{
			Use:   "users [role] [page]",
			Short: "List user accounts",
			Args:  cobra.MaximumNArgs(2),
			RunE:  run(func(a *App) handler { return a.AdminUsers }),
		},
		&cobra.Command{
			Use:   "role <user-id> <role>",
			Short: "Change a user's role",
			Args:  cobra.ExactArgs(2),
			RunE:  run(func(a *App) handler { return a.AdminRole }),
		},
		&cobra.Command{
			Use:   "deactivate <user-id>",
			Short: "Deactivate a user account",
			Args:  cobra.ExactArgs(1),
			RunE:  run(func(a *App) handler { return a.AdminDeactivate }),
		},
		&cobra.Command{
			Use:   "logs [page]",
			Short: "Show the admin activity log",
			Args:  cobra.MaximumNArgs(1),
			RunE:  run(func(a *App) handler { return a.AdminLogs }),
		},
	)
	return cmd
}
