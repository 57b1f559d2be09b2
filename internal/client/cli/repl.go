package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
)

// execIface defines the command surface the REPL dispatches to.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn(ctx context.Context) bool
	report(err error)

	Register(ctx context.Context, args []string) error
	Login(ctx context.Context, args []string) error
	Logout(ctx context.Context, args []string) error
	Whoami(ctx context.Context, args []string) error

	Home(ctx context.Context, args []string) error
	Listings(ctx context.Context, args []string) error
	Show(ctx context.Context, args []string) error
	Fav(ctx context.Context, args []string) error
	Favorites(ctx context.Context, args []string) error

	DashboardList(ctx context.Context, args []string) error
	DashboardAdd(ctx context.Context, args []string) error
	DashboardEdit(ctx context.Context, args []string) error
	DashboardDelete(ctx context.Context, args []string) error

	AdminStats(ctx context.Context, args []string) error
	AdminPending(ctx context.Context, args []string) error
	AdminAll(ctx context.Context, args []string) error
	AdminApprove(ctx context.Context, args []string) error
	AdminReject(ctx context.Context, args []string) error
	AdminFeature(ctx context.Context, args []string) error
	AdminUsers(ctx context.Context, args []string) error
	AdminRole(ctx context.Context, args []string) error
	AdminDeactivate(ctx context.Context, args []string) error
	AdminLogs(ctx context.Context, args []string) error
}

type handler func(context.Context, []string) error

func dashboardCommands(a execIface) map[string]handler {
	return map[string]handler{
		"list":   a.DashboardList,
		"add":    a.DashboardAdd,
		"edit":   a.DashboardEdit,
		"delete": a.DashboardDelete,
	}
}

func adminCommands(a execIface) map[string]handler {
	return map[string]handler{
		"stats":      a.AdminStats,
		"pending":    a.AdminPending,
		"all":        a.AdminAll,
		"approve":    a.AdminApprove,
		"reject":     a.AdminReject,
		"feature":    a.AdminFeature,
		"users":      a.AdminUsers,
		"role":       a.AdminRole,
		"deactivate": a.AdminDeactivate,
		"logs":       a.AdminLogs,
	}
}

const (
	helpAnonymous = "Available commands: home, listings, show, register, login, exit"
	helpSignedIn  = "Available commands: home, (l)istings, show, fav, favorites, whoami, dashboard, admin, logout, exit"
	helpDashboard = "dashboard commands: list, add, edit <id>, delete <id>"
	helpAdmin     = "admin commands: stats, pending, all [status], approve <id>, reject <id> [reason], feature <id>, users [role], role <id> <role>, deactivate <id>, logs"
)

// runREPL reads commands line by line and dispatches them to a.
//
// The first token selects the command; the rest are passed as arguments.
// dashboard and admin take a subcommand and default to list and stats.
// Errors returned by handlers are reported and the loop carries on. The
// loop exits on EOF, on "exit"/"quit", or when ctx is done.
//
// Commands are read from the same reader the handlers prompt on, so piped
// input for a prompt is not consumed as a command.
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader, w io.Writer) {
	for {
		if ctx.Err() != nil {
			return
		}
		fmt.Fprintf(w, "estate> %s > ", statusFn())
		line, err := reader.ReadString('\n')
		if line == "" && err != nil {
			fmt.Fprintln(w)
			return
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]

		var h handler
		switch cmd {
		case "help":
			if a.isLoggedIn(ctx) {
				fmt.Fprintln(w, helpSignedIn)
			} else {
				fmt.Fprintln(w, helpAnonymous)
			}
			continue

		case "register":
			h = a.Register
		case "login":
			h = a.Login
		case "logout":
			h = a.Logout
		case "whoami":
			h = a.Whoami
		case "home", "featured":
			h = a.Home
		case "l", "listings", "search":
			h = a.Listings
		case "show":
			h = a.Show
		case "fav":
			h = a.Fav
		case "favorites":
			h = a.Favorites

		case "dashboard":
			h, args = subcommand(w, dashboardCommands(a), "list", helpDashboard, args)
		case "admin":
			h, args = subcommand(w, adminCommands(a), "stats", helpAdmin, args)

		case "exit", "quit":
			fmt.Fprintln(w, "Bye!")
			return

		default:
			fmt.Fprintln(w, "Unknown command:", cmd)
			continue
		}

		if h == nil {
			continue
		}
		a.report(h(ctx, args))
	}
}

// subcommand picks the handler named by args[0], or def when args is empty.
// An unknown name prints help and yields a nil handler.
func subcommand(w io.Writer, cmds map[string]handler, def, help string, args []string) (handler, []string) {
	name := def
	if len(args) > 0 {
		name, args = args[0], args[1:]
	}
	h, ok := cmds[name]
	if !ok {
		fmt.Fprintln(w, help)
		return nil, nil
	}
	return h, args
}

// Shell runs the interactive loop on the app's input until exit.
func (a *App) Shell(ctx context.Context, _ []string) error {
	a.printer.Info("Welcome to EstateHub (type 'help' for commands)")
	if !a.store.Available(ctx) {
		a.printer.Warning("Local storage is unavailable; sign-ins and favorites will not be kept")
	}
	runREPL(ctx, a, func() string { return a.getStatus(ctx) }, a.reader, a.printer.Out())
	return nil
}
