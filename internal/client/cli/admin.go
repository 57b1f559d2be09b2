package cli

import (
	"context"
	"strconv"
	"strings"

	"github.com/dmitrijs2005/estatehub/internal/client/authz"
	"github.com/dmitrijs2005/estatehub/internal/client/models"
	"github.com/dmitrijs2005/estatehub/internal/client/output"
)

func pageArg(args []string, i int) int {
	if len(args) > i {
		if n, err := strconv.Atoi(args[i]); err == nil {
			return n
		}
	}
	return 1
}

func (a *App) AdminStats(ctx context.Context, _ []string) error {
	return a.protected(ctx, authz.AdminRoles, func() error {
		a.printer.Loading("Loading statistics")
		s, err := a.admin.Stats(ctx)
		if err != nil {
			return err
		}
		a.printer.Header("Admin Dashboard")
		t := output.NewTable(a.printer.Out(), "Metric", "Count")
		t.AddRow("Total users", strconv.Itoa(s.TotalUsers))
		t.AddRow("Admins", strconv.Itoa(s.AdminCount))
		t.AddRow("Owners", strconv.Itoa(s.OwnerCount))
		t.AddRow("Customers", strconv.Itoa(s.CustomerCount))
		t.AddRow("Total properties", strconv.Itoa(s.TotalProperties))
		t.AddRow("Approved", strconv.Itoa(s.ApprovedProperties))
		t.AddRow("Pending", strconv.Itoa(s.PendingProperties))
		t.AddRow("Rejected", strconv.Itoa(s.RejectedProperties))
		return t.Render()
	})
}

// AdminPending lists listings waiting for review. args: [page].
func (a *App) AdminPending(ctx context.Context, args []string) error {
	return a.protected(ctx, authz.AdminRoles, func() error {
		a.printer.Loading("Loading pending properties")
		listings, err := a.admin.Pending(ctx, pageArg(args, 0))
		if err != nil {
			return err
		}
		a.printer.Header("Pending approval")
		return a.renderReviewTable(listings, "No properties are waiting for review")
	})
}

// AdminAll lists listings in every state. args: [status] [page].
func (a *App) AdminAll(ctx context.Context, args []string) error {
	return a.protected(ctx, authz.AdminRoles, func() error {
		status := ""
		if len(args) > 0 {
			status = args[0]
		}
		a.printer.Loading("Loading properties")
		listings, err := a.admin.All(ctx, status, pageArg(args, 1))
		if err != nil {
			return err
		}
		a.printer.Header("All properties")
		return a.renderReviewTable(listings, "No properties found")
	})
}

func (a *App) renderReviewTable(listings []models.Listing, empty string) error {
	if len(listings) == 0 {
		a.printer.Info("%s", empty)
		return nil
	}
	t := output.NewTable(a.printer.Out(), "ID", "Title", "Owner", "Price", "City", "Status", "Featured")
	for _, l := range listings {
		featured := ""
		if l.Featured {
			featured = "★"
		}
		t.AddRow(l.ID, l.Title, l.OwnerID, output.FormatPrice(l.Price), l.Location.City(),
			a.printer.StatusBadge(string(l.Status)), featured)
	}
	return t.Render()
}

func (a *App) AdminApprove(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return usage("approve <id>")
	}
	return a.protected(ctx, authz.AdminRoles, func() error {
		if err := a.admin.Approve(ctx, args[0]); err != nil {
			return err
		}
		a.printer.Success("Property approved successfully")
		return nil
	})
}

// AdminReject rejects a listing. The reason is taken from the remaining
// arguments or prompted for.
func (a *App) AdminReject(ctx context.Context, args []string) error {
	if len(args) < 1 {
		return usage("reject <id> [reason]")
	}
	return a.protected(ctx, authz.AdminRoles, func() error {
		reason := strings.Join(args[1:], " ")
		if reason == "" {
			var err error
			reason, err = getSimpleText(a.reader, "Rejection reason", a.printer.Out())
			if err != nil {
				return err
			}
		}
		if err := a.admin.Reject(ctx, args[0], reason); err != nil {
			return err
		}
		a.printer.Success("Property rejected")
		return nil
	})
}

func (a *App) AdminFeature(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return usage("feature <id>")
	}
	return a.protected(ctx, authz.AdminRoles, func() error {
		if err := a.admin.ToggleFeatured(ctx, args[0]); err != nil {
			return err
		}
		a.printer.Success("Featured status updated")
		return nil
	})
}

// AdminUsers lists accounts. args: [role] [page].
func (a *App) AdminUsers(ctx context.Context, args []string) error {
	return a.protected(ctx, authz.AdminRoles, func() error {
		role := ""
		if len(args) > 0 {
			role = args[0]
		}
		a.printer.Loading("Loading users")
		users, err := a.admin.Users(ctx, role, pageArg(args, 1))
		if err != nil {
			return err
		}
		a.printer.Header("Users")
		if len(users) == 0 {
			a.printer.Info("No users found")
			return nil
		}
		t := output.NewTable(a.printer.Out(), "ID", "Name", "Email", "Role", "Active")
		for _, u := range users {
			active := "yes"
			if !u.IsActive {
				active = "no"
			}
			t.AddRow(u.ID, u.Name, u.Email, string(u.Role), active)
		}
		return t.Render()
	})
}

func (a *App) AdminRole(ctx context.Context, args []string) error {
	if len(args) != 2 {
		return usage("role <user-id> <admin|owner|customer>")
	}
	return a.protected(ctx, authz.AdminRoles, func() error {
		if err := a.admin.ChangeRole(ctx, args[0], args[1]); err != nil {
			return err
		}
		a.printer.Success("User role updated")
		return nil
	})
}

func (a *App) AdminDeactivate(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return usage("deactivate <user-id>")
	}
	return a.protected(ctx, authz.AdminRoles, func() error {
		ok, err := confirm(a.reader, "Deactivate user "+args[0]+"?", a.printer.Out())
		if err != nil {
			return err
		}
		if !ok {
			a.printer.Info("Cancelled")
			return nil
		}
		if err := a.admin.Deactivate(ctx, args[0]); err != nil {
			return err
		}
		a.printer.Success("User deactivated")
		return nil
	})
}

// AdminLogs shows recent administrative actions. args: [page].
func (a *App) AdminLogs(ctx context.Context, args []string) error {
	return a.protected(ctx, authz.AdminRoles, func() error {
		a.printer.Loading("Loading activity logs")
		logs, err := a.admin.Logs(ctx, pageArg(args, 0))
		if err != nil {
			return err
		}
		a.printer.Header("Activity log")
		if len(logs) == 0 {
			a.printer.Info("No activity recorded")
			return nil
		}
		t := output.NewTable(a.printer.Out(), "When", "Admin", "Action", "Target")
		for _, l := range logs {
			t.AddRow(l.CreatedAt.Format("2006-01-02 15:04"), l.AdminID, l.ActionType, l.TargetType+" "+l.TargetID)
		}
		return t.Render()
	})
}
