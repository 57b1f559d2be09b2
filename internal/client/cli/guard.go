package cli

import (
	"context"

	"github.com/dmitrijs2005/estatehub/internal/client/authz"
	"github.com/dmitrijs2005/estatehub/internal/client/models"
)

// protected runs fn only when the gate admits the current session for
// roles. Anonymous visitors are sent through the login prompt first;
// visitors without a permitted role are shown the home view instead.
func (a *App) protected(ctx context.Context, roles []models.Role, fn func() error) error {
	d := a.gate.Resolve(ctx, roles...)

	if d.State == authz.StateAnonymous {
		a.printer.Warning("Please log in to continue")
		if _, err := a.login(ctx); err != nil {
			return err
		}
		d = a.gate.Resolve(ctx, roles...)
	}

	switch d.Redirect {
	case authz.ViewNone:
		return fn()
	case authz.ViewHome:
		a.printer.Warning("You do not have access to this page")
		return a.Home(ctx, nil)
	case authz.ViewLogin:
		a.printer.Warning("Please log in to continue")
		return nil
	default:
		a.printer.Loading("Loading")
		return nil
	}
}
