package cli

import (
	"context"
	"errors"
	"strings"

	"github.com/dmitrijs2005/estatehub/internal/client/client"
	"github.com/dmitrijs2005/estatehub/internal/client/models"
	"github.com/dmitrijs2005/estatehub/internal/client/services"
	"github.com/dmitrijs2005/estatehub/internal/client/session"
	"github.com/dmitrijs2005/estatehub/internal/common"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// login prompts for credentials and stores the session on success. It does
// not navigate anywhere.
func (a *App) login(ctx context.Context) (*services.LoginResult, error) {
	out := a.printer.Out()

	email, err := getSimpleText(a.reader, "Email", out)
	if err != nil {
		return nil, err
	}
	password, err := getPassword(out, "Password")
	if err != nil {
		return nil, err
	}
	defer common.WipeByteArray(password)

	a.printer.Loading("Signing in")
	res, err := a.auth.Login(ctx, client.Credentials{Email: email, Password: string(password)})
	if err != nil {
		return nil, err
	}

	a.printer.Success("Welcome back, %s!", res.Session.Name)
	return res, nil
}

// Login signs in and opens the landing view of the user's role: the admin
// console for admins, the dashboard for owners and the home view otherwise.
func (a *App) Login(ctx context.Context, _ []string) error {
	res, err := a.login(ctx)
	if err != nil {
		return err
	}

	switch res.Landing {
	case services.LandingAdmin:
		return a.AdminStats(ctx, nil)
	case services.LandingDashboard:
		return a.DashboardList(ctx, nil)
	default:
		return a.Home(ctx, nil)
	}
}

// Register prompts for the account details and creates the account. The
// user logs in separately afterwards.
func (a *App) Register(ctx context.Context, _ []string) error {
	out := a.printer.Out()

	name, err := getSimpleText(a.reader, "Full name", out)
	if err != nil {
		return err
	}
	email, err := getSimpleText(a.reader, "Email", out)
	if err != nil {
		return err
	}
	password, err := getPassword(out, "Password")
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)
	confirmPassword, err := getPassword(out, "Confirm password")
	if err != nil {
		return err
	}
	defer common.WipeByteArray(confirmPassword)
	role, err := getSimpleText(a.reader, "Account type: customer or owner [customer]", out)
	if err != nil {
		return err
	}

	a.printer.Loading("Creating account")
	err = a.auth.Register(ctx, client.RegisterRequest{
		Name:            name,
		Email:           email,
		Password:        string(password),
		ConfirmPassword: string(confirmPassword),
		Role:            models.Role(strings.ToLower(role)),
	})
	if err != nil {
		return err
	}

	a.printer.Success("Account created successfully! Please log in.")
	return nil
}

func (a *App) Logout(ctx context.Context, _ []string) error {
	if err := a.auth.Logout(ctx); err != nil {
		return err
	}
	a.printer.Success("Logged out")
	return nil
}

// Whoami shows the stored session, what the token says about itself and
// whether the server still accepts it.
func (a *App) Whoami(ctx context.Context, _ []string) error {
	sess, ok := a.auth.Session(ctx)
	if !ok {
		a.printer.Info("Not signed in")
		return nil
	}

	a.printer.Print("%s <%s>", a.printer.Bold(sess.Name), sess.Email)
	a.printer.Print("Role: %s", sess.Role)

	info, err := session.DescribeToken(a.tokens.Token(ctx))
	switch {
	case errors.Is(err, session.ErrOpaqueToken):
		a.printer.Print("Token: opaque")
	case err != nil:
		return err
	case info.Expired(a.now()):
		a.printer.Warning("Token expired at %s; please log in again", info.ExpiresAt.Format("2006-01-02 15:04"))
	case !info.ExpiresAt.IsZero():
		a.printer.Print("Token expires: %s", info.ExpiresAt.Format("2006-01-02 15:04"))
	}

	a.printer.Loading("Checking session with the server")
	if _, err := a.auth.CurrentUser(ctx); err != nil {
		if errors.Is(err, client.ErrUnauthorized) {
			a.printer.Warning("The server no longer accepts this session; please log in again")
			return nil
		}
		return err
	}
	a.printer.Success("Session is valid")
	return nil
}
