// Package services contains the application services behind the CLI. They
// validate input, call the API through narrow interfaces and keep the local
// session store in step with the results.
package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/estatehub/internal/client/client"
	"github.com/dmitrijs2005/estatehub/internal/client/models"
)

// Landing is the view shown right after a successful login.
type Landing string

const (
	LandingHome      Landing = "home"
	LandingDashboard Landing = "dashboard"
	LandingAdmin     Landing = "admin"
)

// LandingFor maps a role to its landing view.
func LandingFor(r models.Role) Landing {
	switch r {
	case models.RoleAdmin:
		return LandingAdmin
	case models.RoleOwner:
		return LandingDashboard
	default:
		return LandingHome
	}
}

// AuthAPI is the part of the API used for authentication.
type AuthAPI interface {
	Register(ctx context.Context, req client.RegisterRequest) (*client.AuthResult, error)
	Login(ctx context.Context, creds client.Credentials) (*client.AuthResult, error)
	Me(ctx context.Context) (*models.User, error)
}

// SessionStore is where a successful login is persisted.
type SessionStore interface {
	GetSession(ctx context.Context) (*models.Session, bool)
	SaveLogin(ctx context.Context, s models.Session, token string) error
	Logout(ctx context.Context) error
}

// LoginResult describes the freshly stored session.
type LoginResult struct {
	Session models.Session
	Landing Landing
}

// AuthService defines authentication operations for the CLI.
//
// Login and Register validate their input and return a *ValidationError
// without contacting the server when it is rejected.
type AuthService interface {
	Login(ctx context.Context, creds client.Credentials) (*LoginResult, error)
	Register(ctx context.Context, req client.RegisterRequest) error
	Logout(ctx context.Context) error
	Session(ctx context.Context) (*models.Session, bool)
	CurrentUser(ctx context.Context) (*models.User, error)
}

type authService struct {
	api   AuthAPI
	store SessionStore
}

func NewAuthService(api AuthAPI, store SessionStore) AuthService {
	return &authService{api: api, store: store}
}

func (a *authService) Login(ctx context.Context, creds client.Credentials) (*LoginResult, error) {
	if err := validateCredentials(creds); err != nil {
		return nil, err
	}

	res, err := a.api.Login(ctx, creds)
	if err != nil {
		return nil, err
	}
	if !res.Success || res.Token == "" || res.User == nil {
		msg := res.Message
		if msg == "" {
			msg = MsgLoginFailed
		}
		return nil, errors.New(msg)
	}

	sess := models.SessionFromUser(*res.User)
	if err := a.store.SaveLogin(ctx, sess, res.Token); err != nil {
		return nil, fmt.Errorf("save login: %w", err)
	}
	return &LoginResult{Session: sess, Landing: LandingFor(sess.Role)}, nil
}

// Register creates an account. It does not sign in; the caller logs in
// afterwards. An empty role registers a customer.
func (a *authService) Register(ctx context.Context, req client.RegisterRequest) error {
	if req.Role == "" {
		req.Role = models.RoleCustomer
	}
	if err := validateRegistration(req); err != nil {
		return err
	}

	res, err := a.api.Register(ctx, req)
	if err != nil {
		return err
	}
	if !res.Success {
		msg := res.Message
		if msg == "" {
			msg = MsgRegistrationFailed
		}
		return errors.New(msg)
	}
	return nil
}

func (a *authService) Logout(ctx context.Context) error {
	return a.store.Logout(ctx)
}

func (a *authService) Session(ctx context.Context) (*models.Session, bool) {
	return a.store.GetSession(ctx)
}

// CurrentUser asks the server who the stored token belongs to.
func (a *authService) CurrentUser(ctx context.Context) (*models.User, error) {
	if _, ok := a.store.GetSession(ctx); !ok {
		return nil, ErrNotSignedIn
	}
	return a.api.Me(ctx)
}
