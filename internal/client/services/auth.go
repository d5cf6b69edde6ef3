// Package services contains application services for the gallery CLI.
// This file defines the authentication service: login, registration, logout
// and the profile of the current user.
package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/gophgallery/internal/client/api"
	"github.com/dmitrijs2005/gophgallery/internal/client/models"
	"github.com/dmitrijs2005/gophgallery/internal/common"
)

// SessionStore is the part of the session store the services use.
type SessionStore interface {
	HasSession() bool
	SetCredential(ctx context.Context, token string) error
	FetchProfile(ctx context.Context) error
	Profile() *models.Profile
	DisplayName() string
	Logout(ctx context.Context) error
}

// AuthService defines authentication operations for the CLI.
//
// Contract:
//   - Login: exchange credentials for a token pair and start a session with
//     the access token. The profile is loaded in the background.
//   - Register: create a new account; it does not log in.
//   - Logout: end the session locally; the server is not contacted.
//   - Profile: refresh and return the profile of the current user.
//
// All methods must honor context cancellation/timeouts.
type AuthService interface {
	Login(ctx context.Context, username string, password []byte) error
	Register(ctx context.Context, username, email string, password []byte) (*models.Profile, error)
	Logout(ctx context.Context) error
	Profile(ctx context.Context) (*models.Profile, string, error)
}

var ErrEmptyToken = errors.New("server returned an empty access token")

type authService struct {
	client  api.Client
	session SessionStore
}

func NewAuthService(client api.Client, session SessionStore) AuthService {
	return &authService{client: client, session: session}
}

// Login wipes password once the request has been sent.
func (a *authService) Login(ctx context.Context, username string, password []byte) error {
	defer common.WipeByteArray(password)

	creds := models.Credentials{Username: username, Password: string(password)}
	if err := validateInput(creds); err != nil {
		return err
	}

	pair, err := a.client.Login(ctx, creds)
	if err != nil {
		return fmt.Errorf("login error: %w", err)
	}
	if pair.Access == "" {
		return ErrEmptyToken
	}

	if err := a.session.SetCredential(ctx, pair.Access); err != nil {
		return fmt.Errorf("session error: %w", err)
	}
	return nil
}

func (a *authService) Register(ctx context.Context, username, email string, password []byte) (*models.Profile, error) {
	defer common.WipeByteArray(password)

	reg := models.Registration{Username: username, Email: email, Password: string(password)}
	if err := validateInput(reg); err != nil {
		return nil, err
	}

	p, err := a.client.Register(ctx, reg)
	if err != nil {
		return nil, fmt.Errorf("register error: %w", err)
	}
	return p, nil
}

func (a *authService) Logout(ctx context.Context) error {
	return a.session.Logout(ctx)
}

// Profile refreshes the cached profile and returns it with the display name.
// When the refresh fails the cached profile is returned alongside the error.
func (a *authService) Profile(ctx context.Context) (*models.Profile, string, error) {
	if !a.session.HasSession() {
		return nil, "", common.ErrNotLoggedIn
	}
	err := a.session.FetchProfile(ctx)
	return a.session.Profile(), a.session.DisplayName(), err
}
