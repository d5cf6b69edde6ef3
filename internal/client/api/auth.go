package api

import (
	"context"

	"github.com/dmitrijs2005/gophgallery/internal/client/httpclient"
	"github.com/dmitrijs2005/gophgallery/internal/client/models"
)

const (
	pathLogin    = "/auth/login/"
	pathRegister = "/auth/register/"
	pathMe       = "/auth/me/"
)

func (c *HTTPClient) Login(ctx context.Context, creds models.Credentials) (*models.TokenPair, error) {
	var out models.TokenPair
	if err := c.http.Post(ctx, pathLogin, httpclient.JSON(creds), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *HTTPClient) Register(ctx context.Context, reg models.Registration) (*models.Profile, error) {
	var out models.Profile
	if err := c.http.Post(ctx, pathRegister, httpclient.JSON(reg), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Me fetches the profile of the credential holder. Non-401 failures are not
// shown to the user; the session store only logs them.
func (c *HTTPClient) Me(ctx context.Context) (*models.Profile, error) {
	var out models.Profile
	if err := c.http.Get(ctx, pathMe, &out, httpclient.Quiet()); err != nil {
		return nil, err
	}
	return &out, nil
}
