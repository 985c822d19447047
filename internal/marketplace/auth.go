package marketplace

import (
	"context"
	"net/http"
)

// TokenPair is the response of POST /api/login/.
type TokenPair struct {
	Access  string `json:"access"`
	Refresh string `json:"refresh"`
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type registerRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Login exchanges credentials for a token pair.
func (c *Client) Login(ctx context.Context, username, password string) (*TokenPair, error) {
	var pair TokenPair
	err := c.do(ctx, http.MethodPost, "/api/login/", loginRequest{Username: username, Password: password}, &pair)
	if err != nil {
		return nil, err
	}
	return &pair, nil
}

// Register creates a new account. Profile selection happens afterwards.
func (c *Client) Register(ctx context.Context, username, email, password string) error {
	return c.do(ctx, http.MethodPost, "/api/register/", registerRequest{
		Username: username,
		Email:    email,
		Password: password,
	}, nil)
}
