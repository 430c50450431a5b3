package gateway

import (
	"context"
	"errors"
	"net/http"

	"go-storefront/session"
)

// AuthClient exchanges credentials for an authenticated user with token
type AuthClient struct {
	*Client
}

func NewAuthClient(c *Client) *AuthClient {
	return &AuthClient{Client: c}
}

// Login authenticates with email and password. A 401 comes back as
// KindAuthInvalid so the form can show it inline rather than redirect.
func (c *AuthClient) Login(ctx context.Context, email, password string) (session.User, error) {
	var u session.User
	body := map[string]string{"email": email, "password": password}
	err := c.do(ctx, http.MethodPost, "/api/users/login", "", body, &u)
	if err != nil {
		return session.User{}, reclassify(err, KindAuthInvalid)
	}
	return u, nil
}

// Register creates an account. A 401 means the email is already taken.
func (c *AuthClient) Register(ctx context.Context, name, email, password string) (session.User, error) {
	var u session.User
	body := map[string]string{"name": name, "email": email, "password": password}
	err := c.do(ctx, http.MethodPost, "/api/users/register", "", body, &u)
	if err != nil {
		return session.User{}, reclassify(err, KindDuplicateEmail)
	}
	return u, nil
}

// UpdateProfile changes the account's name, email and password and returns
// the user with a freshly signed token.
func (c *AuthClient) UpdateProfile(ctx context.Context, name, email, password, token string) (session.User, error) {
	var u session.User
	body := map[string]string{"name": name, "email": email, "password": password}
	err := c.do(ctx, http.MethodPut, "/api/users/profile", token, body, &u)
	if err != nil {
		return session.User{}, err
	}
	return u, nil
}

// reclassify rewrites a 401 from a credential endpoint, where it means bad
// input rather than a missing token.
func reclassify(err error, kind Kind) error {
	var ge *Error
	if errors.As(err, &ge) && ge.Kind == KindAuthRequired {
		return &Error{Kind: kind, Message: ge.Message}
	}
	return err
}
