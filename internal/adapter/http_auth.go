package adapter

import (
	"context"
	"net/http"

	"github.com/MKhiriev/class-sync/models"
)

// Login implements [ServerAdapter]. It POSTs the credentials to /auth/login.
// The session is left untouched.
func (h *httpServerAdapter) Login(ctx context.Context, email, password string) (models.AuthResponse, error) {
	return doJSON[models.AuthResponse](ctx, h, "/auth/login", RequestOptions{
		Method: http.MethodPost,
		Body:   models.Credentials{Email: email, Password: password},
	})
}

// Register implements [ServerAdapter]. It POSTs the registration to
// /auth/register.
func (h *httpServerAdapter) Register(ctx context.Context, registration models.Registration) (models.AuthResponse, error) {
	return doJSON[models.AuthResponse](ctx, h, "/auth/register", RequestOptions{
		Method: http.MethodPost,
		Body:   registration,
	})
}

// Logout implements [ServerAdapter]. Only the server side session ends; the
// caller clears the local token.
func (h *httpServerAdapter) Logout(ctx context.Context) error {
	_, err := h.Request(ctx, "/auth/logout", RequestOptions{Method: http.MethodPost})
	return err
}
