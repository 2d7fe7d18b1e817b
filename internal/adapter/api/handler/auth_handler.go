package handler

import (
	"github.com/labstack/echo/v4"

	"cambiazo/internal/infrastructure/firebase"
	"cambiazo/pkg/errors"
	"cambiazo/pkg/response"
)

type AuthHandler struct {
	authClient *firebase.AuthClient
}

var authHandler *AuthHandler

func NewAuthHandler(authClient *firebase.AuthClient) *AuthHandler {
	return &AuthHandler{
		authClient: authClient,
	}
}

func SetupAuthHandler(authClient *firebase.AuthClient) {
	authHandler = NewAuthHandler(authClient)
}

func GetAuthHandler() *AuthHandler {
	return authHandler
}

// GuestSession mints an anonymous session so visitors without an account can
// browse, favorite and chat. The client exchanges the custom token for an id
// token through the regular sign-in flow.
func (h *AuthHandler) GuestSession(c echo.Context) error {
	session, err := h.authClient.NewGuestSession(c.Request().Context())
	if err != nil {
		return response.Error(c, errors.Internal("Failed to create guest session", err))
	}

	return response.Created(c, session)
}
