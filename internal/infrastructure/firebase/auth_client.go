package firebase

import (
	"context"

	"firebase.google.com/go/v4/auth"
	"github.com/google/uuid"
)

type AuthClient struct {
	client *auth.Client
}

func NewAuthClient(client *auth.Client) *AuthClient {
	return &AuthClient{
		client: client,
	}
}

func (a *AuthClient) VerifyToken(ctx context.Context, token string) (string, error) {
	result, err := a.client.VerifyIDToken(ctx, token)
	if err != nil {
		return "", err
	}

	return result.UID, nil
}

// VerifyTokenWithClaims also extracts the email claim when present. Guest
// sessions carry no email and return an empty string.
func (a *AuthClient) VerifyTokenWithClaims(ctx context.Context, token string) (string, string, error) {
	result, err := a.client.VerifyIDToken(ctx, token)
	if err != nil {
		return "", "", err
	}

	email, _ := result.Claims["email"].(string)
	return result.UID, email, nil
}

// GuestSession mints an anonymous session for a caller that presented no
// credential. The uid is stable for as long as the client keeps signing in
// with the returned custom token, and joins all per-account subcollections
// the same way a registered account does.
type GuestSession struct {
	UID   string `json:"uid"`
	Token string `json:"token"`
}

func (a *AuthClient) NewGuestSession(ctx context.Context) (*GuestSession, error) {
	uid := "guest-" + uuid.New().String()

	token, err := a.client.CustomToken(ctx, uid)
	if err != nil {
		return nil, err
	}

	return &GuestSession{
		UID:   uid,
		Token: token,
	}, nil
}
