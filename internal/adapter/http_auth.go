package adapter

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/go-resty/resty/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/trippr-app/trippr-admin/internal/config"
	"github.com/trippr-app/trippr-admin/internal/logger"
)

type httpAuthAdapter struct {
	client *resty.Client
	logger *logger.Logger
}

// NewHTTPAuthAdapter builds an auth-service client for the configured base
// URL.
func NewHTTPAuthAdapter(cfg config.ConsoleAdapter, app config.ConsoleApp, log *logger.Logger) (AuthAdapter, error) {
	if cfg.AuthAddress == "" {
		return nil, fmt.Errorf("auth address is required")
	}

	cli := resty.New().
		SetBaseURL(strings.TrimRight(cfg.AuthAddress, "/")).
		SetTimeout(cfg.RequestTimeout)

	if app.APIKey != "" {
		cli.SetQueryParam("key", app.APIKey)
	}
	cli.OnBeforeRequest(func(_ *resty.Client, req *resty.Request) error {
		req.SetHeader("X-Request-Id", uuid.NewString())
		return nil
	})

	return &httpAuthAdapter{client: cli, logger: log}, nil
}

type signUpRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type signUpResponse struct {
	LocalID string `json:"localId"`
	Email   string `json:"email"`
	IDToken string `json:"idToken"`
}

func (h *httpAuthAdapter) CreateAccount(ctx context.Context, email, password string) (string, error) {
	var (
		ok   signUpResponse
		fail authErrorBody
	)

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(signUpRequest{Email: email, Password: password}).
		SetResult(&ok).
		SetError(&fail).
		Post("/v1/accounts/signup")
	if err != nil {
		return "", fmt.Errorf("sign up request: %w", err)
	}
	if err = mapAuthError(resp, fail); err != nil {
		return "", err
	}

	if ok.LocalID != "" {
		return ok.LocalID, nil
	}

	// Some deployments omit localId and only return the ID token; the
	// account id is its subject claim.
	id, err := parseAccountIDFromToken(ok.IDToken)
	if err != nil {
		return "", fmt.Errorf("sign up response carries no account id: %w", err)
	}
	return id, nil
}

func parseAccountIDFromToken(tokenString string) (string, error) {
	if tokenString == "" {
		return "", errors.New("empty id token")
	}

	token, _, err := jwt.NewParser().ParseUnverified(tokenString, jwt.MapClaims{})
	if err != nil {
		return "", err
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", errors.New("invalid token claims")
	}

	sub, err := claims.GetSubject()
	if err != nil {
		return "", err
	}
	if sub == "" {
		return "", errors.New("token has no subject")
	}

	return sub, nil
}
