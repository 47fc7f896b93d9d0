package adapter

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"
)

var (
	// ErrNotFound is returned when a document id does not exist in the
	// requested collection.
	ErrNotFound = errors.New("document not found")

	// ErrEmailExists is returned by the auth service when an account with
	// the requested email already exists.
	ErrEmailExists = errors.New("email already exists")

	// ErrWeakPassword is returned by the auth service when the requested
	// password violates its policy.
	ErrWeakPassword = errors.New("password is too weak")
)

// mapStoreError converts a document-store HTTP response into a typed error.
// 2xx responses map to nil.
func mapStoreError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	if resp.StatusCode() == http.StatusNotFound {
		return ErrNotFound
	}

	body := strings.TrimSpace(string(resp.Body()))
	if body == "" {
		body = http.StatusText(resp.StatusCode())
	}
	return fmt.Errorf("http %d: %s", resp.StatusCode(), body)
}

// authErrorBody is the error envelope of the auth service.
type authErrorBody struct {
	Error struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

// mapAuthError converts an auth-service response into a typed error,
// preserving the provider's detail message where one exists.
func mapAuthError(resp *resty.Response, decoded authErrorBody) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	message := strings.TrimSpace(decoded.Error.Message)
	switch {
	case strings.HasPrefix(message, "EMAIL_EXISTS"):
		return ErrEmailExists
	case strings.HasPrefix(message, "WEAK_PASSWORD"):
		detail := strings.TrimSpace(strings.TrimPrefix(message, "WEAK_PASSWORD"))
		detail = strings.TrimPrefix(detail, ":")
		if detail = strings.TrimSpace(detail); detail != "" {
			return fmt.Errorf("%w: %s", ErrWeakPassword, detail)
		}
		return ErrWeakPassword
	case message != "":
		return fmt.Errorf("http %d: %s", resp.StatusCode(), message)
	default:
		return fmt.Errorf("http %d: %s", resp.StatusCode(), http.StatusText(resp.StatusCode()))
	}
}
