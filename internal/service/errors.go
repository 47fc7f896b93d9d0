package service

import "errors"

var (
	// ErrInvalidCredentials is returned by Login when no admin record
	// matches the supplied email/password pair.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrMissingPassword is returned by user creation when the password is
	// empty. No remote call is attempted.
	ErrMissingPassword = errors.New("password is required")

	// ErrMissingID is returned by user update when the record carries no
	// id. No remote call is attempted.
	ErrMissingID = errors.New("user id is required")

	// ErrRemoteOperationFailed wraps any store or auth failure during a
	// fetch, create, update or delete on either entity.
	ErrRemoteOperationFailed = errors.New("remote operation failed")
)
