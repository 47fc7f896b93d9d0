package service

import (
	"context"
	"encoding/json"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/trippr-app/trippr-admin/internal/adapter"
	"github.com/trippr-app/trippr-admin/models"
)

// plaintextVerifier looks up exactly one admin record whose email and
// password fields both equal the supplied values. This mirrors how the admin
// collection is provisioned today; deployments that store hashes use
// [NewBcryptVerifier] instead.
type plaintextVerifier struct {
	store adapter.StoreAdapter
}

// NewPlaintextVerifier builds the default double-equality credential lookup.
func NewPlaintextVerifier(store adapter.StoreAdapter) CredentialVerifier {
	return &plaintextVerifier{store: store}
}

func (v *plaintextVerifier) Verify(ctx context.Context, email, password string) (models.AdminSession, error) {
	docs, err := v.store.Query(ctx, adapter.CollectionAdmin, []models.Filter{
		{Field: "email", Op: models.OpEqual, Value: email},
		{Field: "password", Op: models.OpEqual, Value: password},
	})
	if err != nil {
		return models.AdminSession{}, fmt.Errorf("admin credential lookup: %w", err)
	}
	if len(docs) == 0 {
		return models.AdminSession{}, ErrInvalidCredentials
	}

	var admin models.Admin
	if err = json.Unmarshal(docs[0], &admin); err != nil {
		return models.AdminSession{}, fmt.Errorf("decode admin record: %w", err)
	}

	return admin.Session(), nil
}

// bcryptVerifier looks up the admin record by email only and compares the
// stored bcrypt hash against the supplied password.
type bcryptVerifier struct {
	store adapter.StoreAdapter
}

// NewBcryptVerifier builds a verifier for admin collections whose password
// field holds a bcrypt hash instead of plaintext.
func NewBcryptVerifier(store adapter.StoreAdapter) CredentialVerifier {
	return &bcryptVerifier{store: store}
}

func (v *bcryptVerifier) Verify(ctx context.Context, email, password string) (models.AdminSession, error) {
	docs, err := v.store.Query(ctx, adapter.CollectionAdmin, []models.Filter{
		{Field: "email", Op: models.OpEqual, Value: email},
	})
	if err != nil {
		return models.AdminSession{}, fmt.Errorf("admin credential lookup: %w", err)
	}
	if len(docs) == 0 {
		return models.AdminSession{}, ErrInvalidCredentials
	}

	var admin models.Admin
	if err = json.Unmarshal(docs[0], &admin); err != nil {
		return models.AdminSession{}, fmt.Errorf("decode admin record: %w", err)
	}

	if err = bcrypt.CompareHashAndPassword([]byte(admin.Password), []byte(password)); err != nil {
		return models.AdminSession{}, ErrInvalidCredentials
	}

	return admin.Session(), nil
}
