package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/trippr-app/trippr-admin/internal/adapter"
	"github.com/trippr-app/trippr-admin/internal/app"
	"github.com/trippr-app/trippr-admin/internal/logger"
	"github.com/trippr-app/trippr-admin/models"
)

type userService struct {
	store  adapter.StoreAdapter
	auth   adapter.AuthAdapter
	status *Status
	logger *logger.Logger

	mu     sync.RWMutex
	mirror []models.User
}

// NewUserService builds the users mirror over the document store and the
// auth service.
func NewUserService(store adapter.StoreAdapter, auth adapter.AuthAdapter, status *Status, log *logger.Logger) UserService {
	return &userService{store: store, auth: auth, status: status, logger: log}
}

func (u *userService) All() []models.User {
	u.mu.RLock()
	defer u.mu.RUnlock()
	out := make([]models.User, len(u.mirror))
	copy(out, u.mirror)
	return out
}

func (u *userService) FetchAll(ctx context.Context) error {
	u.status.setLoading(true)
	defer u.status.setLoading(false)

	docs, err := u.store.List(ctx, adapter.CollectionUsers)
	if err != nil {
		u.status.fail(app.MsgFailedToFetchUsers)
		u.logger.Error().Err(err).Msg("fetch users")
		return fmt.Errorf("%w: fetch users: %v", ErrRemoteOperationFailed, err)
	}

	users := make([]models.User, 0, len(docs))
	for _, doc := range docs {
		var user models.User
		if err = json.Unmarshal(doc, &user); err != nil {
			u.status.fail(app.MsgFailedToFetchUsers)
			u.logger.Error().Err(err).Msg("decode user document")
			return fmt.Errorf("%w: decode user document: %v", ErrRemoteOperationFailed, err)
		}
		normalizeCreatedAt(&user)
		users = append(users, user)
	}

	u.mu.Lock()
	u.mirror = users
	u.mu.Unlock()

	return nil
}

func (u *userService) Create(ctx context.Context, user models.User, password string) (models.User, error) {
	if password == "" {
		u.status.fail(app.MsgPasswordRequired)
		return models.User{}, ErrMissingPassword
	}

	accountID, err := u.auth.CreateAccount(ctx, user.Email, password)
	if err != nil {
		// Provider policy rejections carry a message worth showing;
		// anything else gets the generic summary.
		if errors.Is(err, adapter.ErrEmailExists) || errors.Is(err, adapter.ErrWeakPassword) {
			u.status.fail(err.Error())
		} else {
			u.status.fail(app.MsgFailedToAddUser)
		}
		u.logger.Error().Err(err).Str("email", user.Email).Msg("create auth account")
		return models.User{}, fmt.Errorf("%w: create account: %v", ErrRemoteOperationFailed, err)
	}

	doc, err := u.store.Get(ctx, adapter.CollectionUsers, accountID)
	switch {
	case err == nil:
		// A store record already exists under this account id; adopt it
		// unchanged rather than writing a duplicate.
		var existing models.User
		if err = json.Unmarshal(doc, &existing); err != nil {
			u.status.fail(app.MsgFailedToAddUser)
			u.logger.Error().Err(err).Str("id", accountID).Msg("decode existing user")
			return models.User{}, fmt.Errorf("%w: decode existing user: %v", ErrRemoteOperationFailed, err)
		}
		existing.ID = accountID
		normalizeCreatedAt(&existing)
		u.append(existing)
		return existing, nil

	case errors.Is(err, adapter.ErrNotFound):
		now := time.Now().UTC()
		record := models.User{
			Email:     user.Email,
			Name:      user.Name,
			NPM:       user.NPM,
			Favorites: user.Favorites,
			CreatedAt: &now,
		}
		if err = u.store.Set(ctx, adapter.CollectionUsers, accountID, record); err != nil {
			u.status.fail(app.MsgFailedToAddUser)
			u.logger.Error().Err(err).Str("id", accountID).Msg("write user record")
			return models.User{}, fmt.Errorf("%w: write user record: %v", ErrRemoteOperationFailed, err)
		}
		record.ID = accountID
		u.append(record)
		return record, nil

	default:
		u.status.fail(app.MsgFailedToAddUser)
		u.logger.Error().Err(err).Str("id", accountID).Msg("look up user record")
		return models.User{}, fmt.Errorf("%w: look up user record: %v", ErrRemoteOperationFailed, err)
	}
}

func (u *userService) Update(ctx context.Context, user models.User) error {
	if user.ID == "" {
		u.status.fail(app.MsgUserIDRequired)
		return ErrMissingID
	}

	// Only these four fields are ever rewritten; id and createdAt are
	// never resent.
	fields := models.UserUpdate{
		Name:      user.Name,
		Email:     user.Email,
		NPM:       user.NPM,
		Favorites: user.Favorites,
	}
	if err := u.store.Update(ctx, adapter.CollectionUsers, user.ID, fields); err != nil {
		u.status.fail(app.MsgFailedToUpdateUser)
		u.logger.Error().Err(err).Str("id", user.ID).Msg("update user")
		return fmt.Errorf("%w: update user: %v", ErrRemoteOperationFailed, err)
	}

	u.mu.Lock()
	for i := range u.mirror {
		if u.mirror[i].ID != user.ID {
			continue
		}
		u.mirror[i].Name = fields.Name
		u.mirror[i].Email = fields.Email
		u.mirror[i].NPM = fields.NPM
		u.mirror[i].Favorites = fields.Favorites
		break
	}
	u.mu.Unlock()

	return nil
}

func (u *userService) Delete(ctx context.Context, id string) error {
	// Store record only; the auth account stays.
	if err := u.store.Delete(ctx, adapter.CollectionUsers, id); err != nil {
		u.status.fail(app.MsgFailedToDeleteUser)
		u.logger.Error().Err(err).Str("id", id).Msg("delete user")
		return fmt.Errorf("%w: delete user: %v", ErrRemoteOperationFailed, err)
	}

	u.mu.Lock()
	kept := u.mirror[:0]
	for _, user := range u.mirror {
		if user.ID != id {
			kept = append(kept, user)
		}
	}
	u.mirror = kept
	u.mu.Unlock()

	return nil
}

func (u *userService) Reset() {
	u.mu.Lock()
	u.mirror = nil
	u.mu.Unlock()
}

func (u *userService) append(user models.User) {
	u.mu.Lock()
	u.mirror = append(u.mirror, user)
	u.mu.Unlock()
}

// normalizeCreatedAt pins a stored creation timestamp to a concrete UTC
// point-in-time at read time.
func normalizeCreatedAt(user *models.User) {
	if user.CreatedAt == nil {
		return
	}
	normalized := user.CreatedAt.UTC()
	user.CreatedAt = &normalized
}
