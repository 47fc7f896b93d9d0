package emulator

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

const minPasswordLength = 6

var (
	errEmailExists  = errors.New("EMAIL_EXISTS")
	errWeakPassword = fmt.Errorf("WEAK_PASSWORD : Password should be at least %d characters", minPasswordLength)
)

// accountStore manages password-based accounts the way the hosted auth
// service does: unique emails, a minimum password length, bcrypt at rest.
type accountStore struct {
	db         *sql.DB
	signingKey []byte
}

func newAccountStore(db *sql.DB, signingKey []byte) *accountStore {
	return &accountStore{db: db, signingKey: signingKey}
}

// signUp registers a new account and returns its id plus a signed ID token.
func (s *accountStore) signUp(email, password string) (string, string, error) {
	if len(password) < minPasswordLength {
		return "", "", errWeakPassword
	}

	exists, err := s.emailTaken(email)
	if err != nil {
		return "", "", err
	}
	if exists {
		return "", "", errEmailExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", "", fmt.Errorf("hash password: %w", err)
	}

	id := uuid.NewString()
	query, args, err := sq.Insert("accounts").
		Columns("id", "email", "password_hash").
		Values(id, email, string(hash)).
		ToSql()
	if err != nil {
		return "", "", fmt.Errorf("build signup query: %w", err)
	}
	if _, err = s.db.Exec(query, args...); err != nil {
		return "", "", fmt.Errorf("insert account: %w", err)
	}

	token, err := s.mintIDToken(id, email)
	if err != nil {
		return "", "", err
	}

	return id, token, nil
}

func (s *accountStore) emailTaken(email string) (bool, error) {
	query, args, err := sq.Select("1").
		From("accounts").
		Where(sq.Eq{"email": email}).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("build email lookup: %w", err)
	}

	var one int
	err = s.db.QueryRow(query, args...).Scan(&one)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return false, nil
	case err != nil:
		return false, fmt.Errorf("look up email: %w", err)
	default:
		return true, nil
	}
}

// mintIDToken issues a development-grade HS256 token. The console only ever
// reads the subject claim from it.
func (s *accountStore) mintIDToken(accountID, email string) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":   accountID,
		"email": email,
		"iat":   now.Unix(),
		"exp":   now.Add(time.Hour).Unix(),
	})

	signed, err := token.SignedString(s.signingKey)
	if err != nil {
		return "", fmt.Errorf("sign id token: %w", err)
	}

	return signed, nil
}
