package service

import (
	"context"
	"errors"
	"strings"

	"github.com/rezsam09/remuncandygramdatabase/internal/repo"
	"github.com/rezsam09/remuncandygramdatabase/internal/utils"

	"github.com/jackc/pgx/v5"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrUsernameRequired = errors.New("username is required")
	ErrPasswordRequired = errors.New("password is required")
	ErrWrongPassword    = errors.New("incorrect password")
	ErrUsernameTaken    = errors.New("username already taken")
)

// Normalize trims whitespace and lowercases a username. Applied before every
// lookup or store so raw-cased input never reaches the unique key.
func Normalize(username string) string {
	return strings.ToLower(strings.TrimSpace(username))
}

// AccountService is the single source of truth for identity and credential
// verification.
type AccountService struct {
	repo repo.UserRepo
}

// NewAccountService returns a new AccountService.
func NewAccountService(repo repo.UserRepo) *AccountService {
	return &AccountService{repo: repo}
}

// Check reports whether username is taken. Read-only, no password involved.
func (s *AccountService) Check(ctx context.Context, username string) (bool, error) {
	username = Normalize(username)
	if username == "" {
		return false, ErrUsernameRequired
	}
	return s.repo.Exists(ctx, username)
}

// Exists reports whether a user is registered. Used by the mailbox store to
// validate senders and recipients at write time.
func (s *AccountService) Exists(ctx context.Context, username string) (bool, error) {
	username = Normalize(username)
	if username == "" {
		return false, nil
	}
	return s.repo.Exists(ctx, username)
}

// Submit logs in if the username exists, registers it otherwise. Returns
// created=true when a new account was inserted. No session or token is
// issued; the protocol is stateless per request.
func (s *AccountService) Submit(ctx context.Context, username, password string) (created bool, err error) {
	username = Normalize(username)
	if username == "" {
		return false, ErrUsernameRequired
	}
	if password == "" {
		return false, ErrPasswordRequired
	}

	u, err := s.repo.GetByUsername(ctx, username)
	if err == nil {
		if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)); err != nil {
			return false, ErrWrongPassword
		}
		return false, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return false, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return false, err
	}
	if _, err := s.repo.Create(ctx, username, string(hash)); err != nil {
		if utils.IsPGUniqueViolation(err) {
			// Lost a race for the name; the winner already holds the key.
			return false, ErrUsernameTaken
		}
		return false, err
	}
	return true, nil
}
