package service

import (
	"context"
	"testing"

	dom "github.com/rezsam09/remuncandygramdatabase/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

// fakeUserRepo backs the service with a map and mimics the storage-level
// behavior the service relies on: pgx.ErrNoRows on absent users and a
// 23505 PgError when an insert hits the primary key.
type fakeUserRepo struct {
	users   map[string]dom.User
	creates int
}

func newFakeUserRepo(t *testing.T) *fakeUserRepo {
	t.Helper()
	return &fakeUserRepo{users: map[string]dom.User{}}
}

func (f *fakeUserRepo) GetByUsername(ctx context.Context, username string) (dom.User, error) {
	u, ok := f.users[username]
	if !ok {
		return dom.User{}, pgx.ErrNoRows
	}
	return u, nil
}

func (f *fakeUserRepo) Exists(ctx context.Context, username string) (bool, error) {
	_, ok := f.users[username]
	return ok, nil
}

func (f *fakeUserRepo) Create(ctx context.Context, username, passwordHash string) (dom.User, error) {
	f.creates++
	if _, ok := f.users[username]; ok {
		return dom.User{}, &pgconn.PgError{Code: "23505", ConstraintName: "users_pkey"}
	}
	u := dom.User{Username: username, PasswordHash: passwordHash}
	f.users[username] = u
	return u, nil
}

func (f *fakeUserRepo) mustRegister(t *testing.T, username, password string) {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	f.users[username] = dom.User{Username: username, PasswordHash: string(hash)}
}

func TestNormalize(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"alice", "alice"},
		{"  Alice ", "alice"},
		{"BOB", "bob"},
		{"\tCarol\n", "carol"},
		{"   ", ""},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, Normalize(tc.in))
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	for _, u := range []string{"alice", " Alice ", "BOB", "", "  MiXeD Case  "} {
		once := Normalize(u)
		assert.Equal(t, once, Normalize(once))
	}
}

func TestCheck(t *testing.T) {
	repo := newFakeUserRepo(t)
	repo.mustRegister(t, "alice", "pw1")
	svc := NewAccountService(repo)
	ctx := context.Background()

	taken, err := svc.Check(ctx, "alice")
	require.NoError(t, err)
	assert.True(t, taken)

	// Lookup is case-insensitive via normalization.
	taken, err = svc.Check(ctx, "  ALICE ")
	require.NoError(t, err)
	assert.True(t, taken)

	taken, err = svc.Check(ctx, "bob")
	require.NoError(t, err)
	assert.False(t, taken)

	// Check never mutates storage and never needs a password.
	assert.Equal(t, 0, repo.creates)
	assert.Len(t, repo.users, 1)
}

func TestCheckEmptyUsername(t *testing.T) {
	svc := NewAccountService(newFakeUserRepo(t))
	_, err := svc.Check(context.Background(), "   ")
	assert.ErrorIs(t, err, ErrUsernameRequired)
}

func TestSubmitRegistersNewUser(t *testing.T) {
	repo := newFakeUserRepo(t)
	svc := NewAccountService(repo)

	created, err := svc.Submit(context.Background(), " Dave ", "secret")
	require.NoError(t, err)
	assert.True(t, created)

	u, ok := repo.users["dave"]
	require.True(t, ok, "username must be stored normalized")
	assert.NotEqual(t, "secret", u.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte("secret")))
}

func TestSubmitLogsInExistingUser(t *testing.T) {
	repo := newFakeUserRepo(t)
	repo.mustRegister(t, "alice", "pw1")
	svc := NewAccountService(repo)

	created, err := svc.Submit(context.Background(), "alice", "pw1")
	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, 0, repo.creates)
}

func TestSubmitWrongPassword(t *testing.T) {
	repo := newFakeUserRepo(t)
	repo.mustRegister(t, "alice", "pw1")
	svc := NewAccountService(repo)

	_, err := svc.Submit(context.Background(), "alice", "nope")
	assert.ErrorIs(t, err, ErrWrongPassword)
	// No state change on a failed login.
	assert.Equal(t, 0, repo.creates)
	assert.Len(t, repo.users, 1)
}

func TestSubmitMissingInput(t *testing.T) {
	svc := NewAccountService(newFakeUserRepo(t))
	ctx := context.Background()

	_, err := svc.Submit(ctx, "  ", "pw")
	assert.ErrorIs(t, err, ErrUsernameRequired)

	_, err = svc.Submit(ctx, "alice", "")
	assert.ErrorIs(t, err, ErrPasswordRequired)
}

// A registration that loses the unique-key race surfaces as ErrUsernameTaken.
// The fake models the window where GetByUsername misses but the insert hits
// the primary key because a concurrent request committed first.
func TestSubmitConflictOnLostRace(t *testing.T) {
	repo := newFakeUserRepo(t)
	svc := NewAccountService(repo)
	ctx := context.Background()

	created, err := svc.Submit(ctx, "dave", "pw1")
	require.NoError(t, err)
	require.True(t, created)

	// Simulate the loser: absent at read time, present at insert time.
	loser := NewAccountService(&racingUserRepo{inner: repo})
	_, err = loser.Submit(ctx, "dave", "pw2")
	assert.ErrorIs(t, err, ErrUsernameTaken)
}

// racingUserRepo reports every user as missing on read, so Submit always
// takes the registration path and collides with the real insert.
type racingUserRepo struct {
	inner *fakeUserRepo
}

func (r *racingUserRepo) GetByUsername(ctx context.Context, username string) (dom.User, error) {
	return dom.User{}, pgx.ErrNoRows
}

func (r *racingUserRepo) Exists(ctx context.Context, username string) (bool, error) {
	return false, nil
}

func (r *racingUserRepo) Create(ctx context.Context, username, passwordHash string) (dom.User, error) {
	return r.inner.Create(ctx, username, passwordHash)
}
