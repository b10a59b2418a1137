package auth

import (
	"context"
	"testing"

	"github.com/staffdesk/workforce-backend-go/internal/domain/auth"
	"github.com/staffdesk/workforce-backend-go/internal/domain/user"
	"github.com/staffdesk/workforce-backend-go/internal/pkg/jwt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

type fakeUserRepo struct {
	users map[string]*user.User // keyed by user id
}

func (f *fakeUserRepo) Create(ctx context.Context, u user.User) (user.User, error) {
	f.users[u.ID] = &u
	return u, nil
}

func (f *fakeUserRepo) GetByEmail(ctx context.Context, email string) (user.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			return *u, nil
		}
	}
	return user.User{}, user.ErrUserNotFound
}

func (f *fakeUserRepo) GetByID(ctx context.Context, id string) (user.User, error) {
	u, ok := f.users[id]
	if !ok {
		return user.User{}, user.ErrUserNotFound
	}
	return *u, nil
}

func (f *fakeUserRepo) UpdatePasswordByEmployeeID(ctx context.Context, employeeID string, passwordHash string) error {
	return user.ErrUserNotFound
}

func newService(t *testing.T) auth.AuthService {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte("correct-horse-battery"), bcrypt.MinCost)
	require.NoError(t, err)

	empID := "emp-1"
	repo := &fakeUserRepo{users: map[string]*user.User{
		"user-1": {
			ID:           "user-1",
			EmployeeID:   &empID,
			Email:        "ana@example.com",
			PasswordHash: string(hash),
			Role:         user.RoleManager,
		},
	}}
	jwtService := jwt.NewJWTService("test-secret-key", "15m", "720h")
	return NewAuthService(repo, jwtService)
}

func TestLogin(t *testing.T) {
	svc := newService(t)

	resp, err := svc.Login(context.Background(), auth.LoginRequest{
		Email:    "ana@example.com",
		Password: "correct-horse-battery",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.AccessToken)
	assert.NotEmpty(t, resp.RefreshToken)
	assert.Equal(t, "manager", resp.Role)
	assert.Equal(t, "emp-1", resp.EmployeeID)
}

func TestLoginWrongPassword(t *testing.T) {
	svc := newService(t)

	_, err := svc.Login(context.Background(), auth.LoginRequest{
		Email:    "ana@example.com",
		Password: "wrong",
	})
	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
}

func TestLoginUnknownEmail(t *testing.T) {
	svc := newService(t)

	// Same error as a wrong password so the response never leaks which
	// emails exist.
	_, err := svc.Login(context.Background(), auth.LoginRequest{
		Email:    "nobody@example.com",
		Password: "correct-horse-battery",
	})
	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
}

func TestLoginInvalidRequest(t *testing.T) {
	svc := newService(t)

	_, err := svc.Login(context.Background(), auth.LoginRequest{Email: "not-an-email", Password: "x"})
	assert.Error(t, err)
	assert.NotErrorIs(t, err, auth.ErrInvalidCredentials)
}

func TestRefresh(t *testing.T) {
	svc := newService(t)

	login, err := svc.Login(context.Background(), auth.LoginRequest{
		Email:    "ana@example.com",
		Password: "correct-horse-battery",
	})
	require.NoError(t, err)

	refreshed, err := svc.Refresh(context.Background(), auth.RefreshRequest{RefreshToken: login.RefreshToken})
	require.NoError(t, err)
	assert.NotEmpty(t, refreshed.AccessToken)
	assert.Empty(t, refreshed.RefreshToken)
	assert.Equal(t, "manager", refreshed.Role)
}

func TestRefreshRejectsAccessToken(t *testing.T) {
	svc := newService(t)

	login, err := svc.Login(context.Background(), auth.LoginRequest{
		Email:    "ana@example.com",
		Password: "correct-horse-battery",
	})
	require.NoError(t, err)

	_, err = svc.Refresh(context.Background(), auth.RefreshRequest{RefreshToken: login.AccessToken})
	assert.ErrorIs(t, err, auth.ErrInvalidToken)
}

func TestRefreshGarbageToken(t *testing.T) {
	svc := newService(t)

	_, err := svc.Refresh(context.Background(), auth.RefreshRequest{RefreshToken: "not.a.jwt"})
	assert.ErrorIs(t, err, auth.ErrInvalidToken)

	_, err = svc.Refresh(context.Background(), auth.RefreshRequest{})
	assert.ErrorIs(t, err, auth.ErrInvalidToken)
}

func TestLogoutRevokesRefreshToken(t *testing.T) {
	svc := newService(t)

	login, err := svc.Login(context.Background(), auth.LoginRequest{
		Email:    "ana@example.com",
		Password: "correct-horse-battery",
	})
	require.NoError(t, err)

	require.NoError(t, svc.Logout(context.Background(), login.RefreshToken))

	_, err = svc.Refresh(context.Background(), auth.RefreshRequest{RefreshToken: login.RefreshToken})
	assert.ErrorIs(t, err, auth.ErrRefreshTokenRevoked)
}
