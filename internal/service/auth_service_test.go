package service

import (
	"context"
	"errors"
	"testing"

	"greenchain/internal/directory"
	"greenchain/internal/model"
	"greenchain/internal/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newService(t *testing.T) (AuthService, *directory.Memory, *utils.JWTUtil) {
	t.Helper()
	dir, err := directory.NewMemory()
	require.NoError(t, err)
	jwtUtil := utils.NewJWTUtil("test-secret", 1)
	return NewAuthService(dir, jwtUtil), dir, jwtUtil
}

func TestAuthService_Login(t *testing.T) {
	svc, _, jwtUtil := newService(t)

	user, token, err := svc.Login(context.Background(), "admin@example.com", "admin123")

	require.NoError(t, err)
	require.NotNil(t, user)
	assert.Equal(t, "Admin User", user.Name)
	assert.Equal(t, model.RoleAdmin, user.Role)

	claims, err := jwtUtil.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, user.ID, claims.UserID)
	assert.Equal(t, model.RoleAdmin, claims.Role)
}

func TestAuthService_Login_UnknownEmail(t *testing.T) {
	svc, _, _ := newService(t)

	user, token, err := svc.Login(context.Background(), "nobody@example.com", "x")

	assert.ErrorIs(t, err, ErrInvalidCredentials)
	assert.Nil(t, user)
	assert.Empty(t, token)
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	svc, _, _ := newService(t)

	_, _, err := svc.Login(context.Background(), "admin@example.com", "not-it")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestAuthService_Register(t *testing.T) {
	svc, dir, _ := newService(t)

	user, token, err := svc.Register(context.Background(), "New User", "new@example.com", "pw12345")

	require.NoError(t, err)
	require.NotNil(t, user)
	assert.NotEmpty(t, token)
	assert.Equal(t, model.RoleUser, user.Role)
	assert.NotEmpty(t, user.ID)

	stored, err := dir.FindByEmail(context.Background(), "new@example.com")
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.True(t, utils.CheckPasswordHash("pw12345", stored.PasswordHash))
}

func TestAuthService_Register_DuplicateEmail(t *testing.T) {
	svc, _, _ := newService(t)

	for _, email := range []string{"admin@example.com", "ADMIN@example.com"} {
		_, _, err := svc.Register(context.Background(), "Someone", email, "pw12345")
		assert.ErrorIs(t, err, ErrUserAlreadyExists, "email %s", email)
	}
}

func TestAuthService_Register_InitialAdmin(t *testing.T) {
	svc, _, _ := newService(t)
	t.Setenv("INITIAL_ADMIN_EMAIL", "boss@example.com")

	user, _, err := svc.Register(context.Background(), "Boss", "boss@example.com", "pw12345")

	require.NoError(t, err)
	assert.Equal(t, model.RoleAdmin, user.Role)
}

type erroringDirectory struct{}

func (erroringDirectory) FindByEmail(context.Context, string) (*model.User, error) {
	return nil, errors.New("boom")
}
func (erroringDirectory) FindByID(context.Context, string) (*model.User, error) {
	return nil, errors.New("boom")
}
func (erroringDirectory) Create(context.Context, *model.User) error {
	return errors.New("boom")
}

func TestAuthService_DirectoryErrorsPropagate(t *testing.T) {
	svc := NewAuthService(erroringDirectory{}, utils.NewJWTUtil("s", 1))

	_, _, err := svc.Login(context.Background(), "admin@example.com", "admin123")
	assert.Error(t, err)
	assert.NotErrorIs(t, err, ErrInvalidCredentials)

	_, _, err = svc.Register(context.Background(), "X", "x@example.com", "pw12345")
	assert.Error(t, err)
}
