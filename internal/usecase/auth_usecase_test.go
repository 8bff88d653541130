package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"foodorder/internal/domain/model"
	"foodorder/internal/infra/token"
	repo "foodorder/internal/repository"
	"foodorder/internal/usecase"
	"foodorder/internal/validator"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

var authNow = time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

func newAuthUC(users *MockUserRepository) *usecase.AuthUsecase {
	return usecase.NewAuthUsecase(
		users,
		usecase.NewBcryptPasswordHasher(bcrypt.MinCost),
		usecase.NewBcryptPasswordVerifier(),
		token.NewJWTIssuer("test-secret", time.Hour),
		&seqIDGen{ids: []string{"3b1c6a52-2f0e-4d8e-9a57-0c1f7e3f9a10"}},
		fixedClock{t: authNow},
		validator.NewAuthValidator(),
		quietLogger(),
	)
}

func mustHash(t *testing.T, plain string) string {
	t.Helper()
	b, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.MinCost)
	require.NoError(t, err)
	return string(b)
}

func TestAuthUsecase_Register_Success(t *testing.T) {
	users := new(MockUserRepository)
	users.On("FindByUsername", mock.Anything, "alice").Return(nil, repo.ErrNotFound)
	users.On("Create", mock.Anything, mock.MatchedBy(func(u *model.User) bool {
		//平文で保存しない
		return u.Username == "alice" &&
			u.PasswordHash != "secret1" &&
			bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte("secret1")) == nil
	})).Return(nil)

	out, err := newAuthUC(users).Register(context.Background(), usecase.RegisterInput{Username: " alice ", Password: "secret1"})
	require.NoError(t, err)
	assert.Equal(t, "User registered successfully", out.Message)
	users.AssertExpectations(t)
}

func TestAuthUsecase_Register_DuplicateUsername(t *testing.T) {
	users := new(MockUserRepository)
	users.On("FindByUsername", mock.Anything, "alice").Return(&model.User{ID: "u1", Username: "alice"}, nil)

	_, err := newAuthUC(users).Register(context.Background(), usecase.RegisterInput{Username: "alice", Password: "secret1"})
	assert.ErrorIs(t, err, usecase.ErrConflict)

	he, ok := usecase.AsHTTPError(err)
	require.True(t, ok)
	assert.Equal(t, 400, he.Status)
	assert.Equal(t, "Username already exists", he.Message)
	users.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestAuthUsecase_Register_UniqueViolationRace(t *testing.T) {
	users := new(MockUserRepository)
	users.On("FindByUsername", mock.Anything, "alice").Return(nil, repo.ErrNotFound)
	users.On("Create", mock.Anything, mock.Anything).Return(repo.ErrDuplicate)

	_, err := newAuthUC(users).Register(context.Background(), usecase.RegisterInput{Username: "alice", Password: "secret1"})
	assert.ErrorIs(t, err, usecase.ErrConflict)
}

func TestAuthUsecase_Register_ShortPassword(t *testing.T) {
	users := new(MockUserRepository)

	_, err := newAuthUC(users).Register(context.Background(), usecase.RegisterInput{Username: "alice", Password: "12345"})
	assert.ErrorIs(t, err, usecase.ErrValidation)
	users.AssertNotCalled(t, "FindByUsername", mock.Anything, mock.Anything)
}

func TestAuthUsecase_Register_StoreFailure(t *testing.T) {
	users := new(MockUserRepository)
	users.On("FindByUsername", mock.Anything, "alice").Return(nil, errors.New("connection refused"))

	_, err := newAuthUC(users).Register(context.Background(), usecase.RegisterInput{Username: "alice", Password: "secret1"})
	assert.ErrorIs(t, err, usecase.ErrInternal)
}

func TestAuthUsecase_Login_Success_TokenExpiresInOneHour(t *testing.T) {
	users := new(MockUserRepository)
	users.On("FindByUsername", mock.Anything, "alice").Return(&model.User{
		ID:           "u1",
		Username:     "alice",
		PasswordHash: mustHash(t, "secret1"),
	}, nil)

	out, err := newAuthUC(users).Login(context.Background(), usecase.LoginInput{Username: "alice", Password: "secret1"})
	require.NoError(t, err)
	require.NotEmpty(t, out.Token)
	assert.Equal(t, authNow.Add(time.Hour), out.ExpiresAt)

	claims, err := token.ParseUnverified(out.Token)
	require.NoError(t, err)
	assert.Equal(t, "u1", claims.UserID)
	require.NotNil(t, claims.ExpiresAt)
	require.NotNil(t, claims.IssuedAt)
	assert.Equal(t, time.Hour, claims.ExpiresAt.Sub(claims.IssuedAt.Time))
}

func TestAuthUsecase_Login_WrongPassword(t *testing.T) {
	users := new(MockUserRepository)
	users.On("FindByUsername", mock.Anything, "alice").Return(&model.User{
		ID:           "u1",
		Username:     "alice",
		PasswordHash: mustHash(t, "secret1"),
	}, nil)

	_, err := newAuthUC(users).Login(context.Background(), usecase.LoginInput{Username: "alice", Password: "wrong-pass"})
	assert.ErrorIs(t, err, usecase.ErrUnauthorized)

	he, ok := usecase.AsHTTPError(err)
	require.True(t, ok)
	assert.Equal(t, 400, he.Status)
	assert.Equal(t, "Invalid username or password", he.Message)
}

func TestAuthUsecase_Login_UnknownUser(t *testing.T) {
	users := new(MockUserRepository)
	users.On("FindByUsername", mock.Anything, "bob").Return(nil, repo.ErrNotFound)

	_, err := newAuthUC(users).Login(context.Background(), usecase.LoginInput{Username: "bob", Password: "whatever"})
	assert.ErrorIs(t, err, usecase.ErrUnauthorized)
}

func TestAuthUsecase_Login_EmptyFields(t *testing.T) {
	users := new(MockUserRepository)

	_, err := newAuthUC(users).Login(context.Background(), usecase.LoginInput{Username: "", Password: "x"})
	assert.ErrorIs(t, err, usecase.ErrValidation)
	users.AssertNotCalled(t, "FindByUsername", mock.Anything, mock.Anything)
}
