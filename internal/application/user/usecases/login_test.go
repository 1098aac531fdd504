package usecases

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"relnotes/internal/domain/user"
	"relnotes/internal/shared/constants"
	"relnotes/internal/shared/errors"
	"relnotes/internal/shared/logger"
)

type mockUserRepository struct {
	CreateFunc           func(ctx context.Context, entity *user.User) error
	GetByIDFunc          func(ctx context.Context, id uint) (*user.User, error)
	GetByUsernameFunc    func(ctx context.Context, username string) (*user.User, error)
	UpdateFunc           func(ctx context.Context, entity *user.User) error
	DeleteFunc           func(ctx context.Context, id uint) error
	ExistsByUsernameFunc func(ctx context.Context, username string) (bool, error)
}

func (m *mockUserRepository) Create(ctx context.Context, entity *user.User) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, entity)
	}
	return nil
}

func (m *mockUserRepository) GetByID(ctx context.Context, id uint) (*user.User, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockUserRepository) GetByUsername(ctx context.Context, username string) (*user.User, error) {
	if m.GetByUsernameFunc != nil {
		return m.GetByUsernameFunc(ctx, username)
	}
	return nil, nil
}

func (m *mockUserRepository) Update(ctx context.Context, entity *user.User) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, entity)
	}
	return nil
}

func (m *mockUserRepository) Delete(ctx context.Context, id uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

func (m *mockUserRepository) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	if m.ExistsByUsernameFunc != nil {
		return m.ExistsByUsernameFunc(ctx, username)
	}
	return false, nil
}

type mockHasher struct {
	HashFunc   func(password string) (string, error)
	VerifyFunc func(password, hash string) error
}

func (m *mockHasher) Hash(password string) (string, error) {
	if m.HashFunc != nil {
		return m.HashFunc(password)
	}
	return "hashed:" + password, nil
}

func (m *mockHasher) Verify(password, hash string) error {
	if m.VerifyFunc != nil {
		return m.VerifyFunc(password, hash)
	}
	return nil
}

type mockTokenIssuer struct {
	GenerateFunc func(userID uint, username, role string) (*TokenPair, error)
}

func (m *mockTokenIssuer) Generate(userID uint, username, role string) (*TokenPair, error) {
	if m.GenerateFunc != nil {
		return m.GenerateFunc(userID, username, role)
	}
	return &TokenPair{AccessToken: "access", RefreshToken: "refresh", ExpiresIn: 3600}, nil
}

func staffUser(t *testing.T) *user.User {
	t.Helper()
	now := time.Now().UTC()
	u, err := user.ReconstructUser(1, "editor", "stored-hash", true, now, now)
	require.NoError(t, err)
	return u
}

func TestLoginUseCase_Success(t *testing.T) {
	var issuedRole string
	repo := &mockUserRepository{
		GetByUsernameFunc: func(ctx context.Context, username string) (*user.User, error) {
			assert.Equal(t, "editor", username)
			return staffUser(t), nil
		},
	}
	hasher := &mockHasher{
		VerifyFunc: func(password, hash string) error {
			assert.Equal(t, "s3cret-pass", password)
			assert.Equal(t, "stored-hash", hash)
			return nil
		},
	}
	issuer := &mockTokenIssuer{
		GenerateFunc: func(userID uint, username, role string) (*TokenPair, error) {
			issuedRole = role
			return &TokenPair{AccessToken: "a", RefreshToken: "r", ExpiresIn: 60}, nil
		},
	}

	uc := NewLoginUseCase(repo, hasher, issuer, logger.NewLogger())
	result, err := uc.Execute(context.Background(), LoginCommand{Username: "editor", Password: "s3cret-pass"})
	require.NoError(t, err)

	assert.Equal(t, constants.RoleStaff, issuedRole)
	assert.Equal(t, "a", result.Tokens.AccessToken)
	assert.Equal(t, "editor", result.User.Username)
	assert.True(t, result.User.IsStaff)
}

func TestLoginUseCase_UnknownUserAndWrongPasswordLookAlike(t *testing.T) {
	unknownRepo := &mockUserRepository{}
	wrongPassRepo := &mockUserRepository{
		GetByUsernameFunc: func(ctx context.Context, username string) (*user.User, error) {
			return staffUser(t), nil
		},
	}
	failingHasher := &mockHasher{
		VerifyFunc: func(password, hash string) error {
			return fmt.Errorf("password verification failed")
		},
	}

	ucUnknown := NewLoginUseCase(unknownRepo, &mockHasher{}, &mockTokenIssuer{}, logger.NewLogger())
	_, errUnknown := ucUnknown.Execute(context.Background(), LoginCommand{Username: "nobody", Password: "pw"})

	ucWrongPass := NewLoginUseCase(wrongPassRepo, failingHasher, &mockTokenIssuer{}, logger.NewLogger())
	_, errWrongPass := ucWrongPass.Execute(context.Background(), LoginCommand{Username: "editor", Password: "pw"})

	require.Error(t, errUnknown)
	require.Error(t, errWrongPass)
	assert.Equal(t, errors.GetAppError(errUnknown).Message, errors.GetAppError(errWrongPass).Message)
}

func TestLoginUseCase_MissingCredentials(t *testing.T) {
	uc := NewLoginUseCase(&mockUserRepository{}, &mockHasher{}, &mockTokenIssuer{}, logger.NewLogger())
	_, err := uc.Execute(context.Background(), LoginCommand{Username: "editor"})
	require.Error(t, err)
}

func TestCreateUserUseCase_RejectsDuplicateUsername(t *testing.T) {
	repo := &mockUserRepository{
		ExistsByUsernameFunc: func(ctx context.Context, username string) (bool, error) {
			return true, nil
		},
	}

	uc := NewCreateUserUseCase(repo, &mockHasher{}, logger.NewLogger())
	_, err := uc.Execute(context.Background(), CreateUserCommand{Username: "editor", Password: "long-enough"})
	require.Error(t, err)
	assert.True(t, errors.IsConflictError(err))
}

func TestCreateUserUseCase_CreatesStaffAccount(t *testing.T) {
	var created *user.User
	repo := &mockUserRepository{
		CreateFunc: func(ctx context.Context, entity *user.User) error {
			created = entity
			entity.SetID(7)
			return nil
		},
	}

	uc := NewCreateUserUseCase(repo, &mockHasher{}, logger.NewLogger())
	result, err := uc.Execute(context.Background(), CreateUserCommand{
		Username: "editor",
		Password: "long-enough",
		IsStaff:  true,
	})
	require.NoError(t, err)

	require.NotNil(t, created)
	assert.Equal(t, "hashed:long-enough", created.PasswordHash())
	assert.True(t, result.IsStaff)
	assert.Equal(t, uint(7), result.ID)
}
