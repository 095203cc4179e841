package auth

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"ventapos/internal/core/apperror"
	"ventapos/internal/core/id"
)

type memUserRepo struct {
	byUsername map[string]*User
	failUpdate bool
}

func newMemUserRepo() *memUserRepo {
	return &memUserRepo{byUsername: make(map[string]*User)}
}

func (r *memUserRepo) Create(_ context.Context, user *User) error {
	if _, ok := r.byUsername[user.Username]; ok {
		return apperror.NewDuplicate("user", "username", user.Username)
	}
	r.byUsername[user.Username] = user
	return nil
}

func (r *memUserRepo) GetByID(_ context.Context, userID id.ID) (*User, error) {
	for _, u := range r.byUsername {
		if u.ID == userID {
			return u, nil
		}
	}
	return nil, apperror.NewNotFound("user", userID.String())
}

func (r *memUserRepo) GetByUsername(_ context.Context, username string) (*User, error) {
	if u, ok := r.byUsername[username]; ok {
		return u, nil
	}
	return nil, apperror.NewNotFound("user", username)
}

func (r *memUserRepo) Update(_ context.Context, user *User) error {
	if r.failUpdate {
		return apperror.NewInternal(assert.AnError)
	}
	r.byUsername[user.Username] = user
	return nil
}

type passTxManager struct{}

func (passTxManager) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

func newTestService(repo UserRepository) *Service {
	jwt := NewJWTService(DefaultJWTConfig("test-secret"))
	return NewService(repo, passTxManager{}, jwt)
}

func seedUser(t *testing.T, repo *memUserRepo, username, password, role string) *User {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	user := NewUser(username, string(hash), role)
	require.NoError(t, repo.Create(context.Background(), user))
	return user
}

func TestLoginSuccess(t *testing.T) {
	repo := newMemUserRepo()
	seedUser(t, repo, "maria", "correct-horse", RoleSeller)
	svc := newTestService(repo)

	result, err := svc.Login(context.Background(), "maria", "correct-horse")
	require.NoError(t, err)
	assert.NotEmpty(t, result.Token)
	assert.Equal(t, "maria", result.User.Username)
	assert.NotNil(t, result.User.LastLoginAt)
}

func TestLoginWrongPassword(t *testing.T) {
	repo := newMemUserRepo()
	seedUser(t, repo, "maria", "correct-horse", RoleSeller)
	svc := newTestService(repo)

	_, err := svc.Login(context.Background(), "maria", "wrong")
	require.Error(t, err)

	appErr, ok := apperror.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperror.CodeUnauthorized, appErr.Code)
}

func TestLoginUnknownUserSameError(t *testing.T) {
	repo := newMemUserRepo()
	seedUser(t, repo, "maria", "correct-horse", RoleSeller)
	svc := newTestService(repo)

	_, errUnknown := svc.Login(context.Background(), "nobody", "whatever")
	_, errWrongPass := svc.Login(context.Background(), "maria", "wrong")

	require.Error(t, errUnknown)
	require.Error(t, errWrongPass)
	// Unknown user and wrong password must be indistinguishable.
	assert.Equal(t, errWrongPass.Error(), errUnknown.Error())
}

func TestLoginDisabledAccount(t *testing.T) {
	repo := newMemUserRepo()
	user := seedUser(t, repo, "maria", "correct-horse", RoleSeller)
	user.IsActive = false
	svc := newTestService(repo)

	_, err := svc.Login(context.Background(), "maria", "correct-horse")
	require.Error(t, err)

	appErr, ok := apperror.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperror.CodeForbidden, appErr.Code)
}

func TestLoginSucceedsWhenTimestampWriteFails(t *testing.T) {
	repo := newMemUserRepo()
	seedUser(t, repo, "maria", "correct-horse", RoleSeller)
	repo.failUpdate = true
	svc := newTestService(repo)

	result, err := svc.Login(context.Background(), "maria", "correct-horse")
	require.NoError(t, err)
	assert.NotEmpty(t, result.Token)
}

func TestRegisterCreatesUser(t *testing.T) {
	repo := newMemUserRepo()
	svc := newTestService(repo)

	user, err := svc.Register(context.Background(), "pedro", "long-enough", "Pedro", RoleAdmin)
	require.NoError(t, err)
	assert.Equal(t, "pedro", user.Username)
	assert.Equal(t, RoleAdmin, user.Role)
	assert.NotEqual(t, "long-enough", user.PasswordHash)
}

func TestRegisterShortPassword(t *testing.T) {
	repo := newMemUserRepo()
	svc := newTestService(repo)

	_, err := svc.Register(context.Background(), "pedro", "short", "Pedro", RoleAdmin)
	require.Error(t, err)

	appErr, ok := apperror.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperror.CodeValidation, appErr.Code)
}

func TestRegisterDuplicateUsername(t *testing.T) {
	repo := newMemUserRepo()
	seedUser(t, repo, "pedro", "long-enough", RoleAdmin)
	svc := newTestService(repo)

	_, err := svc.Register(context.Background(), "pedro", "long-enough", "Pedro", RoleAdmin)
	require.Error(t, err)
	assert.True(t, apperror.IsDuplicate(err))
}

func TestRegisterUnknownRole(t *testing.T) {
	repo := newMemUserRepo()
	svc := newTestService(repo)

	_, err := svc.Register(context.Background(), "pedro", "long-enough", "Pedro", "superuser")
	require.Error(t, err)

	appErr, ok := apperror.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperror.CodeValidation, appErr.Code)
}
