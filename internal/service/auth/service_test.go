package auth

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/crypto/bcrypt"

	"github.com/salonops/backoffice/internal/config"
	"github.com/salonops/backoffice/internal/domain/models"
	"github.com/salonops/backoffice/internal/repository/mongodb"
)

type fakeUserRepo struct {
	user *models.User
	role *models.Role
}

func (f *fakeUserRepo) FindByEmail(_ context.Context, email string) (*models.User, error) {
	if f.user != nil && f.user.Email == email {
		return f.user, nil
	}
	return nil, mongodb.ErrNotFound
}

func (f *fakeUserRepo) FindByID(_ context.Context, id primitive.ObjectID) (*models.User, error) {
	if f.user != nil && f.user.ID == id {
		return f.user, nil
	}
	return nil, mongodb.ErrNotFound
}

func (f *fakeUserRepo) FindRole(_ context.Context, id primitive.ObjectID) (*models.Role, error) {
	if f.role != nil && f.role.ID == id {
		return f.role, nil
	}
	return nil, mongodb.ErrNotFound
}

func testUser(t *testing.T, password string) (*models.User, *models.Role) {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)

	role := &models.Role{
		ID:          primitive.NewObjectID(),
		Name:        "manager",
		Permissions: []string{PermissionStaffIncentivesManage},
	}
	user := &models.User{
		ID:           primitive.NewObjectID(),
		Email:        "manager@example.com",
		PasswordHash: string(hash),
		Role:         role.ID,
	}
	return user, role
}

func newTestAuthService(t *testing.T, password string) (*Service, *models.User) {
	t.Helper()

	user, role := testUser(t, password)
	cfg := config.AuthConfig{JWTSecret: "test-secret", TokenTTLHours: 1}
	return NewService(&fakeUserRepo{user: user, role: role}, cfg, nil), user
}

func TestLoginAndVerifyToken(t *testing.T) {
	svc, user := newTestAuthService(t, "hunter2")

	token, err := svc.Login(context.Background(), "manager@example.com", "hunter2")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	userID, err := svc.VerifyToken(token)
	require.NoError(t, err)
	assert.Equal(t, user.ID.Hex(), userID)
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	svc, _ := newTestAuthService(t, "hunter2")

	_, err := svc.Login(context.Background(), "manager@example.com", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.Login(context.Background(), "nobody@example.com", "hunter2")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestVerifyTokenRejectsGarbage(t *testing.T) {
	svc, _ := newTestAuthService(t, "hunter2")

	_, err := svc.VerifyToken("not-a-token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifyTokenRejectsForeignSignature(t *testing.T) {
	svc, _ := newTestAuthService(t, "hunter2")
	other := NewService(&fakeUserRepo{}, config.AuthConfig{JWTSecret: "other-secret", TokenTTLHours: 1}, nil)

	token, err := svc.Login(context.Background(), "manager@example.com", "hunter2")
	require.NoError(t, err)

	_, err = other.VerifyToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestActorHasPermission(t *testing.T) {
	actor := Actor{
		Authenticated: true,
		Permissions:   []string{PermissionStaffIncentivesManage, PermissionStaffView},
	}

	assert.True(t, actor.HasPermission(PermissionStaffIncentivesManage))
	assert.False(t, actor.HasPermission(PermissionStaffManage))
	assert.False(t, Actor{}.HasPermission(PermissionStaffIncentivesManage))
}
