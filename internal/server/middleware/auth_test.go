package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/crypto/bcrypt"

	"github.com/salonops/backoffice/internal/config"
	"github.com/salonops/backoffice/internal/domain/models"
	"github.com/salonops/backoffice/internal/repository/mongodb"
	"github.com/salonops/backoffice/internal/service/auth"
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

func setupMiddlewareTest(t *testing.T) (*gin.Engine, *auth.Service) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	hash, err := bcrypt.GenerateFromPassword([]byte("hunter2"), bcrypt.MinCost)
	require.NoError(t, err)

	role := &models.Role{
		ID:          primitive.NewObjectID(),
		Name:        "manager",
		Permissions: []string{auth.PermissionStaffIncentivesManage},
	}
	user := &models.User{
		ID:           primitive.NewObjectID(),
		Email:        "manager@example.com",
		PasswordHash: string(hash),
		Role:         role.ID,
	}

	repo := &fakeUserRepo{user: user, role: role}
	svc := auth.NewService(repo, config.AuthConfig{JWTSecret: "test-secret", TokenTTLHours: 1}, nil)

	r := gin.New()
	r.Use(Authenticate(svc, repo, nil))
	r.GET("/probe", func(c *gin.Context) {
		actor := ActorFromContext(c)
		c.JSON(http.StatusOK, gin.H{"permissions": actor.Permissions})
	})

	return r, svc
}

func TestAuthenticateRejectsMissingToken(t *testing.T) {
	r, _ := setupMiddlewareTest(t)

	req := httptest.NewRequest(http.MethodGet, "/probe", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthenticateRejectsInvalidToken(t *testing.T) {
	r, _ := setupMiddlewareTest(t)

	req := httptest.NewRequest(http.MethodGet, "/probe", nil)
	req.Header.Set("Authorization", "Bearer bogus")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthenticateResolvesActor(t *testing.T) {
	r, svc := setupMiddlewareTest(t)

	token, err := svc.Login(context.Background(), "manager@example.com", "hunter2")
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/probe", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), auth.PermissionStaffIncentivesManage)
}

func TestActorFromContextWithoutMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())

	actor := ActorFromContext(c)
	assert.False(t, actor.Authenticated)
	assert.Empty(t, actor.Permissions)
}
