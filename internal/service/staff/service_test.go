package staff

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/salonops/backoffice/internal/domain/models"
	"github.com/salonops/backoffice/internal/service/auth"
)

type fakeStaffRepo struct {
	staff []models.Staff
}

func (f *fakeStaffRepo) FindByID(_ context.Context, id primitive.ObjectID) (*models.Staff, error) {
	for _, s := range f.staff {
		if s.ID == id {
			return &s, nil
		}
	}
	return nil, assert.AnError
}

func (f *fakeStaffRepo) List(context.Context) ([]models.Staff, error) {
	return f.staff, nil
}

func (f *fakeStaffRepo) Create(_ context.Context, staff models.Staff) (*models.Staff, error) {
	staff.ID = primitive.NewObjectID()
	staff.CreatedAt = time.Now().UTC()
	f.staff = append(f.staff, staff)
	return &staff, nil
}

func adminActor() auth.Actor {
	return auth.Actor{
		Authenticated: true,
		Permissions:   []string{auth.PermissionStaffView, auth.PermissionStaffManage},
	}
}

func TestListRequiresPermission(t *testing.T) {
	svc := NewService(&fakeStaffRepo{}, nil)

	_, err := svc.List(context.Background(), auth.Actor{})
	assert.ErrorIs(t, err, auth.ErrUnauthenticated)

	_, err = svc.List(context.Background(), auth.Actor{Authenticated: true})
	assert.ErrorIs(t, err, auth.ErrForbidden)
}

func TestCreateValidatesName(t *testing.T) {
	svc := NewService(&fakeStaffRepo{}, nil)

	_, err := svc.Create(context.Background(), adminActor(), models.Staff{Name: "   "})
	assert.ErrorIs(t, err, ErrNameRequired)
}

func TestCreateAndList(t *testing.T) {
	repo := &fakeStaffRepo{}
	svc := NewService(repo, nil)

	created, err := svc.Create(context.Background(), adminActor(), models.Staff{Name: "Aicha", Position: "stylist", Active: true})
	require.NoError(t, err)
	assert.False(t, created.ID.IsZero())

	listed, err := svc.List(context.Background(), adminActor())
	require.NoError(t, err)
	require.Len(t, listed, 1)
	assert.Equal(t, "Aicha", listed[0].Name)
}
