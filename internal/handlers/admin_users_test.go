package handlers

import (
	"net/http"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/naturespantry/shop/internal/models"
	"github.com/naturespantry/shop/internal/repository"
)

func newUserHandler(t *testing.T) (*AdminUserHandler, *gorm.DB, *fakePublisher) {
	db := newTestDB(t)
	pub := &fakePublisher{}
	h := &AdminUserHandler{
		Users:    &repository.GormUsers{DB: db},
		Producer: pub,
	}
	return h, db, pub
}

func seedProfile(t *testing.T, db *gorm.DB, email, fullName string, createdAt time.Time) models.Profile {
	p := models.Profile{
		UserID:   uuid.New(),
		Email:    email,
		FullName: &fullName,
	}
	require.NoError(t, db.Create(&p).Error)
	require.NoError(t, db.Model(&p).Update("created_at", createdAt).Error)
	return p
}

func TestAdminListUsersJoinsRoles(t *testing.T) {
	h, db, _ := newUserHandler(t)
	now := time.Now()

	admin := seedProfile(t, db, "admin@naturespantry.com", "Ada Admin", now.Add(-1*time.Hour))
	seedProfile(t, db, "customer@example.com", "Carl Customer", now.Add(-2*time.Hour))

	require.NoError(t, db.Create(&models.UserRole{UserID: admin.UserID, Role: models.RoleAdmin}).Error)

	var resp struct {
		Data []struct {
			models.Profile
			Role string `json:"role"`
		} `json:"data"`
		Total int `json:"total"`
	}

	rec, c := doJSON(t, http.MethodGet, "/api/v1/admin/users", nil)
	require.NoError(t, h.List(c))
	decodeBody(t, rec, &resp)
	require.Equal(t, 2, resp.Total)
	require.Equal(t, models.RoleAdmin, resp.Data[0].Role)
	// A profile without a role row renders as plain user.
	require.Equal(t, models.RoleUser, resp.Data[1].Role)

	// Role equality filter.
	rec, c = doJSON(t, http.MethodGet, "/api/v1/admin/users?role=admin", nil)
	require.NoError(t, h.List(c))
	decodeBody(t, rec, &resp)
	require.Equal(t, 1, resp.Total)
	require.Equal(t, "admin@naturespantry.com", resp.Data[0].Email)

	// Substring search on email or name.
	rec, c = doJSON(t, http.MethodGet, "/api/v1/admin/users?q=carl", nil)
	require.NoError(t, h.List(c))
	decodeBody(t, rec, &resp)
	require.Equal(t, 1, resp.Total)
	require.Equal(t, "customer@example.com", resp.Data[0].Email)
}

func TestAdminSetRoleReplacesExistingRows(t *testing.T) {
	h, db, pub := newUserHandler(t)
	p := seedProfile(t, db, "customer@example.com", "Carl Customer", time.Now())

	require.NoError(t, db.Create(&models.UserRole{UserID: p.UserID, Role: models.RoleUser}).Error)
	require.NoError(t, db.Create(&models.UserRole{UserID: p.UserID, Role: models.RoleModerator}).Error)

	rec, c := doJSON(t, http.MethodPut, "/api/v1/admin/users/"+p.UserID.String()+"/role", map[string]any{
		"role": models.RoleAdmin,
	})
	c.SetParamNames("id")
	c.SetParamValues(p.UserID.String())
	require.NoError(t, h.SetRole(c))
	require.Equal(t, http.StatusOK, rec.Code)

	var roles []models.UserRole
	require.NoError(t, db.Where("user_id = ?", p.UserID).Find(&roles).Error)
	require.Len(t, roles, 1)
	require.Equal(t, models.RoleAdmin, roles[0].Role)

	require.Equal(t, "user_role_updated", pub.events[0]["type"])
}

func TestAdminSetRoleRejectsUnknownRole(t *testing.T) {
	h, db, pub := newUserHandler(t)
	p := seedProfile(t, db, "customer@example.com", "Carl Customer", time.Now())

	_, c := doJSON(t, http.MethodPut, "/api/v1/admin/users/"+p.UserID.String()+"/role", map[string]any{
		"role": "superuser",
	})
	c.SetParamNames("id")
	c.SetParamValues(p.UserID.String())
	require.Error(t, h.SetRole(c))
	require.Empty(t, pub.topics)
}
