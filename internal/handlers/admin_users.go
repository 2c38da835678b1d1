package handlers

import (
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/naturespantry/shop/internal/models"
	"github.com/naturespantry/shop/internal/mykafka"
	"github.com/naturespantry/shop/internal/repository"
)

type AdminUserHandler struct {
	Users    repository.Users
	Producer mykafka.Publisher
}

// profileWithRole is what the users table renders: the profile plus its
// effective role, defaulting to plain user when no role row exists.
type profileWithRole struct {
	models.Profile
	Role string `json:"role"`
}

func validRole(r string) bool {
	switch r {
	case models.RoleAdmin, models.RoleModerator, models.RoleUser:
		return true
	}
	return false
}

func profileMatches(p *models.Profile, q string) bool {
	if q == "" {
		return true
	}
	q = strings.ToLower(q)
	if strings.Contains(strings.ToLower(p.Email), q) {
		return true
	}
	return p.FullName != nil && strings.Contains(strings.ToLower(*p.FullName), q)
}

// List joins profiles with their role rows in-process, then applies the
// search query and role filter.
func (h *AdminUserHandler) List(c echo.Context) error {
	ctx := c.Request().Context()

	profiles, err := h.Users.Profiles(ctx)
	if err != nil {
		return errorResponse(c, http.StatusInternalServerError, err)
	}
	roles, err := h.Users.Roles(ctx)
	if err != nil {
		return errorResponse(c, http.StatusInternalServerError, err)
	}

	roleByUser := make(map[uuid.UUID]string, len(roles))
	for _, r := range roles {
		roleByUser[r.UserID] = r.Role
	}

	q := c.QueryParam("q")
	roleFilter := c.QueryParam("role")

	out := make([]profileWithRole, 0, len(profiles))
	for i := range profiles {
		p := &profiles[i]
		role, ok := roleByUser[p.UserID]
		if !ok {
			role = models.RoleUser
		}
		if !profileMatches(p, q) {
			continue
		}
		if roleFilter != "" && roleFilter != "all" && role != roleFilter {
			continue
		}
		out = append(out, profileWithRole{Profile: *p, Role: role})
	}

	return c.JSON(http.StatusOK, map[string]any{"data": out, "total": len(out)})
}

func (h *AdminUserHandler) Roles(c echo.Context) error {
	roles, err := h.Users.Roles(c.Request().Context())
	if err != nil {
		return errorResponse(c, http.StatusInternalServerError, err)
	}
	return c.JSON(http.StatusOK, map[string]any{"data": roles})
}

// SetRole replaces the user's role rows with the submitted one.
func (h *AdminUserHandler) SetRole(c echo.Context) error {
	userID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return errorResponse(c, http.StatusBadRequest, err)
	}

	var req struct {
		Role string `json:"role"`
	}
	if err := c.Bind(&req); err != nil {
		return errorResponse(c, http.StatusBadRequest, err)
	}
	if !validRole(req.Role) {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid role")
	}

	if err := h.Users.SetRole(c.Request().Context(), userID, req.Role); err != nil {
		return errorResponse(c, http.StatusInternalServerError, err)
	}

	publishEvent(c, h.Producer, "user_events", userID.String(), map[string]any{
		"type":    "user_role_updated",
		"user_id": userID.String(),
		"role":    req.Role,
	})

	return c.JSON(http.StatusOK, Response{Status: "ok", Message: "role updated"})
}
