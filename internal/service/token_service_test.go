package service

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/naturespantry/shop/internal/config"
	"github.com/naturespantry/shop/internal/models"
)

func newTokenService(t *testing.T) *TokenService {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, config.Migrate(db))
	return &TokenService{
		DB:            db,
		JWTSecret:     []byte("test-jwt-secret"),
		RefreshSecret: []byte("test-refresh-secret"),
	}
}

func issueRefresh(t *testing.T, svc *TokenService, userID uint, role string) string {
	token, err := SignRefreshToken(userID, role, svc.RefreshSecret)
	require.NoError(t, err)
	require.NoError(t, SaveRefreshToken(svc.DB, token, userID, role))
	return token
}

func authedContext(svc *TokenService, cookies ...*http.Cookie) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/admin/stats", nil)
	for _, ck := range cookies {
		req.AddCookie(ck)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestRotateTokenIssuesNewPair(t *testing.T) {
	svc := newTokenService(t)
	old := issueRefresh(t, svc, 7, models.RoleAdmin)

	access, refresh, claims, err := svc.RotateToken(old)
	require.NoError(t, err)
	require.NotEmpty(t, access)
	require.NotEmpty(t, refresh)
	require.NotEqual(t, old, refresh)
	require.Equal(t, models.RoleAdmin, claims["role"])

	var stored models.RefreshToken
	require.NoError(t, svc.DB.Where("token = ?", refresh).First(&stored).Error)
	require.Equal(t, uint(7), stored.UserID)
}

func TestRotateTokenRejectsRevoked(t *testing.T) {
	svc := newTokenService(t)
	token := issueRefresh(t, svc, 7, models.RoleUser)

	require.NoError(t, svc.DB.Model(&models.RefreshToken{}).
		Where("token = ?", token).
		Update("revoked", true).Error)

	_, _, _, err := svc.RotateToken(token)
	require.Error(t, err)
}

func TestRotateTokenRejectsAccessToken(t *testing.T) {
	svc := newTokenService(t)

	access, err := SignAccessToken(7, models.RoleUser, svc.RefreshSecret)
	require.NoError(t, err)

	_, _, _, err = svc.RotateToken(access)
	require.Error(t, err)
}

func TestAdminMiddlewareAllowsAdmin(t *testing.T) {
	svc := newTokenService(t)

	access, err := SignAccessToken(7, models.RoleAdmin, svc.JWTSecret)
	require.NoError(t, err)

	c, _ := authedContext(svc, &http.Cookie{Name: "accessToken", Value: access})

	called := false
	next := func(c echo.Context) error {
		called = true
		return c.NoContent(http.StatusOK)
	}
	require.NoError(t, svc.AutoRefreshMiddlewareAdmin(next)(c))
	require.True(t, called)
	require.Equal(t, uint(7), c.Get("userID"))
	require.Equal(t, models.RoleAdmin, c.Get("role"))
}

func TestAdminMiddlewareForbidsNonAdmin(t *testing.T) {
	svc := newTokenService(t)

	access, err := SignAccessToken(7, models.RoleUser, svc.JWTSecret)
	require.NoError(t, err)

	c, _ := authedContext(svc, &http.Cookie{Name: "accessToken", Value: access})

	next := func(c echo.Context) error { return c.NoContent(http.StatusOK) }
	err = svc.AutoRefreshMiddlewareAdmin(next)(c)
	require.Error(t, err)
	httpErr, ok := err.(*echo.HTTPError)
	require.True(t, ok)
	require.Equal(t, http.StatusForbidden, httpErr.Code)
}

func TestAdminMiddlewareRotatesExpiredAccess(t *testing.T) {
	svc := newTokenService(t)

	expiredClaims := jwt.MapClaims{
		"sub":  float64(7),
		"role": models.RoleAdmin,
		"exp":  time.Now().Add(-1 * time.Minute).Unix(),
	}
	expired, err := jwt.NewWithClaims(jwt.SigningMethodHS256, expiredClaims).SignedString(svc.JWTSecret)
	require.NoError(t, err)

	refresh := issueRefresh(t, svc, 7, models.RoleAdmin)

	c, rec := authedContext(svc,
		&http.Cookie{Name: "accessToken", Value: expired},
		&http.Cookie{Name: "refreshToken", Value: refresh},
	)

	next := func(c echo.Context) error { return c.NoContent(http.StatusOK) }
	require.NoError(t, svc.AutoRefreshMiddlewareAdmin(next)(c))

	byName := make(map[string]*http.Cookie)
	for _, ck := range rec.Result().Cookies() {
		byName[ck.Name] = ck
	}
	require.Contains(t, byName, "accessToken")
	require.Contains(t, byName, "refreshToken")
	require.NotEqual(t, refresh, byName["refreshToken"].Value)
}

func TestMiddlewareRejectsMissingCookies(t *testing.T) {
	svc := newTokenService(t)

	c, _ := authedContext(svc)
	next := func(c echo.Context) error { return c.NoContent(http.StatusOK) }
	err := svc.AutoRefreshMiddleware(next)(c)
	require.Error(t, err)
	httpErr, ok := err.(*echo.HTTPError)
	require.True(t, ok)
	require.Equal(t, http.StatusUnauthorized, httpErr.Code)
}
