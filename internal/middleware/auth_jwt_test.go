package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"storefront/internal/config"
	"storefront/internal/middleware"

	"github.com/golang-jwt/jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

const testSecret = "test_secret"

func signToken(t *testing.T, claims jwt.MapClaims, secret string) string {
	t.Helper()
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := tok.SignedString([]byte(secret))
	assert.NoError(t, err)
	return signed
}

func doRequest(authz string) (*httptest.ResponseRecorder, echo.Context) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if authz != "" {
		req.Header.Set("Authorization", authz)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	return rec, c
}

func authMW() echo.MiddlewareFunc {
	return middleware.AuthJWT(config.Config{JWTSecret: testSecret})
}

// Test: 正しいトークンでuser_idとroleがcontextに入る
func TestAuthJWT_ValidToken(t *testing.T) {
	token := signToken(t, jwt.MapClaims{
		"sub":  "42",
		"role": "USER",
		"iat":  time.Now().Unix(),
		"exp":  time.Now().Add(time.Hour).Unix(),
	}, testSecret)

	rec, c := doRequest("Bearer " + token)

	called := false
	h := authMW()(func(c echo.Context) error {
		called = true
		assert.Equal(t, int64(42), c.Get(middleware.CtxUserIDKey))
		assert.Equal(t, "USER", c.Get(middleware.CtxUserRoleKey))
		return c.NoContent(http.StatusOK)
	})

	assert.NoError(t, h(c))
	assert.True(t, called)
	assert.Equal(t, http.StatusOK, rec.Code)
}

// Test: ヘッダ無しは401
func TestAuthJWT_MissingHeader(t *testing.T) {
	rec, c := doRequest("")

	h := authMW()(func(c echo.Context) error {
		t.Fatal("handler should not be called")
		return nil
	})

	assert.NoError(t, h(c))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

// Test: 署名が違えば401
func TestAuthJWT_WrongSecret(t *testing.T) {
	token := signToken(t, jwt.MapClaims{
		"sub":  "42",
		"role": "USER",
		"exp":  time.Now().Add(time.Hour).Unix(),
	}, "other_secret")

	rec, c := doRequest("Bearer " + token)

	h := authMW()(func(c echo.Context) error {
		t.Fatal("handler should not be called")
		return nil
	})

	assert.NoError(t, h(c))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

// Test: 期限切れは401
func TestAuthJWT_ExpiredToken(t *testing.T) {
	token := signToken(t, jwt.MapClaims{
		"sub":  "42",
		"role": "USER",
		"exp":  time.Now().Add(-time.Hour).Unix(),
	}, testSecret)

	rec, c := doRequest("Bearer " + token)

	h := authMW()(func(c echo.Context) error {
		t.Fatal("handler should not be called")
		return nil
	})

	assert.NoError(t, h(c))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

// Test: ADMIN以外はAdminRoleGuardで403
func TestAdminRoleGuard(t *testing.T) {
	e := echo.New()

	run := func(role string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)
		c.Set(middleware.CtxUserIDKey, int64(1))
		c.Set(middleware.CtxUserRoleKey, role)

		h := middleware.AdminRoleGuard()(func(c echo.Context) error {
			return c.NoContent(http.StatusOK)
		})
		_ = h(c)
		return rec
	}

	assert.Equal(t, http.StatusOK, run("ADMIN").Code)
	assert.Equal(t, http.StatusForbidden, run("USER").Code)
}
