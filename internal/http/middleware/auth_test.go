package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Ainkaran01/Thusha-Shop-sub001/internal/backend"
)

var testNow = time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

func signToken(t *testing.T, secret string, claims jwt.MapClaims) string {
	t.Helper()
	tok, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)
	return tok
}

func TestParseTokenVerified(t *testing.T) {
	tok := signToken(t, "s3cret", jwt.MapClaims{
		"user_id": 42,
		"role":    "admin",
		"exp":     testNow.Add(time.Hour).Unix(),
	})

	claims, err := ParseToken(tok, []byte("s3cret"), testNow)
	require.NoError(t, err)
	assert.Equal(t, userID(42), claims.UserID)
	assert.Equal(t, "admin", claims.Role)

	_, err = ParseToken(tok, []byte("wrong"), testNow)
	assert.ErrorIs(t, err, ErrInvalidToken)

	_, err = ParseToken(tok, []byte("s3cret"), testNow.Add(2*time.Hour))
	assert.ErrorIs(t, err, jwt.ErrTokenExpired)
}

func TestParseTokenUnverified(t *testing.T) {
	tok := signToken(t, "backend-only", jwt.MapClaims{
		"user_id": "7",
		"exp":     testNow.Add(time.Minute).Unix(),
	})

	claims, err := ParseToken(tok, nil, testNow)
	require.NoError(t, err)
	assert.Equal(t, userID(7), claims.UserID)

	_, err = ParseToken(tok, nil, testNow.Add(time.Hour))
	assert.ErrorIs(t, err, ErrInvalidToken)

	_, err = ParseToken("not.a.token", nil, testNow)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestParseTokenRequiresUserID(t *testing.T) {
	tok := signToken(t, "s", jwt.MapClaims{"role": "customer"})
	_, err := ParseToken(tok, []byte("s"), testNow)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func authRouter(secret string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(RequestID(), ErrorHandler(discardLogger()), Auth(AuthCfg{Secret: []byte(secret), Now: func() time.Time { return testNow }}))
	r.GET("/open", func(c *gin.Context) {
		u, ok := CurrentUser(c)
		c.JSON(http.StatusOK, gin.H{"authed": ok, "id": u.ID, "token": backend.TokenFrom(c.Request.Context())})
	})
	r.GET("/mine", RequireAuth(), func(c *gin.Context) { c.Status(http.StatusNoContent) })
	r.GET("/staff", RequireStaff(), func(c *gin.Context) { c.Status(http.StatusNoContent) })
	r.GET("/verified", RequireStaff(), RequireVerified(), func(c *gin.Context) { c.Status(http.StatusNoContent) })
	return r
}

func TestAuthMiddleware(t *testing.T) {
	r := authRouter("s")
	customer := signToken(t, "s", jwt.MapClaims{"user_id": 1, "role": "customer"})
	admin := signToken(t, "s", jwt.MapClaims{"user_id": 2, "role": "admin"})

	do := func(path, header string, cookie string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		if header != "" {
			req.Header.Set("Authorization", header)
		}
		if cookie != "" {
			req.AddCookie(&http.Cookie{Name: AccessTokenName, Value: cookie})
		}
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		return w
	}

	w := do("/open", "", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"authed":false,"id":0,"token":""}`, w.Body.String())

	w = do("/open", "", customer)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"authed":true`)
	assert.Contains(t, w.Body.String(), customer)

	assert.Equal(t, http.StatusUnauthorized, do("/open", "Bearer garbage", "").Code)
	assert.Equal(t, http.StatusUnauthorized, do("/mine", "", "").Code)
	assert.Equal(t, http.StatusNoContent, do("/mine", "Bearer "+customer, "").Code)
	assert.Equal(t, http.StatusForbidden, do("/staff", "Bearer "+customer, "").Code)
	assert.Equal(t, http.StatusNoContent, do("/staff", "Bearer "+admin, "").Code)
}

func TestIsStaff(t *testing.T) {
	for _, role := range []string{RoleAdmin, RoleManufacturer, RoleDelivery} {
		assert.True(t, ContextUser{Role: role}.IsStaff(), role)
	}
	for _, role := range []string{RoleCustomer, RoleDoctor, ""} {
		assert.False(t, ContextUser{Role: role}.IsStaff(), role)
	}
}

func TestRequireVerifiedRejectsUnsignedClaims(t *testing.T) {
	forged := signToken(t, "attacker", jwt.MapClaims{"user_id": 9, "role": "admin"})
	get := func(r *gin.Engine, path string) int {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		req.Header.Set("Authorization", "Bearer "+forged)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		return w.Code
	}

	open := authRouter("")
	assert.Equal(t, http.StatusNoContent, get(open, "/staff"))
	assert.Equal(t, http.StatusForbidden, get(open, "/verified"))

	signed := signToken(t, "s", jwt.MapClaims{"user_id": 2, "role": "admin"})
	req := httptest.NewRequest(http.MethodGet, "/verified", nil)
	req.Header.Set("Authorization", "Bearer "+signed)
	w := httptest.NewRecorder()
	authRouter("s").ServeHTTP(w, req)
	assert.Equal(t, http.StatusNoContent, w.Code)
}
