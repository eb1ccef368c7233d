package middleware

import (
	"bytes"
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"github.com/Ainkaran01/Thusha-Shop-sub001/internal/backend"
	"github.com/Ainkaran01/Thusha-Shop-sub001/internal/shared/apperr"
)

const (
	CtxKeyUser      = "user"
	AccessTokenName = "access_token"
)

const (
	RoleCustomer     = "customer"
	RoleAdmin        = "admin"
	RoleManufacturer = "manufacturer"
	RoleDelivery     = "delivery"
	RoleDoctor       = "doctor"
)

var ErrInvalidToken = errors.New("invalid access token")

// ContextUser is the caller identified by the bearer token.
type ContextUser struct {
	ID    int64
	Email string
	Role  string
	Token string
	// Verified is set when the token signature was checked locally.
	Verified bool
}

func (u ContextUser) IsStaff() bool {
	switch u.Role {
	case RoleAdmin, RoleManufacturer, RoleDelivery:
		return true
	default:
		return false
	}
}

// Claims is the access token payload issued by the backend.
type Claims struct {
	UserID userID `json:"user_id"`
	Email  string `json:"email,omitempty"`
	Role   string `json:"role,omitempty"`
	jwt.RegisteredClaims
}

// userID accepts the id as a JSON number or string.
type userID int64

func (u *userID) UnmarshalJSON(data []byte) error {
	data = bytes.Trim(bytes.TrimSpace(data), `"`)
	if len(data) == 0 || string(data) == "null" {
		*u = 0
		return nil
	}
	n, err := strconv.ParseInt(string(data), 10, 64)
	if err != nil {
		return err
	}
	*u = userID(n)
	return nil
}

type AuthCfg struct {
	// Secret verifies HS256 signatures. Empty trusts the backend and only
	// decodes the token.
	Secret []byte
	Now    func() time.Time
}

// Auth identifies the caller from the Authorization header or the
// access_token cookie and forwards the token to backend calls. Requests
// without a token continue anonymously; a bad token is rejected.
func Auth(cfg AuthCfg) gin.HandlerFunc {
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	return func(c *gin.Context) {
		tok := bearerToken(c)
		if tok == "" {
			c.Next()
			return
		}

		claims, err := ParseToken(tok, cfg.Secret, cfg.Now())
		if err != nil {
			Fail(c, apperr.UnauthorizedErr("Your session has expired. Please sign in again.").WithCause(err))
			return
		}

		c.Set(CtxKeyUser, ContextUser{
			ID:       int64(claims.UserID),
			Email:    claims.Email,
			Role:     claims.Role,
			Token:    tok,
			Verified: len(cfg.Secret) > 0,
		})
		c.Request = c.Request.WithContext(backend.WithToken(c.Request.Context(), tok))
		c.Next()
	}
}

// ParseToken validates tok and returns its claims.
func ParseToken(tok string, secret []byte, now time.Time) (*Claims, error) {
	claims := &Claims{}
	if len(secret) == 0 {
		if _, _, err := jwt.NewParser().ParseUnverified(tok, claims); err != nil {
			return nil, errors.Join(ErrInvalidToken, err)
		}
		if claims.ExpiresAt != nil && !now.Before(claims.ExpiresAt.Time) {
			return nil, errors.Join(ErrInvalidToken, jwt.ErrTokenExpired)
		}
	} else {
		parser := jwt.NewParser(
			jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
			jwt.WithTimeFunc(func() time.Time { return now }),
		)
		_, err := parser.ParseWithClaims(tok, claims, func(*jwt.Token) (any, error) { return secret, nil })
		if err != nil {
			return nil, errors.Join(ErrInvalidToken, err)
		}
	}
	if claims.UserID == 0 {
		return nil, errors.Join(ErrInvalidToken, errors.New("missing user_id"))
	}
	return claims, nil
}

func bearerToken(c *gin.Context) string {
	if h := c.GetHeader("Authorization"); h != "" {
		scheme, tok, ok := strings.Cut(h, " ")
		if ok && strings.EqualFold(scheme, "Bearer") {
			return strings.TrimSpace(tok)
		}
		return ""
	}
	if v, err := c.Cookie(AccessTokenName); err == nil {
		return v
	}
	return ""
}

func CurrentUser(c *gin.Context) (ContextUser, bool) {
	v, ok := c.Get(CtxKeyUser)
	if !ok {
		return ContextUser{}, false
	}
	u, ok := v.(ContextUser)
	return u, ok
}

// RequireAuth rejects anonymous requests with 401.
func RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := CurrentUser(c); !ok {
			Fail(c, apperr.UnauthorizedErr("Please sign in to continue."))
			return
		}
		c.Next()
	}
}

// RequireStaff allows admin, manufacturer and delivery roles.
func RequireStaff() gin.HandlerFunc {
	return func(c *gin.Context) {
		u, ok := CurrentUser(c)
		if !ok {
			Fail(c, apperr.UnauthorizedErr("Please sign in to continue."))
			return
		}
		if !u.IsStaff() {
			Fail(c, apperr.ForbiddenErr("You do not have access to the order dashboard."))
			return
		}
		c.Next()
	}
}

// RequireVerified guards routes the backend never sees. Claims decoded
// without a secret are not trusted there.
func RequireVerified() gin.HandlerFunc {
	return func(c *gin.Context) {
		u, ok := CurrentUser(c)
		if !ok {
			Fail(c, apperr.UnauthorizedErr("Please sign in to continue."))
			return
		}
		if !u.Verified {
			Fail(c, apperr.ForbiddenErr("This action requires a verified session."))
			return
		}
		c.Next()
	}
}
