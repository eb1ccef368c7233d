package handlers

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Ainkaran01/Thusha-Shop-sub001/internal/http/middleware"
	"github.com/Ainkaran01/Thusha-Shop-sub001/internal/http/validation"
	"github.com/Ainkaran01/Thusha-Shop-sub001/internal/modules/sessions"
	"github.com/Ainkaran01/Thusha-Shop-sub001/internal/shared/apperr"
)

var errNoSession = errors.New("handler reached without session middleware")

func currentSession(c *gin.Context) (*sessions.Session, bool) {
	s, ok := middleware.CurrentSession(c)
	if !ok {
		middleware.Fail(c, apperr.Wrap(errNoSession))
		return nil, false
	}
	return s, true
}

// bindJSON decodes the body into dst and fails the request with field
// errors when it does not validate.
func bindJSON(c *gin.Context, dst any) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		middleware.Fail(c, apperr.InvalidErr("Invalid request.", validation.FromBindError(err, dst)).WithCause(err))
		return false
	}
	return true
}

func productIDParam(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("productID"), 10, 64)
	if err != nil || id <= 0 {
		middleware.Fail(c, apperr.InvalidErr("Invalid product id.", map[string]string{"productID": "invalid"}))
		return 0, false
	}
	return id, true
}

func userIDPtr(c *gin.Context) *int64 {
	u, ok := middleware.CurrentUser(c)
	if !ok || u.ID == 0 {
		return nil
	}
	id := u.ID
	return &id
}
