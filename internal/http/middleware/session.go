package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/Ainkaran01/Thusha-Shop-sub001/internal/http/sessioncookie"
	"github.com/Ainkaran01/Thusha-Shop-sub001/internal/modules/sessions"
	"github.com/Ainkaran01/Thusha-Shop-sub001/internal/shared/apperr"
)

const CtxKeySession = "session"

// Session binds the request to its shopper session, issuing a signed
// cookie on first visit.
func Session(codec *sessioncookie.Codec, reg *sessions.Registry) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := codec.SessionID(c)
		if !ok {
			id = sessioncookie.NewID()
			codec.Set(c, id)
		}

		s, err := reg.Open(c.Request.Context(), id)
		if err != nil {
			Fail(c, apperr.Wrap(err))
			return
		}
		c.Set(CtxKeySession, s)
		c.Next()
	}
}

func CurrentSession(c *gin.Context) (*sessions.Session, bool) {
	v, ok := c.Get(CtxKeySession)
	if !ok {
		return nil, false
	}
	s, ok := v.(*sessions.Session)
	return s, ok && s != nil
}
