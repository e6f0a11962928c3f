package web

import (
	"github.com/gin-gonic/gin"

	"github.com/pr-poehali-dev/hundai-parts-catalog/internal/storefront/session"
)

const ctxKeySession = "storefront_session"

// WithSession attaches the visitor's session to the context, minting a
// new one (and its signed cookie) when the cookie is missing or fails
// verification.
func WithSession(store *session.Store, codec *session.Codec) gin.HandlerFunc {
	return func(c *gin.Context) {
		var sess *session.Session

		if id, ok := codec.GetSessionID(c); ok {
			sess, ok = store.Get(id)
			if !ok {
				sess = nil // process restarted; the old id points nowhere
			}
		}
		if sess == nil {
			sess = store.Create()
			codec.Set(c, sess.ID)
		}

		c.Set(ctxKeySession, sess)
		c.Next()
	}
}

func CurrentSession(c *gin.Context) *session.Session {
	v, _ := c.Get(ctxKeySession)
	s, _ := v.(*session.Session)
	return s
}
