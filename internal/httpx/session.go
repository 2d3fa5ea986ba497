package httpx

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/MikeMC777/cafe-orders/internal/user"
)

const (
	SessionCookie = "session"
	principalKey  = "principal"
)

// Verifier resolves a session credential; nil means anonymous.
type Verifier interface {
	Verify(token string) *user.Principal
}

// Session attaches the caller's principal, if any, to the context. An
// invalid or missing cookie is treated as anonymous.
func Session(v Verifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		if tok, err := c.Cookie(SessionCookie); err == nil && tok != "" {
			if p := v.Verify(tok); p != nil {
				c.Set(principalKey, p)
			}
		}
		c.Next()
	}
}

// Principal returns the caller or nil.
func Principal(c *gin.Context) *user.Principal {
	if v, ok := c.Get(principalKey); ok {
		if p, ok := v.(*user.Principal); ok {
			return p
		}
	}
	return nil
}

// CookieOptions controls the session cookie attributes.
type CookieOptions struct {
	MaxAge int
	Secure bool
}

func SetSession(c *gin.Context, token string, o CookieOptions) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(SessionCookie, token, o.MaxAge, "/", "", o.Secure, true)
}

func ClearSession(c *gin.Context, o CookieOptions) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(SessionCookie, "", -1, "/", "", o.Secure, true)
}
