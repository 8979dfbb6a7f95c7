// Package guard gates the admin views on the session cookies set at login.
package guard

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
)

// Cookie names mirror the keys the admin client keeps its session under.
const (
	TokenCookie  = "admin-token"
	ExpiryCookie = "admin-token-expiry"
)

// LoginPath is where rejected viewers are sent.
const LoginPath = "/admin/login"

// Decision is the outcome of a session check.
type Decision int

const (
	Allow Decision = iota
	Deny
	Expired
)

func (d Decision) String() string {
	switch d {
	case Allow:
		return "allow"
	case Expired:
		return "expired"
	default:
		return "deny"
	}
}

// Check decides whether a client-held session may open an admin view. expiry is the
// expiration instant in unix milliseconds as stored by the client; an unparsable value
// counts as missing.
func Check(token, expiry string, now time.Time) Decision {
	if token == "" || expiry == "" {
		return Deny
	}
	ms, err := strconv.ParseInt(expiry, 10, 64)
	if err != nil {
		return Deny
	}
	if now.UnixMilli() > ms {
		return Expired
	}
	return Allow
}

// Verifier confirms a token server-side (signature, expiry, revocation).
type Verifier func(c echo.Context, token string) bool

// Config configures Middleware.
type Config struct {
	// Skipper defines a function to skip middleware.
	Skipper func(c echo.Context) bool
	// Verify, when set, is consulted after Check allows the request.
	Verify Verifier
	// Now defaults to time.Now.
	Now func() time.Time
	// Secure marks cleared cookies Secure.
	Secure bool
}

// Middleware redirects to LoginPath and clears both cookies unless the session is valid.
func Middleware(cfg Config) echo.MiddlewareFunc {
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if cfg.Skipper != nil && cfg.Skipper(c) {
				return next(c)
			}

			token := cookieValue(c, TokenCookie)
			decision := Check(token, cookieValue(c, ExpiryCookie), cfg.Now())
			if decision == Allow && cfg.Verify != nil && !cfg.Verify(c, token) {
				decision = Deny
			}
			if decision != Allow {
				ClearCookies(c, cfg.Secure)
				return c.Redirect(http.StatusFound, LoginPath)
			}
			return next(c)
		}
	}
}

// SetCookies stores the session on the client.
func SetCookies(c echo.Context, token string, expiresAt time.Time, secure bool) {
	c.SetCookie(&http.Cookie{
		Name:     TokenCookie,
		Value:    token,
		Path:     "/",
		Expires:  expiresAt,
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
	})
	// Readable by the admin client to schedule its own expiry check.
	c.SetCookie(&http.Cookie{
		Name:     ExpiryCookie,
		Value:    strconv.FormatInt(expiresAt.UnixMilli(), 10),
		Path:     "/",
		Expires:  expiresAt,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
	})
}

// ClearCookies removes both session cookies.
func ClearCookies(c echo.Context, secure bool) {
	for _, name := range []string{TokenCookie, ExpiryCookie} {
		c.SetCookie(&http.Cookie{
			Name:     name,
			Value:    "",
			Path:     "/",
			MaxAge:   -1,
			Expires:  time.Unix(0, 0),
			HttpOnly: name == TokenCookie,
			Secure:   secure,
			SameSite: http.SameSiteLaxMode,
		})
	}
}

func cookieValue(c echo.Context, name string) string {
	cookie, err := c.Cookie(name)
	if err != nil {
		return ""
	}
	return cookie.Value
}
