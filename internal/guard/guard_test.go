package guard

import (
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheck(t *testing.T) {
	now := time.Date(2025, 5, 1, 12, 0, 0, 0, time.UTC)
	future := strconv.FormatInt(now.Add(time.Hour).UnixMilli(), 10)
	past := strconv.FormatInt(now.Add(-time.Millisecond).UnixMilli(), 10)

	tests := []struct {
		name   string
		token  string
		expiry string
		want   Decision
	}{
		{"valid session", "tok", future, Allow},
		{"expires exactly now", "tok", strconv.FormatInt(now.UnixMilli(), 10), Allow},
		{"expired", "tok", past, Expired},
		{"no token", "", future, Deny},
		{"no expiry", "tok", "", Deny},
		{"garbage expiry", "tok", "tomorrow", Deny},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Check(tt.token, tt.expiry, now))
		})
	}
}

func TestMiddleware(t *testing.T) {
	now := time.Date(2025, 5, 1, 12, 0, 0, 0, time.UTC)
	future := strconv.FormatInt(now.Add(time.Hour).UnixMilli(), 10)
	past := strconv.FormatInt(now.Add(-time.Hour).UnixMilli(), 10)

	tests := []struct {
		name        string
		cookies     map[string]string
		verify      Verifier
		wantStatus  int
		wantCleared bool
	}{
		{"allowed", map[string]string{TokenCookie: "tok", ExpiryCookie: future}, nil, http.StatusOK, false},
		{"verified", map[string]string{TokenCookie: "tok", ExpiryCookie: future},
			func(echo.Context, string) bool { return true }, http.StatusOK, false},
		{"revoked", map[string]string{TokenCookie: "tok", ExpiryCookie: future},
			func(echo.Context, string) bool { return false }, http.StatusFound, true},
		{"expired", map[string]string{TokenCookie: "tok", ExpiryCookie: past}, nil, http.StatusFound, true},
		{"anonymous", nil, nil, http.StatusFound, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := echo.New()
			req := httptest.NewRequest(http.MethodGet, "/admin/dashboard", nil)
			for name, value := range tt.cookies {
				req.AddCookie(&http.Cookie{Name: name, Value: value})
			}
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			h := Middleware(Config{
				Verify: tt.verify,
				Now:    func() time.Time { return now },
			})(func(c echo.Context) error {
				return c.String(http.StatusOK, "dashboard")
			})

			require.NoError(t, h(c))
			assert.Equal(t, tt.wantStatus, rec.Code)

			cleared := map[string]bool{}
			for _, cookie := range rec.Result().Cookies() {
				if cookie.MaxAge < 0 {
					cleared[cookie.Name] = true
				}
			}
			if tt.wantCleared {
				assert.Equal(t, LoginPath, rec.Header().Get(echo.HeaderLocation))
				assert.True(t, cleared[TokenCookie])
				assert.True(t, cleared[ExpiryCookie])
			} else {
				assert.Equal(t, "dashboard", rec.Body.String())
				assert.Empty(t, cleared)
			}
		})
	}
}

func TestSetCookies(t *testing.T) {
	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodPost, "/api/auth", nil), rec)
	expiresAt := time.Date(2025, 5, 2, 12, 0, 0, 0, time.UTC)

	SetCookies(c, "tok", expiresAt, false)

	cookies := map[string]*http.Cookie{}
	for _, cookie := range rec.Result().Cookies() {
		cookies[cookie.Name] = cookie
	}
	require.Contains(t, cookies, TokenCookie)
	require.Contains(t, cookies, ExpiryCookie)
	assert.True(t, cookies[TokenCookie].HttpOnly)
	assert.Equal(t, strconv.FormatInt(expiresAt.UnixMilli(), 10), cookies[ExpiryCookie].Value)
	assert.Equal(t, Allow, Check(cookies[TokenCookie].Value, cookies[ExpiryCookie].Value, expiresAt.Add(-time.Minute)))
}
