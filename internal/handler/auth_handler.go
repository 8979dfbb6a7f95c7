package handler

import (
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"portfolio/internal/guard"
	"portfolio/internal/service"
)

// AuthHandler handles authentication endpoints.
type AuthHandler struct {
	authService   service.AuthService
	secureCookies bool
}

// NewAuthHandler creates a new auth handler. secureCookies marks session cookies Secure.
func NewAuthHandler(authService service.AuthService, secureCookies bool) *AuthHandler {
	return &AuthHandler{authService: authService, secureCookies: secureCookies}
}

// SessionResponse describes the current session.
type SessionResponse struct {
	Authenticated bool                 `json:"authenticated"`
	User          *service.SessionUser `json:"user,omitempty"`
	ExpiresAt     *time.Time           `json:"expiresAt,omitempty"`
}

// Login godoc
// @Summary Admin login
// @Description Issues a session token valid for 24 hours and stores it in the admin-token cookies.
// @Tags auth
// @Accept json
// @Produce json
// @Param request body service.Credentials true "Login credentials"
// @Success 200 {object} service.Session
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 429 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /auth [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req service.Credentials
	if err := c.Bind(&req); err != nil {
		return errInvalidBody
	}

	session, err := h.authService.Login(c.Request().Context(), req)
	if err != nil {
		return err
	}

	guard.SetCookies(c, session.Token, session.ExpiresAt, h.secureCookies)
	return c.JSON(http.StatusOK, session)
}

// Logout godoc
// @Summary Admin logout
// @Description Revokes the session token and clears the session cookies.
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} MessageResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /auth/logout [post]
func (h *AuthHandler) Logout(c echo.Context) error {
	guard.ClearCookies(c, h.secureCookies)
	if err := h.authService.Logout(c.Request().Context(), sessionToken(c)); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, MessageResponse{Message: "Déconnexion réussie"})
}

// Session godoc
// @Summary Current session
// @Description Checks the bearer token or the admin-token cookie.
// @Tags auth
// @Produce json
// @Success 200 {object} SessionResponse
// @Router /auth/session [get]
func (h *AuthHandler) Session(c echo.Context) error {
	claims, err := h.authService.Verify(c.Request().Context(), sessionToken(c))
	if err != nil {
		guard.ClearCookies(c, h.secureCookies)
		return c.JSON(http.StatusOK, SessionResponse{Authenticated: false})
	}
	expiresAt := claims.ExpiresAt.Time
	return c.JSON(http.StatusOK, SessionResponse{
		Authenticated: true,
		User:          &service.SessionUser{Email: claims.Email, Name: claims.Name},
		ExpiresAt:     &expiresAt,
	})
}

// VerifySession reports whether token is a valid session. It backs the admin view guard.
func (h *AuthHandler) VerifySession(c echo.Context, token string) bool {
	_, err := h.authService.Verify(c.Request().Context(), token)
	return err == nil
}

// sessionToken reads the bearer token, falling back to the session cookie.
func sessionToken(c echo.Context) string {
	if token, ok := bearerToken(c.Request().Header.Get(echo.HeaderAuthorization)); ok {
		return token
	}
	if cookie, err := c.Cookie(guard.TokenCookie); err == nil {
		return cookie.Value
	}
	return ""
}

// bearerToken extracts the token from an Authorization header value.
func bearerToken(header string) (string, bool) {
	const prefix = "Bearer "
	if len(header) <= len(prefix) || !strings.EqualFold(header[:len(prefix)], prefix) {
		return "", false
	}
	return strings.TrimSpace(header[len(prefix):]), true
}
