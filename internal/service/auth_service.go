package service

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"portfolio/internal/auth"
	"portfolio/internal/config"
	apperrors "portfolio/internal/errors"
	"portfolio/internal/model"
	"portfolio/internal/repository"
	"portfolio/internal/validation"
)

var (
	// ErrInvalidCredentials is returned when email or password is incorrect.
	ErrInvalidCredentials = apperrors.Unauthorized("Identifiants incorrects")
	// ErrInvalidSession is returned for missing, expired or revoked session tokens.
	ErrInvalidSession = apperrors.Unauthorized("Session invalide ou expirée")
)

// dummyHash stands in for the admin hash when the email is unknown.
var dummyHash, _ = bcrypt.GenerateFromPassword([]byte("portfolio-unknown-admin"), bcrypt.DefaultCost)

// Credentials is the login payload.
type Credentials struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// SessionUser is the public part of the admin identity.
type SessionUser struct {
	Email string `json:"email"`
	Name  string `json:"name"`
}

// Session is the result of a successful login.
type Session struct {
	User  SessionUser `json:"user"`
	Token string      `json:"token"`
	// ExpiresIn is the token lifetime in milliseconds.
	ExpiresIn int64     `json:"expiresIn"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// AuthService handles authentication operations.
type AuthService interface {
	Login(ctx context.Context, creds Credentials) (*Session, error)
	Logout(ctx context.Context, token string) error
	Verify(ctx context.Context, token string) (*auth.Claims, error)
}

type authService struct {
	admins     repository.AdminRepository
	fallback   config.AdminIdentity
	jwtService *auth.JWTService
	tokenStore auth.TokenStoreInterface
	validator  *validation.Validator
	log        *zap.Logger
	compare    func(hash, password []byte) error
}

// NewAuthService creates a new authentication service. fallback is the configured admin
// identity, used when the store cannot be reached.
func NewAuthService(
	admins repository.AdminRepository,
	fallback config.AdminIdentity,
	jwtService *auth.JWTService,
	tokenStore auth.TokenStoreInterface,
	v *validation.Validator,
	l *zap.Logger,
) AuthService {
	return &authService{
		admins:     admins,
		fallback:   fallback,
		jwtService: jwtService,
		tokenStore: tokenStore,
		validator:  v,
		log:        l,
		compare:    bcrypt.CompareHashAndPassword,
	}
}

// Login checks the credentials and issues a 24h session token.
func (s *authService) Login(ctx context.Context, creds Credentials) (*Session, error) {
	if err := s.validator.Struct(&creds); err != nil {
		return nil, err
	}

	admin, err := s.findAdmin(ctx, creds.Email)
	if err == ErrInvalidCredentials {
		_ = s.compare(dummyHash, []byte(creds.Password))
		s.log.Info("login rejected", zap.String("email", creds.Email))
		return nil, err
	}
	if err != nil {
		return nil, err
	}

	if err := s.compare([]byte(admin.PasswordHash), []byte(creds.Password)); err != nil {
		s.log.Info("login rejected", zap.String("email", creds.Email))
		return nil, ErrInvalidCredentials
	}

	token, claims, err := s.jwtService.GenerateSessionToken(admin.Email, admin.Name)
	if err != nil {
		return nil, apperrors.Internal(fmt.Errorf("generate session token: %w", err))
	}

	s.log.Info("admin logged in", zap.String("email", admin.Email))
	return &Session{
		User:      SessionUser{Email: admin.Email, Name: admin.Name},
		Token:     token,
		ExpiresIn: auth.SessionTTL.Milliseconds(),
		ExpiresAt: claims.ExpiresAt.Time,
	}, nil
}

func (s *authService) findAdmin(ctx context.Context, email string) (*model.AdminUser, error) {
	admin, err := s.admins.FindByEmail(ctx, email)
	switch {
	case err == nil:
		return admin, nil
	case apperrors.Is(err, apperrors.KindNotFound):
		return nil, ErrInvalidCredentials
	case apperrors.Is(err, apperrors.KindStoreUnavailable):
		s.log.Warn("store unavailable, checking configured admin", zap.Error(err))
		if email != s.fallback.Email {
			return nil, ErrInvalidCredentials
		}
		return &model.AdminUser{
			Email:        s.fallback.Email,
			PasswordHash: s.fallback.PasswordHash,
			Name:         s.fallback.Name,
		}, nil
	default:
		return nil, err
	}
}

// Logout revokes the token until its natural expiry.
func (s *authService) Logout(ctx context.Context, token string) error {
	claims, err := s.Verify(ctx, token)
	if err != nil {
		return err
	}
	ttl := time.Until(claims.ExpiresAt.Time)
	if err := s.tokenStore.Revoke(ctx, claims.ID, ttl); err != nil {
		return apperrors.Internal(fmt.Errorf("revoke token: %w", err))
	}
	s.log.Info("admin logged out", zap.String("email", claims.Email))
	return nil
}

// Verify returns the claims of a valid, unrevoked session token.
func (s *authService) Verify(ctx context.Context, token string) (*auth.Claims, error) {
	if token == "" {
		return nil, ErrInvalidSession
	}
	claims, err := s.jwtService.ValidateToken(token)
	if err != nil {
		return nil, ErrInvalidSession
	}
	if s.tokenStore.IsRevoked(ctx, claims.ID) {
		return nil, ErrInvalidSession
	}
	return claims, nil
}
