package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"portfolio/internal/auth"
	"portfolio/internal/config"
	apperrors "portfolio/internal/errors"
	"portfolio/internal/model"
	"portfolio/internal/repository"
	"portfolio/internal/validation"
)

// MockAdminRepository is a mock implementation of AdminRepository.
type MockAdminRepository struct {
	mock.Mock
}

func (m *MockAdminRepository) FindByEmail(ctx context.Context, email string) (*model.AdminUser, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.AdminUser), args.Error(1)
}

// MockTokenStore is a mock implementation of TokenStoreInterface.
type MockTokenStore struct {
	mock.Mock
}

func (m *MockTokenStore) Revoke(ctx context.Context, tokenID string, ttl time.Duration) error {
	args := m.Called(ctx, tokenID, ttl)
	return args.Error(0)
}

func (m *MockTokenStore) IsRevoked(ctx context.Context, tokenID string) bool {
	args := m.Called(ctx, tokenID)
	return args.Bool(0)
}

func hashPassword(t *testing.T, password string) string {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return string(hash)
}

func newTestAuthService(repo *MockAdminRepository, tokens *MockTokenStore, fallback config.AdminIdentity) AuthService {
	return NewAuthService(repo, fallback, auth.NewJWTService("test-secret"), tokens,
		validation.New(nil), zap.NewNop())
}

func TestAuthService_Login(t *testing.T) {
	hash := hashPassword(t, "password123")
	stored := &model.AdminUser{Email: "admin@gmail.com", PasswordHash: hash, Name: "Administrateur"}
	configured := config.AdminIdentity{Email: "admin@gmail.com", PasswordHash: hash, Name: "Admin (config)"}

	tests := []struct {
		name          string
		creds         Credentials
		setupMock     func(*MockAdminRepository)
		expectedError error
		expectedKind  apperrors.Kind
		expectedName  string
	}{
		{
			name:  "successful login",
			creds: Credentials{Email: "admin@gmail.com", Password: "password123"},
			setupMock: func(m *MockAdminRepository) {
				m.On("FindByEmail", mock.Anything, "admin@gmail.com").Return(stored, nil)
			},
			expectedName: "Administrateur",
		},
		{
			name:  "wrong password",
			creds: Credentials{Email: "admin@gmail.com", Password: "wrong-password"},
			setupMock: func(m *MockAdminRepository) {
				m.On("FindByEmail", mock.Anything, "admin@gmail.com").Return(stored, nil)
			},
			expectedError: ErrInvalidCredentials,
		},
		{
			name:  "unknown email",
			creds: Credentials{Email: "nobody@gmail.com", Password: "password123"},
			setupMock: func(m *MockAdminRepository) {
				m.On("FindByEmail", mock.Anything, "nobody@gmail.com").Return(nil, repository.ErrAdminNotFound)
			},
			expectedError: ErrInvalidCredentials,
		},
		{
			name:  "store unavailable falls back to configured admin",
			creds: Credentials{Email: "admin@gmail.com", Password: "password123"},
			setupMock: func(m *MockAdminRepository) {
				m.On("FindByEmail", mock.Anything, "admin@gmail.com").
					Return(nil, apperrors.StoreUnavailable(errors.New("connection refused")))
			},
			expectedName: "Admin (config)",
		},
		{
			name:  "store unavailable with another email",
			creds: Credentials{Email: "other@gmail.com", Password: "password123"},
			setupMock: func(m *MockAdminRepository) {
				m.On("FindByEmail", mock.Anything, "other@gmail.com").
					Return(nil, apperrors.StoreUnavailable(errors.New("connection refused")))
			},
			expectedError: ErrInvalidCredentials,
		},
		{
			name:         "invalid payload",
			creds:        Credentials{Email: "not-an-email"},
			setupMock:    func(m *MockAdminRepository) {},
			expectedKind: apperrors.KindValidation,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockAdminRepository)
			mockTokenStore := new(MockTokenStore)
			tt.setupMock(mockRepo)

			service := newTestAuthService(mockRepo, mockTokenStore, configured)
			session, err := service.Login(context.Background(), tt.creds)

			switch {
			case tt.expectedError != nil:
				assert.Equal(t, tt.expectedError, err)
				assert.Nil(t, session)
			case tt.expectedKind != apperrors.KindInternal:
				assert.True(t, apperrors.Is(err, tt.expectedKind))
				assert.Nil(t, session)
			default:
				require.NoError(t, err)
				assert.NotEmpty(t, session.Token)
				assert.Equal(t, tt.expectedName, session.User.Name)
				assert.Equal(t, int64(86400000), session.ExpiresIn)
				assert.WithinDuration(t, time.Now().Add(24*time.Hour), session.ExpiresAt, 5*time.Second)
			}

			mockRepo.AssertExpectations(t)
		})
	}
}

func TestAuthService_LoginErrorMessage(t *testing.T) {
	mockRepo := new(MockAdminRepository)
	mockRepo.On("FindByEmail", mock.Anything, "admin@gmail.com").
		Return(&model.AdminUser{Email: "admin@gmail.com", PasswordHash: hashPassword(t, "secret")}, nil)

	service := newTestAuthService(mockRepo, new(MockTokenStore), config.AdminIdentity{})
	_, err := service.Login(context.Background(), Credentials{Email: "admin@gmail.com", Password: "nope"})

	require.Error(t, err)
	assert.Equal(t, "Identifiants incorrects", err.Error())
	assert.True(t, apperrors.Is(err, apperrors.KindUnauthorized))
}

func TestAuthService_LoginComparesPasswordForUnknownEmail(t *testing.T) {
	tests := []struct {
		name string
		err  error
	}{
		{name: "unknown email", err: repository.ErrAdminNotFound},
		{name: "store unavailable with another email", err: apperrors.StoreUnavailable(errors.New("connection refused"))},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockAdminRepository)
			mockRepo.On("FindByEmail", mock.Anything, "nobody@gmail.com").Return(nil, tt.err)

			svc := newTestAuthService(mockRepo, new(MockTokenStore),
				config.AdminIdentity{Email: "admin@gmail.com", PasswordHash: hashPassword(t, "secret")}).(*authService)
			var hashes [][]byte
			svc.compare = func(hash, password []byte) error {
				hashes = append(hashes, hash)
				return bcrypt.CompareHashAndPassword(hash, password)
			}

			_, err := svc.Login(context.Background(), Credentials{Email: "nobody@gmail.com", Password: "secret"})
			assert.Equal(t, ErrInvalidCredentials, err)
			require.Len(t, hashes, 1)
			assert.NotEmpty(t, dummyHash)
			assert.Equal(t, dummyHash, hashes[0])
		})
	}
}

func TestAuthService_LogoutRevokesToken(t *testing.T) {
	mockRepo := new(MockAdminRepository)
	mockRepo.On("FindByEmail", mock.Anything, "admin@gmail.com").
		Return(&model.AdminUser{Email: "admin@gmail.com", PasswordHash: hashPassword(t, "secret"), Name: "A"}, nil)
	mockTokenStore := new(MockTokenStore)

	service := newTestAuthService(mockRepo, mockTokenStore, config.AdminIdentity{})
	session, err := service.Login(context.Background(), Credentials{Email: "admin@gmail.com", Password: "secret"})
	require.NoError(t, err)

	mockTokenStore.On("IsRevoked", mock.Anything, mock.AnythingOfType("string")).Return(false).Once()
	mockTokenStore.On("Revoke", mock.Anything, mock.AnythingOfType("string"),
		mock.MatchedBy(func(ttl time.Duration) bool {
			return ttl > 23*time.Hour && ttl <= 24*time.Hour
		})).Return(nil)
	require.NoError(t, service.Logout(context.Background(), session.Token))

	mockTokenStore.On("IsRevoked", mock.Anything, mock.AnythingOfType("string")).Return(true)
	_, err = service.Verify(context.Background(), session.Token)
	assert.Equal(t, ErrInvalidSession, err)

	mockTokenStore.AssertExpectations(t)
}

func TestAuthService_Verify(t *testing.T) {
	mockTokenStore := new(MockTokenStore)
	service := newTestAuthService(new(MockAdminRepository), mockTokenStore, config.AdminIdentity{})

	for _, token := range []string{"", "garbage"} {
		_, err := service.Verify(context.Background(), token)
		assert.Equal(t, ErrInvalidSession, err)
	}
	mockTokenStore.AssertNotCalled(t, "IsRevoked", mock.Anything, mock.Anything)
}
