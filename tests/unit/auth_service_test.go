package unit_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"

	"kabataan-backend/internal/config"
	"kabataan-backend/internal/domain"
	"kabataan-backend/internal/repository"
	"kabataan-backend/internal/service/auth"
	"kabataan-backend/tests/mocks"
)

func authTestConfig() *config.Config {
	return &config.Config{
		JWTSecret:        "test-secret",
		JWTAccessExpiry:  15 * time.Minute,
		JWTRefreshExpiry: 7 * 24 * time.Hour,
	}
}

func TestAuthService_Register(t *testing.T) {
	ctx := context.Background()

	input := domain.CreateUserInput{
		Email:    "juan@example.com",
		Password: "password123",
		FullName: "Juan Dela Cruz",
	}

	t.Run("new account starts inactive with user role", func(t *testing.T) {
		userRepo := new(mocks.UserRepository)
		emailSvc := new(mocks.EmailService)
		svc := auth.NewService(userRepo, new(mocks.SessionRepository), emailSvc, authTestConfig(), zerolog.Nop())

		userRepo.On("ExistsByEmail", ctx, input.Email).Return(false, nil).Once()
		userRepo.On("Create", ctx, mock.MatchedBy(func(u *domain.User) bool {
			return u.Email == input.Email && u.Role == "user" && !u.IsActive && u.PasswordHash != input.Password
		})).Return(nil).Once()
		emailSvc.On("SendWelcomeEmail", mock.Anything, input.Email, input.FullName).Return(nil).Maybe()

		created, err := svc.Register(ctx, input)

		assert.NoError(t, err)
		assert.False(t, created.IsActive)
		userRepo.AssertExpectations(t)
	})

	t.Run("duplicate email", func(t *testing.T) {
		userRepo := new(mocks.UserRepository)
		svc := auth.NewService(userRepo, new(mocks.SessionRepository), new(mocks.EmailService), authTestConfig(), zerolog.Nop())

		userRepo.On("ExistsByEmail", ctx, input.Email).Return(true, nil).Once()

		created, err := svc.Register(ctx, input)

		assert.Nil(t, created)
		assert.ErrorIs(t, err, auth.ErrEmailExists)
	})
}

func TestAuthService_Login(t *testing.T) {
	ctx := context.Background()
	hash, _ := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)

	t.Run("inactive account cannot sign in", func(t *testing.T) {
		userRepo := new(mocks.UserRepository)
		svc := auth.NewService(userRepo, new(mocks.SessionRepository), new(mocks.EmailService), authTestConfig(), zerolog.Nop())

		stored := &domain.User{ID: uuid.New(), Email: "juan@example.com", PasswordHash: string(hash), IsActive: false}
		userRepo.On("GetByEmail", ctx, "juan@example.com").Return(stored, nil).Once()

		_, _, err := svc.Login(ctx, domain.LoginInput{Email: "juan@example.com", Password: "password123"})

		assert.ErrorIs(t, err, auth.ErrAccountInactive)
	})

	t.Run("active account gets a token pair", func(t *testing.T) {
		userRepo := new(mocks.UserRepository)
		sessionRepo := new(mocks.SessionRepository)
		svc := auth.NewService(userRepo, sessionRepo, new(mocks.EmailService), authTestConfig(), zerolog.Nop())

		stored := &domain.User{ID: uuid.New(), Email: "juan@example.com", PasswordHash: string(hash), IsActive: true, Role: "user"}
		userRepo.On("GetByEmail", ctx, "juan@example.com").Return(stored, nil).Once()
		sessionRepo.On("Create", ctx, mock.MatchedBy(func(s *repository.Session) bool {
			return s.UserID == stored.ID && s.TokenHash != ""
		})).Return(nil).Once()

		loggedIn, tokens, err := svc.Login(ctx, domain.LoginInput{Email: "juan@example.com", Password: "password123"})

		assert.NoError(t, err)
		assert.Equal(t, stored.ID, loggedIn.ID)
		assert.NotEmpty(t, tokens.AccessToken)
		assert.NotEmpty(t, tokens.RefreshToken)

		claims, err := svc.ValidateAccessToken(tokens.AccessToken)
		assert.NoError(t, err)
		assert.Equal(t, stored.ID, claims.UserID)
	})

	t.Run("wrong password", func(t *testing.T) {
		userRepo := new(mocks.UserRepository)
		svc := auth.NewService(userRepo, new(mocks.SessionRepository), new(mocks.EmailService), authTestConfig(), zerolog.Nop())

		stored := &domain.User{ID: uuid.New(), Email: "juan@example.com", PasswordHash: string(hash), IsActive: true}
		userRepo.On("GetByEmail", ctx, "juan@example.com").Return(stored, nil).Once()

		_, _, err := svc.Login(ctx, domain.LoginInput{Email: "juan@example.com", Password: "wrong"})

		assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
	})
}

func TestAuthService_ValidateAccessToken(t *testing.T) {
	svc := auth.NewService(new(mocks.UserRepository), new(mocks.SessionRepository), new(mocks.EmailService), authTestConfig(), zerolog.Nop())

	_, err := svc.ValidateAccessToken("not-a-jwt")
	assert.ErrorIs(t, err, auth.ErrInvalidToken)
}

func TestAuthService_ResetPassword(t *testing.T) {
	ctx := context.Background()

	t.Run("revokes every session after reset", func(t *testing.T) {
		userRepo := new(mocks.UserRepository)
		sessionRepo := new(mocks.SessionRepository)
		svc := auth.NewService(userRepo, sessionRepo, new(mocks.EmailService), authTestConfig(), zerolog.Nop())

		userID := uuid.New()
		expires := time.Now().Add(30 * time.Minute)
		stored := &domain.User{ID: userID, PasswordResetExpiresAt: &expires}

		userRepo.On("GetUserByResetToken", ctx, "token").Return(stored, nil).Once()
		userRepo.On("Update", ctx, mock.Anything).Return(nil).Once()
		userRepo.On("ClearPasswordResetToken", ctx, userID).Return(nil).Once()
		sessionRepo.On("RevokeAllForUser", ctx, userID).Return(nil).Once()

		err := svc.ResetPassword(ctx, "token", "new-password-123")

		assert.NoError(t, err)
		sessionRepo.AssertExpectations(t)
	})

	t.Run("expired token", func(t *testing.T) {
		userRepo := new(mocks.UserRepository)
		svc := auth.NewService(userRepo, new(mocks.SessionRepository), new(mocks.EmailService), authTestConfig(), zerolog.Nop())

		expired := time.Now().Add(-time.Minute)
		userRepo.On("GetUserByResetToken", ctx, "token").Return(&domain.User{ID: uuid.New(), PasswordResetExpiresAt: &expired}, nil).Once()

		err := svc.ResetPassword(ctx, "token", "new-password-123")

		assert.ErrorIs(t, err, auth.ErrTokenExpired)
	})
}
