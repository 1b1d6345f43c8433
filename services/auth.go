package services

import (
	"errors"
	"log"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/PiotrO9/elearning/apperrors"
	"github.com/PiotrO9/elearning/config"
	"github.com/PiotrO9/elearning/models"
)

// AuthService owns registration, login and the refresh-credential ledger.
type AuthService struct {
	db        *gorm.DB
	tokens    *TokenService
	saltRound int
}

func NewAuthService(db *gorm.DB, tokens *TokenService, cfg *config.Config) *AuthService {
	return &AuthService{db: db, tokens: tokens, saltRound: cfg.SaltRound}
}

// LoginResult carries both credentials plus the authenticated user.
type LoginResult struct {
	User         *models.User
	AccessToken  string
	RefreshToken string
}

// Register creates a new user with the USER role.
func (s *AuthService) Register(email, username, password string) (*models.User, error) {
	var existing models.User
	err := s.db.Where("email = ? OR username = ?", email, username).First(&existing).Error
	if err == nil {
		return nil, apperrors.Conflict("USER_EXISTS", "User with this email or username already exists")
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), s.saltRound)
	if err != nil {
		log.Printf("Error hashing password: %v", err)
		return nil, apperrors.Internal("Failed to process your request!")
	}

	user := models.User{
		Email:    email,
		Username: username,
		Password: string(hashed),
		Role:     models.RoleUser,
	}
	if err := s.db.Create(&user).Error; err != nil {
		// Unique index backstop for two concurrent registrations.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperrors.Conflict("USER_EXISTS", "User with this email or username already exists")
		}
		return nil, err
	}
	return &user, nil
}

// Login verifies credentials, persists a refresh token and marks the user
// online. Soft-deleted accounts are rejected with a distinct code.
func (s *AuthService) Login(email, password string) (*LoginResult, error) {
	var user models.User
	if err := s.db.Unscoped().Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.Unauthenticated("INVALID_CREDENTIALS", "Invalid credentials")
		}
		return nil, err
	}
	if user.DeletedAt.Valid {
		return nil, apperrors.Forbidden("ACCOUNT_DELETED", "This account has been deleted")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, apperrors.Unauthenticated("INVALID_CREDENTIALS", "Invalid credentials")
	}

	accessToken, err := s.tokens.GenerateAccessToken(user.ID, user.Email, user.Role)
	if err != nil {
		return nil, err
	}
	refreshToken, err := s.tokens.GenerateRefreshToken(user.ID, user.Email, user.Role)
	if err != nil {
		return nil, err
	}

	record := models.RefreshToken{
		Token:     refreshToken,
		UserID:    user.ID,
		ExpiresAt: time.Now().Add(s.tokens.RefreshTTL()),
	}
	if err := s.db.Create(&record).Error; err != nil {
		return nil, err
	}

	now := time.Now()
	if err := s.db.Model(&user).Updates(map[string]interface{}{
		"is_online": true,
		"last_seen": now,
	}).Error; err != nil {
		return nil, err
	}

	return &LoginResult{User: &user, AccessToken: accessToken, RefreshToken: refreshToken}, nil
}

// Refresh exchanges a valid, persisted refresh credential for a new access
// credential. Concurrent refreshes with the same token race safely: the row
// is keyed by token value, and losers simply see it gone.
func (s *AuthService) Refresh(refreshToken string) (string, error) {
	if _, err := s.tokens.VerifyRefreshToken(refreshToken); err != nil {
		return "", apperrors.Unauthenticated("INVALID_TOKEN", "Invalid refresh token")
	}

	var stored models.RefreshToken
	err := s.db.Where("token = ?", refreshToken).First(&stored).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", apperrors.Unauthenticated("TOKEN_EXPIRED", "Refresh token expired or not found")
	}
	if err != nil {
		return "", err
	}
	if stored.ExpiresAt.Before(time.Now()) {
		return "", apperrors.Unauthenticated("TOKEN_EXPIRED", "Refresh token expired or not found")
	}

	var user models.User
	if err := s.db.Unscoped().First(&user, stored.UserID).Error; err != nil {
		return "", err
	}
	if user.DeletedAt.Valid {
		// Revoke eagerly; a deleted account keeps no sessions.
		s.db.Where("token = ?", refreshToken).Delete(&models.RefreshToken{})
		return "", apperrors.Forbidden("ACCOUNT_DELETED", "This account has been deleted")
	}

	return s.tokens.GenerateAccessToken(user.ID, user.Email, user.Role)
}

// Logout revokes a refresh credential. It is idempotent: unknown or already
// revoked tokens are not an error. When the caller is identified, the user is
// also marked offline.
func (s *AuthService) Logout(refreshToken string, userID *uint) error {
	if refreshToken != "" {
		if err := s.db.Where("token = ?", refreshToken).Delete(&models.RefreshToken{}).Error; err != nil {
			return err
		}
	}
	if userID != nil {
		now := time.Now()
		if err := s.db.Model(&models.User{}).Where("id = ?", *userID).Updates(map[string]interface{}{
			"is_online": false,
			"last_seen": now,
		}).Error; err != nil {
			return err
		}
	}
	return nil
}

// Me returns the authenticated user's own record.
func (s *AuthService) Me(userID uint) (*models.User, error) {
	var user models.User
	if err := s.db.First(&user, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("USER_NOT_FOUND", "User not found")
		}
		return nil, err
	}
	return &user, nil
}
