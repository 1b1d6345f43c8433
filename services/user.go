package services

import (
	"errors"
	"log"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/PiotrO9/elearning/apperrors"
	"github.com/PiotrO9/elearning/config"
	"github.com/PiotrO9/elearning/models"
)

// UserService covers profile management, the admin user listing, soft
// deletion and the role transition authority.
type UserService struct {
	db        *gorm.DB
	saltRound int
}

func NewUserService(db *gorm.DB, cfg *config.Config) *UserService {
	return &UserService{db: db, saltRound: cfg.SaltRound}
}

// GetProfile returns a user's own profile.
func (s *UserService) GetProfile(userID uint) (*models.User, error) {
	var user models.User
	if err := s.db.First(&user, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("USER_NOT_FOUND", "User not found")
		}
		return nil, err
	}
	return &user, nil
}

// UpdateProfile changes username and/or email, guarding uniqueness of both.
func (s *UserService) UpdateProfile(userID uint, username, email *string) (*models.User, error) {
	if username == nil && email == nil {
		return nil, apperrors.Validation("MISSING_FIELDS", "At least one field (username or email) is required")
	}

	var user models.User
	if err := s.db.First(&user, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("USER_NOT_FOUND", "User not found")
		}
		return nil, err
	}

	updates := map[string]interface{}{}
	if email != nil && *email != user.Email {
		var count int64
		if err := s.db.Model(&models.User{}).Where("email = ?", *email).Count(&count).Error; err != nil {
			return nil, err
		}
		if count > 0 {
			return nil, apperrors.Validation("EMAIL_IN_USE", "Email already in use")
		}
		updates["email"] = *email
	}
	if username != nil && *username != user.Username {
		var count int64
		if err := s.db.Model(&models.User{}).Where("username = ?", *username).Count(&count).Error; err != nil {
			return nil, err
		}
		if count > 0 {
			return nil, apperrors.Validation("USERNAME_IN_USE", "Username already in use")
		}
		updates["username"] = *username
	}

	if len(updates) > 0 {
		if err := s.db.Model(&user).Updates(updates).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return nil, apperrors.Validation("EMAIL_IN_USE", "Email or username already in use")
			}
			return nil, err
		}
	}
	return &user, nil
}

// UpdatePassword verifies the current password and stores a new hash.
func (s *UserService) UpdatePassword(userID uint, currentPassword, newPassword string) error {
	if currentPassword == newPassword {
		return apperrors.Validation("SAME_PASSWORD", "New password must be different from current password")
	}

	var user models.User
	if err := s.db.First(&user, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.NotFound("USER_NOT_FOUND", "User not found")
		}
		return err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(currentPassword)); err != nil {
		return apperrors.Validation("INCORRECT_PASSWORD", "Current password is incorrect")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(newPassword), s.saltRound)
	if err != nil {
		log.Printf("Error hashing password: %v", err)
		return apperrors.Internal("Failed to process your request!")
	}
	return s.db.Model(&user).Update("password", string(hashed)).Error
}

// List returns users for the admin view, newest first.
func (s *UserService) List(offset, limit int) ([]models.User, int64, error) {
	var total int64
	if err := s.db.Model(&models.User{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var users []models.User
	query := s.db.Order("created_at desc")
	if limit > 0 {
		query = query.Offset(offset).Limit(limit)
	}
	if err := query.Find(&users).Error; err != nil {
		return nil, 0, err
	}
	return users, total, nil
}

// SoftDelete marks a user deleted. The row is retained; the account becomes
// invisible to authentication and enrollment, and its sessions are revoked.
func (s *UserService) SoftDelete(userID uint) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		var user models.User
		if err := tx.First(&user, userID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.NotFound("USER_NOT_FOUND", "User not found")
			}
			return err
		}
		if err := tx.Delete(&user).Error; err != nil {
			return err
		}
		return tx.Where("user_id = ?", userID).Delete(&models.RefreshToken{}).Error
	})
}

// Status reports whether a user is currently online.
func (s *UserService) Status(userID uint) (bool, error) {
	var user models.User
	if err := s.db.Select("id", "is_online").First(&user, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, apperrors.NotFound("USER_NOT_FOUND", "User not found")
		}
		return false, err
	}
	return user.IsOnline, nil
}

// ChangeRole applies the role transition authority. A change to the current
// role is rejected, not a no-op; everything else is decided by the transition
// table. The guarded update keeps check and write atomic under concurrency.
func (s *UserService) ChangeRole(targetID uint, newRole, requesterRole string) (*models.User, error) {
	if !IsValidRole(newRole) {
		return nil, apperrors.Validation("INVALID_ROLE", "Unknown role")
	}

	var user models.User
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&user, targetID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.NotFound("USER_NOT_FOUND", "User not found")
			}
			return err
		}

		if user.Role == newRole {
			return apperrors.Validation("SAME_ROLE", "User already has this role")
		}
		if !CanChangeRole(requesterRole, user.Role, newRole) {
			return apperrors.Forbidden("INSUFFICIENT_PERMISSIONS", "You are not allowed to perform this role change")
		}

		result := tx.Model(&models.User{}).
			Where("id = ? AND role = ?", targetID, user.Role).
			Update("role", newRole)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			// Role moved under us between read and write.
			return apperrors.Conflict("ROLE_CHANGED", "User role was changed concurrently")
		}
		user.Role = newRole
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &user, nil
}
