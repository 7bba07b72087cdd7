package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/rakibul-dev/teastall/internal/models"
	"github.com/rakibul-dev/teastall/internal/security"
)

const (
	// sessionTTL is the fixed session lifetime. Expiry is absolute; lookups
	// never extend it.
	sessionTTL = 24 * time.Hour

	// minPasswordLength is the only password policy enforced.
	minPasswordLength = 6

	// DefaultAdminUsername is the bootstrap account name.
	DefaultAdminUsername = "admin"
)

// Service verifies admin identity and controls bearer-token session lifetime.
type Service struct {
	db *gorm.DB

	// now is injectable for expiry tests.
	now func() time.Time
}

// NewService wires a session service with its database dependency.
func NewService(db *gorm.DB) *Service {
	return &Service{db: db, now: time.Now}
}

// LoginResult carries the outcome of a successful login.
type LoginResult struct {
	Token     string       `json:"token"`
	ExpiresAt time.Time    `json:"expires_at"`
	Admin     models.Admin `json:"admin"`
}

// Login verifies a username/password pair and issues a fresh session.
//
// Prior sessions for the admin are replaced atomically with the new one, so
// at most one current session exists per admin. Unknown usernames and wrong
// passwords fail identically with ErrInvalidCredentials.
func (s *Service) Login(ctx context.Context, username, password string) (*LoginResult, error) {
	var admin models.Admin
	if errFind := s.db.WithContext(ctx).Where("username = ?", username).First(&admin).Error; errFind != nil {
		if errors.Is(errFind, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("auth: look up admin: %w", errFind)
	}

	if !security.CheckPassword(admin.PasswordHash, password) {
		return nil, ErrInvalidCredentials
	}

	token, errToken := security.NewSessionToken()
	if errToken != nil {
		return nil, errToken
	}
	expiresAt := s.now().UTC().Add(sessionTTL)

	session := models.AdminSession{
		AdminID:   admin.ID,
		Token:     token,
		ExpiresAt: expiresAt,
	}
	errTx := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if errDelete := tx.Where("admin_id = ?", admin.ID).Delete(&models.AdminSession{}).Error; errDelete != nil {
			return errDelete
		}
		return tx.Create(&session).Error
	})
	if errTx != nil {
		return nil, fmt.Errorf("auth: replace session: %w", errTx)
	}

	return &LoginResult{Token: token, ExpiresAt: expiresAt, Admin: admin}, nil
}

// Authenticate resolves a bearer token to the owning admin ID. Expired
// sessions fail closed; expiry is checked lazily here, never swept.
func (s *Service) Authenticate(ctx context.Context, token string) (uint64, error) {
	if token == "" {
		return 0, ErrInvalidToken
	}

	var session models.AdminSession
	errFind := s.db.WithContext(ctx).
		Where("token = ? AND expires_at > ?", token, s.now().UTC()).
		First(&session).Error
	if errFind != nil {
		if errors.Is(errFind, gorm.ErrRecordNotFound) {
			return 0, ErrInvalidToken
		}
		return 0, fmt.Errorf("auth: look up session: %w", errFind)
	}
	return session.AdminID, nil
}

// Logout deletes the session matching the token. Deleting a token that no
// longer exists is not an error.
func (s *Service) Logout(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}
	if errDelete := s.db.WithContext(ctx).Where("token = ?", token).Delete(&models.AdminSession{}).Error; errDelete != nil {
		return fmt.Errorf("auth: delete session: %w", errDelete)
	}
	return nil
}

// ChangePassword re-keys an admin's credential and invalidates every session
// except the one identified by currentToken. The digest swap and the session
// prune commit together or not at all.
//
// Callers are expected to treat a successful change as a forced logout and
// drop currentToken client-side.
func (s *Service) ChangePassword(ctx context.Context, adminID uint64, currentToken, currentPassword, newPassword string) error {
	if len(newPassword) < minPasswordLength {
		return ErrPasswordTooShort
	}

	var admin models.Admin
	if errFind := s.db.WithContext(ctx).First(&admin, adminID).Error; errFind != nil {
		if errors.Is(errFind, gorm.ErrRecordNotFound) {
			return ErrInvalidCredentials
		}
		return fmt.Errorf("auth: look up admin: %w", errFind)
	}

	if !security.CheckPassword(admin.PasswordHash, currentPassword) {
		return ErrInvalidCredentials
	}

	newHash, errHash := security.HashPassword(newPassword)
	if errHash != nil {
		return errHash
	}

	errTx := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if errUpdate := tx.Model(&models.Admin{}).
			Where("id = ?", adminID).
			Update("password_hash", newHash).Error; errUpdate != nil {
			return errUpdate
		}
		return tx.Where("admin_id = ? AND token <> ?", adminID, currentToken).
			Delete(&models.AdminSession{}).Error
	})
	if errTx != nil {
		return fmt.Errorf("auth: change password: %w", errTx)
	}
	return nil
}

// EnsureDefaultAdmin provisions the bootstrap admin account when the admins
// table is empty. It is a convenience for first boot, not a security
// boundary; the password must be changed in real deployments.
func (s *Service) EnsureDefaultAdmin(ctx context.Context, password string) error {
	var count int64
	if errCount := s.db.WithContext(ctx).Model(&models.Admin{}).Count(&count).Error; errCount != nil {
		return fmt.Errorf("auth: count admins: %w", errCount)
	}
	if count > 0 {
		return nil
	}

	hash, errHash := security.HashPassword(password)
	if errHash != nil {
		return errHash
	}
	admin := models.Admin{Username: DefaultAdminUsername, PasswordHash: hash}
	if errCreate := s.db.WithContext(ctx).Create(&admin).Error; errCreate != nil {
		return fmt.Errorf("auth: create default admin: %w", errCreate)
	}

	log.Warnf("default admin %q created, change the password in production", DefaultAdminUsername)
	return nil
}
