package services

import (
	"fmt"
	"time"

	"bagages/internal/config"
	"bagages/internal/domain"
	"bagages/internal/domain/models"
	"bagages/internal/repositories"
	"bagages/internal/utils"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

// TokenTTL is the lifetime of an admin session token.
const TokenTTL = 24 * time.Hour

// CredentialVerifier checks a username/password pair against stored accounts.
// The only implementation compares bcrypt hashes; there is no plaintext path.
type CredentialVerifier interface {
	Verify(username, password string) (models.AdminUser, error)
}

// BcryptVerifier verifies credentials against admin_users bcrypt hashes.
type BcryptVerifier struct {
	AdminRepo repositories.AdminRepository
}

func (v BcryptVerifier) Verify(username, password string) (models.AdminUser, error) {
	admin, err := v.AdminRepo.GetActiveByUsername(username)
	if err != nil {
		if domain.IsNotFound(err) {
			// same message as a wrong password, no account probing
			return models.AdminUser{}, domain.UnauthorizedError{Msg: "identifiants incorrects", Err: err}
		}
		return models.AdminUser{}, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(password)); err != nil {
		return models.AdminUser{}, domain.UnauthorizedError{Msg: "identifiants incorrects", Err: err}
	}
	return admin, nil
}

// AuthService handles admin login and session token issuance.
type AuthService struct {
	AdminRepo repositories.AdminRepository
	Verifier  CredentialVerifier
	Secret    []byte
	RequestID string
}

func (s AuthService) verifier() CredentialVerifier {
	if s.Verifier != nil {
		return s.Verifier
	}
	return BcryptVerifier{AdminRepo: s.AdminRepo}
}

// Login authenticates an admin and returns a signed session token.
func (s AuthService) Login(username, password string) (string, models.AdminUser, error) {
	username = utils.TrimOrEmpty(username)
	if username == "" || password == "" {
		return "", models.AdminUser{}, domain.ValidationError{Msg: "nom d'utilisateur et mot de passe requis"}
	}

	admin, err := s.verifier().Verify(username, password)
	if err != nil {
		if domain.IsUnauthorized(err) {
			utils.LogEvent(s.RequestID, "auth", "login_failed", fmt.Sprintf("username=%s", username))
		}
		return "", models.AdminUser{}, err
	}

	if err := s.AdminRepo.TouchLastLogin(admin.ID); err != nil {
		utils.LogEvent(s.RequestID, "auth", "touch_last_login", fmt.Sprintf("admin_id=%d err=%v", admin.ID, err))
	}

	token, err := s.IssueToken(admin)
	if err != nil {
		return "", models.AdminUser{}, domain.InternalError{Msg: "generation du token", Err: err}
	}

	utils.LogEvent(s.RequestID, "auth", "login", fmt.Sprintf("admin_id=%d username=%s", admin.ID, admin.Username))
	return token, admin, nil
}

// IssueToken signs an HS256 session token for the given admin.
func (s AuthService) IssueToken(admin models.AdminUser) (string, error) {
	claims := jwt.MapClaims{
		"admin_id": admin.ID,
		"username": admin.Username,
		"role":     admin.Role,
		"exp":      time.Now().Add(TokenTTL).Unix(),
		"iat":      time.Now().Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.Secret)
}

// SeedDefaultAdmin creates the bootstrap account when admin_users is empty.
// Credentials come from the environment, with dev defaults.
func (s AuthService) SeedDefaultAdmin(env config.Env) error {
	n, err := s.AdminRepo.Count()
	if err != nil {
		return err
	}
	if n > 0 {
		return nil
	}

	username := env.AdminUsername
	if username == "" {
		username = "admin"
	}
	password := env.AdminPassword
	if password == "" {
		password = "admin123"
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return domain.InternalError{Msg: "hachage du mot de passe", Err: err}
	}

	id, err := s.AdminRepo.Create(models.AdminUser{
		Username:     username,
		PasswordHash: string(hash),
		Email:        "admin@2av-bagages.fr",
		FullName:     "Administrateur Principal",
		Role:         "admin",
		IsActive:     true,
	})
	if err != nil {
		return err
	}

	utils.LogEvent(s.RequestID, "auth", "seed_admin", fmt.Sprintf("admin_id=%d username=%s", id, username))
	return nil
}
