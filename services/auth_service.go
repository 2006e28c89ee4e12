package services

import (
	"strings"
	"time"

	"beadcraft/entity"
	"beadcraft/pkg/apperr"
	"beadcraft/repository"
	"beadcraft/utils"

	"golang.org/x/crypto/bcrypt"
)

type AuthService struct {
	repo      *repository.MerchantRepository
	jwtSecret string
	jwtTTL    time.Duration
}

func NewAuthService(repo *repository.MerchantRepository, secret string, ttl time.Duration) *AuthService {
	return &AuthService{repo: repo, jwtSecret: secret, jwtTTL: ttl}
}

// Login checks credentials AND the email allowlist; a valid password for an
// unlisted email is still refused.
func (s *AuthService) Login(email, password string) (string, *entity.Merchant, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	allowed, err := s.repo.IsEmailAllowed(email)
	if err != nil {
		return "", nil, apperr.Dependency("check allowlist", err)
	}
	if !allowed {
		return "", nil, apperr.Validation("this email is not authorized")
	}

	m, err := s.repo.FindByEmail(email)
	if err != nil {
		return "", nil, apperr.Validation("invalid credentials")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(m.Password), []byte(password)); err != nil {
		return "", nil, apperr.Validation("invalid credentials")
	}

	token, err := utils.GenerateToken(m.ID, m.Email, "merchant", s.jwtSecret, s.jwtTTL)
	if err != nil {
		return "", nil, apperr.Dependency("generate token", err)
	}

	return token, m, nil
}

func (s *AuthService) GetProfile(merchantID uint) (*entity.Merchant, error) {
	m, err := s.repo.FindByID(merchantID)
	if err != nil {
		return nil, apperr.NotFound("merchant not found")
	}
	return m, nil
}
