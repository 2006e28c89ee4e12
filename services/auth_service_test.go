package services

import (
	"testing"
	"time"

	"beadcraft/entity"
	"beadcraft/pkg/apperr"
	"beadcraft/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func seedMerchant(t *testing.T, db *gorm.DB, email, password string, allowed bool) {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	require.NoError(t, db.Create(&entity.Merchant{Email: email, Password: string(hash), Name: "Owner"}).Error)
	if allowed {
		require.NoError(t, db.Create(&entity.AllowedEmail{Email: email}).Error)
	}
}

func TestLoginSuccess(t *testing.T) {
	db := newTestDB(t)
	seedMerchant(t, db, "owner@example.com", "s3cret", true)
	svc := NewAuthService(repository.NewMerchantRepository(db), "test-secret", time.Hour)

	token, m, err := svc.Login("Owner@Example.com ", "s3cret")
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Equal(t, "owner@example.com", m.Email)
}

func TestLoginRejectsUnlistedEmail(t *testing.T) {
	db := newTestDB(t)
	// Valid credentials, but the email is not on the allowlist.
	seedMerchant(t, db, "intruder@example.com", "s3cret", false)
	svc := NewAuthService(repository.NewMerchantRepository(db), "test-secret", time.Hour)

	_, _, err := svc.Login("intruder@example.com", "s3cret")
	require.Error(t, err)
	assert.Equal(t, apperr.KindValidation, apperr.KindOf(err))
}

func TestLoginRejectsWrongPassword(t *testing.T) {
	db := newTestDB(t)
	seedMerchant(t, db, "owner@example.com", "s3cret", true)
	svc := NewAuthService(repository.NewMerchantRepository(db), "test-secret", time.Hour)

	_, _, err := svc.Login("owner@example.com", "wrong")
	require.Error(t, err)
}
