package entity

import (
	"gorm.io/gorm"
)

// AllowedEmail is the dashboard allowlist: a merchant login is refused
// unless its email has a row here, independent of the credential check.
type AllowedEmail struct {
	gorm.Model
	Email string `json:"email" gorm:"uniqueIndex"`
}
