package configs

import (
	"log"
	"strings"

	"beadcraft/entity"

	"golang.org/x/crypto/bcrypt"
)

// SeedMerchant creates the dashboard account on first boot.
func SeedMerchant() error {
	email := strings.ToLower(strings.TrimSpace(getEnv("MERCHANT_EMAIL", "")))
	pass := getEnv("MERCHANT_PASSWORD", "")
	if email == "" || pass == "" {
		log.Println("skip seeding merchant: missing MERCHANT_EMAIL/MERCHANT_PASSWORD")
		return nil
	}

	var count int64
	db.Model(&entity.Merchant{}).Where("email = ?", email).Count(&count)
	if count > 0 {
		return nil
	}

	hash, _ := bcrypt.GenerateFromPassword([]byte(pass), bcrypt.DefaultCost)
	m := entity.Merchant{Email: email, Password: string(hash), Name: "Merchant"}
	if err := db.Create(&m).Error; err != nil {
		return err
	}
	return db.FirstOrCreate(&entity.AllowedEmail{}, entity.AllowedEmail{Email: email}).Error
}

// SeedAllowedEmails mirrors the ALLOWED_EMAILS env list into the allowlist
// table (comma separated).
func SeedAllowedEmails() error {
	raw := getEnv("ALLOWED_EMAILS", "")
	if raw == "" {
		return nil
	}
	for _, e := range strings.Split(raw, ",") {
		e = strings.ToLower(strings.TrimSpace(e))
		if e == "" {
			continue
		}
		if err := db.FirstOrCreate(&entity.AllowedEmail{}, entity.AllowedEmail{Email: e}).Error; err != nil {
			return err
		}
	}
	return nil
}

// SeedCatalog loads a small starter catalog when the table is empty.
func SeedCatalog() error {
	var count int64
	db.Model(&entity.Product{}).Count(&count)
	if count > 0 {
		return nil
	}

	products := []entity.Product{
		{Name: "Beaded Daisy Bracelet", Description: "Handmade glass bead bracelet with daisy charms", Price: 5900, ImageURL: "/images/daisy-bracelet.jpg", Category: "bracelets", Active: true},
		{Name: "Pearl Drop Earrings", Description: "Freshwater pearl earrings, gold-plated hooks", Price: 8900, ImageURL: "/images/pearl-earrings.jpg", Category: "earrings", Active: true},
		{Name: "Amber Pendant Necklace", Description: "Baltic amber pendant on an adjustable cord", Price: 12900, ImageURL: "/images/amber-necklace.jpg", Category: "necklaces", Active: true},
	}
	return db.Create(&products).Error
}
