package models

import (
	"errors"
	"strings"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// bcryptCost trades hashing time against brute-force resistance.
const bcryptCost = 12

// Profile is the owning identity for all budget data. Every other
// resource is scoped to exactly one profile.
type Profile struct {
	DefaultModel
	Email        string `gorm:"uniqueIndex"`
	PasswordHash string `json:"-"`
}

var (
	ErrProfileEmailNotUnique = errors.New("a profile with this email already exists")
	ErrProfileEmailEmpty     = errors.New("the email must not be empty")
	ErrPasswordTooShort      = errors.New("the password must be at least 8 characters long")
	ErrWrongCredentials      = errors.New("email or password is wrong")
)

func (p *Profile) BeforeSave(_ *gorm.DB) error {
	p.Email = strings.TrimSpace(strings.ToLower(p.Email))

	if p.Email == "" {
		return ErrProfileEmailEmpty
	}

	return nil
}

// SetPassword hashes the password and stores the hash on the profile.
func (p *Profile) SetPassword(password string) error {
	if len(password) < 8 {
		return ErrPasswordTooShort
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return err
	}

	p.PasswordHash = string(hash)
	return nil
}

// CheckPassword verifies the password against the stored hash.
func (p Profile) CheckPassword(password string) error {
	err := bcrypt.CompareHashAndPassword([]byte(p.PasswordHash), []byte(password))
	if err != nil {
		return ErrWrongCredentials
	}

	return nil
}

// ProfileByEmail returns the profile for the email address.
func ProfileByEmail(db *gorm.DB, email string) (Profile, error) {
	var profile Profile
	err := db.Where(&Profile{Email: strings.TrimSpace(strings.ToLower(email))}).First(&profile).Error
	if err != nil {
		return Profile{}, err
	}

	return profile, nil
}
