package models

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// sessionLifetime is how long a session token stays valid.
const sessionLifetime = 30 * 24 * time.Hour

// Session is an opaque bearer token resolving to a profile.
type Session struct {
	Timestamps
	Token     uuid.UUID `gorm:"primaryKey"`
	ProfileID uuid.UUID
	Profile   Profile `json:"-"`
	ExpiresAt time.Time
}

var ErrNoSession = errors.New("you are not logged in")

func (s *Session) BeforeCreate(_ *gorm.DB) error {
	if s.Token == uuid.Nil {
		s.Token = uuid.New()
	}

	if s.ExpiresAt.IsZero() {
		s.ExpiresAt = time.Now().In(time.UTC).Add(sessionLifetime)
	}

	return nil
}

// NewSession creates a session for the profile.
func NewSession(db *gorm.DB, profileID uuid.UUID) (Session, error) {
	session := Session{ProfileID: profileID}
	err := db.Create(&session).Error
	if err != nil {
		return Session{}, err
	}

	return session, nil
}

// ResolveSession returns the profile ID for an unexpired session token.
func ResolveSession(db *gorm.DB, token uuid.UUID) (uuid.UUID, error) {
	var session Session
	err := db.First(&session, "token = ?", token).Error
	if err != nil {
		if errors.Is(err, ErrResourceNotFound) {
			return uuid.Nil, ErrNoSession
		}
		return uuid.Nil, err
	}

	if session.ExpiresAt.Before(time.Now()) {
		// Expired tokens are removed so the table does not grow forever
		_ = db.Delete(&session).Error
		return uuid.Nil, ErrNoSession
	}

	return session.ProfileID, nil
}

// DeleteSession invalidates the session token.
func DeleteSession(db *gorm.DB, token uuid.UUID) error {
	return db.Delete(&Session{}, "token = ?", token).Error
}
