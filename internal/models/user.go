package models

import "time"

type User struct {
	ID           string    `gorm:"type:uuid;primaryKey"`
	Username     string    `gorm:"uniqueIndex;not null"`
	Email        string    `gorm:"uniqueIndex;not null"`
	PasswordHash string    `gorm:"not null"`
	CreatedAt    time.Time `gorm:"autoCreateTime"`
}

// DisplayName is what other members see: the username, or the email
// when no username was set.
func (u *User) DisplayName() string {
	if u.Username != "" {
		return u.Username
	}
	return u.Email
}
