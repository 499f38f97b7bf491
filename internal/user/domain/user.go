package domain

import (
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/reelmedia/reel/pkg/auth"
)

// User represents a registered account.
type User struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"           json:"id"`
	Username     string    `gorm:"uniqueIndex;not null"           json:"username"`
	PasswordHash string    `gorm:"not null"                       json:"-"`
	Role         auth.Role `gorm:"type:varchar(20);not null"      json:"role"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// TableName sets the users table name.
func (User) TableName() string {
	return "users"
}

// SetPassword hashes and sets the user's password
func (u *User) SetPassword(password string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	u.PasswordHash = string(hash)
	return nil
}

// CheckPassword verifies the user's password
func (u *User) CheckPassword(password string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password))
	return err == nil
}

// Principal returns the auth identity for this user.
func (u *User) Principal() auth.Principal {
	return auth.Principal{
		ID:       u.ID,
		Username: u.Username,
		Role:     u.Role,
	}
}
