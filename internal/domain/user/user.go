package user

import (
	"fmt"
	"strings"
	"time"
)

// User is the account aggregate for editors of release content.
// Only staff accounts may mutate releases and notes.
type User struct {
	id           uint
	username     string
	passwordHash string
	isStaff      bool
	createdAt    time.Time
	updatedAt    time.Time
}

// NewUser creates a new account with an already-hashed password.
func NewUser(username, passwordHash string, isStaff bool) (*User, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return nil, fmt.Errorf("username is required")
	}
	if passwordHash == "" {
		return nil, fmt.Errorf("password hash is required")
	}

	now := time.Now()
	return &User{
		username:     username,
		passwordHash: passwordHash,
		isStaff:      isStaff,
		createdAt:    now,
		updatedAt:    now,
	}, nil
}

// ReconstructUser rebuilds an account from persistence.
func ReconstructUser(id uint, username, passwordHash string, isStaff bool, createdAt, updatedAt time.Time) (*User, error) {
	if id == 0 {
		return nil, fmt.Errorf("user ID cannot be zero")
	}
	if username == "" {
		return nil, fmt.Errorf("username is required")
	}

	return &User{
		id:           id,
		username:     username,
		passwordHash: passwordHash,
		isStaff:      isStaff,
		createdAt:    createdAt,
		updatedAt:    updatedAt,
	}, nil
}

func (u *User) ID() uint              { return u.id }
func (u *User) Username() string      { return u.username }
func (u *User) PasswordHash() string  { return u.passwordHash }
func (u *User) IsStaff() bool         { return u.isStaff }
func (u *User) CreatedAt() time.Time  { return u.createdAt }
func (u *User) UpdatedAt() time.Time  { return u.updatedAt }

// SetID assigns the persistence identifier after insert.
func (u *User) SetID(id uint) {
	u.id = id
}

// ChangePassword replaces the stored hash.
func (u *User) ChangePassword(passwordHash string) error {
	if passwordHash == "" {
		return fmt.Errorf("password hash is required")
	}
	u.passwordHash = passwordHash
	u.updatedAt = time.Now()
	return nil
}

// Promote grants staff rights.
func (u *User) Promote() {
	u.isStaff = true
	u.updatedAt = time.Now()
}

// Demote revokes staff rights.
func (u *User) Demote() {
	u.isStaff = false
	u.updatedAt = time.Now()
}
