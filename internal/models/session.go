package models

import (
	"time"
)

// AccessToken is a persisted session. Only the sha256 digest of the bearer value is stored.
type AccessToken struct {
	ID        uint       `json:"id" gorm:"primaryKey"`
	UserID    uint       `json:"user_id" gorm:"not null;index"`
	Name      string     `json:"name" gorm:"size:255"`
	TokenHash string     `json:"-" gorm:"uniqueIndex;not null;size:64"`
	ExpiresAt *time.Time `json:"expires_at"`
	CreatedAt time.Time  `json:"created_at"`
}

func (AccessToken) TableName() string {
	return "access_tokens"
}

func (t *AccessToken) Expired(now time.Time) bool {
	return t.ExpiresAt != nil && !now.Before(*t.ExpiresAt)
}

// Actor is the authenticated caller of a request. Exactly one of Professor or
// Student is set, matching User.Role.
type Actor struct {
	User      *User      `json:"user"`
	Professor *Professor `json:"professor,omitempty"`
	Student   *Student   `json:"student,omitempty"`
}

func (a *Actor) Role() UserRole {
	if a == nil || a.User == nil {
		return ""
	}
	return a.User.Role
}

func (a *Actor) IsProfessor() bool {
	return a.Role() == RoleProfessor && a.Professor != nil
}

func (a *Actor) IsStudent() bool {
	return a.Role() == RoleStudent && a.Student != nil
}

// UserID returns 0 for an anonymous actor.
func (a *Actor) UserID() uint {
	if a == nil || a.User == nil {
		return 0
	}
	return a.User.ID
}
