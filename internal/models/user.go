package models

import (
	"strings"
	"time"
)

const (
	RoleAdmin  = "ADMIN"
	RoleCoach  = "COACH"
	RoleMember = "MEMBER"
)

// User is any account known to a gym: admins, coaches and members.
// Rank is never persisted; it is recalculated against the member's
// branch on every read that exposes it. Version guards full-record
// updates against lost writes.
type User struct {
	ID              string    `gorm:"primaryKey" json:"id"`
	Name            string    `gorm:"not null" json:"name"`
	Email           string    `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash    string    `gorm:"not null" json:"-"`
	Role            string    `gorm:"not null;default:MEMBER" json:"role"`
	BranchID        string    `gorm:"not null;index" json:"branchId"`
	AssignedCoachID string    `json:"assignedCoachId,omitempty"`
	AvatarURL       string    `json:"avatarUrl,omitempty"`
	Points          int       `gorm:"not null;default:0" json:"points"`
	StreakDays      int       `gorm:"not null;default:0" json:"streakDays"`
	Version         int       `gorm:"not null;default:1" json:"-"`
	CreatedAt       time.Time `json:"-"`

	Rank int `gorm:"-" json:"rank,omitempty"`
}

func (user *User) IsAdmin() bool {
	return user != nil && user.Role == RoleAdmin
}

func (user *User) IsCoach() bool {
	return user != nil && user.Role == RoleCoach
}

func (user *User) IsMember() bool {
	return user != nil && user.Role == RoleMember
}

func ValidRole(role string) bool {
	switch role {
	case RoleAdmin, RoleCoach, RoleMember:
		return true
	default:
		return false
	}
}

func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
