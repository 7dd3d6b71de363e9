package models

import (
	"strings"
	"time"
)

type UserRole string

const (
	RoleStudent UserRole = "STUDENT"
	RoleTeacher UserRole = "TEACHER"
	RoleAdmin   UserRole = "ADMIN"
)

func (r UserRole) Valid() bool {
	switch r {
	case RoleStudent, RoleTeacher, RoleAdmin:
		return true
	}
	return false
}

// DisplayName returns a human-readable label for the role.
func (r UserRole) DisplayName() string {
	switch r {
	case RoleStudent:
		return "Student"
	case RoleTeacher:
		return "Teacher"
	case RoleAdmin:
		return "Administrator"
	}
	return string(r)
}

type User struct {
	ID        uint     `json:"id" gorm:"primaryKey"`
	Username  string   `json:"username" gorm:"uniqueIndex;not null;size:50"`
	Email     string   `json:"email" gorm:"uniqueIndex;not null;size:255"`
	Password  string   `json:"-" gorm:"not null;size:100"` // bcrypt hash, never the plaintext
	FirstName string   `json:"first_name" gorm:"size:50"`
	LastName  string   `json:"last_name" gorm:"size:50"`
	Role      UserRole `json:"role" gorm:"not null;default:STUDENT;size:20"`
	Active    bool     `json:"active" gorm:"not null;default:true"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Relations
	Events []CalendarEvent `json:"-" gorm:"foreignKey:UserID"`
}

func (u *User) FullName() string {
	return strings.TrimSpace(u.FirstName + " " + u.LastName)
}

func (User) TableName() string {
	return "users"
}
