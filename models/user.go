package models

import "time"

const (
	RoleAdmin   = "admin"
	RoleStudent = "student"
)

type User struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Username     string    `gorm:"uniqueIndex;size:150" json:"username"`
	PasswordHash string    `gorm:"size:255" json:"-"` // bcrypt hash, never returned
	Role         string    `gorm:"size:20;default:student" json:"role"`
	CreatedAt    time.Time `json:"created_at"`
}
