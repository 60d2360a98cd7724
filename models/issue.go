package models

import "time"

const (
	IssueOpen   = "open"
	IssueClosed = "closed"
)

type Issue struct {
	ID uint `gorm:"primaryKey" json:"id"`

	// Nullable: admins can log issues with no student attached, and
	// deleting a student detaches rather than deletes their issues.
	StudentID *uint `gorm:"index" json:"student_id,omitempty"`

	Title     string    `gorm:"size:255;not null" json:"title"`
	Detail    string    `gorm:"type:text" json:"detail"`
	Status    string    `gorm:"size:20;default:open" json:"status"`
	CreatedAt time.Time `json:"created_at"`

	Student *Student `gorm:"foreignKey:StudentID;constraint:OnDelete:SET NULL" json:"-"`
}
