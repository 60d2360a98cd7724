package models

import "time"

type Student struct {
	ID uint `gorm:"primaryKey" json:"id"`

	// Nullable so admin-created students can exist without a login; the
	// unique index keeps one student per account.
	UserID *uint `gorm:"uniqueIndex;column:user_id" json:"user_id,omitempty"`

	Name       string  `gorm:"size:255" json:"name"`
	Email      *string `gorm:"uniqueIndex;size:150" json:"email,omitempty"`
	Phone      string  `gorm:"size:50" json:"phone"`
	Guardian   string  `gorm:"size:255" json:"guardian"`
	Department string  `gorm:"size:150" json:"department"`
	Batch      string  `gorm:"size:50" json:"batch"`
	Semester   string  `gorm:"size:50" json:"semester"`

	CreatedAt time.Time `json:"created_at"`

	User *User `gorm:"foreignKey:UserID;constraint:OnDelete:SET NULL" json:"-"`
}
