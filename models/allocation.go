package models

import "time"

const (
	AllocationActive   = "active"
	AllocationReleased = "released"
)

type Allocation struct {
	ID        uint `gorm:"primaryKey" json:"id"`
	StudentID uint `gorm:"index;not null" json:"student_id"`
	RoomID    uint `gorm:"index;not null" json:"room_id"`

	// Dates are YYYY-MM-DD strings, same as the rest of the schema.
	StartDate string  `gorm:"size:10" json:"start_date"`
	EndDate   *string `gorm:"size:10" json:"end_date,omitempty"`

	Status    string    `gorm:"size:20;default:active" json:"status"`
	CreatedAt time.Time `json:"created_at"`

	Student Student `gorm:"foreignKey:StudentID;constraint:OnDelete:CASCADE" json:"-"`
	Room    Room    `gorm:"foreignKey:RoomID;constraint:OnDelete:CASCADE" json:"-"`
}
