package models

type Room struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	Number   string `gorm:"uniqueIndex;size:50" json:"number"`
	Type     string `gorm:"size:50" json:"type"`
	Capacity int    `gorm:"not null" json:"capacity"`

	// Maintained only by RoomService.Allocate/Release, inside the same
	// transaction as the allocation row. 0 <= Occupied <= Capacity.
	Occupied int `gorm:"not null;default:0" json:"occupied"`
}

func (r Room) Vacant() int {
	return r.Capacity - r.Occupied
}
