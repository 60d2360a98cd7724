package models

import (
	"time"

	"gorm.io/datatypes"
)

// HostelSetting is a single-row table holding details shown in page
// footers and the payment method choices offered in payment forms.
type HostelSetting struct {
	ID      uint   `gorm:"primaryKey" json:"id"`
	Name    string `gorm:"size:255" json:"name"`
	Address string `gorm:"type:text" json:"address"`
	Phone   string `gorm:"size:50" json:"phone"`
	Email   string `gorm:"size:150" json:"email"`

	// JSON array of method names, e.g. ["Cash","Challan","Bank Transfer"].
	PaymentMethods datatypes.JSON `json:"payment_methods"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
