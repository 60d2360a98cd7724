package models

import "time"

const (
	PaymentPending  = "Pending"
	PaymentApproved = "Approved"
	PaymentRejected = "Rejected"
)

type Payment struct {
	ID        uint    `gorm:"primaryKey" json:"id"`
	StudentID uint    `gorm:"index;not null" json:"student_id"`
	Amount    float64 `gorm:"not null" json:"amount"`
	Method    string  `gorm:"size:50" json:"method"`
	PaidOn    string  `gorm:"size:10" json:"paid_on"`
	Note      string  `gorm:"size:255" json:"note"`

	// Filename under the upload dir; nil when no valid proof was attached.
	ProofPath *string `gorm:"size:255" json:"proof_path,omitempty"`

	Status    string    `gorm:"size:20;default:Pending" json:"status"`
	CreatedAt time.Time `json:"created_at"`

	Student Student `gorm:"foreignKey:StudentID;constraint:OnDelete:CASCADE" json:"-"`
}
