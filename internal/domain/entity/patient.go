package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Patient represents a registered laboratory patient.
//
// Invariant: Remaining = TotalPayment - sum of payments applied.
// PaidAmount is never stored, it is always derived as
// TotalPayment - Remaining.
type Patient struct {
	PatientID    int             `gorm:"column:patient_id;primaryKey;autoIncrement" json:"patient_id"`
	Name         string          `gorm:"type:varchar(255);not null" json:"name"`
	Age          int             `gorm:"not null" json:"age"`
	Phone        string          `gorm:"type:varchar(20)" json:"phone"`
	TotalPayment decimal.Decimal `gorm:"column:total_payment;type:numeric(12,2);not null" json:"total_payment"`
	Remaining    decimal.Decimal `gorm:"type:numeric(12,2);not null" json:"remaining"`
	SecretaryID  *int            `gorm:"column:secertary_id;index" json:"secertary_id,omitempty"`
	NowDate      time.Time       `gorm:"column:now_date;autoCreateTime" json:"now_date"`

	// Relationships
	Secretary *Secretary `gorm:"foreignKey:SecretaryID;references:SecretaryID" json:"secretary,omitempty"`
	Reports   []Report   `gorm:"foreignKey:PatientID;references:PatientID" json:"reports,omitempty"`
}

func (Patient) TableName() string {
	return "patients"
}

// PaidAmount returns how much the patient has already paid.
func (p *Patient) PaidAmount() decimal.Decimal {
	return p.TotalPayment.Sub(p.Remaining)
}
