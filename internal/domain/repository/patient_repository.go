package repository

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/medilab/lab-api/internal/domain/entity"
)

type PatientRepository interface {
	Create(db *gorm.DB, patient *entity.Patient) error
	FindAll(db *gorm.DB) ([]entity.Patient, error)
	FindByID(db *gorm.DB, id int) (*entity.Patient, error)
	Update(db *gorm.DB, patient *entity.Patient) error
	// Delete returns the number of rows removed so callers can tell
	// "deleted" apart from "was never there".
	Delete(db *gorm.DB, id int) (int64, error)
	// ApplyPayment decrements remaining by amount in a single UPDATE
	// expression. Returns affected rows (0 = patient not found).
	ApplyPayment(db *gorm.DB, id int, amount decimal.Decimal) (int64, error)
	// FindWithoutReports returns patients that have no report row yet,
	// newest registration first.
	FindWithoutReports(db *gorm.DB) ([]entity.Patient, error)
	CountAll(db *gorm.DB) (int64, error)
	CountWithoutReports(db *gorm.DB) (int64, error)
}
