package repository

import (
	"errors"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/medilab/lab-api/internal/domain/entity"
	domainRepo "github.com/medilab/lab-api/internal/domain/repository"
)

type patientRepository struct{}

func NewPatientRepository() domainRepo.PatientRepository {
	return &patientRepository{}
}

func (r *patientRepository) Create(db *gorm.DB, patient *entity.Patient) error {
	return db.Create(patient).Error
}

func (r *patientRepository) FindAll(db *gorm.DB) ([]entity.Patient, error) {
	var patients []entity.Patient
	err := db.Preload("Secretary").
		Order("patient_id DESC").
		Find(&patients).Error
	if err != nil {
		return nil, err
	}
	return patients, nil
}

func (r *patientRepository) FindByID(db *gorm.DB, id int) (*entity.Patient, error) {
	var patient entity.Patient
	err := db.Preload("Secretary").Where("patient_id = ?", id).First(&patient).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &patient, nil
}

func (r *patientRepository) Update(db *gorm.DB, patient *entity.Patient) error {
	// The entity may carry a preloaded Secretary; only patient columns
	// are written.
	return db.Omit(clause.Associations).Save(patient).Error
}

func (r *patientRepository) Delete(db *gorm.DB, id int) (int64, error) {
	result := db.Where("patient_id = ?", id).Delete(&entity.Patient{})
	return result.RowsAffected, result.Error
}

// ApplyPayment decrements remaining atomically. The subtraction happens
// in the database, so two concurrent payments cannot lose an update.
func (r *patientRepository) ApplyPayment(db *gorm.DB, id int, amount decimal.Decimal) (int64, error) {
	result := db.Model(&entity.Patient{}).
		Where("patient_id = ?", id).
		Update("remaining", gorm.Expr("remaining - ?", amount))
	return result.RowsAffected, result.Error
}

func (r *patientRepository) FindWithoutReports(db *gorm.DB) ([]entity.Patient, error) {
	var patients []entity.Patient
	err := db.Preload("Secretary").
		Joins("LEFT JOIN report ON report.patient_id = patients.patient_id").
		Where("report.report_id IS NULL").
		Order("patients.now_date DESC").
		Find(&patients).Error
	if err != nil {
		return nil, err
	}
	return patients, nil
}

func (r *patientRepository) CountAll(db *gorm.DB) (int64, error) {
	var count int64
	err := db.Model(&entity.Patient{}).Count(&count).Error
	return count, err
}

func (r *patientRepository) CountWithoutReports(db *gorm.DB) (int64, error) {
	var count int64
	err := db.Model(&entity.Patient{}).
		Joins("LEFT JOIN report ON report.patient_id = patients.patient_id").
		Where("report.report_id IS NULL").
		Count(&count).Error
	return count, err
}
