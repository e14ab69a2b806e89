package repository

import (
	"errors"

	"gorm.io/gorm"

	"github.com/medilab/lab-api/internal/domain/entity"
	domainRepo "github.com/medilab/lab-api/internal/domain/repository"
)

type reportRepository struct{}

func NewReportRepository() domainRepo.ReportRepository {
	return &reportRepository{}
}

func (r *reportRepository) Create(db *gorm.DB, report *entity.Report) error {
	return db.Create(report).Error
}

func (r *reportRepository) FindAll(db *gorm.DB) ([]entity.Report, error) {
	var reports []entity.Report
	err := db.Preload("Patient").
		Order("report_id DESC").
		Find(&reports).Error
	if err != nil {
		return nil, err
	}
	return reports, nil
}

// FindByPatientID returns the patient's most recent report.
func (r *reportRepository) FindByPatientID(db *gorm.DB, patientID int) (*entity.Report, error) {
	var report entity.Report
	err := db.Preload("Patient").
		Where("patient_id = ?", patientID).
		Order("report_id DESC").
		First(&report).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &report, nil
}

func (r *reportRepository) CountAll(db *gorm.DB) (int64, error) {
	var count int64
	err := db.Model(&entity.Report{}).Count(&count).Error
	return count, err
}

func (r *reportRepository) CountByPatientID(db *gorm.DB, patientID int) (int64, error) {
	var count int64
	err := db.Model(&entity.Report{}).Where("patient_id = ?", patientID).Count(&count).Error
	return count, err
}
