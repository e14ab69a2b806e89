package repository

import (
	"gorm.io/gorm"

	"github.com/medilab/lab-api/internal/domain/entity"
)

type ReportRepository interface {
	Create(db *gorm.DB, report *entity.Report) error
	FindAll(db *gorm.DB) ([]entity.Report, error)
	FindByPatientID(db *gorm.DB, patientID int) (*entity.Report, error)
	CountAll(db *gorm.DB) (int64, error)
	CountByPatientID(db *gorm.DB, patientID int) (int64, error)
}
