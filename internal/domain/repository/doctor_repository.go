package repository

import (
	"gorm.io/gorm"

	"github.com/medilab/lab-api/internal/domain/entity"
)

type DoctorRepository interface {
	FindByUsername(db *gorm.DB, username string) (*entity.Doctor, error)
	FindByID(db *gorm.DB, id int) (*entity.Doctor, error)
}
