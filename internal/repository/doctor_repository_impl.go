package repository

import (
	"errors"

	"gorm.io/gorm"

	"github.com/medilab/lab-api/internal/domain/entity"
	domainRepo "github.com/medilab/lab-api/internal/domain/repository"
)

type doctorRepository struct{}

func NewDoctorRepository() domainRepo.DoctorRepository {
	return &doctorRepository{}
}

func (r *doctorRepository) FindByUsername(db *gorm.DB, username string) (*entity.Doctor, error) {
	var doctor entity.Doctor
	err := db.Where("username = ?", username).First(&doctor).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &doctor, nil
}

func (r *doctorRepository) FindByID(db *gorm.DB, id int) (*entity.Doctor, error) {
	var doctor entity.Doctor
	err := db.Where("doctor_id = ?", id).First(&doctor).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &doctor, nil
}
