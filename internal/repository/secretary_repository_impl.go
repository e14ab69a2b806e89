package repository

import (
	"errors"

	"gorm.io/gorm"

	"github.com/medilab/lab-api/internal/domain/entity"
	domainRepo "github.com/medilab/lab-api/internal/domain/repository"
)

type secretaryRepository struct{}

func NewSecretaryRepository() domainRepo.SecretaryRepository {
	return &secretaryRepository{}
}

func (r *secretaryRepository) FindAll(db *gorm.DB) ([]entity.Secretary, error) {
	var secretaries []entity.Secretary
	err := db.Order("secertary_id").Find(&secretaries).Error
	if err != nil {
		return nil, err
	}
	return secretaries, nil
}

func (r *secretaryRepository) FindByID(db *gorm.DB, id int) (*entity.Secretary, error) {
	var secretary entity.Secretary
	err := db.Where("secertary_id = ?", id).First(&secretary).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &secretary, nil
}

func (r *secretaryRepository) FindByName(db *gorm.DB, name string) (*entity.Secretary, error) {
	var secretary entity.Secretary
	err := db.Where("LOWER(name) = LOWER(?)", name).First(&secretary).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &secretary, nil
}
