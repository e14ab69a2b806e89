package repository

import (
	"gorm.io/gorm"

	"github.com/medilab/lab-api/internal/domain/entity"
)

type SecretaryRepository interface {
	FindAll(db *gorm.DB) ([]entity.Secretary, error)
	FindByID(db *gorm.DB, id int) (*entity.Secretary, error)
	// FindByName matches case-insensitively.
	FindByName(db *gorm.DB, name string) (*entity.Secretary, error)
}
