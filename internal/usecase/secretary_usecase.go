package usecase

import (
	"context"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/medilab/lab-api/internal/converter"
	"github.com/medilab/lab-api/internal/delivery/dto"
	"github.com/medilab/lab-api/internal/domain/repository"
)

type SecretaryUsecase interface {
	GetAllSecretaries(ctx context.Context) (*dto.SecretaryListResponse, error)
	GetSecretary(ctx context.Context, id int) (*dto.SecretaryResponse, error)
}

type secretaryUsecase struct {
	db            *gorm.DB
	log           *logrus.Logger
	secretaryRepo repository.SecretaryRepository
}

func NewSecretaryUsecase(db *gorm.DB, log *logrus.Logger, secretaryRepo repository.SecretaryRepository) SecretaryUsecase {
	return &secretaryUsecase{
		db:            db,
		log:           log,
		secretaryRepo: secretaryRepo,
	}
}

func (u *secretaryUsecase) GetAllSecretaries(ctx context.Context) (*dto.SecretaryListResponse, error) {
	secretaries, err := u.secretaryRepo.FindAll(u.db.WithContext(ctx))
	if err != nil {
		u.log.Warnf("Failed to find all secretaries: %+v", err)
		return nil, err
	}

	return &dto.SecretaryListResponse{
		Secretaries: converter.SecretariesToResponses(secretaries),
		Total:       len(secretaries),
	}, nil
}

func (u *secretaryUsecase) GetSecretary(ctx context.Context, id int) (*dto.SecretaryResponse, error) {
	secretary, err := u.secretaryRepo.FindByID(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to find secretary: %+v", err)
		return nil, err
	}
	if secretary == nil {
		return nil, ErrSecretaryNotFound
	}

	return converter.SecretaryToResponse(secretary), nil
}
