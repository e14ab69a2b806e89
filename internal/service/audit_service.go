package service

import (
	"context"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/medilab/lab-api/internal/domain/entity"
	"github.com/medilab/lab-api/internal/domain/repository"
)

// AuditService records who did what to which record. Failures are
// logged but never fail the calling operation.
type AuditService interface {
	LogCreate(ctx context.Context, tx *gorm.DB, userID *int, role, action, entityName, entityID string, newValue interface{}) error
	LogUpdate(ctx context.Context, tx *gorm.DB, userID *int, role, action, entityName, entityID string, oldValue, newValue interface{}) error
	LogDelete(ctx context.Context, tx *gorm.DB, userID *int, role, action, entityName, entityID string, oldValue interface{}) error
}

type auditService struct {
	db        *gorm.DB
	log       *logrus.Logger
	auditRepo repository.AuditLogRepository
}

func NewAuditService(db *gorm.DB, log *logrus.Logger, auditRepo repository.AuditLogRepository) AuditService {
	return &auditService{
		db:        db,
		log:       log,
		auditRepo: auditRepo,
	}
}

func (s *auditService) LogCreate(ctx context.Context, tx *gorm.DB, userID *int, role, action, entityName, entityID string, newValue interface{}) error {
	return s.write(tx, userID, role, action, entity.JSON{
		"entity":    entityName,
		"entity_id": entityID,
		"old_value": nil,
		"new_value": newValue,
	})
}

func (s *auditService) LogUpdate(ctx context.Context, tx *gorm.DB, userID *int, role, action, entityName, entityID string, oldValue, newValue interface{}) error {
	return s.write(tx, userID, role, action, entity.JSON{
		"entity":    entityName,
		"entity_id": entityID,
		"old_value": oldValue,
		"new_value": newValue,
	})
}

func (s *auditService) LogDelete(ctx context.Context, tx *gorm.DB, userID *int, role, action, entityName, entityID string, oldValue interface{}) error {
	return s.write(tx, userID, role, action, entity.JSON{
		"entity":    entityName,
		"entity_id": entityID,
		"old_value": oldValue,
		"new_value": nil,
	})
}

func (s *auditService) write(tx *gorm.DB, userID *int, role, action string, metadata entity.JSON) error {
	auditLog := &entity.AuditLog{
		UserID:   userID,
		Role:     role,
		Action:   action,
		Metadata: metadata,
	}

	if err := s.auditRepo.Create(tx, auditLog); err != nil {
		s.log.Warnf("Failed to create audit log: %+v", err)
		return err
	}
	return nil
}
