package converter

import (
	"github.com/medilab/lab-api/internal/delivery/dto"
	"github.com/medilab/lab-api/internal/domain/entity"
)

func AuditLogToResponse(auditLog *entity.AuditLog) *dto.AuditLogResponse {
	if auditLog == nil {
		return nil
	}
	return &dto.AuditLogResponse{
		ID:        auditLog.ID,
		UserID:    auditLog.UserID,
		Role:      auditLog.Role,
		Action:    auditLog.Action,
		Metadata:  auditLog.Metadata,
		CreatedAt: auditLog.CreatedAt,
	}
}

func AuditLogsToResponses(logs []entity.AuditLog) []dto.AuditLogResponse {
	responses := make([]dto.AuditLogResponse, 0, len(logs))
	for i := range logs {
		responses = append(responses, *AuditLogToResponse(&logs[i]))
	}
	return responses
}
