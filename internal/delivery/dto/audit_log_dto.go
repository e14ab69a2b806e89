package dto

import (
	"time"

	"github.com/medilab/lab-api/internal/domain/entity"
)

type AuditLogResponse struct {
	ID        int64       `json:"id"`
	UserID    *int        `json:"user_id,omitempty"`
	Role      string      `json:"role,omitempty"`
	Action    string      `json:"action"`
	Metadata  entity.JSON `json:"metadata,omitempty"`
	CreatedAt time.Time   `json:"created_at"`
}

type AuditLogListResponse struct {
	Logs  []AuditLogResponse `json:"logs"`
	Total int                `json:"total"`
}
