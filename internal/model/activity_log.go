package model

import (
	"encoding/json"

	"github.com/google/uuid"
)

// ActivityLog is an append-only audit trail row. Updates and deletes are not
// exposed through the API.
type ActivityLog struct {
	BaseModel
	UserID      *uuid.UUID      `gorm:"type:uuid;index" json:"user_id,omitempty"`
	Action      string          `gorm:"type:varchar(50);not null" json:"action" validate:"required"` // created, updated, deleted, submitted
	EntityType  string          `gorm:"type:varchar(100);not null" json:"entity_type" validate:"required"`
	EntityID    *uuid.UUID      `gorm:"type:uuid" json:"entity_id,omitempty"`
	Description string          `gorm:"type:text" json:"description"`
	IPAddress   string          `gorm:"type:varchar(45)" json:"ip_address,omitempty"`
	UserAgent   string          `gorm:"type:varchar(255)" json:"user_agent,omitempty"`
	OldValues   json.RawMessage `gorm:"type:jsonb" json:"old_values,omitempty"`
	NewValues   json.RawMessage `gorm:"type:jsonb" json:"new_values,omitempty"`
}
