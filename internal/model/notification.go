package model

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

type Notification struct {
	BaseModel
	UserID   *uuid.UUID      `gorm:"type:uuid;index" json:"user_id,omitempty"`
	Type     string          `gorm:"type:varchar(50);not null" json:"type" validate:"required"` // low_stock, stock_in, order, system
	Title    string          `gorm:"type:varchar(255);not null" json:"title" validate:"required"`
	Message  string          `gorm:"type:text" json:"message"`
	Data     json.RawMessage `gorm:"type:jsonb" json:"data,omitempty"`
	ReadAt   *time.Time      `json:"read_at,omitempty"`
	Priority string          `gorm:"type:varchar(20);default:'normal'" json:"priority" validate:"omitempty,oneof=low normal high urgent"`
}
