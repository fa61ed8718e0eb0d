package service

import (
	"encoding/json"
	"log"

	"go-stockroom/internal/model"
	"go-stockroom/internal/repository"

	"github.com/google/uuid"
)

// ActivityLogService records who changed what. Writes are fire-and-forget; a
// failed audit row must never fail the operation it describes.
type ActivityLogService interface {
	GetAll(limit int) ([]model.ActivityLog, error)
	Record(userID *uuid.UUID, action, entityType string, entityID *uuid.UUID, description string, oldValues, newValues interface{})
}

type activityLogService struct {
	logRepo repository.ActivityLogRepository
}

func NewActivityLogService(logRepo repository.ActivityLogRepository) ActivityLogService {
	return &activityLogService{logRepo: logRepo}
}

func (s *activityLogService) GetAll(limit int) ([]model.ActivityLog, error) {
	return s.logRepo.FindAll(limit)
}

func (s *activityLogService) Record(userID *uuid.UUID, action, entityType string, entityID *uuid.UUID, description string, oldValues, newValues interface{}) {
	entry := &model.ActivityLog{
		UserID:      userID,
		Action:      action,
		EntityType:  entityType,
		EntityID:    entityID,
		Description: description,
	}
	if oldValues != nil {
		if raw, err := json.Marshal(oldValues); err == nil {
			entry.OldValues = raw
		}
	}
	if newValues != nil {
		if raw, err := json.Marshal(newValues); err == nil {
			entry.NewValues = raw
		}
	}
	if err := s.logRepo.Create(entry); err != nil {
		log.Printf("activity log write failed: %v", err)
	}
}
