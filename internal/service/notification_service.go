package service

import (
	"errors"

	"go-stockroom/internal/model"
	"go-stockroom/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var ErrNotificationNotFound = errors.New("notification not found")

type NotificationService interface {
	GetAll() ([]model.Notification, error)
	MarkRead(id uuid.UUID) error
	Delete(id uuid.UUID) error
}

type notificationService struct {
	notifRepo repository.NotificationRepository
}

func NewNotificationService(notifRepo repository.NotificationRepository) NotificationService {
	return &notificationService{notifRepo: notifRepo}
}

func (s *notificationService) GetAll() ([]model.Notification, error) {
	return s.notifRepo.FindAll()
}

func (s *notificationService) MarkRead(id uuid.UUID) error {
	if _, err := s.notifRepo.FindByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotificationNotFound
		}
		return err
	}
	return s.notifRepo.MarkRead(id)
}

func (s *notificationService) Delete(id uuid.UUID) error {
	if _, err := s.notifRepo.FindByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotificationNotFound
		}
		return err
	}
	return s.notifRepo.Delete(id)
}
