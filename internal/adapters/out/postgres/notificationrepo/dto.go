// Package notificationrepo provides GORM persistence for customer notifications.
package notificationrepo

import (
	"time"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/notification"

	"github.com/google/uuid"
)

// NotificationDTO represents the database structure of a notification.
// Channels holds the per-channel outcome of the last send as a jsonb object.
type NotificationDTO struct {
	ID            uuid.UUID       `gorm:"type:uuid;primaryKey"`
	CustomerID    uuid.UUID       `gorm:"type:uuid;not null;index"`
	AppointmentID *uuid.UUID      `gorm:"type:uuid;index"`
	Type          string          `gorm:"type:varchar(32);not null"`
	Title         string          `gorm:"type:varchar(255);not null"`
	Message       string          `gorm:"type:text;not null"`
	Status        string          `gorm:"type:varchar(16);not null;index"`
	Channels      map[string]bool `gorm:"serializer:json;type:jsonb"`
	LastError     string          `gorm:"type:text"`
	CreatedAt     time.Time       `gorm:"index"`
	SentAt        *time.Time
}

// TableName specifies the database table name for notifications.
func (NotificationDTO) TableName() string {
	return "notifications"
}

func fromDomain(n *notification.Notification) NotificationDTO {
	msg := n.Message()

	var appointmentID *uuid.UUID
	if msg.AppointmentID != nil {
		raw := msg.AppointmentID.Bytes()
		appointmentID = &raw
	}

	channels := make(map[string]bool, len(n.Channels()))
	for ch, ok := range n.Channels() {
		channels[string(ch)] = ok
	}

	return NotificationDTO{
		ID:            n.ID().Bytes(),
		CustomerID:    n.CustomerID().Bytes(),
		AppointmentID: appointmentID,
		Type:          n.Type(),
		Title:         msg.Title,
		Message:       msg.Body,
		Status:        string(n.Status()),
		Channels:      channels,
		LastError:     n.LastError(),
		CreatedAt:     n.CreatedAt(),
		SentAt:        n.SentAt(),
	}
}

func toDomain(dto NotificationDTO) (*notification.Notification, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	customerID, err := kernel.UUIDFromBytes(dto.CustomerID[:])
	if err != nil {
		return nil, err
	}

	status := notification.Status(dto.Status)
	if err := status.Validate(); err != nil {
		return nil, err
	}

	msg := notification.Message{Title: dto.Title, Body: dto.Message}
	if dto.AppointmentID != nil {
		apptID, apptErr := kernel.UUIDFromBytes((*dto.AppointmentID)[:])
		if apptErr != nil {
			return nil, apptErr
		}
		msg.AppointmentID = &apptID
	}

	channels := make(map[notification.Channel]bool, len(dto.Channels))
	for ch, ok := range dto.Channels {
		channels[notification.Channel(ch)] = ok
	}

	return notification.RestoreNotification(id, customerID, dto.Type, msg, status, channels,
		dto.LastError, dto.CreatedAt, dto.SentAt), nil
}
