// Package exceptionrepo provides GORM persistence for delivery exceptions and their
// escalations.
package exceptionrepo

import (
	"time"

	"dispatch/internal/core/domain/model/exception"
	"dispatch/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// ExceptionDTO represents the database structure of a delivery exception.
// Status is stored by name so the table stays readable for operators.
type ExceptionDTO struct {
	ID            uuid.UUID  `gorm:"type:uuid;primaryKey"`
	AppointmentID uuid.UUID  `gorm:"type:uuid;not null;index"`
	Type          string     `gorm:"type:varchar(64);not null"`
	Description   string     `gorm:"type:text"`
	Severity      string     `gorm:"type:varchar(16);not null"`
	Status        string     `gorm:"type:varchar(16);not null;index"`
	Resolution    string     `gorm:"type:text"`
	HandledAt     *time.Time
	CreatedAt     time.Time
}

// TableName specifies the database table name for exceptions.
func (ExceptionDTO) TableName() string {
	return "exceptions"
}

// EscalationDTO represents an escalation to the operations team.
type EscalationDTO struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	ExceptionID   uuid.UUID `gorm:"type:uuid;not null;index"`
	AppointmentID uuid.UUID `gorm:"type:uuid;not null"`
	Type          string    `gorm:"type:varchar(64);not null"`
	Severity      string    `gorm:"type:varchar(16);not null"`
	Description   string    `gorm:"type:text"`
	Status        string    `gorm:"type:varchar(16);not null"`
	CreatedAt     time.Time
}

// TableName specifies the database table name for escalations.
func (EscalationDTO) TableName() string {
	return "escalations"
}

func fromDomain(e *exception.Exception) ExceptionDTO {
	return ExceptionDTO{
		ID:            e.ID().Bytes(),
		AppointmentID: e.AppointmentID().Bytes(),
		Type:          string(e.Type()),
		Description:   e.Description(),
		Severity:      e.Severity().String(),
		Status:        e.Status().String(),
		Resolution:    e.Resolution(),
		HandledAt:     e.HandledAt(),
		CreatedAt:     e.CreatedAt(),
	}
}

func toDomain(dto ExceptionDTO) (*exception.Exception, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	appointmentID, err := kernel.UUIDFromBytes(dto.AppointmentID[:])
	if err != nil {
		return nil, err
	}
	status, err := exception.ParseStatus(dto.Status)
	if err != nil {
		return nil, err
	}

	return exception.RestoreException(id, appointmentID, exception.Type(dto.Type), dto.Description,
		exception.Severity(dto.Severity), status, dto.Resolution, dto.HandledAt, dto.CreatedAt)
}

func escalationFromDomain(e *exception.Escalation) EscalationDTO {
	return EscalationDTO{
		ID:            e.ID().Bytes(),
		ExceptionID:   e.ExceptionID().Bytes(),
		AppointmentID: e.AppointmentID().Bytes(),
		Type:          string(e.Type()),
		Severity:      e.Severity().String(),
		Description:   e.Description(),
		Status:        e.Status(),
		CreatedAt:     e.CreatedAt(),
	}
}
