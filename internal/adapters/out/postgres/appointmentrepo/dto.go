// Package appointmentrepo provides GORM persistence for appointments and the
// customers they belong to.
package appointmentrepo

import (
	"time"

	"dispatch/internal/core/domain/model/appointment"
	"dispatch/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// AppointmentDTO represents the database structure of an appointment.
type AppointmentDTO struct {
	ID         uuid.UUID   `gorm:"type:uuid;primaryKey"`
	CustomerID uuid.UUID   `gorm:"type:uuid;not null;index"`
	Date       time.Time   `gorm:"not null"`
	Location   LocationDTO `gorm:"embedded;embeddedPrefix:location_"`
	Type       string      `gorm:"type:varchar(16);not null"`
	Status     string      `gorm:"type:varchar(32);not null;index"`
	Priority   int         `gorm:"type:int;not null"`
	Notes      string      `gorm:"type:text"`
}

// TableName specifies the database table name for appointments.
func (AppointmentDTO) TableName() string {
	return "appointments"
}

// LocationDTO represents an embedded point. Coordinates are NULL for an address
// that was never geocoded.
type LocationDTO struct {
	Latitude  *float64 `gorm:"type:double precision"`
	Longitude *float64 `gorm:"type:double precision"`
	Address   string   `gorm:"type:varchar(512)"`
	Region    string   `gorm:"type:varchar(128)"`
}

// CustomerDTO represents the database structure of a customer.
type CustomerDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name        string    `gorm:"type:varchar(255);not null"`
	Email       string    `gorm:"type:varchar(255)"`
	PhoneNumber string    `gorm:"type:varchar(32)"`
}

// TableName specifies the database table name for customers.
func (CustomerDTO) TableName() string {
	return "customers"
}

func locationFromDomain(l kernel.Location) LocationDTO {
	dto := LocationDTO{Address: l.Address(), Region: l.Region()}
	if l.IsResolved() {
		lat, lon := l.Latitude(), l.Longitude()
		dto.Latitude = &lat
		dto.Longitude = &lon
	}
	return dto
}

func locationToDomain(dto LocationDTO) (kernel.Location, error) {
	if dto.Latitude == nil || dto.Longitude == nil {
		return kernel.Location{}.WithAddress(dto.Address, dto.Region), nil
	}

	loc, err := kernel.NewLocation(*dto.Latitude, *dto.Longitude)
	if err != nil {
		return kernel.Location{}, err
	}
	return loc.WithAddress(dto.Address, dto.Region), nil
}

func fromDomain(a *appointment.Appointment) AppointmentDTO {
	return AppointmentDTO{
		ID:         a.ID().Bytes(),
		CustomerID: a.CustomerID().Bytes(),
		Date:       a.Date(),
		Location:   locationFromDomain(a.Location()),
		Type:       string(a.Type()),
		Status:     a.Status().String(),
		Priority:   a.Priority(),
		Notes:      a.Notes(),
	}
}

func toDomain(dto AppointmentDTO) (*appointment.Appointment, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	customerID, err := kernel.UUIDFromBytes(dto.CustomerID[:])
	if err != nil {
		return nil, err
	}
	loc, err := locationToDomain(dto.Location)
	if err != nil {
		return nil, err
	}

	return appointment.RestoreAppointment(id, customerID, dto.Date, loc, appointment.Type(dto.Type),
		appointment.Status(dto.Status), dto.Priority, dto.Notes)
}

func customerFromDomain(c *appointment.Customer) CustomerDTO {
	return CustomerDTO{
		ID:          c.ID().Bytes(),
		Name:        c.Name(),
		Email:       c.Email(),
		PhoneNumber: c.PhoneNumber(),
	}
}

func customerToDomain(dto CustomerDTO) (*appointment.Customer, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	return appointment.NewCustomer(id, dto.Name, dto.Email, dto.PhoneNumber)
}
