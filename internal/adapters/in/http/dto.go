package http

import (
	"time"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"
)

// ErrorResponse is the body of every non-2xx response.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// LocationDTO is a geographic point as exchanged over the API.
type LocationDTO struct {
	Latitude  *float64 `json:"latitude" validate:"required,gte=-90,lte=90"`
	Longitude *float64 `json:"longitude" validate:"required,gte=-180,lte=180"`
	Address   string   `json:"address,omitempty"`
	Region    string   `json:"region,omitempty"`
}

func (d *LocationDTO) toDomain() (kernel.Location, error) {
	loc, err := kernel.NewLocation(*d.Latitude, *d.Longitude)
	if err != nil {
		return kernel.Location{}, err
	}
	return loc.WithAddress(d.Address, d.Region), nil
}

func locationFromDomain(loc kernel.Location) *LocationDTO {
	if !loc.IsResolved() {
		return nil
	}
	lat, lng := loc.Latitude(), loc.Longitude()
	return &LocationDTO{Latitude: &lat, Longitude: &lng, Address: loc.Address(), Region: loc.Region()}
}

type SelectPartnerRequest struct {
	AppointmentID  string       `json:"appointmentId" validate:"required,uuid"`
	ServiceType    string       `json:"serviceType" validate:"required"`
	PickupLocation *LocationDTO `json:"pickupLocation" validate:"required"`
	Urgency        string       `json:"urgency" validate:"omitempty,oneof=low normal high critical"`
}

type CandidateResponse struct {
	PartnerID     string `json:"partnerId"`
	Name          string `json:"name"`
	Score         int    `json:"score"`
	Rank          int    `json:"rank"`
	InServiceArea bool   `json:"inServiceArea"`
}

type SelectPartnerResponse struct {
	SelectionID      string              `json:"selectionId"`
	AppointmentID    string              `json:"appointmentId"`
	Status           string              `json:"status"`
	Urgency          string              `json:"urgency"`
	Degraded         bool                `json:"degraded"`
	PrimaryPartner   *CandidateResponse  `json:"primaryPartner"`
	FallbackPartners []CandidateResponse `json:"fallbackPartners"`
}

type QuotePriceRequest struct {
	Origin        *LocationDTO `json:"origin" validate:"required"`
	Destination   *LocationDTO `json:"destination" validate:"required"`
	PackageSize   string       `json:"packageSize" validate:"required,oneof=small medium large extraLarge"`
	PackageWeight float64      `json:"packageWeight" validate:"gte=0"`
	Urgency       string       `json:"urgency" validate:"omitempty,oneof=low normal high critical"`
	Time          *time.Time   `json:"time"`
}

type BreakdownResponse struct {
	BasePrice      float64 `json:"basePrice"`
	DistancePrice  float64 `json:"distancePrice"`
	SizePrice      float64 `json:"sizePrice"`
	WeightPrice    float64 `json:"weightPrice"`
	UrgencyPrice   float64 `json:"urgencyPrice"`
	TimeOfDayPrice float64 `json:"timeOfDayPrice"`
	WeekendPrice   float64 `json:"weekendPrice"`
	HolidayPrice   float64 `json:"holidayPrice"`
	DemandPrice    float64 `json:"demandPrice"`
}

type QuotePriceResponse struct {
	QuoteID    string            `json:"quoteId"`
	Total      string            `json:"total"`
	Currency   string            `json:"currency"`
	DistanceKm float64           `json:"distanceKm"`
	Breakdown  BreakdownResponse `json:"breakdown"`
	QuotedAt   time.Time         `json:"quotedAt"`
}

type DeliveryRef struct {
	AppointmentID string `json:"appointmentId" validate:"required,uuid"`
}

type RouteConstraintsDTO struct {
	MaxDistance        *float64 `json:"maxDistance" validate:"omitempty,gt=0"`
	MaxDuration        *float64 `json:"maxDuration" validate:"omitempty,gt=0"`
	PrioritizeUrgent   bool     `json:"prioritizeUrgent"`
	RespectTimeWindows bool     `json:"respectTimeWindows"`
}

type PlanRouteRequest struct {
	VehicleID     string              `json:"vehicleId" validate:"required,uuid"`
	Deliveries    []DeliveryRef       `json:"deliveries" validate:"required,min=1,dive"`
	StartLocation *LocationDTO        `json:"startLocation" validate:"required"`
	EndLocation   *LocationDTO        `json:"endLocation"`
	Constraints   RouteConstraintsDTO `json:"constraints"`
}

type RouteStopResponse struct {
	AppointmentID    string       `json:"appointmentId"`
	Location         *LocationDTO `json:"location"`
	Type             string       `json:"type"`
	Priority         int          `json:"priority"`
	DistanceKm       float64      `json:"distance"`
	DurationMin      float64      `json:"duration"`
	EstimatedArrival time.Time    `json:"estimatedArrival"`
}

type DroppedStopResponse struct {
	AppointmentID string `json:"appointmentId"`
	Reason        string `json:"reason"`
}

type PlanRouteResponse struct {
	RouteID          string                `json:"routeId"`
	VehicleID        string                `json:"vehicleId"`
	Deliveries       []RouteStopResponse   `json:"deliveries"`
	Dropped          []DroppedStopResponse `json:"dropped"`
	TotalDistanceKm  float64               `json:"totalDistance"`
	TotalDurationMin float64               `json:"totalDuration"`
	StartTime        time.Time             `json:"startTime"`
	EndTime          time.Time             `json:"endTime"`
}

type ReportExceptionRequest struct {
	AppointmentID string `json:"appointmentId" validate:"required,uuid"`
	Type          string `json:"type" validate:"required"`
	Description   string `json:"description" validate:"required"`
	Severity      string `json:"severity" validate:"omitempty,oneof=low medium high critical"`
}

type ReportExceptionResponse struct {
	ExceptionID string     `json:"exceptionId"`
	Status      string     `json:"status"`
	Resolution  string     `json:"resolution"`
	Escalated   bool       `json:"escalated"`
	HandledAt   *time.Time `json:"handledAt"`
}

type SendNotificationRequest struct {
	CustomerID    string `json:"customerId" validate:"required,uuid"`
	Type          string `json:"type" validate:"required"`
	Title         string `json:"title"`
	Message       string `json:"message" validate:"required"`
	AppointmentID string `json:"appointmentId" validate:"omitempty,uuid"`
}

type NotificationResponse struct {
	NotificationID string          `json:"notificationId"`
	Status         string          `json:"status"`
	Channels       map[string]bool `json:"channels"`
	Error          string          `json:"error,omitempty"`
	SentAt         *time.Time      `json:"sentAt"`
}

type UpdatePartnerStateRequest struct {
	Status       string `json:"status" validate:"required,oneof=active inactive busy maintenance"`
	Availability string `json:"availability" validate:"required,oneof=available unavailable limited"`
	Capacity     *int   `json:"capacity" validate:"omitempty,gt=0"`
	CurrentLoad  *int   `json:"currentLoad" validate:"omitempty,gte=0"`
}

type PartnerStateResponse struct {
	PartnerID    string     `json:"partnerId"`
	Name         string     `json:"name,omitempty"`
	Status       string     `json:"status"`
	Availability string     `json:"availability"`
	Capacity     int        `json:"capacity"`
	CurrentLoad  int        `json:"currentLoad"`
	LastUpdated  *time.Time `json:"lastUpdated"`
}

type PartnerResponse struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Priority     int      `json:"priority"`
	Rating       float64  `json:"rating"`
	ServiceTypes []string `json:"serviceTypes"`
	Status       string   `json:"status"`
	Availability string   `json:"availability"`
}

type PaginationResponse struct {
	Total int64 `json:"total"`
	Page  int   `json:"page"`
	Limit int   `json:"limit"`
	Pages int   `json:"pages"`
}

type ServiceAreaDTO struct {
	Name     string       `json:"name" validate:"required"`
	Center   *LocationDTO `json:"center" validate:"required"`
	RadiusKm float64      `json:"radius" validate:"gte=0"`
}

type CreatePartnerRequest struct {
	Name         string           `json:"name" validate:"required"`
	Priority     *int             `json:"priority" validate:"omitempty,gte=0"`
	Rating       *float64         `json:"rating" validate:"omitempty,gte=0,lte=5"`
	ServiceAreas []ServiceAreaDTO `json:"serviceAreas" validate:"dive"`
	ServiceTypes []string         `json:"serviceTypes" validate:"dive,required"`
	Status       string           `json:"status" validate:"omitempty,oneof=active inactive busy maintenance"`
}

type PartnerProfileResponse struct {
	ID           string           `json:"id"`
	Name         string           `json:"name"`
	Priority     int              `json:"priority"`
	Rating       float64          `json:"rating"`
	ServiceAreas []ServiceAreaDTO `json:"serviceAreas"`
	ServiceTypes []string         `json:"serviceTypes"`
	Status       string           `json:"status"`
}

type UpdateRegionDemandRequest struct {
	DemandFactor *float64 `json:"demandFactor" validate:"required,gte=0"`
}

type RegionDemandResponse struct {
	Region       string  `json:"region"`
	DemandFactor float64 `json:"demandFactor"`
}

type CreateVehicleRequest struct {
	RegistrationNumber string `json:"registrationNumber" validate:"required"`
	Type               string `json:"type" validate:"required,oneof=truck van bike"`
	Capacity           int    `json:"capacity" validate:"required,gt=0"`
	Status             string `json:"status" validate:"omitempty,oneof=available in-use maintenance"`
}

type VehicleResponse struct {
	ID                 string `json:"id"`
	RegistrationNumber string `json:"registrationNumber"`
	Type               string `json:"type"`
	Capacity           int    `json:"capacity"`
	Status             string `json:"status"`
}

type VehicleListResponse struct {
	Data       []VehicleResponse  `json:"data"`
	Pagination PaginationResponse `json:"pagination"`
}

type CreateCustomerRequest struct {
	Name        string `json:"name" validate:"required"`
	Email       string `json:"email" validate:"omitempty,email"`
	PhoneNumber string `json:"phoneNumber"`
}

type CustomerResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Email       string `json:"email,omitempty"`
	PhoneNumber string `json:"phoneNumber,omitempty"`
}

type CustomerListResponse struct {
	Data       []CustomerResponse `json:"data"`
	Pagination PaginationResponse `json:"pagination"`
}

// AppointmentLocationDTO is an appointment address. Coordinates are optional; an
// appointment without them is kept but skipped by route planning.
type AppointmentLocationDTO struct {
	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`
	Address   string   `json:"address"`
	Region    string   `json:"region,omitempty"`
}

func (d *AppointmentLocationDTO) toDomain() (kernel.Location, error) {
	if d == nil {
		return kernel.Location{}, nil
	}
	if (d.Latitude == nil) != (d.Longitude == nil) {
		return kernel.Location{}, errs.NewValueIsRequiredError("location needs both latitude and longitude")
	}
	if d.Latitude == nil {
		return kernel.Location{}.WithAddress(d.Address, d.Region), nil
	}
	loc, err := kernel.NewLocation(*d.Latitude, *d.Longitude)
	if err != nil {
		return kernel.Location{}, err
	}
	return loc.WithAddress(d.Address, d.Region), nil
}

func appointmentLocationFromDomain(loc kernel.Location) AppointmentLocationDTO {
	dto := AppointmentLocationDTO{Address: loc.Address(), Region: loc.Region()}
	if loc.IsResolved() {
		lat, lng := loc.Latitude(), loc.Longitude()
		dto.Latitude, dto.Longitude = &lat, &lng
	}
	return dto
}

type AppointmentRequest struct {
	Date     time.Time               `json:"date" validate:"required"`
	Location *AppointmentLocationDTO `json:"location"`
	Type     string                  `json:"type" validate:"required,oneof=pickup delivery both"`
	Priority int                     `json:"priority"`
	Notes    string                  `json:"notes"`
}

type CreateAppointmentRequest struct {
	CustomerID string `json:"customerId" validate:"required,uuid"`
	AppointmentRequest
}

type UpdateAppointmentRequest struct {
	AppointmentRequest
	Status string `json:"status"`
}

type ChangeAppointmentStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

type AppointmentResponse struct {
	ID         string                 `json:"id"`
	CustomerID string                 `json:"customerId"`
	Date       time.Time              `json:"date"`
	Location   AppointmentLocationDTO `json:"location"`
	Type       string                 `json:"type"`
	Status     string                 `json:"status"`
	Priority   int                    `json:"priority"`
	Notes      string                 `json:"notes,omitempty"`
}

type AppointmentListResponse struct {
	Data       []AppointmentResponse `json:"data"`
	Pagination PaginationResponse    `json:"pagination"`
}

type HealthResponse struct {
	Status    string            `json:"status"`
	Timestamp time.Time         `json:"timestamp"`
	Services  map[string]string `json:"services,omitempty"`
	Message   string            `json:"message,omitempty"`
}
