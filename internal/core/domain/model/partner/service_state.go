package partner

import (
	"errors"
	"fmt"
	"time"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"
)

const (
	// DefaultCapacity is the capacity assumed when none was reported.
	DefaultCapacity = 100
	// DefaultCurrentLoad is the load assumed when none was reported.
	DefaultCurrentLoad = 0
)

// ErrServiceStateIsNotConstructed is returned when a ServiceState was not created
// via NewServiceState or DefaultServiceState.
var ErrServiceStateIsNotConstructed = errors.New("ServiceState must be created via NewServiceState constructor")

// ServiceState is a partner's live operational feed, distinct from its static profile.
//
// CurrentLoad may exceed Capacity: the feed is accepted as reported and the scorer
// clamps the remaining-capacity fraction to [0..1].
type ServiceState struct {
	partnerID    kernel.UUID
	status       Status
	availability Availability
	capacity     int
	currentLoad  int
	updatedAt    time.Time

	isConstructed bool
}

// NewServiceState creates a validated ServiceState.
func NewServiceState(
	partnerID kernel.UUID,
	status Status,
	availability Availability,
	capacity int,
	currentLoad int,
	updatedAt time.Time,
) (*ServiceState, error) {
	s := &ServiceState{
		updatedAt:     updatedAt,
		isConstructed: true,
	}

	if err := errors.Join(
		s.setPartnerID(partnerID),
		s.setStatus(status),
		s.setAvailability(availability),
		s.setCapacity(capacity),
		s.setCurrentLoad(currentLoad),
	); err != nil {
		return nil, err
	}

	return s, nil
}

// DefaultServiceState is the state assumed for a partner with no recorded feed:
// active, available, capacity 100, load 0.
//
// This default-open policy biases selection toward inclusion. A stale or torn read
// of the service-state store therefore never excludes a partner; callers needing
// stricter consistency must persist an explicit state for every partner.
func DefaultServiceState(partnerID kernel.UUID) *ServiceState {
	return &ServiceState{
		partnerID:     partnerID,
		status:        StatusActive,
		availability:  AvailabilityAvailable,
		capacity:      DefaultCapacity,
		currentLoad:   DefaultCurrentLoad,
		isConstructed: true,
	}
}

// Validate ensures the ServiceState was properly constructed.
func (s *ServiceState) Validate() error {
	if s == nil || !s.isConstructed {
		return ErrServiceStateIsNotConstructed
	}
	return nil
}

func (s *ServiceState) PartnerID() kernel.UUID {
	return s.partnerID
}

func (s *ServiceState) Status() Status {
	return s.status
}

func (s *ServiceState) Availability() Availability {
	return s.availability
}

func (s *ServiceState) Capacity() int {
	return s.capacity
}

func (s *ServiceState) CurrentLoad() int {
	return s.currentLoad
}

// UpdatedAt returns when the feed was last reported; zero for the default state.
func (s *ServiceState) UpdatedAt() time.Time {
	return s.updatedAt
}

// RemainingCapacityFraction returns (capacity-load)/capacity clamped to [0..1].
func (s *ServiceState) RemainingCapacityFraction() float64 {
	if s.capacity <= 0 {
		return 0
	}
	f := float64(s.capacity-s.currentLoad) / float64(s.capacity)
	return max(0, min(1, f))
}

func (s *ServiceState) setPartnerID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	s.partnerID = id
	return nil
}

func (s *ServiceState) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	s.status = status
	return nil
}

func (s *ServiceState) setAvailability(a Availability) error {
	if err := a.Validate(); err != nil {
		return err
	}
	s.availability = a
	return nil
}

func (s *ServiceState) setCapacity(capacity int) error {
	if capacity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("capacity is invalid", fmt.Errorf("%d is not greater than 0", capacity))
	}
	s.capacity = capacity
	return nil
}

func (s *ServiceState) setCurrentLoad(load int) error {
	if load < 0 {
		return errs.NewValueIsInvalidErrorWithCause("current load is invalid", fmt.Errorf("%d is negative", load))
	}
	s.currentLoad = load
	return nil
}
