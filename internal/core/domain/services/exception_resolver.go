package services

import (
	"context"
	"time"

	"dispatch/internal/core/domain/model/appointment"
	"dispatch/internal/core/domain/model/exception"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/notification"
)

// ErrorResolutionPrefix starts the resolution of an exception whose remedy failed.
const ErrorResolutionPrefix = "Error during handling: "

// RemediationEffects performs the side effects of a remedy. Calls are made in
// sequence and are not compensated when a later one fails.
type RemediationEffects interface {
	NotifyCustomer(ctx context.Context, customerID kernel.UUID, message notification.Message) error
	SetAppointmentStatus(ctx context.Context, appt *appointment.Appointment, status appointment.Status) error
	ScheduleReplacement(ctx context.Context, original *appointment.Appointment) error
	Escalate(ctx context.Context, escalation *exception.Escalation) error
}

// Resolution is the outcome of handling one exception.
type Resolution struct {
	Status     exception.Status
	Resolution string
	HandledAt  time.Time
	Remedy     exception.Remedy
	Escalated  bool
	// Failed is set when a side effect failed; Resolution then carries the error text.
	Failed bool
	// Skipped is set when the exception was already final and nothing was done.
	Skipped bool
}

// ExceptionResolver applies the remedy playbook to delivery exceptions.
//
// Handling runs in this order:
//  1. the remedy for the exception type notifies the customer, moves the appointment
//     status and, for damaged packages, schedules a replacement
//  2. the exception moves to InProgress with the remedy's resolution
//  3. critical exceptions are escalated and the resolution gains EscalationSuffix;
//     low severity exceptions are resolved
//
// Any side-effect error leaves the exception InProgress with a resolution of
// ErrorResolutionPrefix followed by the error text. Resolve never returns an error,
// so InProgress alone does not mean the remedy succeeded.
//
// There is no locking: callers serialize handling per appointment.
type ExceptionResolver struct {
	playbook exception.Playbook
	now      func() time.Time
}

// NewExceptionResolver creates a resolver over playbook, exception.DefaultPlaybook if nil.
func NewExceptionResolver(playbook exception.Playbook, now func() time.Time) ExceptionResolver {
	if playbook == nil {
		playbook = exception.DefaultPlaybook()
	}
	if now == nil {
		now = time.Now
	}
	return ExceptionResolver{playbook: playbook, now: now}
}

// Resolve handles exc, reported against appt, and mutates exc accordingly.
func (r ExceptionResolver) Resolve(
	ctx context.Context,
	exc *exception.Exception,
	appt *appointment.Appointment,
	effects RemediationEffects,
) Resolution {
	handledAt := r.now()

	if exc.Status().IsFinal() {
		return Resolution{
			Status:     exc.Status(),
			Resolution: exc.Resolution(),
			HandledAt:  handledAt,
			Skipped:    true,
		}
	}

	remedy := r.playbook.RemedyFor(exc.Type())
	escalated, err := r.apply(ctx, exc, appt, remedy, effects, handledAt)
	if err != nil {
		// StartHandling cannot fail here: exc is Open or InProgress.
		_ = exc.StartHandling(ErrorResolutionPrefix+err.Error(), handledAt)
		return Resolution{
			Status:     exc.Status(),
			Resolution: exc.Resolution(),
			HandledAt:  handledAt,
			Remedy:     remedy,
			Failed:     true,
		}
	}

	return Resolution{
		Status:     exc.Status(),
		Resolution: exc.Resolution(),
		HandledAt:  handledAt,
		Remedy:     remedy,
		Escalated:  escalated,
	}
}

func (r ExceptionResolver) apply(
	ctx context.Context,
	exc *exception.Exception,
	appt *appointment.Appointment,
	remedy exception.Remedy,
	effects RemediationEffects,
	handledAt time.Time,
) (bool, error) {
	if err := appt.Validate(); err != nil {
		return false, err
	}

	appointmentID := exc.AppointmentID()
	if err := effects.NotifyCustomer(ctx, appt.CustomerID(), notification.Message{
		Title:         remedy.Title,
		Body:          remedy.Message(exc.Description()),
		AppointmentID: &appointmentID,
	}); err != nil {
		return false, err
	}

	if remedy.AppointmentStatus != "" {
		if err := effects.SetAppointmentStatus(ctx, appt, remedy.AppointmentStatus); err != nil {
			return false, err
		}
	}

	if remedy.ScheduleReplacement {
		if err := effects.ScheduleReplacement(ctx, appt); err != nil {
			return false, err
		}
	}

	if err := exc.StartHandling(remedy.Resolution, handledAt); err != nil {
		return false, err
	}

	escalated := false
	switch exc.Severity() {
	case exception.SeverityCritical:
		if err := effects.Escalate(ctx, exception.NewEscalation(kernel.NewUUID(), exc, handledAt)); err != nil {
			return false, err
		}
		exc.AppendResolution(exception.EscalationSuffix)
		escalated = true
	case exception.SeverityLow:
		if err := exc.Resolve(); err != nil {
			return false, err
		}
	case exception.SeverityMedium, exception.SeverityHigh:
	}

	return escalated, nil
}
