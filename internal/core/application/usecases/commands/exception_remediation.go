package commands

import (
	"context"
	"time"

	"dispatch/internal/core/domain/model/appointment"
	"dispatch/internal/core/domain/model/exception"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/notification"
	"dispatch/internal/core/domain/services"
)

var _ services.RemediationEffects = remediationEffects{}

// remediationEffects persists each remedy side effect in its own transaction.
// An effect that fails leaves the earlier ones committed.
//
// Customer notifications are stored pending; the dispatch job delivers them.
type remediationEffects struct {
	uowFactory ExceptionUoWFactory
	now        func() time.Time
}

func (e remediationEffects) NotifyCustomer(ctx context.Context, customerID kernel.UUID, message notification.Message) error {
	n, err := notification.NewNotification(kernel.NewUUID(), customerID, notification.TypeException, message, e.now())
	if err != nil {
		return err
	}

	return e.inTx(ctx, func(uow ExceptionUoW) error {
		return uow.NotificationRepository().Add(ctx, n)
	})
}

func (e remediationEffects) SetAppointmentStatus(
	ctx context.Context,
	appt *appointment.Appointment,
	status appointment.Status,
) error {
	if err := appt.ChangeStatus(status); err != nil {
		return err
	}

	return e.inTx(ctx, func(uow ExceptionUoW) error {
		return uow.AppointmentRepository().Update(ctx, appt)
	})
}

func (e remediationEffects) ScheduleReplacement(ctx context.Context, original *appointment.Appointment) error {
	replacement, err := appointment.NewReplacement(kernel.NewUUID(), original)
	if err != nil {
		return err
	}

	return e.inTx(ctx, func(uow ExceptionUoW) error {
		return uow.AppointmentRepository().Add(ctx, replacement)
	})
}

func (e remediationEffects) Escalate(ctx context.Context, escalation *exception.Escalation) error {
	return e.inTx(ctx, func(uow ExceptionUoW) error {
		return uow.EscalationRepository().Add(ctx, escalation)
	})
}

func (e remediationEffects) inTx(ctx context.Context, fn func(uow ExceptionUoW) error) error {
	uow := e.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err := fn(uow); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
