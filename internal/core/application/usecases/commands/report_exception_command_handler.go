package commands

import (
	"context"
	"time"

	"dispatch/internal/core/domain/model/appointment"
	"dispatch/internal/core/domain/model/exception"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/services"
)

// ReportExceptionResult is a stored exception and the outcome of handling it.
type ReportExceptionResult struct {
	Exception  *exception.Exception
	Resolution services.Resolution
}

// ReportExceptionCommandHandler records a delivery exception and applies the remedy
// for its type.
//
// Handling is not one transaction:
//  1. the exception is stored open
//  2. each remedy side effect commits on its own
//  3. the handled exception is stored again
//
// A failing side effect does not fail the command. It shows up as
// Resolution.Failed and in the stored resolution text. Only errors before handling
// starts, or while storing the outcome, are returned.
type ReportExceptionCommandHandler struct {
	uowFactory ExceptionUoWFactory
	resolver   services.ExceptionResolver
	now        func() time.Time
}

// NewReportExceptionCommandHandler creates a handler over playbook,
// exception.DefaultPlaybook if nil.
func NewReportExceptionCommandHandler(
	uowFactory ExceptionUoWFactory,
	playbook exception.Playbook,
	now func() time.Time,
) ReportExceptionCommandHandler {
	if now == nil {
		now = time.Now
	}
	return ReportExceptionCommandHandler{
		uowFactory: uowFactory,
		resolver:   services.NewExceptionResolver(playbook, now),
		now:        now,
	}
}

// Handle stores, resolves and updates the exception.
func (h *ReportExceptionCommandHandler) Handle(ctx context.Context, cmd ReportExceptionCommand) (ReportExceptionResult, error) {
	if err := cmd.Validate(); err != nil {
		return ReportExceptionResult{}, err
	}

	effects := remediationEffects{uowFactory: h.uowFactory, now: h.now}

	var (
		appt *appointment.Appointment
		exc  *exception.Exception
	)
	err := effects.inTx(ctx, func(uow ExceptionUoW) error {
		var err error
		appt, err = uow.AppointmentRepository().Get(ctx, cmd.AppointmentID())
		if err != nil {
			return err
		}

		exc, err = exception.NewException(
			kernel.NewUUID(),
			cmd.AppointmentID(),
			cmd.Type(),
			cmd.Description(),
			cmd.Severity(),
			h.now(),
		)
		if err != nil {
			return err
		}

		return uow.ExceptionRepository().Add(ctx, exc)
	})
	if err != nil {
		return ReportExceptionResult{}, err
	}

	resolution := h.resolver.Resolve(ctx, exc, appt, effects)

	if err = effects.inTx(ctx, func(uow ExceptionUoW) error {
		return uow.ExceptionRepository().Update(ctx, exc)
	}); err != nil {
		return ReportExceptionResult{}, err
	}

	return ReportExceptionResult{Exception: exc, Resolution: resolution}, nil
}
