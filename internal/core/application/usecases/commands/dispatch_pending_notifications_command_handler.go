package commands

import (
	"context"
	"errors"
	"time"

	"dispatch/internal/core/domain/model/appointment"
	"dispatch/internal/core/domain/model/notification"
	"dispatch/internal/core/ports"
	"dispatch/internal/pkg/errs"
)

// DispatchResult counts the outcome of one dispatch run.
type DispatchResult struct {
	Sent   int
	Failed int
}

// Total returns the number of notifications attempted.
func (r DispatchResult) Total() int {
	return r.Sent + r.Failed
}

// DispatchPendingNotificationsCommandHandler delivers notifications left pending,
// such as those emitted while handling delivery exceptions.
//
// Each notification is sent and stored on its own, so one failure does not hold
// back the rest of the batch. A notification whose customer no longer exists is
// marked failed without a send. Storage errors abort the run.
type DispatchPendingNotificationsCommandHandler struct {
	delivery notificationDelivery
}

// NewDispatchPendingNotificationsCommandHandler creates a handler delivering through sender.
func NewDispatchPendingNotificationsCommandHandler(
	uowFactory NotificationUoWFactory,
	sender ports.NotificationSender,
	now func() time.Time,
) DispatchPendingNotificationsCommandHandler {
	if now == nil {
		now = time.Now
	}
	return DispatchPendingNotificationsCommandHandler{
		delivery: notificationDelivery{uowFactory: uowFactory, sender: sender, now: now},
	}
}

// Handle sends up to cmd.BatchSize() pending notifications, oldest first.
func (h *DispatchPendingNotificationsCommandHandler) Handle(
	ctx context.Context,
	cmd DispatchPendingNotificationsCommand,
) (DispatchResult, error) {
	if err := cmd.Validate(); err != nil {
		return DispatchResult{}, err
	}

	var pending []*notification.Notification
	err := h.delivery.inTx(ctx, func(uow NotificationUoW) error {
		var err error
		pending, err = uow.NotificationRepository().GetPending(ctx, cmd.BatchSize())
		return err
	})
	if err != nil {
		return DispatchResult{}, err
	}

	var result DispatchResult
	for _, n := range pending {
		if err = ctx.Err(); err != nil {
			return result, err
		}

		if err = h.dispatchOne(ctx, n); err != nil {
			return result, err
		}

		if n.Status() == notification.StatusSent {
			result.Sent++
		} else {
			result.Failed++
		}
	}

	return result, nil
}

func (h *DispatchPendingNotificationsCommandHandler) dispatchOne(ctx context.Context, n *notification.Notification) error {
	var customer *appointment.Customer
	err := h.delivery.inTx(ctx, func(uow NotificationUoW) error {
		var err error
		customer, err = uow.CustomerRepository().Get(ctx, n.CustomerID())
		return err
	})

	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		n.ApplyReport(notification.DeliveryReport{Error: "customer not found"}, h.delivery.now())
		return h.delivery.inTx(ctx, func(uow NotificationUoW) error {
			return uow.NotificationRepository().Update(ctx, n)
		})
	case err != nil:
		return err
	}

	return h.delivery.deliver(ctx, customer, n)
}
