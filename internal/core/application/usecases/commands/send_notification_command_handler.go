package commands

import (
	"context"
	"time"

	"dispatch/internal/core/domain/model/appointment"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/notification"
	"dispatch/internal/core/ports"
)

// SendNotificationCommandHandler stores a notification and delivers it at once.
//
// The notification is committed as pending before the send, so a crash between the
// two leaves it for the dispatch job. The returned notification is sent when at
// least one channel succeeded and failed otherwise; a failed delivery is not an error.
type SendNotificationCommandHandler struct {
	delivery notificationDelivery
}

// NewSendNotificationCommandHandler creates a handler delivering through sender.
func NewSendNotificationCommandHandler(
	uowFactory NotificationUoWFactory,
	sender ports.NotificationSender,
	now func() time.Time,
) SendNotificationCommandHandler {
	if now == nil {
		now = time.Now
	}
	return SendNotificationCommandHandler{
		delivery: notificationDelivery{uowFactory: uowFactory, sender: sender, now: now},
	}
}

// Handle creates, sends and updates the notification.
// Returns errs.ErrObjectNotFound when the customer does not exist.
func (h *SendNotificationCommandHandler) Handle(
	ctx context.Context,
	cmd SendNotificationCommand,
) (*notification.Notification, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	var (
		customer *appointment.Customer
		n        *notification.Notification
	)
	err := h.delivery.inTx(ctx, func(uow NotificationUoW) error {
		var err error
		customer, err = uow.CustomerRepository().Get(ctx, cmd.CustomerID())
		if err != nil {
			return err
		}

		n, err = notification.NewNotification(kernel.NewUUID(), customer.ID(), cmd.Type(), cmd.Message(), h.delivery.now())
		if err != nil {
			return err
		}

		return uow.NotificationRepository().Add(ctx, n)
	})
	if err != nil {
		return nil, err
	}

	if err = h.delivery.deliver(ctx, customer, n); err != nil {
		return nil, err
	}

	return n, nil
}
