package commands

import (
	"context"
	"time"

	"dispatch/internal/core/domain/model/appointment"
	"dispatch/internal/core/domain/model/notification"
	"dispatch/internal/core/ports"
)

// notificationDelivery sends stored notifications and records the outcome.
// The send happens outside any transaction.
type notificationDelivery struct {
	uowFactory NotificationUoWFactory
	sender     ports.NotificationSender
	now        func() time.Time
}

// deliver sends n to customer and stores the delivery report on n.
// A sender error is recorded as a failed delivery, not returned.
func (d notificationDelivery) deliver(ctx context.Context, customer *appointment.Customer, n *notification.Notification) error {
	report, err := d.sender.Send(ctx, recipientOf(customer), n.Message())
	if err != nil {
		report.Error = err.Error()
	}
	n.ApplyReport(report, d.now())

	return d.inTx(ctx, func(uow NotificationUoW) error {
		return uow.NotificationRepository().Update(ctx, n)
	})
}

func (d notificationDelivery) inTx(ctx context.Context, fn func(uow NotificationUoW) error) error {
	uow := d.uowFactory.Create()
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

func recipientOf(c *appointment.Customer) notification.Recipient {
	return notification.Recipient{
		CustomerID: c.ID(),
		Name:       c.Name(),
		Email:      c.Email(),
		Phone:      c.PhoneNumber(),
	}
}
