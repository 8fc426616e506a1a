// Package notify delivers customer notifications over email and SMS.
package notify

import (
	"context"
	"errors"

	"dispatch/internal/core/domain/model/notification"
	"dispatch/internal/core/ports"

	"go.uber.org/zap"
)

var ErrNoReachableChannel = errors.New("recipient has no reachable channel")

var _ ports.NotificationSender = (*MultiChannelSender)(nil)

// Channel is one delivery path.
type Channel interface {
	Name() notification.Channel

	// Reaches reports whether the recipient has an address on this channel.
	Reaches(recipient notification.Recipient) bool

	Deliver(ctx context.Context, recipient notification.Recipient, message notification.Message) error
}

// MultiChannelSender tries every channel that reaches the recipient.
// A failing channel is recorded in the report and does not stop the others.
type MultiChannelSender struct {
	channels []Channel
	log      *zap.Logger
}

func NewMultiChannelSender(log *zap.Logger, channels ...Channel) *MultiChannelSender {
	if log == nil {
		log = zap.NewNop()
	}
	return &MultiChannelSender{
		channels: channels,
		log:      log.With(zap.String("component", "notification-sender")),
	}
}

// Send returns ErrNoReachableChannel when no channel reaches the recipient.
func (s *MultiChannelSender) Send(
	ctx context.Context,
	recipient notification.Recipient,
	message notification.Message,
) (notification.DeliveryReport, error) {
	report := notification.NewDeliveryReport()

	for _, ch := range s.channels {
		if !ch.Reaches(recipient) {
			continue
		}
		if err := ctx.Err(); err != nil {
			return report, err
		}

		err := ch.Deliver(ctx, recipient, message)
		report.Record(ch.Name(), err == nil)
		if err != nil {
			s.log.Warn("channel delivery failed",
				zap.String("channel", string(ch.Name())),
				zap.String("customer_id", recipient.CustomerID.String()),
				zap.Error(err))
		}
	}

	if len(report.Channels) == 0 {
		return report, ErrNoReachableChannel
	}
	return report, nil
}
