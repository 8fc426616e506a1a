package notify

import (
	"context"

	"dispatch/internal/core/domain/model/notification"

	"go.uber.org/zap"
)

// LogSMSChannel is the SMS gateway used until a provider is contracted:
// it writes the outgoing text to the log and always succeeds.
type LogSMSChannel struct {
	log *zap.Logger
}

func NewLogSMSChannel(log *zap.Logger) *LogSMSChannel {
	if log == nil {
		log = zap.NewNop()
	}
	return &LogSMSChannel{log: log.With(zap.String("component", "sms-gateway"))}
}

func (c *LogSMSChannel) Name() notification.Channel {
	return notification.ChannelSMS
}

func (c *LogSMSChannel) Reaches(recipient notification.Recipient) bool {
	return recipient.Phone != ""
}

func (c *LogSMSChannel) Deliver(_ context.Context, recipient notification.Recipient, message notification.Message) error {
	c.log.Info("sms sent",
		zap.String("to", recipient.Phone),
		zap.String("title", message.Title),
		zap.String("body", message.Body))
	return nil
}
