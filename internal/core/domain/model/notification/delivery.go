package notification

import (
	"maps"
	"slices"

	"dispatch/internal/core/domain/model/kernel"
)

// Channel is a delivery channel.
type Channel string

const (
	ChannelEmail Channel = "email"
	ChannelSMS   Channel = "sms"
)

// Recipient is who a message is delivered to. Empty Email or Phone disables that channel.
type Recipient struct {
	CustomerID kernel.UUID
	Name       string
	Email      string
	Phone      string
}

// Message is the content of one notification.
type Message struct {
	Title         string
	Body          string
	AppointmentID *kernel.UUID
}

// DeliveryReport holds the per-channel outcome of a send.
// A channel missing from Channels was not attempted.
type DeliveryReport struct {
	Channels map[Channel]bool
	Error    string
}

// NewDeliveryReport returns an empty report.
func NewDeliveryReport() DeliveryReport {
	return DeliveryReport{Channels: make(map[Channel]bool)}
}

// Record stores the outcome of one channel.
func (r *DeliveryReport) Record(channel Channel, ok bool) {
	if r.Channels == nil {
		r.Channels = make(map[Channel]bool)
	}
	r.Channels[channel] = ok
}

// Success reports whether any channel succeeded.
func (r DeliveryReport) Success() bool {
	for _, ok := range r.Channels {
		if ok {
			return true
		}
	}
	return false
}

// Attempted returns the attempted channels in a stable order.
func (r DeliveryReport) Attempted() []Channel {
	return slices.Sorted(maps.Keys(r.Channels))
}
