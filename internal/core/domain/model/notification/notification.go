package notification

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"
)

// TypeException marks notifications emitted while handling a delivery exception.
const TypeException = "exception"

// Status is the delivery status of a notification.
type Status string

const (
	StatusPending Status = "pending"
	StatusSent    Status = "sent"
	StatusFailed  Status = "failed"
)

// Validate checks that s is a known notification status.
func (s Status) Validate() error {
	switch s {
	case StatusPending, StatusSent, StatusFailed:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause(
			"status is invalid", fmt.Errorf("%q is not a valid notification status", string(s)))
	}
}

// Notification is a message addressed to a customer.
type Notification struct {
	id         kernel.UUID
	customerID kernel.UUID
	ntype      string
	message    Message
	status     Status
	channels   map[Channel]bool
	lastError  string
	createdAt  time.Time
	sentAt     *time.Time
}

// NewNotification creates a pending notification.
//
// Example:
//
//	n, err := notification.NewNotification(kernel.NewUUID(), customerID, notification.TypeException,
//	    notification.Message{Title: "Delivery Delay", Body: "Your delivery is delayed: traffic."}, time.Now())
func NewNotification(id, customerID kernel.UUID, ntype string, message Message, createdAt time.Time) (*Notification, error) {
	var titleErr, bodyErr error
	if strings.TrimSpace(message.Title) == "" {
		titleErr = errs.NewValueIsRequiredError("title")
	}
	if strings.TrimSpace(message.Body) == "" {
		bodyErr = errs.NewValueIsRequiredError("message")
	}
	if err := errors.Join(id.Validate(), customerID.Validate(), titleErr, bodyErr); err != nil {
		return nil, err
	}
	if ntype == "" {
		ntype = "general"
	}

	return &Notification{
		id:         id,
		customerID: customerID,
		ntype:      ntype,
		message:    message,
		status:     StatusPending,
		createdAt:  createdAt,
	}, nil
}

// RestoreNotification rebuilds a Notification from persistence.
func RestoreNotification(
	id, customerID kernel.UUID,
	ntype string,
	message Message,
	status Status,
	channels map[Channel]bool,
	lastError string,
	createdAt time.Time,
	sentAt *time.Time,
) *Notification {
	return &Notification{
		id:         id,
		customerID: customerID,
		ntype:      ntype,
		message:    message,
		status:     status,
		channels:   channels,
		lastError:  lastError,
		createdAt:  createdAt,
		sentAt:     sentAt,
	}
}

func (n *Notification) ID() kernel.UUID {
	return n.id
}

func (n *Notification) CustomerID() kernel.UUID {
	return n.customerID
}

func (n *Notification) Type() string {
	return n.ntype
}

func (n *Notification) Message() Message {
	return n.message
}

func (n *Notification) Status() Status {
	return n.status
}

func (n *Notification) Channels() map[Channel]bool {
	return n.channels
}

func (n *Notification) LastError() string {
	return n.lastError
}

func (n *Notification) CreatedAt() time.Time {
	return n.createdAt
}

func (n *Notification) SentAt() *time.Time {
	return n.sentAt
}

// IsPending reports whether the notification still awaits delivery.
func (n *Notification) IsPending() bool {
	return n.status == StatusPending
}

// ApplyReport records a delivery attempt: sent if any channel succeeded, failed otherwise.
func (n *Notification) ApplyReport(report DeliveryReport, at time.Time) {
	n.channels = report.Channels
	n.lastError = report.Error
	if report.Success() {
		n.status = StatusSent
		n.sentAt = &at
		return
	}
	n.status = StatusFailed
	if n.lastError == "" {
		n.lastError = "no channel delivered the notification"
	}
}
