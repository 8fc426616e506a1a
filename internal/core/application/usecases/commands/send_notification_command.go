package commands

import (
	"errors"
	"strings"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/notification"
	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/guard"
)

// DefaultNotificationTitle is used when a notification is sent without a title.
const DefaultNotificationTitle = "Notification"

var (
	ErrSendNotificationCommandIsNotConstructed = errors.New(
		"SendNotificationCommand must be created via NewSendNotificationCommand constructor",
	)
	ErrNotificationTypeIsRequired = errs.NewValueIsRequiredError("type")
	ErrMessageIsRequired          = errs.NewValueIsRequiredError("message")
)

// SendNotificationCommand sends a message to a customer right away.
//
// Example:
//
//	cmd, err := NewSendNotificationCommand(customerID, "reminder", "", "Your courier arrives at 10:00", nil)
//	n, err := handler.Handle(ctx, cmd)
//	fmt.Println(n.Status()) // sent or failed
type SendNotificationCommand struct { //nolint:recvcheck //using for validation
	customerID    kernel.UUID
	ntype         string
	title         string
	body          string
	appointmentID *kernel.UUID

	guard guard.ConstructorGuard
}

// NewSendNotificationCommand creates a notification command. An empty title
// defaults to DefaultNotificationTitle; appointmentID is optional.
func NewSendNotificationCommand(
	customerID kernel.UUID,
	ntype string,
	title string,
	body string,
	appointmentID *kernel.UUID,
) (SendNotificationCommand, error) {
	cmd := SendNotificationCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setCustomerID(customerID),
		cmd.setType(ntype),
		cmd.setTitle(title),
		cmd.setBody(body),
		cmd.setAppointmentID(appointmentID),
	); err != nil {
		return SendNotificationCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c SendNotificationCommand) Validate() error {
	return c.guard.Validate(ErrSendNotificationCommandIsNotConstructed)
}

func (c SendNotificationCommand) CustomerID() kernel.UUID {
	return c.customerID
}

func (c SendNotificationCommand) Type() string {
	return c.ntype
}

// Message returns the content to deliver.
func (c SendNotificationCommand) Message() notification.Message {
	return notification.Message{
		Title:         c.title,
		Body:          c.body,
		AppointmentID: c.appointmentID,
	}
}

func (c *SendNotificationCommand) setCustomerID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.customerID = id
	return nil
}

func (c *SendNotificationCommand) setType(ntype string) error {
	if strings.TrimSpace(ntype) == "" {
		return ErrNotificationTypeIsRequired
	}

	c.ntype = ntype
	return nil
}

func (c *SendNotificationCommand) setTitle(title string) error {
	if strings.TrimSpace(title) == "" {
		title = DefaultNotificationTitle
	}

	c.title = title
	return nil
}

func (c *SendNotificationCommand) setBody(body string) error {
	if strings.TrimSpace(body) == "" {
		return ErrMessageIsRequired
	}

	c.body = body
	return nil
}

func (c *SendNotificationCommand) setAppointmentID(id *kernel.UUID) error {
	if id == nil {
		return nil
	}
	if err := id.Validate(); err != nil {
		return err
	}

	appointmentID := *id
	c.appointmentID = &appointmentID
	return nil
}
