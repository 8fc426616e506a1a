package appointment

import (
	"strings"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"
)

// Customer is the recipient of appointments and notifications.
// Email and phone number are both optional; each enables one notification channel.
type Customer struct {
	id          kernel.UUID
	name        string
	email       string
	phoneNumber string
}

// NewCustomer creates a Customer.
func NewCustomer(id kernel.UUID, name, email, phoneNumber string) (*Customer, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if strings.TrimSpace(name) == "" {
		return nil, errs.NewValueIsRequiredError("name")
	}
	return &Customer{
		id:          id,
		name:        name,
		email:       strings.TrimSpace(email),
		phoneNumber: strings.TrimSpace(phoneNumber),
	}, nil
}

func (c *Customer) ID() kernel.UUID {
	return c.id
}

func (c *Customer) Name() string {
	return c.name
}

func (c *Customer) Email() string {
	return c.email
}

func (c *Customer) PhoneNumber() string {
	return c.phoneNumber
}

// HasEmail reports whether the customer can be reached by email.
func (c *Customer) HasEmail() bool {
	return c.email != ""
}

// HasPhone reports whether the customer can be reached by SMS.
func (c *Customer) HasPhone() bool {
	return c.phoneNumber != ""
}
