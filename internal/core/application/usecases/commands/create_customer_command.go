package commands

import (
	"errors"
	"strings"

	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/guard"
)

var (
	ErrCreateCustomerCommandIsNotConstructed = errors.New(
		"CreateCustomerCommand must be created via NewCreateCustomerCommand constructor",
	)
)

// CreateCustomerCommand registers a customer. Email and phone number are optional.
type CreateCustomerCommand struct { //nolint:recvcheck //using for validation
	name        string
	email       string
	phoneNumber string

	guard guard.ConstructorGuard
}

func NewCreateCustomerCommand(name, email, phoneNumber string) (CreateCustomerCommand, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return CreateCustomerCommand{}, errs.NewValueIsRequiredError("name")
	}

	return CreateCustomerCommand{
		name:        name,
		email:       strings.TrimSpace(email),
		phoneNumber: strings.TrimSpace(phoneNumber),
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateCustomerCommand) Validate() error {
	return c.guard.Validate(ErrCreateCustomerCommandIsNotConstructed)
}

func (c CreateCustomerCommand) Name() string {
	return c.name
}

func (c CreateCustomerCommand) Email() string {
	return c.email
}

func (c CreateCustomerCommand) PhoneNumber() string {
	return c.phoneNumber
}
