package commands

import (
	"context"

	"dispatch/internal/core/domain/model/appointment"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"
)

// CreateCustomerCommandHandler registers customers. Two customers never share an
// email address; customers without one are not checked.
type CreateCustomerCommandHandler struct {
	uowFactory CustomerUoWFactory
}

func NewCreateCustomerCommandHandler(uowFactory CustomerUoWFactory) CreateCustomerCommandHandler {
	return CreateCustomerCommandHandler{uowFactory: uowFactory}
}

// Handle persists a new customer. Returns errs.ErrObjectAlreadyExists when the
// email is registered already.
func (h *CreateCustomerCommandHandler) Handle(ctx context.Context, cmd CreateCustomerCommand) (*appointment.Customer, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	c, err := appointment.NewCustomer(kernel.NewUUID(), cmd.Name(), cmd.Email(), cmd.PhoneNumber())
	if err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if c.HasEmail() {
		taken, existsErr := uow.CustomerRepository().ExistsByEmail(ctx, c.Email())
		if existsErr != nil {
			return nil, existsErr
		}
		if taken {
			return nil, errs.NewObjectAlreadyExistsError("email", c.Email())
		}
	}

	if err = uow.CustomerRepository().Add(ctx, c); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return c, nil
}
