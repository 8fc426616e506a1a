package commands_test

import (
	"testing"
	"time"

	"dispatch/internal/core/application/usecases/commands"
	"dispatch/internal/core/domain/model/appointment"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newAppointmentDetails() commands.AppointmentDetails {
	return commands.AppointmentDetails{
		Date:     time.Date(2025, 3, 3, 9, 0, 0, 0, time.UTC),
		Location: kernel.MustNewLocation(52.52, 13.405).WithAddress("Alexanderplatz 1", "berlin-mitte"),
		Type:     appointment.TypeDelivery,
		Priority: 2,
		Notes:    "ring twice",
	}
}

func newStoredAppointment(t *testing.T) *appointment.Appointment {
	t.Helper()
	a, err := appointment.NewAppointment(kernel.NewUUID(), kernel.NewUUID(), fixedNow,
		kernel.MustNewLocation(1, 1), appointment.TypePickup, 1, "")
	require.NoError(t, err)
	return a
}

func TestNewCreateAppointmentCommand_Invalid(t *testing.T) {
	details := newAppointmentDetails()
	details.Date = time.Time{}
	details.Type = appointment.Type("teleport")

	_, err := commands.NewCreateAppointmentCommand(kernel.UUID{}, details)
	require.ErrorIs(t, err, errs.ErrValueIsRequired)
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestCreateAppointmentCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	customer, err := appointment.NewCustomer(kernel.NewUUID(), "Ada", "", "")
	require.NoError(t, err)
	cmd, err := commands.NewCreateAppointmentCommand(customer.ID(), newAppointmentDetails())
	require.NoError(t, err)

	customers := new(MockCustomerRepository)
	appointments := new(MockAppointmentRepository)
	uow := new(MockAppointmentUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("CustomerRepository").Return(customers).Once(),
		customers.On("Get", ctx, customer.ID()).Return(customer, nil).Once(),
		uow.On("AppointmentRepository").Return(appointments).Once(),
		appointments.On("Add", ctx, mock.Anything).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)
	factory := new(MockAppointmentUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateAppointmentCommandHandler(factory)
	a, err := h.Handle(ctx, cmd)
	require.NoError(t, err)

	assert.Equal(t, appointment.StatusScheduled, a.Status())
	assert.True(t, a.CustomerID().IsEqual(customer.ID()))
	assert.Equal(t, "berlin-mitte", a.Location().Region())
	uow.AssertExpectations(t)
	appointments.AssertExpectations(t)
}

func TestCreateAppointmentCommandHandler_Handle_UnknownCustomer(t *testing.T) {
	ctx := t.Context()
	customerID := kernel.NewUUID()
	cmd, err := commands.NewCreateAppointmentCommand(customerID, newAppointmentDetails())
	require.NoError(t, err)

	customers := new(MockCustomerRepository)
	uow := new(MockAppointmentUoW)
	uow.On("Begin", ctx).Return(nil)
	uow.On("CustomerRepository").Return(customers)
	uow.On("Rollback", ctx).Return(nil)
	customers.On("Get", ctx, customerID).Return(nil, errs.NewObjectNotFoundError("customer", customerID.String()))
	factory := new(MockAppointmentUoWFactory)
	factory.On("Create").Return(uow)

	h := commands.NewCreateAppointmentCommandHandler(factory)
	_, err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrObjectNotFound)
	uow.AssertNotCalled(t, "AppointmentRepository")
}

func TestUpdateAppointmentCommandHandler_Handle_ReschedulesAndKeepsStatus(t *testing.T) {
	ctx := t.Context()
	stored := newStoredAppointment(t)
	require.NoError(t, stored.ChangeStatus(appointment.StatusDelayed))
	cmd, err := commands.NewUpdateAppointmentCommand(stored.ID(), newAppointmentDetails(), "")
	require.NoError(t, err)

	appointments := new(MockAppointmentRepository)
	uow := new(MockAppointmentUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("AppointmentRepository").Return(appointments).Once(),
		appointments.On("Get", ctx, stored.ID()).Return(stored, nil).Once(),
		uow.On("AppointmentRepository").Return(appointments).Once(),
		appointments.On("Update", ctx, stored).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)
	factory := new(MockAppointmentUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewUpdateAppointmentCommandHandler(factory)
	a, err := h.Handle(ctx, cmd)
	require.NoError(t, err)

	assert.Equal(t, appointment.TypeDelivery, a.Type())
	assert.Equal(t, "ring twice", a.Notes())
	assert.Equal(t, appointment.StatusDelayed, a.Status())
	appointments.AssertExpectations(t)
}

func TestUpdateAppointmentCommandHandler_ChangeStatus(t *testing.T) {
	ctx := t.Context()
	stored := newStoredAppointment(t)
	cmd, err := commands.NewChangeAppointmentStatusCommand(stored.ID(), appointment.StatusInProgress)
	require.NoError(t, err)

	appointments := new(MockAppointmentRepository)
	uow := new(MockAppointmentUoW)
	uow.On("Begin", ctx).Return(nil)
	uow.On("AppointmentRepository").Return(appointments)
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil)
	appointments.On("Get", ctx, stored.ID()).Return(stored, nil)
	appointments.On("Update", ctx, mock.MatchedBy(func(a *appointment.Appointment) bool {
		return a.Status() == appointment.StatusInProgress
	})).Return(nil).Once()
	factory := new(MockAppointmentUoWFactory)
	factory.On("Create").Return(uow)

	h := commands.NewUpdateAppointmentCommandHandler(factory)
	a, err := h.ChangeStatus(ctx, cmd)
	require.NoError(t, err)
	assert.Equal(t, appointment.StatusInProgress, a.Status())
	uow.AssertExpectations(t)
}

func TestNewChangeAppointmentStatusCommand_UnknownStatus(t *testing.T) {
	_, err := commands.NewChangeAppointmentStatusCommand(kernel.NewUUID(), appointment.Status("lost"))
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestUpdateAppointmentCommandHandler_UnknownAppointment(t *testing.T) {
	ctx := t.Context()
	id := kernel.NewUUID()
	cmd, err := commands.NewChangeAppointmentStatusCommand(id, appointment.StatusCancelled)
	require.NoError(t, err)

	appointments := new(MockAppointmentRepository)
	uow := new(MockAppointmentUoW)
	uow.On("Begin", ctx).Return(nil)
	uow.On("AppointmentRepository").Return(appointments)
	uow.On("Rollback", ctx).Return(nil)
	appointments.On("Get", ctx, id).Return(nil, errs.NewObjectNotFoundError("appointment", id.String()))
	factory := new(MockAppointmentUoWFactory)
	factory.On("Create").Return(uow)

	h := commands.NewUpdateAppointmentCommandHandler(factory)
	_, err = h.ChangeStatus(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrObjectNotFound)
	appointments.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	uow.AssertNotCalled(t, "Commit", ctx)
}

func TestUpdateAppointmentCommandHandler_Delete(t *testing.T) {
	ctx := t.Context()
	id := kernel.NewUUID()
	cmd, err := commands.NewDeleteAppointmentCommand(id)
	require.NoError(t, err)

	appointments := new(MockAppointmentRepository)
	uow := new(MockAppointmentUoW)
	uow.On("Begin", ctx).Return(nil)
	uow.On("AppointmentRepository").Return(appointments)
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil)
	appointments.On("Delete", ctx, id).Return(nil).Once()
	factory := new(MockAppointmentUoWFactory)
	factory.On("Create").Return(uow)

	h := commands.NewUpdateAppointmentCommandHandler(factory)
	require.NoError(t, h.Delete(ctx, cmd))
	appointments.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestUpdateAppointmentCommandHandler_Delete_Unknown(t *testing.T) {
	ctx := t.Context()
	id := kernel.NewUUID()
	cmd, err := commands.NewDeleteAppointmentCommand(id)
	require.NoError(t, err)

	appointments := new(MockAppointmentRepository)
	uow := new(MockAppointmentUoW)
	uow.On("Begin", ctx).Return(nil)
	uow.On("AppointmentRepository").Return(appointments)
	uow.On("Rollback", ctx).Return(nil)
	appointments.On("Delete", ctx, id).Return(errs.NewObjectNotFoundError("appointment", id.String()))
	factory := new(MockAppointmentUoWFactory)
	factory.On("Create").Return(uow)

	h := commands.NewUpdateAppointmentCommandHandler(factory)
	require.ErrorIs(t, h.Delete(ctx, cmd), errs.ErrObjectNotFound)
	uow.AssertNotCalled(t, "Commit", ctx)
}
