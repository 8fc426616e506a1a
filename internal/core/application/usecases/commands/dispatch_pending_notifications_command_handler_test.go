package commands_test

import (
	"context"
	"errors"
	"testing"

	"dispatch/internal/core/application/usecases/commands"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/notification"
	"dispatch/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newPendingNotification(t *testing.T, customerID kernel.UUID, body string) *notification.Notification {
	t.Helper()
	n, err := notification.NewNotification(kernel.NewUUID(), customerID, notification.TypeException,
		notification.Message{Title: "Delivery Delay", Body: body}, fixedNow)
	require.NoError(t, err)
	return n
}

func TestDispatchPendingNotificationsCommandHandler_Handle(t *testing.T) {
	ctx := t.Context()
	customer := newTestCustomer(t)
	goneCustomerID := kernel.NewUUID()

	delivered := newPendingNotification(t, customer.ID(), "first")
	undelivered := newPendingNotification(t, customer.ID(), "second")
	orphaned := newPendingNotification(t, goneCustomerID, "third")

	f := newNotificationFixture()
	f.notificationRepo.On("GetPending", ctx, 10).
		Return([]*notification.Notification{delivered, undelivered, orphaned}, nil).Once()
	f.customerRepo.On("Get", ctx, customer.ID()).Return(customer, nil).Twice()
	f.customerRepo.On("Get", ctx, goneCustomerID).
		Return(nil, errs.NewObjectNotFoundError("customer", goneCustomerID.String())).Once()

	failed := notification.NewDeliveryReport()
	failed.Record(notification.ChannelEmail, false)
	f.sender.On("Send", ctx, mock.Anything, delivered.Message()).Return(successReport(), nil).Once()
	f.sender.On("Send", ctx, mock.Anything, undelivered.Message()).Return(failed, nil).Once()
	f.notificationRepo.On("Update", ctx, mock.Anything).Return(nil).Times(3)

	cmd, err := commands.NewDispatchPendingNotificationsCommand(10)
	require.NoError(t, err)

	h := commands.NewDispatchPendingNotificationsCommandHandler(f.factory, f.sender, clock)
	result, err := h.Handle(ctx, cmd)
	require.NoError(t, err)

	assert.Equal(t, commands.DispatchResult{Sent: 1, Failed: 2}, result)
	assert.Equal(t, 3, result.Total())
	assert.Equal(t, notification.StatusSent, delivered.Status())
	assert.Equal(t, notification.StatusFailed, undelivered.Status())
	assert.Equal(t, "no channel delivered the notification", undelivered.LastError())
	assert.Equal(t, notification.StatusFailed, orphaned.Status())
	assert.Equal(t, "customer not found", orphaned.LastError())

	f.customerRepo.AssertExpectations(t)
	f.notificationRepo.AssertExpectations(t)
}

func TestDispatchPendingNotificationsCommandHandler_Handle_NothingPending(t *testing.T) {
	ctx := t.Context()
	f := newNotificationFixture()
	f.notificationRepo.On("GetPending", ctx, commands.DefaultDispatchBatchSize).
		Return([]*notification.Notification{}, nil).Once()

	cmd, err := commands.NewDispatchPendingNotificationsCommand(0)
	require.NoError(t, err)

	h := commands.NewDispatchPendingNotificationsCommandHandler(f.factory, f.sender, clock)
	result, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	assert.Zero(t, result.Total())
	f.sender.AssertNotCalled(t, "Send", mock.Anything, mock.Anything, mock.Anything)
}

func TestDispatchPendingNotificationsCommandHandler_Handle_StorageErrorAborts(t *testing.T) {
	ctx := t.Context()
	customer := newTestCustomer(t)
	first := newPendingNotification(t, customer.ID(), "late")
	second := newPendingNotification(t, customer.ID(), "late")

	f := newNotificationFixture()
	f.notificationRepo.On("GetPending", ctx, 5).Return([]*notification.Notification{first, second}, nil)
	f.customerRepo.On("Get", ctx, customer.ID()).Return(nil, errors.New("connection reset")).Once()

	cmd, err := commands.NewDispatchPendingNotificationsCommand(5)
	require.NoError(t, err)

	h := commands.NewDispatchPendingNotificationsCommandHandler(f.factory, f.sender, clock)
	_, err = h.Handle(ctx, cmd)
	require.EqualError(t, err, "connection reset")
	f.sender.AssertNotCalled(t, "Send", mock.Anything, mock.Anything, mock.Anything)
	assert.True(t, second.IsPending())
}

func TestDispatchPendingNotificationsCommandHandler_Handle_StopsWhenCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(t.Context())
	customer := newTestCustomer(t)

	f := newNotificationFixture()
	f.notificationRepo.On("GetPending", ctx, 5).
		Run(func(mock.Arguments) { cancel() }).
		Return([]*notification.Notification{newPendingNotification(t, customer.ID(), "late")}, nil)

	cmd, err := commands.NewDispatchPendingNotificationsCommand(5)
	require.NoError(t, err)

	h := commands.NewDispatchPendingNotificationsCommandHandler(f.factory, f.sender, clock)
	_, err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, context.Canceled)
	f.customerRepo.AssertNotCalled(t, "Get", mock.Anything, mock.Anything)
}

func TestNewDispatchPendingNotificationsCommand(t *testing.T) {
	cmd, err := commands.NewDispatchPendingNotificationsCommand(0)
	require.NoError(t, err)
	assert.Equal(t, commands.DefaultDispatchBatchSize, cmd.BatchSize())

	_, err = commands.NewDispatchPendingNotificationsCommand(-1)
	require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)

	_, err = commands.NewDispatchPendingNotificationsCommand(commands.MaxDispatchBatchSize + 1)
	require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)

	require.ErrorIs(t, commands.DispatchPendingNotificationsCommand{}.Validate(),
		commands.ErrDispatchPendingNotificationsCommandIsNotConstructed)
}
