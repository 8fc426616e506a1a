package notify_test

import (
	"context"
	"errors"
	"testing"

	"dispatch/internal/adapters/out/notify"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/notification"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sesv2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

type MockSES struct{ mock.Mock }

func (m *MockSES) SendEmail(ctx context.Context, params *sesv2.SendEmailInput, _ ...func(*sesv2.Options)) (*sesv2.SendEmailOutput, error) {
	args := m.Called(ctx, params)
	out, _ := args.Get(0).(*sesv2.SendEmailOutput)
	return out, args.Error(1)
}

func recipient() notification.Recipient {
	return notification.Recipient{
		CustomerID: kernel.NewUUID(),
		Name:       "Ada",
		Email:      "ada@example.com",
		Phone:      "+4915100000",
	}
}

func TestEmailChannel_Deliver(t *testing.T) {
	ctx := context.Background()
	appointmentID := kernel.NewUUID()
	msg := notification.Message{Title: "Delivery Delay", Body: "Running late", AppointmentID: &appointmentID}

	ses := new(MockSES)
	ses.On("SendEmail", ctx, mock.MatchedBy(func(in *sesv2.SendEmailInput) bool {
		body := aws.ToString(in.Content.Simple.Body.Text.Data)
		return aws.ToString(in.FromEmailAddress) == "noreply@dispatch.test" &&
			in.Destination.ToAddresses[0] == "ada@example.com" &&
			aws.ToString(in.Content.Simple.Subject.Data) == "Delivery Delay" &&
			assert.Contains(t, body, "Hello Ada") &&
			assert.Contains(t, body, appointmentID.String())
	})).Return(&sesv2.SendEmailOutput{MessageId: aws.String("m-1")}, nil).Once()

	ch := notify.NewEmailChannel(ses, "noreply@dispatch.test")
	require.NoError(t, ch.Deliver(ctx, recipient(), msg))
	assert.Equal(t, notification.ChannelEmail, ch.Name())
	ses.AssertExpectations(t)
}

func TestEmailChannel_DeliverError(t *testing.T) {
	ses := new(MockSES)
	ses.On("SendEmail", mock.Anything, mock.Anything).Return(nil, errors.New("throttled"))

	ch := notify.NewEmailChannel(ses, "noreply@dispatch.test")
	err := ch.Deliver(context.Background(), recipient(), notification.Message{Title: "t", Body: "b"})
	require.ErrorContains(t, err, "throttled")
}

func TestLogSMSChannel_Deliver(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	ch := notify.NewLogSMSChannel(zap.New(core))

	require.NoError(t, ch.Deliver(context.Background(), recipient(), notification.Message{Title: "t", Body: "On the way"}))

	entries := logs.FilterMessage("sms sent").All()
	require.Len(t, entries, 1)
	assert.Equal(t, "+4915100000", entries[0].ContextMap()["to"])
	assert.Equal(t, "On the way", entries[0].ContextMap()["body"])
}

func TestMultiChannelSender_Send(t *testing.T) {
	ctx := context.Background()
	ses := new(MockSES)
	ses.On("SendEmail", ctx, mock.Anything).Return(nil, errors.New("bounced"))

	sender := notify.NewMultiChannelSender(nil,
		notify.NewEmailChannel(ses, "noreply@dispatch.test"),
		notify.NewLogSMSChannel(nil),
	)

	report, err := sender.Send(ctx, recipient(), notification.Message{Title: "t", Body: "b"})
	require.NoError(t, err)
	assert.Equal(t, map[notification.Channel]bool{
		notification.ChannelEmail: false,
		notification.ChannelSMS:   true,
	}, report.Channels)
	assert.True(t, report.Success())
}

func TestMultiChannelSender_SkipsUnreachableChannels(t *testing.T) {
	ses := new(MockSES)
	sender := notify.NewMultiChannelSender(nil,
		notify.NewEmailChannel(ses, "noreply@dispatch.test"),
		notify.NewLogSMSChannel(nil),
	)

	r := recipient()
	r.Email = ""
	report, err := sender.Send(context.Background(), r, notification.Message{Title: "t", Body: "b"})
	require.NoError(t, err)
	assert.Equal(t, []notification.Channel{notification.ChannelSMS}, report.Attempted())
	ses.AssertNotCalled(t, "SendEmail", mock.Anything, mock.Anything)
}

func TestMultiChannelSender_NoReachableChannel(t *testing.T) {
	sender := notify.NewMultiChannelSender(nil, notify.NewLogSMSChannel(nil))

	r := recipient()
	r.Phone = ""
	report, err := sender.Send(context.Background(), r, notification.Message{Title: "t", Body: "b"})
	require.ErrorIs(t, err, notify.ErrNoReachableChannel)
	assert.False(t, report.Success())
}
