package notify

import (
	"context"
	"fmt"

	"dispatch/internal/core/domain/model/notification"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/sesv2"
	"github.com/aws/aws-sdk-go-v2/service/sesv2/types"
)

// SESAPI is the part of the SES v2 client used for sending.
type SESAPI interface {
	SendEmail(ctx context.Context, params *sesv2.SendEmailInput, optFns ...func(*sesv2.Options)) (*sesv2.SendEmailOutput, error)
}

// EmailChannel sends plain-text email through Amazon SES.
type EmailChannel struct {
	client SESAPI
	from   string
}

// NewSESClient builds an SES v2 client from the default AWS credential chain.
func NewSESClient(ctx context.Context, region string) (*sesv2.Client, error) {
	cfg, err := config.LoadDefaultConfig(ctx, config.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}
	return sesv2.NewFromConfig(cfg), nil
}

func NewEmailChannel(client SESAPI, from string) *EmailChannel {
	return &EmailChannel{client: client, from: from}
}

func (c *EmailChannel) Name() notification.Channel {
	return notification.ChannelEmail
}

func (c *EmailChannel) Reaches(recipient notification.Recipient) bool {
	return recipient.Email != ""
}

func (c *EmailChannel) Deliver(ctx context.Context, recipient notification.Recipient, message notification.Message) error {
	input := &sesv2.SendEmailInput{
		FromEmailAddress: aws.String(c.from),
		Destination: &types.Destination{
			ToAddresses: []string{recipient.Email},
		},
		Content: &types.EmailContent{
			Simple: &types.Message{
				Subject: &types.Content{Data: aws.String(message.Title), Charset: aws.String("UTF-8")},
				Body: &types.Body{
					Text: &types.Content{Data: aws.String(emailBody(recipient, message)), Charset: aws.String("UTF-8")},
				},
			},
		},
	}

	if _, err := c.client.SendEmail(ctx, input); err != nil {
		return fmt.Errorf("ses send to %s: %w", recipient.Email, err)
	}
	return nil
}

func emailBody(recipient notification.Recipient, message notification.Message) string {
	greeting := "Hello"
	if recipient.Name != "" {
		greeting += " " + recipient.Name
	}
	body := greeting + ",\n\n" + message.Body
	if message.AppointmentID != nil {
		body += "\n\nAppointment: " + message.AppointmentID.String()
	}
	return body
}
