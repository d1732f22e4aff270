// Package mailer sends the registration confirmation email through AWS SES.
//
// Sending is best effort: every provider failure is folded into a
// NotificationOutcome and the caller decides what to surface. Nothing here
// can fail an intake request.
package mailer

import (
	"context"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/sesv2"
	"github.com/aws/aws-sdk-go-v2/service/sesv2/types"

	appconfig "github.com/aiya/event-intake/internal/config"
	"github.com/aiya/event-intake/internal/domain"
	"github.com/aiya/event-intake/internal/pkg/logger"
)

const confirmationSubject = "Confirmation: AIYA Seminar Registration"

// sendEmailAPI is the slice of the SES v2 client the mailer uses.
type sendEmailAPI interface {
	SendEmail(ctx context.Context, params *sesv2.SendEmailInput, optFns ...func(*sesv2.Options)) (*sesv2.SendEmailOutput, error)
}

// Client sends confirmation emails via AWS SES v2.
type Client struct {
	api     sendEmailAPI
	sender  string
	timeout time.Duration
}

// NewClient creates an SES mailer. Static credentials are used when
// configured; otherwise the AWS SDK default chain applies.
func NewClient(ctx context.Context, cfg appconfig.SESConfig) (*Client, error) {
	opts := []func(*awsconfig.LoadOptions) error{
		awsconfig.WithRegion(cfg.Region),
	}
	if cfg.AccessKey != "" && cfg.SecretKey != "" {
		opts = append(opts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKey, cfg.SecretKey, ""),
		))
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, err
	}

	return &Client{
		api:     sesv2.NewFromConfig(awsCfg),
		sender:  cfg.Sender,
		timeout: 10 * time.Second,
	}, nil
}

// SetAPI replaces the SES client (useful for testing).
func (c *Client) SetAPI(api sendEmailAPI) { c.api = api }

// SendConfirmation builds the bilingual confirmation message for firstName
// and submits it to SES. A per-call timeout bounds how long a slow provider
// can hold the request; timeouts are reported like any other failure.
func (c *Client) SendConfirmation(ctx context.Context, toEmail, firstName string) domain.NotificationOutcome {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	input := &sesv2.SendEmailInput{
		FromEmailAddress: aws.String(c.sender),
		Destination:      &types.Destination{ToAddresses: []string{toEmail}},
		Content: &types.EmailContent{
			Simple: &types.Message{
				Subject: &types.Content{Data: aws.String(confirmationSubject), Charset: aws.String("UTF-8")},
				Body: &types.Body{
					Html: &types.Content{Data: aws.String(confirmationHTML(firstName)), Charset: aws.String("UTF-8")},
					Text: &types.Content{Data: aws.String(confirmationText(firstName)), Charset: aws.String("UTF-8")},
				},
			},
		},
	}

	result, err := c.api.SendEmail(ctx, input)
	if err != nil {
		logger.Warn("ses send failed", "recipient", toEmail, "error", err.Error())
		return domain.NotificationOutcome{Sent: false, Err: err.Error()}
	}

	messageID := ""
	if result.MessageId != nil {
		messageID = *result.MessageId
	}
	logger.Info("ses send ok", "recipient", toEmail, "message_id", messageID)

	return domain.NotificationOutcome{Sent: true, MessageID: messageID}
}
