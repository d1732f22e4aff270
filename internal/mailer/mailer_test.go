package mailer

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sesv2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSES struct {
	input *sesv2.SendEmailInput
	out   *sesv2.SendEmailOutput
	err   error
}

func (f *fakeSES) SendEmail(_ context.Context, params *sesv2.SendEmailInput, _ ...func(*sesv2.Options)) (*sesv2.SendEmailOutput, error) {
	f.input = params
	return f.out, f.err
}

func newTestClient(api sendEmailAPI) *Client {
	c := &Client{sender: "noreply@aiya.ai", timeout: 10 * time.Second}
	c.SetAPI(api)
	return c
}

func TestSendConfirmationSuccess(t *testing.T) {
	fake := &fakeSES{out: &sesv2.SendEmailOutput{MessageId: aws.String("msg-123")}}
	c := newTestClient(fake)

	outcome := c.SendConfirmation(context.Background(), "a@x.com", "A")

	assert.True(t, outcome.Sent)
	assert.Equal(t, "msg-123", outcome.MessageID)
	assert.Empty(t, outcome.Err)

	require.NotNil(t, fake.input)
	assert.Equal(t, "noreply@aiya.ai", *fake.input.FromEmailAddress)
	assert.Equal(t, []string{"a@x.com"}, fake.input.Destination.ToAddresses)
	assert.Equal(t, confirmationSubject, *fake.input.Content.Simple.Subject.Data)
	assert.Contains(t, *fake.input.Content.Simple.Body.Html.Data, "คุณA")
	assert.Contains(t, *fake.input.Content.Simple.Body.Text.Data, "Hi A,")
}

func TestSendConfirmationProviderFailure(t *testing.T) {
	fake := &fakeSES{err: errors.New("MessageRejected: sender not verified")}
	c := newTestClient(fake)

	outcome := c.SendConfirmation(context.Background(), "a@x.com", "A")

	assert.False(t, outcome.Sent)
	assert.Empty(t, outcome.MessageID)
	assert.Contains(t, outcome.Err, "MessageRejected")
}

func TestConfirmationTemplateEscapes(t *testing.T) {
	body := confirmationHTML("<script>")
	assert.NotContains(t, body, "<script>")
	assert.Contains(t, body, "&lt;script&gt;")
}
