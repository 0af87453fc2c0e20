package mail

import (
	"context"
	"errors"
	"fmt"

	"github.com/resend/resend-go/v2"
)

// ResendTransport sends mail through the Resend HTTP API.
type ResendTransport struct {
	client *resend.Client
	from   string
}

// NewResendTransport creates a transport for apiKey.
func NewResendTransport(apiKey, from, fromName string) (*ResendTransport, error) {
	if apiKey == "" {
		return nil, errors.New("email service not configured (missing MAIL_RESEND_API_KEY)")
	}
	sender := from
	if fromName != "" {
		sender = fmt.Sprintf("%s <%s>", fromName, from)
	}
	return &ResendTransport{client: resend.NewClient(apiKey), from: sender}, nil
}

func (t *ResendTransport) Name() string { return TransportResend }

func (t *ResendTransport) Send(ctx context.Context, msg Message) error {
	params := &resend.SendEmailRequest{
		From:    t.from,
		To:      []string{msg.To},
		Subject: msg.Subject,
		Html:    msg.HTML,
		Text:    msg.Text,
	}
	_, err := t.client.Emails.SendWithContext(ctx, params)
	return err
}
