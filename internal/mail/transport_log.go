package mail

import (
	"context"

	"github.com/sirupsen/logrus"
)

// LogTransport writes messages to the log instead of sending them. Used in
// development.
type LogTransport struct{}

func (LogTransport) Name() string { return TransportLog }

func (LogTransport) Send(ctx context.Context, msg Message) error {
	logrus.WithFields(logrus.Fields{
		"kind":    msg.Kind,
		"to":      msg.To,
		"subject": msg.Subject,
		"body":    msg.Text,
	}).Info("email sent (log transport)")
	return nil
}
