package mail

import (
	"blogs/internal/config"
	"fmt"
	"strings"
)

// NewTransport builds the transport selected by cfg.MailTransport.
func NewTransport(cfg config.Config) (Transport, error) {
	switch strings.ToLower(strings.TrimSpace(cfg.MailTransport)) {
	case "", TransportLog:
		return LogTransport{}, nil
	case TransportSMTP:
		return NewSMTPTransport(cfg.MailSMTPURL, cfg.MailFrom, cfg.MailFromName, cfg.MailSMTPInsecure)
	case TransportResend:
		return NewResendTransport(cfg.MailResendAPIKey, cfg.MailFrom, cfg.MailFromName)
	default:
		return nil, fmt.Errorf("unsupported mail transport: %s", cfg.MailTransport)
	}
}
