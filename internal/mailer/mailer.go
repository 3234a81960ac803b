// Package mailer sends best-effort SMTP notifications.
package mailer

import (
	"fmt"

	"github.com/rs/zerolog"
	"gopkg.in/gomail.v2"

	"github.com/wementor/mentor-directory-api/internal/config"
)

// Sender sends a plain-text email to the given recipients.
type Sender interface {
	SendSimple(to []string, subject, body string) error
}

// Mailer sends email through the configured SMTP relay.
type Mailer struct {
	from   string
	dialer *gomail.Dialer
}

// New returns a Mailer, or nil when SMTP is not configured; callers treat a
// nil mailer as notifications-disabled.
func New(logger *zerolog.Logger, cfg config.SMTPConfig) *Mailer {
	if cfg.Host == "" {
		logger.Warn().Msg("SMTP_HOST not set, email notifications disabled")
		return nil
	}

	return &Mailer{
		from:   cfg.From,
		dialer: gomail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password),
	}
}

// SendSimple sends a plain-text email.
func (m *Mailer) SendSimple(to []string, subject, body string) error {
	if len(to) == 0 {
		return fmt.Errorf("no recipients specified")
	}

	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", to...)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/plain", body)

	return m.dialer.DialAndSend(msg)
}
