// pkg/mailer — outbound merchant notifications. Sends are best-effort:
// callers log failures and move on, a lost email never fails a write.
package mailer

import (
	"gopkg.in/gomail.v2"
)

type Mailer interface {
	Send(subject, body string) error
}

type SMTPMailer struct {
	dialer *gomail.Dialer
	from   string
	to     string
}

// NewSMTP builds a mailer delivering to the merchant inbox.
func NewSMTP(host string, port int, username, password, to string) *SMTPMailer {
	return &SMTPMailer{
		dialer: gomail.NewDialer(host, port, username, password),
		from:   username,
		to:     to,
	}
}

func (m *SMTPMailer) Send(subject, body string) error {
	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", m.to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/plain", body)
	return m.dialer.DialAndSend(msg)
}

// Noop is used when SMTP is not configured (e.g. local dev).
type Noop struct{}

func (Noop) Send(subject, body string) error { return nil }
