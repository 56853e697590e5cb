package mailer

import (
	"net/smtp"

	"kinscreen-backend/config"
)

// Sender delivers a fully built mail message (headers included) to a single
// recipient.
type Sender interface {
	Send(to string, message []byte) error
}

// SMTPMailer sends mail through the configured SMTP relay.
type SMTPMailer struct {
	cfg config.SMTP
}

func New(cfg config.SMTP) *SMTPMailer {
	return &SMTPMailer{cfg: cfg}
}

func (m *SMTPMailer) Send(to string, message []byte) error {
	auth := smtp.PlainAuth("", m.cfg.Username, m.cfg.Password, m.cfg.Host)
	return smtp.SendMail(m.cfg.Host+":"+m.cfg.Port, auth, m.cfg.Sender, []string{to}, message)
}

// From returns the configured sender address.
func (m *SMTPMailer) From() string {
	return m.cfg.Sender
}
