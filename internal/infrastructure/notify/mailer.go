package notify

import (
	"fmt"

	"gopkg.in/gomail.v2"
)

// SMTPConfig captures the settings for the outbound mail transport.
type SMTPConfig struct {
	Host       string
	Port       int
	Username   string
	Password   string
	From       string
	AdminEmail string // recipient for contact-form notifications
}

// Mailer sends rendered messages over SMTP. It dials per message; volume is
// low enough that a persistent connection is not worth keeping alive.
type Mailer struct {
	dialer *gomail.Dialer
	cfg    SMTPConfig
}

func NewMailer(cfg SMTPConfig) *Mailer {
	return &Mailer{
		dialer: gomail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password),
		cfg:    cfg,
	}
}

// Send delivers one message. An empty To routes the message to the site
// operator's address.
func (m *Mailer) Send(msg Message) error {
	to := msg.To
	if to == "" {
		to = m.cfg.AdminEmail
	}

	mail := gomail.NewMessage()
	mail.SetHeader("From", m.cfg.From)
	mail.SetHeader("To", to)
	mail.SetHeader("Subject", msg.Subject)
	mail.SetBody("text/plain", msg.Body)

	if err := m.dialer.DialAndSend(mail); err != nil {
		return fmt.Errorf("smtp send: %w", err)
	}
	return nil
}
