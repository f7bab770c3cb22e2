package mail

import (
	"context"
	"fmt"

	"github.com/alimikegami/seller-dashboard/config"
	"gopkg.in/gomail.v2"
)

type dialer interface {
	DialAndSend(m ...*gomail.Message) error
}

// Mailer sends transactional emails over SMTP.
type Mailer struct {
	sender string
	dialer dialer
}

// CreateMailer returns nil when SMTP is not configured.
func CreateMailer(conf config.SMTPConfig) *Mailer {
	if conf.Host == "" || conf.Sender == "" {
		return nil
	}

	return &Mailer{
		sender: conf.Sender,
		dialer: gomail.NewDialer(conf.Host, conf.Port, conf.Sender, conf.Password),
	}
}

func (m *Mailer) SendWelcome(ctx context.Context, to string, name string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	msg := gomail.NewMessage()
	msg.SetHeader("From", m.sender)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", "Welcome to your seller dashboard")
	msg.SetBody("text/plain", WelcomeBody(name))

	if err := m.dialer.DialAndSend(msg); err != nil {
		return fmt.Errorf("send welcome email: %w", err)
	}

	return nil
}

func WelcomeBody(name string) string {
	if name == "" {
		name = "there"
	}
	return fmt.Sprintf("Hi %s,\n\nYour seller account is ready. Complete your profile and payment details to start listing products.\n", name)
}
