// Package mail sends the contact-form notification over SMTP.
package mail

import (
	"context"
	"fmt"

	"gopkg.in/gomail.v2"

	"github.com/arsitekstudio/cms-api/internal/core/domain"
)

// Config captures the SMTP settings for outbound notifications.
type Config struct {
	Host      string
	Port      int
	User      string
	Pass      string
	Recipient string
}

// Enabled reports whether enough configuration exists to send mail.
func (c Config) Enabled() bool {
	return c.Host != "" && c.Recipient != ""
}

// Mailer sends contact notifications to the firm's inbox. Safe for
// concurrent use; each send opens its own SMTP connection.
type Mailer struct {
	dialer *gomail.Dialer
	from   string
	to     string
}

func NewMailer(cfg Config) *Mailer {
	return &Mailer{
		dialer: gomail.NewDialer(cfg.Host, cfg.Port, cfg.User, cfg.Pass),
		from:   cfg.User,
		to:     cfg.Recipient,
	}
}

// SendContactNotification emails one submission. The reply-to header is
// set to the submitter so the firm can answer directly.
func (m *Mailer) SendContactNotification(ctx context.Context, sub *domain.FormSubmission) error {
	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", m.to)
	msg.SetHeader("Reply-To", sub.Email)
	msg.SetHeader("Subject", fmt.Sprintf("[Arsitek Studio] New Contact: %s", sub.Subject))

	phone := sub.Phone
	if phone == "" {
		phone = "Not provided"
	}
	msg.SetBody("text/plain", fmt.Sprintf(
		"New contact form submission\n\nName: %s\nEmail: %s\nPhone: %s\nProject Type: %s\n\nMessage:\n%s\n",
		sub.Name, sub.Email, phone, sub.Subject, sub.Message,
	))

	done := make(chan error, 1)
	go func() { done <- m.dialer.DialAndSend(msg) }()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case err := <-done:
		if err != nil {
			return fmt.Errorf("send contact notification: %w", err)
		}
		return nil
	}
}
