package mailer

import (
	"context"
	"fmt"

	"github.com/MKhiriev/resourcekit/internal/config"
	"github.com/MKhiriev/resourcekit/internal/logger"
	"github.com/wneessen/go-mail"
)

type smtpMailer struct {
	client *mail.Client
	from   string
	logger *logger.Logger
}

// NewSMTPMailer returns a [Mailer] delivering through the SMTP server in
// cfg. Authentication is enabled only when a username is configured and
// STARTTLS is used opportunistically.
func NewSMTPMailer(cfg config.Mail, logger *logger.Logger) (Mailer, error) {
	opts := []mail.Option{
		mail.WithTLSPortPolicy(mail.TLSOpportunistic),
		mail.WithPort(cfg.Port),
	}
	if cfg.Username != "" {
		opts = append(opts,
			mail.WithSMTPAuth(mail.SMTPAuthPlain),
			mail.WithUsername(cfg.Username),
			mail.WithPassword(cfg.Password),
		)
	}

	client, err := mail.NewClient(cfg.Host, opts...)
	if err != nil {
		return nil, fmt.Errorf("error creating smtp client: %w", err)
	}

	return &smtpMailer{client: client, from: cfg.From, logger: logger}, nil
}

func (m *smtpMailer) Send(ctx context.Context, msg Message) error {
	log := logger.FromContext(ctx)

	mailMsg, err := buildMessage(m.from, msg)
	if err != nil {
		return err
	}

	if err = m.client.DialAndSendWithContext(ctx, mailMsg); err != nil {
		log.Err(err).Str("func", "*smtpMailer.Send").Str("to", msg.To).Msg("error sending mail")
		return fmt.Errorf("%w: %w", ErrSendingMail, err)
	}

	log.Debug().Str("func", "*smtpMailer.Send").Str("to", msg.To).Msg("mail sent")
	return nil
}

func buildMessage(from string, msg Message) (*mail.Msg, error) {
	m := mail.NewMsg()
	if err := m.From(from); err != nil {
		return nil, fmt.Errorf("%w: from: %w", ErrInvalidMessage, err)
	}
	if err := m.To(msg.To); err != nil {
		return nil, fmt.Errorf("%w: to: %w", ErrInvalidMessage, err)
	}
	m.Subject(msg.Subject)
	m.SetBodyString(mail.TypeTextHTML, msg.HTML)

	return m, nil
}
