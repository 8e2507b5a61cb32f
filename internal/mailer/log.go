package mailer

import (
	"context"

	"github.com/MKhiriev/resourcekit/internal/config"
	"github.com/MKhiriev/resourcekit/internal/logger"
)

type logMailer struct {
	logger *logger.Logger
}

// NewLogMailer returns a [Mailer] that writes every message to the log
// instead of sending it.
func NewLogMailer(logger *logger.Logger) Mailer {
	return &logMailer{logger: logger}
}

func (m *logMailer) Send(_ context.Context, msg Message) error {
	if msg.To == "" {
		return ErrInvalidMessage
	}

	m.logger.Info().
		Str("func", "*logMailer.Send").
		Str("to", msg.To).
		Str("subject", msg.Subject).
		Str("html", msg.HTML).
		Msg("mail delivery disabled, message logged")
	return nil
}

// New picks the SMTP mailer when cfg.Host is set and the log mailer
// otherwise.
func New(cfg config.Mail, logger *logger.Logger) (Mailer, error) {
	if cfg.Host == "" {
		return NewLogMailer(logger), nil
	}
	return NewSMTPMailer(cfg, logger)
}
