// Package mailer delivers outgoing mail, currently only the password reset
// links of the auth flow.
//
// Two implementations exist: an SMTP one built on go-mail and a logging one
// used when no SMTP host is configured.
package mailer

import (
	"context"
	"errors"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/mailer_mock.go -package=mock

// Mailer sends a single message.
type Mailer interface {
	Send(ctx context.Context, msg Message) error
}

// Message is an HTML mail to one recipient.
type Message struct {
	To      string
	Subject string
	HTML    string
}

var (
	ErrInvalidMessage = errors.New("invalid mail message")
	ErrSendingMail    = errors.New("error sending mail")
)
