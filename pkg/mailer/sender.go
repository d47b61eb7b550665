// Package mailer delivers prepared email messages.
package mailer

import "context"

//go:generate mockgen -source=sender.go -destination=mock_sender.go -package=mailer

// Message is a fully rendered email. HTML and Text carry the same content.
type Message struct {
	From    string
	To      string
	Subject string
	HTML    string
	Text    string
}

// Sender delivers a Message. Implementations report delivery failures as
// errors and never retry on their own.
type Sender interface {
	Send(ctx context.Context, message *Message) error
}
