package mail

import (
	"context"
	"io"
)

// Message is a single outbound email.
type Message struct {
	// From overrides the configured default sender when set.
	From string
	// To holds the recipient addresses.
	To []string
	// Subject is the message subject line.
	Subject string
	// TextBody is the plain-text body.
	TextBody string
	// HTMLBody is the HTML body. When both bodies are set the message
	// is sent as multipart/alternative.
	HTMLBody string
}

// Mail sends email messages.
type Mail interface {
	io.Closer

	Send(ctx context.Context, msg Message) error
}
