package interfaces

import "context"

type EmailAttachment struct {
	Filename    string
	ContentType string
	Content     []byte
}

type EmailMessage struct {
	To          []string
	Bcc         []string
	ReplyTo     string
	Subject     string
	HTML        string
	Text        string
	Attachments []EmailAttachment
}

// IMailer sends one email and returns the provider message id.
type IMailer interface {
	Send(ctx context.Context, msg EmailMessage) (messageID string, err error)
}
