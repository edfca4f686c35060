package email

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/url"
	"strings"

	"appraisal_booking/internal/usecase/interfaces"

	"github.com/resend/resend-go/v2"
)

var ErrNotConfigured = errors.New("resend mailer not configured")

type ResendMailer struct {
	client *resend.Client
	from   string
}

var _ interfaces.IMailer = (*ResendMailer)(nil)

// NewResendMailer builds a mailer sending as from. baseURL is optional and only
// overridden for tests.
func NewResendMailer(apiKey, from, baseURL string) (*ResendMailer, error) {
	if strings.TrimSpace(apiKey) == "" || strings.TrimSpace(from) == "" {
		return nil, ErrNotConfigured
	}
	client := resend.NewClient(apiKey)
	if baseURL != "" {
		if !strings.HasSuffix(baseURL, "/") {
			baseURL += "/"
		}
		u, err := url.Parse(baseURL)
		if err != nil {
			return nil, fmt.Errorf("invalid resend base url: %w", err)
		}
		client.BaseURL = u
	}
	return &ResendMailer{client: client, from: from}, nil
}

func (m *ResendMailer) Send(ctx context.Context, msg interfaces.EmailMessage) (string, error) {
	req := &resend.SendEmailRequest{
		From:    m.from,
		To:      msg.To,
		Bcc:     msg.Bcc,
		ReplyTo: msg.ReplyTo,
		Subject: msg.Subject,
		Html:    msg.HTML,
		Text:    msg.Text,
	}
	for _, a := range msg.Attachments {
		req.Attachments = append(req.Attachments, &resend.Attachment{
			Filename:    a.Filename,
			ContentType: a.ContentType,
			Content:     a.Content,
		})
	}

	sent, err := m.client.Emails.SendWithContext(ctx, req)
	if err != nil {
		log.Printf("[email][mailer] send failed to=%d subject=%q err=%v", len(msg.To), msg.Subject, err)
		return "", fmt.Errorf("%w: %v", interfaces.ErrProviderUpstream, err)
	}
	log.Printf("[email][mailer] sent message_id=%s attachments=%d", sent.Id, len(req.Attachments))
	return sent.Id, nil
}
