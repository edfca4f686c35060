package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"appraisal_booking/internal/domain/entities"
	"appraisal_booking/internal/domain/pricing"
	"appraisal_booking/internal/domain/schedule"
	"appraisal_booking/internal/usecase/interfaces"
)

var (
	ErrEmailNotConfigured = errors.New("email provider not configured")
	ErrEmailDelivery      = errors.New("email delivery failed")
)

type ServiceRequestNotification struct {
	Client         entities.ClientInfo
	Address        string
	Property       *entities.PropertyRecord
	Quote          pricing.Quote
	Schedule       entities.Schedule
	Invite         []byte
	Message        string
	ReferralSource string
}

type ContactNotification struct {
	Client  entities.ClientInfo
	Message string
}

// DeliveryReceipt holds the provider message ids of the emails sent.
type DeliveryReceipt struct {
	CustomerMessageID string `json:"customer_message_id,omitempty"`
	StaffMessageID    string `json:"staff_message_id,omitempty"`
}

type NotificationOptions struct {
	BusinessName string
	StaffEmail   string
}

// INotificationUseCase sends the confirmation emails. A failed send is reported
// immediately; nothing is queued or retried.
type INotificationUseCase interface {
	SendServiceRequest(ctx context.Context, n ServiceRequestNotification) (DeliveryReceipt, error)
	SendContact(ctx context.Context, n ContactNotification) (DeliveryReceipt, error)
}

type NotificationUseCase struct {
	mailer interfaces.IMailer
	opts   NotificationOptions
}

var _ INotificationUseCase = (*NotificationUseCase)(nil)

func NewNotificationUseCase(mailer interfaces.IMailer, opts NotificationOptions) *NotificationUseCase {
	return &NotificationUseCase{mailer: mailer, opts: opts}
}

// SendServiceRequest emails the customer with staff in BCC.
func (u *NotificationUseCase) SendServiceRequest(ctx context.Context, n ServiceRequestNotification) (DeliveryReceipt, error) {
	if u.mailer == nil {
		return DeliveryReceipt{}, ErrEmailNotConfigured
	}

	quote := n.Quote
	view := u.view(n.Client, n.Message)
	view.Address = n.Address
	view.ReferralSource = n.ReferralSource
	view.Quote = &quote
	if n.Property != nil {
		county := n.Property.CountyData
		view.County = &county
		if view.Address == "" {
			view.Address = n.Property.FullAddress()
		}
	}
	if !n.Schedule.IsZero() {
		view.HasSchedule = true
		view.Date = n.Schedule.Date
		view.Time = n.Schedule.Time
	}
	view.HasInvite = len(n.Invite) > 0

	html, text, err := serviceRequestTemplate.render(view)
	if err != nil {
		return DeliveryReceipt{}, err
	}

	msg := interfaces.EmailMessage{
		To:      []string{n.Client.Email},
		ReplyTo: u.opts.StaffEmail,
		Subject: fmt.Sprintf("%s - Service request confirmation", u.opts.BusinessName),
		HTML:    html,
		Text:    text,
	}
	if u.opts.StaffEmail != "" {
		msg.Bcc = []string{u.opts.StaffEmail}
	}
	if view.HasInvite {
		msg.Attachments = []interfaces.EmailAttachment{{
			Filename:    schedule.InviteFilename,
			ContentType: schedule.InviteContentType,
			Content:     n.Invite,
		}}
	}

	id, err := u.mailer.Send(ctx, msg)
	if err != nil {
		log.Printf("[notify][usecase] service-request send failed to=%s err=%v", n.Client.Email, err)
		return DeliveryReceipt{}, fmt.Errorf("%w: %v", ErrEmailDelivery, err)
	}
	log.Printf("[notify][usecase] service-request sent to=%s message_id=%s invite=%t", n.Client.Email, id, view.HasInvite)
	return DeliveryReceipt{CustomerMessageID: id}, nil
}

// SendContact notifies staff and acknowledges the customer. Staff is skipped when no
// staff address is configured.
func (u *NotificationUseCase) SendContact(ctx context.Context, n ContactNotification) (DeliveryReceipt, error) {
	if u.mailer == nil {
		return DeliveryReceipt{}, ErrEmailNotConfigured
	}
	view := u.view(n.Client, n.Message)
	var receipt DeliveryReceipt

	if u.opts.StaffEmail != "" {
		html, text, err := contactStaffTemplate.render(view)
		if err != nil {
			return DeliveryReceipt{}, err
		}
		id, err := u.mailer.Send(ctx, interfaces.EmailMessage{
			To:      []string{u.opts.StaffEmail},
			ReplyTo: n.Client.Email,
			Subject: fmt.Sprintf("New contact form submission from %s", view.ClientName),
			HTML:    html,
			Text:    text,
		})
		if err != nil {
			log.Printf("[notify][usecase] contact staff send failed err=%v", err)
			return DeliveryReceipt{}, fmt.Errorf("%w: %v", ErrEmailDelivery, err)
		}
		receipt.StaffMessageID = id
	} else {
		log.Printf("[notify][usecase] staff email not configured; skipping staff notification")
	}

	html, text, err := contactAckTemplate.render(view)
	if err != nil {
		return DeliveryReceipt{}, err
	}
	id, err := u.mailer.Send(ctx, interfaces.EmailMessage{
		To:      []string{n.Client.Email},
		ReplyTo: u.opts.StaffEmail,
		Subject: fmt.Sprintf("%s - We received your message", u.opts.BusinessName),
		HTML:    html,
		Text:    text,
	})
	if err != nil {
		log.Printf("[notify][usecase] contact ack send failed to=%s err=%v", n.Client.Email, err)
		return DeliveryReceipt{}, fmt.Errorf("%w: %v", ErrEmailDelivery, err)
	}
	receipt.CustomerMessageID = id
	log.Printf("[notify][usecase] contact sent staff_id=%s customer_id=%s", receipt.StaffMessageID, receipt.CustomerMessageID)
	return receipt, nil
}

func (u *NotificationUseCase) view(c entities.ClientInfo, message string) emailView {
	return emailView{
		BusinessName: u.opts.BusinessName,
		ClientName:   c.FullName(),
		ClientEmail:  strings.TrimSpace(c.Email),
		ClientPhone:  strings.TrimSpace(c.Phone),
		Message:      strings.TrimSpace(message),
	}
}
